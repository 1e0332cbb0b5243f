package facade

import (
	"github.com/benjaminwangfan/reading-path-builer/pkg/analyzer"
	"github.com/benjaminwangfan/reading-path-builer/pkg/pathgen"
)

// BookEvaluation is the result of evaluating one book against one level:
// enough detail for a caller to decide whether the book belongs in a
// reading path for that level without re-running the full analysis.
type BookEvaluation struct {
	BookID                       string
	Level                        string
	SuitabilityScore             float64
	LevelWordCount               int
	LevelWordRatio               float64
	UnknownRatio                 float64
	DifficultyCategory           analyzer.DifficultyCategory
	MeetsDefaultCriteriaForLevel bool
}

// NamedResult pairs a named parameter strategy with the path it produced,
// the shape GetAlternativePaths returns one of per requested strategy.
type NamedResult struct {
	Strategy string
	Result   pathgen.Result
}
