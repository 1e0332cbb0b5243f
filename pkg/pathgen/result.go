package pathgen

import "github.com/benjaminwangfan/reading-path-builer/pkg/common"

// LevelSelectionResult is the outcome of one level's greedy selection pass.
type LevelSelectionResult struct {
	TargetLevel     string
	SelectedBooks   []string // selection order
	Coverage        float64
	NewWordsCovered common.StringSet
	TargetWords     int
	CoveredWords    int
	BooksCount      int
}

// CoverageSnapshot reports a level's target-vocabulary coverage at a point
// in the run.
type CoverageSnapshot struct {
	Covered int
	Total   int
	Ratio   float64
}

// LevelDifficultyAverage is one entry of the summary's ordered difficulty
// progression.
type LevelDifficultyAverage struct {
	Level             string
	AverageDifficulty float64
}

// Summary is the run's top-level summary: total books selected, books per
// level, final coverage per level, and the difficulty progression across
// levels.
type Summary struct {
	TotalBooks            int
	BooksPerLevel         map[string]int
	FinalCoverage         map[string]CoverageSnapshot
	DifficultyProgression []LevelDifficultyAverage
}

// Result is the full reading path produced once per run.
type Result struct {
	RunID              string
	Levels             map[string]LevelSelectionResult
	TotalBooks         []string // concatenation in level order
	CumulativeCoverage map[string]CoverageSnapshot
	Summary            Summary
}
