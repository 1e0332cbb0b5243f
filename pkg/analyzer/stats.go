// Package analyzer turns a book's vocabulary set into a fully-populated
// BookAnalysis: per-level word subsets, counts and ratios, aggregate
// difficulty and learning-value scores, per-level suitability, and the set
// of unknown (out-of-syllabus) words.
package analyzer

import "github.com/benjaminwangfan/reading-path-builer/pkg/common"

// VocabularyLevelStats describes a book's relationship to a single level's
// vocabulary.
type VocabularyLevelStats struct {
	Words         common.StringSet
	Count         int
	Ratio         float64
	WeightedValue float64
}

// DifficultyCategory is a derived, three-bucket classification of a book's
// DifficultyScore. Thresholds are fixed at 2.0/4.0 regardless of the level
// config's progression curve, deliberately, so categories stay comparable
// across configs, even though it means the buckets compress under
// exponential progressions.
type DifficultyCategory string

const (
	Beginner     DifficultyCategory = "Beginner"
	Intermediate DifficultyCategory = "Intermediate"
	Advanced     DifficultyCategory = "Advanced"
)

// BookAnalysis is the complete per-book output of the analyzer. It is built
// once per book per configuration and is immutable afterward.
type BookAnalysis struct {
	BookID             string
	TotalWords         int
	LevelDistributions map[string]VocabularyLevelStats // configured levels + the sentinel
	UnknownWords       common.StringSet
	UnknownCount       int
	UnknownRatio       float64
	DifficultyScore    float64
	LearningValue      float64
	SuitabilityScores  map[string]float64 // configured levels only
	LearningWordsRatio float64
}

// DifficultyCategory classifies the book's DifficultyScore.
func (b BookAnalysis) DifficultyCategory() DifficultyCategory {
	switch {
	case b.DifficultyScore < 2.0:
		return Beginner
	case b.DifficultyScore < 4.0:
		return Intermediate
	default:
		return Advanced
	}
}

// RecommendedLevels returns, in the order given, every level whose
// suitability score is at least 0.6.
func (b BookAnalysis) RecommendedLevels(levels []string) []string {
	var out []string
	for _, lvl := range levels {
		if b.SuitabilityScores[lvl] >= 0.6 {
			out = append(out, lvl)
		}
	}
	return out
}
