package pathgen

import (
	"github.com/benjaminwangfan/reading-path-builer/pkg/analyzer"
	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/level"
)

// Scoring constants. These are part of the selector's behavioral contract —
// reproducing them exactly is required for result parity across runs, not a
// matter of taste.
const (
	newCoverageWeight          = 10.0
	reviewBonusWeight          = 0.5
	previewBonusWeight         = 0.1
	previewCap                 = 100
	difficultyPenaltyWeight    = 0.8
	efficiencyBonusWeight      = 50.0
	efficiencyIterationMinimum = 2
)

// score computes a candidate book's greedy-selection score for one
// iteration. A return value <= 0 means the book is not selectable this
// iteration.
func score(cfg *level.Config, a analyzer.BookAnalysis, targetLevel string, remaining common.StringSet, iteration int) float64 {
	k, err := cfg.IndexOf(targetLevel)
	if err != nil {
		return -1
	}

	dist, ok := a.LevelDistributions[targetLevel]
	if !ok || dist.Count == 0 {
		return -1
	}

	newCoverage := dist.Words.Intersect(remaining).Len()
	if newCoverage == 0 {
		return -1
	}

	s := newCoverageWeight * float64(newCoverage)

	levels := cfg.Levels()
	for j := 0; j < k; j++ {
		if d, ok := a.LevelDistributions[levels[j]]; ok {
			s += reviewBonusWeight * float64(d.Count)
		}
	}

	if k < len(levels)-1 {
		if d, ok := a.LevelDistributions[levels[k+1]]; ok {
			preview := d.Count
			if preview > previewCap {
				preview = previewCap
			}
			s += previewBonusWeight * float64(preview)
		}
	}

	s -= difficultyPenaltyWeight * float64(a.UnknownCount)

	if iteration > efficiencyIterationMinimum && remaining.Len() > 0 {
		s += efficiencyBonusWeight * (float64(newCoverage) / float64(remaining.Len()))
	}

	return s
}
