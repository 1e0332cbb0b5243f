// Package pathgen implements the layered greedy selector: per level, in
// configured order, filter candidate books, greedily pick the
// highest-scoring remaining book under quality constraints, and accumulate
// coverage/selection state across levels.
package pathgen

import (
	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/level"
)

// Parameters is the per-call tuning knobs for one run of the selector.
type Parameters struct {
	MaxBooksPerLevel       map[string]int
	TargetCoveragePerLevel map[string]float64
	MaxUnknownRatio        float64
	MinRelevantRatio       float64
	MinTargetLevelWords    int
}

// Validate checks Parameters' invariants: every configured level must have
// an entry in both per-level maps, every ratio must be in [0,1], and
// max_unknown_ratio + min_relevant_ratio must not exceed 1. Returns
// *common.PathError with Type ErrorTypeInvalidParameters on any violation.
func (p Parameters) Validate(cfg *level.Config) error {
	if p.MaxUnknownRatio < 0 || p.MaxUnknownRatio > 1 {
		return common.NewError(common.ErrorTypeInvalidParameters, "max_unknown_ratio must be in [0,1], got %v", p.MaxUnknownRatio)
	}
	if p.MinRelevantRatio < 0 || p.MinRelevantRatio > 1 {
		return common.NewError(common.ErrorTypeInvalidParameters, "min_relevant_ratio must be in [0,1], got %v", p.MinRelevantRatio)
	}
	if p.MaxUnknownRatio+p.MinRelevantRatio > 1 {
		return common.NewError(common.ErrorTypeInvalidParameters, "max_unknown_ratio (%v) + min_relevant_ratio (%v) must not exceed 1", p.MaxUnknownRatio, p.MinRelevantRatio)
	}
	if p.MinTargetLevelWords < 1 {
		return common.NewError(common.ErrorTypeInvalidParameters, "min_target_level_words must be >= 1, got %d", p.MinTargetLevelWords)
	}

	for _, lvl := range cfg.Levels() {
		maxBooks, ok := p.MaxBooksPerLevel[lvl]
		if !ok {
			return common.NewError(common.ErrorTypeInvalidParameters, "max_books_per_level is missing an entry for level %q", lvl)
		}
		if maxBooks <= 0 {
			return common.NewError(common.ErrorTypeInvalidParameters, "max_books_per_level[%q] must be > 0, got %d", lvl, maxBooks)
		}

		coverage, ok := p.TargetCoveragePerLevel[lvl]
		if !ok {
			return common.NewError(common.ErrorTypeInvalidParameters, "target_coverage_per_level is missing an entry for level %q", lvl)
		}
		if coverage < 0 || coverage > 1 {
			return common.NewError(common.ErrorTypeInvalidParameters, "target_coverage_per_level[%q] must be in [0,1], got %v", lvl, coverage)
		}
	}

	return nil
}

// SelectionCriteria is the derived, per-level candidate filter built from
// Parameters during a run.
type SelectionCriteria struct {
	MaxUnknownRatio     float64
	MinSuitabilityScore float64
	MinTargetWords      int
	PreferHighCoverage  bool
}

// criteriaForLevel maps Parameters to per-level SelectionCriteria. The
// mapping is level-agnostic: every level shares the same global
// ratios/target-word-count floor from Parameters.
func criteriaForLevel(p Parameters) SelectionCriteria {
	return SelectionCriteria{
		MaxUnknownRatio:     p.MaxUnknownRatio,
		MinSuitabilityScore: p.MinRelevantRatio,
		MinTargetWords:      p.MinTargetLevelWords,
		PreferHighCoverage:  true,
	}
}
