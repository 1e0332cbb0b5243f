// Package level encapsulates the difficulty space a reading path is built
// over: an ordered sequence of level names, per-level learning weights, a
// progression curve, and the sentinel name for out-of-syllabus words.
//
// A Config is validated once at construction (NewConfig) and is immutable
// and safe for concurrent read access afterward, the same contract a
// package-level difficulty-tier table would provide, except here it is
// built per caller rather than baked in as a fixed var — that is the whole
// point of a configurable difficulty model: callers can describe their own
// level sequence, weights, and progression curve instead of inheriting one.
package level

import (
	"math"

	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
)

// Progression selects how DifficultyMultiplier grows across levels.
type Progression string

const (
	ProgressionLinear      Progression = "linear"
	ProgressionExponential Progression = "exponential"
	ProgressionCustom      Progression = "custom"
)

// Config is the immutable description of a difficulty space.
type Config struct {
	levels      []string
	index       map[string]int
	weights     map[string]float64
	progression Progression
	sentinel    string
	multiplier  map[string]float64 // every configured level plus the sentinel
}

// NewConfig validates levels, weights, progression, sentinel, and
// explicitMultipliers and, on success, precomputes every level's difficulty
// multiplier so DifficultyMultiplier is O(1) thereafter.
//
// explicitMultipliers is only consulted when progression is
// ProgressionCustom; pass nil otherwise.
func NewConfig(levels []string, weights map[string]float64, progression Progression, sentinel string, explicitMultipliers map[string]float64) (*Config, error) {
	if len(levels) == 0 {
		return nil, common.NewError(common.ErrorTypeInvalidConfig, "level config must have at least one level")
	}

	index := make(map[string]int, len(levels))
	for i, lvl := range levels {
		if lvl == "" {
			return nil, common.NewError(common.ErrorTypeInvalidConfig, "level names must be non-empty")
		}
		if _, dup := index[lvl]; dup {
			return nil, common.NewError(common.ErrorTypeInvalidConfig, "duplicate level name %q", lvl)
		}
		index[lvl] = i
	}

	for _, lvl := range levels {
		w, ok := weights[lvl]
		if !ok {
			return nil, common.NewError(common.ErrorTypeInvalidConfig, "missing weight for level %q", lvl)
		}
		if w < 0 {
			return nil, common.NewError(common.ErrorTypeInvalidConfig, "weight for level %q must be non-negative, got %v", lvl, w)
		}
	}

	if sentinel == "" {
		return nil, common.NewError(common.ErrorTypeInvalidConfig, "sentinel level name must be non-empty")
	}
	if _, collides := index[sentinel]; collides {
		return nil, common.NewError(common.ErrorTypeInvalidConfig, "sentinel level name %q collides with a configured level", sentinel)
	}

	multiplier := make(map[string]float64, len(levels)+1)
	switch progression {
	case ProgressionLinear:
		for k, lvl := range levels {
			multiplier[lvl] = float64(k + 1)
		}
	case ProgressionExponential:
		for k, lvl := range levels {
			multiplier[lvl] = math.Pow(2, float64(k))
		}
	case ProgressionCustom:
		if len(explicitMultipliers) != len(levels) {
			return nil, common.NewError(common.ErrorTypeInvalidConfig, "custom progression requires an explicit multiplier for every one of the %d levels, got %d", len(levels), len(explicitMultipliers))
		}
		prev := math.Inf(-1)
		for _, lvl := range levels {
			m, ok := explicitMultipliers[lvl]
			if !ok {
				return nil, common.NewError(common.ErrorTypeInvalidConfig, "custom progression missing multiplier for level %q", lvl)
			}
			if m <= prev {
				return nil, common.NewError(common.ErrorTypeInvalidConfig, "custom progression multipliers must be strictly increasing in level order, %q (%v) does not exceed the previous level's multiplier (%v)", lvl, m, prev)
			}
			multiplier[lvl] = m
			prev = m
		}
	default:
		return nil, common.NewError(common.ErrorTypeInvalidConfig, "unknown progression %q", progression)
	}

	maxMultiplier := math.Inf(-1)
	for _, m := range multiplier {
		if m > maxMultiplier {
			maxMultiplier = m
		}
	}
	multiplier[sentinel] = maxMultiplier + 1

	cfg := &Config{
		levels:      append([]string(nil), levels...),
		index:       index,
		weights:     cloneWeights(weights, levels),
		progression: progression,
		sentinel:    sentinel,
		multiplier:  multiplier,
	}
	return cfg, nil
}

func cloneWeights(weights map[string]float64, levels []string) map[string]float64 {
	out := make(map[string]float64, len(levels))
	for _, lvl := range levels {
		out[lvl] = weights[lvl]
	}
	return out
}

// Levels returns a copy of the configured level names in order, easiest
// first.
func (c *Config) Levels() []string {
	return append([]string(nil), c.levels...)
}

// NumLevels returns the number of configured levels (excluding the
// sentinel).
func (c *Config) NumLevels() int {
	return len(c.levels)
}

// Sentinel returns the out-of-syllabus level name.
func (c *Config) Sentinel() string {
	return c.sentinel
}

// IsSentinel reports whether name is the sentinel level.
func (c *Config) IsSentinel(name string) bool {
	return name == c.sentinel
}

// IndexOf returns k such that Levels()[k] == levelName.
func (c *Config) IndexOf(levelName string) (int, error) {
	k, ok := c.index[levelName]
	if !ok {
		return 0, common.NewError(common.ErrorTypeUnknownLevel, "unknown level %q", levelName)
	}
	return k, nil
}

// DifficultyMultiplier returns the configured level's (or the sentinel's)
// difficulty multiplier.
func (c *Config) DifficultyMultiplier(levelName string) (float64, error) {
	m, ok := c.multiplier[levelName]
	if !ok {
		return 0, common.NewError(common.ErrorTypeUnknownLevel, "unknown level %q", levelName)
	}
	return m, nil
}

// Weight returns the configured learning weight for a level. The sentinel
// has no configured weight — weighted_value for out-of-syllabus words is
// always 0, computed directly rather than looked up here.
func (c *Config) Weight(levelName string) (float64, error) {
	w, ok := c.weights[levelName]
	if !ok {
		return 0, common.NewError(common.ErrorTypeUnknownLevel, "unknown level %q", levelName)
	}
	return w, nil
}

// Progression returns the configured progression curve.
func (c *Config) Progression() Progression {
	return c.progression
}
