package pathgen

import (
	"sort"
	"sync"

	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/level"
)

// ParameterFactory builds a Parameters set for a given level Config. Presets
// are factories rather than fixed values because MaxBooksPerLevel and
// TargetCoveragePerLevel are keyed by the config's actual level names, which
// aren't known until a Config exists.
type ParameterFactory func(cfg *level.Config) Parameters

type presetInfo struct {
	Name        string
	Description string
	Factory     ParameterFactory
}

var (
	presetMap  = make(map[string]presetInfo)
	presetLock sync.RWMutex
)

// RegisterPreset adds a named Parameters preset to the registry.
func RegisterPreset(name, description string, factory ParameterFactory) {
	presetLock.Lock()
	defer presetLock.Unlock()
	presetMap[name] = presetInfo{Name: name, Description: description, Factory: factory}
}

// GetPreset builds the Parameters for a registered preset name against cfg.
func GetPreset(name string, cfg *level.Config) (Parameters, error) {
	presetLock.RLock()
	info, ok := presetMap[name]
	presetLock.RUnlock()
	if !ok {
		return Parameters{}, common.NewError(common.ErrorTypeInvalidParameters, "unknown path generation preset: %s", name)
	}
	return info.Factory(cfg), nil
}

// ListPresets returns every registered preset's name and description,
// sorted by name.
func ListPresets() []struct{ Name, Description string } {
	presetLock.RLock()
	defer presetLock.RUnlock()

	out := make([]struct{ Name, Description string }, 0, len(presetMap))
	for _, info := range presetMap {
		out = append(out, struct{ Name, Description string }{info.Name, info.Description})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// buildMaxBooks generalizes the CEFR-shaped [3,3,4,3,2] table to any level
// count: the first and last levels get their own caps, the middle level
// (where vocabulary growth is usually steepest) gets its own cap, and every
// other level falls back to rest.
func buildMaxBooks(cfg *level.Config, first, mid, last, rest int) map[string]int {
	levels := cfg.Levels()
	n := len(levels)
	out := make(map[string]int, n)
	midIdx := n / 2
	for k, lvl := range levels {
		switch {
		case k == 0:
			out[lvl] = first
		case k == midIdx:
			out[lvl] = mid
		case k == n-1:
			out[lvl] = last
		default:
			out[lvl] = rest
		}
	}
	return out
}

// decayingFromMidpoint builds a per-level book-count table that holds at
// base through the midpoint level, then decays by 1 per level past it,
// floored at 1 — the conservative preset's shape.
func decayingFromMidpoint(cfg *level.Config, base int) map[string]int {
	levels := cfg.Levels()
	midIdx := len(levels) / 2
	out := make(map[string]int, len(levels))
	for k, lvl := range levels {
		v := base
		if k > midIdx {
			v -= k - midIdx
		}
		if v < 1 {
			v = 1
		}
		out[lvl] = v
	}
	return out
}

// uniformRange assigns hi to the midpoint level and lo to every other level
// — the fast preset's "uniformly 2-3" shape.
func uniformRange(cfg *level.Config, lo, hi int) map[string]int {
	levels := cfg.Levels()
	midIdx := len(levels) / 2
	out := make(map[string]int, len(levels))
	for k, lvl := range levels {
		if k == midIdx {
			out[lvl] = hi
		} else {
			out[lvl] = lo
		}
	}
	return out
}

// earlyMidLateCoverage assigns early levels the highest coverage target,
// the midpoint level a middling one, and late levels the lowest — the
// conservative preset's coverage shape (harder levels tolerate lower
// saturation before the reader moves on).
func earlyMidLateCoverage(cfg *level.Config, early, mid, late float64) map[string]float64 {
	levels := cfg.Levels()
	midIdx := len(levels) / 2
	out := make(map[string]float64, len(levels))
	for k, lvl := range levels {
		switch {
		case k < midIdx:
			out[lvl] = early
		case k == midIdx:
			out[lvl] = mid
		default:
			out[lvl] = late
		}
	}
	return out
}

// firstThenRestCoverage gives the first level one coverage target and every
// other level another — the standard preset's 0.85/0.90×N shape.
func firstThenRestCoverage(cfg *level.Config, first, rest float64) map[string]float64 {
	out := make(map[string]float64, cfg.NumLevels())
	for k, lvl := range cfg.Levels() {
		if k == 0 {
			out[lvl] = first
		} else {
			out[lvl] = rest
		}
	}
	return out
}

// decreasingTowardLast linearly interpolates a per-level coverage target
// from high (first level) to low (last level) — the fast preset's
// "decreasing toward the top" shape.
func decreasingTowardLast(cfg *level.Config, high, low float64) map[string]float64 {
	levels := cfg.Levels()
	n := len(levels)
	out := make(map[string]float64, n)
	if n == 1 {
		out[levels[0]] = high
		return out
	}
	for k, lvl := range levels {
		frac := float64(k) / float64(n-1)
		out[lvl] = high - frac*(high-low)
	}
	return out
}

// ConservativePreset favors thorough, low-risk coverage: a book count that
// holds at 4 through the midpoint before decaying, a high coverage target
// that eases off for harder levels, and a tight unknown-word ceiling.
// Suited to a cautious learner who would rather read one extra book than
// hit unfamiliar vocabulary too early.
func ConservativePreset(cfg *level.Config) Parameters {
	return Parameters{
		MaxBooksPerLevel:       decayingFromMidpoint(cfg, 4),
		TargetCoveragePerLevel: earlyMidLateCoverage(cfg, 0.90, 0.85, 0.80),
		MaxUnknownRatio:        0.10,
		MinRelevantRatio:       0.60,
		MinTargetLevelWords:    50,
	}
}

// StandardPreset is the default, balanced profile: the CEFR-derived
// [3,3,4,3,2] front-loaded-then-taper book-count shape generalized across
// any level count, a 0.85/0.90 coverage split, and a moderate unknown-word
// ceiling.
func StandardPreset(cfg *level.Config) Parameters {
	return Parameters{
		MaxBooksPerLevel:       buildMaxBooks(cfg, 3, 4, 2, 3),
		TargetCoveragePerLevel: firstThenRestCoverage(cfg, 0.85, 0.90),
		MaxUnknownRatio:        0.15,
		MinRelevantRatio:       0.40,
		MinTargetLevelWords:    30,
	}
}

// FastPreset (aliased as "aggressive") favors speed over saturating
// coverage: a uniformly low book count, a coverage target that decreases
// toward advanced levels, and a looser unknown-word ceiling for a learner
// comfortable guessing from context.
func FastPreset(cfg *level.Config) Parameters {
	return Parameters{
		MaxBooksPerLevel:       uniformRange(cfg, 2, 3),
		TargetCoveragePerLevel: decreasingTowardLast(cfg, 0.85, 0.75),
		MaxUnknownRatio:        0.25,
		MinRelevantRatio:       0.30,
		MinTargetLevelWords:    10,
	}
}

func init() {
	RegisterPreset("conservative", "Thorough coverage, tight unknown-word ceiling", ConservativePreset)
	RegisterPreset("standard", "Balanced default profile", StandardPreset)
	RegisterPreset("balanced", "Alias of standard", StandardPreset)
	RegisterPreset("fast", "Fewer books, looser coverage target", FastPreset)
	RegisterPreset("aggressive", "Alias of fast", FastPreset)
}
