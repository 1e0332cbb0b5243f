package level_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/level"
)

func TestNewConfig_LinearMultipliers(t *testing.T) {
	cfg, err := level.NewConfig(
		[]string{"L0", "L1", "L2"},
		map[string]float64{"L0": 1, "L1": 1, "L2": 1},
		level.ProgressionLinear,
		"SENTINEL",
		nil,
	)
	require.NoError(t, err)

	m0, err := cfg.DifficultyMultiplier("L0")
	require.NoError(t, err)
	assert.Equal(t, 1.0, m0)

	m1, _ := cfg.DifficultyMultiplier("L1")
	assert.Equal(t, 2.0, m1)

	m2, _ := cfg.DifficultyMultiplier("L2")
	assert.Equal(t, 3.0, m2)

	sentinelM, _ := cfg.DifficultyMultiplier("SENTINEL")
	assert.Equal(t, 4.0, sentinelM, "sentinel multiplier must be one step harder than the hardest configured level")
}

func TestNewConfig_ExponentialMultipliers(t *testing.T) {
	cfg, err := level.NewConfig(
		[]string{"L0", "L1", "L2", "L3"},
		map[string]float64{"L0": 1, "L1": 1, "L2": 1, "L3": 1},
		level.ProgressionExponential,
		"SENTINEL",
		nil,
	)
	require.NoError(t, err)

	want := []float64{1, 2, 4, 8}
	for k, lvl := range cfg.Levels() {
		m, err := cfg.DifficultyMultiplier(lvl)
		require.NoError(t, err)
		assert.Equal(t, want[k], m)
	}
	sentinelM, _ := cfg.DifficultyMultiplier("SENTINEL")
	assert.Equal(t, 9.0, sentinelM)
}

func TestNewConfig_CustomMultipliers(t *testing.T) {
	cfg, err := level.NewConfig(
		[]string{"L0", "L1"},
		map[string]float64{"L0": 1, "L1": 1},
		level.ProgressionCustom,
		"SENTINEL",
		map[string]float64{"L0": 1.5, "L1": 3.0},
	)
	require.NoError(t, err)
	m0, _ := cfg.DifficultyMultiplier("L0")
	m1, _ := cfg.DifficultyMultiplier("L1")
	assert.Equal(t, 1.5, m0)
	assert.Equal(t, 3.0, m1)
}

func TestNewConfig_CustomMultipliers_NonMonotonicRejected(t *testing.T) {
	_, err := level.NewConfig(
		[]string{"L0", "L1"},
		map[string]float64{"L0": 1, "L1": 1},
		level.ProgressionCustom,
		"SENTINEL",
		map[string]float64{"L0": 2.0, "L1": 1.0},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidConfig))
}

func TestNewConfig_CustomMultipliers_MissingEntryRejected(t *testing.T) {
	_, err := level.NewConfig(
		[]string{"L0", "L1"},
		map[string]float64{"L0": 1, "L1": 1},
		level.ProgressionCustom,
		"SENTINEL",
		map[string]float64{"L0": 1.0},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidConfig))
}

func TestNewConfig_DuplicateLevelsRejected(t *testing.T) {
	_, err := level.NewConfig(
		[]string{"L0", "L0"},
		map[string]float64{"L0": 1},
		level.ProgressionLinear,
		"SENTINEL",
		nil,
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidConfig))
}

func TestNewConfig_MissingWeightRejected(t *testing.T) {
	_, err := level.NewConfig(
		[]string{"L0", "L1"},
		map[string]float64{"L0": 1},
		level.ProgressionLinear,
		"SENTINEL",
		nil,
	)
	require.Error(t, err)
}

func TestNewConfig_NegativeWeightRejected(t *testing.T) {
	_, err := level.NewConfig(
		[]string{"L0"},
		map[string]float64{"L0": -1},
		level.ProgressionLinear,
		"SENTINEL",
		nil,
	)
	require.Error(t, err)
}

func TestNewConfig_SentinelCollisionRejected(t *testing.T) {
	_, err := level.NewConfig(
		[]string{"L0", "L1"},
		map[string]float64{"L0": 1, "L1": 1},
		level.ProgressionLinear,
		"L0",
		nil,
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidConfig))
}

func TestNewConfig_EmptyLevelsRejected(t *testing.T) {
	_, err := level.NewConfig(nil, nil, level.ProgressionLinear, "SENTINEL", nil)
	require.Error(t, err)
}

func TestIndexOf_UnknownLevel(t *testing.T) {
	cfg, err := level.NewConfig([]string{"L0"}, map[string]float64{"L0": 1}, level.ProgressionLinear, "SENTINEL", nil)
	require.NoError(t, err)

	_, err = cfg.IndexOf("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnknownLevel))
}

func TestWeight_SentinelHasNoConfiguredWeight(t *testing.T) {
	cfg, err := level.NewConfig([]string{"L0"}, map[string]float64{"L0": 1}, level.ProgressionLinear, "SENTINEL", nil)
	require.NoError(t, err)

	_, err = cfg.Weight("SENTINEL")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnknownLevel))
}

func TestZeroWeightLevel_StillYieldsPositiveDifficultyMultiplier(t *testing.T) {
	// A level weight of 0 still yields a positive difficulty multiplier for
	// the sentinel; this is deliberate, not a bug.
	cfg, err := level.NewConfig([]string{"L0"}, map[string]float64{"L0": 0}, level.ProgressionLinear, "SENTINEL", nil)
	require.NoError(t, err)

	w, err := cfg.Weight("L0")
	require.NoError(t, err)
	assert.Equal(t, 0.0, w)

	sentinelM, err := cfg.DifficultyMultiplier("SENTINEL")
	require.NoError(t, err)
	assert.Greater(t, sentinelM, 0.0)
}
