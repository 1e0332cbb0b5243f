package corpus_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/corpus"
	"github.com/benjaminwangfan/reading-path-builer/pkg/level"
)

func testConfig(t *testing.T) *level.Config {
	t.Helper()
	cfg, err := level.NewConfig(
		[]string{"A1", "A2", "B1"},
		map[string]float64{"A1": 1.5, "A2": 1.3, "B1": 1.1},
		level.ProgressionLinear,
		"BEYOND",
		nil,
	)
	require.NoError(t, err)
	return cfg
}

func TestBuildLevelVocabulary_Partitions(t *testing.T) {
	cfg := testConfig(t)
	wlm := corpus.WordLevelMap{"a": "A1", "b": "A1", "c": "A2", "d": "B1"}

	vocab, err := corpus.BuildLevelVocabulary(cfg, wlm)
	require.NoError(t, err)

	assert.Equal(t, 2, vocab.Words("A1").Len())
	assert.True(t, vocab.Words("A1").Has("a"))
	assert.True(t, vocab.Words("A1").Has("b"))
	assert.Equal(t, 1, vocab.Words("A2").Len())
	assert.Equal(t, 1, vocab.Words("B1").Len())
	assert.Equal(t, 4, vocab.Known().Len())
}

func TestBuildLevelVocabulary_UnconfiguredLevelRejected(t *testing.T) {
	cfg := testConfig(t)
	wlm := corpus.WordLevelMap{"x": "C9"}

	_, err := corpus.BuildLevelVocabulary(cfg, wlm)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnknownLevel))
}

func TestBuildLevelVocabulary_EmptyStringWordIgnored(t *testing.T) {
	cfg := testConfig(t)
	wlm := corpus.WordLevelMap{"": "A1", "a": "A1"}

	vocab, err := corpus.BuildLevelVocabulary(cfg, wlm)
	require.NoError(t, err)
	assert.Equal(t, 1, vocab.Words("A1").Len())
}

func TestTargetVocabulary_CopyDoesNotAliasSource(t *testing.T) {
	cfg := testConfig(t)
	wlm := corpus.WordLevelMap{"a": "A1"}

	vocab, err := corpus.BuildLevelVocabulary(cfg, wlm)
	require.NoError(t, err)

	target := vocab.TargetVocabulary()
	target["A1"].Add("injected")

	assert.False(t, vocab.Words("A1").Has("injected"), "narrowing a caller's copy of the target vocabulary must not mutate the shared LevelVocabulary")
}
