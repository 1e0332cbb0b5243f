package analyzer_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminwangfan/reading-path-builer/pkg/analyzer"
	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/corpus"
	"github.com/benjaminwangfan/reading-path-builer/pkg/level"
)

func cefrAnalyzer(t *testing.T) (*analyzer.Analyzer, *level.Config) {
	t.Helper()
	cfg, err := level.CEFRPreset()
	require.NoError(t, err)

	wlm := corpus.WordLevelMap{
		"a": "A1", "b": "A1",
		"c": "A2",
		"d": "B1",
	}
	vocab, err := corpus.BuildLevelVocabulary(cfg, wlm)
	require.NoError(t, err)

	return analyzer.New(cfg, vocab), cfg
}

func TestAnalyzeBook_CountsAndRatiosSumToTotal(t *testing.T) {
	a, cfg := cefrAnalyzer(t)
	book := common.NewStringSet("a", "b", "c", "x") // x is unknown

	got := a.AnalyzeBook("book1", book)

	assert.Equal(t, 4, got.TotalWords)

	sum := 0
	for _, lvl := range append(cfg.Levels(), cfg.Sentinel()) {
		sum += got.LevelDistributions[lvl].Count
	}
	assert.Equal(t, got.TotalWords, sum, "counts across every level plus the sentinel must sum to total_words")

	assert.Equal(t, 1, got.UnknownCount)
	assert.InDelta(t, 0.25, got.UnknownRatio, 1e-9)
}

func TestAnalyzeBook_SuitabilityIsMonotonicallyNonDecreasing(t *testing.T) {
	a, cfg := cefrAnalyzer(t)
	book := common.NewStringSet("a", "b", "c", "d")

	got := a.AnalyzeBook("book1", book)

	levels := cfg.Levels()
	for k := 1; k < len(levels); k++ {
		assert.GreaterOrEqual(t, got.SuitabilityScores[levels[k]], got.SuitabilityScores[levels[k-1]])
	}
}

func TestAnalyzeBook_UnknownWordsDisjointFromLevelWords(t *testing.T) {
	a, cfg := cefrAnalyzer(t)
	book := common.NewStringSet("a", "c", "x", "y")

	got := a.AnalyzeBook("book1", book)

	for _, lvl := range cfg.Levels() {
		for w := range got.UnknownWords {
			assert.False(t, got.LevelDistributions[lvl].Words.Has(w))
		}
	}
}

func TestAnalyzeBook_EmptyVocabularyIsAllZero(t *testing.T) {
	a, _ := cefrAnalyzer(t)
	got := a.AnalyzeBook("empty-book", common.NewStringSet())

	assert.Equal(t, 0, got.TotalWords)
	assert.Equal(t, 0.0, got.DifficultyScore)
	assert.Equal(t, 0.0, got.LearningValue)
	assert.Equal(t, 0.0, got.UnknownRatio)
}

func TestAnalyzeBook_DifficultyCategoryThresholds(t *testing.T) {
	a, _ := cefrAnalyzer(t)

	allUnknown := a.AnalyzeBook("hard", common.NewStringSet("x", "y", "z"))
	assert.Equal(t, analyzer.Advanced, allUnknown.DifficultyCategory())

	allEasiest := a.AnalyzeBook("easy", common.NewStringSet("a", "b"))
	assert.Equal(t, analyzer.Beginner, allEasiest.DifficultyCategory())
}

func TestAnalyzeBook_Idempotent(t *testing.T) {
	a, _ := cefrAnalyzer(t)
	book := common.NewStringSet("a", "b", "c", "d", "x")

	first := a.AnalyzeBook("book1", book)
	second := a.AnalyzeBook("book1", book)

	diff := cmp.Diff(first, second)
	assert.Empty(t, diff, "analyzing the same book twice must produce an equal BookAnalysis")
}

func TestAnalyzeAll_DeterministicAcrossScheduling(t *testing.T) {
	a, _ := cefrAnalyzer(t)
	books := map[string]common.StringSet{
		"book1": common.NewStringSet("a", "b"),
		"book2": common.NewStringSet("c", "d"),
		"book3": common.NewStringSet("x"),
	}

	results, err := a.AnalyzeAll(context.Background(), books)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, 2, results["book1"].TotalWords)
	assert.Equal(t, 1, results["book3"].UnknownCount)
}
