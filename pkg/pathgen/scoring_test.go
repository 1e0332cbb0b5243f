package pathgen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminwangfan/reading-path-builer/pkg/analyzer"
	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/level"
)

func testCEFRConfig(t *testing.T) *level.Config {
	t.Helper()
	cfg, err := level.CEFRPreset()
	require.NoError(t, err)
	return cfg
}

func TestScore_ZeroNewCoverageIsRejected(t *testing.T) {
	cfg := testCEFRConfig(t)
	a := analyzer.BookAnalysis{
		LevelDistributions: map[string]analyzer.VocabularyLevelStats{
			"A1": {Words: common.NewStringSet("a", "b"), Count: 2},
		},
	}
	remaining := common.NewStringSet("c", "d") // disjoint from the book's A1 words
	assert.LessOrEqual(t, score(cfg, a, "A1", remaining, 1), 0.0)
}

func TestScore_RewardsNewCoverage(t *testing.T) {
	cfg := testCEFRConfig(t)
	small := analyzer.BookAnalysis{
		LevelDistributions: map[string]analyzer.VocabularyLevelStats{
			"A1": {Words: common.NewStringSet("a"), Count: 1},
		},
	}
	large := analyzer.BookAnalysis{
		LevelDistributions: map[string]analyzer.VocabularyLevelStats{
			"A1": {Words: common.NewStringSet("a", "b", "c"), Count: 3},
		},
	}
	remaining := common.NewStringSet("a", "b", "c")
	assert.Greater(t, score(cfg, large, "A1", remaining, 1), score(cfg, small, "A1", remaining, 1))
}

func TestScore_PenalizesUnknownWords(t *testing.T) {
	cfg := testCEFRConfig(t)
	clean := analyzer.BookAnalysis{
		UnknownCount: 0,
		LevelDistributions: map[string]analyzer.VocabularyLevelStats{
			"A1": {Words: common.NewStringSet("a"), Count: 1},
		},
	}
	messy := analyzer.BookAnalysis{
		UnknownCount: 50,
		LevelDistributions: map[string]analyzer.VocabularyLevelStats{
			"A1": {Words: common.NewStringSet("a"), Count: 1},
		},
	}
	remaining := common.NewStringSet("a")
	assert.Greater(t, score(cfg, clean, "A1", remaining, 1), score(cfg, messy, "A1", remaining, 1))
}

func TestScore_ReviewBonusForEarlierLevels(t *testing.T) {
	cfg := testCEFRConfig(t)
	noReview := analyzer.BookAnalysis{
		LevelDistributions: map[string]analyzer.VocabularyLevelStats{
			"B1": {Words: common.NewStringSet("x"), Count: 1},
		},
	}
	withReview := analyzer.BookAnalysis{
		LevelDistributions: map[string]analyzer.VocabularyLevelStats{
			"A1": {Words: common.NewStringSet("a"), Count: 20},
			"B1": {Words: common.NewStringSet("x"), Count: 1},
		},
	}
	remaining := common.NewStringSet("x")
	assert.Greater(t, score(cfg, withReview, "B1", remaining, 1), score(cfg, noReview, "B1", remaining, 1))
}

func TestScore_UnknownLevelIsRejected(t *testing.T) {
	cfg := testCEFRConfig(t)
	a := analyzer.BookAnalysis{LevelDistributions: map[string]analyzer.VocabularyLevelStats{}}
	assert.LessOrEqual(t, score(cfg, a, "NotALevel", common.NewStringSet("a"), 1), 0.0)
}

func TestScore_EfficiencyBonusOnlyAfterIterationFloor(t *testing.T) {
	cfg := testCEFRConfig(t)
	a := analyzer.BookAnalysis{
		LevelDistributions: map[string]analyzer.VocabularyLevelStats{
			"A1": {Words: common.NewStringSet("a"), Count: 1},
		},
	}
	remaining := common.NewStringSet("a", "b", "c", "d")
	early := score(cfg, a, "A1", remaining, 1)
	late := score(cfg, a, "A1", remaining, efficiencyIterationMinimum+1)
	assert.Greater(t, late, early)
}

// newBookWords builds a StringSet of n distinct, level-qualified words so
// two fixtures never collide on the same word string.
func newBookWords(prefix string, n int) common.StringSet {
	words := make([]string, n)
	for i := 0; i < n; i++ {
		words[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return common.NewStringSet(words...)
}

func TestScore_ReviewBonusOrdering(t *testing.T) {
	cfg := testCEFRConfig(t)

	b1Words := newBookWords("b1word", 10)
	x := analyzer.BookAnalysis{
		LevelDistributions: map[string]analyzer.VocabularyLevelStats{
			"B1": {Words: b1Words, Count: 10},
		},
	}
	y := analyzer.BookAnalysis{
		LevelDistributions: map[string]analyzer.VocabularyLevelStats{
			"A1": {Words: newBookWords("a1word", 50), Count: 50},
			"A2": {Words: newBookWords("a2word", 50), Count: 50},
			"B1": {Words: b1Words, Count: 10},
		},
	}

	sx := score(cfg, x, "B1", b1Words, 1)
	sy := score(cfg, y, "B1", b1Words, 1)

	assert.Equal(t, 100.0, sx)
	assert.Equal(t, 150.0, sy)
	assert.Greater(t, sy, sx)
}

func TestScore_EfficiencyBonusActivation(t *testing.T) {
	cfg := testCEFRConfig(t)

	newWords := newBookWords("new", 10)
	remaining := newBookWords("new", 10).Union(newBookWords("stale", 10)) // |R| = 20
	a := analyzer.BookAnalysis{
		LevelDistributions: map[string]analyzer.VocabularyLevelStats{
			"A1": {Words: newWords, Count: 10},
		},
	}

	s := score(cfg, a, "A1", remaining, 3)

	assert.Equal(t, 125.0, s)
}
