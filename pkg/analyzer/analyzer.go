package analyzer

import (
	"context"

	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/corpus"
	"github.com/benjaminwangfan/reading-path-builer/pkg/level"
)

// Analyzer computes a BookAnalysis for one or many books against a fixed
// LevelVocabulary and Config. It holds only read-only, shared inputs, so a
// single Analyzer is safe to reuse (and to call AnalyzeBook on
// concurrently) across any number of books and generation runs — analyses
// are only invalidated if the Config itself changes.
type Analyzer struct {
	cfg   *level.Config
	vocab *corpus.LevelVocabulary
}

// New builds an Analyzer. Setup — deriving LevelVocabulary from a
// WordLevelMap — happens once, in corpus.BuildLevelVocabulary, before this
// is called, and is reused across every book.
func New(cfg *level.Config, vocab *corpus.LevelVocabulary) *Analyzer {
	return &Analyzer{cfg: cfg, vocab: vocab}
}

// AnalyzeBook computes the BookAnalysis for a single book's vocabulary.
// Costs O(|vocabulary|) given the precomputed LevelVocabulary sets. An empty
// vocabulary produces a valid, all-zero analysis rather than an error.
func (a *Analyzer) AnalyzeBook(bookID string, vocabulary common.StringSet) BookAnalysis {
	total := vocabulary.Len()
	levels := a.cfg.Levels()

	distributions := make(map[string]VocabularyLevelStats, len(levels)+1)
	suitability := make(map[string]float64, len(levels))

	var difficultyNumerator float64
	var learningValueSum float64
	cumulativeCount := 0

	for _, lvl := range levels {
		wordsAtLevel := vocabulary.Intersect(a.vocab.Words(lvl))
		count := wordsAtLevel.Len()

		var ratio float64
		if total > 0 {
			ratio = float64(count) / float64(total)
		}

		weight, _ := a.cfg.Weight(lvl) // lvl is always configured, error impossible
		weightedValue := float64(count) * weight

		distributions[lvl] = VocabularyLevelStats{
			Words:         wordsAtLevel,
			Count:         count,
			Ratio:         ratio,
			WeightedValue: weightedValue,
		}

		multiplier, _ := a.cfg.DifficultyMultiplier(lvl)
		difficultyNumerator += float64(count) * multiplier
		learningValueSum += weightedValue

		cumulativeCount += count
		if total > 0 {
			suitability[lvl] = float64(cumulativeCount) / float64(total)
		}
	}

	unknownWords := vocabulary.Difference(a.vocab.Known())
	unknownCount := unknownWords.Len()
	var unknownRatio float64
	if total > 0 {
		unknownRatio = float64(unknownCount) / float64(total)
	}

	sentinelMultiplier, _ := a.cfg.DifficultyMultiplier(a.cfg.Sentinel())
	difficultyNumerator += float64(unknownCount) * sentinelMultiplier
	distributions[a.cfg.Sentinel()] = VocabularyLevelStats{
		Words:         unknownWords,
		Count:         unknownCount,
		Ratio:         unknownRatio,
		WeightedValue: 0,
	}

	var difficultyScore, learningValue, learningWordsRatio float64
	if total > 0 {
		difficultyScore = difficultyNumerator / float64(total)
		learningValue = learningValueSum / float64(total)
		learningWordsRatio = float64(total-unknownCount) / float64(total)
	}

	analysis := BookAnalysis{
		BookID:             bookID,
		TotalWords:         total,
		LevelDistributions: distributions,
		UnknownWords:       unknownWords,
		UnknownCount:       unknownCount,
		UnknownRatio:       unknownRatio,
		DifficultyScore:    difficultyScore,
		LearningValue:      learningValue,
		SuitabilityScores:  suitability,
		LearningWordsRatio: learningWordsRatio,
	}

	common.With("book_id", bookID).Debugw("book analyzed",
		"total_words", total,
		"unknown_ratio", unknownRatio,
		"difficulty_score", difficultyScore,
		"learning_value", learningValue,
	)

	return analysis
}

// AnalyzeAll analyzes every book in books. Each book's analysis reads only
// immutable shared state (the level vocabulary and the config), so this
// fans out across goroutines via common.ParallelMap; the result is keyed by
// book_id so it is independent of goroutine scheduling.
func (a *Analyzer) AnalyzeAll(ctx context.Context, books map[string]common.StringSet) (map[string]BookAnalysis, error) {
	keys := common.SortedKeys(books)
	return common.ParallelMap(ctx, keys, func(_ context.Context, bookID string) (BookAnalysis, error) {
		return a.AnalyzeBook(bookID, books[bookID]), nil
	})
}
