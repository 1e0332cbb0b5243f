// Package facade exposes the single entry point a host program uses: one
// LevelConfig, one Analyzer pre-populated with every book's analysis, and
// one Generator, wired together behind a small call surface so a caller
// never has to juggle the three packages directly.
package facade

import (
	"context"

	"github.com/benjaminwangfan/reading-path-builer/pkg/analyzer"
	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/corpus"
	"github.com/benjaminwangfan/reading-path-builer/pkg/level"
	"github.com/benjaminwangfan/reading-path-builer/pkg/pathgen"
)

// PathFacade is the thin orchestrator described above. Constructed once per
// corpus/config pair, it performs every book's analysis eagerly so later
// calls only pay for path generation, not re-analysis.
type PathFacade struct {
	cfg       *level.Config
	vocab     *corpus.LevelVocabulary
	analyzer  *analyzer.Analyzer
	generator *pathgen.Generator
	analyses  map[string]analyzer.BookAnalysis
}

// New builds a PathFacade. booksVocab maps book_id to its vocabulary set;
// wordLevelMap maps word to level name. Analysis runs eagerly against cfg,
// so construction cost is O(books × average vocabulary size). Fails with
// EmptyCorpus if booksVocab has no entries, or with whatever error
// corpus.BuildLevelVocabulary / AnalyzeAll raise.
func New(ctx context.Context, booksVocab map[string]common.StringSet, wordLevelMap corpus.WordLevelMap, cfg *level.Config) (*PathFacade, error) {
	if len(booksVocab) == 0 {
		return nil, common.ErrEmptyCorpus
	}

	vocab, err := corpus.BuildLevelVocabulary(cfg, wordLevelMap)
	if err != nil {
		return nil, err
	}

	an := analyzer.New(cfg, vocab)
	analyses, err := an.AnalyzeAll(ctx, booksVocab)
	if err != nil {
		return nil, err
	}

	return &PathFacade{
		cfg:       cfg,
		vocab:     vocab,
		analyzer:  an,
		generator: pathgen.New(cfg),
		analyses:  analyses,
	}, nil
}

// CreateReadingPath runs the greedy selector once with params. A nil params
// falls back to the standard preset.
func (f *PathFacade) CreateReadingPath(params *pathgen.Parameters) (pathgen.Result, error) {
	p := params
	if p == nil {
		standard := pathgen.StandardPreset(f.cfg)
		p = &standard
	}
	return f.generator.CreateProgressiveReadingPath(f.analyses, f.vocab.TargetVocabulary(), *p)
}

// GetAlternativePaths runs create_reading_path once per requested preset
// name and returns the results in request order. Recognized names:
// conservative, standard (alias balanced), fast (alias aggressive). An
// empty strategies list defaults to all three in that order.
func (f *PathFacade) GetAlternativePaths(strategies []string) ([]NamedResult, error) {
	if len(strategies) == 0 {
		strategies = []string{"conservative", "standard", "fast"}
	}

	out := make([]NamedResult, 0, len(strategies))
	for _, name := range strategies {
		params, err := pathgen.GetPreset(name, f.cfg)
		if err != nil {
			return nil, common.NewError(common.ErrorTypeInvalidParameters, "%v", err)
		}
		result, err := f.generator.CreateProgressiveReadingPath(f.analyses, f.vocab.TargetVocabulary(), params)
		if err != nil {
			return nil, err
		}
		out = append(out, NamedResult{Strategy: name, Result: result})
	}
	return out, nil
}

// EvaluateBookForLevel reports bookID's suitability for levelName against
// the standard preset's per-level selection criteria.
func (f *PathFacade) EvaluateBookForLevel(bookID, levelName string) (BookEvaluation, error) {
	a, ok := f.analyses[bookID]
	if !ok {
		return BookEvaluation{}, common.NewError(common.ErrorTypeUnknownBook, "unknown book %q", bookID)
	}
	if _, err := f.cfg.IndexOf(levelName); err != nil {
		return BookEvaluation{}, err
	}

	dist := a.LevelDistributions[levelName]
	standard := pathgen.StandardPreset(f.cfg)

	meets := a.UnknownRatio <= standard.MaxUnknownRatio &&
		a.SuitabilityScores[levelName] >= standard.MinRelevantRatio &&
		dist.Count >= standard.MinTargetLevelWords

	return BookEvaluation{
		BookID:                       bookID,
		Level:                        levelName,
		SuitabilityScore:             a.SuitabilityScores[levelName],
		LevelWordCount:               dist.Count,
		LevelWordRatio:               dist.Ratio,
		UnknownRatio:                 a.UnknownRatio,
		DifficultyCategory:           a.DifficultyCategory(),
		MeetsDefaultCriteriaForLevel: meets,
	}, nil
}

// GetBookStatistics returns the full BookAnalysis computed at construction
// for bookID. Fails with UnknownBook if bookID was not in the corpus.
func (f *PathFacade) GetBookStatistics(bookID string) (analyzer.BookAnalysis, error) {
	a, ok := f.analyses[bookID]
	if !ok {
		return analyzer.BookAnalysis{}, common.NewError(common.ErrorTypeUnknownBook, "unknown book %q", bookID)
	}
	return a, nil
}

// GetLevelVocabularyStats returns the number of known words per configured
// level.
func (f *PathFacade) GetLevelVocabularyStats() map[string]int {
	return f.vocab.LevelCounts()
}
