package pathgen

import (
	"sort"

	"github.com/google/uuid"

	"github.com/benjaminwangfan/reading-path-builer/pkg/analyzer"
	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/level"
)

// Generator runs the layered greedy selector over a fixed Config.
type Generator struct {
	cfg *level.Config
}

// New builds a Generator bound to cfg.
func New(cfg *level.Config) *Generator {
	return &Generator{cfg: cfg}
}

// CreateProgressiveReadingPath is the package's public contract: given every
// book's analysis, a per-level target vocabulary, and run parameters, it
// returns the assembled path Result. Parameters are validated before any
// selection starts, so an inconsistent configuration fails fast rather than
// partway through a run.
func (g *Generator) CreateProgressiveReadingPath(analyses map[string]analyzer.BookAnalysis, targetVocabulary map[string]common.StringSet, params Parameters) (Result, error) {
	if err := params.Validate(g.cfg); err != nil {
		return Result{}, err
	}

	runID := uuid.NewString()
	levels := g.cfg.Levels()
	bookIDs := common.SortedKeys(analyses)

	cumulativeCovered := common.NewStringSet()
	alreadySelected := common.NewStringSet()

	levelResults := make(map[string]LevelSelectionResult, len(levels))
	cumulativeSnapshots := make(map[string]CoverageSnapshot, len(levels))
	difficultyProgression := make([]LevelDifficultyAverage, 0, len(levels))
	var totalBooks []string

	for _, lvl := range levels {
		criteria := criteriaForLevel(params)
		target := targetVocabulary[lvl]
		if target == nil {
			target = common.NewStringSet()
		}
		targetTotal := target.Len()

		candidateIDs, candidates := filterCandidates(bookIDs, analyses, alreadySelected, criteria, lvl)

		remaining := target.Difference(cumulativeCovered)
		newlyCovered := common.NewStringSet()
		var selected []string

		maxBooks := params.MaxBooksPerLevel[lvl]
		targetCoverage := params.TargetCoveragePerLevel[lvl]
		iteration := 0

		for len(selected) < maxBooks &&
			!coverageReached(newlyCovered.Len(), targetTotal, targetCoverage) &&
			remaining.Len() > 0 &&
			len(candidateIDs) > 0 {

			iteration++
			bestID, ok := pickBest(g.cfg, candidates, candidateIDs, lvl, remaining, iteration)
			if !ok {
				break
			}

			a := candidates[bestID]
			dist := a.LevelDistributions[lvl]
			newWordsAtLevel := dist.Words.Intersect(remaining)

			selected = append(selected, bestID)
			newlyCovered = newlyCovered.Union(newWordsAtLevel)
			remaining = remaining.Difference(newWordsAtLevel)
			candidateIDs = removeID(candidateIDs, bestID)

			common.With("run_id", runID, "level", lvl, "book_id", bestID).Debugw("book selected",
				"iteration", iteration,
				"new_words_covered", newWordsAtLevel.Len(),
			)
		}

		coverage := 0.0
		if targetTotal > 0 {
			coverage = float64(newlyCovered.Len()) / float64(targetTotal)
		}

		levelResults[lvl] = LevelSelectionResult{
			TargetLevel:     lvl,
			SelectedBooks:   selected,
			Coverage:        coverage,
			NewWordsCovered: newlyCovered,
			TargetWords:     targetTotal,
			CoveredWords:    newlyCovered.Len(),
			BooksCount:      len(selected),
		}

		var difficultySum float64
		for _, id := range selected {
			a := analyses[id]
			alreadySelected.Add(id)
			totalBooks = append(totalBooks, id)
			difficultySum += a.DifficultyScore
			for _, otherLevel := range levels {
				if d, ok := a.LevelDistributions[otherLevel]; ok {
					cumulativeCovered = cumulativeCovered.Union(d.Words)
				}
			}
		}
		avgDifficulty := 0.0
		if len(selected) > 0 {
			avgDifficulty = difficultySum / float64(len(selected))
		}
		difficultyProgression = append(difficultyProgression, LevelDifficultyAverage{Level: lvl, AverageDifficulty: avgDifficulty})

		snapshot := CoverageSnapshot{Total: targetTotal}
		if targetTotal > 0 {
			snapshot.Covered = target.Intersect(cumulativeCovered).Len()
			snapshot.Ratio = float64(snapshot.Covered) / float64(targetTotal)
		}
		cumulativeSnapshots[lvl] = snapshot

		common.With("run_id", runID, "level", lvl).Infow("level selection complete",
			"books_selected", len(selected),
			"coverage", coverage,
			"cumulative_ratio", snapshot.Ratio,
		)
	}

	booksPerLevel := make(map[string]int, len(levels))
	for _, lvl := range levels {
		booksPerLevel[lvl] = levelResults[lvl].BooksCount
	}

	return Result{
		RunID:              runID,
		Levels:             levelResults,
		TotalBooks:         totalBooks,
		CumulativeCoverage: cumulativeSnapshots,
		Summary: Summary{
			TotalBooks:            len(totalBooks),
			BooksPerLevel:         booksPerLevel,
			FinalCoverage:         cumulativeSnapshots,
			DifficultyProgression: difficultyProgression,
		},
	}, nil
}

// coverageReached reports whether newlyCovered/target has already reached
// targetCoverage. An empty target vocabulary is considered "reached"
// immediately, by convention, rather than dividing by zero.
func coverageReached(newlyCovered, targetTotal int, targetCoverage float64) bool {
	if targetTotal == 0 {
		return true
	}
	return float64(newlyCovered)/float64(targetTotal) >= targetCoverage
}

// filterCandidates discards books that fail the quality floor for this
// level and returns the survivors' IDs pre-sorted by learning_value
// descending. That ordering is only a hint for callers that want a stable
// starting point — the final pick is fully determined by pickBest
// regardless of this order.
func filterCandidates(bookIDs []string, analyses map[string]analyzer.BookAnalysis, alreadySelected common.StringSet, criteria SelectionCriteria, targetLevel string) ([]string, map[string]analyzer.BookAnalysis) {
	candidates := make(map[string]analyzer.BookAnalysis)
	for _, id := range bookIDs {
		if alreadySelected.Has(id) {
			continue
		}
		a := analyses[id]
		if a.UnknownRatio > criteria.MaxUnknownRatio {
			continue
		}
		if a.SuitabilityScores[targetLevel] < criteria.MinSuitabilityScore {
			continue
		}
		dist, ok := a.LevelDistributions[targetLevel]
		if !ok || dist.Count < criteria.MinTargetWords {
			continue
		}
		candidates[id] = a
	}

	ids := make([]string, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if candidates[ids[i]].LearningValue != candidates[ids[j]].LearningValue {
			return candidates[ids[i]].LearningValue > candidates[ids[j]].LearningValue
		}
		return ids[i] < ids[j]
	})

	return ids, candidates
}

// pickBest scores every remaining candidate and returns the winner: highest
// score; ties broken by lower unknown_count, then higher learning_value,
// then lexicographic book_id.
func pickBest(cfg *level.Config, candidates map[string]analyzer.BookAnalysis, candidateIDs []string, targetLevel string, remaining common.StringSet, iteration int) (string, bool) {
	bestID := ""
	bestScore := 0.0
	found := false

	for _, id := range candidateIDs {
		a := candidates[id]
		s := score(cfg, a, targetLevel, remaining, iteration)
		if s <= 0 {
			continue
		}
		if !found || isBetter(s, a, id, bestScore, candidates[bestID], bestID) {
			bestID = id
			bestScore = s
			found = true
		}
	}

	return bestID, found
}

func isBetter(scoreX float64, x analyzer.BookAnalysis, idX string, scoreY float64, y analyzer.BookAnalysis, idY string) bool {
	if scoreX != scoreY {
		return scoreX > scoreY
	}
	if x.UnknownCount != y.UnknownCount {
		return x.UnknownCount < y.UnknownCount
	}
	if x.LearningValue != y.LearningValue {
		return x.LearningValue > y.LearningValue
	}
	return idX < idY
}

func removeID(ids []string, target string) []string {
	out := make([]string, 0, len(ids)-1)
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
