package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/benjaminwangfan/reading-path-builer/cmd/internal/loadcorpus"
)

var (
	bookID        string
	corpusFlagPtr *string
)

func corpusFlag() string {
	if corpusFlagPtr == nil {
		return "reading-path.yaml"
	}
	return *corpusFlagPtr
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print vocabulary and book statistics for a corpus",
	Long: `Stats prints the per-level known-word counts derived from the
corpus's word→level map. With --book, it also prints that book's full
analysis: per-level distributions, difficulty score, and learning value.

Examples:
  readingpath stats
  readingpath stats --book moby-dick`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), corpusFlag(), bookID)
	},
}

// GetCommand returns the stats command, bound to the root command's shared
// --corpus flag.
func GetCommand(corpusFile *string) *cobra.Command {
	corpusFlagPtr = corpusFile
	return statsCmd
}

func init() {
	statsCmd.Flags().StringVar(&bookID, "book", "", "print full statistics for this book id")
}

func run(ctx context.Context, corpusPath, bookID string) error {
	f, err := loadcorpus.Facade(ctx, corpusPath)
	if err != nil {
		return err
	}

	vocabStats := f.GetLevelVocabularyStats()
	levels := make([]string, 0, len(vocabStats))
	for lvl := range vocabStats {
		levels = append(levels, lvl)
	}
	sort.Strings(levels)

	fmt.Println("level vocabulary:")
	for _, lvl := range levels {
		fmt.Printf("  %-10s %d known words\n", lvl, vocabStats[lvl])
	}

	if bookID == "" {
		return nil
	}

	a, err := f.GetBookStatistics(bookID)
	if err != nil {
		return fmt.Errorf("getting statistics for %s: %w", bookID, err)
	}

	fmt.Printf("\nbook %s:\n", a.BookID)
	fmt.Printf("  total_words:     %d\n", a.TotalWords)
	fmt.Printf("  unknown_count:   %d (%.4f)\n", a.UnknownCount, a.UnknownRatio)
	fmt.Printf("  difficulty:      %.4f (%s)\n", a.DifficultyScore, a.DifficultyCategory())
	fmt.Printf("  learning_value:  %.4f\n", a.LearningValue)
	for _, lvl := range levels {
		dist := a.LevelDistributions[lvl]
		fmt.Printf("  %-10s count=%-5d ratio=%.4f weighted_value=%.2f suitability=%.4f\n",
			lvl, dist.Count, dist.Ratio, dist.WeightedValue, a.SuitabilityScores[lvl])
	}
	return nil
}
