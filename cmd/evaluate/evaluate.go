package evaluate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminwangfan/reading-path-builer/cmd/internal/loadcorpus"
)

var corpusFlagPtr *string

func corpusFlag() string {
	if corpusFlagPtr == nil {
		return "reading-path.yaml"
	}
	return *corpusFlagPtr
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <book-id> <level>",
	Short: "Evaluate a single book against a single level",
	Long: `Evaluate reports a book's suitability score, level word count and
ratio, unknown-word ratio, difficulty category, and whether it meets the
standard preset's default selection criteria for the given level.

Example:
  readingpath evaluate moby-dick B2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), corpusFlag(), args[0], args[1])
	},
}

// GetCommand returns the evaluate command, bound to the root command's
// shared --corpus flag.
func GetCommand(corpusFile *string) *cobra.Command {
	corpusFlagPtr = corpusFile
	return evaluateCmd
}

func run(ctx context.Context, corpusPath, bookID, levelName string) error {
	f, err := loadcorpus.Facade(ctx, corpusPath)
	if err != nil {
		return err
	}

	eval, err := f.EvaluateBookForLevel(bookID, levelName)
	if err != nil {
		return fmt.Errorf("evaluating %s against %s: %w", bookID, levelName, err)
	}

	fmt.Printf("book:                  %s\n", eval.BookID)
	fmt.Printf("level:                 %s\n", eval.Level)
	fmt.Printf("suitability_score:     %.4f\n", eval.SuitabilityScore)
	fmt.Printf("level_word_count:      %d\n", eval.LevelWordCount)
	fmt.Printf("level_word_ratio:      %.4f\n", eval.LevelWordRatio)
	fmt.Printf("unknown_ratio:         %.4f\n", eval.UnknownRatio)
	fmt.Printf("difficulty_category:   %s\n", eval.DifficultyCategory)
	fmt.Printf("meets_default_criteria: %v\n", eval.MeetsDefaultCriteriaForLevel)
	return nil
}
