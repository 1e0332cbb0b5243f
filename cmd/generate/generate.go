package generate

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/benjaminwangfan/reading-path-builer/cmd/internal/corpusfile"
	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/facade"
	"github.com/benjaminwangfan/reading-path-builer/pkg/pathgen"
)

var (
	preset string
	format string
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a progressive reading path from a corpus file",
	Long: `Generate runs the layered greedy selector once per configured level,
in order, producing a reading path that covers as much new target
vocabulary as possible under the chosen preset's quality constraints.

Examples:
  readingpath generate --corpus corpus.yaml
  readingpath generate --preset fast --format table`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), corpusFlag())
	},
}

var corpusFlagPtr *string

func corpusFlag() string {
	if corpusFlagPtr == nil {
		return "reading-path.yaml"
	}
	return *corpusFlagPtr
}

// GetCommand returns the generate command, bound to the root command's
// shared --corpus flag.
func GetCommand(corpusFile *string) *cobra.Command {
	corpusFlagPtr = corpusFile
	return generateCmd
}

func init() {
	generateCmd.Flags().StringVar(&preset, "preset", "standard", "parameter preset: conservative, standard, fast (and synonyms)")
	generateCmd.Flags().StringVar(&format, "format", "table", "output format: table or summary")
}

func run(ctx context.Context, corpusPath string) error {
	progress := common.NewProgress("loading corpus")
	progress.Start()

	resolved, err := common.ResolveRelative(corpusPath)
	if err != nil {
		progress.Stop()
		return fmt.Errorf("resolving corpus path %s: %w", corpusPath, err)
	}

	c, err := corpusfile.Load(resolved)
	if err != nil {
		progress.Stop()
		return err
	}
	progress.LogInfo("loaded corpus: %d books, %d word_level_map entries", len(c.BooksVocab), len(c.WordLevelMap))

	cfg, err := c.BuildLevelConfig()
	if err != nil {
		progress.Stop()
		return fmt.Errorf("building level config: %w", err)
	}

	f, err := facade.New(ctx, c.BuildBooksVocab(), c.BuildWordLevelMap(), cfg)
	if err != nil {
		progress.Stop()
		return fmt.Errorf("building path facade: %w", err)
	}

	progress.UpdateMessage("generating reading path (%s)", preset)
	params, err := pathgen.GetPreset(preset, cfg)
	if err != nil {
		progress.Stop()
		return err
	}

	result, err := f.CreateReadingPath(&params)
	progress.Stop()
	if err != nil {
		return fmt.Errorf("generating reading path: %w", err)
	}

	switch format {
	case "table":
		renderTable(result)
	default:
		renderSummary(result)
	}
	return nil
}

func renderSummary(result pathgen.Result) {
	fmt.Printf("run %s: %d books selected\n", result.RunID, result.Summary.TotalBooks)
	// DifficultyProgression is already in configured level order; ranging
	// BooksPerLevel directly would print levels in random map order.
	for _, avg := range result.Summary.DifficultyProgression {
		fmt.Printf("  %s: %d books\n", avg.Level, result.Summary.BooksPerLevel[avg.Level])
	}
}

func renderTable(result pathgen.Result) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	bold.Printf("Reading path %s\n", result.RunID)

	for _, avg := range result.Summary.DifficultyProgression {
		coverage := result.Summary.FinalCoverage[avg.Level]
		books := result.Levels[avg.Level]

		line := fmt.Sprintf("  %-10s books=%-3d avg_difficulty=%6.2f coverage=%.2f (%d/%d)",
			avg.Level, books.BooksCount, avg.AverageDifficulty, coverage.Ratio, coverage.Covered, coverage.Total)

		if coverage.Total > 0 && coverage.Ratio < 0.5 {
			yellow.Println(line)
		} else {
			green.Println(line)
		}
	}

	fmt.Printf("total books: %d\n", result.Summary.TotalBooks)
}
