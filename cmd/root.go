package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/benjaminwangfan/reading-path-builer/cmd/evaluate"
	"github.com/benjaminwangfan/reading-path-builer/cmd/generate"
	"github.com/benjaminwangfan/reading-path-builer/cmd/stats"
	"github.com/benjaminwangfan/reading-path-builer/cmd/validate"
	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
)

var (
	verbose    bool
	corpusFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "readingpath",
	Short: "Vocabulary-coverage-driven reading path builder",
	Long: `readingpath turns a book corpus and a word→level map into a
progressive reading path: for each configured difficulty level, in order,
it greedily selects the books that cover the most new target vocabulary
under configurable quality constraints.

It provides commands for:
  - Generating a reading path from a corpus file
  - Evaluating a single book against a single level
  - Printing vocabulary and book statistics
  - Validating a corpus file before a run`,
	SilenceErrors: true, // Execute logs the failure itself, through common.Error
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.SetVerbose(verbose)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to rootCmd.
func Execute() {
	defer common.Sync()
	if err := rootCmd.Execute(); err != nil {
		common.Error("command failed: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&corpusFile, "corpus", "c", "reading-path.yaml", "path to the corpus YAML file")

	rootCmd.AddCommand(generate.GetCommand(&corpusFile))
	rootCmd.AddCommand(evaluate.GetCommand(&corpusFile))
	rootCmd.AddCommand(stats.GetCommand(&corpusFile))
	rootCmd.AddCommand(validate.GetCommand(&corpusFile))
}
