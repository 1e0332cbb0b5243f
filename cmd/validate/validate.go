package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminwangfan/reading-path-builer/cmd/internal/corpusfile"
	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/pathgen"
)

var (
	preset        string
	corpusFlagPtr *string
)

func corpusFlag() string {
	if corpusFlagPtr == nil {
		return "reading-path.yaml"
	}
	return *corpusFlagPtr
}

var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"val"},
	Short:   "Validate a corpus file before running generate",
	Long: `Validate checks a corpus file's level configuration, word→level map,
and book vocabularies, and confirms the chosen preset's parameters cover
every configured level — surfacing the same InvalidConfig/InvalidParameters
failures generate would hit, but before any selection work runs.

Examples:
  readingpath validate
  readingpath validate --preset fast`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(corpusFlag(), preset)
	},
}

// GetCommand returns the validate command, bound to the root command's
// shared --corpus flag.
func GetCommand(corpusFile *string) *cobra.Command {
	corpusFlagPtr = corpusFile
	return validateCmd
}

func init() {
	validateCmd.Flags().StringVar(&preset, "preset", "standard", "parameter preset to validate against")
}

func run(corpusPath, presetName string) error {
	common.Info("validating corpus file %s", corpusPath)

	resolved, err := common.ResolveRelative(corpusPath)
	if err != nil {
		return fmt.Errorf("resolving corpus path %s: %w", corpusPath, err)
	}

	c, err := corpusfile.Load(resolved)
	if err != nil {
		return err
	}

	cfg, err := c.BuildLevelConfig()
	if err != nil {
		return fmt.Errorf("level configuration: %w", err)
	}
	common.Verbose("level config OK: %d levels, sentinel %s", cfg.NumLevels(), cfg.Sentinel())

	wlm := c.BuildWordLevelMap()
	for word, lvl := range wlm {
		if word == "" {
			continue
		}
		if _, err := cfg.IndexOf(lvl); err != nil {
			return fmt.Errorf("word_level_map entry %q -> %q: %w", word, lvl, err)
		}
	}
	common.Verbose("word_level_map OK: %d entries", len(wlm))

	books := c.BuildBooksVocab()
	if len(books) == 0 {
		return fmt.Errorf("books_vocab has no entries")
	}
	for bookID, words := range books {
		if bookID == "" {
			return fmt.Errorf("books_vocab has an empty book id")
		}
		if words.Len() == 0 {
			common.Warning("book %q has an empty vocabulary; it will never be selected", bookID)
		}
	}
	common.Verbose("books_vocab OK: %d books", len(books))

	params, err := pathgen.GetPreset(presetName, cfg)
	if err != nil {
		return err
	}
	if err := params.Validate(cfg); err != nil {
		return fmt.Errorf("preset %q parameters: %w", presetName, err)
	}

	common.Info("corpus file %s is valid for preset %q", corpusPath, presetName)
	return nil
}
