// Package corpusfile loads the YAML description of a reading-path corpus:
// the level configuration, the word→level map, and the per-book vocabulary
// sets a run needs. This is host/CLI code, not part of the core — the core
// packages take already-parsed Go values as constructor arguments.
package corpusfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/corpus"
	"github.com/benjaminwangfan/reading-path-builer/pkg/level"
)

// LevelConfigFile is the YAML shape of a level configuration. Preset, if
// non-empty, selects a builtin preset and every other field is ignored
// (except GradeLevels, consulted only when Preset == "grade").
type LevelConfigFile struct {
	Preset      string             `yaml:"preset"`
	GradeLevels int                `yaml:"grade_levels"`
	Levels      []string           `yaml:"levels"`
	Weights     map[string]float64 `yaml:"weights"`
	Progression string             `yaml:"progression"`
	Sentinel    string             `yaml:"sentinel"`
	Multipliers map[string]float64 `yaml:"multipliers"`
}

// Corpus is the full YAML document: a level configuration, the word→level
// map, and every book's vocabulary.
type Corpus struct {
	LevelConfig  LevelConfigFile     `yaml:"level_config"`
	WordLevelMap map[string]string   `yaml:"word_level_map"`
	BooksVocab   map[string][]string `yaml:"books_vocab"`
}

// Load reads and parses path as a Corpus document.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file %s: %w", path, err)
	}

	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing corpus file %s: %w", path, err)
	}
	return &c, nil
}

// BuildLevelConfig resolves the YAML level configuration into a
// *level.Config, either via a named preset or explicit fields.
func (c *Corpus) BuildLevelConfig() (*level.Config, error) {
	lc := c.LevelConfig
	switch lc.Preset {
	case "cefr":
		return level.CEFRPreset()
	case "grade":
		if lc.GradeLevels <= 0 {
			return nil, fmt.Errorf("grade preset requires grade_levels > 0")
		}
		return level.GradePreset(lc.GradeLevels)
	case "frequency":
		return level.FrequencyPreset()
	case "":
		progression := level.Progression(lc.Progression)
		return level.NewConfig(lc.Levels, lc.Weights, progression, lc.Sentinel, lc.Multipliers)
	default:
		return nil, fmt.Errorf("unknown level config preset %q", lc.Preset)
	}
}

// BuildWordLevelMap converts the YAML word→level map into corpus.WordLevelMap.
func (c *Corpus) BuildWordLevelMap() corpus.WordLevelMap {
	return corpus.WordLevelMap(c.WordLevelMap)
}

// BuildBooksVocab converts the YAML book→word-list map into the
// map[string]common.StringSet shape the analyzer expects.
func (c *Corpus) BuildBooksVocab() map[string]common.StringSet {
	out := make(map[string]common.StringSet, len(c.BooksVocab))
	for bookID, words := range c.BooksVocab {
		out[bookID] = common.NewStringSet(words...)
	}
	return out
}
