// Package corpus derives the level-partitioned vocabulary the analyzer and
// generator both key off of: turning a flat word→level mapping into one set
// per configured level, plus the union "known words" set.
//
// Loading the raw book-vocabulary and word-level-map data itself — from
// files, a database, whatever a host program uses — is an external
// collaborator; this package only consumes the already-parsed
// map[string]string a loader produced.
package corpus

import (
	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/level"
)

// WordLevelMap maps a word token to the name of the level it belongs to.
type WordLevelMap map[string]string

// LevelVocabulary is the derived per-level partition of a WordLevelMap: one
// disjoint set of words per configured level, plus their union.
type LevelVocabulary struct {
	perLevel map[string]common.StringSet
	known    common.StringSet
}

// BuildLevelVocabulary partitions wlm into one set per level in cfg. A word
// mapped to a level not present in cfg is a construction-time error: every
// mapped level must appear in cfg's configured levels. Empty string words
// are ignored rather than rejected — malformed entries are tolerated here
// the same way the analyzer tolerates them in a book's own vocabulary.
func BuildLevelVocabulary(cfg *level.Config, wlm WordLevelMap) (*LevelVocabulary, error) {
	perLevel := make(map[string]common.StringSet, cfg.NumLevels())
	for _, lvl := range cfg.Levels() {
		perLevel[lvl] = common.NewStringSet()
	}

	for word, lvl := range wlm {
		if word == "" {
			continue
		}
		set, ok := perLevel[lvl]
		if !ok {
			return nil, common.NewError(common.ErrorTypeUnknownLevel, "word %q is mapped to level %q, which is not configured", word, lvl)
		}
		set.Add(word)
	}

	known := common.NewStringSet()
	for _, set := range perLevel {
		known = known.Union(set)
	}

	return &LevelVocabulary{perLevel: perLevel, known: known}, nil
}

// Words returns the set of known words belonging to levelName. The returned
// set must not be mutated by the caller; it is shared, read-only state
// reused across every book's analysis.
func (lv *LevelVocabulary) Words(levelName string) common.StringSet {
	return lv.perLevel[levelName]
}

// Known returns the union of every configured level's words.
func (lv *LevelVocabulary) Known() common.StringSet {
	return lv.known
}

// TargetVocabulary returns a fresh copy of the per-level word sets, suitable
// for passing as the generator's target vocabulary when the caller has no
// narrower target in mind — typically equal to these sets but the caller is
// free to narrow its own copy. Copies are returned so doing that can't
// corrupt the shared LevelVocabulary.
func (lv *LevelVocabulary) TargetVocabulary() map[string]common.StringSet {
	out := make(map[string]common.StringSet, len(lv.perLevel))
	for lvl, words := range lv.perLevel {
		out[lvl] = words.Clone()
	}
	return out
}

// LevelCounts returns the number of known words per configured level, used
// by PathFacade.GetLevelVocabularyStats.
func (lv *LevelVocabulary) LevelCounts() map[string]int {
	out := make(map[string]int, len(lv.perLevel))
	for lvl, words := range lv.perLevel {
		out[lvl] = words.Len()
	}
	return out
}
