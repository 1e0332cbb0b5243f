// Package loadcorpus wires corpusfile parsing into a ready-to-use
// facade.PathFacade, the one piece of plumbing every subcommand needs.
package loadcorpus

import (
	"context"
	"fmt"

	"github.com/benjaminwangfan/reading-path-builer/cmd/internal/corpusfile"
	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
	"github.com/benjaminwangfan/reading-path-builer/pkg/facade"
)

// Facade loads path as a corpus file and builds a facade.PathFacade from it.
// path is resolved against the corpus project root first, the same way the
// teacher resolves its asset paths against a repo-root marker file, so the
// default corpus file is found by walking up from the current directory
// rather than only ever being read relative to cwd.
func Facade(ctx context.Context, path string) (*facade.PathFacade, error) {
	resolved, err := common.ResolveRelative(path)
	if err != nil {
		return nil, fmt.Errorf("resolving corpus path %s: %w", path, err)
	}

	c, err := corpusfile.Load(resolved)
	if err != nil {
		return nil, err
	}

	cfg, err := c.BuildLevelConfig()
	if err != nil {
		return nil, fmt.Errorf("building level config: %w", err)
	}

	f, err := facade.New(ctx, c.BuildBooksVocab(), c.BuildWordLevelMap(), cfg)
	if err != nil {
		return nil, fmt.Errorf("building path facade: %w", err)
	}

	return f, nil
}
