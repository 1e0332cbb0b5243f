package common

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	resolvedCorpusRoot string
	pathsOnce          sync.Once
	pathsError         error
)

// RepoMarkerFiles are files that indicate the root of a reading-path-builder
// project directory, anchored the same way a Flutter tool anchors itself on
// pubspec.yaml — a file that only ever lives at the project root.
var RepoMarkerFiles = []string{"reading-path.yaml", "reading-path.yml"}

// initPaths resolves the corpus root once per process by checking the
// current working directory and up to five parent directories for a marker
// file.
func initPaths() {
	pathsOnce.Do(func() {
		root, err := findCorpusRoot()
		if err != nil {
			pathsError = err
			return
		}
		resolvedCorpusRoot = root
		Verbose("resolved corpus root: %s", root)
	})
}

func findCorpusRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for i := 0; i < 6; i++ {
		if isCorpusRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find a reading-path project root (looked for %v starting from %s)", RepoMarkerFiles, cwd)
}

func isCorpusRoot(dir string) bool {
	for _, marker := range RepoMarkerFiles {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// CorpusRoot returns the absolute path to the project root holding
// reading-path.yaml, the file that describes where the books/word-level
// corpus files live.
func CorpusRoot() (string, error) {
	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	return resolvedCorpusRoot, nil
}

// ResolveRelative resolves a path relative to the corpus root. Absolute
// paths are returned unchanged.
func ResolveRelative(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	root, err := CorpusRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, path), nil
}

// ResetPaths clears the cached corpus root. Useful for tests.
func ResetPaths() {
	resolvedCorpusRoot = ""
	pathsOnce = sync.Once{}
	pathsError = nil
}
