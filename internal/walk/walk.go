// Package walk implements the File Walker external collaborator
// spec.md §6 names: yielding relative paths under a root, honoring the
// contract's excluded_paths globs and CLI include/exclude overrides.
package walk

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/hollowcheck/hollowcheck/domain"
)

// Walker is the default domain.FileWalker implementation.
type Walker struct{}

func New() *Walker { return &Walker{} }

// Walk yields every regular file under root not excluded by the
// contract's excluded_paths, further filtered by include/exclude glob
// overrides from the CLI.
func (w *Walker) Walk(ctx context.Context, root string, contract *domain.Contract, include, exclude []string) ([]string, error) {
	var excludeGlobs []string
	if contract != nil {
		excludeGlobs = append(excludeGlobs, contract.ExcludedPaths...)
	}
	excludeGlobs = append(excludeGlobs, exclude...)

	var excluder gitignore.IgnoreParser
	if len(excludeGlobs) > 0 {
		excluder = gitignore.CompileIgnoreLines(excludeGlobs...)
	}
	var includer gitignore.IgnoreParser
	if len(include) > 0 {
		includer = gitignore.CompileIgnoreLines(include...)
	}

	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if excluder != nil && excluder.MatchesPath(rel) {
			return nil
		}
		if includer != nil && !includer.MatchesPath(rel) {
			return nil
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SplitExtension returns the lowercase, dot-prefixed extension of a
// relative path, e.g. "src/a.go" → ".go".
func SplitExtension(relPath string) string {
	return strings.ToLower(filepath.Ext(relPath))
}

var _ domain.FileWalker = (*Walker)(nil)
