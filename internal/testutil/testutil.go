// Package testutil provides fixture helpers shared by hollowcheck's
// package-level tests: building throwaway source trees on disk and
// running a single file through a LanguageRegistry without the
// boilerplate of extension lookup + error handling at every call site.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/domain"
)

// WriteTree materializes files (relPath -> contents) under a fresh
// t.TempDir() and returns its root.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, contents := range files {
		abs := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(contents), 0o644))
	}
	return root
}

// AnalyzeSource dispatches relPath's extension through registry and runs
// the resulting analyzer over source, failing the test if no analyzer is
// registered for the extension.
func AnalyzeSource(t *testing.T, reg domain.LanguageRegistry, relPath, source string) *domain.ParsedFile {
	t.Helper()
	ext := filepath.Ext(relPath)
	analyzer, ok := reg.AnalyzerFor(ext)
	require.True(t, ok, "no analyzer registered for extension %q", ext)

	pf, err := analyzer.Analyze(relPath, filepath.Join("/fixture", relPath), []byte(source))
	require.NoError(t, err)
	return pf
}

// FindFinding returns the first Finding matching rule in findings, or nil.
func FindFinding(findings []domain.Finding, rule domain.Rule) *domain.Finding {
	for i := range findings {
		if findings[i].Rule == rule {
			return &findings[i]
		}
	}
	return nil
}

// CountFindings returns how many findings in findings match rule.
func CountFindings(findings []domain.Finding, rule domain.Rule) int {
	n := 0
	for _, f := range findings {
		if f.Rule == rule {
			n++
		}
	}
	return n
}
