package walk_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/walk"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range files {
		abs := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte("x"), 0o644))
	}
	return root
}

func TestWalk_YieldsEveryRegularFile(t *testing.T) {
	root := writeTree(t, "main.go", "pkg/util.go")
	w := walk.New()
	paths, err := w.Walk(context.Background(), root, nil, nil, nil)
	require.NoError(t, err)
	sort.Strings(paths)
	assert.Equal(t, []string{"main.go", "pkg/util.go"}, paths)
}

func TestWalk_HonorsContractExcludedPaths(t *testing.T) {
	root := writeTree(t, "main.go", "vendor/dep/dep.go")
	w := walk.New()
	contract := &domain.Contract{ExcludedPaths: []string{"vendor/**"}}
	paths, err := w.Walk(context.Background(), root, contract, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, paths)
}

func TestWalk_CLIExcludeLayersOnTopOfContract(t *testing.T) {
	root := writeTree(t, "main.go", "internal/gen.go")
	w := walk.New()
	paths, err := w.Walk(context.Background(), root, nil, nil, []string{"internal/**"})
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, paths)
}

func TestWalk_IncludeGlobRestrictsToMatches(t *testing.T) {
	root := writeTree(t, "main.go", "README.md")
	w := walk.New()
	paths, err := w.Walk(context.Background(), root, nil, []string{"*.go"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, paths)
}

func TestWalk_SkipsGitDirectory(t *testing.T) {
	root := writeTree(t, "main.go", ".git/HEAD")
	w := walk.New()
	paths, err := w.Walk(context.Background(), root, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, paths)
}

func TestSplitExtension_LowercasesAndKeepsDot(t *testing.T) {
	assert.Equal(t, ".go", walk.SplitExtension("pkg/Util.GO"))
	assert.Equal(t, "", walk.SplitExtension("Makefile"))
}
