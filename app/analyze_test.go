package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/app"
	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/service"
)

// fakeWalker returns a fixed set of relative paths regardless of root,
// so tests don't depend on a real filesystem walk.
type fakeWalker struct {
	paths []string
	err   error
}

func (w *fakeWalker) Walk(_ context.Context, _ string, _ *domain.Contract, _, _ []string) ([]string, error) {
	return w.paths, w.err
}

// fakeAnalyzer turns a fixed source string into a pre-built ParsedFile,
// bypassing tree-sitter entirely so these tests exercise orchestration
// without depending on any language grammar.
type fakeAnalyzer struct {
	build func(relPath, absPath string, source []byte) (*domain.ParsedFile, error)
}

func (a *fakeAnalyzer) Analyze(relPath, absPath string, source []byte) (*domain.ParsedFile, error) {
	return a.build(relPath, absPath, source)
}

func (a *fakeAnalyzer) LanguageID() string     { return "fake" }
func (a *fakeAnalyzer) Extensions() []string   { return []string{".go"} }

type fakeRegistry struct {
	analyzer domain.LanguageAnalyzer
}

func (r *fakeRegistry) AnalyzerFor(ext string) (domain.LanguageAnalyzer, bool) {
	return r.analyzer, true
}

func (r *fakeRegistry) SupportedExtensions() []string { return []string{".go"} }

func newStubFunctionAnalyzer() domain.LanguageAnalyzer {
	return &fakeAnalyzer{build: func(relPath, absPath string, source []byte) (*domain.ParsedFile, error) {
		return &domain.ParsedFile{
			RelPath: relPath,
			AbsPath: absPath,
			Source:  source,
			Declarations: []domain.Declaration{
				{Name: "doStuff", Kind: domain.DeclFunction, IsStub: true, Stub: domain.StubEmpty, StartLine: 1},
			},
		}, nil
	}}
}

func newUseCaseWithFakes(t *testing.T, walker domain.FileWalker, registry domain.LanguageRegistry) *app.AnalyzeUseCase {
	t.Helper()
	progress := &domain.NoOpProgressManager{}
	return &app.AnalyzeUseCase{
		Walker:   walker,
		Registry: registry,
		Parser:   service.NewParallelParser(progress),
		CacheDir: t.TempDir(),
		Progress: progress,
	}
}

func TestAnalyze_ReturnsStubFinding(t *testing.T) {
	walker := &fakeWalker{paths: []string{"main.go"}}
	registry := &fakeRegistry{analyzer: newStubFunctionAnalyzer()}
	u := newUseCaseWithFakes(t, walker, registry)

	contract := &domain.Contract{Version: "1"}
	opts := domain.DefaultOptions()
	opts.SkipRegistryCheck = true

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n"), 0o644))

	report, err := u.Analyze(context.Background(), root, contract, opts)
	require.NoError(t, err)

	var found bool
	for _, v := range report.Violations {
		if v.Rule == domain.RuleStubFunction {
			found = true
		}
	}
	assert.True(t, found, "expected a stub_function violation")
	assert.Equal(t, 1, report.Summary.FilesScanned)
}

func TestAnalyze_ThresholdOverrideWins(t *testing.T) {
	walker := &fakeWalker{paths: []string{"main.go"}}
	registry := &fakeRegistry{analyzer: newStubFunctionAnalyzer()}
	u := newUseCaseWithFakes(t, walker, registry)

	contract := &domain.Contract{Version: "1"}
	opts := domain.DefaultOptions()
	opts.SkipRegistryCheck = true
	override := 100
	opts.ThresholdOverride = &override

	report, err := u.Analyze(context.Background(), t.TempDir(), contract, opts)
	require.NoError(t, err)
	assert.Equal(t, 100, report.Threshold)
	assert.True(t, report.Passed)
}

func TestAnalyze_SuppressionDirectiveSuppressesFinding(t *testing.T) {
	walker := &fakeWalker{paths: []string{"main.go"}}
	analyzer := &fakeAnalyzer{build: func(relPath, absPath string, source []byte) (*domain.ParsedFile, error) {
		return &domain.ParsedFile{
			RelPath: relPath,
			AbsPath: absPath,
			Source:  []byte("// hollowcheck:ignore-next-line stub_function - wip\nfunc doStuff() {}\n"),
			Declarations: []domain.Declaration{
				{Name: "doStuff", Kind: domain.DeclFunction, IsStub: true, Stub: domain.StubEmpty, StartLine: 2},
			},
		}, nil
	}}
	registry := &fakeRegistry{analyzer: analyzer}
	u := newUseCaseWithFakes(t, walker, registry)

	contract := &domain.Contract{Version: "1"}
	opts := domain.DefaultOptions()
	opts.SkipRegistryCheck = true

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n"), 0o644))

	report, err := u.Analyze(context.Background(), root, contract, opts)
	require.NoError(t, err)
	assert.Empty(t, report.Violations)
}

func TestAnalyze_WalkErrorWrappedAsInputError(t *testing.T) {
	walker := &fakeWalker{err: assertError{}}
	registry := &fakeRegistry{analyzer: newStubFunctionAnalyzer()}
	u := newUseCaseWithFakes(t, walker, registry)

	_, err := u.Analyze(context.Background(), t.TempDir(), &domain.Contract{Version: "1"}, domain.DefaultOptions())
	require.Error(t, err)
}

type assertError struct{}

func (assertError) Error() string { return "boom" }
