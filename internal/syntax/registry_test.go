package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/syntax"
)

func TestNewRegistry_DispatchesKnownExtensions(t *testing.T) {
	r := syntax.NewRegistry()
	for _, ext := range []string{".go", ".py", ".js", ".ts", ".java", ".c", ".cpp", ".rs", ".scala", ".swift"} {
		analyzer, ok := r.AnalyzerFor(ext)
		require.True(t, ok, "expected an analyzer for %s", ext)
		assert.NotEmpty(t, analyzer.LanguageID())
	}
}

func TestNewRegistry_UnknownExtensionNotFound(t *testing.T) {
	r := syntax.NewRegistry()
	_, ok := r.AnalyzerFor(".cobol")
	assert.False(t, ok)
}

func TestNewRegistry_SupportedExtensionsNonEmpty(t *testing.T) {
	r := syntax.NewRegistry()
	assert.NotEmpty(t, r.SupportedExtensions())
}

func TestGenericAnalyzer_ParsesGoFunctionDeclaration(t *testing.T) {
	r := syntax.NewRegistry()
	analyzer, ok := r.AnalyzerFor(".go")
	require.True(t, ok)

	source := []byte("package demo\n\nfunc Add(a, b int) int {\n\treturn a + b\n}\n")
	pf, err := analyzer.Analyze("demo.go", "/fixture/demo.go", source)
	require.NoError(t, err)

	assert.Equal(t, "go", pf.Language)
	assert.False(t, pf.HasParseErrors)
	assert.GreaterOrEqual(t, pf.TotalLines, 5)
	require.NotEmpty(t, pf.Declarations)

	found := false
	for _, d := range pf.Declarations {
		if d.Name == "Add" {
			found = true
		}
	}
	assert.True(t, found, "expected a declaration named Add")
}

func TestGenericAnalyzer_RecoversFromUnparsableSource(t *testing.T) {
	r := syntax.NewRegistry()
	analyzer, ok := r.AnalyzerFor(".go")
	require.True(t, ok)

	pf, err := analyzer.Analyze("broken.go", "/fixture/broken.go", []byte("@@@ not even close to go source $$$"))
	require.NoError(t, err)
	assert.Equal(t, "go", pf.Language)
}

// complexityOf returns the Complexity of the first declaration named name,
// failing the test if none is found.
func complexityOf(t *testing.T, pf *domain.ParsedFile, name string) int {
	t.Helper()
	for _, d := range pf.Declarations {
		if d.Name == name {
			return d.Complexity
		}
	}
	t.Fatalf("no declaration named %q", name)
	return -1
}

func TestGenericAnalyzer_JavaSwitchDefaultArmDoesNotAddComplexity(t *testing.T) {
	r := syntax.NewRegistry()
	analyzer, ok := r.AnalyzerFor(".java")
	require.True(t, ok)

	source := []byte(`class Demo {
	int classify(int x) {
		switch (x) {
			case 1:
				return 1;
			case 2:
				return 2;
			default:
				return 0;
		}
	}
}
`)
	pf, err := analyzer.Analyze("Demo.java", "/fixture/Demo.java", source)
	require.NoError(t, err)
	assert.Equal(t, 3, complexityOf(t, pf, "classify"), "two case labels should add 2 over the base of 1; the default label must not add a third")
}

func TestGenericAnalyzer_CSwitchDefaultArmDoesNotAddComplexity(t *testing.T) {
	r := syntax.NewRegistry()
	analyzer, ok := r.AnalyzerFor(".c")
	require.True(t, ok)

	source := []byte(`int classify(int x) {
	switch (x) {
		case 1:
			return 1;
		case 2:
			return 2;
		default:
			return 0;
	}
}
`)
	pf, err := analyzer.Analyze("demo.c", "/fixture/demo.c", source)
	require.NoError(t, err)
	assert.Equal(t, 3, complexityOf(t, pf, "classify"))
}

func TestGenericAnalyzer_CppSwitchDefaultArmDoesNotAddComplexity(t *testing.T) {
	r := syntax.NewRegistry()
	analyzer, ok := r.AnalyzerFor(".cpp")
	require.True(t, ok)

	source := []byte(`int classify(int x) {
	switch (x) {
		case 1:
			return 1;
		case 2:
			return 2;
		default:
			return 0;
	}
}
`)
	pf, err := analyzer.Analyze("demo.cpp", "/fixture/demo.cpp", source)
	require.NoError(t, err)
	assert.Equal(t, 3, complexityOf(t, pf, "classify"))
}

func TestGenericAnalyzer_RustExtractsSelfReferenceAndThirdPartyImportsAlike(t *testing.T) {
	// The syntax analyzer extracts every use path verbatim; distinguishing
	// a self-reference (crate::/self::/super::) from a real third-party
	// dependency is internal/registry's job, exercised separately in
	// internal/registry/stdlib_test.go.
	r := syntax.NewRegistry()
	analyzer, ok := r.AnalyzerFor(".rs")
	require.True(t, ok)

	source := []byte(`use crate::util::helper;
use self::local;
use super::shared;
use serde::Deserialize;

fn main() {}
`)
	pf, err := analyzer.Analyze("demo.rs", "/fixture/demo.rs", source)
	require.NoError(t, err)

	var paths []string
	for _, imp := range pf.Imports {
		paths = append(paths, imp.ModulePath)
	}
	assert.Contains(t, paths, "serde::Deserialize")
	assert.Contains(t, paths, "crate::util::helper")
}

func TestGenericAnalyzer_TypeDeclarationsHaveNonZeroComplexity(t *testing.T) {
	r := syntax.NewRegistry()
	analyzer, ok := r.AnalyzerFor(".go")
	require.True(t, ok)

	source := []byte("package demo\n\ntype Widget struct {\n\tName string\n}\n\nconst MaxRetries = 3\n")
	pf, err := analyzer.Analyze("demo.go", "/fixture/demo.go", source)
	require.NoError(t, err)

	for _, d := range pf.Declarations {
		assert.GreaterOrEqualf(t, d.Complexity, 1, "declaration %q must satisfy the >= 1 complexity invariant", d.Name)
	}
}
