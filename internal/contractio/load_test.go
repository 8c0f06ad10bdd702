package contractio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/internal/apperr"
	"github.com/hollowcheck/hollowcheck/internal/contractio"
)

func writeContract(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "hollowcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidContractCompilesPatterns(t *testing.T) {
	path := writeContract(t, `
version: "1"
name: demo
threshold: 25
forbidden_patterns:
  - pattern: "TODO: implement"
    description: "unresolved todo"
mock_signatures:
  patterns:
    - pattern: "return true // mock"
`)
	c, err := contractio.Load(path)
	require.NoError(t, err)
	require.Len(t, c.ForbiddenPattern, 1)
	require.NotNil(t, c.ForbiddenPattern[0].Compiled)
	assert.True(t, c.ForbiddenPattern[0].Compiled.MatchString("// TODO: implement later"))

	require.NotNil(t, c.MockSignatures)
	require.Len(t, c.MockSignatures.Patterns, 1)
	require.NotNil(t, c.MockSignatures.Patterns[0].Compiled)
}

func TestLoad_MissingFileReturnsContractError(t *testing.T) {
	_, err := contractio.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	appErr, ok := err.(*apperr.Error)
	require.True(t, ok)
	assert.Equal(t, 2, appErr.ExitCode())
}

func TestLoad_MissingVersionFailsValidation(t *testing.T) {
	path := writeContract(t, `
name: demo
threshold: 25
`)
	_, err := contractio.Load(path)
	require.Error(t, err)
}

func TestLoad_InvalidRegexFailsCompilation(t *testing.T) {
	path := writeContract(t, `
version: "1"
forbidden_patterns:
  - pattern: "("
`)
	_, err := contractio.Load(path)
	require.Error(t, err)
}

func TestLoad_RequiredSymbolMissingFieldsFailsValidation(t *testing.T) {
	path := writeContract(t, `
version: "1"
required_symbols:
  - kind: function
`)
	_, err := contractio.Load(path)
	require.Error(t, err)
}
