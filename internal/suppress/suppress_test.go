package suppress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/suppress"
)

func TestScan_FindsAllThreeDirectiveForms(t *testing.T) {
	source := []byte(`package foo
// hollowcheck:ignore-next-line stub_function - wip
func a() {}

func b() {} // hollowcheck:ignore mock_data - seeded fixture

// hollowcheck:ignore-file hollow_todo
`)
	sups := suppress.Scan("foo.go", source)
	require.Len(t, sups, 3)

	assert.Equal(t, domain.SuppressNextLine, sups[0].Type)
	assert.Equal(t, "stub_function", sups[0].Rule)
	assert.Equal(t, "wip", sups[0].Reason)
	assert.Equal(t, 2, sups[0].Line)

	assert.Equal(t, domain.SuppressLine, sups[1].Type)
	assert.Equal(t, "mock_data", sups[1].Rule)
	assert.Equal(t, "seeded fixture", sups[1].Reason)

	assert.Equal(t, domain.SuppressFile, sups[2].Type)
	assert.Equal(t, "hollow_todo", sups[2].Rule)
}

func TestScan_NoDirectivesReturnsNil(t *testing.T) {
	sups := suppress.Scan("foo.go", []byte("package foo\nfunc a() {}\n"))
	assert.Empty(t, sups)
}

func TestApply_DropsSuppressedFindingsByDefault(t *testing.T) {
	findings := []domain.Finding{
		{Rule: domain.RuleStubFunction, File: "foo.go", Line: 3},
		{Rule: domain.RuleMockData, File: "foo.go", Line: 10},
	}
	sups := []domain.Suppression{
		{Rule: "stub_function", File: "foo.go", Line: 2, Type: domain.SuppressNextLine},
	}
	out := suppress.Apply(findings, sups, false)
	require.Len(t, out, 1)
	assert.Equal(t, domain.RuleMockData, out[0].Rule)
}

func TestApply_ShowSuppressedRetainsWithFlag(t *testing.T) {
	findings := []domain.Finding{
		{Rule: domain.RuleStubFunction, File: "foo.go", Line: 3},
	}
	sups := []domain.Suppression{
		{Rule: "stub_function", File: "foo.go", Line: 2, Type: domain.SuppressNextLine},
	}
	out := suppress.Apply(findings, sups, true)
	require.Len(t, out, 1)
	assert.True(t, out[0].Suppressed)
	require.NotNil(t, out[0].Suppression)
}

func TestApply_WildcardRuleSuppressesAnyRule(t *testing.T) {
	findings := []domain.Finding{
		{Rule: domain.RuleGodObject, File: "foo.go", Line: 1},
	}
	sups := []domain.Suppression{
		{Rule: "*", File: "foo.go", Type: domain.SuppressFile},
	}
	out := suppress.Apply(findings, sups, false)
	assert.Empty(t, out)
}

func TestApply_SuppressionScopedToMatchingFile(t *testing.T) {
	findings := []domain.Finding{
		{Rule: domain.RuleGodObject, File: "bar.go", Line: 1},
	}
	sups := []domain.Suppression{
		{Rule: "*", File: "foo.go", Type: domain.SuppressFile},
	}
	out := suppress.Apply(findings, sups, false)
	require.Len(t, out, 1)
}
