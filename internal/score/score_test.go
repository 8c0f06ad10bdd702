package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/score"
)

func finding(rule domain.Rule, points int, file string, suppressed bool) domain.Finding {
	return domain.Finding{Rule: rule, Points: points, File: file, Suppressed: suppressed, Severity: domain.SeverityMedium}
}

func TestCalculate_SumsPointsAndCapsAtHundred(t *testing.T) {
	findings := []domain.Finding{
		finding(domain.RuleStubFunction, 60, "a.go", false),
		finding(domain.RuleHollowTodo, 60, "b.go", false),
	}
	report := score.Calculate(findings, 25)
	assert.Equal(t, 100, report.Score)
	assert.Equal(t, domain.GradeF, report.Grade)
	assert.False(t, report.Passed)
}

func TestCalculate_PassesAtOrBelowThreshold(t *testing.T) {
	findings := []domain.Finding{finding(domain.RuleStubFunction, 25, "a.go", false)}
	report := score.Calculate(findings, 25)
	require.True(t, report.Passed)
	assert.Equal(t, 25, report.Score)
}

func TestCalculate_SuppressedFindingsExcludedFromScore(t *testing.T) {
	findings := []domain.Finding{
		finding(domain.RuleStubFunction, 50, "a.go", false),
		finding(domain.RuleHollowTodo, 50, "b.go", true),
	}
	report := score.Calculate(findings, 25)
	assert.Equal(t, 50, report.Score)
	require.Len(t, report.Suppressed, 1)
	require.Len(t, report.Violations, 1)
}

func TestCalculate_EmptyFindingsIsPerfectScore(t *testing.T) {
	report := score.Calculate(nil, 25)
	assert.Equal(t, 0, report.Score)
	assert.Equal(t, domain.GradeA, report.Grade)
	assert.True(t, report.Passed)
}

func TestGrade_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  domain.Grade
	}{
		{0, domain.GradeA}, {10, domain.GradeA},
		{11, domain.GradeB}, {25, domain.GradeB},
		{26, domain.GradeC}, {50, domain.GradeC},
		{51, domain.GradeD}, {75, domain.GradeD},
		{76, domain.GradeF}, {100, domain.GradeF},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, score.Grade(c.score), "score=%d", c.score)
	}
}

func TestCalculate_BreakdownGroupsByRuleSortedAlphabetically(t *testing.T) {
	findings := []domain.Finding{
		finding(domain.RuleStubFunction, 10, "a.go", false),
		finding(domain.RuleStubFunction, 10, "b.go", false),
		finding(domain.RuleHollowTodo, 5, "c.go", false),
	}
	report := score.Calculate(findings, 25)
	require.Len(t, report.Breakdown, 2)
	assert.True(t, report.Breakdown[0].Rule < report.Breakdown[1].Rule)
}

func TestCalculateForNewViolations_FiltersToChangedFilesOnly(t *testing.T) {
	findings := []domain.Finding{
		finding(domain.RuleStubFunction, 10, "a.go", false),
		finding(domain.RuleHollowTodo, 10, "b.go", false),
		finding(domain.RuleMockData, 10, "a.go", true),
	}
	changed := map[string]bool{"a.go": true}
	out := score.CalculateForNewViolations(findings, changed)
	require.Len(t, out, 1)
	assert.Equal(t, "a.go", out[0].File)
}
