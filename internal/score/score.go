// Package score is the Scoring Pipeline (spec.md §4.7): it turns a
// retained finding set into a score, grade, pass/fail verdict, and
// per-rule breakdown.
package score

import (
	"sort"

	"github.com/hollowcheck/hollowcheck/domain"
)

// Calculate implements spec.md §4.7 and §6's Report shape.
func Calculate(findings []domain.Finding, threshold int) domain.Report {
	retained := make([]domain.Finding, 0, len(findings))
	suppressed := make([]domain.Finding, 0)
	for _, f := range findings {
		if f.Suppressed {
			suppressed = append(suppressed, f)
			continue
		}
		retained = append(retained, f)
	}

	raw := 0
	bySeverity := map[domain.Severity]int{}
	breakdownPoints := map[domain.Rule]int{}
	breakdownCount := map[domain.Rule]int{}
	for _, f := range retained {
		raw += f.Points
		bySeverity[f.Severity]++
		breakdownPoints[f.Rule] += f.Points
		breakdownCount[f.Rule]++
	}

	total := raw
	if total > 100 {
		total = 100
	}

	return domain.Report{
		Score:     total,
		Grade:     Grade(total),
		Threshold: threshold,
		Passed:    total <= threshold,

		Violations: retained,
		Suppressed: suppressed,
		Breakdown:  breakdown(breakdownPoints, breakdownCount),
		Summary: domain.Summary{
			ViolationsTotal: len(retained),
			BySeverity:      bySeverity,
		},
	}
}

// Grade implements the deterministic score→grade mapping (spec.md §4.7):
// A 0–10, B 11–25, C 26–50, D 51–75, F 76–100.
func Grade(score int) domain.Grade {
	switch {
	case score <= 10:
		return domain.GradeA
	case score <= 25:
		return domain.GradeB
	case score <= 50:
		return domain.GradeC
	case score <= 75:
		return domain.GradeD
	default:
		return domain.GradeF
	}
}

func breakdown(points, counts map[domain.Rule]int) []domain.BreakdownEntry {
	rules := make([]domain.Rule, 0, len(points))
	for r := range points {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i] < rules[j] })

	out := make([]domain.BreakdownEntry, 0, len(rules))
	for _, r := range rules {
		out = append(out, domain.BreakdownEntry{Rule: r, Points: points[r], Violations: counts[r]})
	}
	return out
}

// CalculateForNewViolations implements the baseline-mode extension
// (SPEC_FULL.md §5): given the full retained finding set and the set of
// files a diff against a baseline ref touched, it isolates the subset of
// findings introduced in those files.
func CalculateForNewViolations(findings []domain.Finding, changedFiles map[string]bool) []domain.Finding {
	var out []domain.Finding
	for _, f := range findings {
		if f.Suppressed {
			continue
		}
		if changedFiles[f.File] {
			out = append(out, f)
		}
	}
	return out
}
