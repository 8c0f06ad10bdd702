// Package rules is the Rule Evaluator (spec.md §4.4): nine independent
// detectors, each pure over a Fact Store and a Contract, composed by
// Evaluate into the full, deterministically ordered finding set.
package rules

import (
	"sort"

	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/facts"
)

// Detector is one of the nine rule functions. Order of registration in
// Evaluate is fixed to match spec.md §4.4's listing; that order is
// irrelevant to the final result since findings are always re-sorted,
// but keeping it mirrors the document a reviewer would check this
// against.
type Detector func(store *facts.Store, contract *domain.Contract, opts domain.Options) []domain.Finding

// Evaluate runs every detector and returns a deterministically sorted
// finding set: by (file, line, rule).
func Evaluate(store *facts.Store, contract *domain.Contract, opts domain.Options) []domain.Finding {
	detectors := []Detector{
		DetectMissingFile,
		DetectMissingSymbol,
		DetectForbiddenPattern,
		DetectLowComplexity,
		DetectStubFunction,
		DetectMockData,
		DetectHollowTodo,
		DetectGodObject,
		DetectMissingTest,
	}

	var findings []domain.Finding
	for _, d := range detectors {
		findings = append(findings, d(store, contract, opts)...)
	}

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].File != findings[j].File {
			return findings[i].File < findings[j].File
		}
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Rule < findings[j].Rule
	})
	return findings
}

func finding(rule domain.Rule, severity domain.Severity, file string, line int, msg, ruleContext string) domain.Finding {
	return domain.Finding{
		Rule:        rule,
		Severity:    severity,
		Points:      domain.Points[rule],
		File:        file,
		Line:        line,
		Message:     msg,
		RuleContext: ruleContext,
	}
}
