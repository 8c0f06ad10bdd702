package rules

import (
	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/facts"
)

// DetectMissingFile implements spec.md §4.4(a).
func DetectMissingFile(store *facts.Store, contract *domain.Contract, _ domain.Options) []domain.Finding {
	var out []domain.Finding
	for _, rf := range contract.RequiredFiles {
		if store.HasFile(rf.Path) {
			continue
		}
		severity := domain.SeverityLow
		points := 5
		if rf.Required {
			severity = domain.SeverityCritical
			points = 20
		}
		out = append(out, domain.Finding{
			Rule:        domain.RuleMissingFile,
			Severity:    severity,
			Points:      points,
			File:        rf.Path,
			Line:        0,
			Message:     "required file is missing: " + rf.Path,
			RuleContext: rf.Path,
		})
	}
	return out
}
