package rules

import (
	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/facts"
)

// DetectMissingTest implements spec.md §4.4(j).
func DetectMissingTest(store *facts.Store, contract *domain.Contract, _ domain.Options) []domain.Finding {
	var out []domain.Finding
	for _, rt := range contract.RequiredTests {
		if store.FindTest(rt.Name, rt.File, IsTestFile) {
			continue
		}
		out = append(out, finding(
			domain.RuleMissingTest, domain.SeverityLow,
			rt.File, 0,
			"required test not found: "+rt.Name,
			rt.Name,
		))
	}
	return out
}
