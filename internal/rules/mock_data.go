package rules

import (
	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/facts"
)

// DetectMockData implements spec.md §4.4(f).
func DetectMockData(store *facts.Store, contract *domain.Contract, _ domain.Options) []domain.Finding {
	if contract.MockSignatures == nil {
		return nil
	}
	skipTests := contract.MockSignatures.ShouldSkipTestFiles()

	var out []domain.Finding
	for _, f := range store.Files() {
		if skipTests && IsTestFile(f.RelPath) {
			continue
		}
		for _, sig := range contract.MockSignatures.Patterns {
			if sig.Compiled == nil {
				continue
			}
			for _, line := range matchLines(sig.Compiled, f.Source) {
				out = append(out, finding(
					domain.RuleMockData, domain.SeverityLow,
					f.RelPath, line,
					"mock/placeholder data matched: "+sig.Description,
					sig.Pattern,
				))
			}
		}
	}
	return out
}
