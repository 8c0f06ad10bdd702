package rules

import (
	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/facts"
)

// DetectLowComplexity implements spec.md §4.4(d). A requirement whose
// symbol cannot be found produces a missing-symbol finding instead,
// unless that exact (name, file) pair is already covered by a
// RequiredSymbol (avoiding a duplicate with detector (b)).
func DetectLowComplexity(store *facts.Store, contract *domain.Contract, _ domain.Options) []domain.Finding {
	var out []domain.Finding

	alreadyRequired := make(map[string]bool, len(contract.RequiredSymbols))
	for _, rs := range contract.RequiredSymbols {
		alreadyRequired[rs.Name+"\x00"+rs.File] = true
	}

	for _, cr := range contract.Complexity {
		decl, file, ok := store.FindDeclaration(cr.Symbol, domain.SymbolFunction, cr.File)
		if !ok {
			decl, file, ok = store.FindDeclaration(cr.Symbol, domain.SymbolMethod, cr.File)
		}
		if !ok {
			if alreadyRequired[cr.Symbol+"\x00"+cr.File] {
				continue
			}
			out = append(out, finding(
				domain.RuleMissingSymbol, domain.SeverityCritical,
				cr.File, 0,
				"complexity requirement targets an undeclared symbol: "+cr.Symbol,
				cr.Symbol,
			))
			continue
		}
		if decl.Complexity < cr.MinComplexity {
			out = append(out, finding(
				domain.RuleLowComplexity, domain.SeverityHigh,
				file, decl.StartLine,
				"complexity too low for "+cr.Symbol,
				cr.Symbol,
			))
		}
	}
	return out
}
