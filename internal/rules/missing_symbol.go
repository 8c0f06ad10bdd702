package rules

import (
	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/facts"
)

// DetectMissingSymbol implements spec.md §4.4(b).
func DetectMissingSymbol(store *facts.Store, contract *domain.Contract, _ domain.Options) []domain.Finding {
	return detectMissingSymbols(store, contract.RequiredSymbols)
}

func detectMissingSymbols(store *facts.Store, symbols []domain.RequiredSymbol) []domain.Finding {
	var out []domain.Finding
	for _, rs := range symbols {
		if _, _, ok := store.FindDeclaration(rs.Name, rs.Kind, rs.File); ok {
			continue
		}
		out = append(out, finding(
			domain.RuleMissingSymbol, domain.SeverityCritical,
			rs.File, 0,
			"required symbol not found: "+rs.Name+" ("+humanizeSymbol(rs.Name)+")",
			rs.Name,
		))
	}
	return out
}
