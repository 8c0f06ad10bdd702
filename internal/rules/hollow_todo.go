package rules

import (
	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/facts"
)

// DetectHollowTodo implements spec.md §4.4(g). Hollowness itself was
// already decided during extraction (internal/syntax); this detector
// only turns the flagged facts into findings, gated on the contract's
// toggle.
func DetectHollowTodo(store *facts.Store, contract *domain.Contract, _ domain.Options) []domain.Finding {
	if !contract.HollowTodos.IsEnabled() {
		return nil
	}
	var out []domain.Finding
	store.AllTodos(func(f *domain.ParsedFile, t *domain.Todo) {
		if !t.IsHollow {
			return
		}
		out = append(out, finding(
			domain.RuleHollowTodo, domain.SeverityLow,
			f.RelPath, t.Line,
			"hollow TODO with no actionable detail",
			t.Text,
		))
	})
	return out
}
