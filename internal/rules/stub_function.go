package rules

import (
	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/facts"
)

// DetectStubFunction implements spec.md §4.4(e).
func DetectStubFunction(store *facts.Store, _ *domain.Contract, _ domain.Options) []domain.Finding {
	var out []domain.Finding
	store.AllDeclarations(func(f *domain.ParsedFile, d *domain.Declaration) {
		if !d.IsStub || d.IsInterfaceMember {
			return
		}
		out = append(out, finding(
			domain.RuleStubFunction, domain.SeverityHigh,
			f.RelPath, d.StartLine,
			"stub implementation for "+d.QualifiedName()+" ("+humanizeSymbol(d.Name)+", "+string(d.Stub)+")",
			d.QualifiedName(),
		))
	})
	return out
}
