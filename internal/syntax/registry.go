package syntax

import "github.com/hollowcheck/hollowcheck/domain"

// Registry is the Language Registry (spec.md §4.1): a deterministic
// extension → analyzer dispatch table built once at startup from every
// registered LanguageSpec.
type Registry struct {
	byExt map[string]domain.LanguageAnalyzer
	exts  []string
}

// NewRegistry builds a Registry covering every language this repo ships
// an analyzer for.
func NewRegistry() *Registry {
	r := &Registry{byExt: map[string]domain.LanguageAnalyzer{}}
	for _, spec := range AllLanguageSpecs() {
		analyzer := NewGenericAnalyzer(spec)
		for _, ext := range spec.Extensions {
			r.byExt[ext] = analyzer
			r.exts = append(r.exts, ext)
		}
	}
	return r
}

func (r *Registry) AnalyzerFor(ext string) (domain.LanguageAnalyzer, bool) {
	a, ok := r.byExt[ext]
	return a, ok
}

func (r *Registry) SupportedExtensions() []string {
	return r.exts
}

var _ domain.LanguageRegistry = (*Registry)(nil)
