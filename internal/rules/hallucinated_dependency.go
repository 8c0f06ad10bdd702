package rules

import "github.com/hollowcheck/hollowcheck/domain"

// HallucinatedDependencyFinding builds the finding the Dependency
// Verifier (internal/registry) emits for a single import resolved to
// "not found" in its target registry, per spec.md §4.4(i). It lives here
// rather than in internal/registry so every Finding construction in the
// engine goes through one small set of rule-scoped constructors.
func HallucinatedDependencyFinding(file string, line int, importPath string) domain.Finding {
	return finding(
		domain.RuleHallucinatedDependency, domain.SeverityCritical,
		file, line,
		"import not found in any registry: "+importPath,
		importPath,
	)
}
