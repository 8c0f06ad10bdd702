package registry

import (
	gitignore "github.com/sabhiram/go-gitignore"
)

// Allowlist glob-matches an import against the contract's
// dependency_verification.allowlist patterns (spec.md §4.5 step 2). It
// repurposes go-gitignore's pattern compiler as a general glob matcher —
// the same compiler the walker (internal/walk) uses for excluded_paths —
// rather than hand-rolling filepath.Match semantics or pulling in a
// second glob dependency for one extra concern.
type Allowlist struct {
	matcher gitignore.IgnoreParser
}

// NewAllowlist compiles the given glob patterns once; nil patterns yields
// an Allowlist that never matches.
func NewAllowlist(patterns []string) *Allowlist {
	if len(patterns) == 0 {
		return &Allowlist{}
	}
	return &Allowlist{matcher: gitignore.CompileIgnoreLines(patterns...)}
}

// Matches reports whether importPath is covered by the allowlist.
func (a *Allowlist) Matches(importPath string) bool {
	if a.matcher == nil {
		return false
	}
	return a.matcher.MatchesPath(importPath)
}
