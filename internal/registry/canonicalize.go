package registry

import "strings"

// Canonicalize implements spec.md §4.5 step 3: reduce an import path to
// the name a registry actually indexes packages under.
func Canonicalize(language, importPath string) string {
	switch language {
	case "python":
		return dottedRoot(importPath)
	case "javascript", "typescript":
		if strings.HasPrefix(importPath, "@") {
			return importPath
		}
		return slashRoot(importPath)
	case "go":
		return goModulePath(importPath)
	case "rust":
		return doubleColonRoot(importPath)
	}
	return importPath
}

// goModulePath takes the full import path up to the first path element
// that itself contains a dot, plus the next path segment, e.g.
// "github.com/x/y/z" → "github.com/x/y".
func goModulePath(importPath string) string {
	segments := strings.Split(importPath, "/")
	for i, seg := range segments {
		if strings.Contains(seg, ".") {
			end := i + 3
			if end > len(segments) {
				end = len(segments)
			}
			return strings.Join(segments[:end], "/")
		}
	}
	return importPath
}
