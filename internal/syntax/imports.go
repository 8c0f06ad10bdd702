package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hollowcheck/hollowcheck/domain"
)

// extractImports walks import/use/require statements, flattening grouped
// imports (Go's `import ( ... )`, Rust's `use a::{b, c}`) into individual
// Import facts and excluding relative imports, per spec.md §4.2.
func extractImports(root *sitter.Node, spec *LanguageSpec, source []byte) []domain.Import {
	var out []domain.Import
	walk(root, func(n *sitter.Node) bool {
		kind := n.Type()
		if contains(spec.ImportGroupNodeKinds, kind) {
			out = append(out, importsFromGroup(n, spec, source)...)
			return true
		}
		if contains(spec.ImportNodeKinds, kind) {
			if path, ok := importPath(n, spec, source); ok {
				out = append(out, domain.Import{ModulePath: path, Line: int(n.StartPoint().Row) + 1})
			}
		}
		return true
	})
	return dedupeImports(filterRelative(out))
}

func importsFromGroup(group *sitter.Node, spec *LanguageSpec, source []byte) []domain.Import {
	var out []domain.Import
	line := int(group.StartPoint().Row) + 1
	walk(group, func(n *sitter.Node) bool {
		if n == group {
			return true
		}
		if n.Type() == "scoped_use_list" {
			prefix := ""
			if p := n.ChildByFieldName("path"); p != nil {
				prefix = p.Content(source) + "::"
			}
			if list := n.ChildByFieldName("list"); list != nil {
				for i := 0; i < int(list.NamedChildCount()); i++ {
					out = append(out, domain.Import{ModulePath: prefix + list.NamedChild(i).Content(source), Line: line})
				}
			}
			return false
		}
		if contains(spec.ImportNodeKinds, n.Type()) {
			if path, ok := importPath(n, spec, source); ok {
				out = append(out, domain.Import{ModulePath: path, Line: int(n.StartPoint().Row) + 1})
			}
			return false
		}
		if contains(spec.ImportGroupChildKinds, n.Type()) {
			raw := strings.Trim(n.Content(source), `"'`)
			if raw != "" {
				out = append(out, domain.Import{ModulePath: raw, Line: line})
			}
			return false
		}
		return true
	})
	return out
}

func importPath(n *sitter.Node, spec *LanguageSpec, source []byte) (string, bool) {
	var raw string
	if spec.ImportPathField != "" {
		if field := n.ChildByFieldName(spec.ImportPathField); field != nil {
			raw = field.Content(source)
		}
	}
	if raw == "" {
		count := int(n.ChildCount())
		for i := 0; i < count; i++ {
			c := n.Child(i)
			if c != nil && (c.Type() == "string" || c.Type() == "interpreted_string_literal" || c.Type() == "raw_string_literal") {
				raw = c.Content(source)
				break
			}
		}
	}
	raw = strings.Trim(raw, `"'`)
	if raw == "" {
		return "", false
	}
	return raw, true
}

func filterRelative(imports []domain.Import) []domain.Import {
	var out []domain.Import
	for _, imp := range imports {
		p := imp.ModulePath
		if strings.HasPrefix(p, ".") || strings.Contains(p, "../") {
			continue
		}
		out = append(out, imp)
	}
	return out
}

func dedupeImports(imports []domain.Import) []domain.Import {
	seen := make(map[string]bool, len(imports))
	var out []domain.Import
	for _, imp := range imports {
		key := imp.ModulePath
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, imp)
	}
	return out
}
