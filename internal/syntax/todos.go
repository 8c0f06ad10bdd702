package syntax

import (
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Todo mirrors domain.Todo during extraction, before line numbers and
// hollowness are finalized and the declaration tree is walked for stub
// classification (which needs Todo facts before Declaration facts are
// fully built, hence the local type rather than importing domain here).
type Todo struct {
	Text     string
	Line     int
	IsHollow bool
}

var markerPattern = regexp.MustCompile(`(?i)\b(TODO|FIXME|XXX|HACK)\b\s*:?\s*(.*)$`)

// genericHollowTokens is the exact token set spec.md §4.4(g) names for
// hollow-TODO classification.
var genericHollowTokens = map[string]bool{
	"implement": true, "fix": true, "this": true, "later": true,
	"add": true, "here": true, "me": true, "something": true,
	"properly": true,
}

var referenceTokenPattern = regexp.MustCompile(`RFC-\d+|#\d+|@\w+`)
var wordPattern = regexp.MustCompile(`[A-Za-z0-9_]+`)
var punctPattern = regexp.MustCompile(`^[\s.,;:!?-]*$`)

// extractTodos walks every comment node in the tree and extracts TODO
// markers, classifying each as hollow per spec.md §4.4(g).
func extractTodos(root *sitter.Node, spec *LanguageSpec, source []byte) []Todo {
	var todos []Todo
	walk(root, func(n *sitter.Node) bool {
		if contains(spec.CommentNodeKinds, n.Type()) {
			text := stripCommentSyntax(n.Content(source), spec)
			if m := markerPattern.FindStringSubmatch(text); m != nil {
				rest := strings.TrimSpace(m[2])
				line := int(n.StartPoint().Row) + 1
				todos = append(todos, Todo{
					Text:     rest,
					Line:     line,
					IsHollow: isHollowTodoText(rest),
				})
			}
		}
		return true
	})
	return todos
}

func stripCommentSyntax(raw string, spec *LanguageSpec) string {
	s := raw
	for _, p := range spec.LineCommentPrefixes {
		s = strings.TrimPrefix(s, p)
	}
	open, close := spec.BlockCommentDelims[0], spec.BlockCommentDelims[1]
	if open != "" && strings.HasPrefix(s, open) {
		s = strings.TrimPrefix(s, open)
		s = strings.TrimSuffix(strings.TrimSpace(s), close)
	}
	return strings.TrimSpace(s)
}

// isHollowTodoText implements spec.md §4.4(g): empty, or only generic
// tokens plus punctuation, with no reference token and fewer than 3
// content words beyond the generic set.
func isHollowTodoText(rest string) bool {
	if rest == "" {
		return true
	}
	if referenceTokenPattern.MatchString(rest) {
		return false
	}
	words := wordPattern.FindAllString(strings.ToLower(rest), -1)
	if len(words) == 0 {
		return punctPattern.MatchString(rest)
	}
	contentWords := 0
	for _, w := range words {
		if !genericHollowTokens[w] {
			contentWords++
		}
	}
	return contentWords < 3
}
