package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hollowcheck/hollowcheck/domain"
)

// classifyStub applies the four-pattern, first-match-wins classification
// to a declaration body. body may be nil for declarations without a body
// (abstract/interface members, type aliases).
func classifyStub(body *sitter.Node, spec *LanguageSpec, source []byte, todos []Todo) (domain.StubClassification, bool) {
	if body == nil {
		return domain.StubEmpty, true
	}

	stmts := executableStatements(body, spec)

	if len(stmts) == 0 {
		if onlyCommentsWithHollowTodo(body, spec, source, todos) {
			return domain.StubTodoOnly, true
		}
		return domain.StubEmpty, true
	}

	if len(stmts) == 1 && isPanicOnly(stmts[0], spec, source) {
		return domain.StubPanicOnly, true
	}

	if len(stmts) == 1 && isNullReturnOnly(stmts[0], spec, source) {
		return domain.StubNullReturnOnly, true
	}

	return domain.StubNotStub, false
}

// executableStatements returns the body's direct executable statement
// children, skipping comments, a bare `pass`, and unit-literal `()`
// expression statements.
func executableStatements(body *sitter.Node, spec *LanguageSpec) []*sitter.Node {
	var out []*sitter.Node
	count := int(body.ChildCount())
	for i := 0; i < count; i++ {
		child := body.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "{", "}", "(", ")", "comment", "line_comment", "block_comment":
			continue
		case "pass_statement", "unit_expression":
			continue
		case "empty_statement", ";":
			continue
		}
		out = append(out, child)
	}
	return out
}

func isPanicOnly(stmt *sitter.Node, spec *LanguageSpec, source []byte) bool {
	text := strings.TrimSpace(stmt.Content(source))
	for _, name := range spec.PanicCallNames {
		if strings.HasPrefix(text, name) {
			return true
		}
	}
	return false
}

func isNullReturnOnly(stmt *sitter.Node, spec *LanguageSpec, source []byte) bool {
	if spec.ReturnNodeKind != "" && stmt.Type() == spec.ReturnNodeKind {
		val := strings.TrimSpace(stripPrefix(stmt.Content(source), "return"))
		val = strings.TrimSuffix(val, ";")
		val = strings.TrimSpace(val)
		if val == "" {
			return false // bare return isn't a null-return-only stub for non-nullable languages
		}
		for _, lit := range spec.NullLiteralKinds {
			if val == lit {
				return true
			}
		}
		return false
	}
	// Trailing bare expression, e.g. Python/Rust `None` / `()` as last expr.
	text := strings.TrimSpace(stmt.Content(source))
	for _, lit := range spec.NullLiteralKinds {
		if text == lit {
			return true
		}
	}
	return false
}

func stripPrefix(s, prefix string) string {
	if strings.HasPrefix(s, prefix) {
		return s[len(prefix):]
	}
	return s
}

// onlyCommentsWithHollowTodo reports whether body contains no executable
// statements and at least one of its comments is a hollow TODO.
func onlyCommentsWithHollowTodo(body *sitter.Node, spec *LanguageSpec, source []byte, todos []Todo) bool {
	startLine := int(body.StartPoint().Row) + 1
	endLine := int(body.EndPoint().Row) + 1
	hasComment := false
	walk(body, func(n *sitter.Node) bool {
		if contains(spec.CommentNodeKinds, n.Type()) {
			hasComment = true
		}
		return true
	})
	if !hasComment {
		return false
	}
	for _, t := range todos {
		if t.Line >= startLine && t.Line <= endLine && t.IsHollow {
			return true
		}
	}
	return false
}
