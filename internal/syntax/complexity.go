package syntax

import sitter "github.com/smacker/go-tree-sitter"

// computeComplexity counts cyclomatic decision points under a function or
// method body node: every if/else-if branch, loop, switch/match arm, catch
// clause, logical && / ||, and ternary adds one, starting from a base
// complexity of 1. This walks the syntax tree directly rather than
// building a control-flow graph first — the corpus's CFG package is not
// available here, and spec.md's complexity rule only needs the count, not
// a graph.
func computeComplexity(body *sitter.Node, spec *LanguageSpec) int {
	if body == nil {
		return 1
	}
	complexity := 1
	walk(body, func(n *sitter.Node) bool {
		if spec.DecisionNodeKinds[n.Type()] {
			if spec.DefaultArmNodeKinds[n.Type()] && isDefaultArm(n) {
				return true
			}
			complexity++
		}
		return true
	})
	return complexity
}

// isDefaultArm reports whether a switch_label/case_statement node is the
// default arm rather than a case arm, by looking for a direct "default"
// keyword child. Tree-sitter exposes grammar keyword literals as
// anonymous child nodes whose type is the keyword text itself.
func isDefaultArm(n *sitter.Node) bool {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		if c := n.Child(i); c != nil && c.Type() == "default" {
			return true
		}
	}
	return false
}

// walk performs a pre-order traversal of the tree rooted at n, invoking
// visit on every node. Traversal into a subtree stops when visit returns
// false.
func walk(n *sitter.Node, visit func(*sitter.Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		walk(n.Child(i), visit)
	}
}
