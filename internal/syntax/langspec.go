// Package syntax is the Syntax Analyzer layer (spec.md Component B). It
// parses source files with tree-sitter and extracts the declaration,
// import, and TODO facts the rest of the engine runs rules over.
//
// Per spec.md's own design notes, languages are treated as data, not
// code: a single generic walker (generic.go) drives off a per-language
// LanguageSpec table (the lang_*.go files) rather than ten hand-written
// parsers. Each LanguageSpec names the tree-sitter node kinds for that
// language's declarations, decision points, and comments.
package syntax

import sitter "github.com/smacker/go-tree-sitter"

// LanguageSpec is the node-kind vocabulary for one language's grammar.
// Populating a new language means adding a table entry here, not a new
// algorithm.
type LanguageSpec struct {
	ID         string
	Extensions []string
	Grammar    *sitter.Language

	// FunctionNodeKinds are top-level function declaration node kinds.
	FunctionNodeKinds []string
	// MethodNodeKinds are method/member-function declaration node kinds
	// (distinct from FunctionNodeKinds in languages that separate them).
	MethodNodeKinds []string
	// TypeNodeKinds are struct/class/trait/alias declaration node kinds.
	TypeNodeKinds []string
	// InterfaceNodeKinds are interface/trait/protocol declaration node
	// kinds whose member functions are exempt from stub_function
	// (spec.md §4.4(e)).
	InterfaceNodeKinds []string
	// EnumNodeKinds are enum declaration node kinds.
	EnumNodeKinds []string
	// ConstNodeKinds are const/immutable-binding declaration node kinds.
	ConstNodeKinds []string

	// NameFieldByKind maps a declaration node kind to the field name
	// tree-sitter exposes its identifier under (usually "name").
	NameFieldByKind map[string]string
	// NameExtractor overrides name lookup for node kinds whose identifier
	// isn't reachable via a flat field name (C/C++ declarators nest the
	// identifier inside a function_declarator). Consulted when
	// NameFieldByKind yields nothing.
	NameExtractor func(node *sitter.Node, source []byte) string
	// BodyFieldByKind maps a declaration node kind to its body field name.
	BodyFieldByKind map[string]string
	// ReceiverExtractor pulls the enclosing type name out of a method
	// declaration node, if this language expresses methods that way
	// (Go receivers, Rust impl blocks). nil for languages where methods
	// are always lexical children of a class/type node.
	ReceiverExtractor func(node *sitter.Node, source []byte) string

	// DecisionNodeKinds are the node kinds counted as complexity decision
	// points (spec.md §4.2): if/else-if, loops, case/match arms, catch
	// clauses, logical &&/|| operators, ternary expressions.
	DecisionNodeKinds map[string]bool

	// DefaultArmNodeKinds marks DecisionNodeKinds whose grammar uses one
	// node kind for both case and default labels (Java's switch_label,
	// C/C++'s case_statement). computeComplexity descends into these but
	// skips the increment when the node is the default arm, since a
	// default branch never adds complexity — contrast with JavaScript and
	// TypeScript, whose grammars already give the default arm its own
	// node kind outside DecisionNodeKinds.
	DefaultArmNodeKinds map[string]bool

	// CommentNodeKinds identify comment nodes for TODO extraction.
	CommentNodeKinds []string
	// LineCommentPrefixes and BlockCommentDelims strip comment syntax
	// before matching hollow_todo's generic token set.
	LineCommentPrefixes []string
	BlockCommentDelims  [2]string

	// ImportNodeKinds are import/use/require statement node kinds.
	ImportNodeKinds []string
	// ImportPathField names the field (or child index fallback) holding
	// the imported module path/string literal.
	ImportPathField string
	// ImportGroupNodeKinds are grouped-import container kinds (Go's
	// import block, Rust's `use a::{b, c}`, Python's comma-separated
	// `import a, b`) whose children must be flattened into individual
	// Import facts (spec.md §4.3).
	ImportGroupNodeKinds []string
	// ImportGroupChildKinds are the node kinds within a group container
	// that each name one imported path directly (no nested ImportNodeKinds
	// wrapper), e.g. Python's "dotted_name", Rust's use_list items.
	ImportGroupChildKinds []string

	// ReturnNodeKind is the return-statement node kind, used by stub
	// classification to detect null_return_only bodies.
	ReturnNodeKind string
	// NullLiteralKinds are node kinds representing a null/nil/None/unit
	// literal, used by the same classification.
	NullLiteralKinds []string
	// PanicCallNames are callee names recognized as "this function only
	// panics" (panic, unimplemented!, todo!, throw new Error, etc.).
	PanicCallNames []string

	// IsTestFile reports whether a given relative path is a test file in
	// this language's convention.
	IsTestFile func(relPath string) bool
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
