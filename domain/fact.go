package domain

// DeclarationKind is the kind of a named declaration extracted by a
// Syntax Analyzer.
type DeclarationKind string

const (
	DeclFunction  DeclarationKind = "function"
	DeclMethod    DeclarationKind = "method"
	DeclType      DeclarationKind = "type"
	DeclInterface DeclarationKind = "interface"
	DeclEnum      DeclarationKind = "enum"
	DeclConst     DeclarationKind = "const"
)

// IsCallable reports whether the declaration kind can carry a function body.
func (k DeclarationKind) IsCallable() bool {
	return k == DeclFunction || k == DeclMethod
}

// MatchesSymbolKind reports whether this declaration kind satisfies a
// contract RequiredSymbol/ComplexityRequirement of the given SymbolKind,
// per spec.md §4.4(b): method matches member functions; type matches
// struct/class/interface/trait/enum/alias.
func (k DeclarationKind) MatchesSymbolKind(sk SymbolKind) bool {
	switch sk {
	case SymbolFunction:
		return k == DeclFunction
	case SymbolMethod:
		return k == DeclMethod
	case SymbolType:
		return k == DeclType || k == DeclInterface || k == DeclEnum
	case SymbolConst:
		return k == DeclConst
	}
	return false
}

// StubClassification is the classification a function/method body
// receives, per spec.md §4.2. Exactly one applies.
type StubClassification string

const (
	StubEmpty          StubClassification = "empty"
	StubPanicOnly      StubClassification = "panic_only"
	StubNullReturnOnly StubClassification = "null_return_only"
	StubTodoOnly       StubClassification = "todo_only"
	StubNotStub        StubClassification = "not_stub"
)

// Span is a byte-offset range within a file's source.
type Span struct {
	StartByte int
	EndByte   int
}

// Declaration is a single named declaration extracted from a source file.
type Declaration struct {
	Name      string
	Kind      DeclarationKind
	StartLine int // 1-indexed
	EndLine   int
	Span      Span
	BodySpan  *Span // nil for type declarations without a body

	Complexity   int  // >= 1, per spec.md invariant 1
	IsEmptyBody  bool
	IsStub       bool
	Stub         StubClassification

	EnclosingClass string // "" if top-level
	IsInterfaceMember bool // member of an interface/trait/abstract type — exempt from stub_function (spec.md §4.4(e))
}

// QualifiedName returns "Receiver.Name" for methods with a known receiver, else Name.
func (d *Declaration) QualifiedName() string {
	if d.EnclosingClass != "" {
		return d.EnclosingClass + "." + d.Name
	}
	return d.Name
}

// Import is a single import/require statement.
type Import struct {
	ModulePath string
	Line       int
}

// Todo is a single TODO/FIXME/XXX/HACK marker comment.
type Todo struct {
	Text     string // text following the marker
	Line     int
	IsHollow bool
}

// ParsedFile is the immutable, per-file fact set produced by a Syntax
// Analyzer (spec.md Component B) and owned thereafter by the Fact Store
// (Component C).
type ParsedFile struct {
	AbsPath  string
	RelPath  string
	Language string
	Source   []byte

	Declarations []Declaration
	Imports      []Import
	Todos        []Todo

	TotalLines    int
	FunctionCount int
	// MethodCountsByClass maps an enclosing class/receiver name to its
	// declared method count (declared members only; spec.md Design Notes
	// leaves inherited-member counting unresolved and this repo preserves
	// the declared-only behavior).
	MethodCountsByClass map[string]int

	HasParseErrors bool
}

// LineCount returns the number of source lines in the file.
func (p *ParsedFile) LineCount() int {
	return p.TotalLines
}
