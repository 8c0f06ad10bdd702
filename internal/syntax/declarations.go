package syntax

import (
	"bytes"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hollowcheck/hollowcheck/domain"
)

// extractDeclarations walks the tree once, producing every named
// declaration in file order along with per-file function/method metrics.
func extractDeclarations(root *sitter.Node, spec *LanguageSpec, source []byte, todos []Todo) (decls []domain.Declaration, functionCount int, methodCountsByClass map[string]int) {
	methodCountsByClass = map[string]int{}

	var classStack []string // enclosing-type name stack, for languages that nest methods lexically
	var interfaceStack []bool

	inInterface := func() bool {
		return len(interfaceStack) > 0 && interfaceStack[len(interfaceStack)-1]
	}

	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		if n == nil {
			return
		}
		kind := n.Type()

		switch {
		case contains(spec.TypeNodeKinds, kind), contains(spec.EnumNodeKinds, kind):
			name := fieldText(n, spec, kind, source)
			d := buildTypeDecl(n, spec, kind, name, source)
			decls = append(decls, d)
			classStack = append(classStack, name)
			interfaceStack = append(interfaceStack, false)
			walkChildren(n, visit)
			classStack = classStack[:len(classStack)-1]
			interfaceStack = interfaceStack[:len(interfaceStack)-1]
			return

		case contains(spec.InterfaceNodeKinds, kind):
			name := fieldText(n, spec, kind, source)
			d := buildTypeDecl(n, spec, kind, name, source)
			d.Kind = domain.DeclInterface
			decls = append(decls, d)
			classStack = append(classStack, name)
			interfaceStack = append(interfaceStack, true)
			walkChildren(n, visit)
			classStack = classStack[:len(classStack)-1]
			interfaceStack = interfaceStack[:len(interfaceStack)-1]
			return

		case contains(spec.ConstNodeKinds, kind):
			name := fieldText(n, spec, kind, source)
			if name != "" {
				decls = append(decls, domain.Declaration{
					Name:       name,
					Kind:       domain.DeclConst,
					StartLine:  int(n.StartPoint().Row) + 1,
					EndLine:    int(n.EndPoint().Row) + 1,
					Span:       domain.Span{StartByte: int(n.StartByte()), EndByte: int(n.EndByte())},
					Complexity: 1,
				})
			}

		case contains(spec.MethodNodeKinds, kind):
			name := fieldText(n, spec, kind, source)
			enclosing := enclosingName(n, spec, source, classStack)
			d := buildCallableDecl(n, spec, kind, name, domain.DeclMethod, enclosing, source, todos, inInterface())
			decls = append(decls, d)
			if enclosing != "" {
				methodCountsByClass[enclosing]++
			}

		case contains(spec.FunctionNodeKinds, kind):
			name := fieldText(n, spec, kind, source)
			// Languages with no distinct method node kind (Python) nest
			// methods as plain function nodes inside a class body; treat
			// those as methods when a class is currently open.
			if len(spec.MethodNodeKinds) == 0 && len(classStack) > 0 {
				enclosing := classStack[len(classStack)-1]
				d := buildCallableDecl(n, spec, kind, name, domain.DeclMethod, enclosing, source, todos, inInterface())
				decls = append(decls, d)
				methodCountsByClass[enclosing]++
			} else {
				d := buildCallableDecl(n, spec, kind, name, domain.DeclFunction, "", source, todos, false)
				decls = append(decls, d)
				functionCount++
			}
		}

		walkChildren(n, visit)
	}

	visit(root)
	return decls, functionCount, methodCountsByClass
}

func walkChildren(n *sitter.Node, visit func(*sitter.Node)) {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		visit(n.Child(i))
	}
}

func fieldText(n *sitter.Node, spec *LanguageSpec, kind string, source []byte) string {
	field := spec.NameFieldByKind[kind]
	if field == "" {
		field = "name"
	}
	if id := n.ChildByFieldName(field); id != nil {
		return id.Content(source)
	}
	if spec.NameExtractor != nil {
		return spec.NameExtractor(n, source)
	}
	return ""
}

// cFamilyFunctionName extracts a function_definition's identifier by
// descending through nested declarators (pointer_declarator,
// function_declarator) to the innermost identifier/field_identifier.
func cFamilyFunctionName(n *sitter.Node, source []byte) string {
	decl := n.ChildByFieldName("declarator")
	for decl != nil {
		switch decl.Type() {
		case "identifier", "field_identifier", "destructor_name", "operator_name":
			return decl.Content(source)
		}
		next := decl.ChildByFieldName("declarator")
		if next == nil {
			return decl.Content(source)
		}
		decl = next
	}
	return ""
}

func bodyNode(n *sitter.Node, spec *LanguageSpec, kind string) *sitter.Node {
	field := spec.BodyFieldByKind[kind]
	if field == "" {
		field = "body"
	}
	return n.ChildByFieldName(field)
}

func enclosingName(n *sitter.Node, spec *LanguageSpec, source []byte, classStack []string) string {
	if spec.ReceiverExtractor != nil {
		if r := spec.ReceiverExtractor(n, source); r != "" {
			return r
		}
	}
	if len(classStack) > 0 {
		return classStack[len(classStack)-1]
	}
	return ""
}

func buildTypeDecl(n *sitter.Node, spec *LanguageSpec, kind, name string, source []byte) domain.Declaration {
	k := domain.DeclType
	if contains(spec.EnumNodeKinds, kind) {
		k = domain.DeclEnum
	}
	return domain.Declaration{
		Name:       name,
		Kind:       k,
		StartLine:  int(n.StartPoint().Row) + 1,
		EndLine:    int(n.EndPoint().Row) + 1,
		Span:       domain.Span{StartByte: int(n.StartByte()), EndByte: int(n.EndByte())},
		Complexity: 1,
	}
}

func buildCallableDecl(n *sitter.Node, spec *LanguageSpec, kind, name string, declKind domain.DeclarationKind, enclosing string, source []byte, todos []Todo, isInterfaceMember bool) domain.Declaration {
	body := bodyNode(n, spec, kind)

	d := domain.Declaration{
		Name:              name,
		Kind:              declKind,
		StartLine:         int(n.StartPoint().Row) + 1,
		EndLine:           int(n.EndPoint().Row) + 1,
		Span:              domain.Span{StartByte: int(n.StartByte()), EndByte: int(n.EndByte())},
		EnclosingClass:    enclosing,
		IsInterfaceMember: isInterfaceMember,
	}

	if body == nil {
		d.IsEmptyBody = true
		d.Complexity = 1
		d.Stub = domain.StubEmpty
		d.IsStub = !isInterfaceMember
		return d
	}

	span := domain.Span{StartByte: int(body.StartByte()), EndByte: int(body.EndByte())}
	d.BodySpan = &span
	d.Complexity = computeComplexity(body, spec)

	stub, isEmpty := classifyStub(body, spec, source, todos)
	d.Stub = stub
	d.IsEmptyBody = isEmpty
	if !isInterfaceMember {
		d.IsStub = stub != domain.StubNotStub
	}

	return d
}

// bodyLineCount returns the number of source lines a declaration spans,
// from its first to its last line, or 0 for a declaration without a body.
func bodyLineCount(d *domain.Declaration) int {
	if d.BodySpan == nil {
		return 0
	}
	return d.EndLine - d.StartLine + 1
}

func countLines(source []byte) int {
	if len(source) == 0 {
		return 0
	}
	n := bytes.Count(source, []byte("\n"))
	if len(source) > 0 && source[len(source)-1] != '\n' {
		n++
	}
	return n
}
