package syntax

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hollowcheck/hollowcheck/domain"
)

// GenericAnalyzer implements domain.LanguageAnalyzer by driving tree-sitter
// off a LanguageSpec table entry. It is "generic" in the sense spec.md's
// design notes intend: the ten supported languages share this one
// implementation, differentiated only by the data each lang_*.go file
// registers.
type GenericAnalyzer struct {
	spec *LanguageSpec
}

// NewGenericAnalyzer builds an analyzer for the given language spec.
func NewGenericAnalyzer(spec *LanguageSpec) *GenericAnalyzer {
	return &GenericAnalyzer{spec: spec}
}

func (a *GenericAnalyzer) LanguageID() string   { return a.spec.ID }
func (a *GenericAnalyzer) Extensions() []string { return a.spec.Extensions }

// Analyze parses source and extracts the full fact set. Parse failures
// never surface as Go errors (spec.md §7 ParseError is recovered
// locally): a best-effort ParsedFile with HasParseErrors set is returned
// instead, built from whatever tree-sitter could recover.
func (a *GenericAnalyzer) Analyze(relPath, absPath string, source []byte) (*domain.ParsedFile, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(a.spec.Grammar)
	defer parser.Close()

	tree, _ := parser.ParseCtx(context.Background(), nil, source)
	if tree == nil {
		return &domain.ParsedFile{
			AbsPath:        absPath,
			RelPath:        relPath,
			Language:       a.spec.ID,
			Source:         source,
			TotalLines:     countLines(source),
			HasParseErrors: true,
		}, nil
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return &domain.ParsedFile{
			AbsPath:        absPath,
			RelPath:        relPath,
			Language:       a.spec.ID,
			Source:         source,
			TotalLines:     countLines(source),
			HasParseErrors: true,
		}, nil
	}

	todos := extractTodos(root, a.spec, source)
	decls, functionCount, methodCounts := extractDeclarations(root, a.spec, source, todos)
	imports := extractImports(root, a.spec, source)

	domainTodos := make([]domain.Todo, 0, len(todos))
	for _, t := range todos {
		domainTodos = append(domainTodos, domain.Todo{Text: t.Text, Line: t.Line, IsHollow: t.IsHollow})
	}

	pf := &domain.ParsedFile{
		AbsPath:             absPath,
		RelPath:             relPath,
		Language:            a.spec.ID,
		Source:              source,
		Declarations:        decls,
		Imports:             imports,
		Todos:               domainTodos,
		TotalLines:          countLines(source),
		FunctionCount:       functionCount,
		MethodCountsByClass: methodCounts,
		HasParseErrors:      root.HasError(),
	}
	return pf, nil
}

// IsTestFile delegates to the language's test-file convention, falling
// back to a case-insensitive "test" substring check when a language spec
// doesn't override it.
func IsTestFile(spec *LanguageSpec, relPath string) bool {
	if spec.IsTestFile != nil {
		return spec.IsTestFile(relPath)
	}
	lower := strings.ToLower(relPath)
	return strings.Contains(lower, "test")
}
