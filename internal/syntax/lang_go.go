package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

func goSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:                "go",
		Extensions:        []string{".go"},
		Grammar:           golang.GetLanguage(),
		FunctionNodeKinds: []string{"function_declaration"},
		MethodNodeKinds:   []string{"method_declaration"},
		TypeNodeKinds:     []string{"type_declaration"},
		ConstNodeKinds:    []string{"const_declaration"},

		NameFieldByKind: map[string]string{
			"function_declaration": "name",
			"method_declaration":   "name",
		},
		BodyFieldByKind: map[string]string{
			"function_declaration": "body",
			"method_declaration":   "body",
		},
		ReceiverExtractor: goReceiver,

		DecisionNodeKinds: map[string]bool{
			"if_statement":        true,
			"for_statement":       true,
			"expression_case":     true,
			"communication_case":  true,
			"&&":                  true,
			"||":                  true,
		},

		CommentNodeKinds:    []string{"comment"},
		LineCommentPrefixes: []string{"//"},
		BlockCommentDelims:  [2]string{"/*", "*/"},

		ImportNodeKinds:      []string{"import_spec"},
		ImportGroupNodeKinds: []string{"import_declaration"},
		ImportPathField:      "path",

		ReturnNodeKind:   "return_statement",
		NullLiteralKinds: []string{"nil"},
		PanicCallNames:   []string{"panic("},

		IsTestFile: func(relPath string) bool {
			return strings.HasSuffix(relPath, "_test.go")
		},
	}
}

// goReceiver pulls the receiver type name out of a Go method declaration,
// stripping any pointer star.
func goReceiver(n *sitter.Node, source []byte) string {
	recv := n.ChildByFieldName("receiver")
	if recv == nil {
		return ""
	}
	count := int(recv.ChildCount())
	for i := 0; i < count; i++ {
		param := recv.Child(i)
		if param == nil || param.Type() != "parameter_declaration" {
			continue
		}
		typeNode := param.ChildByFieldName("type")
		if typeNode == nil {
			continue
		}
		text := typeNode.Content(source)
		return strings.TrimPrefix(text, "*")
	}
	return ""
}
