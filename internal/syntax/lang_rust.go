package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
)

func rustSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:         "rust",
		Extensions: []string{".rs"},
		Grammar:    rust.GetLanguage(),

		FunctionNodeKinds: []string{"function_item"},
		TypeNodeKinds:     []string{"struct_item", "enum_item"},
		InterfaceNodeKinds: []string{"trait_item"},
		ConstNodeKinds:    []string{"const_item", "static_item"},

		NameFieldByKind: map[string]string{
			"function_item": "name",
			"struct_item":   "name",
			"enum_item":     "name",
			"trait_item":    "name",
			"const_item":    "name",
			"static_item":   "name",
		},
		BodyFieldByKind: map[string]string{
			"function_item": "body",
		},
		ReceiverExtractor: rustImplReceiver,

		DecisionNodeKinds: map[string]bool{
			"if_expression":     true,
			"if_let_expression": true,
			"for_expression":    true,
			"while_expression":  true,
			"loop_expression":   true,
			"match_arm":         true,
			"&&": true, "||": true,
		},

		CommentNodeKinds:    []string{"line_comment", "block_comment"},
		LineCommentPrefixes: []string{"//"},
		BlockCommentDelims:  [2]string{"/*", "*/"},

		ImportNodeKinds:       []string{"use_declaration"},
		ImportGroupNodeKinds:  []string{"use_declaration"},
		ImportGroupChildKinds: []string{"identifier", "scoped_identifier", "use_wildcard"},

		ReturnNodeKind:   "return_expression",
		NullLiteralKinds: []string{"()"},
		PanicCallNames:   []string{"panic!", "todo!", "unimplemented!"},

		IsTestFile: func(relPath string) bool {
			return strings.HasSuffix(relPath, "_test.rs") || strings.Contains(relPath, "/tests/")
		},
	}
}

// rustImplReceiver resolves a method's enclosing type by walking up to the
// nearest impl_item ancestor and reading its type field. go-tree-sitter's
// Node exposes Parent(), so this walks up rather than down.
func rustImplReceiver(n *sitter.Node, source []byte) string {
	p := n.Parent()
	for p != nil {
		if p.Type() == "impl_item" {
			if t := p.ChildByFieldName("type"); t != nil {
				return t.Content(source)
			}
		}
		p = p.Parent()
	}
	return ""
}
