package syntax

import (
	"strings"

	"github.com/smacker/go-tree-sitter/scala"
)

func scalaSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:         "scala",
		Extensions: []string{".scala", ".sc"},
		Grammar:    scala.GetLanguage(),

		FunctionNodeKinds: []string{"function_definition"},
		TypeNodeKinds:     []string{"class_definition", "object_definition"},
		InterfaceNodeKinds: []string{"trait_definition"},
		ConstNodeKinds:    []string{"val_definition"},

		NameFieldByKind: map[string]string{
			"function_definition": "name",
			"class_definition":    "name",
			"object_definition":   "name",
			"trait_definition":    "name",
		},
		BodyFieldByKind: map[string]string{
			"function_definition": "body",
		},

		DecisionNodeKinds: map[string]bool{
			"if_expression":     true,
			"for_expression":    true,
			"while_expression":  true,
			"case_clause":       true,
			"catch_clause":      true,
			"&&": true, "||": true,
		},

		CommentNodeKinds:    []string{"comment"},
		LineCommentPrefixes: []string{"//"},
		BlockCommentDelims:  [2]string{"/*", "*/"},

		ImportNodeKinds: []string{"import_declaration"},

		ReturnNodeKind:   "return_expression",
		NullLiteralKinds: []string{"None", "???"},
		PanicCallNames:   []string{"???", "throw "},

		IsTestFile: func(relPath string) bool {
			return strings.HasSuffix(relPath, "Test.scala") || strings.HasSuffix(relPath, "Spec.scala")
		},
	}
}
