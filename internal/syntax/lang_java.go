package syntax

import (
	"strings"

	"github.com/smacker/go-tree-sitter/java"
)

func javaSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:         "java",
		Extensions: []string{".java"},
		Grammar:    java.GetLanguage(),

		MethodNodeKinds:    []string{"method_declaration"},
		TypeNodeKinds:      []string{"class_declaration"},
		InterfaceNodeKinds: []string{"interface_declaration"},
		EnumNodeKinds:      []string{"enum_declaration"},
		ConstNodeKinds:     []string{"field_declaration"},

		NameFieldByKind: map[string]string{
			"method_declaration":    "name",
			"class_declaration":     "name",
			"interface_declaration": "name",
			"enum_declaration":      "name",
		},
		BodyFieldByKind: map[string]string{
			"method_declaration": "body",
		},

		DecisionNodeKinds: map[string]bool{
			"if_statement":           true,
			"for_statement":          true,
			"for_statement_in":       true,
			"while_statement":        true,
			"do_statement":           true,
			"switch_label":           true,
			"catch_clause":           true,
			"ternary_expression":     true,
			"&&": true, "||": true,
		},
		DefaultArmNodeKinds: map[string]bool{"switch_label": true},

		CommentNodeKinds:    []string{"line_comment", "block_comment"},
		LineCommentPrefixes: []string{"//"},
		BlockCommentDelims:  [2]string{"/*", "*/"},

		ImportNodeKinds: []string{"import_declaration"},

		ReturnNodeKind:   "return_statement",
		NullLiteralKinds: []string{"null"},
		PanicCallNames:   []string{"throw "},

		IsTestFile: func(relPath string) bool {
			return strings.HasSuffix(relPath, "Test.java") || strings.HasSuffix(relPath, "Tests.java")
		},
	}
}
