package syntax

import (
	"strings"

	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

func typescriptSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:         "typescript",
		Extensions: []string{".ts", ".tsx", ".mts"},
		Grammar:    tsx.GetLanguage(),

		FunctionNodeKinds: []string{"function_declaration", "function_expression", "arrow_function"},
		MethodNodeKinds:   []string{"method_definition"},
		TypeNodeKinds:     []string{"class_declaration"},
		InterfaceNodeKinds: []string{"interface_declaration"},

		NameFieldByKind: map[string]string{
			"function_declaration":  "name",
			"class_declaration":     "name",
			"method_definition":     "name",
			"interface_declaration": "name",
		},
		BodyFieldByKind: map[string]string{
			"function_declaration": "body",
			"function_expression":  "body",
			"arrow_function":       "body",
			"method_definition":    "body",
		},

		DecisionNodeKinds: map[string]bool{
			"if_statement":       true,
			"for_statement":      true,
			"for_in_statement":   true,
			"while_statement":    true,
			"do_statement":       true,
			"switch_case":        true,
			"catch_clause":       true,
			"ternary_expression": true,
			"&&": true, "||": true,
		},

		CommentNodeKinds:    []string{"comment"},
		LineCommentPrefixes: []string{"//"},
		BlockCommentDelims:  [2]string{"/*", "*/"},

		ImportNodeKinds: []string{"import_statement"},

		ReturnNodeKind:   "return_statement",
		NullLiteralKinds: []string{"undefined", "null"},
		PanicCallNames:   []string{"throw "},

		IsTestFile: func(relPath string) bool {
			lower := strings.ToLower(relPath)
			return strings.Contains(lower, ".test.") || strings.Contains(lower, ".spec.") || strings.Contains(lower, "__tests__")
		},
	}
}
