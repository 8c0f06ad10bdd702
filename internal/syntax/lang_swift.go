package syntax

import (
	"strings"

	"github.com/smacker/go-tree-sitter/swift"
)

func swiftSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:         "swift",
		Extensions: []string{".swift"},
		Grammar:    swift.GetLanguage(),

		FunctionNodeKinds: []string{"function_declaration"},
		TypeNodeKinds:     []string{"class_declaration", "struct_declaration"},
		InterfaceNodeKinds: []string{"protocol_declaration"},
		EnumNodeKinds:     []string{"enum_declaration"},
		ConstNodeKinds:    []string{"property_declaration"},

		NameFieldByKind: map[string]string{
			"function_declaration": "name",
			"class_declaration":    "name",
			"struct_declaration":   "name",
			"protocol_declaration": "name",
			"enum_declaration":     "name",
		},
		BodyFieldByKind: map[string]string{
			"function_declaration": "body",
		},

		DecisionNodeKinds: map[string]bool{
			"if_statement":       true,
			"guard_statement":    true,
			"for_statement":      true,
			"while_statement":    true,
			"repeat_while_statement": true,
			"switch_entry":       true,
			"catch_clause":       true,
			"ternary_expression": true,
			"&&": true, "||": true,
		},

		CommentNodeKinds:    []string{"comment", "multiline_comment"},
		LineCommentPrefixes: []string{"//"},
		BlockCommentDelims:  [2]string{"/*", "*/"},

		ImportNodeKinds: []string{"import_declaration"},

		ReturnNodeKind:   "control_transfer_statement",
		NullLiteralKinds: []string{"nil"},
		PanicCallNames:   []string{"fatalError(", "preconditionFailure(", "abort("},

		IsTestFile: func(relPath string) bool {
			return strings.HasSuffix(relPath, "Tests.swift") || strings.HasSuffix(relPath, "Test.swift")
		},
	}
}
