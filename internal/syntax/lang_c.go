package syntax

import (
	"github.com/smacker/go-tree-sitter/c"
)

func cSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:         "c",
		Extensions: []string{".c", ".h"},
		Grammar:    c.GetLanguage(),

		FunctionNodeKinds: []string{"function_definition"},
		TypeNodeKinds:     []string{"struct_specifier", "enum_specifier"},

		NameFieldByKind: map[string]string{},
		NameExtractor:   cFamilyFunctionName,
		BodyFieldByKind: map[string]string{
			"function_definition": "body",
		},

		DecisionNodeKinds: map[string]bool{
			"if_statement":          true,
			"for_statement":         true,
			"while_statement":       true,
			"do_statement":          true,
			"case_statement":        true,
			"conditional_expression": true,
			"&&": true, "||": true,
		},
		DefaultArmNodeKinds: map[string]bool{"case_statement": true},

		CommentNodeKinds:    []string{"comment"},
		LineCommentPrefixes: []string{"//"},
		BlockCommentDelims:  [2]string{"/*", "*/"},

		ImportNodeKinds: []string{"preproc_include"},
		ImportPathField:  "path",

		ReturnNodeKind:   "return_statement",
		NullLiteralKinds: []string{"NULL"},
		PanicCallNames:   []string{"abort("},

		IsTestFile: func(relPath string) bool { return false },
	}
}
