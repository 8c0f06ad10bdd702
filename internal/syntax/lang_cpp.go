package syntax

import (
	"github.com/smacker/go-tree-sitter/cpp"
)

func cppSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:         "cpp",
		Extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hxx"},
		Grammar:    cpp.GetLanguage(),

		FunctionNodeKinds: []string{"function_definition"},
		TypeNodeKinds:     []string{"class_specifier", "struct_specifier", "enum_specifier"},

		NameFieldByKind: map[string]string{},
		NameExtractor:   cFamilyFunctionName,
		BodyFieldByKind: map[string]string{
			"function_definition": "body",
		},

		DecisionNodeKinds: map[string]bool{
			"if_statement":           true,
			"for_statement":          true,
			"for_range_loop":         true,
			"while_statement":        true,
			"do_statement":           true,
			"case_statement":         true,
			"catch_clause":           true,
			"conditional_expression": true,
			"&&": true, "||": true,
		},
		DefaultArmNodeKinds: map[string]bool{"case_statement": true},

		CommentNodeKinds:    []string{"comment"},
		LineCommentPrefixes: []string{"//"},
		BlockCommentDelims:  [2]string{"/*", "*/"},

		ImportNodeKinds: []string{"preproc_include"},
		ImportPathField: "path",

		ReturnNodeKind:   "return_statement",
		NullLiteralKinds: []string{"nullptr", "NULL"},
		PanicCallNames:   []string{"throw ", "abort("},

		IsTestFile: func(relPath string) bool { return false },
	}
}
