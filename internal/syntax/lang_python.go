package syntax

import (
	"strings"

	"github.com/smacker/go-tree-sitter/python"
)

func pythonSpec() *LanguageSpec {
	return &LanguageSpec{
		ID:                 "python",
		Extensions:         []string{".py"},
		Grammar:            python.GetLanguage(),
		FunctionNodeKinds:  []string{"function_definition"},
		MethodNodeKinds:    []string{}, // methods are function_definition nested under class_definition; see classStack fallback
		TypeNodeKinds:      []string{"class_definition"},
		ConstNodeKinds:     []string{},

		NameFieldByKind: map[string]string{
			"function_definition": "name",
			"class_definition":    "name",
		},
		BodyFieldByKind: map[string]string{
			"function_definition": "body",
		},

		DecisionNodeKinds: map[string]bool{
			"if_statement":          true,
			"elif_clause":           true,
			"for_statement":         true,
			"while_statement":       true,
			"except_clause":         true,
			"conditional_expression": true,
			"list_comprehension":    true,
			"set_comprehension":     true,
			"dictionary_comprehension": true,
			"and": true, "or": true,
		},

		CommentNodeKinds:    []string{"comment"},
		LineCommentPrefixes: []string{"#"},

		ImportNodeKinds:       []string{"import_from_statement"},
		ImportPathField:       "module_name",
		ImportGroupNodeKinds:  []string{"import_statement"},
		ImportGroupChildKinds: []string{"dotted_name"},

		ReturnNodeKind:   "return_statement",
		NullLiteralKinds: []string{"None"},
		PanicCallNames:   []string{"raise "},

		IsTestFile: func(relPath string) bool {
			base := relPath
			if i := strings.LastIndex(base, "/"); i >= 0 {
				base = base[i+1:]
			}
			return strings.HasPrefix(base, "test_") || strings.HasSuffix(base, "_test.py")
		},
	}
}
