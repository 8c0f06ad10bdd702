package rules

import (
	"strings"

	"github.com/fatih/camelcase"
)

// humanizeSymbol splits a camelCase/PascalCase/snake_case identifier into
// space-separated words for use in finding messages, e.g. "parseConfigFile"
// -> "parse Config File". Names that don't split stay as-is.
func humanizeSymbol(name string) string {
	var words []string
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		words = append(words, camelcase.Split(part)...)
	}
	if len(words) <= 1 {
		return name
	}
	return strings.Join(words, " ")
}
