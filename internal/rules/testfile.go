package rules

import (
	"regexp"
	"strings"
)

var testFilePatterns = []*regexp.Regexp{
	regexp.MustCompile(`_test\.go$`),
	regexp.MustCompile(`(^|/)test_[^/]+\.py$`),
	regexp.MustCompile(`_test\.py$`),
	regexp.MustCompile(`\.test\.(js|ts|jsx|tsx)$`),
	regexp.MustCompile(`\.spec\.(js|ts|jsx|tsx)$`),
	regexp.MustCompile(`Test\.java$`),
}

// IsTestFile reports whether relPath matches the test-file pattern
// defined in the glossary: a fixed set of per-language suffixes, or any
// path containing a /tests/ or /test/ segment.
func IsTestFile(relPath string) bool {
	for _, p := range testFilePatterns {
		if p.MatchString(relPath) {
			return true
		}
	}
	normalized := "/" + strings.ReplaceAll(relPath, `\`, "/")
	return strings.Contains(normalized, "/tests/") || strings.Contains(normalized, "/test/")
}
