package rules

import (
	"regexp"
	"strings"

	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/facts"
)

// DetectForbiddenPattern implements spec.md §4.4(c).
func DetectForbiddenPattern(store *facts.Store, contract *domain.Contract, _ domain.Options) []domain.Finding {
	var out []domain.Finding
	includeTests := contract.ShouldIncludeTestFiles()

	for _, f := range store.Files() {
		if !includeTests && IsTestFile(f.RelPath) {
			continue
		}
		for _, p := range contract.ForbiddenPattern {
			if p.Compiled == nil {
				continue
			}
			for _, line := range matchLines(p.Compiled, f.Source) {
				out = append(out, finding(
					domain.RuleForbiddenPattern, domain.SeverityHigh,
					f.RelPath, line,
					"forbidden pattern matched: "+p.Description,
					p.Pattern,
				))
			}
		}
	}
	return out
}

// matchLines returns the 1-indexed line number of every regex match in
// source, in match order.
func matchLines(re *regexp.Regexp, source []byte) []int {
	locs := re.FindAllIndex(source, -1)
	var lines []int
	for _, loc := range locs {
		lines = append(lines, 1+strings.Count(string(source[:loc[0]]), "\n"))
	}
	return lines
}
