// Package suppress is the Suppression Engine (spec.md §4.6): it scans
// every file for inline hollowcheck:ignore directives and filters the
// Rule Evaluator's findings against them before scoring.
package suppress

import (
	"regexp"
	"strings"

	"github.com/hollowcheck/hollowcheck/domain"
)

// directivePattern matches any of the three directive forms across any
// comment syntax: it only anchors on the `hollowcheck:ignore...` token
// itself, so it works whether the surrounding text is `//`, `#`, `/* */`,
// or anything else a comment extractor stripped away already — by
// scanning raw source lines directly here, rather than routing through
// per-language comment node kinds, one regex covers every language.
var directivePattern = regexp.MustCompile(`hollowcheck:(ignore-file|ignore-next-line|ignore)\s+(\S+)(?:\s*-\s*(.*))?`)

// Scan extracts every suppression directive in a file's source, keyed by
// the line it appears on.
func Scan(relPath string, source []byte) []domain.Suppression {
	var out []domain.Suppression
	lines := strings.Split(string(source), "\n")
	for i, line := range lines {
		m := directivePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		lineNo := i + 1
		var supType domain.SuppressionType
		switch m[1] {
		case "ignore-file":
			supType = domain.SuppressFile
		case "ignore-next-line":
			supType = domain.SuppressNextLine
		default:
			supType = domain.SuppressLine
		}
		out = append(out, domain.Suppression{
			Rule:   m[2],
			Reason: strings.TrimSpace(m[3]),
			File:   relPath,
			Line:   lineNo,
			Type:   supType,
		})
	}
	return out
}

// Apply filters findings against the full suppression set extracted from
// every scanned file. Suppressed findings are dropped unless
// showSuppressed is true, in which case they are retained with their
// Suppressed flag and matching Suppression attached.
func Apply(findings []domain.Finding, suppressions []domain.Suppression, showSuppressed bool) []domain.Finding {
	var out []domain.Finding
	for _, f := range findings {
		if sup := match(f, suppressions); sup != nil {
			if showSuppressed {
				f.Suppressed = true
				f.Suppression = sup
				out = append(out, f)
			}
			continue
		}
		out = append(out, f)
	}
	return out
}

func match(f domain.Finding, suppressions []domain.Suppression) *domain.Suppression {
	for i := range suppressions {
		s := &suppressions[i]
		if s.File != f.File {
			continue
		}
		if !ruleMatches(s.Rule, f.Rule) {
			continue
		}
		switch s.Type {
		case domain.SuppressFile:
			return s
		case domain.SuppressLine:
			if s.Line == f.Line {
				return s
			}
		case domain.SuppressNextLine:
			if s.Line+1 == f.Line {
				return s
			}
		}
	}
	return nil
}

func ruleMatches(directiveRule string, rule domain.Rule) bool {
	return directiveRule == "*" || directiveRule == string(rule)
}
