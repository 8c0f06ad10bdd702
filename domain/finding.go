package domain

// Rule identifies one of the nine detectors in the Rule Evaluator
// (spec.md §4.4), plus the parse_warning informational rule (spec.md §7).
type Rule string

const (
	RuleMissingFile             Rule = "missing_file"
	RuleMissingSymbol           Rule = "missing_symbol"
	RuleForbiddenPattern        Rule = "forbidden_pattern"
	RuleLowComplexity           Rule = "low_complexity"
	RuleStubFunction            Rule = "stub_function"
	RuleMockData                Rule = "mock_data"
	RuleHollowTodo              Rule = "hollow_todo"
	RuleGodObject               Rule = "god_object"
	RuleHallucinatedDependency  Rule = "hallucinated_dependency"
	RuleMissingTest             Rule = "missing_test"
	RuleParseWarning            Rule = "parse_warning"
)

// Severity is a Finding's severity band.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// Points returns the score contribution for each rule/severity pairing
// defined by spec.md §4.4 and §4.7.
var Points = map[Rule]int{
	RuleMissingFile:            20, // critical when required=true; low (5) applied separately
	RuleMissingSymbol:          15,
	RuleForbiddenPattern:       10,
	RuleLowComplexity:          10,
	RuleStubFunction:           10,
	RuleMockData:               3,
	RuleHollowTodo:             5,
	RuleGodObject:              8,
	RuleHallucinatedDependency: 15,
	RuleMissingTest:            5,
	RuleParseWarning:           0,
}

// Finding is a single rule result tied to a location (spec.md §3).
type Finding struct {
	Rule        Rule
	Severity    Severity
	Points      int
	File        string // relative path; "" for nothing scanned
	Line        int    // 0 if file-level
	Message     string
	RuleContext string // used for suppression matching

	Suppressed bool // retained when show_suppressed is requested
	Suppression *Suppression
}

// Suppression is the inline directive that suppressed a Finding, if any.
type Suppression struct {
	Rule   string
	Reason string
	File   string
	Line   int
	Type   SuppressionType
}

// SuppressionType is how a suppression directive applies.
type SuppressionType string

const (
	SuppressLine     SuppressionType = "line"
	SuppressNextLine SuppressionType = "next_line"
	SuppressFile     SuppressionType = "file"
)
