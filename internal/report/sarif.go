package report

import (
	"encoding/json"

	"github.com/hollowcheck/hollowcheck/domain"
)

// sarifLog, sarifRun, and friends model just the subset of the SARIF
// 2.1.0 schema hollowcheck needs to report file/line findings: one tool
// driver plus one result per retained Finding.
type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name            string      `json:"name"`
	InformationURI  string      `json:"informationUri,omitempty"`
	Version         string      `json:"version,omitempty"`
	Rules           []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

// SARIFFormatter renders a Report as SARIF 2.1.0.
type SARIFFormatter struct{}

func NewSARIFFormatter() *SARIFFormatter { return &SARIFFormatter{} }

func (f *SARIFFormatter) Format(r *domain.Report) ([]byte, error) {
	seenRules := map[domain.Rule]bool{}
	var rules []sarifRule
	var results []sarifResult

	for _, v := range r.Violations {
		if !seenRules[v.Rule] {
			seenRules[v.Rule] = true
			rules = append(rules, sarifRule{ID: string(v.Rule), Name: string(v.Rule)})
		}
		var region *sarifRegion
		if v.Line > 0 {
			region = &sarifRegion{StartLine: v.Line}
		}
		results = append(results, sarifResult{
			RuleID:  string(v.Rule),
			Level:   sarifLevel(v.Severity),
			Message: sarifMessage{Text: v.Message},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: v.File},
					Region:           region,
				},
			}},
		})
	}

	log := sarifLog{
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:    "hollowcheck",
				Version: r.Version,
				Rules:   rules,
			}},
			Results: results,
		}},
	}
	return json.MarshalIndent(log, "", "  ")
}

func sarifLevel(sev domain.Severity) string {
	switch sev {
	case domain.SeverityCritical, domain.SeverityHigh:
		return "error"
	case domain.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}

var _ domain.ReportFormatter = (*SARIFFormatter)(nil)
