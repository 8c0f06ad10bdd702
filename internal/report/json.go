package report

import (
	"encoding/json"

	"github.com/hollowcheck/hollowcheck/domain"
)

// JSONFormatter renders a Report as indented JSON.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter { return &JSONFormatter{} }

func (f *JSONFormatter) Format(r *domain.Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

var _ domain.ReportFormatter = (*JSONFormatter)(nil)
