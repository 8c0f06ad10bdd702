// Package contractio implements the Contract loader external
// collaborator spec.md §6 names: turning a YAML file on disk into a
// validated, regex-compiled domain.Contract.
package contractio

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/apperr"
)

// Load reads, parses, and validates a contract YAML file, compiling
// every forbidden-pattern and mock-signature regex once so detectors
// never pay recompilation cost per invocation.
func Load(path string) (*domain.Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Contract(err, "failed to read contract %s", path)
	}

	var c domain.Contract
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, apperr.Contract(err, "failed to parse contract %s", path)
	}

	if err := compilePatterns(&c); err != nil {
		return nil, apperr.Contract(err, "invalid pattern in contract %s", path)
	}

	if err := validate(&c); err != nil {
		return nil, apperr.Contract(err, "invalid contract %s", path)
	}

	return &c, nil
}

func compilePatterns(c *domain.Contract) error {
	for i := range c.ForbiddenPattern {
		re, err := regexp.Compile(c.ForbiddenPattern[i].Pattern)
		if err != nil {
			return fmt.Errorf("forbidden_patterns[%d]: %w", i, err)
		}
		c.ForbiddenPattern[i].Compiled = re
	}
	if c.MockSignatures != nil {
		for i := range c.MockSignatures.Patterns {
			re, err := regexp.Compile(c.MockSignatures.Patterns[i].Pattern)
			if err != nil {
				return fmt.Errorf("mock_signatures.patterns[%d]: %w", i, err)
			}
			c.MockSignatures.Patterns[i].Compiled = re
		}
	}
	return nil
}

func validate(c *domain.Contract) error {
	if c.Version == "" {
		return fmt.Errorf("version is required")
	}
	for i, rs := range c.RequiredSymbols {
		if rs.Name == "" || rs.File == "" {
			return fmt.Errorf("required_symbols[%d]: name and file are required", i)
		}
	}
	for i, cr := range c.Complexity {
		if cr.Symbol == "" {
			return fmt.Errorf("complexity[%d]: symbol is required", i)
		}
	}
	return nil
}
