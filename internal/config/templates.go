package config

import "strconv"

// Strictness picks the god-object/complexity thresholds baked into a
// generated contract template.
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

type strictnessPreset struct {
	Threshold        int
	MaxFileLines     int
	MaxFunctionLines int
}

func strictnessPresets() map[Strictness]strictnessPreset {
	return map[Strictness]strictnessPreset{
		StrictnessRelaxed:  {Threshold: 40, MaxFileLines: 800, MaxFunctionLines: 150},
		StrictnessStandard: {Threshold: 25, MaxFileLines: 500, MaxFunctionLines: 80},
		StrictnessStrict:   {Threshold: 10, MaxFileLines: 300, MaxFunctionLines: 50},
	}
}

// GetMinimalConfigTemplate returns a bare-bones hollowcheck.yaml with only
// the threshold and a couple of excluded_paths set.
func GetMinimalConfigTemplate() string {
	return `# hollowcheck contract (minimal)
version: "1"
name: "project"

threshold: 25

excluded_paths:
  - "**/node_modules/**"
  - "**/vendor/**"
  - "**/*_test.go"
`
}

// GetFullConfigTemplate returns a documented hollowcheck.yaml tuned for the
// given strictness, with every contract section present and commented.
func GetFullConfigTemplate(name string, strictness Strictness) string {
	preset := strictnessPresets()[strictness]
	if preset.Threshold == 0 {
		preset = strictnessPresets()[StrictnessStandard]
	}

	return `# hollowcheck contract
# Generated by "hollowcheck init" -- edit freely, every section is optional.
version: "1"
name: "` + name + `"
description: "Quality gate for ` + name + `"

# Pass/fail cutoff for the 0-100 score (see "hollowcheck analyze --threshold"
# to override per run without editing this file).
threshold: ` + strconv.Itoa(preset.Threshold) + `

# Glob patterns skipped entirely during the scan, on top of the .git
# directory, which hollowcheck always skips.
excluded_paths:
  - "**/testdata/**"
  - "**/*.generated.go"

# Files that must exist for the project to be considered complete.
required_files:
  - path: "README.md"
    required: true

# Specific declarations that must be present somewhere in the named file.
required_symbols: []
#  - file: "internal/api/server.go"
#    name: "NewServer"
#    kind: "function"

# Regexes that must not appear anywhere in scanned files, comments included
# (test files are scanned too unless include_test_files is false).
forbidden_patterns:
  - pattern: "TODO: implement"
    description: "unresolved implementation TODO"

# Regexes identifying mock/placeholder data; every match is reported.
# Test files are skipped unless skip_test_files is false.
mock_signatures:
  patterns: []
#    - pattern: "example\\.com"
#      description: "placeholder domain"

# Minimum cyclomatic complexity for named functions/methods.
complexity: []
#  - symbol: "ParseConfig"
#    min_complexity: 3

# Test-coverage expectations by symbol.
required_tests: []

# God-object detection: files or types that have grown too large.
god_objects:
  max_file_lines: ` + strconv.Itoa(preset.MaxFileLines) + `
  max_function_lines: ` + strconv.Itoa(preset.MaxFunctionLines) + `

# Placeholder/TODO comment detection.
hollow_todos:
  enabled: true

# Verifies that imported third-party packages actually resolve against
# their public registries (PyPI, npm, crates.io, the Go module proxy).
dependency_verification:
  enabled: false
  allowlist: []
`
}
