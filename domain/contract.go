// Package domain holds the data model shared by every hollowcheck
// component: the contract schema, the parsed-file facts produced by the
// syntax analyzers, findings, and the final report. Nothing in this
// package does I/O or depends on tree-sitter, viper, or any other
// third-party package; it is the vocabulary the rest of the engine speaks.
package domain

import "regexp"

// Contract is the immutable, load-once quality contract a source tree is
// validated against. Regexes in ForbiddenPattern and MockSignature are
// compiled once at load time (internal/contractio) and travel with the
// contract rather than being recompiled per detector invocation.
type Contract struct {
	Version     string `yaml:"version"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// IncludeTestFiles controls whether forbidden-pattern matching applies
	// to test files. Defaults to true (test files included) unless set.
	IncludeTestFiles *bool `yaml:"include_test_files"`

	ExcludedPaths []string `yaml:"excluded_paths"`

	RequiredFiles    []RequiredFile           `yaml:"required_files"`
	RequiredSymbols  []RequiredSymbol         `yaml:"required_symbols"`
	ForbiddenPattern []ForbiddenPattern       `yaml:"forbidden_patterns"`
	MockSignatures   *MockSignaturesConfig    `yaml:"mock_signatures"`
	Complexity       []ComplexityRequirement  `yaml:"complexity"`
	RequiredTests    []RequiredTest           `yaml:"required_tests"`
	GodObjects       *GodObjectConfig         `yaml:"god_objects"`
	HollowTodos      *HollowTodosConfig       `yaml:"hollow_todos"`
	DependencyVerify *DependencyVerifyConfig  `yaml:"dependency_verification"`

	Threshold *int `yaml:"threshold"`
}

// RequiredFile names a file the contract expects to exist.
type RequiredFile struct {
	Path     string `yaml:"path"`
	Required bool   `yaml:"required"`
}

// SymbolKind is the declaration kind a RequiredSymbol or ComplexityRequirement targets.
type SymbolKind string

const (
	SymbolFunction SymbolKind = "function"
	SymbolMethod   SymbolKind = "method"
	SymbolType     SymbolKind = "type"
	SymbolConst    SymbolKind = "const"
)

// RequiredSymbol names a symbol that must be declared in a specific file.
type RequiredSymbol struct {
	Name string     `yaml:"name"`
	Kind SymbolKind `yaml:"kind"`
	File string     `yaml:"file"`
}

// ForbiddenPattern is a regex that must not occur anywhere in scanned source.
type ForbiddenPattern struct {
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description"`

	// Compiled is populated once at contract load time.
	Compiled *regexp.Regexp `yaml:"-"`
}

// MockSignature is a regex identifying mock/placeholder data.
type MockSignature struct {
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description"`

	Compiled *regexp.Regexp `yaml:"-"`
}

// MockSignaturesConfig configures mock-data detection.
type MockSignaturesConfig struct {
	Patterns       []MockSignature `yaml:"patterns"`
	SkipTestFiles  *bool           `yaml:"skip_test_files"`
}

// ShouldSkipTestFiles returns whether mock-data detection skips test files (default true).
func (c *MockSignaturesConfig) ShouldSkipTestFiles() bool {
	if c == nil || c.SkipTestFiles == nil {
		return true
	}
	return *c.SkipTestFiles
}

// ComplexityRequirement is a minimum cyclomatic-complexity floor for a named symbol.
type ComplexityRequirement struct {
	Symbol        string `yaml:"symbol"`
	File          string `yaml:"file"`
	MinComplexity int    `yaml:"min_complexity"`
}

// RequiredTest names a test function that must exist somewhere in the test corpus.
type RequiredTest struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// GodObjectConfig configures the god-object detector's thresholds.
type GodObjectConfig struct {
	Enabled                *bool `yaml:"enabled"`
	MaxFileLines           int   `yaml:"max_file_lines"`
	MaxFunctionLines       int   `yaml:"max_function_lines"`
	MaxFunctionComplexity  int   `yaml:"max_function_complexity"`
	MaxFunctionsPerFile    int   `yaml:"max_functions_per_file"`
	MaxClassMethods        int   `yaml:"max_class_methods"`
}

// DefaultMaxFileLines etc. are applied when the contract sets a God Object
// section but leaves individual thresholds at zero.
const (
	DefaultMaxFileLines          = 500
	DefaultMaxFunctionLines      = 50
	DefaultMaxFunctionComplexity = 15
	DefaultMaxFunctionsPerFile   = 20
	DefaultMaxClassMethods       = 15
)

// IsEnabled reports whether god-object detection runs (default true when the section is present).
func (c *GodObjectConfig) IsEnabled() bool {
	if c == nil {
		return false
	}
	if c.Enabled == nil {
		return true
	}
	return *c.Enabled
}

// Thresholds resolves the configured thresholds, filling in defaults and
// applying the strict/relaxed multiplier from CLI options.
func (c *GodObjectConfig) Thresholds(multiplier float64) (maxFileLines, maxFuncLines, maxFuncComplexity, maxFuncsPerFile, maxClassMethods int) {
	maxFileLines = orDefault(c.val(func() int { return c.MaxFileLines }), DefaultMaxFileLines)
	maxFuncLines = orDefault(c.val(func() int { return c.MaxFunctionLines }), DefaultMaxFunctionLines)
	maxFuncComplexity = orDefault(c.val(func() int { return c.MaxFunctionComplexity }), DefaultMaxFunctionComplexity)
	maxFuncsPerFile = orDefault(c.val(func() int { return c.MaxFunctionsPerFile }), DefaultMaxFunctionsPerFile)
	maxClassMethods = orDefault(c.val(func() int { return c.MaxClassMethods }), DefaultMaxClassMethods)

	if multiplier != 1 {
		maxFileLines = scale(maxFileLines, multiplier)
		maxFuncLines = scale(maxFuncLines, multiplier)
		maxFuncComplexity = scale(maxFuncComplexity, multiplier)
		maxFuncsPerFile = scale(maxFuncsPerFile, multiplier)
		maxClassMethods = scale(maxClassMethods, multiplier)
	}
	return
}

func (c *GodObjectConfig) val(f func() int) int {
	if c == nil {
		return 0
	}
	return f()
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func scale(v int, multiplier float64) int {
	scaled := int(float64(v) * multiplier)
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}

// HollowTodosConfig toggles the hollow-TODO detector.
type HollowTodosConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// IsEnabled reports whether hollow-TODO detection runs (default true).
func (c *HollowTodosConfig) IsEnabled() bool {
	if c == nil || c.Enabled == nil {
		return true
	}
	return *c.Enabled
}

// RegistryConfig configures a single package registry probe.
type RegistryConfig struct {
	Enabled   *bool `yaml:"enabled"`
	TimeoutMs int   `yaml:"timeout_ms"`
}

// IsEnabled reports whether this registry is probed (default true).
func (c *RegistryConfig) IsEnabled() bool {
	if c == nil || c.Enabled == nil {
		return true
	}
	return *c.Enabled
}

// TimeoutMillis resolves the configured timeout, defaulting to 5000ms.
func (c *RegistryConfig) TimeoutMillis() int {
	if c == nil || c.TimeoutMs <= 0 {
		return 5000
	}
	return c.TimeoutMs
}

// RegistriesConfig holds per-registry settings.
type RegistriesConfig struct {
	PyPI   *RegistryConfig `yaml:"pypi"`
	Npm    *RegistryConfig `yaml:"npm"`
	Crates *RegistryConfig `yaml:"crates"`
	Go     *RegistryConfig `yaml:"go"`
}

// DependencyVerifyConfig configures the Dependency Verifier.
type DependencyVerifyConfig struct {
	Enabled        *bool              `yaml:"enabled"`
	Registries     *RegistriesConfig  `yaml:"registries"`
	Allowlist      []string           `yaml:"allowlist"`
	CacheTTLHours  int                `yaml:"cache_ttl_hours"`
	FailOnTimeout  bool               `yaml:"fail_on_timeout"`
	MaxConcurrency int                `yaml:"max_concurrency"`
}

// IsEnabled reports whether dependency verification runs (default true when the section is present).
func (c *DependencyVerifyConfig) IsEnabled() bool {
	if c == nil {
		return false
	}
	if c.Enabled == nil {
		return true
	}
	return *c.Enabled
}

// CacheTTL resolves the cache TTL in hours, defaulting to 24.
func (c *DependencyVerifyConfig) CacheTTL() int {
	if c == nil || c.CacheTTLHours <= 0 {
		return 24
	}
	return c.CacheTTLHours
}

// Concurrency resolves the bounded probe concurrency, defaulting to 8.
func (c *DependencyVerifyConfig) Concurrency() int {
	if c == nil || c.MaxConcurrency <= 0 {
		return 8
	}
	return c.MaxConcurrency
}

// ShouldFailOnTimeout reports whether unknown probe outcomes are treated as findings.
func (c *DependencyVerifyConfig) ShouldFailOnTimeout() bool {
	return c != nil && c.FailOnTimeout
}

// RegistryFor returns the per-registry config for the given registry name
// ("pypi", "npm", "crates", "go"), or nil when the contract does not
// configure that registry.
func (c *DependencyVerifyConfig) RegistryFor(name string) *RegistryConfig {
	var regs *RegistriesConfig
	if c != nil {
		regs = c.Registries
	}
	if regs == nil {
		return nil
	}
	switch name {
	case "pypi":
		return regs.PyPI
	case "npm":
		return regs.Npm
	case "crates":
		return regs.Crates
	case "go":
		return regs.Go
	}
	return nil
}

// ShouldIncludeTestFiles reports whether forbidden-pattern matching covers
// test files (default true, per spec.md §4.4(c)).
func (c *Contract) ShouldIncludeTestFiles() bool {
	if c.IncludeTestFiles == nil {
		return true
	}
	return *c.IncludeTestFiles
}

// ResolvedThreshold returns the contract's threshold, defaulting to 25.
func (c *Contract) ResolvedThreshold() int {
	if c.Threshold == nil {
		return 25
	}
	return *c.Threshold
}
