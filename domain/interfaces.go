package domain

import "context"

// LanguageAnalyzer is the capability set a per-language Syntax Analyzer
// (spec.md §4.2, Component B) implements. Every analyzer produces the same
// ParsedFile shape; HOW a given language walks its syntax tree is an
// implementation detail of internal/syntax, driven by a LanguageSpec table
// rather than per-language Go code (spec.md Design Notes).
type LanguageAnalyzer interface {
	// LanguageID returns the language identifier, e.g. "go", "python".
	LanguageID() string

	// Extensions returns the lowercase, dot-prefixed extensions this
	// analyzer handles, e.g. [".go"].
	Extensions() []string

	// Analyze parses source and extracts the full ParsedFile fact set.
	// A malformed file never returns an error for recoverable parse
	// issues (spec.md §7 ParseError): it returns a best-effort ParsedFile
	// with HasParseErrors set.
	Analyze(relPath, absPath string, source []byte) (*ParsedFile, error)
}

// LanguageRegistry dispatches a file extension to its analyzer
// (spec.md §4.1, Component A). Dispatch is deterministic; unregistered
// extensions resolve to (nil, false) and are skipped with no finding.
type LanguageRegistry interface {
	AnalyzerFor(ext string) (LanguageAnalyzer, bool)
	SupportedExtensions() []string
}

// ContractLoader is the external collaborator (spec.md §1, §6) that turns
// a YAML file on disk into a Contract.
type ContractLoader interface {
	Load(path string) (*Contract, error)
}

// FileWalker is the external collaborator that yields relative paths
// under a root, honoring excluded_paths globs and CLI include/exclude
// overrides (spec.md §6).
type FileWalker interface {
	Walk(ctx context.Context, root string, contract *Contract, include, exclude []string) ([]string, error)
}

// ReportFormatter is the external collaborator that renders a Report in
// pretty/JSON/SARIF form (spec.md §6).
type ReportFormatter interface {
	Format(r *Report) ([]byte, error)
}

// RegistryProbe checks whether a package exists in a specific public
// registry (spec.md §4.5). Implementations: internal/registry/probe.go.
type RegistryProbe interface {
	// Check returns ("exists"|"not_found"|"unknown", err). err is non-nil
	// only for programming errors, never for network failures — those
	// resolve to PackageStatusUnknown per spec.md §7 NetworkError.
	Check(ctx context.Context, canonicalName string) (PackageStatus, error)
}

// PackageStatus is the outcome of a single registry probe.
type PackageStatus string

const (
	PackageExists   PackageStatus = "exists"
	PackageNotFound PackageStatus = "not_found"
	PackageUnknown  PackageStatus = "unknown"
)

// ProgressManager and TaskProgress report long-running operation progress
// to an interactive terminal; a no-op implementation is used in
// non-interactive or CI contexts.
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress
	IsInteractive() bool
	Close()
}

// TaskProgress tracks progress of a single long-running task.
type TaskProgress interface {
	Increment(n int)
	Describe(description string)
	Complete()
}

// Options are the CLI-supplied knobs that modify Analyze's behavior
// without changing the Contract itself (spec.md §6).
type Options struct {
	SkipRegistryCheck bool
	ShowSuppressed    bool

	// ThresholdOverride, if non-nil, supersedes Contract.ResolvedThreshold().
	ThresholdOverride *int

	// GodObjectMultiplier applies the --strict/--relaxed profile switch:
	// 1.0 (default), 0.5 (strict), 2.0 (relaxed).
	GodObjectMultiplier float64

	// Include/Exclude are CLI glob overrides layered on top of the
	// contract's excluded_paths (spec.md §6).
	Include []string
	Exclude []string

	// BaselineRef, if non-empty, enables baseline mode (SPEC_FULL.md §5).
	BaselineRef string

	Progress ProgressManager
}

// DefaultOptions returns Options with the default (non-strict,
// non-relaxed) god-object multiplier.
func DefaultOptions() Options {
	return Options{GodObjectMultiplier: 1.0, Progress: &NoOpProgressManager{}}
}

// NoOpProgressManager implements ProgressManager with no-op methods, used
// whenever output is non-interactive or progress display is disabled.
type NoOpProgressManager struct{}

func (pm *NoOpProgressManager) StartTask(_ string, _ int) TaskProgress { return &noOpTaskProgress{} }
func (pm *NoOpProgressManager) IsInteractive() bool                   { return false }
func (pm *NoOpProgressManager) Close()                                {}

type noOpTaskProgress struct{}

func (tp *noOpTaskProgress) Increment(_ int)          {}
func (tp *noOpTaskProgress) Describe(_ string)        {}
func (tp *noOpTaskProgress) Complete()                {}
