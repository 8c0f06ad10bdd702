// Package app implements Analyze(root, contract, options) -> Report
// (spec.md §6): the single entry point that wires the File Walker,
// Syntax Analyzer, Fact Store, Rule Evaluator, Dependency Verifier,
// Suppression Engine, and Scoring Pipeline together. Everything here is
// orchestration; no detection logic lives in this package.
package app

import (
	"context"
	"os"
	"sync"

	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/apperr"
	"github.com/hollowcheck/hollowcheck/internal/baseline"
	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/internal/registry"
	"github.com/hollowcheck/hollowcheck/internal/rules"
	"github.com/hollowcheck/hollowcheck/internal/score"
	"github.com/hollowcheck/hollowcheck/internal/suppress"
	"github.com/hollowcheck/hollowcheck/internal/syntax"
	"github.com/hollowcheck/hollowcheck/internal/version"
	"github.com/hollowcheck/hollowcheck/internal/walk"
	"github.com/hollowcheck/hollowcheck/service"
)

// AnalyzeUseCase holds the concrete external collaborators Analyze needs.
// Every field has a production default via NewAnalyzeUseCase; tests swap
// in fakes by constructing the struct directly.
type AnalyzeUseCase struct {
	Walker   domain.FileWalker
	Registry domain.LanguageRegistry
	Parser   *service.ParallelParser
	CacheDir string
	Progress domain.ProgressManager
}

// NewAnalyzeUseCase builds the use case with production collaborators:
// internal/walk's Walker, internal/syntax's language Registry, and a
// service.ParallelParser bounded at runtime.NumCPU().
func NewAnalyzeUseCase(cacheDir string, progress domain.ProgressManager) *AnalyzeUseCase {
	if progress == nil {
		progress = &domain.NoOpProgressManager{}
	}
	return &AnalyzeUseCase{
		Walker:   walk.New(),
		Registry: syntax.NewRegistry(),
		Parser:   service.NewParallelParser(progress),
		CacheDir: cacheDir,
		Progress: progress,
	}
}

// Analyze runs the full pipeline spec.md §6 describes and returns the
// resulting Report. The root is scanned fresh on every call; callers
// that need baseline slicing should use AnalyzeWithBaseline instead.
func (u *AnalyzeUseCase) Analyze(ctx context.Context, root string, contract *domain.Contract, opts domain.Options) (*domain.Report, error) {
	relPaths, err := u.Walker.Walk(ctx, root, contract, opts.Include, opts.Exclude)
	if err != nil {
		return nil, apperr.Input("failed to walk %s: %v", root, err)
	}

	parsedFiles, parseErr := u.Parser.Parse(ctx, root, relPaths, u.Registry, os.ReadFile)
	store := facts.NewStore(parsedFiles)

	var findings []domain.Finding
	findings = append(findings, parseWarnings(parseErr)...)

	var ruleFindings, depFindings []domain.Finding
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ruleFindings = rules.Evaluate(store, contract, opts)
	}()
	if !opts.SkipRegistryCheck {
		wg.Add(1)
		go func() {
			defer wg.Done()
			verifier := registry.NewVerifier(contract.DependencyVerify, u.CacheDir, u.Progress)
			depFindings = verifier.Verify(ctx, store)
		}()
	}
	wg.Wait()

	findings = append(findings, ruleFindings...)
	findings = append(findings, depFindings...)

	var suppressions []domain.Suppression
	for _, f := range parsedFiles {
		suppressions = append(suppressions, suppress.Scan(f.RelPath, f.Source)...)
	}
	findings = suppress.Apply(findings, suppressions, opts.ShowSuppressed)

	threshold := contract.ResolvedThreshold()
	if opts.ThresholdOverride != nil {
		threshold = *opts.ThresholdOverride
	}

	report := score.Calculate(findings, threshold)
	report.Version = version.GetVersion()
	report.Summary.FilesScanned = len(parsedFiles)
	return &report, nil
}

// AnalyzeWithBaseline runs Analyze and then partitions the resulting
// Violations into the subset touching files changed since opts.BaselineRef
// (SPEC_FULL.md §5), and decides Passed from that subset alone, so a CI
// gate can fail only on regressions introduced by the current change
// rather than the repo's full accumulated debt.
func (u *AnalyzeUseCase) AnalyzeWithBaseline(ctx context.Context, root string, contract *domain.Contract, opts domain.Options) (*domain.Report, error) {
	report, err := u.Analyze(ctx, root, contract, opts)
	if err != nil {
		return nil, err
	}

	changed, err := baseline.ChangedFiles(root, opts.BaselineRef)
	if err != nil {
		return nil, err
	}

	report.NewViolations = score.CalculateForNewViolations(report.Violations, changed)
	report.Passed = score.Calculate(report.NewViolations, report.Threshold).Passed
	ref := opts.BaselineRef
	report.BaselineRef = &ref
	return report, nil
}

// parseWarnings converts file read/analyze failures collected by the
// parallel parser into informational findings (spec.md §7 ParseError):
// they never abort the run, but a caller inspecting the report can still
// see which files couldn't be scanned.
func parseWarnings(err error) []domain.Finding {
	if err == nil {
		return nil
	}
	aggErr, ok := err.(*service.AggregatedError)
	if !ok {
		return nil
	}
	out := make([]domain.Finding, 0, len(aggErr.Errors))
	for _, te := range aggErr.Errors {
		out = append(out, domain.Finding{
			Rule:     domain.RuleParseWarning,
			Severity: domain.SeverityInfo,
			Points:   domain.Points[domain.RuleParseWarning],
			File:     te.File,
			Message:  "file could not be read or parsed: " + te.Err.Error(),
		})
	}
	return out
}
