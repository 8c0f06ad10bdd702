// Package service implements hollowcheck's bounded-concurrency fan-out:
// parsing every walked file concurrently through the Language Registry
// and collecting the resulting ParsedFiles into a single ordered slice
// for the Fact Store to consume.
package service

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hollowcheck/hollowcheck/domain"
)

// TaskError represents a single file's parse failure.
type TaskError struct {
	File string
	Err  error
}

func (e TaskError) Error() string {
	return fmt.Sprintf("[%s] %v", e.File, e.Err)
}

func (e TaskError) Unwrap() error {
	return e.Err
}

// AggregatedError collects every file-level parse failure from a run.
// Per spec.md §7, a single unreadable file is an InternalError-worthy
// condition only in aggregate; here it's surfaced to the caller, which
// decides whether to treat it as fatal or to log and continue.
type AggregatedError struct {
	Errors []TaskError
}

func (e *AggregatedError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d files failed to read:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

func (e *AggregatedError) Unwrap() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors[0].Err
}

// ReadFileFunc reads a file's contents given its absolute path.
type ReadFileFunc func(absPath string) ([]byte, error)

// ParallelParser parses every file a Walker yields across a bounded
// goroutine pool, dispatching each file to the registry's analyzer for
// its extension. Files with no registered analyzer are silently skipped
// (spec.md §4.1): hollowcheck only scans languages it understands.
type ParallelParser struct {
	maxConcurrency int
	progress       domain.ProgressManager
}

// NewParallelParser builds a parser bounded at runtime.NumCPU() goroutines.
func NewParallelParser(progress domain.ProgressManager) *ParallelParser {
	if progress == nil {
		progress = &domain.NoOpProgressManager{}
	}
	return &ParallelParser{maxConcurrency: runtime.NumCPU(), progress: progress}
}

// SetMaxConcurrency overrides the goroutine pool size; values <= 0 are ignored.
func (p *ParallelParser) SetMaxConcurrency(max int) {
	if max > 0 {
		p.maxConcurrency = max
	}
}

// Parse reads and analyzes every relative path under root, returning the
// ParsedFiles in the same order as relPaths (deterministic, independent
// of goroutine completion order, so the Fact Store's first-match scans
// stay reproducible across runs). Read/analyze failures for individual
// files are collected into an AggregatedError rather than aborting the
// whole run; callers treat them as parse_warning findings.
func (p *ParallelParser) Parse(ctx context.Context, root string, relPaths []string, registry domain.LanguageRegistry, readFile ReadFileFunc) ([]*domain.ParsedFile, error) {
	task := p.progress.StartTask("parsing files", len(relPaths))
	defer task.Complete()

	results := make([]*domain.ParsedFile, len(relPaths))
	var errMu sync.Mutex
	var taskErrors []TaskError

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxConcurrency)

	for i, rel := range relPaths {
		analyzer, ok := registry.AnalyzerFor(filepath.Ext(strings.ToLower(rel)))
		if !ok {
			task.Increment(1)
			continue
		}

		i, rel, analyzer := i, rel, analyzer
		g.Go(func() error {
			defer task.Increment(1)

			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}

			abs := filepath.Join(root, rel)
			source, err := readFile(abs)
			if err != nil {
				errMu.Lock()
				taskErrors = append(taskErrors, TaskError{File: rel, Err: err})
				errMu.Unlock()
				return nil
			}

			pf, err := analyzer.Analyze(rel, abs, source)
			if err != nil {
				errMu.Lock()
				taskErrors = append(taskErrors, TaskError{File: rel, Err: err})
				errMu.Unlock()
				return nil
			}
			results[i] = pf
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*domain.ParsedFile, 0, len(results))
	for _, pf := range results {
		if pf != nil {
			out = append(out, pf)
		}
	}

	if len(taskErrors) > 0 {
		return out, &AggregatedError{Errors: taskErrors}
	}
	return out, nil
}
