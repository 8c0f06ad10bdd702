package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/domain"
)

type stubAnalyzer struct {
	ext string
	err error
}

func (a *stubAnalyzer) LanguageID() string   { return "stub" }
func (a *stubAnalyzer) Extensions() []string { return []string{a.ext} }
func (a *stubAnalyzer) Analyze(relPath, absPath string, source []byte) (*domain.ParsedFile, error) {
	if a.err != nil {
		return nil, a.err
	}
	return &domain.ParsedFile{RelPath: relPath, AbsPath: absPath, Source: source, Language: "stub"}, nil
}

type stubRegistry struct {
	analyzers map[string]domain.LanguageAnalyzer
}

func newStubRegistry() *stubRegistry {
	return &stubRegistry{analyzers: map[string]domain.LanguageAnalyzer{
		".go": &stubAnalyzer{ext: ".go"},
		".py": &stubAnalyzer{ext: ".py"},
	}}
}

func (r *stubRegistry) AnalyzerFor(ext string) (domain.LanguageAnalyzer, bool) {
	a, ok := r.analyzers[ext]
	return a, ok
}

func (r *stubRegistry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.analyzers))
	for ext := range r.analyzers {
		exts = append(exts, ext)
	}
	return exts
}

func readOK(absPath string) ([]byte, error) { return []byte("source"), nil }

func TestParallelParser_ParsesEveryKnownExtension(t *testing.T) {
	p := NewParallelParser(nil)
	files, err := p.Parse(context.Background(), "/root", []string{"a.go", "b.py"}, newStubRegistry(), readOK)

	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestParallelParser_SkipsUnregisteredExtensions(t *testing.T) {
	p := NewParallelParser(nil)
	files, err := p.Parse(context.Background(), "/root", []string{"a.go", "a.unknownlang"}, newStubRegistry(), readOK)

	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestParallelParser_PreservesInputOrder(t *testing.T) {
	p := NewParallelParser(nil)
	rels := []string{"z.go", "a.go", "m.go"}
	files, err := p.Parse(context.Background(), "/root", rels, newStubRegistry(), readOK)

	require.NoError(t, err)
	require.Len(t, files, 3)
	for i, f := range files {
		assert.Equal(t, rels[i], f.RelPath)
	}
}

func TestParallelParser_ReadFailureCollectedNotFatal(t *testing.T) {
	p := NewParallelParser(nil)
	readErr := errors.New("permission denied")
	failing := func(absPath string) ([]byte, error) {
		if absPath == "/root/bad.go" {
			return nil, readErr
		}
		return []byte("source"), nil
	}

	files, err := p.Parse(context.Background(), "/root", []string{"good.go", "bad.go"}, newStubRegistry(), failing)

	require.Error(t, err)
	var aggErr *AggregatedError
	require.ErrorAs(t, err, &aggErr)
	require.Len(t, aggErr.Errors, 1)
	assert.Equal(t, "bad.go", aggErr.Errors[0].File)
	assert.Len(t, files, 1)
}

func TestParallelParser_AnalyzeFailureCollected(t *testing.T) {
	reg := &stubRegistry{analyzers: map[string]domain.LanguageAnalyzer{
		".go": &stubAnalyzer{ext: ".go", err: errors.New("malformed")},
	}}
	p := NewParallelParser(nil)

	files, err := p.Parse(context.Background(), "/root", []string{"a.go"}, reg, readOK)

	require.Error(t, err)
	assert.Empty(t, files)
}

func TestParallelParser_SetMaxConcurrency(t *testing.T) {
	p := NewParallelParser(nil)
	p.SetMaxConcurrency(3)
	assert.Equal(t, 3, p.maxConcurrency)

	p.SetMaxConcurrency(0) // invalid, ignored
	assert.Equal(t, 3, p.maxConcurrency)
}

func TestParallelParser_ProgressReportsEveryFile(t *testing.T) {
	var increments int
	pm := &recordingProgressManager{onIncrement: func(n int) { increments += n }}
	p := NewParallelParser(pm)

	_, err := p.Parse(context.Background(), "/root", []string{"a.go", "a.unknownlang", "b.py"}, newStubRegistry(), readOK)
	require.NoError(t, err)
	assert.Equal(t, 3, increments)
}

func TestAggregatedError_Error(t *testing.T) {
	tests := []struct {
		name     string
		errors   []TaskError
		contains string
	}{
		{name: "no errors", errors: nil, contains: "no errors"},
		{name: "single error", errors: []TaskError{{File: "a.go", Err: errors.New("failed")}}, contains: "[a.go] failed"},
		{name: "multiple errors", errors: []TaskError{
			{File: "a.go", Err: errors.New("failed1")},
			{File: "b.go", Err: errors.New("failed2")},
		}, contains: "2 files failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggErr := &AggregatedError{Errors: tt.errors}
			assert.Contains(t, aggErr.Error(), tt.contains)
		})
	}
}

func TestAggregatedError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	aggErr := &AggregatedError{Errors: []TaskError{{File: "a.go", Err: originalErr}}}
	assert.True(t, errors.Is(aggErr.Unwrap(), originalErr))
	assert.Nil(t, (&AggregatedError{}).Unwrap())
}

func TestTaskError(t *testing.T) {
	te := TaskError{File: "my/file.go", Err: errors.New("something went wrong")}
	assert.Equal(t, "[my/file.go] something went wrong", te.Error())
	assert.True(t, errors.Is(te, errors.New("something went wrong")) == false) // distinct instances
	assert.Equal(t, fmt.Sprintf("%v", te.Unwrap()), "something went wrong")
}

type recordingProgressManager struct {
	onIncrement func(n int)
}

func (m *recordingProgressManager) StartTask(_ string, _ int) domain.TaskProgress {
	return &recordingTaskProgress{onIncrement: m.onIncrement}
}
func (m *recordingProgressManager) IsInteractive() bool { return false }
func (m *recordingProgressManager) Close()              {}

type recordingTaskProgress struct {
	onIncrement func(n int)
}

func (t *recordingTaskProgress) Increment(n int) {
	if t.onIncrement != nil {
		t.onIncrement(n)
	}
}
func (t *recordingTaskProgress) Describe(_ string) {}
func (t *recordingTaskProgress) Complete()         {}
