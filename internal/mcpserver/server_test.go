package mcpserver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/mcpserver"
)

type fakeAnalyzer struct {
	report *domain.Report
	err    error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ string, _ *domain.Contract, _ domain.Options) (*domain.Report, error) {
	return f.report, f.err
}

func TestNew_BuildsServer(t *testing.T) {
	s := mcpserver.New(&fakeAnalyzer{report: &domain.Report{}})
	require.NotNil(t, s)
}
