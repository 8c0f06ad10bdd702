package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/internal/rules"
)

func TestEvaluate_SortsFindingsByFileThenLineThenRule(t *testing.T) {
	store := facts.NewStore([]*domain.ParsedFile{
		{
			RelPath: "b.go",
			Declarations: []domain.Declaration{
				{Name: "Foo", Kind: domain.DeclFunction, IsStub: true, Stub: domain.StubEmpty, StartLine: 10},
			},
		},
		{
			RelPath: "a.go",
			Declarations: []domain.Declaration{
				{Name: "Bar", Kind: domain.DeclFunction, IsStub: true, Stub: domain.StubPanicOnly, StartLine: 3},
			},
		},
	})
	contract := &domain.Contract{}
	findings := rules.Evaluate(store, contract, domain.DefaultOptions())
	require.NotEmpty(t, findings)
	assert.Equal(t, "a.go", findings[0].File)
}

func TestDetectStubFunction_SkipsInterfaceMembers(t *testing.T) {
	store := facts.NewStore([]*domain.ParsedFile{
		{
			RelPath: "iface.go",
			Declarations: []domain.Declaration{
				{Name: "DoThing", Kind: domain.DeclMethod, IsStub: true, Stub: domain.StubEmpty, IsInterfaceMember: true, StartLine: 5},
			},
		},
	})
	out := rules.DetectStubFunction(store, &domain.Contract{}, domain.DefaultOptions())
	assert.Empty(t, out)
}

func TestDetectStubFunction_FlagsNonInterfaceStub(t *testing.T) {
	store := facts.NewStore([]*domain.ParsedFile{
		{
			RelPath: "impl.go",
			Declarations: []domain.Declaration{
				{Name: "doThing", Kind: domain.DeclFunction, IsStub: true, Stub: domain.StubTodoOnly, StartLine: 5},
			},
		},
	})
	out := rules.DetectStubFunction(store, &domain.Contract{}, domain.DefaultOptions())
	require.Len(t, out, 1)
	assert.Equal(t, domain.RuleStubFunction, out[0].Rule)
	assert.Contains(t, out[0].Message, "do Thing")
}

func TestDetectHollowTodo_RespectsContractToggle(t *testing.T) {
	store := facts.NewStore([]*domain.ParsedFile{
		{RelPath: "a.go", Todos: []domain.Todo{{Text: "", Line: 1, IsHollow: true}}},
	})

	disabled := &domain.Contract{HollowTodos: &domain.HollowTodosConfig{Enabled: boolPtr(false)}}
	assert.Empty(t, rules.DetectHollowTodo(store, disabled, domain.DefaultOptions()))

	enabled := &domain.Contract{}
	out := rules.DetectHollowTodo(store, enabled, domain.DefaultOptions())
	require.Len(t, out, 1)
	assert.Equal(t, domain.RuleHollowTodo, out[0].Rule)
}

func TestDetectHollowTodo_IgnoresNonHollowTodos(t *testing.T) {
	store := facts.NewStore([]*domain.ParsedFile{
		{RelPath: "a.go", Todos: []domain.Todo{{Text: "implement retry with backoff", Line: 1, IsHollow: false}}},
	})
	out := rules.DetectHollowTodo(store, &domain.Contract{}, domain.DefaultOptions())
	assert.Empty(t, out)
}

func boolPtr(b bool) *bool { return &b }
