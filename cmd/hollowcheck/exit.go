package main

// ExitError carries the pass(0)/fail(1)/error(2) exit code spec.md §6
// assigns to a finished run, distinct from apperr.Error which always maps
// to 2. Analyze itself never returns one of these; only the CLI layer,
// once it has a Report and a verdict, does.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}
