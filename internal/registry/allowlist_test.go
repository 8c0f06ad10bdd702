package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hollowcheck/hollowcheck/internal/registry"
)

func TestAllowlist_EmptyNeverMatches(t *testing.T) {
	a := registry.NewAllowlist(nil)
	assert.False(t, a.Matches("github.com/foo/bar"))
}

func TestAllowlist_MatchesGlobPattern(t *testing.T) {
	a := registry.NewAllowlist([]string{"github.com/internal-org/**"})
	assert.True(t, a.Matches("github.com/internal-org/widgets"))
	assert.False(t, a.Matches("github.com/other/widgets"))
}
