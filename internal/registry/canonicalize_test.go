package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hollowcheck/hollowcheck/internal/registry"
)

func TestCanonicalize_Python(t *testing.T) {
	assert.Equal(t, "requests", registry.Canonicalize("python", "requests.auth"))
}

func TestCanonicalize_JavaScriptPlain(t *testing.T) {
	assert.Equal(t, "lodash", registry.Canonicalize("javascript", "lodash/fp"))
}

func TestCanonicalize_JavaScriptScoped(t *testing.T) {
	assert.Equal(t, "@scope/pkg", registry.Canonicalize("javascript", "@scope/pkg"))
}

func TestCanonicalize_Go(t *testing.T) {
	assert.Equal(t, "github.com/foo/bar", registry.Canonicalize("go", "github.com/foo/bar/baz/qux"))
}

func TestCanonicalize_Rust(t *testing.T) {
	assert.Equal(t, "serde", registry.Canonicalize("rust", "serde::Deserialize"))
}

func TestCanonicalize_UnknownLanguagePassesThrough(t *testing.T) {
	assert.Equal(t, "some.thing", registry.Canonicalize("cobol", "some.thing"))
}
