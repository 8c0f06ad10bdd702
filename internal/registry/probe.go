package registry

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/hollowcheck/hollowcheck/domain"
)

// httpProbe is the shared shape every registry probe (spec.md §4.5)
// implements: build a URL, GET it, map the status code to a
// PackageStatus. The four registries differ only in URL shape, so one
// struct parameterized by a urlFor function covers all of them rather
// than four near-duplicate HTTP clients.
type httpProbe struct {
	client *http.Client
	urlFor func(name string) string
}

func (p *httpProbe) Check(ctx context.Context, canonicalName string) (domain.PackageStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.urlFor(canonicalName), nil)
	if err != nil {
		return domain.PackageUnknown, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return domain.PackageUnknown, nil // network failure: spec.md §7 NetworkError, recovered as "unknown"
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return domain.PackageExists, nil
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusGone:
		return domain.PackageNotFound, nil
	default:
		return domain.PackageUnknown, nil
	}
}

// NewPyPIProbe implements spec.md §4.5's PyPI protocol.
func NewPyPIProbe(client *http.Client) domain.RegistryProbe {
	return &httpProbe{client: client, urlFor: func(name string) string {
		return "https://pypi.org/pypi/" + url.PathEscape(name) + "/json"
	}}
}

// NewNpmProbe implements spec.md §4.5's npm protocol, URL-encoding
// scoped package names.
func NewNpmProbe(client *http.Client) domain.RegistryProbe {
	return &httpProbe{client: client, urlFor: func(name string) string {
		if strings.HasPrefix(name, "@") {
			parts := strings.SplitN(name, "/", 2)
			if len(parts) == 2 {
				return "https://registry.npmjs.org/" + url.PathEscape(parts[0]) + "%2F" + url.PathEscape(parts[1])
			}
		}
		return "https://registry.npmjs.org/" + url.PathEscape(name)
	}}
}

// NewCratesProbe implements spec.md §4.5's crates.io protocol.
func NewCratesProbe(client *http.Client) domain.RegistryProbe {
	return &httpProbe{client: client, urlFor: func(name string) string {
		return "https://crates.io/api/v1/crates/" + url.PathEscape(name)
	}}
}

// NewGoProxyProbe implements spec.md §4.5's Go module proxy protocol.
func NewGoProxyProbe(client *http.Client) domain.RegistryProbe {
	return &httpProbe{client: client, urlFor: func(name string) string {
		return "https://proxy.golang.org/" + escapeGoModulePath(name) + "/@v/list"
	}}
}

// escapeGoModulePath applies the Go module proxy's "!" case-encoding for
// uppercase letters in module paths.
func escapeGoModulePath(path string) string {
	var b strings.Builder
	for _, r := range path {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('!')
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
