// Package registry is the Dependency Verifier (spec.md §4.5): a
// filtering pipeline (stdlib, allowlist, canonicalization) followed by
// cached, concurrent probes against PyPI, npm, crates.io, and the Go
// module proxy.
package registry

import "strings"

// pythonStdlib, jsStdlib, and rustStdlibRoots are the fixed, embedded
// known-stdlib sets spec.md §4.5 step 1 requires. They are not
// exhaustive dictionaries of every standard module — just enough of the
// common surface to keep everyday stdlib imports out of the network
// probe path.
var pythonStdlib = map[string]bool{
	"os": true, "sys": true, "json": true, "collections": true,
	"re": true, "io": true, "math": true, "time": true, "datetime": true,
	"itertools": true, "functools": true, "typing": true, "abc": true,
	"asyncio": true, "logging": true, "unittest": true, "pathlib": true,
	"subprocess": true, "threading": true, "multiprocessing": true,
	"socket": true, "http": true, "urllib": true, "email": true,
	"sqlite3": true, "csv": true, "argparse": true, "enum": true,
	"dataclasses": true, "contextlib": true, "copy": true, "string": true,
	"struct": true, "hashlib": true, "random": true, "traceback": true,
	"warnings": true, "weakref": true, "pickle": true, "shutil": true,
	"tempfile": true, "glob": true, "inspect": true, "importlib": true,
	"dis": true, "ast": true, "queue": true, "heapq": true, "bisect": true,
	"decimal": true, "fractions": true, "statistics": true, "array": true,
	"base64": true, "uuid": true, "platform": true, "getpass": true,
	"signal": true, "selectors": true, "ssl": true, "xml": true,
	"html": true, "configparser": true, "textwrap": true, "gzip": true,
	"zipfile": true, "tarfile": true, "venv": true, "site": true,
	"__future__": true, "builtins": true, "operator": true,
}

var jsStdlib = map[string]bool{
	"fs": true, "path": true, "http": true, "https": true, "net": true,
	"os": true, "util": true, "events": true, "stream": true,
	"crypto": true, "url": true, "querystring": true, "child_process": true,
	"cluster": true, "assert": true, "buffer": true, "zlib": true,
	"readline": true, "repl": true, "vm": true, "worker_threads": true,
	"timers": true, "dns": true, "tls": true, "dgram": true,
	"process": true, "console": true, "module": true, "string_decoder": true,
	"perf_hooks": true, "async_hooks": true,
}

var rustStdlibRoots = map[string]bool{
	"std": true, "core": true, "alloc": true, "proc_macro": true,
	"test": true,
	// crate, self, and super are self-reference roots, not registry
	// names: `use crate::module;`/`use self::x;`/`use super::y;` always
	// resolve within the current project and are unresolvable against
	// crates.io regardless of what the project's actual crate is named.
	"crate": true, "self": true, "super": true,
}

// IsStdlib reports whether importPath is a known-stdlib module for the
// given language, per spec.md §4.5 step 1. currentCrate is the crate's
// own name (Rust); importing your own crate is never "hallucinated".
// The crate/self/super self-reference roots are recognized unconditionally
// via rustStdlibRoots, independent of currentCrate.
func IsStdlib(language, importPath, currentCrate string) bool {
	switch language {
	case "python":
		return prefixMatch(pythonStdlib, dottedRoot(importPath))
	case "javascript", "typescript":
		p := strings.TrimPrefix(importPath, "node:")
		return strings.HasPrefix(importPath, "node:") || prefixMatch(jsStdlib, slashRoot(p))
	case "go":
		return !strings.Contains(firstSegment(importPath), ".")
	case "rust":
		root := doubleColonRoot(importPath)
		if currentCrate != "" && root == currentCrate {
			return true
		}
		return rustStdlibRoots[root]
	}
	return false
}

func prefixMatch(set map[string]bool, root string) bool {
	return set[root]
}

func dottedRoot(path string) string {
	if i := strings.Index(path, "."); i >= 0 {
		return path[:i]
	}
	return path
}

func slashRoot(path string) string {
	if strings.HasPrefix(path, "@") {
		return path // scoped packages are never stdlib
	}
	if i := strings.Index(path, "/"); i >= 0 {
		return path[:i]
	}
	return path
}

func firstSegment(path string) string {
	if i := strings.Index(path, "/"); i >= 0 {
		return path[:i]
	}
	return path
}

func doubleColonRoot(path string) string {
	if i := strings.Index(path, "::"); i >= 0 {
		return path[:i]
	}
	return path
}
