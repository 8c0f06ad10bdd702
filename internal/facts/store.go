// Package facts implements the Fact Store (spec.md §4.3): a frozen,
// read-only index over every ParsedFile produced by the Syntax Analyzer
// layer, queried concurrently by the Rule Evaluator's detectors.
package facts

import "github.com/hollowcheck/hollowcheck/domain"

// Store holds the full set of ParsedFiles keyed by relative path.
// Construction (NewStore) is the only mutation point; every other method
// is a read-only query, safe for concurrent use without locking.
type Store struct {
	files   map[string]*domain.ParsedFile
	ordered []*domain.ParsedFile // file order as constructed, for deterministic first-match scans
}

// NewStore builds a Store from a complete set of ParsedFiles. files is
// move-owned: callers must not mutate its contents afterward.
func NewStore(files []*domain.ParsedFile) *Store {
	s := &Store{
		files:   make(map[string]*domain.ParsedFile, len(files)),
		ordered: files,
	}
	for _, f := range files {
		s.files[f.RelPath] = f
	}
	return s
}

// File returns the ParsedFile at relPath, if scanned.
func (s *Store) File(relPath string) (*domain.ParsedFile, bool) {
	f, ok := s.files[relPath]
	return f, ok
}

// Files returns every scanned file in construction order.
func (s *Store) Files() []*domain.ParsedFile {
	return s.ordered
}

// HasFile reports whether relPath was scanned.
func (s *Store) HasFile(relPath string) bool {
	_, ok := s.files[relPath]
	return ok
}

// FindDeclaration searches for the first declaration named name of kind
// kind, optionally restricted to file. file == "" scans every file in
// construction order and returns the first match (spec.md §4.4(d)).
func (s *Store) FindDeclaration(name string, kind domain.SymbolKind, file string) (*domain.Declaration, string, bool) {
	if file != "" {
		f, ok := s.files[file]
		if !ok {
			return nil, "", false
		}
		if d := findIn(f, name, kind); d != nil {
			return d, file, true
		}
		return nil, "", false
	}
	for _, f := range s.ordered {
		if d := findIn(f, name, kind); d != nil {
			return d, f.RelPath, true
		}
	}
	return nil, "", false
}

func findIn(f *domain.ParsedFile, name string, kind domain.SymbolKind) *domain.Declaration {
	for i := range f.Declarations {
		d := &f.Declarations[i]
		if d.Name == name && d.Kind.MatchesSymbolKind(kind) {
			return d
		}
	}
	return nil
}

// FindTest searches for a declared function/method named name, treating
// any callable declaration in a test file (or the given file, if
// non-empty) as a candidate (spec.md §4.4(j)).
func (s *Store) FindTest(name, file string, isTestFile func(string) bool) bool {
	for _, f := range s.ordered {
		if file != "" && f.RelPath != file {
			continue
		}
		if file == "" && !isTestFile(f.RelPath) {
			continue
		}
		for _, d := range f.Declarations {
			if d.Kind.IsCallable() && d.Name == name {
				return true
			}
		}
	}
	return false
}

// AllDeclarations iterates every declaration across every file, calling
// visit with its owning file.
func (s *Store) AllDeclarations(visit func(file *domain.ParsedFile, decl *domain.Declaration)) {
	for _, f := range s.ordered {
		for i := range f.Declarations {
			visit(f, &f.Declarations[i])
		}
	}
}

// AllTodos iterates every TODO across every file.
func (s *Store) AllTodos(visit func(file *domain.ParsedFile, todo *domain.Todo)) {
	for _, f := range s.ordered {
		for i := range f.Todos {
			visit(f, &f.Todos[i])
		}
	}
}
