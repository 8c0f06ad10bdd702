// Package baseline implements the baseline-mode extension (SPEC_FULL.md
// §5): diffing the working tree against a ref to compute the set of
// files a --baseline run should isolate new violations within.
package baseline

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/hollowcheck/hollowcheck/internal/apperr"
)

// ChangedFiles opens the git repository at root and returns the set of
// relative paths that differ between ref and the working tree's current
// HEAD commit.
func ChangedFiles(root, ref string) (map[string]bool, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, apperr.Input("not a git repository: %s", root)
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, apperr.Internal(err, "failed to resolve HEAD")
	}
	headCommit, err := repo.CommitObject(headRef.Hash())
	if err != nil {
		return nil, apperr.Internal(err, "failed to load HEAD commit")
	}

	baseHash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, apperr.Input("failed to resolve baseline ref %q: %v", ref, err)
	}
	baseCommit, err := repo.CommitObject(*baseHash)
	if err != nil {
		return nil, apperr.Internal(err, "failed to load baseline commit")
	}

	patch, err := diffCommits(baseCommit, headCommit)
	if err != nil {
		return nil, apperr.Internal(err, "failed to diff %s against HEAD", ref)
	}

	changed := map[string]bool{}
	for _, fp := range patch.FilePatches() {
		from, to := fp.Files()
		if to != nil {
			changed[to.Path()] = true
		} else if from != nil {
			changed[from.Path()] = true
		}
	}
	return changed, nil
}

func diffCommits(base, head *object.Commit) (*object.Patch, error) {
	baseTree, err := base.Tree()
	if err != nil {
		return nil, fmt.Errorf("baseline tree: %w", err)
	}
	headTree, err := head.Tree()
	if err != nil {
		return nil, fmt.Errorf("head tree: %w", err)
	}
	patch, err := baseTree.Patch(headTree)
	if err != nil {
		return nil, fmt.Errorf("computing patch: %w", err)
	}
	return patch, nil
}
