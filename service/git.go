package service

import (
	"fmt"
	"path"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const defaultRevision = "HEAD"

// GitSource reads a transcript committed to a git repository.
type GitSource struct {
	RepoPath string
	Revision string // defaults to HEAD
	Path     string // slash separated, relative to the repository root
}

func (s GitSource) Name() string {
	return fmt.Sprintf("%s@%s:%s", s.RepoPath, s.revision(), s.Path)
}

func (s GitSource) Lines() ([]string, error) {
	repo, err := git.PlainOpen(s.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repo: %w", err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(s.revision()))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %s: %w", s.revision(), err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit %s: %w", hash, err)
	}

	file, err := commit.File(path.Clean(s.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to find %s at %s: %w", s.Path, s.revision(), err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	return splitLines(contents), nil
}

func (s GitSource) revision() string {
	if s.Revision == "" {
		return defaultRevision
	}
	return s.Revision
}
