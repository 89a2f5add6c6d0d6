package scaffold

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
)

// Fetcher retrieves a template source into a local destination path.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// GitFetcher clones a remote template repository with go-git.
type GitFetcher struct{}

// Fetch performs a shallow clone of url into dest.
func (GitFetcher) Fetch(ctx context.Context, url, dest string) error {
	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	return err
}

// MaterializeFS writes the subtree of fsys rooted at root into dest.
// Used to lay down embedded template trees in the cache so every template
// source resolves to a plain directory on disk.
func MaterializeFS(fsys fs.FS, root, dest string) error {
	return fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return os.MkdirAll(dest, 0o755)
		}

		target := filepath.Join(dest, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, content, 0o644)
	})
}
