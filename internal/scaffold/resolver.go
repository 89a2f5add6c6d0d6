package scaffold

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/movekit/cli/internal/errors"
	"github.com/movekit/cli/internal/output"
)

// Source identifies one template source: an embedded tree, or a remote
// repository when URL is set.
type Source struct {
	// ID is the template identity and cache-key stem.
	ID string

	// URL is an optional remote location (git URL or local directory).
	// When empty the embedded tree is used.
	URL string

	// FS holds the embedded template tree; Root is the subtree within it.
	FS   fs.FS
	Root string
}

// Resolver materializes template sources into a per-machine cache.
//
// The policy is fetch-once: a cache path that exists is returned as-is
// with no freshness check. Concurrent movekit processes racing on the same
// cache path are not guarded against.
type Resolver struct {
	// CacheDir is the root of the template cache.
	CacheDir string

	// Fetcher retrieves remote sources. Defaults to GitFetcher.
	Fetcher Fetcher

	// Refresh drops any cached copy before resolving.
	Refresh bool
}

// Resolve ensures the template source is present on local disk and returns
// its root directory. Local-directory URLs are returned directly without
// caching. A failed fetch removes its own partial destination and is fatal
// to the scaffold operation.
func (r *Resolver) Resolve(ctx context.Context, src Source) (string, error) {
	if src.URL != "" {
		if info, err := os.Stat(src.URL); err == nil && info.IsDir() {
			return src.URL, nil
		}
	}

	cachePath := filepath.Join(r.CacheDir, "templates", r.cacheKey(src))

	if r.Refresh {
		if err := os.RemoveAll(cachePath); err != nil {
			return "", fmt.Errorf("clearing cached template %s: %w", cachePath, err)
		}
	}

	if _, err := os.Stat(cachePath); err == nil {
		output.Debug("template already cached", "template", src.ID, "path", cachePath)
		return cachePath, nil
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return "", fmt.Errorf("creating template cache: %w", err)
	}

	if src.URL != "" {
		output.Debug("fetching template", "template", src.ID, "url", src.URL)
		fetcher := r.Fetcher
		if fetcher == nil {
			fetcher = GitFetcher{}
		}
		if err := fetcher.Fetch(ctx, src.URL, cachePath); err != nil {
			_ = os.RemoveAll(cachePath)
			return "", errors.NewFetchError(
				fmt.Sprintf("fetching template %q: %v", src.ID, err),
				map[string]string{"url": src.URL},
				"Check the template URL and your network connection.",
			)
		}
		return cachePath, nil
	}

	output.Debug("materializing embedded template", "template", src.ID, "path", cachePath)
	if err := MaterializeFS(src.FS, src.Root, cachePath); err != nil {
		_ = os.RemoveAll(cachePath)
		return "", fmt.Errorf("materializing template %q: %w", src.ID, err)
	}
	return cachePath, nil
}

// cacheKey derives the cache directory name for a source. Remote sources
// mix in a short URL digest so a changed URL re-fetches naturally.
func (r *Resolver) cacheKey(src Source) string {
	if src.URL == "" {
		return src.ID
	}
	sum := sha256.Sum256([]byte(src.URL))
	return src.ID + "-" + hex.EncodeToString(sum[:4])
}
