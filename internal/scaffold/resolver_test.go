package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mkerrors "github.com/movekit/cli/internal/errors"
)

// countingFetcher records fetches and writes a marker file.
type countingFetcher struct {
	calls int
	fail  bool
}

func (f *countingFetcher) Fetch(_ context.Context, _, dest string) error {
	f.calls++
	if f.fail {
		// Leave a partial destination behind, like an interrupted clone.
		_ = os.MkdirAll(dest, 0o755)
		_ = os.WriteFile(filepath.Join(dest, "partial"), []byte("x"), 0o644)
		return errors.New("clone failed")
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dest, "fetched.txt"), []byte("ok"), 0o644)
}

var embeddedFixture = fstest.MapFS{
	"tpl/Move.toml":    {Data: []byte("[package]\n")},
	"tpl/sources/a.mv": {Data: []byte("a")},
}

func TestResolve_MaterializesEmbedded(t *testing.T) {
	r := &Resolver{CacheDir: t.TempDir()}

	root, err := r.Resolve(context.Background(), Source{ID: "default", FS: embeddedFixture, Root: "tpl"})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "Move.toml"))
	assert.FileExists(t, filepath.Join(root, "sources", "a.mv"))
}

func TestResolve_FetchOnce(t *testing.T) {
	fetcher := &countingFetcher{}
	r := &Resolver{CacheDir: t.TempDir(), Fetcher: fetcher}
	src := Source{ID: "coin", URL: "https://example.com/coin.git"}

	first, err := r.Resolve(context.Background(), src)
	require.NoError(t, err)

	second, err := r.Resolve(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fetcher.calls)
}

func TestResolve_LocalDirectoryURLBypassesCache(t *testing.T) {
	local := t.TempDir()
	fetcher := &countingFetcher{}
	r := &Resolver{CacheDir: t.TempDir(), Fetcher: fetcher}

	root, err := r.Resolve(context.Background(), Source{ID: "coin", URL: local})
	require.NoError(t, err)

	assert.Equal(t, local, root)
	assert.Zero(t, fetcher.calls)
}

func TestResolve_FetchFailureCleansUp(t *testing.T) {
	cacheDir := t.TempDir()
	fetcher := &countingFetcher{fail: true}
	r := &Resolver{CacheDir: cacheDir, Fetcher: fetcher}

	_, err := r.Resolve(context.Background(), Source{ID: "coin", URL: "https://example.com/coin.git"})
	require.Error(t, err)
	assert.ErrorIs(t, err, mkerrors.ErrFetch)

	entries, readErr := os.ReadDir(filepath.Join(cacheDir, "templates"))
	if readErr == nil {
		assert.Empty(t, entries)
	}
}

func TestResolve_RefreshRefetches(t *testing.T) {
	fetcher := &countingFetcher{}
	src := Source{ID: "coin", URL: "https://example.com/coin.git"}
	cacheDir := t.TempDir()

	r := &Resolver{CacheDir: cacheDir, Fetcher: fetcher}
	_, err := r.Resolve(context.Background(), src)
	require.NoError(t, err)

	r = &Resolver{CacheDir: cacheDir, Fetcher: fetcher, Refresh: true}
	_, err = r.Resolve(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 2, fetcher.calls)
}

func TestResolve_ChangedURLChangesCacheKey(t *testing.T) {
	fetcher := &countingFetcher{}
	r := &Resolver{CacheDir: t.TempDir(), Fetcher: fetcher}

	first, err := r.Resolve(context.Background(), Source{ID: "coin", URL: "https://example.com/a.git"})
	require.NoError(t, err)

	second, err := r.Resolve(context.Background(), Source{ID: "coin", URL: "https://example.com/b.git"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, fetcher.calls)
}
