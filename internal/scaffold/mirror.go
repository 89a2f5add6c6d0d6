// Package scaffold implements the template instantiation engine: recursive
// directory mirroring, token-substituting rendering, template source
// resolution, and the orchestration that ties them together.
package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/movekit/cli/internal/output"
)

// MirrorOptions customizes a Mirror pass.
type MirrorOptions struct {
	// TransformPath rewrites a computed destination path before the
	// create/copy step. Nil means identity.
	TransformPath func(dest string) string

	// CopyFile writes the file at src to dst. Nil means a verbatim byte
	// copy preserving the source mode.
	CopyFile func(src, dst string) error
}

// Mirror walks sourceRoot depth-first (the root itself excluded) and
// recreates each entry under destRoot at the rebased relative path.
// Entries whose destination already exists are skipped entirely, so a
// mirror pass is idempotent and additive over partially populated targets.
// The first filesystem error aborts the walk; entries already written
// remain in place.
func Mirror(sourceRoot, destRoot string, opts MirrorOptions) error {
	transform := opts.TransformPath
	if transform == nil {
		transform = func(dest string) string { return dest }
	}
	copyFile := opts.CopyFile
	if copyFile == nil {
		copyFile = copyFileBytes
	}

	return filepath.WalkDir(sourceRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == sourceRoot {
			return nil
		}

		rel, err := filepath.Rel(sourceRoot, path)
		if err != nil {
			return err
		}

		dest := transform(filepath.Join(destRoot, rel))

		if _, err := os.Lstat(dest); err == nil {
			// Existing destinations are never overwritten. An existing
			// directory is still descended so missing children get merged.
			output.Debug("destination exists, skipping", "path", dest)
			return nil
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking %s: %w", dest, err)
		}

		if d.IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", dest, err)
			}
			return nil
		}

		if err := copyFile(path, dest); err != nil {
			return fmt.Errorf("copying %s to %s: %w", path, dest, err)
		}
		return nil
	})
}

// copyFileBytes copies src to dst verbatim, preserving the source mode.
func copyFileBytes(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
