// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Recursive directory copy

package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// CopyDir copies the regular files under src into dst, creating directories
// as needed. Symlinks and special files are skipped. It returns the number of
// files copied.
func CopyDir(fs afero.Fs, src, dst string) (int, error) {
	copied := 0

	err := afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}
		target := filepath.Join(dst, rel)

		switch {
		case info.IsDir():
			if err := fs.MkdirAll(target, info.Mode().Perm()|0700); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
		case info.Mode().IsRegular():
			if err := copyFile(fs, path, target, info.Mode().Perm()); err != nil {
				return fmt.Errorf("failed to copy %s: %w", rel, err)
			}
			copied++
		}
		return nil
	})

	return copied, err
}

// copyFile copies a single file preserving permissions
func copyFile(fs afero.Fs, src, dst string, mode os.FileMode) error {
	if err := fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
