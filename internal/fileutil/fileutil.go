// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Permissions for generated files and directories.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: published files are world-readable
)

// Sentinel errors for file utility operations.
var (
	ErrSourceNotFound = errors.New("source directory does not exist")
	ErrNotDirectory   = errors.New("not a directory")
	ErrUnsafeTarget   = errors.New("refusing to replace directory")
)

// CopyDir replaces dst with a recursive copy of src.
// dst is removed first so files deleted from src do not linger.
// onCopy, if non-nil, is called with the destination path of each copied file.
func CopyDir(src, dst string, onCopy func(path string)) error {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	if err := checkTarget(src, dst); err != nil {
		return err
	}

	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("removing %s: %w", dst, err)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, DirPermissions)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if err := copyFile(path, target); err != nil {
			return err
		}
		if onCopy != nil {
			onCopy(target)
		}
		return nil
	})
}

// checkTarget rejects destinations whose removal would delete the source
// or the working directory, and destinations nested in the source.
func checkTarget(src, dst string) error {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	if absDst == cwd || absDst == filepath.Dir(absDst) {
		return fmt.Errorf("%w: %s", ErrUnsafeTarget, dst)
	}
	sep := string(filepath.Separator)
	if absDst == absSrc || strings.HasPrefix(absSrc, absDst+sep) {
		return fmt.Errorf("%w: %s contains %s", ErrUnsafeTarget, dst, src)
	}
	if strings.HasPrefix(absDst, absSrc+sep) {
		return fmt.Errorf("%w: %s is inside %s", ErrUnsafeTarget, dst, src)
	}
	return nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src) // #nosec G304 -- path comes from walking the static directory
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, FilePermissions) // #nosec G302 G304
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", dst, closeErr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return nil
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	// #nosec G306 -- generated pages are meant to be readable
	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "page" -> false (name)
//   - "./layout.html" -> true (relative path)
//   - "/srv/site/mdsite.yaml" -> true (absolute)
//   - "C:\site\layout.html" -> true (Windows)
//   - "blog-post" -> false (hyphenated name)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
