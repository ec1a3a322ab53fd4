// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package organize

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// freeDestination returns a path inside dir for name that does not exist yet,
// appending _1, _2, ... to the stem on collision ("b.jpg" -> "b_1.jpg").
// The check is not atomic: another process may claim the name before the move.
func freeDestination(dir, name string) (string, error) {
	dest := filepath.Join(dir, name)
	stem, suffix := splitName(name)
	for n := 1; ; n++ {
		exists, err := pathExists(dest)
		if err != nil {
			return "", err
		}
		if !exists {
			return dest, nil
		}
		dest = filepath.Join(dir, stem+"_"+strconv.Itoa(n)+suffix)
	}
}

// splitName splits name into stem and final suffix. Leading-dot names such
// as ".profile" have no suffix.
func splitName(name string) (stem, suffix string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}

func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}

// movePath renames src to dst, falling back to copy and delete when the two
// paths are on different filesystems.
func movePath(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// copyFile copies contents, permission bits, and modification time.
// A partially written dst is removed on failure.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			out.Close()
			os.Remove(dst)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err = out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
