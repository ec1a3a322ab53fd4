// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package organize relocates files that do not match a keep pattern into an
// _other directory at the scan root.
package organize

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pdiddy/mdtidy/internal/console"
	"github.com/pdiddy/mdtidy/pkg/types"
)

// OtherDirName is the relocation directory created under the scan root.
const OtherDirName = "_other"

// Move records one relocation, with paths relative to the scan root.
type Move struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Summary holds the outcome of an organize run. In a dry run, Moves lists
// the relocations that would have happened.
type Summary struct {
	Root     string
	OtherDir string
	DryRun   bool
	Kept     []string
	Moves    []Move
}

// KeptCount returns the number of files left in place.
func (s Summary) KeptCount() int {
	return len(s.Kept)
}

// MovedCount returns the number of files moved (or that would be moved).
func (s Summary) MovedCount() int {
	return len(s.Moves)
}

// Organize scans cfg.RootDir for files selected by cfg.Extension. Files whose
// base name contains a match for cfg.Pattern stay in place; all others move
// into <root>/_other under a collision-free name. Progress lines and the
// final summary are written to w.
//
// A root that does not exist is created by a live run; a dry run over it
// reports an empty summary and creates nothing.
//
// A live run stops at the first failed move and returns the error together
// with the summary so far; files already moved stay where they are.
func Organize(cfg types.OrganizeConfig, w io.Writer, c *console.Console) (Summary, error) {
	keep, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return Summary{}, fmt.Errorf("compiling keep pattern %q: %w", cfg.Pattern, err)
	}
	if !simpleExtension.MatchString(cfg.Extension) {
		if _, err := extensionPattern(cfg.Extension); err != nil {
			return Summary{}, err
		}
	}

	root, exists, err := resolveRoot(cfg.RootDir)
	if err != nil {
		return Summary{}, err
	}
	other := filepath.Join(root, OtherDirName)
	summary := Summary{Root: root, OtherDir: other, DryRun: cfg.DryRun}

	if !cfg.DryRun {
		if !exists {
			if err := os.MkdirAll(root, 0o755); err != nil {
				return summary, fmt.Errorf("creating %s: %w", root, err)
			}
		}
		lock, err := acquireLock(root)
		if err != nil {
			return summary, err
		}
		defer func() {
			if err := lock.release(); err != nil {
				c.Warnf("%v", err)
			}
		}()

		if err := ensureDir(other, w); err != nil {
			return summary, err
		}
	}

	// A dry run over a missing root has nothing to scan.
	var files []string
	if exists || !cfg.DryRun {
		files, err = FindMatchingFiles(root, cfg.Extension)
		if err != nil {
			return summary, err
		}
	}
	lockPath := filepath.Join(root, lockFileName)

	for _, path := range files {
		if path == lockPath {
			continue
		}
		name := filepath.Base(path)
		rel := relPath(root, path)

		if keep.MatchString(name) {
			summary.Kept = append(summary.Kept, rel)
			fmt.Fprintf(w, "Keeping: %s\n", rel)
			continue
		}

		dest, err := freeDestination(other, name)
		if err != nil {
			return summary, fmt.Errorf("choosing destination for %s: %w", rel, err)
		}
		relDest := relPath(root, dest)

		if cfg.DryRun {
			fmt.Fprintf(w, "Would move: %s -> %s\n", rel, relDest)
		} else {
			fmt.Fprintf(w, "Moving: %s -> %s\n", rel, relDest)
			if err := movePath(path, dest); err != nil {
				return summary, fmt.Errorf("moving %s: %w", rel, err)
			}
		}
		summary.Moves = append(summary.Moves, Move{From: rel, To: relDest})
	}

	printSummary(w, summary)
	return summary, nil
}

// resolveRoot returns the absolute, symlink-free form of dir and whether it
// exists. A missing dir is returned cleaned and absolute with exists false;
// an existing path that is not a directory is an error.
func resolveRoot(dir string) (string, bool, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false, fmt.Errorf("resolving %s: %w", dir, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return abs, false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("resolving %s: %w", dir, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", false, fmt.Errorf("resolving %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", false, fmt.Errorf("%s is not a directory", dir)
	}
	return resolved, true, nil
}

func ensureDir(dir string, w io.Writer) error {
	_, err := os.Stat(dir)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	fmt.Fprintf(w, "Created directory: %s\n", dir)
	return nil
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

func printSummary(w io.Writer, s Summary) {
	verb := "moved"
	if s.DryRun {
		verb = "would be moved"
	}
	fmt.Fprintf(w, "\nSummary:\n")
	fmt.Fprintf(w, "  Files kept in place: %d\n", s.KeptCount())
	fmt.Fprintf(w, "  Files %s to %s: %d\n", verb, relPath(s.Root, s.OtherDir), s.MovedCount())
}
