// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package organize

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// simpleExtension matches bare extension tokens such as "jpg" or "MP4".
var simpleExtension = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// FindMatchingFiles returns the files under root selected by ext.
//
// A bare alphanumeric ext is searched twice, once for the lowercase suffix
// and once for the uppercase suffix, and the results are concatenated
// without de-duplication. Any other ext is treated as a regex fragment and
// matched case-insensitively against the end of each file name as
// `\.(ext)$`. Within a pass, files appear in walk order.
func FindMatchingFiles(root, ext string) ([]string, error) {
	if simpleExtension.MatchString(ext) {
		lower, err := walkFiles(root, suffixMatcher("."+strings.ToLower(ext)))
		if err != nil {
			return nil, err
		}
		upper, err := walkFiles(root, suffixMatcher("."+strings.ToUpper(ext)))
		if err != nil {
			return nil, err
		}
		return append(lower, upper...), nil
	}

	re, err := extensionPattern(ext)
	if err != nil {
		return nil, err
	}
	return walkFiles(root, re.MatchString)
}

// extensionPattern compiles a regex-fragment extension into a suffix matcher.
func extensionPattern(ext string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`(?i)\.(` + ext + `)$`)
	if err != nil {
		return nil, fmt.Errorf("compiling extension pattern %q: %w", ext, err)
	}
	return re, nil
}

func suffixMatcher(suffix string) func(string) bool {
	return func(name string) bool {
		return strings.HasSuffix(name, suffix)
	}
}

// walkFiles collects every non-directory entry under root whose base name
// satisfies match. Each directory's own files are listed, in name order,
// before any of its subdirectories are entered, so files at the root always
// precede files in _other. Subdirectories that cannot be read are skipped;
// an unreadable root is an error. Symlinked directories are not followed.
func walkFiles(root string, match func(string) bool) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	var files []string
	collectFiles(root, entries, match, &files)
	return files, nil
}

func collectFiles(dir string, entries []fs.DirEntry, match func(string) bool, files *[]string) {
	var subdirs []string
	for _, e := range entries {
		if e.IsDir() {
			subdirs = append(subdirs, filepath.Join(dir, e.Name()))
			continue
		}
		if match(e.Name()) {
			*files = append(*files, filepath.Join(dir, e.Name()))
		}
	}
	for _, sub := range subdirs {
		children, err := os.ReadDir(sub)
		if err != nil {
			continue
		}
		collectFiles(sub, children, match, files)
	}
}
