package dsymup

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Hack-Nocturne/dsymup/types"
	"github.com/Hack-Nocturne/dsymup/vars"
	"github.com/bmatcuk/doublestar/v4"
)

// ResolvePaths lists the files to upload as absolute paths: dsym_path, the
// build context zip, dsym_paths, then glob matches. Relative entries resolve
// against the working directory. Duplicates are kept.
func (c *UploadConfig) ResolvePaths() ([]string, error) {
	type entry struct{ option, path string }

	var entries []entry
	if c.DSYMPath != nil {
		entries = append(entries, entry{"dsym_path", *c.DSYMPath})
	}
	if c.ContextZipPath != nil {
		entries = append(entries, entry{"dsym_zip_path", *c.ContextZipPath})
	}
	for _, p := range c.DSYMPaths {
		entries = append(entries, entry{"dsym_paths", p})
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		// filepath.Abs("") is the working directory, never what was meant.
		if strings.TrimSpace(e.path) == "" {
			return nil, &types.ConfigurationError{Option: e.option, Reason: "empty path"}
		}
		abs, err := filepath.Abs(e.path)
		if err != nil {
			return nil, &types.ConfigurationError{Option: e.option, Reason: "resolving " + e.path, Err: err}
		}
		paths = append(paths, abs)
	}

	for _, pattern := range c.DSYMGlobs {
		matches, err := expandGlob(pattern)
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}

	return paths, nil
}

// expandGlob returns the regular files matching pattern, sorted, minus
// Finder litter.
func expandGlob(pattern string) ([]string, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, &types.ConfigurationError{Option: "dsym_globs", Reason: "invalid pattern " + pattern, Err: doublestar.ErrBadPattern}
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, &types.ConfigurationError{Option: "dsym_globs", Reason: "expanding " + pattern, Err: err}
	}
	sort.Strings(matches)

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		if shouldIgnore(m) {
			continue
		}
		abs, err := filepath.Abs(m)
		if err != nil {
			return nil, &types.ConfigurationError{Option: "dsym_globs", Reason: "resolving " + m, Err: err}
		}
		paths = append(paths, abs)
	}
	return paths, nil
}

// shouldIgnore checks if a matched path falls under one of vars.IGNORE_PATTERNS.
func shouldIgnore(path string) bool {
	// Patterns are unix-style and relative, so drop the root of absolute matches.
	path = strings.TrimPrefix(filepath.ToSlash(path), "/")
	for _, pattern := range vars.IGNORE_PATTERNS {
		if match, err := doublestar.Match(pattern, path); err == nil && match {
			return true
		}
	}
	return false
}

// ValidatePaths checks that every path is an existing regular file and
// stops at the first that is not.
func ValidatePaths(paths []string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return &types.MissingFileError{Path: path, Err: err}
		}
		if !info.Mode().IsRegular() {
			return &types.MissingFileError{Path: path, Err: types.ErrNotRegularFile}
		}
	}
	return nil
}
