// Package fsutil holds the small path and existence checks shared by the
// icon builder, the desktop.ini writer and the set/remove pipelines.
package fsutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists reports whether path names an existing regular (non-directory) file.
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ResolveIn joins a relative path onto base when exists reports the joined
// path as present. Absolute paths and relative paths with no match are
// returned unchanged.
func ResolveIn(base, path string, exists func(string) bool) string {
	if filepath.IsAbs(path) {
		return path
	}
	candidate := filepath.Join(base, path)
	if exists(candidate) {
		return candidate
	}
	return path
}

// WithTrailingSeparator returns dir ending in exactly one path separator.
func WithTrailingSeparator(dir string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir
	}
	return dir + string(filepath.Separator)
}

// BaseNameWithoutExt returns the final element of path without its extension.
func BaseNameWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
