// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// IsMarkdown returns true if the path has a Markdown file extension.
// Recognized extensions: .md, .markdown (case-insensitive).
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// ReplaceExtension returns path with its extension replaced by newExt.
// newExt must include the leading dot. A path without an extension gets
// newExt appended.
func ReplaceExtension(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./notes.md" -> true (relative path)
//   - "../shared/notes.md" -> true (parent path)
//   - "/absolute/notes.md" -> true (absolute)
//   - "C:\docs\notes.md" -> true (Windows)
//   - "my-config" -> false (hyphenated name)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
