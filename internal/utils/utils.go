// Package utils contains general helper functions used across the summarize tool.
package utils

import (
	"path/filepath"
	"strings"
)

const (
	pathSegmentSeparator = "/"
	extensionSeparator   = ","
	extensionDot         = "."
	parentDirectoryToken = ".."
)

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// ToForwardSlash converts both Windows and platform separators to "/".
func ToForwardSlash(path string) string {
	return strings.ReplaceAll(filepath.ToSlash(path), "\\", pathSegmentSeparator)
}

// RelativePathOrSelf calculates the relative path from root to fullPath in forward-slash form.
// Returns "." if fullPath and root resolve to the same directory.
// The second result is false when fullPath does not lie under root.
func RelativePathOrSelf(fullPath, root string) (string, bool) {
	cleanPath := filepath.Clean(fullPath)
	cleanRoot := filepath.Clean(root)
	if cleanPath == cleanRoot {
		return ".", true
	}
	relativePath, relErr := filepath.Rel(cleanRoot, cleanPath)
	if relErr != nil {
		return ToForwardSlash(cleanPath), false
	}
	relativePath = ToForwardSlash(relativePath)
	if relativePath == parentDirectoryToken || strings.HasPrefix(relativePath, parentDirectoryToken+pathSegmentSeparator) {
		return ToForwardSlash(cleanPath), false
	}
	return relativePath, true
}

// ResolvePath joins a relative path onto base; absolute paths are returned cleaned.
func ResolvePath(base string, path string) string {
	if filepath.IsAbs(path) || base == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// ParseExtensions splits a comma-separated extension list. Items are trimmed,
// one leading dot is removed, and empty items are dropped. Case is preserved.
func ParseExtensions(rawExtensions ...string) []string {
	var extensions []string
	for _, rawValue := range rawExtensions {
		for _, item := range strings.Split(rawValue, extensionSeparator) {
			trimmedItem := strings.TrimPrefix(strings.TrimSpace(item), extensionDot)
			if trimmedItem == "" {
				continue
			}
			extensions = append(extensions, trimmedItem)
		}
	}
	if len(extensions) == 0 {
		return nil
	}
	return DeduplicatePatterns(extensions)
}

// ExtensionOf returns the suffix after the last dot of a file name, or an
// empty string when the name has no dot.
func ExtensionOf(fileName string) string {
	dotIndex := strings.LastIndex(fileName, extensionDot)
	if dotIndex < 0 {
		return ""
	}
	return fileName[dotIndex+1:]
}
