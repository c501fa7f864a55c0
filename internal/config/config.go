// Package config resolves invocation arguments and loads ignore files into patterns.
package config

import (
	"fmt"
	"strings"

	"github.com/temirov/summarize/internal/filesystem"
	"github.com/temirov/summarize/internal/ignore"
	"github.com/temirov/summarize/internal/utils"
)

const (
	commentPrefix         = "#"
	pathSeparator         = "/"
	wildcardMarker        = "*"
	errorLoadIgnoreFormat = "loading ignore file %s: %w"
)

// LoadIgnoreFilePatterns reads an ignore file and returns its translated patterns.
// A missing file yields no patterns and no error.
func LoadIgnoreFilePatterns(fileSystem filesystem.FileSystem, ignoreFilePath string) ([]string, error) {
	if strings.TrimSpace(ignoreFilePath) == "" || !fileSystem.Exists(ignoreFilePath) {
		return nil, nil
	}
	lines, readError := fileSystem.ReadLines(ignoreFilePath)
	if readError != nil {
		return nil, fmt.Errorf(errorLoadIgnoreFormat, ignoreFilePath, readError)
	}
	var patterns []string
	for _, line := range lines {
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		patterns = append(patterns, TranslatePattern(trimmedLine))
	}
	return utils.DeduplicatePatterns(patterns), nil
}

// TranslatePattern converts one ignore-file line into a wildcard pattern.
// Lines that begin or end with a separator are wrapped in "*" on both sides
// so they match anywhere in a path; everything else is used as written.
func TranslatePattern(line string) string {
	normalizedLine := utils.ToForwardSlash(line)
	if strings.HasSuffix(normalizedLine, pathSeparator) || strings.HasPrefix(normalizedLine, pathSeparator) {
		return wildcardMarker + normalizedLine + wildcardMarker
	}
	return normalizedLine
}

// LoadIgnorePatterns reads and compiles the ignore file at ignoreFilePath.
func LoadIgnorePatterns(fileSystem filesystem.FileSystem, ignoreFilePath string) ([]ignore.Pattern, error) {
	patternSources, loadError := LoadIgnoreFilePatterns(fileSystem, ignoreFilePath)
	if loadError != nil {
		return nil, loadError
	}
	patterns, compileError := ignore.CompileAll(patternSources)
	if compileError != nil {
		return nil, fmt.Errorf(errorLoadIgnoreFormat, ignoreFilePath, compileError)
	}
	return patterns, nil
}
