// Package ignore compiles simplified gitignore-style wildcard patterns and
// matches them against candidate paths.
package ignore

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/temirov/summarize/internal/utils"
)

const (
	anyRunWildcard     = '*'
	singleRuneWildcard = '?'
	pathSeparator      = "/"
	errorCompileFormat = "compiling ignore pattern %q: %w"
)

// Pattern is one compiled ignore pattern. Matching is case-insensitive and
// only "*" and "?" act as wildcards; "*" also spans path separators.
type Pattern struct {
	source  string
	matcher glob.Glob
}

// Compile builds a Pattern from its textual form.
func Compile(source string) (Pattern, error) {
	normalizedSource := utils.ToForwardSlash(source)
	compiled, compileError := glob.Compile(quoteLiterals(strings.ToLower(normalizedSource)))
	if compileError != nil {
		return Pattern{}, fmt.Errorf(errorCompileFormat, source, compileError)
	}
	return Pattern{source: normalizedSource, matcher: compiled}, nil
}

// CompileAll compiles every source, stopping at the first failure.
func CompileAll(sources []string) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(sources))
	for _, source := range sources {
		pattern, compileError := Compile(source)
		if compileError != nil {
			return nil, compileError
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

// String returns the pattern text.
func (pattern Pattern) String() string {
	return pattern.source
}

// Match reports whether candidate matches the pattern.
func (pattern Pattern) Match(candidate string) bool {
	if pattern.matcher == nil {
		return false
	}
	return pattern.matcher.Match(strings.ToLower(utils.ToForwardSlash(candidate)))
}

// ShouldIgnore reports whether any pattern matches the relative or the
// absolute form of a path. Directories are also tested with a trailing
// separator so that directory patterns such as "*build/*" exclude the
// directory itself and not only its descendants.
func ShouldIgnore(relativePath string, absolutePath string, isDirectory bool, patterns []Pattern) bool {
	candidates := []string{relativePath, absolutePath}
	if isDirectory {
		candidates = append(candidates, relativePath+pathSeparator, absolutePath+pathSeparator)
	}
	for _, pattern := range patterns {
		for _, candidate := range candidates {
			if pattern.Match(candidate) {
				return true
			}
		}
	}
	return false
}

// quoteLiterals escapes every glob meta character other than the two
// supported wildcards so that brackets and braces match literally.
func quoteLiterals(source string) string {
	var builder strings.Builder
	var literal strings.Builder
	flushLiteral := func() {
		if literal.Len() > 0 {
			builder.WriteString(glob.QuoteMeta(literal.String()))
			literal.Reset()
		}
	}
	for _, character := range source {
		if character == anyRunWildcard || character == singleRuneWildcard {
			flushLiteral()
			builder.WriteRune(character)
			continue
		}
		literal.WriteRune(character)
	}
	flushLiteral()
	return builder.String()
}
