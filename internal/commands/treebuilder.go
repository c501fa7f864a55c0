package commands

import (
	"go.uber.org/zap"

	"github.com/temirov/summarize/internal/filesystem"
	"github.com/temirov/summarize/internal/ignore"
)

// TreeBuilder walks a folder using configured filters.
type TreeBuilder struct {
	FileSystem     filesystem.FileSystem
	Extensions     []string
	IgnorePatterns []ignore.Pattern
	MaximumDepth   int
	Logger         *zap.Logger
}

// acceptsExtension reports whether the file name's extension is in the accepted set.
func (treeBuilder *TreeBuilder) acceptsExtension(extension string) bool {
	if extension == "" {
		return false
	}
	for _, acceptedExtension := range treeBuilder.Extensions {
		if acceptedExtension == extension {
			return true
		}
	}
	return false
}

// ignores reports whether an entry matches any ignore pattern.
func (treeBuilder *TreeBuilder) ignores(relativePath string, absolutePath string, isDirectory bool) bool {
	return ignore.ShouldIgnore(relativePath, absolutePath, isDirectory, treeBuilder.IgnorePatterns)
}

func (treeBuilder *TreeBuilder) logger() *zap.Logger {
	if treeBuilder.Logger == nil {
		return zap.NewNop()
	}
	return treeBuilder.Logger
}
