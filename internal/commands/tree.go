// Package commands contains the folder traversal that feeds the summary writer.
package commands

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/summarize/internal/types"
	"github.com/temirov/summarize/internal/utils"
)

const (
	// warningSkipSubdirMessage is logged when a subdirectory cannot be listed.
	warningSkipSubdirMessage = "skipping unreadable subdirectory"

	// errorBuildTreeFormat is used when the root cannot be listed.
	errorBuildTreeFormat = "building tree for %s: %w"
)

// GetTreeData walks rootDirectoryPath and returns the retained tree entries and
// file paths in depth-first, name-sorted order. Entries deeper than
// MaximumDepth levels below the root are silently left out.
func (treeBuilder *TreeBuilder) GetTreeData(rootDirectoryPath string) (types.TraversalResult, error) {
	cleanRootPath := filepath.Clean(rootDirectoryPath)
	result, buildError := treeBuilder.buildTreeEntries(cleanRootPath, cleanRootPath, treeBuilder.MaximumDepth, 1)
	if buildError != nil {
		return types.TraversalResult{}, fmt.Errorf(errorBuildTreeFormat, rootDirectoryPath, buildError)
	}
	return result, nil
}

// buildTreeEntries returns the result for currentDirectoryPath. level is the
// depth of the children being listed, starting at 1 for the root's children.
func (treeBuilder *TreeBuilder) buildTreeEntries(currentDirectoryPath string, rootDirectoryPath string, remainingDepth int, level int) (types.TraversalResult, error) {
	if remainingDepth <= 0 {
		return types.TraversalResult{}, nil
	}

	children, listError := treeBuilder.FileSystem.ListChildren(currentDirectoryPath)
	if listError != nil {
		return types.TraversalResult{}, listError
	}

	var result types.TraversalResult
	for _, child := range children {
		if !child.IsDirectory && !treeBuilder.acceptsExtension(utils.ExtensionOf(child.Name)) {
			continue
		}

		childPath := filepath.Join(currentDirectoryPath, child.Name)
		relativeChildPath, _ := utils.RelativePathOrSelf(childPath, rootDirectoryPath)
		if treeBuilder.ignores(relativeChildPath, childPath, child.IsDirectory) {
			continue
		}

		entry := types.TreeEntry{
			RelativePath: relativeChildPath,
			Name:         child.Name,
			Type:         types.NodeTypeFile,
			Depth:        level,
		}

		if !child.IsDirectory {
			result.Entries = append(result.Entries, entry)
			result.Files = append(result.Files, childPath)
			continue
		}

		entry.Type = types.NodeTypeDirectory
		result.Entries = append(result.Entries, entry)
		childResult, childError := treeBuilder.buildTreeEntries(childPath, rootDirectoryPath, remainingDepth-1, level+1)
		if childError != nil {
			treeBuilder.logger().Warn(warningSkipSubdirMessage, zap.String("path", childPath), zap.Error(childError))
			continue
		}
		result = result.Append(childResult)
	}

	return result, nil
}
