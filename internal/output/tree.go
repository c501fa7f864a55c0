package output

import (
	"strings"

	"github.com/disiqueira/gotree/v3"

	"github.com/temirov/summarize/internal/types"
)

const (
	directoryLabelSuffix = "/"
	treeLineSeparator    = "\n"
)

// RenderTree draws the entries below rootLabel with box-drawing connectors,
// one line per entry. Entries must be in depth-first order.
func RenderTree(rootLabel string, entries []types.TreeEntry) []string {
	root := gotree.New(rootLabel)
	ancestors := []gotree.Tree{root}
	for _, entry := range entries {
		parentIndex := entry.Depth - 1
		if parentIndex < 0 {
			parentIndex = 0
		}
		if parentIndex >= len(ancestors) {
			parentIndex = len(ancestors) - 1
		}
		label := entry.Name
		if entry.IsDirectory() {
			label += directoryLabelSuffix
		}
		node := ancestors[parentIndex].Add(label)
		ancestors = append(ancestors[:parentIndex+1], node)
	}
	return strings.Split(strings.TrimSuffix(root.Print(), treeLineSeparator), treeLineSeparator)
}
