// Package output writes the summary artifact: an optional tree block followed
// by one labeled block per file.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/temirov/summarize/internal/filesystem"
	"github.com/temirov/summarize/internal/types"
	"github.com/temirov/summarize/internal/utils"
)

const (
	separatorLine       = "----------------------------------------"
	filePathLabel       = "File: "
	fileNotFoundMessage = "File not found."
	outputFileSuffix    = "-summary.txt"

	errorWriteTreeFormat  = "writing tree to %s: %w"
	errorWriteBlockFormat = "writing block for %s: %w"
	errorReadBlockFormat  = "reading %s: %w"
)

// OutputFileName returns "<YYMMDD_HHMMSS>-summary.txt" for the given moment.
func OutputFileName(now time.Time) string {
	return utils.FormatOutputTimestamp(now) + outputFileSuffix
}

// OutputFilePath places OutputFileName inside workingDirectory.
func OutputFilePath(workingDirectory string, now time.Time) string {
	return filepath.Join(workingDirectory, OutputFileName(now))
}

// Writer appends tree and file blocks to a single output file.
type Writer struct {
	FileSystem filesystem.FileSystem
	OutputPath string
}

// NewWriter returns a Writer targeting outputPath.
func NewWriter(fileSystem filesystem.FileSystem, outputPath string) *Writer {
	return &Writer{FileSystem: fileSystem, OutputPath: outputPath}
}

// WriteTree appends the rendered tree followed by a blank line.
func (writer *Writer) WriteTree(rootLabel string, entries []types.TreeEntry) error {
	lines := append(RenderTree(rootLabel, entries), "")
	if appendError := writer.FileSystem.AppendLines(writer.OutputPath, lines...); appendError != nil {
		return fmt.Errorf(errorWriteTreeFormat, writer.OutputPath, appendError)
	}
	return nil
}

// WriteFileBlocks appends one block per path in the given order. Relative
// paths are resolved against baseFolder, which is also the reference for the
// displayed path. It returns the number of blocks written.
func (writer *Writer) WriteFileBlocks(filePaths []string, baseFolder string) (int, error) {
	for index, filePath := range filePaths {
		block, blockError := BuildFileBlock(writer.FileSystem, filePath, baseFolder)
		if blockError != nil {
			return index, blockError
		}
		if appendError := writer.FileSystem.AppendLines(writer.OutputPath, RenderFileBlock(block)...); appendError != nil {
			return index, fmt.Errorf(errorWriteBlockFormat, filePath, appendError)
		}
	}
	return len(filePaths), nil
}

// BuildFileBlock reads one file into a block. A path missing at read time
// produces a block marked Missing instead of an error.
func BuildFileBlock(fileSystem filesystem.FileSystem, filePath string, baseFolder string) (types.FileBlock, error) {
	resolvedPath := utils.ResolvePath(baseFolder, filePath)
	block := types.FileBlock{DisplayPath: DisplayPath(filePath, baseFolder)}
	lines, readError := fileSystem.ReadLines(resolvedPath)
	if errors.Is(readError, fs.ErrNotExist) {
		block.Missing = true
		return block, nil
	}
	if readError != nil {
		return types.FileBlock{}, fmt.Errorf(errorReadBlockFormat, filePath, readError)
	}
	block.Lines = lines
	return block, nil
}

// DisplayPath returns filePath relative to baseFolder in forward-slash form,
// or filePath itself in forward-slash form when it is not under baseFolder.
func DisplayPath(filePath string, baseFolder string) string {
	relativePath, inside := utils.RelativePathOrSelf(utils.ResolvePath(baseFolder, filePath), baseFolder)
	if !inside {
		return utils.ToForwardSlash(filePath)
	}
	return relativePath
}

// RenderFileBlock returns the lines of one block: separator, path label,
// content (or the not-found placeholder), and a trailing blank line.
func RenderFileBlock(block types.FileBlock) []string {
	lines := make([]string, 0, len(block.Lines)+3)
	lines = append(lines, separatorLine, filePathLabel+block.DisplayPath)
	if block.Missing {
		lines = append(lines, fileNotFoundMessage)
	} else {
		lines = append(lines, block.Lines...)
	}
	return append(lines, "")
}
