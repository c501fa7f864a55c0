package cli

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/summarize/internal/commands"
	"github.com/temirov/summarize/internal/config"
	"github.com/temirov/summarize/internal/output"
	"github.com/temirov/summarize/internal/types"
	"github.com/temirov/summarize/internal/utils"
)

const (
	summaryWrittenMessage    = "summary written"
	clipboardFailedMessage   = "unable to copy summary to clipboard"
	clipboardCopiedMessage   = "summary copied to clipboard"
	errorFolderMissingFormat = "%w: %s"
	errorNoFilesFormat       = "%w in %s for extensions %s"
	errorNotAFileFormat      = "%w: %s"
	extensionListSeparator   = ","
	lineJoiner               = "\n"
)

// Run executes one summarize invocation and writes the artifact.
func Run(dependencies Dependencies, invocation types.InvocationArgs) error {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	outputPath := output.OutputFilePath(dependencies.WorkingDirectory, dependencies.Clock())

	var writtenFiles int
	var runError error
	mode := invocation.Mode()
	switch mode {
	case types.ModeFolder:
		writtenFiles, runError = runFolder(dependencies, invocation, outputPath, logger)
	case types.ModeFileList:
		writtenFiles, runError = runFileList(dependencies, invocation, outputPath)
	default:
		return types.ErrUsage
	}
	if runError != nil {
		return runError
	}

	if invocation.CopyToClipboard {
		copySummary(dependencies, outputPath, logger)
	}
	logger.Info(summaryWrittenMessage,
		zap.String("output", outputPath),
		zap.String("mode", mode),
		zap.Int("files", writtenFiles),
	)
	return nil
}

// runFolder walks the folder, then writes the tree and every retained file.
func runFolder(dependencies Dependencies, invocation types.InvocationArgs, outputPath string, logger *zap.Logger) (int, error) {
	folderPath := utils.ResolvePath(dependencies.WorkingDirectory, invocation.Folder)
	if !dependencies.FileSystem.IsDirectory(folderPath) {
		return 0, fmt.Errorf(errorFolderMissingFormat, types.ErrFolderMissing, invocation.Folder)
	}

	ignoreFilePath := ""
	if invocation.IgnoreFilePath != "" {
		ignoreFilePath = utils.ResolvePath(dependencies.WorkingDirectory, invocation.IgnoreFilePath)
	}
	ignorePatterns, loadError := config.LoadIgnorePatterns(dependencies.FileSystem, ignoreFilePath)
	if loadError != nil {
		return 0, loadError
	}

	treeBuilder := commands.TreeBuilder{
		FileSystem:     dependencies.FileSystem,
		Extensions:     invocation.Extensions,
		IgnorePatterns: ignorePatterns,
		MaximumDepth:   invocation.MaximumDepth,
		Logger:         logger,
	}
	traversal, treeError := treeBuilder.GetTreeData(folderPath)
	if treeError != nil {
		return 0, treeError
	}
	if len(traversal.Files) == 0 {
		return 0, fmt.Errorf(errorNoFilesFormat, types.ErrNoFiles, invocation.Folder, strings.Join(invocation.Extensions, extensionListSeparator))
	}

	writer := output.NewWriter(dependencies.FileSystem, outputPath)
	if writeTreeError := writer.WriteTree(folderPath, traversal.Entries); writeTreeError != nil {
		return 0, writeTreeError
	}
	return writer.WriteFileBlocks(traversal.Files, folderPath)
}

// runFileList writes one block per requested file in the given order. Every
// path is checked before the first write so a directory leaves no partial output.
func runFileList(dependencies Dependencies, invocation types.InvocationArgs, outputPath string) (int, error) {
	if len(invocation.Files) == 0 {
		return 0, types.ErrNoFileList
	}
	for _, filePath := range invocation.Files {
		if dependencies.FileSystem.IsDirectory(utils.ResolvePath(dependencies.WorkingDirectory, filePath)) {
			return 0, fmt.Errorf(errorNotAFileFormat, types.ErrNotAFile, filePath)
		}
	}
	writer := output.NewWriter(dependencies.FileSystem, outputPath)
	return writer.WriteFileBlocks(invocation.Files, dependencies.WorkingDirectory)
}

// copySummary reads the artifact back and hands it to the clipboard.
func copySummary(dependencies Dependencies, outputPath string, logger *zap.Logger) {
	if dependencies.Copier == nil {
		return
	}
	lines, readError := dependencies.FileSystem.ReadLines(outputPath)
	if readError != nil {
		logger.Warn(clipboardFailedMessage, zap.String("output", outputPath), zap.Error(readError))
		return
	}
	if copyError := dependencies.Copier.Copy(strings.Join(lines, lineJoiner) + lineJoiner); copyError != nil {
		logger.Warn(clipboardFailedMessage, zap.String("output", outputPath), zap.Error(copyError))
		return
	}
	logger.Debug(clipboardCopiedMessage, zap.String("output", outputPath))
}
