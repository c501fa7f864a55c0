// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/summarize/internal/config"
	"github.com/temirov/summarize/internal/filesystem"
	"github.com/temirov/summarize/internal/services/clipboard"
	"github.com/temirov/summarize/internal/types"
	"github.com/temirov/summarize/internal/utils"
)

const (
	versionFlagName      = "version"
	versionTemplate      = "summarize version: %s\n"
	rootUse              = "summarize"
	rootShortDescription = "write a tree and file contents snapshot of a codebase"
	rootLongDescription  = `summarize writes a single text file named <YYMMDD_HHMMSS>-summary.txt in the
working directory.

Folder mode (--folder with --exts) walks the folder up to --depth levels, keeps
files whose extension is listed, drops anything matched by the --ignore file,
and writes a directory tree followed by the content of every kept file.

File-list mode (--files) writes the content of each listed file in order.

Every flag may also be set through a SUMMARIZE_<FLAG> environment variable.`
	rootUsageExample = `  # Snapshot Go and Markdown sources, honouring .gitignore
  summarize --folder . --exts go,md --ignore .gitignore

  # Snapshot two specific files
  summarize --files main.go,README.md`

	folderFlagDescription     = "root folder to scan (folder mode)"
	extensionsFlagDescription = "comma-separated extensions to keep, without the leading dot"
	filesFlagDescription      = "files to summarize (file-list mode); repeat or separate with commas"
	ignoreFlagDescription     = "gitignore-style file with patterns to exclude"
	depthFlagDescription      = "maximum number of directory levels listed below the folder"
	clipboardFlagDescription  = "also copy the written summary to the clipboard"
	versionFlagDescription    = "display application version"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
)

// Dependencies carries every collaborator a run touches so that tests can
// substitute an in-memory filesystem, a fixed clock and a fake clipboard.
type Dependencies struct {
	FileSystem       filesystem.FileSystem
	Clock            func() time.Time
	WorkingDirectory string
	Copier           clipboard.Copier
	Logger           *zap.Logger
	Stdout           io.Writer
}

// Execute runs the summarize application against the real environment.
func Execute(logger *zap.Logger) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	dependencies := Dependencies{
		FileSystem:       filesystem.NewOS(),
		Clock:            time.Now,
		WorkingDirectory: workingDirectory,
		Copier:           clipboard.NewService(),
		Logger:           logger,
		Stdout:           os.Stdout,
	}
	return NewRootCommand(dependencies).Execute()
}

// NewRootCommand builds the root Cobra command bound to dependencies.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			invocation, resolveError := config.ResolveInvocation(command.Flags())
			if resolveError != nil {
				if errors.Is(resolveError, types.ErrUsage) {
					_ = command.Usage()
				}
				return resolveError
			}
			if invocation.Mode() == "" {
				if command.Flags().Changed(config.FilesFlagName) && len(invocation.Files) == 0 && invocation.Folder == "" {
					return types.ErrNoFileList
				}
				_ = command.Usage()
				return types.ErrUsage
			}
			return Run(dependencies, invocation)
		},
	}

	flagSet := rootCommand.Flags()
	flagSet.StringP(config.FolderFlagName, "f", "", folderFlagDescription)
	flagSet.StringP(config.ExtensionsFlagName, "e", "", extensionsFlagDescription)
	flagSet.StringSlice(config.FilesFlagName, nil, filesFlagDescription)
	flagSet.StringP(config.IgnoreFlagName, "i", "", ignoreFlagDescription)
	flagSet.IntP(config.DepthFlagName, "d", types.DefaultMaximumDepth, depthFlagDescription)
	flagSet.Bool(config.ClipboardFlagName, false, clipboardFlagDescription)
	flagSet.BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)

	if dependencies.Stdout != nil {
		rootCommand.SetOut(dependencies.Stdout)
		rootCommand.SetErr(dependencies.Stdout)
	}
	return rootCommand
}
