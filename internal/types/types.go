// Package types defines every cross‑package data structure used by the summarize CLI.
package types

import (
	"errors"
	"slices"
)

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	ModeFolder   = "folder"
	ModeFileList = "files"

	// DefaultMaximumDepth bounds how many directory levels below the root are listed.
	DefaultMaximumDepth = 5
)

var (
	// ErrUsage reports that no valid run mode was selected.
	ErrUsage = errors.New("specify either --folder with --exts, or --files")
	// ErrFolderMissing reports that the folder-mode root does not exist.
	ErrFolderMissing = errors.New("folder does not exist")
	// ErrNoFiles reports that no file survived the extension and ignore filters.
	ErrNoFiles = errors.New("no files found")
	// ErrNoFileList reports that file-list mode received no paths.
	ErrNoFileList = errors.New("file list is empty")
	// ErrNotAFile reports that file-list mode received a directory.
	ErrNotAFile = errors.New("listed path is a directory")
)

// InvocationArgs is the resolved command-line input of a single run.
type InvocationArgs struct {
	Folder          string
	Extensions      []string
	Files           []string
	IgnoreFilePath  string
	MaximumDepth    int
	CopyToClipboard bool
}

// Mode reports which run style the arguments select, or an empty string when
// the selection is invalid.
func (arguments InvocationArgs) Mode() string {
	folderGiven := arguments.Folder != "" || len(arguments.Extensions) > 0
	folderSelected := arguments.Folder != "" && len(arguments.Extensions) > 0
	filesSelected := len(arguments.Files) > 0
	switch {
	case folderSelected && !filesSelected:
		return ModeFolder
	case filesSelected && !folderGiven:
		return ModeFileList
	default:
		return ""
	}
}

// TreeEntry is one retained directory or file discovered during traversal.
type TreeEntry struct {
	RelativePath string
	Name         string
	Type         string
	Depth        int
}

// IsDirectory reports whether the entry is a directory.
func (entry TreeEntry) IsDirectory() bool {
	return entry.Type == NodeTypeDirectory
}

// TraversalResult holds tree entries in depth-first order and the absolute
// paths of every retained file in the same order.
type TraversalResult struct {
	Entries []TreeEntry
	Files   []string
}

// Append concatenates another result onto the receiver and returns the combination.
func (result TraversalResult) Append(other TraversalResult) TraversalResult {
	return TraversalResult{
		Entries: slices.Concat(result.Entries, other.Entries),
		Files:   slices.Concat(result.Files, other.Files),
	}
}

// FileBlock is one labeled section of the output artifact.
type FileBlock struct {
	DisplayPath string
	Lines       []string
	Missing     bool
}
