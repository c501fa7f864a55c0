// Package filesystem exposes the small set of filesystem capabilities the
// summarizer needs, backed by afero so that runs can target an in-memory tree.
package filesystem

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

const (
	lineSeparator     = "\n"
	outputFileMode    = 0o644
	outputOpenFlags   = os.O_APPEND | os.O_CREATE | os.O_WRONLY
	errorListFormat   = "reading directory %s: %w"
	errorReadFormat   = "reading file %s: %w"
	errorAppendFormat = "appending to %s: %w"
	errorCloseFormat  = "closing %s: %w"
)

// Entry is one immediate child of a directory.
type Entry struct {
	Name        string
	IsDirectory bool
}

// FileSystem is the capability set consumed by traversal and output writing.
type FileSystem interface {
	ListChildren(directoryPath string) ([]Entry, error)
	ReadLines(filePath string) ([]string, error)
	AppendLines(filePath string, lines ...string) error
	Exists(path string) bool
	IsDirectory(path string) bool
}

// AferoFileSystem implements FileSystem on top of an afero.Fs.
type AferoFileSystem struct {
	backend afero.Fs
}

// New wraps the provided afero backend.
func New(backend afero.Fs) *AferoFileSystem {
	return &AferoFileSystem{backend: backend}
}

// NewOS returns a FileSystem over the real operating system filesystem.
func NewOS() *AferoFileSystem {
	return New(afero.NewOsFs())
}

// Backend exposes the underlying afero filesystem.
func (fileSystem *AferoFileSystem) Backend() afero.Fs {
	return fileSystem.backend
}

// ListChildren returns the immediate children of directoryPath sorted by name.
func (fileSystem *AferoFileSystem) ListChildren(directoryPath string) ([]Entry, error) {
	fileInfos, readError := afero.ReadDir(fileSystem.backend, directoryPath)
	if readError != nil {
		return nil, fmt.Errorf(errorListFormat, directoryPath, readError)
	}
	entries := make([]Entry, 0, len(fileInfos))
	for _, fileInfo := range fileInfos {
		entries = append(entries, Entry{Name: fileInfo.Name(), IsDirectory: fileInfo.IsDir()})
	}
	return entries, nil
}

// ReadLines returns the file content split on "\n". Carriage returns and other
// bytes are preserved; a single trailing newline does not produce an empty line.
func (fileSystem *AferoFileSystem) ReadLines(filePath string) ([]string, error) {
	content, readError := afero.ReadFile(fileSystem.backend, filePath)
	if readError != nil {
		return nil, fmt.Errorf(errorReadFormat, filePath, readError)
	}
	if len(content) == 0 {
		return nil, nil
	}
	lines := strings.Split(string(content), lineSeparator)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// AppendLines opens filePath in append mode, creating it when needed, and
// writes every line followed by a newline as one append operation.
func (fileSystem *AferoFileSystem) AppendLines(filePath string, lines ...string) (err error) {
	fileHandle, openError := fileSystem.backend.OpenFile(filePath, outputOpenFlags, outputFileMode)
	if openError != nil {
		return fmt.Errorf(errorAppendFormat, filePath, openError)
	}
	defer func() {
		if closeError := fileHandle.Close(); closeError != nil && err == nil {
			err = fmt.Errorf(errorCloseFormat, filePath, closeError)
		}
	}()
	var builder strings.Builder
	for _, line := range lines {
		builder.WriteString(line)
		builder.WriteString(lineSeparator)
	}
	if _, writeError := fileHandle.WriteString(builder.String()); writeError != nil {
		return fmt.Errorf(errorAppendFormat, filePath, writeError)
	}
	return nil
}

// Exists reports whether anything is present at path.
func (fileSystem *AferoFileSystem) Exists(path string) bool {
	_, statError := fileSystem.backend.Stat(path)
	return statError == nil
}

// IsDirectory reports whether path exists and is a directory.
func (fileSystem *AferoFileSystem) IsDirectory(path string) bool {
	isDirectory, statError := afero.IsDir(fileSystem.backend, path)
	return statError == nil && isDirectory
}

var _ FileSystem = (*AferoFileSystem)(nil)
