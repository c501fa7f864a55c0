package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/temirov/summarize/internal/filesystem"
)

const (
	projectRoot     = "/project"
	alphaFileName   = "alpha.txt"
	betaFileName    = "beta.md"
	nestedDirectory = "nested"
	outputFileName  = "out.txt"
)

func newMemoryFileSystem(testingHandle *testing.T) *filesystem.AferoFileSystem {
	testingHandle.Helper()
	backend := afero.NewMemMapFs()
	if mkdirError := backend.MkdirAll(filepath.Join(projectRoot, nestedDirectory), 0o755); mkdirError != nil {
		testingHandle.Fatalf("mkdir: %v", mkdirError)
	}
	if writeError := afero.WriteFile(backend, filepath.Join(projectRoot, betaFileName), []byte("b"), 0o644); writeError != nil {
		testingHandle.Fatalf("write beta: %v", writeError)
	}
	if writeError := afero.WriteFile(backend, filepath.Join(projectRoot, alphaFileName), []byte("a"), 0o644); writeError != nil {
		testingHandle.Fatalf("write alpha: %v", writeError)
	}
	return filesystem.New(backend)
}

// TestListChildrenSortedByName verifies lexicographic listing with directory flags.
func TestListChildrenSortedByName(testingHandle *testing.T) {
	fileSystem := newMemoryFileSystem(testingHandle)
	entries, listError := fileSystem.ListChildren(projectRoot)
	if listError != nil {
		testingHandle.Fatalf("ListChildren error: %v", listError)
	}
	expected := []filesystem.Entry{
		{Name: alphaFileName},
		{Name: betaFileName},
		{Name: nestedDirectory, IsDirectory: true},
	}
	if len(entries) != len(expected) {
		testingHandle.Fatalf("expected %d entries, got %d", len(expected), len(entries))
	}
	for index := range expected {
		if entries[index] != expected[index] {
			testingHandle.Errorf("entry %d: expected %+v, got %+v", index, expected[index], entries[index])
		}
	}
}

// TestListChildrenMissingDirectory verifies a missing directory is reported.
func TestListChildrenMissingDirectory(testingHandle *testing.T) {
	fileSystem := newMemoryFileSystem(testingHandle)
	if _, listError := fileSystem.ListChildren("/absent"); listError == nil {
		testingHandle.Fatalf("expected error for missing directory")
	}
}

// TestReadLines verifies content is split verbatim without a phantom trailing line.
func TestReadLines(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected []string
	}{
		{name: "trailing newline", content: "one\ntwo\n", expected: []string{"one", "two"}},
		{name: "no trailing newline", content: "one\ntwo", expected: []string{"one", "two"}},
		{name: "carriage returns preserved", content: "one\r\ntwo\r\n", expected: []string{"one\r", "two\r"}},
		{name: "blank lines preserved", content: "one\n\n\ntwo\n", expected: []string{"one", "", "", "two"}},
		{name: "empty file", content: "", expected: nil},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTest *testing.T) {
			backend := afero.NewMemMapFs()
			if writeError := afero.WriteFile(backend, "/file.txt", []byte(testCase.content), 0o644); writeError != nil {
				subTest.Fatalf("write: %v", writeError)
			}
			lines, readError := filesystem.New(backend).ReadLines("/file.txt")
			if readError != nil {
				subTest.Fatalf("ReadLines error: %v", readError)
			}
			if len(lines) != len(testCase.expected) {
				subTest.Fatalf("expected %q, got %q", testCase.expected, lines)
			}
			for index := range lines {
				if lines[index] != testCase.expected[index] {
					subTest.Fatalf("expected %q, got %q", testCase.expected, lines)
				}
			}
		})
	}
}

// TestAppendLinesAppends verifies successive calls extend rather than truncate the file.
func TestAppendLinesAppends(testingHandle *testing.T) {
	fileSystem := newMemoryFileSystem(testingHandle)
	outputPath := filepath.Join(projectRoot, outputFileName)
	if appendError := fileSystem.AppendLines(outputPath, "first", "second"); appendError != nil {
		testingHandle.Fatalf("append: %v", appendError)
	}
	if appendError := fileSystem.AppendLines(outputPath, "third"); appendError != nil {
		testingHandle.Fatalf("append: %v", appendError)
	}
	content, readError := afero.ReadFile(fileSystem.Backend(), outputPath)
	if readError != nil {
		testingHandle.Fatalf("read: %v", readError)
	}
	if string(content) != "first\nsecond\nthird\n" {
		testingHandle.Fatalf("unexpected content %q", string(content))
	}
}

// TestExistsAndIsDirectory verifies existence checks on the real filesystem.
func TestExistsAndIsDirectory(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	filePath := filepath.Join(rootDirectory, alphaFileName)
	if writeError := os.WriteFile(filePath, []byte("a"), 0o644); writeError != nil {
		testingHandle.Fatalf("write: %v", writeError)
	}
	fileSystem := filesystem.NewOS()
	if !fileSystem.Exists(filePath) || fileSystem.IsDirectory(filePath) {
		testingHandle.Errorf("expected %s to exist as a file", filePath)
	}
	if !fileSystem.Exists(rootDirectory) || !fileSystem.IsDirectory(rootDirectory) {
		testingHandle.Errorf("expected %s to exist as a directory", rootDirectory)
	}
	missingPath := filepath.Join(rootDirectory, "missing")
	if fileSystem.Exists(missingPath) || fileSystem.IsDirectory(missingPath) {
		testingHandle.Errorf("expected %s to be absent", missingPath)
	}
}
