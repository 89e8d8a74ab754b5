package source

import (
	"strings"
	"sync"
)

// File is a source file owned by a compilation session.
// Every Context and token produced from it points back here, so the text
// lives exactly as long as the session that registered it.
type File struct {
	Path    string
	Content string

	once       sync.Once
	lineStarts []int
}

// NewFile creates a file from already-read content.
func NewFile(path, content string) *File {
	return &File{
		Path:    path,
		Content: content,
	}
}

// Line returns the text of the 1-based line n, without its terminator.
// The second result is false when the file has no such line.
func (f *File) Line(n int) (string, bool) {
	f.once.Do(f.indexLines)

	if n < 1 || n > len(f.lineStarts) {
		return "", false
	}

	start := f.lineStarts[n-1]
	end := len(f.Content)
	if n < len(f.lineStarts) {
		end = f.lineStarts[n]
	}

	line := f.Content[start:end]
	if strings.HasSuffix(line, "\n") {
		line = strings.TrimSuffix(line[:len(line)-1], "\r")
	}
	return line, true
}

// LineCount returns the number of lines in the file. A trailing newline
// does not open a new line.
func (f *File) LineCount() int {
	f.once.Do(f.indexLines)
	return len(f.lineStarts)
}

func (f *File) indexLines() {
	if f.Content == "" {
		return
	}

	f.lineStarts = []int{0}
	for i := 0; i < len(f.Content); i++ {
		if f.Content[i] == '\n' && i+1 < len(f.Content) {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
}
