package source

import (
	"fmt"
	"strings"
)

// Context is a span of bytes in a session-owned file.
//
// Line and column are derived on demand by scanning the file from the
// beginning. Nothing is cached, so resolving is linear in Start; callers are
// expected to resolve once per token at print time.
type Context struct {
	Start int // byte offset of the first byte
	Len   int // length in bytes
	File  *File
}

// NewContext creates a span of length n starting at offset start.
func NewContext(file *File, start, n int) Context {
	return Context{
		Start: start,
		Len:   n,
		File:  file,
	}
}

// LineInfo returns the 1-based line and column of the span's start.
// The column counts bytes from the most recent newline.
func (c Context) LineInfo() (line, column int) {
	src := c.File.Content

	line = 1
	lineStart := 0
	for i := 0; i < len(src) && i < c.Start; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	return line, c.Start - lineStart + 1
}

// String returns the compact path:line:column form.
func (c Context) String() string {
	line, col := c.LineInfo()
	return fmt.Sprintf("%s:%d:%d", c.File.Path, line, col)
}

// InContext renders the span as a three line excerpt: the path:line:column
// header, the verbatim source line, and a caret under every byte of the span.
// A span past the last line renders an empty source line.
func (c Context) InContext() string {
	line, col := c.LineInfo()
	lineSrc, _ := c.File.Line(line)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:%d:%d\n", c.File.Path, line, col)
	sb.WriteString(lineSrc)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", col-1))
	sb.WriteString(strings.Repeat("^", c.Len))
	return sb.String()
}

// Location converts the span into start and end positions for diagnostics.
// The end column assumes the span does not cross a newline.
func (c Context) Location() *Location {
	line, col := c.LineInfo()
	start := &Position{Line: line, Column: col, Index: c.Start}
	end := &Position{Line: line, Column: col + c.Len, Index: c.Start + c.Len}
	return NewLocation(start, end)
}
