package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"funlang/colors"
	"funlang/internal/source"
)

const (
	STR_MULTIPLIER = "%*d | "
)

// SourceCache holds the files diagnostics may point into.
// Files registered by the session are used as-is; anything else is read
// from disk on first use.
type SourceCache struct {
	mu    sync.Mutex
	files map[string]*source.File
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string]*source.File),
	}
}

// Add registers an already loaded file under its path
func (sc *SourceCache) Add(file *source.File) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.files[file.Path] = file
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	sc.mu.Lock()
	file, ok := sc.files[filepath]
	sc.mu.Unlock()

	if !ok {
		content, err := os.ReadFile(filepath)
		if err != nil {
			return "", err
		}
		file = source.NewFile(filepath, string(content))
		sc.Add(file)
	}

	text, ok := file.Line(line)
	if !ok {
		return "", fmt.Errorf("line %d out of range", line)
	}
	return text, nil
}

// Emitter renders diagnostics to a writer
type Emitter struct {
	w     io.Writer
	cache *SourceCache
}

// NewEmitter creates an emitter writing to w. A nil cache reads files from disk.
func NewEmitter(w io.Writer, cache *SourceCache) *Emitter {
	if cache == nil {
		cache = NewSourceCache()
	}
	return &Emitter{
		w:     w,
		cache: cache,
	}
}

// Emit renders one diagnostic followed by a blank line
func (e *Emitter) Emit(diag *Diagnostic) {
	e.printHeader(diag)

	for _, label := range diag.Labels {
		e.printLabel(label, diag.Severity)
	}

	for _, note := range diag.Notes {
		colors.CYAN.Fprint(e.w, "  = note: ")
		fmt.Fprintln(e.w, note)
	}

	if diag.Help != "" {
		colors.GREEN.Fprint(e.w, "  = help: ")
		fmt.Fprintln(e.w, diag.Help)
	}

	fmt.Fprintln(e.w)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := e.getSeverityColor(diag.Severity, true)

	color.Fprint(e.w, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.w, "[%s]", diag.Code)
	}
	fmt.Fprint(e.w, ": ")
	color.Fprintln(e.w, diag.Message)
}

func (e *Emitter) printLabel(label Label, severity Severity) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}

	start := label.Location.Start
	end := label.Location.End
	if end == nil {
		end = start
	}

	colors.BLUE.Fprintln(e.w, fmt.Sprintf("  --> %s:%d:%d", label.FilePath, start.Line, start.Column))

	lineNumWidth := len(fmt.Sprintf("%d", start.Line))
	gutter := strings.Repeat(" ", lineNumWidth)

	colors.GREY.Fprintln(e.w, gutter+" |")

	// previous non-blank line for context
	if start.Line > 1 {
		prevLine, err := e.cache.GetLine(label.FilePath, start.Line-1)
		if err == nil && strings.TrimSpace(prevLine) != "" {
			colors.GREY.Fprintf(e.w, STR_MULTIPLIER, lineNumWidth, start.Line-1)
			colors.GREY.Fprintln(e.w, prevLine)
		}
	}

	sourceLine, err := e.cache.GetLine(label.FilePath, start.Line)
	if err != nil {
		// the span sits past the last line, e.g. at end of input
		sourceLine = ""
	}

	colors.GREY.Fprintf(e.w, STR_MULTIPLIER, lineNumWidth, start.Line)
	fmt.Fprintln(e.w, sourceLine)

	colors.GREY.Fprint(e.w, gutter+" | ")

	length := end.Column - start.Column
	if end.Line != start.Line || length <= 0 {
		length = 1
	}

	underlineColor := colors.BLUE
	underlineChar := "-"
	if label.Style == Primary {
		underlineColor = e.getSeverityColor(severity, false)
		underlineChar = "^"
		if length > 1 {
			underlineChar = "~"
		}
	}

	fmt.Fprint(e.w, strings.Repeat(" ", start.Column-1))
	underline := strings.Repeat(underlineChar, length)
	if label.Message != "" {
		underline += " " + label.Message
	}
	underlineColor.Fprintln(e.w, underline)

	colors.GREY.Fprintln(e.w, gutter+" |")
}

// getSeverityColor returns the color for a given severity
func (e *Emitter) getSeverityColor(severity Severity, bold bool) colors.COLOR {
	switch severity {
	case Warning:
		if bold {
			return colors.BOLD_YELLOW
		}
		return colors.YELLOW
	default:
		if bold {
			return colors.BOLD_RED
		}
		return colors.RED
	}
}
