// Package colors styles compiler output for the terminal.
//
// All styles render through one lipgloss renderer bound to stderr, so color
// support is detected from the stream diagnostics are written to. When stderr
// is not a terminal every style degrades to plain text.
package colors

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var renderer = lipgloss.NewRenderer(os.Stderr)

// COLOR is a terminal style for a single piece of text
type COLOR struct {
	style lipgloss.Style
}

func newColor(ansi string, bold bool) COLOR {
	return COLOR{
		style: renderer.NewStyle().
			Foreground(lipgloss.Color(ansi)).
			Bold(bold).
			TabWidth(lipgloss.NoTabConversion),
	}
}

var (
	RED    = newColor("1", false)
	GREEN  = newColor("2", false)
	YELLOW = newColor("3", false)
	BLUE   = newColor("4", false)
	PURPLE = newColor("5", false)
	CYAN   = newColor("6", false)
	GREY   = newColor("8", false)

	BOLD_RED    = newColor("1", true)
	BOLD_GREEN  = newColor("2", true)
	BOLD_YELLOW = newColor("3", true)
	BOLD_PURPLE = newColor("5", true)
	BOLD_CYAN   = newColor("6", true)
)

// SetEnabled forces styling on or off regardless of terminal detection.
func SetEnabled(enabled bool) {
	if enabled {
		renderer.SetColorProfile(termenv.ANSI)
		return
	}
	renderer.SetColorProfile(termenv.Ascii)
}

// Sprint formats like fmt.Sprint and applies the style.
func (c COLOR) Sprint(a ...any) string {
	return c.style.Render(fmt.Sprint(a...))
}

// Sprintf formats like fmt.Sprintf and applies the style.
func (c COLOR) Sprintf(format string, a ...any) string {
	return c.style.Render(fmt.Sprintf(format, a...))
}

func (c COLOR) Fprint(w io.Writer, a ...any) {
	fmt.Fprint(w, c.Sprint(a...))
}

func (c COLOR) Fprintf(w io.Writer, format string, a ...any) {
	fmt.Fprint(w, c.Sprintf(format, a...))
}

func (c COLOR) Fprintln(w io.Writer, a ...any) {
	fmt.Fprintln(w, c.Sprint(a...))
}
