package diagnostics

import (
	"fmt"

	"funlang/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // underlined with ^ or ~
	Secondary                   // underlined with -
)

// Label points a diagnostic at a span of a file
type Label struct {
	FilePath string
	Location *source.Location
	Message  string
	Style    LabelStyle
}

// Diagnostic is a problem reported to the user. Lexing itself never fails,
// so diagnostics describe environmental failures and dropped input.
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string // E0001, W0001, ...
	Labels   []Label
	Notes    []string
	Help     string
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Error,
		Message:  message,
	}
}

// NewWarning creates a new warning diagnostic
func NewWarning(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Warning,
		Message:  message,
	}
}

// WithCode sets the diagnostic code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithPrimaryLabel adds a primary labeled location
func (d *Diagnostic) WithPrimaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	d.Labels = append(d.Labels, Label{FilePath: filepath, Location: loc, Message: message, Style: Primary})
	return d
}

// WithSecondaryLabel adds a secondary labeled location
func (d *Diagnostic) WithSecondaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	d.Labels = append(d.Labels, Label{FilePath: filepath, Location: loc, Message: message, Style: Secondary})
	return d
}

// WithSpan adds a primary label covering a lexer span.
func (d *Diagnostic) WithSpan(ctx source.Context, message string) *Diagnostic {
	return d.WithPrimaryLabel(ctx.File.Path, ctx.Location(), message)
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, message)
	return d
}

// WithHelp sets a suggestion for fixing the problem
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// Error implements the error interface with a one-line summary.
func (d *Diagnostic) Error() string {
	if d.Code == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s[%s]: %s", d.Severity, d.Code, d.Message)
}
