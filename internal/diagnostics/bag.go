package diagnostics

import (
	"fmt"
	"io"
	"sync"
)

// DiagnosticBag collects diagnostics during a compilation session
type DiagnosticBag struct {
	diagnostics []*Diagnostic
	mu          sync.Mutex
	errorCount  int
	warnCount   int
}

// NewDiagnosticBag creates an empty diagnostic bag
func NewDiagnosticBag() *DiagnosticBag {
	return &DiagnosticBag{
		diagnostics: make([]*Diagnostic, 0),
	}
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diagnostics = append(db.diagnostics, diag)

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// WarningCount returns the number of warnings
func (db *DiagnosticBag) WarningCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.warnCount
}

// Diagnostics returns a copy of all diagnostics in the order they were added
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]*Diagnostic, len(db.diagnostics))
	copy(out, db.diagnostics)
	return out
}

// EmitAll renders every diagnostic to w, followed by a summary line when
// anything was reported.
func (db *DiagnosticBag) EmitAll(w io.Writer, cache *SourceCache) {
	emitter := NewEmitter(w, cache)

	for _, diag := range db.Diagnostics() {
		emitter.Emit(diag)
	}

	db.printSummary(w)
}

func (db *DiagnosticBag) printSummary(w io.Writer) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.errorCount > 0 {
		fmt.Fprintf(w, "Lexing failed with %d error(s)", db.errorCount)
		if db.warnCount > 0 {
			fmt.Fprintf(w, " and %d warning(s)", db.warnCount)
		}
		fmt.Fprintln(w)
	} else if db.warnCount > 0 {
		fmt.Fprintf(w, "Lexing succeeded with %d warning(s)\n", db.warnCount)
	}
}

// Clear removes all diagnostics
func (db *DiagnosticBag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.errorCount = 0
	db.warnCount = 0
}
