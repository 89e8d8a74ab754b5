// Package context provides the compilation session shared by all phases.
//
// A CompilerContext owns everything one run of the front end needs: the
// options, the diagnostics, the source files and the symbol interner.
// Phases are workers that receive the context and operate on the files
// registered in it. Nothing outlives the context, so two sessions never
// share symbols or source text.
package context

import (
	"fmt"
	"io"
	"os"
	"sync"

	"funlang/colors"
	"funlang/internal/diagnostics"
	"funlang/internal/frontend/lexer"
	"funlang/internal/source"
	"funlang/internal/symbols"
)

// CompilationPhase tracks how far the session has progressed
type CompilationPhase int

const (
	PhaseInitial   CompilationPhase = iota // Not started
	PhaseDiscovery                         // Reading source files
	PhaseLexing                            // Tokenizing source files
	PhaseComplete                          // All phases finished
)

// CompilerContext is the central hub for all compilation state.
type CompilerContext struct {
	// Diagnostics collects errors and warnings from every phase
	Diagnostics *diagnostics.DiagnosticBag

	// Sources lets diagnostics render lines of registered files
	Sources *diagnostics.SourceCache

	// Symbols interns identifier text for this session only
	Symbols *symbols.Interner

	// Files maps absolute file path -> SourceFile
	Files map[string]*SourceFile

	// FileOrder tracks the order files were added
	FileOrder []string

	CurrentPhase CompilationPhase

	// Options is fixed for the lifetime of the context
	Options *CompilerOptions

	mu sync.RWMutex
}

// SourceFile is a registered file and the tokens produced from it.
type SourceFile struct {
	*source.File

	Tokens []lexer.Token
}

// New starts a new compilation session.
func New(options *CompilerOptions) *CompilerContext {
	if options == nil {
		options = &CompilerOptions{}
	}

	return &CompilerContext{
		Diagnostics:  diagnostics.NewDiagnosticBag(),
		Sources:      diagnostics.NewSourceCache(),
		Symbols:      symbols.NewInterner(),
		Files:        make(map[string]*SourceFile),
		FileOrder:    make([]string, 0),
		CurrentPhase: PhaseInitial,
		Options:      options,
	}
}

// AddFile registers a source file under key. path is the name used when
// printing locations. Registering the same key twice returns the first file.
func (ctx *CompilerContext) AddFile(key, path, content string) *SourceFile {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if file, ok := ctx.Files[key]; ok {
		return file
	}

	file := &SourceFile{
		File: source.NewFile(path, content),
	}

	ctx.Files[key] = file
	ctx.FileOrder = append(ctx.FileOrder, key)
	ctx.Sources.Add(file.File)

	return file
}

// GetFile retrieves a source file by key.
// Returns nil if the file hasn't been registered.
func (ctx *CompilerContext) GetFile(key string) *SourceFile {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.Files[key]
}

// GetAllFiles returns all registered files in the order they were added.
func (ctx *CompilerContext) GetAllFiles() []*SourceFile {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()

	files := make([]*SourceFile, 0, len(ctx.FileOrder))
	for _, key := range ctx.FileOrder {
		files = append(files, ctx.Files[key])
	}
	return files
}

// LexFile tokenizes a single registered file into file.Tokens.
// Lexing cannot fail; dropped trailing text is reported as a warning.
func (ctx *CompilerContext) LexFile(file *SourceFile) {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "  Tokenizing %s (%d bytes)\n", file.Path, len(file.Content))
	}

	tokenizer := lexer.New(file.File, ctx.Symbols)
	tokenizer.DropTrailing = ctx.Options.DropTrailing

	file.Tokens = tokenizer.Tokenize(ctx.Options.Debug)

	if dropped, ok := tokenizer.Dropped(); ok {
		ctx.Diagnostics.Add(diagnostics.DroppedTrailingText(dropped))
	}

	if ctx.Options.Debug {
		colors.GREY.Fprintln(os.Stderr, fmt.Sprintf("    Generated %d tokens, %d symbols interned", len(file.Tokens), ctx.Symbols.Len()))
	}
}

// HasErrors returns true if any errors have been reported.
func (ctx *CompilerContext) HasErrors() bool {
	return ctx.Diagnostics.HasErrors()
}

// EmitDiagnostics writes all collected diagnostics to w.
func (ctx *CompilerContext) EmitDiagnostics(w io.Writer) {
	ctx.Diagnostics.EmitAll(w, ctx.Sources)
}
