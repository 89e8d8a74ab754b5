// Package context - compilation pipeline
//
// Phase progression:
//
//	Entry -> [File Discovery] -> Lexer -> Exit
//
// Each phase reads what the previous one stored on the SourceFiles and
// reports problems to ctx.Diagnostics.
package context

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"funlang/colors"
	"funlang/internal/diagnostics"
)

// Pipeline manages the compilation pipeline
type Pipeline struct {
	Context *CompilerContext
}

// NewPipeline creates a pipeline running over ctx
func NewPipeline(ctx *CompilerContext) *Pipeline {
	return &Pipeline{
		Context: ctx,
	}
}

// Compile reads the entry point and tokenizes it.
// Returns an error only for fatal failures; the matching diagnostic is
// already in the context.
func (p *Pipeline) Compile(entryPoint string) error {
	// Phase 0: File Discovery
	if err := p.addNewFile(entryPoint); err != nil {
		return err
	}

	// Phase 1: Lexer
	p.runLexerPhase()

	p.Context.CurrentPhase = PhaseComplete

	if p.Context.HasErrors() {
		return fmt.Errorf("lexing failed with errors")
	}

	return nil
}

// addNewFile reads a source file and registers it in the context
func (p *Pipeline) addNewFile(filePath string) error {
	p.Context.CurrentPhase = PhaseDiscovery
	p.phaseHeader("[Phase 0] File Discovery")

	content, err := os.ReadFile(filePath)
	if err != nil {
		p.Context.Diagnostics.Add(diagnostics.UnreadableFile(filePath, err))
		return fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	if !utf8.Valid(content) {
		p.Context.Diagnostics.Add(diagnostics.InvalidEncoding(filePath))
		return fmt.Errorf("failed to read file %s: invalid UTF-8", filePath)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		absPath = filePath
	}
	p.Context.AddFile(absPath, filePath, string(content))

	if p.Context.Options.Debug {
		fmt.Fprintf(os.Stderr, "  Registered: %s (%d bytes)\n", absPath, len(content))
	}

	return nil
}

// runLexerPhase tokenizes all registered source files
func (p *Pipeline) runLexerPhase() {
	p.Context.CurrentPhase = PhaseLexing
	p.phaseHeader("[Phase 1] Lexer")

	for _, file := range p.Context.GetAllFiles() {
		p.Context.LexFile(file)
	}

	if p.Context.Options.Debug {
		colors.GREEN.Fprintln(os.Stderr, "  ✓ Tokenization complete")
	}
}

func (p *Pipeline) phaseHeader(title string) {
	if p.Context.Options.Debug {
		fmt.Fprintln(os.Stderr)
		colors.BOLD_CYAN.Fprintln(os.Stderr, title)
	}
}
