package diagnostics

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"funlang/colors"
	"funlang/internal/source"
)

func TestMain(m *testing.M) {
	colors.SetEnabled(false)
	os.Exit(m.Run())
}

func TestBagCounts(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(NewError("first"))
	bag.Add(NewWarning("second"))
	bag.Add(NewError("third"))

	if !bag.HasErrors() {
		t.Errorf("Expected errors")
	}
	if bag.ErrorCount() != 2 {
		t.Errorf("Expected 2 errors, got %d", bag.ErrorCount())
	}
	if bag.WarningCount() != 1 {
		t.Errorf("Expected 1 warning, got %d", bag.WarningCount())
	}
	if len(bag.Diagnostics()) != 3 {
		t.Errorf("Expected 3 diagnostics, got %d", len(bag.Diagnostics()))
	}

	bag.Clear()
	if bag.HasErrors() || len(bag.Diagnostics()) != 0 {
		t.Errorf("Expected empty bag after Clear")
	}
}

func TestDiagnosticError(t *testing.T) {
	diag := UnreadableFile("missing.fn", errors.New("no such file"))

	want := "error[E0002]: could not read file missing.fn"
	if diag.Error() != want {
		t.Errorf("Expected %q, got %q", want, diag.Error())
	}
	if len(diag.Notes) != 1 || diag.Notes[0] != "no such file" {
		t.Errorf("Expected the cause as a note, got %v", diag.Notes)
	}
}

func TestEmitWithoutLabel(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(MissingSourceFile("funlang <file>"))

	var buf bytes.Buffer
	bag.EmitAll(&buf, nil)

	want := "error[E0001]: no source file given\n" +
		"  = help: usage: funlang <file>\n" +
		"\n" +
		"Lexing failed with 1 error(s)\n"
	if buf.String() != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestEmitDroppedTrailingText(t *testing.T) {
	file := source.NewFile("main.fn", "let x\nfoo")
	cache := NewSourceCache()
	cache.Add(file)

	bag := NewDiagnosticBag()
	bag.Add(DroppedTrailingText(source.NewContext(file, 6, 3)))

	var buf bytes.Buffer
	bag.EmitAll(&buf, cache)

	want := strings.Join([]string{
		"warning[W0001]: trailing text was not tokenized",
		"  --> main.fn:2:1",
		"  |",
		"1 | let x",
		"2 | foo",
		"  | ~~~ dropped at end of input",
		"  |",
		"  = note: drop_trailing is enabled, so text not followed by whitespace or punctuation is discarded",
		"  = help: end the file with a newline, or disable drop_trailing",
		"",
		"Lexing succeeded with 1 warning(s)",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestEmitSingleCharacterSpan(t *testing.T) {
	file := source.NewFile("main.fn", "  x")
	cache := NewSourceCache()
	cache.Add(file)

	var buf bytes.Buffer
	NewEmitter(&buf, cache).Emit(NewError("bad").WithSpan(source.NewContext(file, 2, 1), ""))

	if !strings.Contains(buf.String(), "1 |   x\n  |   ^\n") {
		t.Errorf("Expected a single caret under x, got:\n%s", buf.String())
	}
}

func TestSourceCacheReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.fn")
	if err := os.WriteFile(path, []byte("fn a\nfn b\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	cache := NewSourceCache()
	line, err := cache.GetLine(path, 2)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if line != "fn b" {
		t.Errorf("Expected %q, got %q", "fn b", line)
	}

	if _, err := cache.GetLine(path, 3); err == nil {
		t.Errorf("Expected out of range error")
	}
	if _, err := cache.GetLine(filepath.Join(t.TempDir(), "nope.fn"), 1); err == nil {
		t.Errorf("Expected error for missing file")
	}
}
