package source

import (
	"strings"
	"testing"
)

const testPath = "main.fn"

func TestLineInfo(t *testing.T) {
	file := NewFile(testPath, "a\nbb\nccc")

	tests := []struct {
		name   string
		start  int
		line   int
		column int
	}{
		{"first byte", 0, 1, 1},
		{"newline itself", 1, 1, 2},
		{"second line", 2, 2, 1},
		{"inside second line", 3, 2, 2},
		{"third line", 5, 3, 1},
		{"last byte", 7, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := NewContext(file, tt.start, 1).LineInfo()
			if line != tt.line || col != tt.column {
				t.Errorf("Expected %d:%d, got %d:%d", tt.line, tt.column, line, col)
			}
		})
	}
}

func TestLineInfoIsRecomputed(t *testing.T) {
	file := NewFile(testPath, "x\ny")
	ctx := NewContext(file, 2, 1)

	first := ctx.String()
	second := ctx.String()
	if first != second {
		t.Errorf("Expected stable output, got %q then %q", first, second)
	}
	if first != "main.fn:2:1" {
		t.Errorf("Expected main.fn:2:1, got %q", first)
	}
}

func TestInContext(t *testing.T) {
	file := NewFile(testPath, "let x\n  match foo")
	ctx := NewContext(file, 8, 5)

	want := "main.fn:2:3\n  match foo\n  ^^^^^"
	if got := ctx.InContext(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestInContextCaretPadding(t *testing.T) {
	file := NewFile(testPath, "fn  someName")
	ctx := NewContext(file, 4, len("someName"))

	lines := strings.Split(ctx.InContext(), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	underline := lines[2]
	if strings.Count(underline, "^") != 8 {
		t.Errorf("Expected 8 carets, got %q", underline)
	}
	if !strings.HasPrefix(underline, strings.Repeat(" ", 4)+"^") {
		t.Errorf("Expected 4 spaces of padding, got %q", underline)
	}
}

func TestInContextPastLastLine(t *testing.T) {
	file := NewFile(testPath, "a\n")
	ctx := NewContext(file, 2, 1)

	want := "main.fn:2:1\n\n^"
	if got := ctx.InContext(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestLocation(t *testing.T) {
	file := NewFile(testPath, "a\nbb")
	loc := NewContext(file, 2, 2).Location()

	if loc.Start.Line != 2 || loc.Start.Column != 1 || loc.Start.Index != 2 {
		t.Errorf("Unexpected start %+v", *loc.Start)
	}
	if loc.End.Line != 2 || loc.End.Column != 3 || loc.End.Index != 4 {
		t.Errorf("Unexpected end %+v", *loc.End)
	}
}

func TestFileLine(t *testing.T) {
	file := NewFile(testPath, "one\r\ntwo\n\nfour\n")

	if file.LineCount() != 4 {
		t.Errorf("Expected 4 lines, got %d", file.LineCount())
	}

	want := []string{"one", "two", "", "four"}
	for i, w := range want {
		got, ok := file.Line(i + 1)
		if !ok {
			t.Fatalf("Expected line %d to exist", i+1)
		}
		if got != w {
			t.Errorf("line %d: expected %q, got %q", i+1, w, got)
		}
	}

	if _, ok := file.Line(5); ok {
		t.Errorf("Expected line 5 to be missing")
	}
	if _, ok := file.Line(0); ok {
		t.Errorf("Expected line 0 to be missing")
	}
}

func TestEmptyFile(t *testing.T) {
	file := NewFile(testPath, "")
	if file.LineCount() != 0 {
		t.Errorf("Expected 0 lines, got %d", file.LineCount())
	}
	if _, ok := file.Line(1); ok {
		t.Errorf("Expected no lines in an empty file")
	}
}
