package lexer

import (
	"fmt"
	"strconv"

	"funlang/internal/source"
	"funlang/internal/symbols"
)

// TOKEN is the lexical category of a token.
type TOKEN string

const (
	IDENTIFIER_TOKEN TOKEN = "IDENTIFIER"
	KEYWORD_TOKEN    TOKEN = "KEYWORD"

	// punctuation
	OPEN_PAREN      TOKEN = "("
	CLOSE_PAREN     TOKEN = ")"
	OPEN_CURLY      TOKEN = "{"
	CLOSE_CURLY     TOKEN = "}"
	COLON_TOKEN     TOKEN = ":"
	COMMA_TOKEN     TOKEN = ","
	PIPE_TOKEN      TOKEN = "|"
	FAT_ARROW_TOKEN TOKEN = "=>"

	// literals
	NUMBER_TOKEN TOKEN = "NUMBER"
	BOOL_TOKEN   TOKEN = "BOOL"

	// emitted for every whitespace rune, filtered out before tokens are returned
	WHITESPACE_TOKEN TOKEN = "WHITESPACE"
)

// Keywords is the fixed keyword set of the language.
var Keywords = map[string]bool{
	"fn":     true,
	"let":    true,
	"match":  true,
	"cond":   true,
	"itself": true,
}

// IsKeyword reports whether text is a reserved word
func IsKeyword(text string) bool {
	return Keywords[text]
}

// Token is a classified lexical unit and the span it was read from.
type Token struct {
	Kind TOKEN

	// Value is the keyword or identifier text, or the literal as written.
	Value string
	// Symbol is set for IDENTIFIER_TOKEN only.
	Symbol *symbols.Symbol
	Int    int64 // NUMBER_TOKEN
	Bool   bool  // BOOL_TOKEN

	source.Context
}

// Length is the number of bytes the token accounts for when the lexer
// advances its position. Literals count the length of their canonical
// rendering, not of the text they were read from.
func (t Token) Length() int {
	switch t.Kind {
	case IDENTIFIER_TOKEN:
		return len(t.Symbol.Name)
	case KEYWORD_TOKEN:
		return len(t.Value)
	case NUMBER_TOKEN:
		return len(strconv.FormatInt(t.Int, 10))
	case BOOL_TOKEN:
		return len(strconv.FormatBool(t.Bool))
	case FAT_ARROW_TOKEN:
		return 2
	default:
		return 1
	}
}

// Equal compares kind and payload. Location is ignored.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}

	switch t.Kind {
	case IDENTIFIER_TOKEN:
		return t.Symbol == other.Symbol
	case KEYWORD_TOKEN:
		return t.Value == other.Value
	case NUMBER_TOKEN:
		return t.Int == other.Int
	case BOOL_TOKEN:
		return t.Bool == other.Bool
	default:
		return true
	}
}

// String renders the token with its compact location, e.g.
// "main.fn:1:4 IDENTIFIER(foo)".
func (t Token) String() string {
	return fmt.Sprintf("%s %s", t.Context.String(), t.describe())
}

func (t Token) describe() string {
	switch t.Kind {
	case IDENTIFIER_TOKEN:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Symbol.Name)
	case KEYWORD_TOKEN:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
	case NUMBER_TOKEN:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Int)
	case BOOL_TOKEN:
		return fmt.Sprintf("%s(%t)", t.Kind, t.Bool)
	default:
		return string(t.Kind)
	}
}
