package lexer

import (
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"funlang/colors"
	"funlang/internal/source"
	"funlang/internal/symbols"
)

// Lexer turns one source file into tokens in a single pass.
//
// Runes that are neither whitespace nor punctuation are collected in an
// accumulator. The accumulator is flushed (classified and emitted) whenever a
// whitespace or punctuation token is emitted. Whitespace is emitted as
// WHITESPACE_TOKEN so positions stay correct, and removed once scanning ends.
type Lexer struct {
	file *source.File
	syms *symbols.Interner

	pos    int
	accum  strings.Builder
	tokens []Token

	// DropTrailing discards text still pending at end of input instead of
	// flushing it, so "x" lexes to nothing while "x " lexes to one token.
	DropTrailing bool

	dropped *source.Context
}

// New creates a lexer for file. Identifiers are interned into syms.
func New(file *source.File, syms *symbols.Interner) *Lexer {
	return &Lexer{
		file:   file,
		syms:   syms,
		tokens: make([]Token, 0),
	}
}

// Tokenize scans the whole file and returns its tokens in source order.
// With debug set, every token is also traced to stderr.
func (lex *Lexer) Tokenize(debug bool) []Token {
	src := lex.file.Content

	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		raw := src[i : i+size]
		i += size

		switch {
		case unicode.IsSpace(r):
			lex.push(Token{Kind: WHITESPACE_TOKEN})
		case r == '(':
			lex.push(Token{Kind: OPEN_PAREN})
		case r == ')':
			lex.push(Token{Kind: CLOSE_PAREN})
		case r == '{':
			lex.push(Token{Kind: OPEN_CURLY})
		case r == '}':
			lex.push(Token{Kind: CLOSE_CURLY})
		case r == ':':
			lex.push(Token{Kind: COLON_TOKEN})
		case r == ',':
			lex.push(Token{Kind: COMMA_TOKEN})
		case r == '|':
			lex.push(Token{Kind: PIPE_TOKEN})
		case r == '=':
			if i >= len(src) {
				lex.push(Token{Kind: WHITESPACE_TOKEN})
				continue
			}

			next, nextSize := utf8.DecodeRuneInString(src[i:])
			nextRaw := src[i : i+nextSize]
			i += nextSize

			switch next {
			case '>':
				lex.push(Token{Kind: FAT_ARROW_TOKEN})
			case ' ':
				// "= " closes the pending text with the '=' attached
				lex.accum.WriteByte('=')
				lex.push(Token{Kind: WHITESPACE_TOKEN})
			default:
				lex.accum.WriteByte('=')
				lex.accum.WriteString(nextRaw)
			}
		default:
			lex.accum.WriteString(raw)
		}
	}

	if lex.accum.Len() > 0 {
		if lex.DropTrailing {
			ctx := source.NewContext(lex.file, lex.pos, lex.accum.Len())
			lex.dropped = &ctx
			lex.accum.Reset()
		} else {
			lex.flush()
		}
	}

	tokens := make([]Token, 0, len(lex.tokens))
	for _, tok := range lex.tokens {
		if tok.Kind == WHITESPACE_TOKEN {
			continue
		}
		tokens = append(tokens, tok)
		if debug {
			colors.GREY.Fprintln(os.Stderr, "    "+tok.String())
		}
	}

	return tokens
}

// Dropped returns the span of trailing text discarded in DropTrailing mode.
func (lex *Lexer) Dropped() (source.Context, bool) {
	if lex.dropped == nil {
		return source.Context{}, false
	}
	return *lex.dropped, true
}

// push flushes pending text, then emits tok at the current position.
func (lex *Lexer) push(tok Token) {
	lex.flush()
	lex.emit(tok)
}

func (lex *Lexer) emit(tok Token) {
	n := tok.Length()
	tok.Context = source.NewContext(lex.file, lex.pos, n)
	lex.tokens = append(lex.tokens, tok)
	lex.pos += n
}

// flush classifies and emits the accumulator, if it holds anything.
func (lex *Lexer) flush() {
	if lex.accum.Len() == 0 {
		return
	}

	text := lex.accum.String()
	lex.accum.Reset()
	lex.emit(lex.classify(text))
}

// classify picks keyword, then integer, then boolean, then identifier.
func (lex *Lexer) classify(text string) Token {
	if IsKeyword(text) {
		return Token{Kind: KEYWORD_TOKEN, Value: text}
	}

	if isInt(text) {
		// digit runs too large for int64 fall through to identifiers
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Token{Kind: NUMBER_TOKEN, Value: text, Int: n}
		}
	}

	if text == "true" || text == "false" {
		return Token{Kind: BOOL_TOKEN, Value: text, Bool: text == "true"}
	}

	return Token{Kind: IDENTIFIER_TOKEN, Value: text, Symbol: lex.syms.Intern(text)}
}

func isInt(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}
