// Package lexer tokenizes Carlo source text into a flat token stream,
// per spec §4.3. Scanning never aborts: unrecognised characters become
// Unknown tokens and are reported as non-fatal diagnostics.
package lexer

import (
	"github.com/hobbsbros/carlo/internal/diagnostics"
	"github.com/hobbsbros/carlo/internal/token"
)

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithTracing sets the Lexer's tracing flag (never used by production
// callers). The scanner does not read the flag, so it produces no trace
// output.
func WithTracing(trace bool) Option {
	return func(l *Lexer) { l.tracing = trace }
}

// Lexer scans a rune slice into tokens.
type Lexer struct {
	runes  []rune
	pos    int
	line   int
	column int

	tracing bool
	report  *diagnostics.Report
}

// New constructs a Lexer over src. report receives non-fatal
// diagnostics for unrecognised characters; pass nil to discard them.
func New(src string, report *diagnostics.Report, opts ...Option) *Lexer {
	l := &Lexer{
		runes:  []rune(src),
		line:   1,
		column: 1,
		report: report,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize scans the entire input and returns the resulting token
// sequence. It never returns an error: all failures are non-fatal
// diagnostics recorded on the Lexer's Report.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok, ok := l.next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.runes)
}

func (l *Lexer) peek() rune {
	if l.atEOF() {
		return 0
	}
	return l.runes[l.pos]
}

func (l *Lexer) advance() rune {
	r := l.runes[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// next scans and returns the next token, or ok=false at end of input.
func (l *Lexer) next() (token.Token, bool) {
	l.skipSpacing()
	if l.atEOF() {
		return token.Token{}, false
	}

	startPos := token.Position{Line: l.line, Column: l.column}

	if l.peek() == '\n' {
		l.advance()
		return token.Token{Class: token.Newline, Text: "\n", Pos: startPos}, true
	}

	class := token.SeedClass(l.peek())

	var text []rune
	comment, header, paragraph := false, false, false
	lastWasExp := false

	for !l.atEOF() {
		c := l.peek()

		if (c == ' ' || c == ';') && !comment && !header && !paragraph {
			l.advance()
			break
		}

		if c == '\n' {
			comment, header, paragraph = false, false, false
		}

		switch {
		case comment || header || paragraph:
			text = append(text, c)
		case class == token.Identifier && (isLetter(c) || isDigit(c) || c == '_'):
			text = append(text, c)
		case class == token.Assignment && c == '=':
			text = append(text, c)
		case class == token.Plus && c == '+':
			text = append(text, c)
		case class == token.Minus && c == '-':
			text = append(text, c)
		case class == token.Times && c == '*':
			text = append(text, c)
		case class == token.Divide && c == '/':
			text = append(text, c)
		case class == token.OpenParen && c == '(':
			text = append(text, c)
		case class == token.CloseParen && c == ')':
			text = append(text, c)
		case class == token.Symbolic && c == '&':
			text = append(text, c)
		case class == token.FullSymbolic && c == '!':
			text = append(text, c)
		case class == token.Comma && c == ',':
			text = append(text, c)
		case class == token.Header && c == '@':
			header = true
			text = append(text, c)
		case class == token.Paragraph && c == '~' && len(text) == 0:
			paragraph = true
			// the leading '~' marker itself is discarded
		case class == token.Comment && c == '#':
			comment = true
			text = append(text, c)
		case class == token.Number && isNumberContinuation(c, lastWasExp):
			text = append(text, c)
			lastWasExp = c == 'e' || c == 'E'
		case class == token.Unknown && len(text) == 0:
			text = append(text, c)
		default:
			goto done
		}
		l.advance()
	}
done:

	if len(text) == 0 && class == token.Unknown {
		// defensive forward-progress guard: the Unknown case above always
		// takes the seed character, so text is not empty here in practice
		// (skipSpacing already strips ' '/';' before class is computed,
		// so this can't double-consume a break char).
		l.advance()
	}

	s := string(text)

	if class == token.Unknown && l.report != nil {
		l.report.Warn(diagnostics.InvalidCharacter, startPos, "unrecognised character %q", s)
	}

	if class == token.Identifier && s == "let" {
		class = token.Let
	}

	return token.Token{Class: class, Text: s, Pos: startPos}, true
}

// skipSpacing consumes leading spaces, tabs, and semicolons (but not
// newlines, which are emitted as their own Newline token by next()).
// Per spec §4.3, ' ' and ';' are both token break characters that
// never themselves seed a token; skipping them here — before
// token.SeedClass ever sees one — keeps a lone ';' from seeding a
// bogus empty Unknown token.
func (l *Lexer) skipSpacing() {
	for !l.atEOF() && (l.peek() == ' ' || l.peek() == '\t' || l.peek() == ';') {
		l.advance()
	}
}

// isNumberContinuation reports whether c continues a Number token. A
// `+`/`-` only continues immediately after an `e`/`E` in the same
// token (see DESIGN.md's Open Question decisions for why this is
// stricter than a bare digit/`.`/`e` grammar).
func isNumberContinuation(c rune, lastWasExp bool) bool {
	switch {
	case isDigit(c), c == '.', c == 'e', c == 'E':
		return true
	case c == '+' || c == '-':
		return lastWasExp
	default:
		return false
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
