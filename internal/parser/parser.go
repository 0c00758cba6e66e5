// Package parser implements Carlo's Pratt parser: a registry of
// prefix/infix parselets keyed by token class, driving a single
// precedence-climbing parseExpr loop, per spec §4.4.
package parser

import (
	"strconv"
	"strings"

	"github.com/hobbsbros/carlo/internal/ast"
	"github.com/hobbsbros/carlo/internal/diagnostics"
	"github.com/hobbsbros/carlo/internal/token"
	"github.com/hobbsbros/carlo/internal/units"
)

// prefixFn parses a sub-expression starting at tok, which has already
// been consumed.
type prefixFn func(p *Parser, tok token.Token, nesting int) ast.Expression

// infixFn folds tok (already consumed) and the following right operand
// into left.
type infixFn func(p *Parser, left ast.Expression, tok token.Token, nesting int) ast.Expression

// Parser drives token-at-a-time parsing over a flat token slice.
type Parser struct {
	tokens []token.Token
	pos    int
	report *diagnostics.Report

	prefix map[token.Class]prefixFn
	infix  map[token.Class]infixFn
}

// New constructs a Parser over tokens. report receives non-fatal
// diagnostics for malformed input; pass nil to discard them.
func New(tokens []token.Token, report *diagnostics.Report) *Parser {
	p := &Parser{
		tokens: tokens,
		report: report,
		prefix: make(map[token.Class]prefixFn),
		infix:  make(map[token.Class]infixFn),
	}

	p.prefix[token.Number] = parseNumber
	p.prefix[token.Minus] = parseNumber
	p.prefix[token.Identifier] = parseIdentifier
	p.prefix[token.Symbolic] = parseSymbolic
	p.prefix[token.FullSymbolic] = parseFullSymbolic
	p.prefix[token.Let] = parseAssignment
	p.prefix[token.OpenParen] = parseParenthesis
	p.prefix[token.Header] = parseHeader
	p.prefix[token.Paragraph] = parseParagraph

	p.infix[token.Assignment] = parseReassignment
	p.infix[token.Plus] = parseBinaryOperation
	p.infix[token.Minus] = parseBinaryOperation
	p.infix[token.Times] = parseBinaryOperation
	p.infix[token.Divide] = parseBinaryOperation
	p.infix[token.OpenParen] = parseFunctionCall

	return p
}

// Parse consumes the entire token stream, returning one Expression per
// top-level statement.
func (p *Parser) Parse() []ast.Expression {
	var exprs []ast.Expression
	for p.pos < len(p.tokens) {
		exprs = append(exprs, p.parseExpr(0, 0))
	}
	return exprs
}

// parseExpr is the Pratt driver: consume one token, dispatch to its
// prefix parselet, then fold in infix operators while their precedence
// exceeds the caller's.
func (p *Parser) parseExpr(precedence int, nesting int) ast.Expression {
	tok, ok := p.nextUnwrap()
	if !ok {
		return ast.Null{}
	}
	if tok.Is(token.Newline) || tok.Is(token.Comment) {
		return ast.Null{}
	}

	prefix, ok := p.prefix[tok.Class]
	if !ok {
		p.warnf(diagnostics.CouldNotParse, tok.Pos, "no prefix parselet for %s", strings.ReplaceAll(tok.Text, "\n", "newline"))
		return ast.Null{}
	}

	expr := prefix(p, tok, nesting)

	for precedence < p.peekPrecedence() {
		peek, ok := p.peekTok()
		if !ok {
			return expr
		}
		infix, ok := p.infix[peek.Class]
		if !ok {
			return expr
		}
		p.pos++
		expr = infix(p, expr, peek, nesting)
	}

	return expr
}

func (p *Parser) peekTok() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) peekPrecedence() int {
	tok, ok := p.peekTok()
	if !ok {
		return 0
	}
	return tok.Class.Precedence()
}

func (p *Parser) nextUnwrap() (token.Token, bool) {
	tok, ok := p.peekTok()
	if !ok {
		p.warnf(diagnostics.UnexpectedEOF, token.Position{}, "unexpected end of input")
		return token.Token{}, false
	}
	p.pos++
	return tok, true
}

// expect consumes the next token, warning and reporting ok=false if its
// class doesn't match want.
func (p *Parser) expect(want token.Class) (token.Token, bool) {
	tok, ok := p.nextUnwrap()
	if !ok {
		return token.Token{}, false
	}
	if tok.Class != want {
		p.warnf(diagnostics.Expected, tok.Pos, "expected %s, found %s", want, tok.Class)
		return tok, false
	}
	return tok, true
}

func (p *Parser) warnf(kind diagnostics.Kind, pos token.Position, format string, args ...any) {
	if p.report == nil {
		return
	}
	p.report.Warn(kind, pos, format, args...)
}

// parseNumber handles the Number prefix parselet, including unary
// minus and the trailing unit-suffix grammar (spec §4.4).
func parseNumber(p *Parser, tok token.Token, nesting int) ast.Expression {
	negative := false
	numTok := tok
	if tok.Is(token.Minus) {
		negative = true
		var ok bool
		numTok, ok = p.expect(token.Number)
		if !ok {
			return ast.Null{}
		}
	}

	value, err := strconv.ParseFloat(numTok.Text, 64)
	if err != nil {
		p.warnf(diagnostics.CouldNotParseNumber, numTok.Pos, "could not parse number %q", numTok.Text)
		return ast.Null{}
	}
	if negative {
		value = -value
	}

	dim := units.Dimension{}
	for {
		peek, ok := p.peekTok()
		if !ok || !peek.Is(token.Identifier) {
			break
		}
		mult, unitDim, ok := parseUnitSuffix(peek.Text)
		if !ok {
			break
		}
		p.pos++
		value *= mult
		dim = dim.Add(unitDim)
	}

	return &ast.Float{Value: value, Dim: dim}
}

// parseUnitSuffix parses the `(prefix?)(name)(exponent?)` grammar of a
// unit suffix attached to a numeric literal: an optional single SI
// prefix letter, a unit name, and an optional exponent (`_` marks a
// negative sign, followed by digits; e.g. `m_2` = m⁻², `kg2` = kg²).
func parseUnitSuffix(text string) (multiplier float64, dim units.Dimension, ok bool) {
	base, exp, hasExp := splitExponent(text)

	mult0, dim0, found := units.Lookup(base)
	if !found {
		return 0, units.Dimension{}, false
	}
	if !hasExp {
		return mult0, dim0, true
	}

	return pow(mult0, exp), dim0.Scale(exp), true
}

// splitExponent strips a trailing `_?digits` exponent suffix from s,
// returning the remaining base text and the signed exponent.
func splitExponent(s string) (base string, exp float64, ok bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	digits := s[i:]
	if digits == "" {
		return s, 0, false
	}

	base = s[:i]
	negative := strings.HasSuffix(base, "_")
	if negative {
		base = base[:len(base)-1]
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return s, 0, false
	}
	if negative {
		n = -n
	}
	return base, float64(n), true
}

func pow(base, exp float64) float64 {
	result := 1.0
	n := int(exp)
	neg := n < 0
	if neg {
		n = -n
	}
	for i := 0; i < n; i++ {
		result *= base
	}
	if neg {
		result = 1 / result
	}
	return result
}

func parseIdentifier(_ *Parser, tok token.Token, _ int) ast.Expression {
	return &ast.Identifier{Name: tok.Text}
}

func parseSymbolic(p *Parser, _ token.Token, _ int) ast.Expression {
	idTok, ok := p.expect(token.Identifier)
	if !ok {
		return ast.Null{}
	}
	return &ast.Symbolic{Name: idTok.Text}
}

func parseFullSymbolic(p *Parser, _ token.Token, _ int) ast.Expression {
	idTok, ok := p.expect(token.Identifier)
	if !ok {
		return ast.Null{}
	}
	return &ast.FullSymbolic{Name: idTok.Text}
}

// parseAssignment handles the `let name = right` prefix parselet.
func parseAssignment(p *Parser, tok token.Token, nesting int) ast.Expression {
	idTok, ok := p.expect(token.Identifier)
	if !ok {
		return ast.Null{}
	}
	if _, ok := p.expect(token.Assignment); !ok {
		return ast.Null{}
	}
	right := p.parseExpr(tok.Class.Precedence(), nesting+1)
	return &ast.Assignment{Name: idTok.Text, Right: right}
}

// parseReassignment handles the `name = right` infix parselet; the
// left operand must already be an Identifier.
func parseReassignment(p *Parser, left ast.Expression, tok token.Token, nesting int) ast.Expression {
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.warnf(diagnostics.CouldNotParse, tok.Pos, "reassignment requires an identifier on the left")
		return ast.Null{}
	}
	right := p.parseExpr(tok.Class.Precedence(), nesting+1)
	return &ast.Reassignment{Name: ident.Name, Right: right}
}

var opForClass = map[token.Class]ast.Op{
	token.Plus:   ast.Add,
	token.Minus:  ast.Sub,
	token.Times:  ast.Mul,
	token.Divide: ast.Div,
}

// parseBinaryOperation handles `+ − × ÷` infix parselets, constant
// folding immediately when both sides are already Float (spec §4.5).
func parseBinaryOperation(p *Parser, left ast.Expression, tok token.Token, nesting int) ast.Expression {
	right := p.parseExpr(tok.Class.Precedence(), nesting+1)
	op := opForClass[tok.Class]

	folded, mismatches := ast.Fold(left, op, right)
	for _, m := range mismatches {
		p.warnf(diagnostics.UnmatchedUnits, tok.Pos, "unmatched units on %s (%g vs %g)", m.Axis, m.Left, m.Right)
	}
	return folded
}

// parseParenthesis handles a parenthesised sub-expression.
func parseParenthesis(p *Parser, tok token.Token, nesting int) ast.Expression {
	inner := p.parseExpr(tok.Class.Precedence(), nesting+1)
	next, ok := p.nextUnwrap()
	if !ok || next.Class != token.CloseParen {
		p.warnf(diagnostics.Expected, next.Pos, "expected %s, found %s", token.CloseParen, next.Class)
		return ast.Null{}
	}
	return inner
}

// parseFunctionCall handles `name(arg, arg, ...)`; the left operand
// must be an Identifier naming the function.
func parseFunctionCall(p *Parser, left ast.Expression, tok token.Token, nesting int) ast.Expression {
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.warnf(diagnostics.CouldNotParse, tok.Pos, "function call requires an identifier")
		return ast.Null{}
	}

	var args []ast.Expression
	if peek, ok := p.peekTok(); !ok || peek.Class != token.CloseParen {
		for {
			args = append(args, p.parseExpr(tok.Class.Precedence(), nesting+1))
			peek, ok := p.peekTok()
			if !ok || peek.Class != token.Comma {
				break
			}
			p.pos++
		}
	}

	next, ok := p.nextUnwrap()
	if !ok || next.Class != token.CloseParen {
		p.warnf(diagnostics.Expected, next.Pos, "expected %s, found %s", token.CloseParen, next.Class)
		return ast.Null{}
	}

	return &ast.FnCall{Name: ident.Name, Args: args}
}

// parseHeader dispatches on leading `@` run length to Header,
// Subheader, or Subsubheader.
func parseHeader(_ *Parser, tok token.Token, _ int) ast.Expression {
	text := tok.Text
	switch {
	case strings.HasPrefix(text, "@@@"):
		return &ast.Subsubheader{Text: strings.TrimSpace(text[3:])}
	case strings.HasPrefix(text, "@@"):
		return &ast.Subheader{Text: strings.TrimSpace(text[2:])}
	default:
		return &ast.Header{Text: strings.TrimSpace(strings.TrimPrefix(text, "@"))}
	}
}

// parseParagraph strips the lexer-discarded leading `~` (already gone)
// and trims the rest of the line.
func parseParagraph(_ *Parser, tok token.Token, _ int) ast.Expression {
	return &ast.Paragraph{Text: strings.TrimSpace(tok.Text)}
}
