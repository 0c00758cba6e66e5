package lexer

import (
	"testing"

	"github.com/hobbsbros/carlo/internal/diagnostics"
	"github.com/hobbsbros/carlo/internal/token"
)

func classes(toks []token.Token) []token.Class {
	out := make([]token.Class, len(toks))
	for i, t := range toks {
		out[i] = t.Class
	}
	return out
}

func TestTokenizeBasicAssignment(t *testing.T) {
	toks := New("let x = 3 kg", nil).Tokenize()
	want := []token.Class{token.Let, token.Identifier, token.Assignment, token.Number, token.Identifier}
	got := classes(toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize() produced %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] class = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenizeScientificNotation(t *testing.T) {
	toks := New("1e-3", nil).Tokenize()
	if len(toks) != 1 {
		t.Fatalf("Tokenize(%q) produced %d tokens, want 1: %v", "1e-3", len(toks), toks)
	}
	if toks[0].Text != "1e-3" {
		t.Errorf("Tokenize(%q) text = %q, want %q", "1e-3", toks[0].Text, "1e-3")
	}
}

func TestTokenizeMinusAfterNumberIsSeparateOperator(t *testing.T) {
	toks := New("1-2", nil).Tokenize()
	want := []token.Class{token.Number, token.Minus, token.Number}
	got := classes(toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %v, want classes %v", "1-2", toks, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] class = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenizeComment(t *testing.T) {
	toks := New("x # trailing comment\ny", nil).Tokenize()
	want := []token.Class{token.Identifier, token.Comment, token.Newline, token.Identifier}
	got := classes(toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize() = %v, want classes %v", toks, want)
	}
	if toks[1].Text != "# trailing comment" {
		t.Errorf("comment text = %q, want %q", toks[1].Text, "# trailing comment")
	}
}

func TestTokenizeHeaderLevels(t *testing.T) {
	toks := New("@@@ Deep header\n", nil).Tokenize()
	if len(toks) < 1 || toks[0].Class != token.Header {
		t.Fatalf("Tokenize(%q) = %v, want a Header token first", "@@@ Deep header", toks)
	}
	if toks[0].Text != "@@@ Deep header" {
		t.Errorf("header text = %q, want %q", toks[0].Text, "@@@ Deep header")
	}
}

func TestTokenizeParagraphDropsTilde(t *testing.T) {
	toks := New("~hello world\n", nil).Tokenize()
	if len(toks) < 1 || toks[0].Class != token.Paragraph {
		t.Fatalf("Tokenize(%q) = %v, want a Paragraph token first", "~hello world", toks)
	}
	if toks[0].Text != "hello world" {
		t.Errorf("paragraph text = %q, want %q", toks[0].Text, "hello world")
	}
}

func TestTokenizeUnknownCharacterReportsAndContinues(t *testing.T) {
	report := diagnostics.NewReport("$ x")
	toks := New("$ x", report).Tokenize()

	want := []token.Class{token.Unknown, token.Identifier}
	got := classes(toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %v, want classes %v", "$ x", toks, want)
	}
	if len(report.Items()) != 1 {
		t.Fatalf("report has %d items, want 1", len(report.Items()))
	}
}

func TestTokenizeLetReclassification(t *testing.T) {
	toks := New("let", nil).Tokenize()
	if len(toks) != 1 || toks[0].Class != token.Let {
		t.Fatalf("Tokenize(%q) = %v, want a single Let token", "let", toks)
	}
}

func TestTokenizeSemicolonIsABreakNotAToken(t *testing.T) {
	report := diagnostics.NewReport(";y")
	toks := New(";y", report).Tokenize()

	want := []token.Class{token.Identifier}
	got := classes(toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %v, want classes %v", ";y", toks, want)
	}
	if toks[0].Text != "y" {
		t.Errorf("Tokenize(%q) token[0].Text = %q, want %q", ";y", toks[0].Text, "y")
	}
	if len(report.Items()) != 0 {
		t.Errorf("Tokenize(%q) reported %d diagnostics, want 0 (';' is a break character, not an error)", ";y", len(report.Items()))
	}
}

func TestTokenizeSemicolonTerminatesPrecedingToken(t *testing.T) {
	toks := New("abc;def", nil).Tokenize()
	want := []token.Class{token.Identifier, token.Identifier}
	got := classes(toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %v, want classes %v", "abc;def", toks, want)
	}
	if toks[0].Text != "abc" || toks[1].Text != "def" {
		t.Errorf("Tokenize(%q) = %v, want texts %q and %q", "abc;def", toks, "abc", "def")
	}
}

func TestTokenizeNewlineStandalone(t *testing.T) {
	toks := New("x\n\ny", nil).Tokenize()
	want := []token.Class{token.Identifier, token.Newline, token.Newline, token.Identifier}
	got := classes(toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %v, want classes %v", "x\\n\\ny", toks, want)
	}
}
