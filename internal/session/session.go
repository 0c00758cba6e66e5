// Package session glues tokenize → parse → evaluate → render into the
// two entry points an external caller (CLI, REPL, report generator)
// needs: Run for plain text, RunLaTeX for a LaTeX document fragment.
package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hobbsbros/carlo/internal/ast"
	"github.com/hobbsbros/carlo/internal/diagnostics"
	"github.com/hobbsbros/carlo/internal/eval"
	"github.com/hobbsbros/carlo/internal/lexer"
	"github.com/hobbsbros/carlo/internal/parser"
	"github.com/hobbsbros/carlo/internal/render"
)

// Result is the outcome of one Run/RunLaTeX call: the rendered output
// plus every diagnostic raised along the way.
type Result struct {
	// ID identifies the Session that produced this result (its
	// Environment's ID): every Run/RunLaTeX call on the same Session
	// reports the same ID, and each fresh Session gets a new one.
	ID          uuid.UUID
	Output      string
	Diagnostics []diagnostics.Diagnostic
}

// Session owns one Environment and can be driven repeatedly (e.g. a
// REPL evaluating one line at a time); each call to Run/RunLaTeX
// shares the bindings made by previous calls on the same Session.
type Session struct {
	env *eval.Environment
}

// New constructs a Session with an empty Environment.
func New() *Session {
	return &Session{}
}

// Run tokenizes, parses, and evaluates src, returning the plain-text
// rendering of every non-Null top-level statement, one per line.
func (s *Session) Run(src string) Result {
	return s.run(src, false)
}

// RunLaTeX is Run's LaTeX counterpart: non-document expressions are
// wrapped in `$$ … $$`; document markers (headers, paragraphs) render
// without math delimiters, per spec §4.6.
func (s *Session) RunLaTeX(src string) Result {
	return s.run(src, true)
}

func (s *Session) run(src string, latex bool) Result {
	report := diagnostics.NewReport(src)
	toks := lexer.New(src, report).Tokenize()
	exprs := parser.New(toks, report).Parse()

	if s.env == nil {
		s.env = eval.New(report)
	} else {
		s.env.SetReport(report)
	}

	var lines []string
	for _, expr := range exprs {
		simplified := s.env.Simplify(expr, eval.Numeric)
		if ast.IsNull(simplified) {
			continue
		}
		lines = append(lines, formatStatement(simplified, latex))
	}

	return Result{
		ID:          s.env.ID(),
		Output:      strings.Join(lines, "\n"),
		Diagnostics: report.Items(),
	}
}

func formatStatement(expr ast.Expression, latex bool) string {
	if !latex {
		return render.Text(expr)
	}
	if render.IsDocumentMarker(expr) {
		return render.LaTeX(expr, true)
	}
	return fmt.Sprintf("$$\n%s\n$$", render.LaTeX(expr, true))
}

// Run is the stateless convenience entry point: tokenize, parse, and
// evaluate src against a fresh Environment.
func Run(src string) Result {
	return New().Run(src)
}

// RunLaTeX is RunLaTeX's stateless counterpart.
func RunLaTeX(src string) Result {
	return New().RunLaTeX(src)
}
