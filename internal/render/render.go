// Package render turns a (already simplified) ast.Expression into the
// plain-text or LaTeX form a caller prints, per spec §4.6's formatting
// rules. It is the only place that does this: ast's node types carry no
// formatting methods of their own, so there is exactly one Text/LaTeX
// tree-walker to keep in sync with internal/eval's builtin table instead
// of two that can drift apart. Numeric output goes through
// golang.org/x/text/message, pinned to message.NoSeparator so locale
// grouping never perturbs the fixed four-decimal contract.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hobbsbros/carlo/internal/ast"
	"github.com/hobbsbros/carlo/internal/eval"
	"github.com/hobbsbros/carlo/internal/units"
)

var printer = message.NewPrinter(language.Und, message.NoSeparator)

func init() {
	eval.FormatArg = Text
	eval.LaTeXArg = func(e ast.Expression) string { return LaTeX(e, true) }
}

// precision is the number of fractional digits numeric output is
// printed to. spec §4.6 fixes this at 4; SetPrecision exists only for
// internal/config to override it for local experimentation, never for
// conformance runs.
var precision = 4

// SetPrecision overrides the fractional-digit count future Text/LaTeX
// calls use. n <= 0 is ignored, leaving the current precision in place.
func SetPrecision(n int) {
	if n > 0 {
		precision = n
	}
}

// number renders v to the configured fractional-digit count, matching
// spec §4.6's "numeric value is printed to 4 fractional digits"
// contract by default.
func number(v float64) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", precision), v)
}

// Text renders expr as plain text.
func Text(expr ast.Expression) string {
	switch v := expr.(type) {
	case *ast.Float:
		return floatText(v)
	case *ast.Identifier:
		return v.Name
	case *ast.Symbolic:
		return v.Name
	case *ast.FullSymbolic:
		return v.Name
	case *ast.Assignment:
		return fmt.Sprintf("%s = %s", v.Name, Text(v.Right))
	case *ast.Reassignment:
		return fmt.Sprintf("%s = %s", v.Name, Text(v.Right))
	case *ast.BinOp:
		return fmt.Sprintf("(%s %s %s)", Text(v.Left), v.Op, Text(v.Right))
	case *ast.FnCall:
		if b, ok := eval.Lookup(v.Name); ok {
			return b.Format(v.Args)
		}
		return fmt.Sprintf("%s(%s)", v.Name, textJoin(v.Args))
	case *ast.Header:
		return fmt.Sprintf("\n%s\n===\n", strings.ToUpper(v.Text))
	case *ast.Subheader:
		return fmt.Sprintf("\n%s\n", strings.ToUpper(v.Text))
	case *ast.Subsubheader:
		return fmt.Sprintf("\n* %s\n", v.Text)
	case *ast.Paragraph:
		return fmt.Sprintf("\n%s\n", v.Text)
	case ast.Null:
		return ""
	default:
		panic(fmt.Sprintf("render.Text: unhandled expression type %T", expr))
	}
}

// LaTeX renders expr as LaTeX source. toplevel controls whether a BinOp
// gets wrapped in parentheses (spec §4.6's "parenthesise non-top-level
// BinOps").
func LaTeX(expr ast.Expression, toplevel bool) string {
	switch v := expr.(type) {
	case *ast.Float:
		return floatLaTeX(v)
	case *ast.Identifier:
		return latexIdentifier(v.Name)
	case *ast.Symbolic:
		return latexIdentifier(v.Name)
	case *ast.FullSymbolic:
		return latexIdentifier(v.Name)
	case *ast.Assignment:
		return fmt.Sprintf("%s = %s", latexIdentifier(v.Name), LaTeX(v.Right, true))
	case *ast.Reassignment:
		return fmt.Sprintf("%s = %s", latexIdentifier(v.Name), LaTeX(v.Right, true))
	case *ast.BinOp:
		body := LaTeX(v.Left, false) + v.Op.LaTeX() + LaTeX(v.Right, false)
		if toplevel {
			return body
		}
		return "(" + body + ")"
	case *ast.FnCall:
		if b, ok := eval.Lookup(v.Name); ok {
			return b.LaTeX(v.Args)
		}
		return fmt.Sprintf("%s(%s)", v.Name, latexJoin(v.Args))
	case *ast.Header:
		return fmt.Sprintf("\n\\section{%s}\n", v.Text)
	case *ast.Subheader:
		return fmt.Sprintf("\n\\subsection{%s}\n", v.Text)
	case *ast.Subsubheader:
		return fmt.Sprintf("\n\\subsubsection{%s}\n", v.Text)
	case *ast.Paragraph:
		return fmt.Sprintf("\n%s\\par\n", v.Text)
	case ast.Null:
		return ""
	default:
		panic(fmt.Sprintf("render.LaTeX: unhandled expression type %T", expr))
	}
}

// IsDocumentMarker reports whether expr is a Header/Subheader/
// Subsubheader/Paragraph, which render without math delimiters.
func IsDocumentMarker(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Header, *ast.Subheader, *ast.Subsubheader, *ast.Paragraph:
		return true
	default:
		return false
	}
}

func floatText(f *ast.Float) string {
	unit := units.Format(f.Dim)
	if unit == "" {
		return number(f.Value)
	}
	return number(f.Value) + " " + unit
}

func floatLaTeX(f *ast.Float) string {
	var b strings.Builder
	b.WriteString(number(f.Value))
	for _, factor := range units.Factors(f.Dim) {
		b.WriteString(` \; \mathrm{`)
		b.WriteString(latexFactor(factor))
		b.WriteString(`}`)
	}
	return b.String()
}

func latexFactor(f units.Factor) string {
	if f.Exp == 1 {
		return f.Name
	}
	if f.Exp == float64(int(f.Exp)) {
		return fmt.Sprintf("%s^{%d}", f.Name, int(f.Exp))
	}
	return fmt.Sprintf("%s^{%g}", f.Name, f.Exp)
}

var greek = map[string]bool{
	"alpha": true, "beta": true, "gamma": true, "delta": true,
	"epsilon": true, "varepsilon": true, "xi": true, "pi": true,
	"theta": true, "phi": true, "psi": true, "omega": true,
}

// latexIdentifier applies the LaTeX identifier transform: split on `_`,
// escape a leading Greek stem, nest the rest as `_{...}` subscripts.
func latexIdentifier(name string) string {
	parts := strings.Split(name, "_")
	head := parts[0]
	if greek[strings.ToLower(head)] {
		head = "\\" + head
	}
	for _, seg := range parts[1:] {
		head = fmt.Sprintf("%s_{%s}", head, seg)
	}
	return head
}

func textJoin(args []ast.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Text(a)
	}
	return strings.Join(parts, ", ")
}

func latexJoin(args []ast.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = LaTeX(a, true)
	}
	return strings.Join(parts, ", ")
}
