package eval

import (
	"fmt"
	"math"

	"github.com/hobbsbros/carlo/internal/ast"
)

// Builtin is the eval/format/latex triple spec §4.7 defines for a
// built-in function: eval reduces a Float argument, format/latex
// render an unresolved (still-symbolic) call.
type Builtin struct {
	Eval   func(args []ast.Expression) ast.Expression
	Format func(args []ast.Expression) string
	LaTeX  func(args []ast.Expression) string
}

// FormatArg and LaTeXArg render a single argument expression for a
// built-in's Format/LaTeX functions. internal/render registers its own
// Text/LaTeX here at package init, the same table-of-functions pattern
// internal/parser uses for its prefix/infix parselet maps, so a builtin's
// arguments get the same eval.Lookup-aware formatting as everything
// else — a sqrt call nested inside another sqrt call still renders with
// the built-in's own notation rather than a generic fallback. Until
// render registers, these fall back to the argument's own class name,
// which only matters for tests that exercise eval in isolation.
var (
	FormatArg = func(e ast.Expression) string { return fmt.Sprintf("%T", e) }
	LaTeXArg  = func(e ast.Expression) string { return fmt.Sprintf("%T", e) }
)

var registry = map[string]Builtin{
	"sqrt": {Eval: sqrtEval, Format: sqrtFormat, LaTeX: sqrtLaTeX},
}

// Lookup returns the registered Builtin for name, if any. Callers that
// render an unresolved FnCall (in internal/render) use this to pick up
// a built-in's custom formatting instead of the generic name(args, ...)
// fallback.
func Lookup(name string) (Builtin, bool) {
	b, ok := registry[name]
	return b, ok
}

// callBuiltin dispatches a simplified argument list to its built-in by
// name. An unknown name passes through unchanged as a plain FnCall,
// per spec §4.6's FnCall row.
func callBuiltin(name string, args []ast.Expression) ast.Expression {
	b, ok := registry[name]
	if !ok {
		return &ast.FnCall{Name: name, Args: args}
	}
	return b.Eval(args)
}

func sqrtEval(args []ast.Expression) ast.Expression {
	if len(args) != 1 {
		return ast.Null{}
	}
	f, ok := ast.IsFloat(args[0])
	if !ok {
		return &ast.FnCall{Name: "sqrt", Args: args}
	}
	return &ast.Float{Value: math.Sqrt(f.Value), Dim: f.Dim.Scale(0.5)}
}

func sqrtFormat(args []ast.Expression) string {
	if len(args) != 1 {
		return ""
	}
	return fmt.Sprintf("sqrt(%s)", FormatArg(args[0]))
}

func sqrtLaTeX(args []ast.Expression) string {
	if len(args) != 1 {
		return ""
	}
	return fmt.Sprintf("\\sqrt{%s}", LaTeXArg(args[0]))
}
