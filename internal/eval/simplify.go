package eval

import (
	"github.com/hobbsbros/carlo/internal/ast"
	"github.com/hobbsbros/carlo/internal/diagnostics"
)

// Mode selects how far Simplify resolves identifiers, per spec §4.6.
type Mode int

const (
	// NoResolve leaves identifiers untouched.
	NoResolve Mode = iota
	// SymbolsOnly resolves an identifier unless its bound value is
	// already a Float (in which case the name is kept for display).
	SymbolsOnly
	// Numeric fully resolves every identifier, warning on anything
	// still unbound.
	Numeric
)

func (m Mode) String() string {
	switch m {
	case NoResolve:
		return "NoResolve"
	case SymbolsOnly:
		return "SymbolsOnly"
	case Numeric:
		return "Numeric"
	default:
		return "Unknown"
	}
}

// Simplify recursively reduces expr under mode, binding/rebinding
// variables along the way. It never returns an error: unresolvable
// input becomes ast.Null{} plus a non-fatal diagnostic.
func (e *Environment) Simplify(expr ast.Expression, mode Mode) ast.Expression {
	switch v := expr.(type) {
	case *ast.Float:
		return v

	case *ast.Assignment:
		right := e.Simplify(v.Right, NoResolve)
		e.register(v.Name, right)
		return &ast.Assignment{Name: v.Name, Right: right}

	case *ast.Reassignment:
		if _, bound := e.lookup(v.Name); !bound {
			e.warn(diagnostics.UndeclaredVariable, "undeclared variable %q", v.Name)
			return ast.Null{}
		}
		right := e.Simplify(v.Right, NoResolve)
		e.register(v.Name, right)
		return &ast.Reassignment{Name: v.Name, Right: right}

	case *ast.Identifier:
		return e.simplifyIdentifier(v, mode)

	case *ast.Symbolic:
		bound, ok := e.lookup(v.Name)
		if !ok {
			e.warn(diagnostics.UndeclaredVariable, "undeclared variable %q", v.Name)
			return ast.Null{}
		}
		return &ast.Reassignment{Name: v.Name, Right: e.Simplify(bound, NoResolve)}

	case *ast.FullSymbolic:
		bound, ok := e.lookup(v.Name)
		if !ok {
			e.warn(diagnostics.UndeclaredVariable, "undeclared variable %q", v.Name)
			return ast.Null{}
		}
		return &ast.Reassignment{Name: v.Name, Right: e.Simplify(bound, SymbolsOnly)}

	case *ast.BinOp:
		left := e.Simplify(v.Left, mode)
		right := e.Simplify(v.Right, mode)
		folded, mismatches := ast.Fold(left, v.Op, right)
		for _, m := range mismatches {
			e.warn(diagnostics.UnmatchedUnits, "unmatched units on %s (%g vs %g)", m.Axis, m.Left, m.Right)
		}
		return folded

	case *ast.FnCall:
		args := make([]ast.Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = e.Simplify(a, mode)
		}
		return callBuiltin(v.Name, args)

	default:
		// Document markers (Header, Subheader, Subsubheader,
		// Paragraph) and Null carry no sub-expressions to resolve.
		return expr
	}
}

func (e *Environment) simplifyIdentifier(id *ast.Identifier, mode Mode) ast.Expression {
	switch mode {
	case NoResolve:
		return id

	case SymbolsOnly:
		bound, ok := e.lookup(id.Name)
		if !ok {
			return id
		}
		if _, isFloat := ast.IsFloat(bound); isFloat {
			return id
		}
		return e.Simplify(bound, SymbolsOnly)

	case Numeric:
		bound, ok := e.lookup(id.Name)
		if !ok {
			e.warn(diagnostics.UndeclaredVariable, "undeclared variable %q", id.Name)
			return ast.Null{}
		}
		return e.Simplify(bound, Numeric)

	default:
		return id
	}
}
