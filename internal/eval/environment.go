// Package eval implements Carlo's symbol table and tree-walking
// simplifier: the three resolution modes and dimensional folding of
// spec §4.6, plus the built-in function registry of §4.7.
package eval

import (
	"github.com/google/uuid"

	"github.com/hobbsbros/carlo/internal/ast"
	"github.com/hobbsbros/carlo/internal/diagnostics"
	"github.com/hobbsbros/carlo/internal/token"
)

// Environment is a flat, mutable symbol table scoped to one evaluation
// session (one file run, or one REPL lifetime). It is not safe for
// concurrent use.
type Environment struct {
	id        uuid.UUID
	variables map[string]ast.Expression
	report    *diagnostics.Report
}

// New constructs an empty Environment. report receives non-fatal
// diagnostics raised during simplification (undeclared variables,
// unmatched units); pass nil to discard them.
func New(report *diagnostics.Report) *Environment {
	return &Environment{
		id:        uuid.New(),
		variables: make(map[string]ast.Expression),
		report:    report,
	}
}

// ID returns the session identifier for this environment. internal/session
// returns it as Result.ID; diagnostics themselves do not carry it.
func (e *Environment) ID() uuid.UUID {
	return e.id
}

// SetReport redirects where subsequent Simplify calls send their
// diagnostics — a Session reusing one Environment across several Run
// calls gets a fresh Report per call while keeping the same bindings.
func (e *Environment) SetReport(report *diagnostics.Report) {
	e.report = report
}

func (e *Environment) register(name string, value ast.Expression) {
	e.variables[name] = value
}

func (e *Environment) lookup(name string) (ast.Expression, bool) {
	v, ok := e.variables[name]
	return v, ok
}

func (e *Environment) warn(kind diagnostics.Kind, format string, args ...any) {
	if e.report == nil {
		return
	}
	// Expression trees carry no source position once parsed, so
	// evaluation-time diagnostics anchor to the zero position.
	e.report.Warn(kind, token.Position{}, format, args...)
}
