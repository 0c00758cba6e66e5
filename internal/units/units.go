// Package units implements Carlo's SI unit and prefix tables: parsing a
// unit suffix attached to a numeric literal, and reverse-formatting a
// dimension tuple back into the most specific matching unit name.
package units

import (
	"fmt"
	"strings"
)

// Dimension is the six-exponent SI basis Carlo tracks alongside a
// numeric value: kilogram, metre, second, ampere, kelvin, mole.
// Exponents are float64 (not int) so that fractional powers produced by
// sqrt survive exactly, per spec §4.1.
type Dimension struct {
	Kg  float64
	M   float64
	S   float64
	A   float64
	K   float64
	Mol float64
}

// Add returns the component-wise sum of two dimensions.
func (d Dimension) Add(o Dimension) Dimension {
	return Dimension{d.Kg + o.Kg, d.M + o.M, d.S + o.S, d.A + o.A, d.K + o.K, d.Mol + o.Mol}
}

// Scale returns the dimension with every exponent multiplied by n.
func (d Dimension) Scale(n float64) Dimension {
	return Dimension{d.Kg * n, d.M * n, d.S * n, d.A * n, d.K * n, d.Mol * n}
}

// IsZero reports whether every exponent is zero (a pure scalar).
func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

// Entry is one named unit in the table: a multiplier against SI base
// units, plus the dimension it represents.
type Entry struct {
	Name       string
	Multiplier float64
	Dim        Dimension
}

// table is the declared-order unit list. Format only ever matches one
// entry (an exact equality on the full exponent tuple zeros every axis
// at once), so order only matters when two entries share a dimension:
// kg and g both carry {Kg:1}, and kg is listed first so `3 kg + 2 kg`
// renders as `kg` rather than `g` (see DESIGN.md's Open Question
// decisions).
var table = []Entry{
	{"N", 1, Dimension{Kg: 1, M: 1, S: -2}},
	{"Pa", 1, Dimension{Kg: 1, M: -1, S: -2}},
	{"J", 1, Dimension{Kg: 1, M: 2, S: -2}},
	{"W", 1, Dimension{Kg: 1, M: 2, S: -3}},
	{"C", 1, Dimension{A: 1, S: 1}},
	{"V", 1, Dimension{Kg: 1, M: 2, S: -3, A: -1}},
	{"Ohm", 1, Dimension{Kg: 1, M: 2, S: -3, A: -2}},
	{"F", 1, Dimension{Kg: -1, M: -2, S: 4, A: 2}},
	{"Hz", 1, Dimension{S: -1}},
	{"L", 1e-3, Dimension{M: 3}},
	{"kg", 1, Dimension{Kg: 1}},
	{"g", 1e-3, Dimension{Kg: 1}},
	{"m", 1, Dimension{M: 1}},
	{"s", 1, Dimension{S: 1}},
	{"A", 1, Dimension{A: 1}},
	{"K", 1, Dimension{K: 1}},
	{"mol", 1, Dimension{Mol: 1}},
}

// prefixes is the SI multiplier table for the single-letter prefixes
// spec §4.1 names: nano, micro, milli, centi, kilo, mega, giga.
var prefixes = map[byte]float64{
	'n': 1e-9,
	'u': 1e-6,
	'm': 1e-3,
	'c': 1e-2,
	'k': 1e3,
	'M': 1e6,
	'G': 1e9,
}

// byName indexes table by exact unit name for O(1) parse-time lookup.
var byName = func() map[string]Entry {
	m := make(map[string]Entry, len(table))
	for _, e := range table {
		m[e.Name] = e
	}
	return m
}()

// Value is a dimensioned quantity: a bare float64 paired with its
// Dimension. A Value with a zero Dimension is a pure scalar.
type Value struct {
	Magnitude float64
	Dim       Dimension
}

// Lookup parses a unit suffix (e.g. "kg", "ms", "kN", "_2" exponent
// already stripped by the caller) against the prefix+name grammar and
// returns the multiplier/dimension it names. ok is false if text does
// not name any known (prefix?)(unit) combination.
func Lookup(text string) (multiplier float64, dim Dimension, ok bool) {
	if text == "" {
		return 0, Dimension{}, false
	}

	if e, found := byName[text]; found {
		return e.Multiplier, e.Dim, true
	}

	prefix := text[0]
	mult, hasPrefix := prefixes[prefix]
	if !hasPrefix {
		return 0, Dimension{}, false
	}
	rest := text[1:]
	if e, found := byName[rest]; found {
		return mult * e.Multiplier, e.Dim, true
	}

	return 0, Dimension{}, false
}

// Factor is one rendered unit name with its exponent (1 for a bare
// unit).
type Factor struct {
	Name string
	Exp  float64
}

// Factors reverse-looks-up a dimension into the sequence of unit
// factors that render it, per spec §4.6: walk the table in declared
// order, and the first entry whose exponent tuple exactly equals the
// value's remaining exponents wins (there can be at most one match,
// since it zeros every axis at once). Whatever axes the match doesn't
// cover — or every axis, if nothing matched — become bare
// base-dimension factors (`kg`, `m`, `s`, `A`, `K`, `mol`).
func Factors(d Dimension) []Factor {
	if d.IsZero() {
		return nil
	}

	remaining := d
	var factors []Factor

	for _, e := range table {
		if e.Dim == remaining {
			factors = append(factors, Factor{Name: e.Name, Exp: 1})
			remaining = Dimension{}
			break
		}
	}

	for _, axis := range []struct {
		name string
		exp  float64
	}{
		{"kg", remaining.Kg},
		{"m", remaining.M},
		{"s", remaining.S},
		{"A", remaining.A},
		{"K", remaining.K},
		{"mol", remaining.Mol},
	} {
		if axis.exp != 0 {
			factors = append(factors, Factor{Name: axis.name, Exp: axis.exp})
		}
	}

	return factors
}

// Format renders Factors as plain text: space-separated "name" (for
// exponent 1) or "name^n" factors.
func Format(d Dimension) string {
	factors := Factors(d)
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = formatFactor(f.Name, f.Exp)
	}
	return strings.Join(parts, " ")
}

// formatFactor renders a single plain-text "name" or "name^n" factor.
// Integral exponents print without a decimal point; exponent 1 is bare.
func formatFactor(name string, exp float64) string {
	if exp == 1 {
		return name
	}
	if exp == float64(int64(exp)) {
		return fmt.Sprintf("%s^%d", name, int64(exp))
	}
	return fmt.Sprintf("%s^%g", name, exp)
}
