package ast

import "github.com/hobbsbros/carlo/internal/units"

// Mismatch records one dimension axis where a `+`/`-` fold found
// unequal exponents: the contribution for that axis becomes 0 and the
// caller is expected to report an UnmatchedUnits diagnostic.
type Mismatch struct {
	Axis  string
	Left  float64
	Right float64
}

// Fold implements spec §4.5's dimensional arithmetic: if both operands
// are Float, compute the result value and exponents per op; otherwise
// the BinOp survives in the tree unfolded. Fold never reports
// diagnostics itself — it returns any per-axis Mismatch for the caller
// to warn about, keeping this package free of a diagnostics dependency.
func Fold(left Expression, op Op, right Expression) (Expression, []Mismatch) {
	lf, lok := IsFloat(left)
	rf, rok := IsFloat(right)
	if !lok || !rok {
		return &BinOp{Left: left, Op: op, Right: right}, nil
	}

	switch op {
	case Add:
		dim, mismatches := addSub(lf.Dim, rf.Dim)
		return &Float{Value: lf.Value + rf.Value, Dim: dim}, mismatches
	case Sub:
		dim, mismatches := addSub(lf.Dim, rf.Dim)
		return &Float{Value: lf.Value - rf.Value, Dim: dim}, mismatches
	case Mul:
		return &Float{Value: lf.Value * rf.Value, Dim: lf.Dim.Add(rf.Dim)}, nil
	case Div:
		return &Float{Value: lf.Value / rf.Value, Dim: lf.Dim.Add(rf.Dim.Scale(-1))}, nil
	default:
		return &BinOp{Left: left, Op: op, Right: right}, nil
	}
}

// addSub computes the shared exponent tuple for `+`/`-`: each axis
// must match exactly between operands, else it contributes 0 and is
// reported as a Mismatch.
func addSub(l, r units.Dimension) (units.Dimension, []Mismatch) {
	var out units.Dimension
	var mismatches []Mismatch

	check := func(name string, lv, rv float64) float64 {
		if lv == rv {
			return lv
		}
		mismatches = append(mismatches, Mismatch{Axis: name, Left: lv, Right: rv})
		return 0
	}

	out.Kg = check("kg", l.Kg, r.Kg)
	out.M = check("m", l.M, r.M)
	out.S = check("s", l.S, r.S)
	out.A = check("A", l.A, r.A)
	out.K = check("K", l.K, r.K)
	out.Mol = check("mol", l.Mol, r.Mol)

	return out, mismatches
}
