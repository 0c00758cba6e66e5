package units

import "testing"

func TestLookupBareUnit(t *testing.T) {
	mult, dim, ok := Lookup("kg")
	if !ok {
		t.Fatalf("Lookup(%q) not found", "kg")
	}
	if mult != 1 {
		t.Errorf("Lookup(%q) multiplier = %v, want 1", "kg", mult)
	}
	if dim != (Dimension{Kg: 1}) {
		t.Errorf("Lookup(%q) dim = %+v, want {Kg:1}", "kg", dim)
	}
}

func TestLookupPrefixedUnit(t *testing.T) {
	mult, dim, ok := Lookup("ms")
	if !ok {
		t.Fatalf("Lookup(%q) not found", "ms")
	}
	if mult != 1e-3 {
		t.Errorf("Lookup(%q) multiplier = %v, want 1e-3", "ms", mult)
	}
	if dim != (Dimension{S: 1}) {
		t.Errorf("Lookup(%q) dim = %+v, want {S:1}", "ms", dim)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, _, ok := Lookup("xyz"); ok {
		t.Errorf("Lookup(%q) unexpectedly succeeded", "xyz")
	}
	if _, _, ok := Lookup(""); ok {
		t.Errorf("Lookup(\"\") unexpectedly succeeded")
	}
}

func TestFormatPreferKilogramOverGram(t *testing.T) {
	got := Format(Dimension{Kg: 1})
	if got != "kg" {
		t.Errorf("Format({Kg:1}) = %q, want %q", got, "kg")
	}
}

// TestFormatPascalTimesLitre verifies the worked example from the
// pressure/volume scenario: Pa (kg m^-1 s^-2) times L (m^3, 1e-3 m^3)
// carries the dimension kg m^2 s^-2, which is exactly J.
func TestFormatPascalTimesLitre(t *testing.T) {
	paDim := Dimension{Kg: 1, M: -1, S: -2}
	lDim := Dimension{M: 3}

	combined := paDim.Add(lDim)
	want := Dimension{Kg: 1, M: 2, S: -2}
	if combined != want {
		t.Fatalf("Pa*L dimension = %+v, want %+v", combined, want)
	}

	got := Format(combined)
	if got != "J" {
		t.Errorf("Format(Pa*L) = %q, want %q", got, "J")
	}
}

func TestFormatDimensionless(t *testing.T) {
	if got := Format(Dimension{}); got != "" {
		t.Errorf("Format({}) = %q, want empty string", got)
	}
}

// TestFormatResidualExponents matches scenario 1 of the worked examples:
// m/s^2 (acceleration) has no exact entry in the unit table, so it
// renders as the leftover base-dimension factors.
func TestFormatResidualExponents(t *testing.T) {
	got := Format(Dimension{M: 1, S: -2})
	if got != "m s^-2" {
		t.Errorf("Format({M:1,S:-2}) = %q, want %q", got, "m s^-2")
	}
}

func TestDimensionScaleAndAdd(t *testing.T) {
	d := Dimension{M: 1}.Scale(0.5)
	if d != (Dimension{M: 0.5}) {
		t.Errorf("Scale(0.5) = %+v, want {M:0.5}", d)
	}
	sum := d.Add(d)
	if sum != (Dimension{M: 1}) {
		t.Errorf("Add self = %+v, want {M:1}", sum)
	}
}
