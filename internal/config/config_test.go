package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsMatchSpec(t *testing.T) {
	d := Defaults()
	if d.Precision != 4 {
		t.Errorf("Defaults().Precision = %d, want 4", d.Precision)
	}
	if d.DefaultMode != ModeText {
		t.Errorf("Defaults().DefaultMode = %q, want %q", d.DefaultMode, ModeText)
	}
	if !d.Color {
		t.Errorf("Defaults().Color = false, want true")
	}
}

func TestLoadWithNoPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if s != Defaults() {
		t.Errorf("Load(\"\") = %+v, want %+v", s, Defaults())
	}
}

func TestLoadReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "carlo.yaml")
	contents := "precision: 6\ndefault_mode: latex\ncolor: false\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", path, err)
	}
	if s.Precision != 6 {
		t.Errorf("Precision = %d, want 6", s.Precision)
	}
	if s.DefaultMode != ModeLaTeX {
		t.Errorf("DefaultMode = %q, want %q", s.DefaultMode, ModeLaTeX)
	}
	if s.Color {
		t.Errorf("Color = true, want false")
	}
}

func TestLoadRejectsInvalidDefaultMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "carlo.yaml")
	if err := os.WriteFile(path, []byte("default_mode: nonsense\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("Load(%q) error = nil, want an error for an invalid default_mode", path)
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load(missing file) error = nil, want an error")
	}
}
