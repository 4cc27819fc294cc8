package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	tmp := t.TempDir()
	home := filepath.Join(tmp, ".sigil")

	if err := Init(home, false); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, "config.yaml")); err != nil {
		t.Error("expected config.yaml to exist")
	}

	// Second init should fail without force
	if err := Init(home, false); err == nil {
		t.Error("expected error on duplicate init")
	}

	// Force should succeed
	if err := Init(home, true); err != nil {
		t.Errorf("expected force init to succeed: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	tmp := t.TempDir()
	home := filepath.Join(tmp, ".sigil") // never initialized

	s, err := Load(home)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Config.Fold.Iterations != 10 {
		t.Errorf("expected default iterations 10, got %d", s.Config.Fold.Iterations)
	}
	if s.Config.Fold.GenerateInput != "GEN" || s.Config.Fold.TestInput != "TEST" {
		t.Errorf("unexpected default inputs: %+v", s.Config.Fold)
	}
}

func TestLoadExisting(t *testing.T) {
	tmp := t.TempDir()
	home := filepath.Join(tmp, ".sigil")
	if err := Init(home, false); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	s, err := Load(home)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Home != home {
		t.Errorf("expected Home=%s, got %s", home, s.Home)
	}
}

func TestSetConfigValue(t *testing.T) {
	tmp := t.TempDir()
	s := &Store{Home: filepath.Join(tmp, ".sigil"), Config: DefaultConfig()}

	if err := s.SetConfigValue("fold.iterations", "25"); err != nil {
		t.Fatalf("SetConfigValue failed: %v", err)
	}
	if s.Config.Fold.Iterations != 25 {
		t.Errorf("expected 25, got %d", s.Config.Fold.Iterations)
	}

	if err := s.SetConfigValue("fold.iterations", "0"); err == nil {
		t.Error("expected error for non-positive iterations")
	}
	if err := s.SetConfigValue("bogus.key", "x"); err == nil {
		t.Error("expected error for unknown key")
	}

	// Round trip through disk
	loaded, err := Load(s.Home)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Config.Fold.Iterations != 25 {
		t.Errorf("expected persisted 25, got %d", loaded.Config.Fold.Iterations)
	}
}
