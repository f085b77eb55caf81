package utils

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetConfigPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("exercises the XDG resolution path")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	pr, err := NewPathResolver()
	if err != nil {
		t.Fatalf("NewPathResolver: %v", err)
	}

	path, err := pr.GetConfigPath("config.toml")
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}
	want := filepath.Join(base, "typeahead", "config.toml")
	if path != want {
		t.Errorf("expected %q, got %q", want, path)
	}
	if !FileExists(filepath.Dir(path)) {
		t.Error("config directory was not created")
	}
}

func TestGetDataDirFallsBack(t *testing.T) {
	pr, err := NewPathResolver()
	if err != nil {
		t.Fatalf("NewPathResolver: %v", err)
	}

	// No candidate holds source files; the resolver still returns the
	// most likely path so the caller can report a useful error.
	dir, err := pr.GetDataDir(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("GetDataDir: %v", err)
	}
	if dir == "" {
		t.Error("expected a candidate path for error reporting")
	}
}
