package paths

import (
	"path/filepath"
	"testing"
)

func TestConfigPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	want := filepath.Join(dir, "daybook", "config.json")
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
