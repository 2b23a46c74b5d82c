package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tu "shellpane/internal/testutil"
)

func TestSettings_DefaultsWhenMissing(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)() // fallback

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("missing file should yield defaults, got %+v", s)
	}
}

func TestSettings_SaveLoadRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	want := Settings{
		Theme:           "vitesse-light",
		Shell:           "/bin/zsh",
		TabWidth:        4,
		ScrollbackLimit: 500,
		MinContrast:     1.5,
	}
	if err := SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings error: %v", err)
	}
	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: %+v != %+v", got, want)
	}
}

func TestSettings_NormalizationOnSave(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	if err := SaveSettings(Settings{Theme: "", TabWidth: -2, ScrollbackLimit: -1, MinContrast: 0}); err != nil {
		t.Fatalf("SaveSettings error: %v", err)
	}
	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if got.Theme != "vitesse-dark" || got.TabWidth != 8 || got.ScrollbackLimit != 0 || got.MinContrast != 1 {
		t.Fatalf("normalization failed: %+v", got)
	}
}

func TestSettings_MalformedFileReturnsError(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	path, err := SettingsPath()
	if err != nil {
		t.Fatalf("SettingsPath error: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := LoadSettings()
	if err == nil {
		t.Fatalf("expected error for malformed settings")
	}
	if s != DefaultSettings() {
		t.Fatalf("malformed file should fall back to defaults, got %+v", s)
	}
}

func TestSettingsSchema(t *testing.T) {
	b, err := MarshalSchema(SettingsSchema())
	if err != nil {
		t.Fatalf("MarshalSchema error: %v", err)
	}
	for _, want := range []string{"theme", "tabWidth", "scrollbackLimit"} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("schema missing %q:\n%s", want, b)
		}
	}
}
