package shell

import (
	"testing"

	"src.weir.sh/pkg/must"
	"src.weir.sh/pkg/testutil"
)

func TestLoadSettingsFile(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("settings.yaml",
		"prompt: 'w> '\ndb-path: /alt/weir.db\n")

	s := defaultSettings()
	err := loadSettingsFile("settings.yaml", &s)

	if err != nil {
		t.Fatalf("loadSettingsFile -> error %v", err)
	}
	if s.Prompt != "w> " {
		t.Errorf("got Prompt %q, want %q", s.Prompt, "w> ")
	}
	if s.DBPath != "/alt/weir.db" {
		t.Errorf("got DBPath %q, want %q", s.DBPath, "/alt/weir.db")
	}
	// Fields absent from the file keep their defaults.
	if s.ValuePrefix != "▶ " {
		t.Errorf("got ValuePrefix %q, want the default", s.ValuePrefix)
	}
}

func TestLoadSettingsFile_ExplicitEmptyOverridesDefault(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("settings.yaml", "value-prefix: ''\n")

	s := defaultSettings()
	err := loadSettingsFile("settings.yaml", &s)

	if err != nil {
		t.Fatalf("loadSettingsFile -> error %v", err)
	}
	if s.ValuePrefix != "" {
		t.Errorf("got ValuePrefix %q, want empty", s.ValuePrefix)
	}
}

func TestLoadSettingsFile_MissingFile(t *testing.T) {
	testutil.InTempDir(t)

	s := defaultSettings()
	err := loadSettingsFile("settings.yaml", &s)

	if err != nil {
		t.Fatalf("loadSettingsFile -> error %v", err)
	}
	if s != defaultSettings() {
		t.Errorf("got settings %v, want defaults", s)
	}
}

func TestLoadSettingsFile_BadContent(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("settings.yaml", "prompt: [\n")

	s := defaultSettings()
	err := loadSettingsFile("settings.yaml", &s)

	if err == nil {
		t.Fatal("loadSettingsFile -> no error, want parse error")
	}
	// A bad file leaves the defaults in place.
	if s != defaultSettings() {
		t.Errorf("got settings %v, want defaults", s)
	}
}
