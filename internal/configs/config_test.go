package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/mpw/internal/algorithm"
)

// withTempSettings points UserMpwSettings at fresh temp directories.
func withTempSettings(t *testing.T) *UserSettings {
	t.Helper()
	old := UserMpwSettings
	UserMpwSettings = &UserSettings{
		UserConfigsPath: filepath.Join(t.TempDir(), "config"),
		UserDataPath:    filepath.Join(t.TempDir(), "data"),
		Username:        "tester",
	}
	t.Cleanup(func() { UserMpwSettings = old })
	return UserMpwSettings
}

func TestGenerateInstallUUID(t *testing.T) {
	uuid := GenerateInstallUUID()
	if len(uuid) != 36 {
		t.Fatalf("Expected UUID length 36, got %d", len(uuid))
	}
	if uuid == GenerateInstallUUID() {
		t.Fatal("Expected distinct UUIDs")
	}
}

func TestLoadUserConfigNonExistent(t *testing.T) {
	withTempSettings(t)

	config, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig failed: %v", err)
	}
	if config.Install.UUID != "" || config.Preferences.LastFile != "" {
		t.Errorf("Expected empty config, got %+v", config)
	}
}

func TestSaveAndLoadUserConfig(t *testing.T) {
	withTempSettings(t)

	config := &UserConfig{
		Install:     Install{UUID: "install-uuid-123"},
		Preferences: Preferences{LastFile: "/tmp/sites.toml", DefaultType: "MediumPassword"},
	}
	if err := SaveUserConfig(config); err != nil {
		t.Fatalf("SaveUserConfig failed: %v", err)
	}

	loaded, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig failed: %v", err)
	}
	if *loaded != *config {
		t.Errorf("Expected %+v, got %+v", config, loaded)
	}
}

func TestLoadUserConfigMalformed(t *testing.T) {
	settings := withTempSettings(t)
	if err := os.MkdirAll(settings.UserConfigsPath, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(settings.ConfigFilePath(), []byte("[preferences\nlast_file = "), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadUserConfig(); err == nil {
		t.Fatal("Expected error for malformed config")
	}
}

func TestEnsureUserConfigAssignsUUIDOnce(t *testing.T) {
	withTempSettings(t)

	first, err := EnsureUserConfig()
	if err != nil {
		t.Fatalf("EnsureUserConfig failed: %v", err)
	}
	if first.Install.UUID == "" {
		t.Fatal("Expected an install UUID")
	}

	second, err := EnsureUserConfig()
	if err != nil {
		t.Fatalf("EnsureUserConfig failed: %v", err)
	}
	if second.Install.UUID != first.Install.UUID {
		t.Errorf("Install UUID changed: %q -> %q", first.Install.UUID, second.Install.UUID)
	}
}

func TestDefaultClass(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    algorithm.PasswordClass
		wantErr bool
	}{
		{"Unset", "", algorithm.LongPassword, false},
		{"Canonical", "PIN", algorithm.PIN, false},
		{"Alias", "max", algorithm.MaximumSecurityPassword, false},
		{"Unknown", "Phrase", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config := &UserConfig{Preferences: Preferences{DefaultType: tc.value}}
			got, err := config.DefaultClass()
			if tc.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("DefaultClass failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("DefaultClass() = %s, expected %s", got, tc.want)
			}
		})
	}

	var nilConfig *UserConfig
	if got, _ := nilConfig.DefaultClass(); got != algorithm.LongPassword {
		t.Errorf("nil config should default to LongPassword, got %s", got)
	}
}

func TestResolveDocumentPath(t *testing.T) {
	settings := withTempSettings(t)
	abs := filepath.Join(t.TempDir(), "flag.toml")

	got, err := ResolveDocumentPath("", nil)
	if err != nil || got != settings.DefaultDocumentPath() {
		t.Errorf("default: got %q, %v", got, err)
	}

	config := &UserConfig{Preferences: Preferences{LastFile: "/srv/last.xml"}}
	got, err = ResolveDocumentPath("", config)
	if err != nil || got != "/srv/last.xml" {
		t.Errorf("last file: got %q, %v", got, err)
	}

	got, err = ResolveDocumentPath(abs, config)
	if err != nil || got != abs {
		t.Errorf("flag: got %q, %v", got, err)
	}

	got, err = ResolveDocumentPath("relative.toml", nil)
	if err != nil || !filepath.IsAbs(got) || filepath.Base(got) != "relative.toml" {
		t.Errorf("relative: got %q, %v", got, err)
	}
}

func TestRememberLastFile(t *testing.T) {
	withTempSettings(t)

	if err := RememberLastFile("/srv/sites.toml"); err != nil {
		t.Fatalf("RememberLastFile failed: %v", err)
	}
	config, err := LoadUserConfig()
	if err != nil {
		t.Fatal(err)
	}
	if config.Preferences.LastFile != "/srv/sites.toml" {
		t.Errorf("Expected last_file to be remembered, got %q", config.Preferences.LastFile)
	}
}

func TestResolveUserSettingsHonoursOverrides(t *testing.T) {
	t.Setenv(ConfigDirEnv, "/custom/config")
	t.Setenv(DataDirEnv, "/custom/data")

	s := ResolveUserSettings()
	if s.ConfigFilePath() != filepath.Join("/custom/config", "config.toml") {
		t.Errorf("ConfigFilePath = %q", s.ConfigFilePath())
	}
	if s.AuditLogPath() != filepath.Join("/custom/data", "audit.jsonl") {
		t.Errorf("AuditLogPath = %q", s.AuditLogPath())
	}
	if s.DefaultDocumentPath() != filepath.Join("/custom/data", "sites.toml") {
		t.Errorf("DefaultDocumentPath = %q", s.DefaultDocumentPath())
	}
}
