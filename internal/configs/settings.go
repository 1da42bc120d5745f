package configs

import (
	"os"
	"path/filepath"

	"github.com/PolarWolf314/mpw/internal/utils"
)

// Environment overrides for the config and data directories.
const (
	ConfigDirEnv = "MPW_CONFIG_DIR"
	DataDirEnv   = "MPW_DATA_DIR"
)

type UserSettings struct {
	UserConfigsPath string
	UserDataPath    string
	Username        string
}

// UserMpwSettings holds the resolved per-user paths. Tests may point it at a temp dir.
var UserMpwSettings *UserSettings

func init() {
	UserMpwSettings = ResolveUserSettings()
}

// ResolveUserSettings computes the config and data directories from the
// environment: MPW_CONFIG_DIR or os.UserConfigDir()/mpw, and MPW_DATA_DIR or
// $XDG_DATA_HOME/mpw (default ~/.local/share/mpw).
func ResolveUserSettings() *UserSettings {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.TempDir()
	}

	configDir := os.Getenv(ConfigDirEnv)
	if configDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = filepath.Join(homeDir, ".config")
		}
		configDir = filepath.Join(base, "mpw")
	}

	dataDir := os.Getenv(DataDirEnv)
	if dataDir == "" {
		base := os.Getenv("XDG_DATA_HOME")
		if base == "" {
			base = filepath.Join(homeDir, ".local", "share")
		}
		dataDir = filepath.Join(base, "mpw")
	}

	return &UserSettings{
		UserConfigsPath: configDir,
		UserDataPath:    dataDir,
		Username:        utils.GetUsername(),
	}
}

// ConfigFilePath is the user preferences file.
func (s *UserSettings) ConfigFilePath() string {
	return filepath.Join(s.UserConfigsPath, "config.toml")
}

// DefaultDocumentPath is used when neither --file nor last_file is set.
func (s *UserSettings) DefaultDocumentPath() string {
	return filepath.Join(s.UserDataPath, "sites.toml")
}

// AuditLogPath is the JSON Lines operation journal.
func (s *UserSettings) AuditLogPath() string {
	return filepath.Join(s.UserDataPath, "audit.jsonl")
}
