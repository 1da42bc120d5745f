package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/PolarWolf314/mpw/internal/algorithm"
	"github.com/PolarWolf314/mpw/internal/utils"
)

type UserConfig struct {
	Install     Install     `toml:"install"`
	Preferences Preferences `toml:"preferences"`
}

// Install identifies this installation in audit entries.
type Install struct {
	UUID string `toml:"install_uuid"`
}

type Preferences struct {
	// LastFile is the site document used by the last successful command.
	LastFile string `toml:"last_file"`
	// DefaultType is the password type given to new sites.
	DefaultType string `toml:"default_type"`
}

// LoadUserConfig loads the user configuration. A missing file yields defaults.
func LoadUserConfig() (*UserConfig, error) {
	config := &UserConfig{}

	if _, err := os.Stat(UserMpwSettings.ConfigFilePath()); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(UserMpwSettings.ConfigFilePath(), config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration.
func SaveUserConfig(config *UserConfig) error {
	if err := SaveTOML(UserMpwSettings.ConfigFilePath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}

// GenerateInstallUUID generates a new installation UUID.
func GenerateInstallUUID() string {
	return uuid.New().String()
}

// EnsureUserConfig loads the user configuration and assigns an install UUID on first use.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	if config.Install.UUID == "" {
		config.Install.UUID = GenerateInstallUUID()
		if err := SaveUserConfig(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// DefaultClass returns the configured password type for new sites, or LongPassword.
func (c *UserConfig) DefaultClass() (algorithm.PasswordClass, error) {
	if c == nil || c.Preferences.DefaultType == "" {
		return algorithm.DefaultClass, nil
	}
	class, err := algorithm.ParsePasswordClass(c.Preferences.DefaultType)
	if err != nil {
		return 0, fmt.Errorf("invalid default_type in %s: %w", UserMpwSettings.ConfigFilePath(), err)
	}
	return class, nil
}

// ResolveDocumentPath picks the site document: the --file flag, then the
// remembered last file, then the default location in the data directory.
func ResolveDocumentPath(flagValue string, config *UserConfig) (string, error) {
	path := flagValue
	if path == "" && config != nil {
		path = config.Preferences.LastFile
	}
	if path == "" {
		return UserMpwSettings.DefaultDocumentPath(), nil
	}

	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// RememberLastFile stores path as last_file if it changed.
func RememberLastFile(path string) error {
	config, err := LoadUserConfig()
	if err != nil {
		return err
	}
	if config.Preferences.LastFile == path {
		return nil
	}
	config.Preferences.LastFile = path
	return SaveUserConfig(config)
}
