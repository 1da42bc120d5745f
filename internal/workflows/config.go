package workflows

import (
	"context"

	"github.com/PolarWolf314/mpw/internal/algorithm"
	"github.com/PolarWolf314/mpw/internal/configs"
)

// ConfigResult describes the effective user configuration.
type ConfigResult struct {
	ConfigPath   string
	DataPath     string
	InstallUUID  string
	LastFile     string
	DocumentPath string
	DefaultClass algorithm.PasswordClass
}

// ShowConfig returns the effective configuration, resolving the document
// path the same way every other command does.
func ShowConfig(ctx context.Context, opts DocumentOptions) (*ConfigResult, error) {
	config, err := configs.EnsureUserConfig()
	if err != nil {
		return nil, err
	}
	class, err := config.DefaultClass()
	if err != nil {
		return nil, err
	}
	path, err := configs.ResolveDocumentPath(opts.File, config)
	if err != nil {
		return nil, err
	}

	return &ConfigResult{
		ConfigPath:   configs.UserMpwSettings.ConfigFilePath(),
		DataPath:     configs.UserMpwSettings.UserDataPath,
		InstallUUID:  config.Install.UUID,
		LastFile:     config.Preferences.LastFile,
		DocumentPath: path,
		DefaultClass: class,
	}, nil
}

// SetDefaultType stores the password type given to new sites.
//
// Returns ErrUnknownPasswordClass for an invalid type.
func SetDefaultType(ctx context.Context, value string) (algorithm.PasswordClass, error) {
	class, err := algorithm.ParsePasswordClass(value)
	if err != nil {
		return 0, err
	}
	config, err := configs.EnsureUserConfig()
	if err != nil {
		return 0, err
	}
	config.Preferences.DefaultType = class.String()
	if err := configs.SaveUserConfig(config); err != nil {
		return 0, err
	}
	return class, nil
}

// SetFile stores path as the document used when --file is not given.
// The document does not need to exist yet.
func SetFile(ctx context.Context, path string) (string, error) {
	resolved, err := configs.ResolveDocumentPath(path, nil)
	if err != nil {
		return "", err
	}
	config, err := configs.EnsureUserConfig()
	if err != nil {
		return "", err
	}
	config.Preferences.LastFile = resolved
	if err := configs.SaveUserConfig(config); err != nil {
		return "", err
	}
	return resolved, nil
}
