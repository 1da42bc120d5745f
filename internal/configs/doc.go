// Package configs manages per-user settings for mpw.
//
// # Locations
//
// UserMpwSettings is resolved at startup:
//
//   - Config directory: $MPW_CONFIG_DIR, or os.UserConfigDir()/mpw
//   - Data directory: $MPW_DATA_DIR, or $XDG_DATA_HOME/mpw (~/.local/share/mpw)
//
// The data directory holds the default site document (sites.toml) and the
// audit log (audit.jsonl).
//
// # User Configuration
//
// config.toml in the config directory stores:
//   - An install UUID, generated on first use, recorded in audit entries
//   - last_file: the site document used most recently
//   - default_type: the password type for newly added sites
//
// The site document is picked by ResolveDocumentPath: the --file flag wins,
// then last_file, then the default location.
package configs
