package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/blairfrandeen/titr/internal/logging"
)

const (
	appDirName     = ".titr"
	configFileName = "config.toml"
	dbFileName     = "titr.db"

	envConfigPath = "TITR_CONFIG"
	envDBPath     = "TITR_DB"
)

// defaultConfig is written verbatim on first run so users have an annotated
// starting point to edit.
const defaultConfig = `# titr configuration
#
# Category ids are the integers you type at the console; account keys are
# single letters. Edit the tables below to match how you bill your time.

default_category = 2
default_account = "i"

# Entries longer than this many hours are rejected.
max_entry_duration = 9.0

# Weekly deep work goal in hours, reported by the deepwork command.
deep_work_goal = 30.0

[categories]
2 = "Deep Work"
3 = "Meetings"
4 = "Email"

[accounts]
i = "Internal"
o = "Operations"

[outlook]
# Fill in tenant_id and client_id to enable calendar reconciliation.
tenant_id = ""
client_id = ""
timezone = "Pacific Standard Time"
skip_all_day = true
skip_out_of_office = true
skip_subjects = ["Lunch"]
skip_statuses = ["free"]
deep_work_category = "Deep Work"
`

// AppDir returns the directory that holds the config file, database, and
// cached auth tokens, creating it if needed.
func AppDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	dir := filepath.Join(home, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	return dir, nil
}

// ConfigPath resolves the config file location, honoring TITR_CONFIG.
func ConfigPath() (string, error) {
	if path := os.Getenv(envConfigPath); path != "" {
		return path, nil
	}
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// DBPath resolves the database location, honoring TITR_DB.
func DBPath() (string, error) {
	if path := os.Getenv(envDBPath); path != "" {
		return path, nil
	}
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFileName), nil
}

// Load reads and validates the configuration, writing the annotated default
// file first if none exists yet.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads and validates the configuration at an explicit path,
// creating it from the default template when missing.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logging.Debugf("config: writing default config to %s", path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	logging.Debugf("config: loaded %s", path)
	return &cfg, nil
}
