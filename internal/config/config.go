// Package config loads the TOML configuration file that defines the
// category and account registries, entry defaults, and the Outlook
// connection options.
package config

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/blairfrandeen/titr/internal/domain"
)

// OutlookConfig holds the settings for pulling calendar events from
// Microsoft Graph.
type OutlookConfig struct {
	TenantID         string   `toml:"tenant_id"`
	ClientID         string   `toml:"client_id"`
	Timezone         string   `toml:"timezone"`
	SkipAllDay       bool     `toml:"skip_all_day"`
	SkipOutOfOffice  bool     `toml:"skip_out_of_office"`
	SkipSubjects     []string `toml:"skip_subjects"`
	SkipStatuses     []string `toml:"skip_statuses"`
	DeepWorkCategory string   `toml:"deep_work_category"`
}

// Config is the decoded configuration file. Category keys are kept as
// strings at the TOML layer and converted to integers by Registries.
type Config struct {
	DefaultCategory  int     `toml:"default_category"`
	DefaultAccount   string  `toml:"default_account"`
	MaxEntryDuration float64 `toml:"max_entry_duration"`
	DeepWorkGoal     float64 `toml:"deep_work_goal"`

	Categories map[string]string `toml:"categories"`
	Accounts   map[string]string `toml:"accounts"`

	Outlook OutlookConfig `toml:"outlook"`
}

// Registries converts the raw TOML tables into the typed registries the
// rest of the program works with.
func (c *Config) Registries() (domain.CategoryRegistry, domain.AccountRegistry, error) {
	categories := make(domain.CategoryRegistry, len(c.Categories))
	for key, name := range c.Categories {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, nil, fmt.Errorf("category key %q is not an integer", key)
		}
		categories[id] = name
	}

	accounts := make(domain.AccountRegistry, len(c.Accounts))
	for key, name := range c.Accounts {
		if utf8.RuneCountInString(key) != 1 {
			return nil, nil, fmt.Errorf("account key %q must be a single character", key)
		}
		if _, err := strconv.Atoi(key); err == nil {
			return nil, nil, fmt.Errorf("account key %q collides with category ids", key)
		}
		accounts[domain.NormalizeAccountKey(key)] = name
	}

	return categories, accounts, nil
}

// Validate checks internal consistency: defaults must resolve against the
// registries and numeric limits must be sane.
func (c *Config) Validate() error {
	categories, accounts, err := c.Registries()
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return fmt.Errorf("no categories defined")
	}
	if len(accounts) == 0 {
		return fmt.Errorf("no accounts defined")
	}
	if !categories.Contains(c.DefaultCategory) {
		return fmt.Errorf("default_category %d is not a defined category", c.DefaultCategory)
	}
	if !accounts.Contains(c.DefaultAccount) {
		return fmt.Errorf("default_account %q is not a defined account", c.DefaultAccount)
	}
	if c.MaxEntryDuration <= 0 {
		return fmt.Errorf("max_entry_duration must be positive, got %v", c.MaxEntryDuration)
	}
	if c.DeepWorkGoal < 0 {
		return fmt.Errorf("deep_work_goal cannot be negative, got %v", c.DeepWorkGoal)
	}
	return nil
}

// CategoryNames returns "id: name" lines sorted by id, for the list command.
func (c *Config) CategoryNames() []string {
	categories, _, err := c.Registries()
	if err != nil {
		return nil
	}
	keys := categories.Keys()
	lines := make([]string, 0, len(keys))
	for _, id := range keys {
		lines = append(lines, fmt.Sprintf("%d: %s", id, categories[id]))
	}
	return lines
}

// AccountNames returns "key: name" lines sorted by key, for the list command.
func (c *Config) AccountNames() []string {
	_, accounts, err := c.Registries()
	if err != nil {
		return nil
	}
	keys := accounts.Keys()
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", key, accounts[key]))
	}
	return lines
}
