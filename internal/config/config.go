// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the engine tuning knobs. Everything here exists because the
// host layout drifts between releases: vocabularies and thresholds change
// more often than the extraction logic does.
type Config struct {
	Cache struct {
		TTLSeconds            int `yaml:"ttl_seconds"`
		MaxValidationFailures int `yaml:"max_validation_failures"`
	} `yaml:"cache"`

	Keys struct {
		// Labels is the key-assignment vocabulary ("Bedroom Key: AB12").
		Labels []string `yaml:"labels"`
		// ProximityWindow is how many characters past an identifier or name
		// anchor a key assignment may appear and still count as belonging
		// to that resident in report mode.
		ProximityWindow int `yaml:"proximity_window"`
		// MinTokenLength rejects fragments shorter than this.
		MinTokenLength int `yaml:"min_token_length"`
	} `yaml:"keys"`

	Report struct {
		// Titles are explicit report-view title strings.
		Titles []string `yaml:"titles"`
		// NameHeaders are the name-column header strings that, together
		// with the identifier header, signal a multi-record listing.
		NameHeaders []string `yaml:"name_headers"`
		// MatchThreshold: more key-assignment matches than this in one
		// scope means more than one resident is on screen.
		MatchThreshold int `yaml:"match_threshold"`
	} `yaml:"report"`

	Navigation struct {
		// ChromeWords are breadcrumb entries that are navigation chrome,
		// never a resident name.
		ChromeWords []string `yaml:"chrome_words"`
		// ActivePanelClasses mark the currently selected tab panel.
		ActivePanelClasses []string `yaml:"active_panel_classes"`
	} `yaml:"navigation"`
}

// DefaultConfig returns the configuration matching the current host layout.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Cache.TTLSeconds = 15
	cfg.Cache.MaxValidationFailures = 3

	cfg.Keys.Labels = []string{"Bedroom", "Suite", "Floor", "Unit", "Key", "LOANER"}
	cfg.Keys.ProximityWindow = 300
	cfg.Keys.MinTokenLength = 3

	cfg.Report.Titles = []string{"Report Viewer", "Key Report"}
	cfg.Report.NameHeaders = []string{"Last Name", "Name Last"}
	cfg.Report.MatchThreshold = 5

	cfg.Navigation.ChromeWords = []string{"Dashboard", "Desk", "Housing", "Reports", "Home"}
	cfg.Navigation.ActivePanelClasses = []string{"tab_selected", "tab-active", "is-active"}

	return cfg
}

// LoadConfig loads configuration from a YAML file. An empty path returns
// the defaults. Fields absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// LoadConfigOrDefault loads configuration from a file, falling back to
// defaults on any error. Bad tuning must never take the engine down.
func LoadConfigOrDefault(path string) *Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// CacheTTL returns the cache time-to-live as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}
