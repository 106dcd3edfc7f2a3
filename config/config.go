package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI needs to locate and render the ledger.
type Config struct {
	Ledger  LedgerConfig  `json:"ledger" yaml:"ledger"`
	Display DisplayConfig `json:"display" yaml:"display"`
}

// LedgerConfig selects the persistence backend.
type LedgerConfig struct {
	Type    string `json:"type" yaml:"type"` // "csv" or "sqlite"
	CSVFile string `json:"csv_file,omitempty" yaml:"csv_file,omitempty"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// DisplayConfig controls formatting at the boundary only; the ledger engine
// never sees it.
type DisplayConfig struct {
	Currency string `json:"currency" yaml:"currency"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Ledger.Type != "csv" && c.Ledger.Type != "sqlite" {
		return fmt.Errorf("ledger.type must be 'csv' or 'sqlite'")
	}
	if c.Ledger.Type == "csv" && c.Ledger.CSVFile == "" {
		return fmt.Errorf("ledger.csv_file required for CSV type")
	}
	if c.Ledger.Type == "sqlite" && c.Ledger.DBPath == "" {
		return fmt.Errorf("ledger.db_path required for SQLite type")
	}
	if c.Display.Currency == "" {
		return fmt.Errorf("display.currency is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Type:    "csv",
			CSVFile: "./trades.csv",
			DBPath:  "./trades.sqlite",
		},
		Display: DisplayConfig{
			Currency: "$",
		},
	}
}
