package cli

import (
	"fmt"

	"github.com/rmaxey/tradelog/config"
	"github.com/rmaxey/tradelog/ledger"
)

// resolveConfig merges the optional config file with flag overrides.
func (rc *RootConfig) resolveConfig() (*config.Config, error) {
	var cfg *config.Config
	if rc.ConfigPath != "" {
		loaded, err := config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if rc.StoreType != "" {
		cfg.Ledger.Type = rc.StoreType
	}
	if rc.DataFile != "" {
		cfg.Ledger.CSVFile = rc.DataFile
	}
	if rc.DBPath != "" {
		cfg.Ledger.DBPath = rc.DBPath
		if rc.StoreType == "" {
			cfg.Ledger.Type = "sqlite"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openEngine builds the configured store and loads the ledger into an engine.
// The returned close func releases store resources (a no-op for CSV).
func (rc *RootConfig) openEngine() (*ledger.Engine, func() error, error) {
	cfg, err := rc.resolveConfig()
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Ledger.Type {
	case "sqlite":
		st, err := ledger.NewSQLiteStore(cfg.Ledger.DBPath)
		if err != nil {
			return nil, nil, err
		}
		eng, err := ledger.NewEngine(st)
		if err != nil {
			st.Close()
			return nil, nil, err
		}
		return eng, st.Close, nil
	case "csv":
		eng, err := ledger.NewEngine(ledger.NewCSVStore(cfg.Ledger.CSVFile))
		if err != nil {
			return nil, nil, err
		}
		return eng, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store type %q", cfg.Ledger.Type)
	}
}
