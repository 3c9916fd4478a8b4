package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/inovacc/catalogr/internal/database"
	"github.com/inovacc/catalogr/internal/model"
	"github.com/inovacc/catalogr/internal/params"
	"gopkg.in/ini.v1"
)

const configFileName = "catalogr.ini"

// LoadConfig assembles the effective configuration. Precedence, lowest
// first: stored config, optional INI file in the appdata directory,
// CATALOGR_* environment variables.
func LoadConfig(store database.Store) (*model.Config, error) {
	cfg, err := store.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := applyFileOverrides(cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = model.DefaultConfig().TimeoutSeconds
	}

	return cfg, nil
}

func applyFileOverrides(cfg *model.Config) error {
	return applyFileOverridesFrom(cfg, filepath.Join(params.AppdataDir, configFileName))
}

func applyFileOverridesFrom(cfg *model.Config, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", configFileName, err)
	}

	if err := file.Section("api").MapTo(cfg); err != nil {
		return fmt.Errorf("failed to map %s: %w", configFileName, err)
	}

	return nil
}

func applyEnvOverrides(cfg *model.Config) {
	if v := os.Getenv("CATALOGR_API_BASE"); v != "" {
		cfg.APIBase = v
	}

	if v := os.Getenv("CATALOGR_API_PATH"); v != "" {
		cfg.APIPath = v
	}

	if v := os.Getenv("CATALOGR_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.TimeoutSeconds = secs
		}
	}
}

// ShowConfig displays the current configuration
func ShowConfig(store database.Store) error {
	cfg, err := LoadConfig(store)
	if err != nil {
		return err
	}

	fmt.Println("Current Configuration:")
	fmt.Println("=====================")
	fmt.Printf("API Base:        %s\n", cfg.APIBase)
	fmt.Printf("API Path:        %s\n", cfg.APIPath)
	fmt.Printf("Request Timeout: %d seconds\n", cfg.TimeoutSeconds)

	return nil
}

// ResetConfig resets the configuration to default values
func ResetConfig(store database.Store) error {
	defaultCfg := model.DefaultConfig()

	if err := store.SaveConfig(&defaultCfg); err != nil {
		return fmt.Errorf("failed to reset configuration: %w", err)
	}

	fmt.Println("✓ Configuration reset to defaults:")
	fmt.Println("==================================")
	fmt.Printf("API Base:        %s\n", defaultCfg.APIBase)
	fmt.Printf("API Path:        %s\n", defaultCfg.APIPath)
	fmt.Printf("Request Timeout: %d seconds\n", defaultCfg.TimeoutSeconds)

	return nil
}
