package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Aluranae/hbnb-cli/internal/db"
)

// defaultServerURL points at a local development API server.
const defaultServerURL = "http://localhost:5000/api/v1"

// CLIConfig holds CLI configuration persisted to disk. Environment
// variables override the file.
type CLIConfig struct {
	ServerURL string `yaml:"server_url,omitempty" env:"HBNB_SERVER_URL"`
	SessionDB string `yaml:"session_db,omitempty" env:"HBNB_SESSION_DB"`
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "hbnb", "config.yaml"), nil
}

// loadConfig reads the CLI config from disk, then overlays environment
// variables (a local .env file is loaded first, if present).
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (CLIConfig, error) {
	_ = godotenv.Load()

	var cfg CLIConfig

	path, err := configPath()
	if err != nil {
		return CLIConfig{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}

// saveConfig writes the CLI config to disk.
func saveConfig(cfg CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// getServerURL returns the API base URL from config/env, or the default.
func getServerURL() string {
	cfg, err := loadConfig()
	if err == nil && cfg.ServerURL != "" {
		return cfg.ServerURL
	}
	return defaultServerURL
}

// getSessionDBPath returns the session database path from config/env,
// or the default under ~/.config/hbnb.
func getSessionDBPath() (string, error) {
	cfg, err := loadConfig()
	if err == nil && cfg.SessionDB != "" {
		return cfg.SessionDB, nil
	}
	return db.DefaultPath()
}
