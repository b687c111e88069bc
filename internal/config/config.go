// Package config handles loading and saving user configuration for cj.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// File names inside the config directory.
const (
	ConfigFile = "config.yaml"
	CommonFile = "common.yaml"
)

// Config holds all user configuration.
type Config struct {
	Oracle OracleConfig `yaml:"oracle"`
	Log    LogConfig    `yaml:"log"`
}

// OracleConfig selects the remote backend used for characters missing from the tables.
type OracleConfig struct {
	Backend string        `yaml:"backend"`           // gemini or anthropic
	Model   string        `yaml:"model,omitempty"`   // empty means the backend default
	APIKey  string        `yaml:"api_key,omitempty"` // usually left to the environment
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig controls the log file. An empty Dir disables file logging.
type LogConfig struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Oracle: OracleConfig{
			Backend: "gemini",
			Timeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:      "warn",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

// apiKeyEnv lists the environment variables consulted per backend when no key
// is configured explicitly.
var apiKeyEnv = map[string][]string{
	"gemini":    {"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY"},
	"anthropic": {"ANTHROPIC_API_KEY"},
}

// LoadFile reads a config file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Load reads config.yaml from dir (if present) and applies overrides from v,
// which carries flags and CJ_* environment variables.
func Load(dir string, v *viper.Viper) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); err == nil {
		if cfg, err = LoadFile(path); err != nil {
			return nil, err
		}
	}

	if v != nil {
		applyOverrides(cfg, v)
	}
	cfg.Oracle.Backend = strings.ToLower(strings.TrimSpace(cfg.Oracle.Backend))
	if cfg.Oracle.Backend == "" {
		cfg.Oracle.Backend = "gemini"
	}

	if cfg.Oracle.APIKey == "" {
		for _, name := range apiKeyEnv[cfg.Oracle.Backend] {
			if key := strings.TrimSpace(os.Getenv(name)); key != "" {
				cfg.Oracle.APIKey = key
				break
			}
		}
	}

	return cfg, nil
}

func applyOverrides(cfg *Config, v *viper.Viper) {
	if v.IsSet("oracle.backend") {
		cfg.Oracle.Backend = v.GetString("oracle.backend")
	}
	if v.IsSet("oracle.model") {
		cfg.Oracle.Model = v.GetString("oracle.model")
	}
	if v.IsSet("oracle.api_key") {
		cfg.Oracle.APIKey = v.GetString("oracle.api_key")
	}
	if v.IsSet("oracle.timeout") {
		cfg.Oracle.Timeout = v.GetDuration("oracle.timeout")
	}
	if v.IsSet("log.level") {
		cfg.Log.Level = v.GetString("log.level")
	}
	if v.IsSet("log.dir") {
		cfg.Log.Dir = v.GetString("log.dir")
	}
	if v.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}
}

// NewViper returns a viper instance that maps keys like oracle.backend to
// CJ_ORACLE_BACKEND.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("CJ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"oracle.backend", "oracle.model", "oracle.api_key", "oracle.timeout", "log.level", "log.dir"} {
		// AutomaticEnv only answers IsSet for bound keys.
		_ = v.BindEnv(key)
	}
	return v
}

// LoadDotEnv loads a .env file if one exists.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// LoadCommon loads extra common characters from a YAML file.
func LoadCommon(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading common file: %w", err)
	}

	var common struct {
		Characters map[string]string `yaml:"characters"`
	}
	if err := yaml.Unmarshal(data, &common); err != nil {
		return nil, fmt.Errorf("parsing common file: %w", err)
	}

	return common.Characters, nil
}

// LoadCommonDir loads common.yaml from dir. A missing file is not an error.
func LoadCommonDir(dir string) (map[string]string, error) {
	path := filepath.Join(dir, CommonFile)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return LoadCommon(path)
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// SaveCommon writes extra common characters as YAML.
func SaveCommon(path string, characters map[string]string) error {
	data := struct {
		Characters map[string]string `yaml:"characters"`
	}{Characters: characters}

	out, err := yaml.Marshal(&data)
	if err != nil {
		return fmt.Errorf("marshaling common characters: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing common file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cj"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
