package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	ConfigDir  = ".notedeck"
	ConfigFile = "cfg.yaml"

	DefaultMode       = "list"
	DefaultCollection = "all"
)

var validModes = []string{"list", "grid"}

// Config is the persisted application configuration. Zero-value fields fall
// back to the documented defaults at load time rather than at each use site.
type Config struct {
	VaultDir   string `yaml:"vaultdir"   json:"vaultdir"`
	Editor     string `yaml:"editor"     json:"editor"`
	Mode       string `yaml:"mode"       json:"mode"`
	Collection string `yaml:"collection" json:"collection"`

	home string
}

// GetConfigPath returns the config file location under home.
func GetConfigPath(home string) string {
	return filepath.Join(home, ConfigDir, ConfigFile)
}

// Load reads the config for home, applying defaults for anything unset. A
// missing file is an error; EnsureExists creates one first.
func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{home: home}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	cfg.ensureDefaults()

	if err := ValidateMode(cfg.Mode); err != nil {
		return nil, err
	}

	cfg.syncViper()
	return cfg, nil
}

// EnsureExists writes an empty config file if none is present yet.
func EnsureExists(home string) error {
	path := GetConfigPath(home)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte{}, 0o644)
}

func (cfg *Config) ensureDefaults() {
	if cfg.VaultDir == "" {
		cfg.VaultDir = filepath.Join(cfg.home, "notes")
	}
	if cfg.Mode == "" {
		cfg.Mode = DefaultMode
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}
}

func (cfg *Config) syncViper() {
	viper.Set("vaultdir", cfg.VaultDir)
	viper.Set("editor", cfg.Editor)
	viper.Set("mode", cfg.Mode)
	viper.Set("collection", cfg.Collection)
}

// ValidateMode rejects view modes the renderer does not know.
func ValidateMode(mode string) error {
	for _, m := range validModes {
		if mode == m {
			return nil
		}
	}
	return fmt.Errorf(
		"invalid mode %q: valid modes are %s",
		mode,
		strings.Join(validModes, ", "),
	)
}

// ChangeMode updates the default view mode and persists it.
func (cfg *Config) ChangeMode(mode string) error {
	if err := ValidateMode(mode); err != nil {
		return err
	}
	cfg.Mode = mode
	return cfg.Save()
}

func (cfg *Config) Save() error {
	cfg.syncViper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	path := GetConfigPath(cfg.home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
