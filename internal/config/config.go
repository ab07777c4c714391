package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/palctl/internal/palette"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "palctl", "config.yml")
}

// Load reads the config from disk (or env). A missing file is fine: all
// keys have defaults, so palctl works with no config at all.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("defaults.version", palette.DefaultVersion)
	v.SetDefault("defaults.shortcuts", palette.DefaultShortcuts)
	v.SetDefault("defaults.frame_count", palette.DefaultFrameCount)
	v.SetDefault("editor.sort", "index")
	v.SetDefault("editor.descending", false)
	v.SetDefault("editor.case_sensitive", false)

	v.SetEnvPrefix("PALCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("PALCTL_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Defaults.FrameCount <= 0 {
		cfg.Defaults.FrameCount = palette.DefaultFrameCount
	}
	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}
