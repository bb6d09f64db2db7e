package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Addr    string            `yaml:"addr"     mapstructure:"addr"`
	Realm   string            `yaml:"realm"    mapstructure:"realm"`
	LogJSON bool              `yaml:"log_json" mapstructure:"log_json"`
	Users   map[string]string `yaml:"users"    mapstructure:"users"`
}

func ensureDir(p string) error { return os.MkdirAll(p, 0o755) }

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".doorman"), nil
}

func loadConfig(path string) (*Config, error) {
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("addr", ":8085")
	v.SetDefault("realm", "Private Area")
	v.SetDefault("log_json", false)
	v.SetDefault("users", map[string]string{})

	// Env overrides: DOORMAN_ADDR, DOORMAN_REALM, DOORMAN_LOG_JSON
	v.SetEnvPrefix("DOORMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Read file if it exists, otherwise return defaults without error
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func saveConfig(path string, c *Config) error {
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, "config.yaml")
	}
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("addr", c.Addr)
	v.Set("realm", c.Realm)
	v.Set("log_json", c.LogJSON)
	v.Set("users", c.Users)

	if err := v.WriteConfigAs(path); err != nil {
		return err
	}

	// the users map holds passwords; owner-only
	_ = os.Chmod(path, 0o600)
	return nil
}
