// Package config wraps viper for the lycans CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	DataPath           string `mapstructure:"data_path"`
	TraitorJoinsWolves bool   `mapstructure:"traitor_joins_wolves"`
	GroupSolos         bool   `mapstructure:"group_solos"`
	MinGames           int    `mapstructure:"min_games"`
	AchievementsFile   string `mapstructure:"achievements_file"`
	APIKey             string `mapstructure:"api_key"`
	APIBase            string `mapstructure:"api_base"`
	Model              string `mapstructure:"model"`
}

const (
	DefaultDataPath   = "games.json"
	DefaultMinGames   = 5
	DefaultModel      = "gpt-4.1-mini"
	DefaultConfigName = "config"
	DefaultConfigDir  = "lycans"
	EnvPrefix         = "LYCANS"
)

// settableKeys are the keys `lycans config set` accepts.
var settableKeys = map[string]string{
	"data_path":            "path to the game log JSON",
	"traitor_joins_wolves": "bucket the Traître with the wolves (true/false)",
	"group_solos":          "collapse solo camps into one bucket (true/false)",
	"min_games":            "minimum games for ranking inclusion",
	"achievements_file":    "YAML file overriding achievement thresholds",
	"api_key":              "OpenAI-compatible API key for insights",
	"api_base":             "API base URL override",
	"model":                "model used for insights",
}

// InitConfig loads configuration from cfgFile, or from the default
// location (~/.config/lycans/config.yaml) plus LYCANS_* environment
// variables. A missing config file is not an error.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := defaultConfigDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(configDir)
		viper.SetConfigName(DefaultConfigName)
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("data_path", DefaultDataPath)
	viper.SetDefault("traitor_joins_wolves", false)
	viper.SetDefault("group_solos", false)
	viper.SetDefault("min_games", DefaultMinGames)
	viper.SetDefault("achievements_file", "")
	viper.SetDefault("api_key", "")
	viper.SetDefault("api_base", "")
	viper.SetDefault("model", DefaultModel)

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// GetConfig returns the current configuration.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SetConfigValue stages a value; SaveConfig persists it.
func SetConfigValue(key string, value any) {
	viper.Set(key, value)
}

// SaveConfig writes the configuration to the active config file, creating
// the default location when none was loaded.
func SaveConfig() error {
	path := viper.ConfigFileUsed()
	if path == "" {
		configDir, err := defaultConfigDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		path = filepath.Join(configDir, DefaultConfigName+".yaml")
	}
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// IsValidKey reports whether key is settable via the CLI.
func IsValidKey(key string) bool {
	_, ok := settableKeys[key]
	return ok
}

// Keys returns the settable keys with their descriptions, sorted by key.
func Keys() [][2]string {
	keys := make([][2]string, 0, len(settableKeys))
	for k, desc := range settableKeys {
		keys = append(keys, [2]string{k, desc})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i][0] < keys[j][0] })
	return keys
}

func defaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, DefaultConfigDir), nil
}
