package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	DataDir      string        `mapstructure:"data_dir"`
	LogLevel     string        `mapstructure:"log_level"`
	LogFormat    string        `mapstructure:"log_format"` // text, json
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	UseBrowser   bool          `mapstructure:"use_browser"`
	UserAgent    string        `mapstructure:"user_agent"`
	CatalogFile  string        `mapstructure:"catalog_file"`
}

// Keys lists the settings that can be changed with Set
var Keys = []string{"data_dir", "log_level", "log_format", "fetch_timeout", "use_browser", "user_agent", "catalog_file"}

var AppConfig *Config

// Initialize loads or creates the configuration file
func Initialize() error {
	configDir, err := Dir()
	if err != nil {
		return err
	}
	return InitializeIn(configDir)
}

// InitializeIn loads configuration from config.yaml inside dir
func InitializeIn(configDir string) error {
	configFile := filepath.Join(configDir, "config.yaml")

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create default config if it doesn't exist
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	// .env is optional
	_ = godotenv.Load()

	viper.Reset()
	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("CAREERKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("data_dir", configDir)
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("fetch_timeout", "20s")
	viper.SetDefault("use_browser", false)
	viper.SetDefault("user_agent", "Mozilla/5.0 (compatible; careerkit/1.0)")
	viper.SetDefault("catalog_file", "")

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// Unmarshal into struct
	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if AppConfig.DataDir == "" {
		AppConfig.DataDir = configDir
	}
	AppConfig.DataDir = expandHome(AppConfig.DataDir)

	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# careerkit configuration
# data_dir holds careerkit.db; empty means the directory of this file
data_dir: ""

# Logging: panic, fatal, error, warn, info, debug, trace
log_level: warn
log_format: text

# Job description fetching
fetch_timeout: 20s
use_browser: false
user_agent: "Mozilla/5.0 (compatible; careerkit/1.0)"

# Optional JSON job catalog replacing the built-in one
catalog_file: ""
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown key %q (must be one of: %s)", key, strings.Join(Keys, ", "))
	}
	switch key {
	case "fetch_timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
	case "use_browser":
		if value != "true" && value != "false" {
			return fmt.Errorf("use_browser must be true or false")
		}
	case "log_format":
		if value != "text" && value != "json" {
			return fmt.Errorf("log_format must be text or json")
		}
	}
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// Dir returns the directory holding the config file
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".careerkit"), nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	dir, _ := Dir()
	return filepath.Join(dir, "config.yaml")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
