// Viper-based hierarchical configuration management: defaults, then an
// optional YAML config file, then KUITTI_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Receipt struct {
		Currency  string `mapstructure:"currency" yaml:"currency"`
		AliasFile string `mapstructure:"alias_file" yaml:"alias_file"`
	} `mapstructure:"receipt" yaml:"receipt"`

	OCR struct {
		Model        string `mapstructure:"model" yaml:"model"`
		MaxPages     int    `mapstructure:"max_pages" yaml:"max_pages"`
		DPI          int    `mapstructure:"dpi" yaml:"dpi"`
		MinTextChars int    `mapstructure:"min_text_chars" yaml:"min_text_chars"`
		APIKey       string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ocr" yaml:"ocr"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.kuitti-csv")
	v.AddConfigPath(".kuitti-csv")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("KUITTI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The API key always comes from the unprefixed env variable
	if err := v.BindEnv("ocr.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Receipt defaults
	v.SetDefault("receipt.currency", "EUR")
	v.SetDefault("receipt.alias_file", "")

	// OCR defaults, tuned for single-page grocery receipts
	v.SetDefault("ocr.model", "gemini-2.0-flash")
	v.SetDefault("ocr.max_pages", 3)
	v.SetDefault("ocr.dpi", 200)
	v.SetDefault("ocr.min_text_chars", 200)

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Receipt.Currency == "" {
		return fmt.Errorf("receipt.currency must not be empty")
	}

	if config.OCR.MaxPages < 1 {
		return fmt.Errorf("ocr.max_pages must be at least 1, got: %d", config.OCR.MaxPages)
	}

	if config.OCR.DPI < 72 || config.OCR.DPI > 600 {
		return fmt.Errorf("ocr.dpi must be between 72 and 600, got: %d", config.OCR.DPI)
	}

	return nil
}
