package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides: PALETTE_ADDR, PALETTE_LOG_LEVEL.
const EnvPrefix = "PALETTE"

type Config struct {
	Addr             string `mapstructure:"addr"`
	LogLevel         string `mapstructure:"log_level"`
	LogFormat        string `mapstructure:"log_format"`
	ContractFile     string `mapstructure:"contract_file"`
	OpenAPIFile      string `mapstructure:"openapi_file"`
	OpenAPIOperation string `mapstructure:"openapi_operation"`
	ThemeName        string `mapstructure:"theme_name"`
	ThemeVariant     string `mapstructure:"theme_variant"`
	TemplatesDir     string `mapstructure:"templates_dir"`
	MetricsEnabled   bool   `mapstructure:"metrics_enabled"`
}

const (
	DefaultAddr      = ":8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
	DefaultTheme     = "tenant"
)

var defaults = map[string]any{
	"addr":              DefaultAddr,
	"log_level":         DefaultLogLevel,
	"log_format":        DefaultLogFormat,
	"contract_file":     "",
	"openapi_file":      "",
	"openapi_operation": "",
	"theme_name":        DefaultTheme,
	"theme_variant":     "",
	"templates_dir":     "",
	"metrics_enabled":   true,
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg, err := decode(viper.New())
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadDotEnv loads .env files into the process environment. Missing files are
// ignored; with no arguments ".env" is tried.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return nil
}

// Load reads path (any format viper supports) when it is not empty, applies
// PALETTE_* environment overrides and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	return cfg, validateConfig(cfg)
}

func decode(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return errors.New("config: addr is required")
	}
	if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
		return fmt.Errorf("config: invalid addr %q: %w", cfg.Addr, err)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log_level %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: invalid log_format %q", cfg.LogFormat)
	}
	if cfg.ContractFile != "" && cfg.OpenAPIFile != "" {
		return errors.New("config: contract_file and openapi_file are mutually exclusive")
	}
	if cfg.OpenAPIFile != "" && cfg.OpenAPIOperation == "" {
		return errors.New("config: openapi_operation is required with openapi_file")
	}
	if cfg.TemplatesDir != "" {
		info, err := os.Stat(cfg.TemplatesDir)
		if err != nil {
			return fmt.Errorf("config: templates_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("config: templates_dir %q is not a directory", cfg.TemplatesDir)
		}
	}
	return nil
}

// ContractSource reports the configured contract location and, for OpenAPI
// documents, the operation to read. An empty location means the built-in
// contract.
func (c *Config) ContractSource() (location, operationID string) {
	if c.OpenAPIFile != "" {
		return c.OpenAPIFile, c.OpenAPIOperation
	}
	return c.ContractFile, ""
}
