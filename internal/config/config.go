// Package config loads CLI configuration from flags, a config file, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/output"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/parser"
)

// EnvPrefix prefixes every environment variable, e.g. RPTSTRUCT_OUTPUT_DIR.
const EnvPrefix = "RPTSTRUCT"

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds resolved settings.
type Config struct {
	InputDir       string
	OutputDir      string
	LogLevel       string
	LogFormat      string
	Workers        int
	Formats        []output.Format
	UnpackCompound bool
	Scan           parser.ScanParams
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	scan := parser.DefaultScanParams()
	v.SetDefault("input_dir", "./input")
	v.SetDefault("output_dir", "./output")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("workers", 4)
	v.SetDefault("formats", []string{string(output.FormatCSV), string(output.FormatXLSX)})
	v.SetDefault("unpack_compound", false)
	v.SetDefault("scan.min_len", scan.MinLen)
	v.SetDefault("scan.max_len", scan.MaxLen)
}

// Load reads .env (if present), the optional config file and environment into v,
// then resolves and validates the result.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	SetDefaults(v)
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	formats, err := output.ParseFormats(splitList(v.GetStringSlice("formats")))
	if err != nil {
		return nil, err
	}

	scan := parser.DefaultScanParams()
	scan.MinLen = v.GetInt("scan.min_len")
	scan.MaxLen = v.GetInt("scan.max_len")

	cfg := &Config{
		InputDir:       v.GetString("input_dir"),
		OutputDir:      v.GetString("output_dir"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
		Workers:        v.GetInt("workers"),
		Formats:        formats,
		UnpackCompound: v.GetBool("unpack_compound"),
		Scan:           scan,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the Config for invalid or missing values.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: input_dir must not be empty", ErrInvalidConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive", ErrInvalidConfig)
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("%w: at least one output format is required", ErrInvalidConfig)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unsupported log format: %s", ErrInvalidConfig, c.LogFormat)
	}
	if err := c.Scan.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// EnsureDirs creates the input and output directories.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.InputDir, c.OutputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// splitList accepts both list values and comma-joined strings from the environment.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}
