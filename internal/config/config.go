// Package config defines the configuration structures shared by the CLI and
// the web server and loads them from YAML, .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // zone lookups work without a host zoneinfo database

	"github.com/AlainEkh/heloc-calculator/internal/brand"
	"github.com/AlainEkh/heloc-calculator/internal/i18n"
	"github.com/AlainEkh/heloc-calculator/pkg/constants"
	"github.com/AlainEkh/heloc-calculator/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the calculator.
type Configuration struct {
	Server     ServerConfig     `mapstructure:"server" yaml:"server,omitempty"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging,omitempty"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output,omitempty"`
	Calculator CalculatorConfig `mapstructure:"calculator" yaml:"calculator,omitempty"`
	Locale     LocaleConfig     `mapstructure:"locale" yaml:"locale,omitempty"`
	Brands     BrandsConfig     `mapstructure:"brands" yaml:"brands,omitempty"`
	Tracing    TracingConfig    `mapstructure:"tracing" yaml:"tracing,omitempty"`
	Metrics    MetricsConfig    `mapstructure:"metrics" yaml:"metrics,omitempty"`
}

// ServerConfig defines runtime parameters for the HTTP server.
type ServerConfig struct {
	Address         string        `mapstructure:"address" yaml:"address,omitempty"`
	MaxBodySize     string        `mapstructure:"maxBodySize" yaml:"maxBodySize,omitempty"` // e.g. 64K, 1M
	ReadTimeout     time.Duration `mapstructure:"readTimeout" yaml:"readTimeout,omitempty"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout" yaml:"writeTimeout,omitempty"`
	IdleTimeout     time.Duration `mapstructure:"idleTimeout" yaml:"idleTimeout,omitempty"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv, json, yaml
}

// CalculatorConfig controls how "today" is decided.
type CalculatorConfig struct {
	TimeZone string `mapstructure:"timeZone" yaml:"timeZone,omitempty"` // IANA name, empty for local
}

// LocaleConfig selects the fallback locale.
type LocaleConfig struct {
	Default string `mapstructure:"default" yaml:"default,omitempty"`
}

// BrandsConfig lists the selectable brands. An empty list uses the built-in
// set.
type BrandsConfig struct {
	Default string        `mapstructure:"default" yaml:"default,omitempty"`
	List    []brand.Brand `mapstructure:"list" yaml:"list,omitempty"`
}

// TracingConfig configures the OTLP exporter. Tracing is local-only when
// Endpoint is empty.
type TracingConfig struct {
	Endpoint    string `mapstructure:"endpoint" yaml:"endpoint,omitempty"`
	Insecure    bool   `mapstructure:"insecure" yaml:"insecure,omitempty"`
	ServiceName string `mapstructure:"serviceName" yaml:"serviceName,omitempty"`
}

// MetricsConfig toggles the /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", constants.DefaultServerAddress)
	v.SetDefault("server.maxBodySize", "64K")
	v.SetDefault("server.readTimeout", 10*time.Second)
	v.SetDefault("server.writeTimeout", 10*time.Second)
	v.SetDefault("server.idleTimeout", 60*time.Second)
	v.SetDefault("server.shutdownTimeout", 15*time.Second)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("calculator.timeZone", "")
	v.SetDefault("locale.default", constants.DefaultLocale)
	v.SetDefault("brands.default", "")
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.insecure", false)
	v.SetDefault("tracing.serviceName", constants.DefaultServiceName)
	v.SetDefault("metrics.enabled", true)
}

// LoadDotEnv loads environment variables from the given .env files, or from
// ".env" when none are given. Missing files are ignored; variables already
// set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("error loading env file %s: %w", path, err)
		}
	}
	return nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. HELOC_* environment variables override file values,
// e.g. HELOC_SERVER_ADDRESS. A missing file yields the defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// Validate checks every section and returns the first problem found.
func (c *Configuration) Validate() error {
	if _, err := ParseSize(c.Server.MaxBodySize); err != nil {
		return fmt.Errorf("server.maxBodySize: %w", err)
	}
	for _, timeout := range []struct {
		name  string
		value time.Duration
	}{
		{"server.readTimeout", c.Server.ReadTimeout},
		{"server.writeTimeout", c.Server.WriteTimeout},
		{"server.idleTimeout", c.Server.IdleTimeout},
		{"server.shutdownTimeout", c.Server.ShutdownTimeout},
	} {
		if err := validation.ValidateTimeout(timeout.name, timeout.value); err != nil {
			return err
		}
	}

	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
		return fmt.Errorf("logging.format: %w", err)
	}
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if err := validation.ValidateTimeZone(c.Calculator.TimeZone); err != nil {
		return fmt.Errorf("calculator.timeZone: %w", err)
	}
	if _, ok := i18n.Normalize(c.Locale.Default); !ok {
		return fmt.Errorf("locale.default: unsupported locale %q, expected one of %s",
			c.Locale.Default, strings.Join(i18n.Supported(), ", "))
	}
	if _, err := c.BrandRegistry(); err != nil {
		return fmt.Errorf("brands: %w", err)
	}
	return nil
}

// MaxBodyBytes returns the request body limit in bytes.
func (c *Configuration) MaxBodyBytes() int64 {
	size, err := ParseSize(c.Server.MaxBodySize)
	if err != nil || size <= 0 {
		return constants.DefaultMaxBodySizeBytes
	}
	return size
}

// Location returns the time zone that decides the current date.
func (c *Configuration) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Calculator.TimeZone) == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Calculator.TimeZone)
}

// DefaultLocale returns the normalized default locale.
func (c *Configuration) DefaultLocale() string {
	if locale, ok := i18n.Normalize(c.Locale.Default); ok {
		return locale
	}
	return constants.DefaultLocale
}

// BrandRegistry builds the brand set described by the brands section.
func (c *Configuration) BrandRegistry() (*brand.Registry, error) {
	return brand.NewRegistry(c.Brands.List, c.Brands.Default)
}
