package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/acos-calculator/internal/domain"
)

// Configuration is the top-level acos.yaml document
type Configuration struct {
	Server         ServerConfig    `yaml:"server"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
	Log            LogConfig       `yaml:"log"`
	DefaultVariant string          `yaml:"default_variant"`
	Variants       []VariantConfig `yaml:"variants"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	H2C             bool          `yaml:"h2c"`
}

// RateLimitConfig configures the per-client token bucket on POST routes.
// Capacity 0 disables limiting.
type RateLimitConfig struct {
	Capacity int           `yaml:"capacity"`
	Refill   time.Duration `yaml:"refill"`
}

// LogConfig selects the slog level and handler
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" (tint) or "json"
}

// VariantConfig declares a custom page variant
type VariantConfig struct {
	Name            string   `yaml:"name"`
	DivisorLabel    string   `yaml:"divisor_label"`
	FieldOrder      []string `yaml:"field_order"`
	ShowHelperText  bool     `yaml:"show_helper_text"`
	ShowBreadcrumbs bool     `yaml:"show_breadcrumbs"`
	HelperText      string   `yaml:"helper_text"`
}

// Default returns the configuration used when no file is given
func Default() *Configuration {
	return &Configuration{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Capacity: 60,
			Refill:   time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		DefaultVariant: domain.DefaultVariant,
	}
}

// Loader reads configuration from YAML files and the environment
type Loader struct {
	Getenv func(string) string
}

// NewLoader creates a loader reading the process environment
func NewLoader() *Loader {
	return &Loader{Getenv: os.Getenv}
}

// LoadDotEnv loads KEY=value pairs from the given files (default ".env").
// Missing files are ignored; variables already set are not overwritten.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}

// Load returns the defaults when filename is empty, otherwise the parsed file.
// Environment overrides are applied and the result is validated either way.
func (l *Loader) Load(filename string) (*Configuration, error) {
	if filename == "" {
		cfg := Default()
		l.ApplyEnv(cfg)
		if err := l.Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
		return cfg, nil
	}
	return l.LoadFromFile(filename)
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func (l *Loader) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	l.ApplyEnv(cfg)

	if err := l.Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from ACOS_ADDR, ACOS_VARIANT, LOG_LEVEL and LOG_FORMAT
func (l *Loader) ApplyEnv(cfg *Configuration) {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv("ACOS_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := getenv("ACOS_VARIANT"); v != "" {
		cfg.DefaultVariant = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// Validate checks the loaded configuration
func (l *Loader) Validate(cfg *Configuration) error {
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return fmt.Errorf("server address is required")
	}
	if cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 || cfg.Server.IdleTimeout < 0 {
		return fmt.Errorf("server timeouts cannot be negative")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server shutdown timeout must be positive")
	}
	if cfg.RateLimit.Capacity < 0 {
		return fmt.Errorf("rate limit capacity cannot be negative")
	}
	if cfg.RateLimit.Capacity > 0 && cfg.RateLimit.Refill <= 0 {
		return fmt.Errorf("rate limit refill must be positive when capacity is set")
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log format must be 'text' or 'json'")
	}

	variants, err := cfg.BuildVariants()
	if err != nil {
		return err
	}
	if _, ok := variants[cfg.DefaultVariant]; !ok {
		return fmt.Errorf("default variant %q is not defined", cfg.DefaultVariant)
	}
	return nil
}

// BuildVariants returns the presets merged with the configured variants.
// A configured variant replaces a preset of the same name.
func (cfg *Configuration) BuildVariants() (map[string]domain.Variant, error) {
	variants := make(map[string]domain.Variant, len(domain.Presets)+len(cfg.Variants))
	for name, v := range domain.Presets {
		variants[name] = v
	}
	for i, vc := range cfg.Variants {
		v, err := vc.Variant()
		if err != nil {
			return nil, fmt.Errorf("variant %d validation failed: %w", i, err)
		}
		variants[v.Name] = v
	}
	return variants, nil
}

// Variant converts the YAML declaration into a domain.Variant
func (vc VariantConfig) Variant() (domain.Variant, error) {
	v := domain.Variant{
		Name:            strings.TrimSpace(vc.Name),
		ShowHelperText:  vc.ShowHelperText,
		ShowBreadcrumbs: vc.ShowBreadcrumbs,
		HelperText:      vc.HelperText,
	}

	switch strings.ToLower(strings.TrimSpace(vc.DivisorLabel)) {
	case "", "sales":
		v.DivisorLabel = domain.DivisorSales
	case "revenue":
		v.DivisorLabel = domain.DivisorRevenue
	default:
		return domain.Variant{}, fmt.Errorf("divisor label must be 'Sales' or 'Revenue'")
	}

	switch len(vc.FieldOrder) {
	case 0:
		v.FieldOrder = [2]domain.Field{domain.FieldSpend, domain.FieldDivisor}
	case 2:
		for i, name := range vc.FieldOrder {
			f, ok := domain.ParseField(strings.ToLower(strings.TrimSpace(name)))
			if !ok {
				return domain.Variant{}, fmt.Errorf("unknown field %q in field_order", name)
			}
			v.FieldOrder[i] = f
		}
	default:
		return domain.Variant{}, fmt.Errorf("field_order must list exactly two fields")
	}

	if v.ShowHelperText && strings.TrimSpace(v.HelperText) == "" {
		v.HelperText = domain.DefaultHelperText
	}
	if err := v.Validate(); err != nil {
		return domain.Variant{}, err
	}
	return v, nil
}
