package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default fuzzy thresholds. The execution form threshold is higher
	// because its phrase is long and distinctive; supporting documents
	// carry shorter, noisier names.
	DefaultFormThreshold = 85
	DefaultDocThreshold  = 70

	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the extraction pipeline.
type Config struct {
	// InputsDir is the root holding numerically-named case folders.
	InputsDir string
	// OutputDir receives the dataset export and rendered documents.
	OutputDir string

	// TemplatePath points at the DOCX placeholder template; only
	// required when RenderDocs is set.
	TemplatePath string
	RenderDocs   bool

	FormThreshold int
	DocThreshold  int

	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		InputsDir:     filepath.Join(currentDir, "inputs"),
		OutputDir:     filepath.Join(currentDir, "outputs"),
		TemplatePath:  filepath.Join(currentDir, "template.docx"),
		RenderDocs:    false,
		FormThreshold: DefaultFormThreshold,
		DocThreshold:  DefaultDocThreshold,
		LogLevel:      DefaultLogLevel,
		MaxFileSize:   DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()

	pflag.Parse()

	populateConfigFromViper(cfg)

	for _, path := range []*string{&cfg.InputsDir, &cfg.OutputDir, &cfg.TemplatePath} {
		if *path == "" {
			continue
		}
		if expanded, err := filepath.Abs(*path); err == nil {
			*path = expanded
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("EXPEDIENTES")
	viper.AutomaticEnv()

	viper.SetDefault("inputs", cfg.InputsDir)
	viper.SetDefault("output", cfg.OutputDir)
	viper.SetDefault("template", cfg.TemplatePath)
	viper.SetDefault("renderdocs", cfg.RenderDocs)
	viper.SetDefault("formthreshold", cfg.FormThreshold)
	viper.SetDefault("docthreshold", cfg.DocThreshold)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("inputs", cfg.InputsDir, "Root directory containing numeric case folders")
	pflag.String("output", cfg.OutputDir, "Directory for the dataset export and rendered documents")
	pflag.String("template", cfg.TemplatePath, "DOCX placeholder template (used with --renderdocs)")
	pflag.Bool("renderdocs", cfg.RenderDocs, "Render one document per case after exporting the dataset")
	pflag.Int("formthreshold", cfg.FormThreshold, "Fuzzy match threshold for the execution form (0-100)")
	pflag.Int("docthreshold", cfg.DocThreshold, "Fuzzy match threshold for supporting documents (0-100)")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	for _, name := range []string{
		"inputs", "output", "template", "renderdocs",
		"formthreshold", "docthreshold", "loglevel", "maxfilesize",
	} {
		_ = viper.BindPFlag(name, pflag.Lookup(name))
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.InputsDir = viper.GetString("inputs")
	cfg.OutputDir = viper.GetString("output")
	cfg.TemplatePath = viper.GetString("template")
	cfg.RenderDocs = viper.GetBool("renderdocs")
	cfg.FormThreshold = viper.GetInt("formthreshold")
	cfg.DocThreshold = viper.GetInt("docthreshold")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.InputsDir == "" {
		return errors.New("inputs directory cannot be empty")
	}
	info, err := os.Stat(c.InputsDir)
	if err != nil {
		return fmt.Errorf("cannot access inputs directory %s: %w", c.InputsDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("inputs path is not a directory: %s", c.InputsDir)
	}

	if c.OutputDir == "" {
		return errors.New("output directory cannot be empty")
	}
	if _, err := os.Stat(c.OutputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(c.OutputDir, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create output directory %s: %w", c.OutputDir, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access output directory %s: %w", c.OutputDir, err)
	}

	if c.FormThreshold < 0 || c.FormThreshold > 100 {
		return fmt.Errorf("formthreshold must be between 0 and 100, got %d", c.FormThreshold)
	}
	if c.DocThreshold < 0 || c.DocThreshold > 100 {
		return fmt.Errorf("docthreshold must be between 0 and 100, got %d", c.DocThreshold)
	}

	if c.RenderDocs {
		if c.TemplatePath == "" {
			return errors.New("template path cannot be empty when renderdocs is set")
		}
		if _, err := os.Stat(c.TemplatePath); err != nil {
			return fmt.Errorf("cannot access template %s: %w", c.TemplatePath, err)
		}
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// SlogLevel maps the configured log level onto slog's levels.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputsDir: %s, OutputDir: %s, FormThreshold: %d, DocThreshold: %d, RenderDocs: %t, LogLevel: %s}",
		c.InputsDir, c.OutputDir, c.FormThreshold, c.DocThreshold, c.RenderDocs, c.LogLevel)
}
