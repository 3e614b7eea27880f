package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/ohad12345678/payslip/internal/common"
)

// Default values for parser settings.
const (
	DefaultLookback     = 5
	DefaultRawTextLimit = 1000
	DefaultWorkers      = 4
	DefaultAnchor       = `מספר העובד:\s*(\d{4,})`
)

// Config holds the resolved application configuration.
type Config struct {
	Logging LoggingConfig
	Parser  ParserConfig
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// ParserConfig controls the extraction core.
type ParserConfig struct {
	Anchor       string
	RulesFile    string
	Lookback     int
	RawTextLimit int
	Workers      int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("parser.anchor", DefaultAnchor)
	v.SetDefault("parser.lookback", DefaultLookback)
	v.SetDefault("parser.raw_text_limit", DefaultRawTextLimit)
	v.SetDefault("parser.workers", DefaultWorkers)
	v.SetDefault("parser.rules_file", "")
}

// Load reads the configuration out of v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Parser: ParserConfig{
			Anchor:       v.GetString("parser.anchor"),
			RulesFile:    ExpandPath(v.GetString("parser.rules_file")),
			Lookback:     v.GetInt("parser.lookback"),
			RawTextLimit: v.GetInt("parser.raw_text_limit"),
			Workers:      v.GetInt("parser.workers"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Parser.Anchor == "" {
		return fmt.Errorf("%w: parser.anchor is required", common.ErrMissingConfig)
	}
	if c.Parser.Lookback < 0 {
		return fmt.Errorf("%w: parser.lookback must be >= 0, got %d", common.ErrInvalidConfig, c.Parser.Lookback)
	}
	if c.Parser.RawTextLimit < 0 {
		return fmt.Errorf("%w: parser.raw_text_limit must be >= 0, got %d", common.ErrInvalidConfig, c.Parser.RawTextLimit)
	}
	if c.Parser.Workers < 1 {
		return fmt.Errorf("%w: parser.workers must be >= 1, got %d", common.ErrInvalidConfig, c.Parser.Workers)
	}
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", common.ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}
