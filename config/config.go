package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// --- Configuration Structs ---

// Config is the run configuration for describing an object, generating
// rows and bulk importing them.
type Config struct {
	// Org is the target org alias or username. Empty uses the default org.
	Org string `mapstructure:"org"`

	// Rows is the number of rows to generate.
	Rows int `mapstructure:"rows"`

	// Format selects the artifact writer (csv, arrow, parquet).
	Format string `mapstructure:"format"`

	// SkipFields are always emitted as empty cells.
	SkipFields []string `mapstructure:"skip_fields"`

	// PersonRecordType is the developer name of the person-account
	// record type, when the object has one.
	PersonRecordType string `mapstructure:"person_record_type"`

	// LineEnding is LF or CRLF; the bulk import API cares.
	LineEnding string `mapstructure:"line_ending"`

	// WaitMinutes is how long to wait for the bulk import job.
	WaitMinutes int `mapstructure:"wait_minutes"`

	// ResultsDir is the root of the describe/data/bulk_result tree.
	ResultsDir string `mapstructure:"results_dir"`

	// Seed seeds the random source; 0 means time-based.
	Seed int64 `mapstructure:"seed"`
}

// --- Load Configuration ---

func setDefaults(v *viper.Viper) {
	v.SetDefault("rows", 10)
	v.SetDefault("format", "csv")
	v.SetDefault("line_ending", "CRLF")
	v.SetDefault("wait_minutes", 10)
	v.SetDefault("results_dir", "results")
}

// Default returns the built-in configuration, used when no config file
// is supplied.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// LoadConfig reads a YAML config file into a Config.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// --- Validation Functions ---

// validate is a helper function to reduce repetition.
func validate(condition bool, format string, a ...any) error {
	if !condition {
		return fmt.Errorf(format, a...)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := validate(c.Rows > 0, "rows must be positive, got %d", c.Rows); err != nil {
		return err
	}
	switch c.Format {
	case "csv", "arrow", "parquet":
	default:
		return fmt.Errorf("unknown format %q (want csv, arrow or parquet)", c.Format)
	}
	switch c.LineEnding {
	case "LF", "CRLF":
	default:
		return fmt.Errorf("unknown line ending %q (want LF or CRLF)", c.LineEnding)
	}
	return validate(c.WaitMinutes >= 0, "wait_minutes must not be negative, got %d", c.WaitMinutes)
}

// ValidateConfig validates a configuration.
func ValidateConfig(cfg *Config) error {
	return cfg.Validate()
}
