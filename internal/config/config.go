package config

import (
	"os"
	"path/filepath"

	"codeberg.org/mutker/bodyctl/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultEnvPrefix    = "BODYCTL"
	DefaultLogLevel     = string(LogLevelWarning)
	DefaultWeeks        = 12
	DefaultExportFormat = "simplified"

	configName = "bodyctl"
	configType = "toml"
)

type Config struct {
	LogLevel       string  `mapstructure:"log_level"`
	WeightKg       float64 `mapstructure:"weight"`
	HeightM        float64 `mapstructure:"height"`
	Age            int     `mapstructure:"age"`
	Sex            string  `mapstructure:"sex"`
	TargetWeightKg float64 `mapstructure:"target_weight"`
	TargetFatPct   float64 `mapstructure:"target_fat"`
	Weeks          int     `mapstructure:"weeks"`
	ExportFormat   string  `mapstructure:"export"`
}

// flagKeys maps command line flags onto configuration keys
var flagKeys = map[string]string{
	"log-level":     "log_level",
	"weight":        "weight",
	"height":        "height",
	"age":           "age",
	"sex":           "sex",
	"target-weight": "target_weight",
	"target-fat":    "target_fat",
	"weeks":         "weeks",
	"export":        "export",
}

// Load reads configuration from defaults, the TOML config file, environment
// variables and command line flags, in increasing order of precedence.
func Load(opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := options{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}
	if !o.hasArgs {
		o.args = os.Args[1:]
	}

	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("weeks", DefaultWeeks)
	v.SetDefault("export", DefaultExportFormat)

	// Define flags
	fs := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	configFlag := fs.String("config", "", "Path to the TOML configuration file")
	fs.String("log-level", DefaultLogLevel, "Log level: debug, info, warning or error")
	fs.Float64("weight", 0, "Body weight in kilograms")
	fs.Float64("height", 0, "Height in meters")
	fs.Int("age", 0, "Age in years")
	fs.String("sex", "", "Sex: M or F")
	fs.Float64("target-weight", 0, "Target body weight in kilograms")
	fs.Float64("target-fat", 0, "Target body fat percentage")
	fs.Int("weeks", DefaultWeeks, "Weeks to reach the target")
	fs.String("export", DefaultExportFormat, "History export format: list or simplified")

	// Parse flags
	if err := fs.Parse(o.args); err != nil {
		return nil, errFactory.Wrap(errors.ErrParseFlags, err)
	}

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, errFactory.WithData(errors.ErrBindFlags, name)
		}
	}

	v.SetEnvPrefix(o.envPrefix)
	v.AutomaticEnv()

	// Load configuration from file
	path := o.configPath
	if path == "" {
		path = *configFlag
	}
	if path == "" {
		path = os.Getenv(o.envPrefix + "_CONFIG")
	}

	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}

	// Unmarshal the configuration
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	v.SetConfigType(configType)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.New().Wrap(errors.ErrReadConfig, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, configName))
	}
	v.AddConfigPath("/etc")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.New().Wrap(errors.ErrReadConfig, err)
		}
	}

	return nil
}

// Validate checks the settings that are independent of measurements.
// Measurement ranges are checked by the trackers themselves.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, ValidationError{
			Field:  "log_level",
			Value:  c.LogLevel,
			Reason: "must be debug, info, warn, warning or error",
		})
	}

	if c.Weeks <= 0 {
		return errFactory.WithData(errors.ErrInvalidConfig, ValidationError{
			Field:  "weeks",
			Value:  c.Weeks,
			Reason: "must be greater than zero",
		})
	}

	switch c.ExportFormat {
	case "list", "simplified":
	default:
		return errFactory.WithData(errors.ErrInvalidConfig, ValidationError{
			Field:  "export",
			Value:  c.ExportFormat,
			Reason: "must be list or simplified",
		})
	}

	return nil
}

// HasTarget reports whether a target composition was configured.
func (c *Config) HasTarget() bool {
	return c.TargetWeightKg > 0
}
