// Package config loads runtime configuration for the presentation commands.
package config

// #region imports
import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// #endregion imports

// #region config

// Config holds everything the serve and tui commands need.
type Config struct {
	Listen      string   `mapstructure:"listen"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	Logging     Logging  `mapstructure:"logging"`
}

// Logging configures the zap logger.
type Logging struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Config {
	return &Config{
		Listen: ":8700",
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
	}
}

// #endregion config

// #region load

// Load reads tensegrity.yaml from the given directory (or the working
// directory for "") plus TENSEGRITY_* environment overrides. A missing
// config file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("listen", ":8700")
	v.SetDefault("cors_origins", []string{})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetConfigName("tensegrity")
	v.SetConfigType("yaml")
	if dir == "" {
		dir = "."
	}
	v.AddConfigPath(dir)

	v.SetEnvPrefix("TENSEGRITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// #endregion load

// #region validate

// Validate rejects values the commands cannot start with.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

// #endregion validate
