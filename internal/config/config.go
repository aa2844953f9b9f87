package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by quest.
const EnvPrefix = "QUEST"

// Config holds settings shared by all quest modes.
type Config struct {
	Env      string `mapstructure:"env"`       // local or production; selects the log encoder
	LogLevel string `mapstructure:"log_level"` // zap level name
	Variant  string `mapstructure:"variant"`   // capital or code
	Count    int    `mapstructure:"count"`     // number of questions per session
	Seed     uint64 `mapstructure:"seed"`      // random seed, 0 for time-based
	TUI      bool   `mapstructure:"tui"`       // use the full-screen prompt
	NoColor  bool   `mapstructure:"no_color"`  // plain console output
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"log-level": "log_level",
	"variant":   "variant",
	"count":     "count",
	"seed":      "seed",
	"tui":       "tui",
	"no-color":  "no_color",
}

// LoadDotEnv loads environment variables from the given .env files.
// Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load resolves configuration with precedence flags > environment >
// config file > defaults. file may be empty, in which case quest.yaml is
// looked up in the working directory and the user config directory.
// flags may be nil.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("quest")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "quest"))
		}
	}

	v.SetDefault("env", "local")
	v.SetDefault("log_level", "warn")
	v.SetDefault("variant", "capital")
	v.SetDefault("count", 10)
	v.SetDefault("seed", 0)
	v.SetDefault("tui", false)
	v.SetDefault("no_color", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	// NO_COLOR disables colour whatever its value (https://no-color.org).
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return &cfg, nil
}
