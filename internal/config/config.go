package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configData Config
	v          *viper.Viper
)

// Config holds all configuration settings.
type Config struct {
	// Logging configuration
	Log struct {
		Level  string
		Format string
	}
	// Output rendering for CLI results
	Output struct {
		Encoding  string
		Uppercase bool
	}
	// Wrap engine configuration
	Wrap struct {
		Policy string
	}
}

// flagBindings maps config keys to the CLI flags that override them.
var flagBindings = map[string]string{
	"log.level":       "log-level",
	"log.format":      "log-format",
	"output.encoding": "encoding",
	"wrap.policy":     "policy",
}

// Initialize sets up the configuration system.
// cfgFile overrides the default search path; flags, when non-nil, override file and env values.
func Initialize(cfgFile string, flags *pflag.FlagSet) error {
	v = viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error locating home directory: %w", err)
		}

		v.SetConfigName("config")                           // name of config file (without extension)
		v.SetConfigType("yaml")                             // config file type
		v.AddConfigPath(".")                                // optionally look for config in working directory
		v.AddConfigPath(filepath.Join(home, ".go_keywrap")) // look for config in .go_keywrap directory in home
		v.AddConfigPath("/etc/go_keywrap/")                 // path to look for the config file in

		// Create config file if it doesn't exist
		if err := ensureConfig(home); err != nil {
			return fmt.Errorf("error creating config file: %w", err)
		}
	}

	// Set default values
	setDefaults()

	// Environment variables
	v.SetEnvPrefix("GOKEYWRAP") // prefix for env vars
	v.AutomaticEnv()            // read in environment variables that match
	v.SetEnvKeyReplacer(        // replace dots with underscores in env vars
		strings.NewReplacer(".", "_"),
	)

	// Bind command line flags
	if flags != nil {
		for key, name := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	// Read in config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if we can't find a config file, we'll use defaults
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal config into struct
	configData = Config{}
	if err := v.Unmarshal(&configData); err != nil {
		return fmt.Errorf("unable to decode into config struct: %w", err)
	}

	return nil
}

// setDefaults sets default values for all configuration options.
func setDefaults() {
	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "human")

	// Output defaults
	v.SetDefault("output.encoding", "hex")
	v.SetDefault("output.uppercase", true)

	// Wrap defaults
	v.SetDefault("wrap.policy", "strict")
}

const defaultConfig = `# GO KEYWRAP Configuration File
log:
  level: info
  format: human

output:
  encoding: hex
  uppercase: true

wrap:
  policy: strict
`

// ensureConfig creates a default config file if none exists.
func ensureConfig(home string) error {
	dir := filepath.Join(home, ".go_keywrap")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	configFile := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := os.WriteFile(configFile, []byte(defaultConfig), 0o600); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the current configuration.
func Get() *Config {
	return &configData
}

// GetViper returns the viper instance.
func GetViper() *viper.Viper {
	return v
}
