package config

import (
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	ConfigLogLevel       = "log-level"
	ConfigMovegenThreads = "movegen-threads"
	ConfigMovegenCache   = "movegen-cache"
)

type Config struct {
	*viper.Viper
}

// DefaultConfig is a config with defaults only; it does not read the
// environment. Handy for tests.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigLogLevel, "info")
	c.SetDefault(ConfigMovegenThreads, runtime.NumCPU())
	c.SetDefault(ConfigMovegenCache, 4096)
}

// Load reads the config from defaults, an optional config file, and
// environment variables prefixed with BLOKUS_ (for example
// BLOKUS_MOVEGEN_THREADS). Later sources win.
func (c *Config) Load(configFile string) error {
	c.Viper = viper.New()
	c.setDefaults()
	c.SetEnvPrefix("blokus")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	if configFile != "" {
		c.SetConfigFile(configFile)
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) MovegenThreads() int {
	n := c.GetInt(ConfigMovegenThreads)
	if n < 1 {
		return 1
	}
	return n
}

func (c *Config) MovegenCacheSize() int {
	return c.GetInt(ConfigMovegenCache)
}

// SetupLogging sets the global zerolog level from the config. An unknown
// level leaves logging at info.
func (c *Config) SetupLogging() {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.GetString(ConfigLogLevel)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
