// Package config loads runtime settings for the presentation layer. The
// search engine itself takes no configuration.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	v    *viper.Viper
	args []string
}

// Load parses command-line flags and binds TAQUIN_* environment
// variables. Everything after the flags is kept as a one-shot command
// for the shell.
func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("taquin", pflag.ContinueOnError)
	fs.Bool("debug", false, "turn on debug logging")
	fs.String("cpu-profile", "", "write a CPU profile to this path")
	fs.String("mem-profile", "", "write a memory profile to this path on exit")
	fs.Int("max-expand", 0, "cap on expanded states per search; 0 means unlimited")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.v.SetEnvPrefix("taquin")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.args = fs.Args()
	return nil
}

// Args returns the non-flag arguments left over after Load.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// AllSettings is used for the startup log line.
func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}
