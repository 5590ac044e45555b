// Package config loads settings for the ecc command from defaults, an
// optional YAML file, ECC_-prefixed environment variables and flags.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Prefix is the environment variable prefix, e.g. ECC_CURVE_NAME.
const Prefix = "ECC"

// Config is the top level configuration.
type Config struct {
	Curve      Curve      `mapstructure:"curve"`
	CrossCheck CrossCheck `mapstructure:"crosscheck"`
	Log        Log        `mapstructure:"log"`
}

// CrossCheck controls the oracle comparison run.
type CrossCheck struct {
	Rounds  int `mapstructure:"rounds"`
	Workers int `mapstructure:"workers"`
}

// Log controls the logger of the command.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"curve":     "curve.name",
	"prime":     "curve.prime",
	"a":         "curve.a",
	"b":         "curve.b",
	"gx":        "curve.gx",
	"gy":        "curve.gy",
	"rounds":    "crosscheck.rounds",
	"workers":   "crosscheck.workers",
	"log-level": "log.level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("curve.name", "secp256k1")
	v.SetDefault("curve.prime", "")
	v.SetDefault("curve.a", "")
	v.SetDefault("curve.b", "")
	v.SetDefault("curve.gx", "")
	v.SetDefault("curve.gy", "")
	v.SetDefault("crosscheck.rounds", 64)
	v.SetDefault("crosscheck.workers", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads the configuration. path may be empty; flags may be nil.
// Only flags that were set on the command line override other sources.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(Prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "binding flag --%s", name)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := c.Curve.validate(); err != nil {
		return errors.WithMessage(err, "curve")
	}
	if c.CrossCheck.Rounds <= 0 {
		return errors.Errorf("crosscheck: rounds must be positive, got %d", c.CrossCheck.Rounds)
	}
	if c.CrossCheck.Workers <= 0 {
		return errors.Errorf("crosscheck: workers must be positive, got %d", c.CrossCheck.Workers)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("log: unknown format %q", c.Log.Format)
	}
	return nil
}
