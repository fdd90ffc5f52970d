// Package config loads the settings of the demonstration program from
// flags, QUAT_* environment variables and an optional config file.
package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"hypercomplex/internal/geometry/quaternion"
)

// EnvPrefix prefixes every environment variable, e.g. QUAT_PRECISION.
const EnvPrefix = "QUAT"

// Keys shared by flags, environment variables and config files.
const (
	KeyQ1        = "q1"
	KeyQ2        = "q2"
	KeyPrecision = "precision"
	KeyLogLevel  = "log-level"
	KeyConfig    = "config"
)

// Defaults used when no flag, environment variable or file sets a key.
const (
	DefaultQ1       = "3.06,1,1,2"
	DefaultQ2       = "0.70,3,-1,2"
	DefaultLogLevel = "info"

	maxPrecision = 15
)

// Config holds the resolved settings of the demonstration program.
type Config struct {
	Q1        quaternion.Quaternion
	Q2        quaternion.Quaternion
	Precision int
	LogLevel  logrus.Level
}

// New returns a viper instance that reads QUAT_* environment variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyQ1, DefaultQ1)
	v.SetDefault(KeyQ2, DefaultQ2)
	v.SetDefault(KeyPrecision, quaternion.DisplayPrecision)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	return v
}

// AddFlags registers the program flags on fs and binds them into v, so a
// flag set on the command line wins over the environment and the file.
func AddFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.String(KeyQ1, DefaultQ1, "first sample quaternion as w,x,y,z")
	fs.String(KeyQ2, DefaultQ2, "second sample quaternion as w,x,y,z")
	fs.Int(KeyPrecision, quaternion.DisplayPrecision, "decimal places used when printing")
	fs.String(KeyLogLevel, DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.String(KeyConfig, "", "optional config file (yaml, json or toml)")
	return errors.Wrap(v.BindPFlags(fs), "bind flags")
}

// Load reads the optional config file named by the config key and resolves
// every setting.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %q", path)
		}
	}

	var (
		cfg Config
		err error
	)
	if cfg.Q1, err = ParseQuaternion(v.GetString(KeyQ1)); err != nil {
		return Config{}, errors.Wrap(err, KeyQ1)
	}
	if cfg.Q2, err = ParseQuaternion(v.GetString(KeyQ2)); err != nil {
		return Config{}, errors.Wrap(err, KeyQ2)
	}

	if cfg.Precision, err = cast.ToIntE(v.Get(KeyPrecision)); err != nil {
		return Config{}, errors.Wrap(err, KeyPrecision)
	}
	if cfg.Precision < 0 || cfg.Precision > maxPrecision {
		return Config{}, errors.Errorf("precision %d out of range [0, %d]", cfg.Precision, maxPrecision)
	}

	if cfg.LogLevel, err = logrus.ParseLevel(v.GetString(KeyLogLevel)); err != nil {
		return Config{}, errors.Wrap(err, KeyLogLevel)
	}
	return cfg, nil
}

// ParseQuaternion parses "w,x,y,z". Whitespace around each field is
// ignored; NaN and Inf are accepted the same way strconv accepts them.
func ParseQuaternion(s string) (quaternion.Quaternion, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return quaternion.Quaternion{}, errors.Errorf("quaternion %q: want 4 comma-separated components, got %d", s, len(fields))
	}
	var q quaternion.Quaternion
	for i, f := range fields {
		c, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return quaternion.Quaternion{}, errors.Wrapf(err, "quaternion %q component %d", s, i)
		}
		q[i] = c
	}
	return q, nil
}
