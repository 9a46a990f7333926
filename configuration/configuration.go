/*
 * Nuts docket
 * Copyright (C) 2026. Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package configuration

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to the upper cased config keys to find environment overrides, eg: SIGNING_ADDRESS
const EnvPrefix = "SIGNING"

// ConfigFileFlag names the flag that points to an optional yaml config file
const ConfigFileFlag = "configfile"

// ErrNotLoaded is returned when config is injected before Load was called
var ErrNotLoaded = errors.New("config has not been loaded")

// Config resolves settings from flags, environment and config file, in that order of precedence
type Config struct {
	v      *viper.Viper
	loaded bool
}

// NewConfig creates an empty Config that reads environment variables with the EnvPrefix
func NewConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return &Config{v: v}
}

// RegisterFlags adds the config file flag to the given flag set
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(ConfigFileFlag, "", "yaml file with config values, values from flags and environment take precedence")
}

// Load binds the flags and reads the config file when one is given
func (c *Config) Load(flags *pflag.FlagSet) error {
	if err := c.v.BindPFlags(flags); err != nil {
		return err
	}
	if path := c.v.GetString(ConfigFileFlag); path != "" {
		if err := c.LoadFromFile(path); err != nil {
			return err
		}
	}
	c.loaded = true
	return nil
}

// LoadFromFile reads a yaml config file
func (c *Config) LoadFromFile(path string) error {
	logrus.Infof("Loading config from %s", path)
	c.v.SetConfigFile(path)
	c.v.SetConfigType("yaml")
	return c.v.ReadInConfig()
}

// InjectInto copies the resolved settings into target, matching on field names or mapstructure tags
func (c *Config) InjectInto(target interface{}) error {
	if !c.loaded {
		return ErrNotLoaded
	}
	return c.v.Unmarshal(target)
}

// PrintConfig logs all resolved settings
func (c *Config) PrintConfig(logger *logrus.Logger) {
	keys := c.v.AllKeys()
	fields := logrus.Fields{}
	for _, key := range keys {
		fields[key] = c.v.Get(key)
	}
	logger.WithFields(fields).Info("Loaded config")
}
