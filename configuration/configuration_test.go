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
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

type testConfig struct {
	Address     string
	PublicURL   string `mapstructure:"publicUrl"`
	LoadDelay   time.Duration
	SubmitDelay time.Duration
	PenWidth    float32
	CanvasWidth int
	MaxInflight int64
	PrintQR     bool `mapstructure:"printQR"`
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	flags.String("address", "localhost:1323", "")
	flags.String("publicUrl", "", "")
	flags.Duration("loadDelay", time.Second, "")
	flags.Duration("submitDelay", 1500*time.Millisecond, "")
	flags.Float32("penWidth", 2.5, "")
	flags.Int("canvasWidth", 600, "")
	flags.Int64("maxInflight", 16, "")
	flags.Bool("printQR", false, "")
	return flags
}

func TestConfig_Load(t *testing.T) {
	t.Run("defaults come from the flags", func(t *testing.T) {
		c := NewConfig()
		var target testConfig

		assert.NoError(t, c.Load(testFlags()))
		assert.NoError(t, c.InjectInto(&target))

		assert.Equal(t, "localhost:1323", target.Address)
		assert.Equal(t, time.Second, target.LoadDelay)
		assert.Equal(t, float32(2.5), target.PenWidth)
		assert.Equal(t, int64(16), target.MaxInflight)
		assert.False(t, target.PrintQR)
	})

	t.Run("values are read from file", func(t *testing.T) {
		c := NewConfig()
		flags := testFlags()
		_ = flags.Set(ConfigFileFlag, "../testdata/signing.yaml")
		var target testConfig

		assert.NoError(t, c.Load(flags))
		assert.NoError(t, c.InjectInto(&target))

		assert.Equal(t, "0.0.0.0:8080", target.Address)
		assert.Equal(t, "https://docket.example.com", target.PublicURL)
		assert.Equal(t, 250*time.Millisecond, target.LoadDelay)
		assert.Equal(t, 2*time.Second, target.SubmitDelay)
		assert.Equal(t, float32(3.5), target.PenWidth)
		assert.Equal(t, 800, target.CanvasWidth)
		assert.Equal(t, int64(4), target.MaxInflight)
	})

	t.Run("flags take precedence over the file", func(t *testing.T) {
		c := NewConfig()
		flags := testFlags()
		_ = flags.Set(ConfigFileFlag, "../testdata/signing.yaml")
		_ = flags.Set("address", "localhost:9999")
		var target testConfig

		assert.NoError(t, c.Load(flags))
		assert.NoError(t, c.InjectInto(&target))

		assert.Equal(t, "localhost:9999", target.Address)
	})

	t.Run("environment takes precedence over the defaults", func(t *testing.T) {
		os.Setenv("SIGNING_ADDRESS", "env:1234")
		defer os.Unsetenv("SIGNING_ADDRESS")
		c := NewConfig()
		var target testConfig

		assert.NoError(t, c.Load(testFlags()))
		assert.NoError(t, c.InjectInto(&target))

		assert.Equal(t, "env:1234", target.Address)
	})

	t.Run("a missing file is an error", func(t *testing.T) {
		flags := testFlags()
		_ = flags.Set(ConfigFileFlag, "../testdata/unknown.yaml")

		assert.Error(t, NewConfig().Load(flags))
	})

	t.Run("a broken file is an error", func(t *testing.T) {
		flags := testFlags()
		_ = flags.Set(ConfigFileFlag, "../testdata/broken.yaml")

		assert.Error(t, NewConfig().Load(flags))
	})
}

func TestConfig_InjectInto(t *testing.T) {
	var target testConfig
	assert.Equal(t, ErrNotLoaded, NewConfig().InjectInto(&target))
}

func TestConfig_PrintConfig(t *testing.T) {
	logger, hook := test.NewNullLogger()
	c := NewConfig()
	_ = c.Load(testFlags())

	c.PrintConfig(logger)

	if assert.Len(t, hook.Entries, 1) {
		entry := hook.LastEntry()
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, "localhost:1323", entry.Data["address"])
	}
}
