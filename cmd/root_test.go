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

package cmd

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/nuts-foundation/nuts-docket/engine"
	"github.com/nuts-foundation/nuts-docket/pkg"
)

// testEngine returns an engine with a no-op command that records the config it was given
func testEngine(configure func() error) (*engine.Engine, *pkg.SigningConfig) {
	config := pkg.SigningConfig{}
	source := engine.NewSigningEngine()
	e := &engine.Engine{
		Cmd:       &cobra.Command{Use: "test", Run: func(cmd *cobra.Command, args []string) {}},
		Config:    &config,
		Configure: configure,
		FlagSet:   source.FlagSet,
	}
	return e, &config
}

func TestRootCmd(t *testing.T) {
	t.Run("config is loaded from file and injected", func(t *testing.T) {
		configured := false
		e, config := testEngine(func() error {
			configured = true
			return nil
		})
		root := newRootCmd(e)
		root.SetArgs([]string{"--configfile", "../testdata/signing.yaml", "--noticeDuration", "3s"})

		err := root.Execute()

		assert.NoError(t, err)
		assert.True(t, configured)
		assert.Equal(t, "0.0.0.0:8080", config.Address)
		assert.Equal(t, int64(4), config.MaxInflight)
		assert.Equal(t, "3s", config.NoticeDuration.String())
		assert.Equal(t, 200, config.CanvasHeight)
	})

	t.Run("configure errors stop the command", func(t *testing.T) {
		e, _ := testEngine(func() error {
			return errors.New("b00m!")
		})
		root := newRootCmd(e)
		root.SetArgs([]string{})

		assert.EqualError(t, root.Execute(), "b00m!")
	})

	t.Run("verbose logs at debug level", func(t *testing.T) {
		level := logrus.GetLevel()
		defer logrus.SetLevel(level)
		e, _ := testEngine(func() error { return nil })
		root := newRootCmd(e)
		root.SetArgs([]string{"--verbose"})

		assert.NoError(t, root.Execute())
		assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	})
}
