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
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nuts-foundation/nuts-docket/configuration"
	"github.com/nuts-foundation/nuts-docket/engine"
	"github.com/nuts-foundation/nuts-docket/logging"
)

var e = engine.NewSigningEngine()
var rootCmd = newRootCmd(e)

func newRootCmd(e *engine.Engine) *cobra.Command {
	root := e.Cmd
	flags := root.PersistentFlags()
	flags.AddFlagSet(e.FlagSet)
	configuration.RegisterFlags(flags)
	flags.Bool("verbose", false, "log at debug level")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return loadConfig(cmd, e)
	}
	return root
}

// loadConfig resolves the config from flags, environment and file and hands it to the engine
func loadConfig(cmd *cobra.Command, e *engine.Engine) error {
	c := configuration.NewConfig()
	if err := c.Load(cmd.Flags()); err != nil {
		return err
	}
	c.PrintConfig(logging.Log().Logger)
	if err := c.InjectInto(e.Config); err != nil {
		return err
	}
	return e.Configure()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	e.Shutdown()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
