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

package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	v1 "github.com/nuts-foundation/nuts-docket/api/v1"
	"github.com/nuts-foundation/nuts-docket/logging"
	"github.com/nuts-foundation/nuts-docket/pkg"
)

// shutdownTimeout bounds the time running requests get when the server stops
const shutdownTimeout = 10 * time.Second

// bodyLimit caps request bodies, strokes are the largest payload
const bodyLimit = "1M"

// Engine bundles everything needed to run the signing engine standalone or mounted in another echo server
type Engine struct {
	Name      string
	Cmd       *cobra.Command
	Config    interface{}
	ConfigKey string
	Configure func() error
	FlagSet   *pflag.FlagSet
	Routes    func(router v1.EchoRouter)
	Shutdown  func()
}

// NewSigningEngine creates and returns a new Engine for the signing instance
func NewSigningEngine() *Engine {
	signing := pkg.SigningInstance()

	return &Engine{
		Cmd:       cmd(signing),
		Config:    &signing.Config,
		ConfigKey: "signing",
		Configure: signing.Configure,
		FlagSet:   flagSet(),
		Name:      "Signing",
		Routes: func(router v1.EchoRouter) {
			v1.RegisterHandlers(router, &v1.Wrapper{Signing: signing})
		},
		Shutdown: signing.Shutdown,
	}
}

func cmd(signing *pkg.Signing) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signing",
		Short: "commands related to signing dockets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "server",
		Short: "Run standalone signing server",
		RunE: func(cmd *cobra.Command, args []string) error {
			echoServer, err := initEcho(signing)
			if err != nil {
				return err
			}
			if signing.Config.PrintQR {
				printDemos(cmd.OutOrStdout(), signing, true)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, echoServer, signing)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Print the demo documents and where to open them",
		Run: func(cmd *cobra.Command, args []string) {
			printDemos(cmd.OutOrStdout(), signing, signing.Config.PrintQR)
		},
	})

	return cmd
}

// initEcho creates an echo server with the signing api mounted
func initEcho(signing *pkg.Signing) (*echo.Echo, error) {
	if err := signing.Configure(); err != nil {
		return nil, err
	}
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(middleware.Logger())
	echoServer.Use(middleware.BodyLimit(bodyLimit))
	v1.RegisterHandlers(echoServer, &v1.Wrapper{Signing: signing})
	return echoServer, nil
}

// serve runs the echo server until ctx is done. Running requests and backend calls are given time to finish.
func serve(ctx context.Context, echoServer *echo.Echo, signing *pkg.Signing) error {
	errs := make(chan error, 1)
	go func() {
		logging.Log().Infof("starting signing server on %s", signing.Config.Address)
		errs <- echoServer.Start(signing.Config.Address)
	}()

	select {
	case err := <-errs:
		signing.Shutdown()
		return err
	case <-ctx.Done():
	}

	logging.Log().Info("shutting down signing server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := echoServer.Shutdown(shutdownCtx)
	signing.Shutdown()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func printDemos(w io.Writer, signing *pkg.Signing, withQR bool) {
	fmt.Fprintf(w, "Demo documents, open a session with POST %s/signing/session:\n", signing.Config.PublicURL)
	for _, d := range signing.Demos() {
		fmt.Fprintf(w, "  %-24s documentId=%s kind=%s\n", d.Label, d.DocumentID, d.Kind)
	}
	fmt.Fprintf(w, "Listing: %s\n", signing.DemoURL())
	if withQR {
		qrterminal.Generate(signing.DemoURL(), qrterminal.L, w)
	}
}

func flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("signing", pflag.ContinueOnError)

	defaults := pkg.DefaultSigningConfig()
	flags.String(pkg.ConfAddress, defaults.Address, "Interface and port for http server to bind to")
	flags.String(pkg.ConfPublicURL, defaults.PublicURL, "Public URL which can be reached by approvers, used in demo links")
	flags.Duration(pkg.ConfLoadDelay, defaults.LoadDelay, "Simulated latency of loading a document")
	flags.Duration(pkg.ConfSubmitDelay, defaults.SubmitDelay, "Simulated latency of submitting a signature")
	flags.Duration(pkg.ConfNoticeDuration, defaults.NoticeDuration, "How long a notice stays visible")
	flags.Float32(pkg.ConfPenWidth, defaults.PenWidth, "Width of the pen on the signature pad, in pixels")
	flags.Int(pkg.ConfCanvasWidth, defaults.CanvasWidth, "Width of the signature pad, in pixels")
	flags.Int(pkg.ConfCanvasHeight, defaults.CanvasHeight, "Height of the signature pad, in pixels")
	flags.Int64(pkg.ConfMaxInflight, defaults.MaxInflight, "Maximum amount of concurrent backend calls")
	flags.Bool(pkg.ConfPrintQR, defaults.PrintQR, "Print a QR code of the demo listing on startup")

	return flags
}
