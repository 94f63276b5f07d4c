/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/postgen/internal/webhook"
	"github.com/valpere/postgen/internal/webui"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the form to a browser",
	Long: `Serve the submission form over HTTP so it can be used from a browser,
including from other devices on the network.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("host", "H", "0.0.0.0", "server host")
	flags.IntP("port", "p", 8088, "server port")
	flags.String("mode", "release", "server mode (debug/release/test)")

	_ = viper.BindPFlag("web.host", flags.Lookup("host"))
	_ = viper.BindPFlag("web.port", flags.Lookup("port"))
	_ = viper.BindPFlag("web.mode", flags.Lookup("mode"))
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := webui.New(webhook.New(cfg.Webhook.Timeout), newTranslator(cfg), webui.Options{
		Addr:            cfg.Web.Addr(),
		Mode:            cfg.Web.Mode,
		Locale:          cfg.UI.Locale,
		Webhook:         cfg.Webhook.URL,
		DefaultLanguage: cfg.DefaultLanguage(),
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Access at: http://localhost:%d\n", cfg.Web.Port)
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web host failed: %w", err)
		}
		return nil
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return <-errCh
}
