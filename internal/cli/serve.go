package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"docqa/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve [file|url]",
	Short: "Serve the question API over HTTP, optionally preloading a document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, closeLog, err := newLogger(currentConfig, os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		svc, err := newService(currentConfig, log)
		if err != nil {
			return err
		}
		provider := newProvider(currentConfig)
		if len(args) == 1 {
			if _, err := svc.LoadFrom(cmd.Context(), provider, args[0]); err != nil {
				return err
			}
		}

		handler := api.NewHandler(svc, provider, log)
		container := api.NewContainer(handler, log)
		server := api.NewServer(
			fmt.Sprintf(":%d", currentConfig.Server.Port),
			api.WithCORS(container, currentConfig.Server.AllowedOrigins),
			time.Duration(currentConfig.Server.ReadTimeoutSecs)*time.Second,
			time.Duration(currentConfig.Server.WriteTimeoutSecs)*time.Second,
			log,
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
