package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-form-composer/internal/config"
	"github.com/deploymenttheory/go-form-composer/internal/server"
)

var serveAddress string

// serveCmd runs the read-only preview API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the preview API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		address := config.Instance.Server.Address
		if cmd.Flags().Changed("address") {
			address = serveAddress
		}

		return server.NewServer(nil).Run(ctx, server.Options{
			Address:      address,
			ReadTimeout:  config.Instance.Server.ReadTimeout,
			WriteTimeout: config.Instance.Server.WriteTimeout,
		})
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", ":8080", "listen address")
}
