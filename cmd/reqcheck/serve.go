package main

import (
	"log/slog"
	"os"

	"github.com/siherrmann/reqcheck"
	"github.com/siherrmann/reqcheck/helper"
	"github.com/siherrmann/reqcheck/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the validation API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		validator := reqcheck.NewValidator(config.Validator)
		validator.UseDefaultRecognizer()

		logger := slog.New(helper.NewPrettyHandler(os.Stdout, helper.PrettyHandlerOptions{
			SlogOpts: slog.HandlerOptions{Level: config.Validator.SlogLevel()},
		}))

		addr := config.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}
		return server.NewServer(validator, logger).Start(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config file)")
	rootCmd.AddCommand(serveCmd)
}
