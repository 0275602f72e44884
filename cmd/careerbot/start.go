package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/raanand/careerbot/pkg/log"
	"github.com/raanand/careerbot/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the CareerBot services",
	Long:  `Initializes and starts all configured chat surfaces (Telegram, terminal) against the loaded career profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting careerbot")

		services := NewServices(ctx, stop)

		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("careerbot has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
