package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/raanand/careerbot/internal/transport/tui"
	"github.com/raanand/careerbot/pkg/log"
	"github.com/raanand/careerbot/pkg/srv"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the bot in the terminal",
	Long:  `Opens a terminal chat session with the bot, regardless of which surfaces are enabled in the configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting terminal chat")

		bc := newBotCore(ctx)
		chat := tui.NewChat(bc.agent, bc.router, bc.appCfg.CandidateName, stop)

		services := []srv.Service{chat}
		srv.StartServices(ctx, services)
		srv.ShutdownServices(ctx, services)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
