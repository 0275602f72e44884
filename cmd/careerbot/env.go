package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raanand/careerbot/internal/config"
	"github.com/raanand/careerbot/pkg/env"
	"github.com/raanand/careerbot/pkg/log"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the effective configuration as .env content",
	Long:  `Resolves the application configuration from the environment and the runtime .env file and prints it in .env format. Secrets are not included.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("failed to load runtime .env")
		}

		appCfg := config.NewAppConfig(ctx)
		content, err := env.MarshalEnv(appCfg)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
