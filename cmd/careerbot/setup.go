package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/raanand/careerbot/internal/config"
	"github.com/raanand/careerbot/internal/core"
	"github.com/raanand/careerbot/internal/notify"
	"github.com/raanand/careerbot/internal/profile"
	"github.com/raanand/careerbot/internal/providers/llm"
	"github.com/raanand/careerbot/internal/service/agent"
	"github.com/raanand/careerbot/internal/service/command"
	"github.com/raanand/careerbot/internal/storage/session"
	"github.com/raanand/careerbot/internal/tools"
	"github.com/raanand/careerbot/internal/transport/telegram"
	"github.com/raanand/careerbot/internal/transport/tui"
	"github.com/raanand/careerbot/pkg/log"
	"github.com/raanand/careerbot/pkg/srv"
)

// botCore holds everything the chat surfaces share.
type botCore struct {
	appCfg *config.AppConfig
	agent  *agent.Agent
	router core.CmdRouter
}

func NewServices(ctx context.Context, stop context.CancelFunc) []srv.Service {
	logger := log.FromCtx(ctx)

	bc := newBotCore(ctx)

	services := make([]srv.Service, 0)

	// Telegram Bot
	if bc.appCfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, bc.agent, bc.router)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
		}
		services = append(services, bot)
	}

	// Terminal chat
	if bc.appCfg.EnableTUI {
		services = append(services, tui.NewChat(bc.agent, bc.router, bc.appCfg.CandidateName, stop))
	}

	if len(services) == 0 {
		logger.Fatal().Msg("no chat surface enabled, set ENABLE_TELEGRAM or ENABLE_TUI")
	}

	return services
}

func newBotCore(ctx context.Context) *botCore {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx)
	pushCfg := config.NewPushoverConfig(ctx)

	// 2. Career profile
	bundle, err := profile.Load(ctx, appCfg.CandidateName, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load career profile")
	}
	if n, err := bundle.PromptTokens(); err == nil {
		logger.Info().Int("tokens", n).Str("candidate", bundle.Name).Msg("career profile loaded")
	}

	// 3. Notifier & Tools
	notifier := notify.NewPushover(pushCfg)

	registry := tools.NewRegistry()
	if err := registry.RegisterToolset(tools.NewContact(notifier)); err != nil {
		logger.Fatal().Err(err).Msg("failed to register contact tools")
	}
	if err := registry.RegisterToolset(tools.NewUnknownQuestion(notifier)); err != nil {
		logger.Fatal().Err(err).Msg("failed to register unknown-question tool")
	}

	// 4. AI Provider
	aiProvider, err := llm.NewProvider(ctx, appCfg.LLMProvider, llmCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 5. Conversation history
	messagesRepo := session.NewHistoryRepo()

	// 6. Agent
	ag := agent.NewAgent(appCfg, bundle, aiProvider, registry, messagesRepo)

	// 7. Slash commands
	router := command.New(command.NewCommands(messagesRepo))

	return &botCore{
		appCfg: appCfg,
		agent:  ag,
		router: router,
	}
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
