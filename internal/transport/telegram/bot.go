package telegram

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/raanand/careerbot/internal/config"
	"github.com/raanand/careerbot/internal/core"
	"github.com/raanand/careerbot/internal/service/agent"
	"github.com/raanand/careerbot/pkg/log"
)

const baseContextKey = "base_context"

type Bot struct {
	bot    *tele.Bot
	cfg    *config.TelegramConfig
	agent  *agent.Agent
	router core.CmdRouter
	sender *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	agent *agent.Agent,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		cfg:    cfg,
		agent:  agent,
		router: router,
		sender: newSender(b),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	// Every chat gets its own conversation history
	sessionID := fmt.Sprintf("telegram-%d", c.Chat().ID)

	if resp, handled := b.router.Execute(ctx, sessionID, c.Text()); handled {
		return b.sender.sendMarkdown(ctx, c.Chat(), resp, false)
	}

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	reply := b.agent.Run(ctx, sessionID, c.Text(), func(msg core.Message) {
		for range msg.ToolCalls {
			_ = c.Notify(tele.Typing)
		}
	})

	if err := b.sender.sendMarkdown(ctx, c.Chat(), reply, false); err != nil {
		logger.Error().Err(err).Msg("failed to send telegram reply")
	}
	return nil
}
