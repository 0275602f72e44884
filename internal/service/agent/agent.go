package agent

import (
	"context"

	"github.com/raanand/careerbot/internal/config"
	"github.com/raanand/careerbot/internal/core"
	"github.com/raanand/careerbot/internal/profile"
	"github.com/raanand/careerbot/internal/providers/llm"
	"github.com/raanand/careerbot/pkg/log"
)

const (
	// Returned when the round-trip cap is hit before the model settles on text.
	apologyBusy = "I apologize, but I'm having trouble processing your request. Please try again."
	// Returned for any provider failure; the conversation continues on the next turn.
	apologyError = "I apologize, but I encountered an error. Please try again."
)

// Agent runs the conversation loop: one user turn in, one assistant text out,
// with any number of tool rounds in between, bounded by MaxToolRounds.
type Agent struct {
	appCfg   *config.AppConfig
	bundle   *profile.Bundle
	ai       core.AIProvider
	tools    core.ToolSource
	repo     core.MessagesRepository
	executor *Executor
}

func NewAgent(
	appCfg *config.AppConfig,
	bundle *profile.Bundle,
	ai core.AIProvider,
	tools core.ToolSource,
	repo core.MessagesRepository,
) *Agent {
	return &Agent{
		appCfg:   appCfg,
		bundle:   bundle,
		ai:       ai,
		tools:    tools,
		repo:     repo,
		executor: NewExecutor(tools),
	}
}

// Run produces the reply to display for input. Failures never escape as
// errors: every failure mode degrades to an apology string so the chat
// surface always has something to show.
func (a *Agent) Run(ctx context.Context, sessionID string, input string, onUpdate func(core.Message)) string {
	logger := log.FromCtx(ctx)

	userMsg := core.Message{Role: core.RoleUser, Content: input}
	if err := a.repo.AddMessage(ctx, sessionID, userMsg); err != nil {
		logger.Error().Err(err).Msg("failed to save user message")
	}

	for round := 0; round < a.appCfg.MaxToolRounds; round++ {
		messages, err := a.buildRequest(ctx, sessionID)
		if err != nil {
			logger.Error().Err(err).Msg("failed to assemble request")
			return apologyError
		}

		responseMsg, err := a.ai.Chat(ctx, messages, a.tools.Definitions())
		if err != nil {
			logger.Error().
				Err(err).
				Str("kind", string(llm.KindOf(err))).
				Int("round", round).
				Msg("chat call failed")
			return apologyError
		}

		if err := a.repo.AddMessage(ctx, sessionID, responseMsg); err != nil {
			logger.Error().Err(err).Msg("failed to save assistant message")
		}

		if onUpdate != nil {
			onUpdate(responseMsg)
		}

		if len(responseMsg.ToolCalls) == 0 {
			return responseMsg.Content
		}

		for _, toolMsg := range a.executor.Execute(ctx, responseMsg.ToolCalls) {
			if err := a.repo.AddMessage(ctx, sessionID, toolMsg); err != nil {
				logger.Error().Err(err).Msg("failed to save tool message")
			}
		}
	}

	logger.Warn().Int("rounds", a.appCfg.MaxToolRounds).Msg("round-trip cap reached")
	return apologyBusy
}

// buildRequest assembles the turn sequence: exactly one system turn with the
// profile bundle first, then the session history.
func (a *Agent) buildRequest(ctx context.Context, sessionID string) ([]core.Message, error) {
	history, err := a.repo.GetMessages(ctx, sessionID, a.appCfg.ContextWindowSize)
	if err != nil {
		return nil, err
	}

	messages := make([]core.Message, 0, len(history)+1)
	messages = append(messages, core.Message{
		Role:    core.RoleSystem,
		Content: a.bundle.SystemPrompt(),
	})
	messages = append(messages, sanitizeToolCalls(ctx, history)...)
	return messages, nil
}
