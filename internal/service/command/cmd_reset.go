package command

import (
	"context"

	"github.com/raanand/careerbot/internal/core"
)

type ResetCommand struct {
	repo      core.MessagesRepository
	formatter *ResponseFormatter
}

func NewResetCommand(repo core.MessagesRepository) *ResetCommand {
	return &ResetCommand{
		repo:      repo,
		formatter: NewResponseFormatter(),
	}
}

func (c *ResetCommand) Name() string {
	return "reset"
}

func (c *ResetCommand) Description() string {
	return "Clear the conversation history for this chat"
}

func (c *ResetCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	if err := c.repo.Clear(ctx, sessionID); err != nil {
		return "", err
	}

	return c.formatter.Combine(
		c.formatter.Success("Conversation history cleared"),
	), nil
}
