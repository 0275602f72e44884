package command

import (
	"context"
	"fmt"

	"github.com/raanand/careerbot/internal/core"
)

type HelpCommand struct {
	commands  []core.Command
	formatter *ResponseFormatter
}

func NewHelpCommand(commands []core.Command) *HelpCommand {
	return &HelpCommand{
		commands:  commands,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "List available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	items := make([]string, 0, len(c.commands)+1)
	for _, cmd := range c.commands {
		items = append(items, fmt.Sprintf("`/%s` — %s", cmd.Name(), cmd.Description()))
	}
	items = append(items, fmt.Sprintf("`/%s` — %s", c.Name(), c.Description()))

	return c.formatter.Combine(
		c.formatter.Info("Available Commands"),
		c.formatter.List(items),
	), nil
}
