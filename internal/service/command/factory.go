package command

import (
	"github.com/raanand/careerbot/internal/core"
)

func NewCommands(repo core.MessagesRepository) []core.Command {
	reset := NewResetCommand(repo)

	return []core.Command{
		reset,
		NewHelpCommand([]core.Command{reset}),
	}
}
