package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raanand/careerbot/internal/core"
	"github.com/raanand/careerbot/internal/service/agent"
	"github.com/raanand/careerbot/pkg/log"
)

// sessionID for the terminal surface; a single conversation per process.
const sessionID = "tui-local"

// Chat is the terminal chat surface. It satisfies srv.Service so the
// lifecycle layer can start and stop it like any other transport.
type Chat struct {
	agent     *agent.Agent
	router    core.CmdRouter
	candidate string
	onExit    func()
	program   *tea.Program
}

// NewChat builds the terminal surface. onExit fires when the user leaves
// the chat, letting the caller cancel the run context.
func NewChat(agent *agent.Agent, router core.CmdRouter, candidate string, onExit func()) *Chat {
	return &Chat{
		agent:     agent,
		router:    router,
		candidate: candidate,
		onExit:    onExit,
	}
}

func (c *Chat) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting terminal chat")

	c.program = tea.NewProgram(
		newChatModel(ctx, c.agent, c.router, c.candidate),
		tea.WithAltScreen(),
	)

	_, err := c.program.Run()
	if c.onExit != nil {
		c.onExit()
	}
	return err
}

func (c *Chat) Shutdown(ctx context.Context) error {
	if c.program != nil {
		c.program.Quit()
	}
	return nil
}
