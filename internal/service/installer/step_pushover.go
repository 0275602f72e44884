package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PushoverStep collects the Pushover application token and user key.
// Both are optional; leaving them empty disables push notifications.
type PushoverStep struct {
	token textinput.Model
	user  textinput.Model
	phase int
}

func NewPushoverStep() Step {
	token := textinput.New()
	token.Focus()
	token.CharLimit = 64
	token.Width = 40
	token.Placeholder = "Optional - press Enter to skip"
	token.EchoMode = textinput.EchoPassword
	token.EchoCharacter = '•'

	user := textinput.New()
	user.CharLimit = 64
	user.Width = 40
	user.Placeholder = "Optional - press Enter to skip"

	return &PushoverStep{
		token: token,
		user:  user,
	}
}

func (s *PushoverStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *PushoverStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	if s.phase == 0 {
		s.token, cmd = s.token.Update(msg)
	} else {
		s.user, cmd = s.user.Update(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if s.phase == 0 {
				state.EnvVars["PUSHOVER_TOKEN"] = s.token.Value()
				s.phase = 1
				s.user.Focus()
				return s, textinput.Blink
			}

			state.EnvVars["PUSHOVER_USER"] = s.user.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *PushoverStep) View(state *InstallState) string {
	if s.phase == 0 {
		return "Enter your Pushover Application Token:\n\n" +
			s.token.View() + "\n\n" +
			"(press enter to confirm)\n"
	}
	return "Enter your Pushover User Key:\n\n" +
		s.user.View() + "\n\n" +
		"(press enter to confirm)\n"
}
