package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CandidateStep collects the name the bot impersonates
type CandidateStep struct {
	input textinput.Model
}

func NewCandidateStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40
	ti.Placeholder = "Rahul Anand"

	return &CandidateStep{
		input: ti,
	}
}

func (s *CandidateStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *CandidateStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			name := s.input.Value()
			if name != "" {
				state.EnvVars["CANDIDATE_NAME"] = name
			}
			return nil, nil
		}
	}
	return s, cmd
}

func (s *CandidateStep) View(state *InstallState) string {
	return "Whose career does this bot represent? Enter the candidate's name:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm, empty keeps the default)\n"
}
