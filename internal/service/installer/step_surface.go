package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SurfaceStep allows selection of the chat surface
type SurfaceStep struct {
	choices []string
	cursor  int
}

func NewSurfaceStep() Step {
	return &SurfaceStep{
		choices: []string{"Terminal", "Telegram", "Both"},
		cursor:  0,
	}
}

func (s *SurfaceStep) Init() tea.Cmd {
	return nil
}

func (s *SurfaceStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.EnvVars["careerbot_surface"] = strings.ToLower(s.choices[s.cursor])
			return nil, nil
		}
	}
	return s, nil
}

func (s *SurfaceStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Where should visitors chat with the bot?\n\n")
	for i, choice := range s.choices {
		cursor := " "
		if s.cursor == i {
			cursor = "❯"
			b.WriteString(selStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
