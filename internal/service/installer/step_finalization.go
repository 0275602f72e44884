package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep computes derived values and final env var formatting
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	surface := state.EnvVars["careerbot_surface"]

	switch surface {
	case "telegram":
		state.EnvVars["ENABLE_TELEGRAM"] = "true"
		state.EnvVars["ENABLE_TUI"] = "false"
	case "both":
		state.EnvVars["ENABLE_TELEGRAM"] = "true"
		state.EnvVars["ENABLE_TUI"] = "true"
	default:
		state.EnvVars["ENABLE_TELEGRAM"] = "false"
		state.EnvVars["ENABLE_TUI"] = "true"
	}

	if state.EnvVars["CAREERBOT_DEBUG"] == "" {
		state.EnvVars["CAREERBOT_DEBUG"] = "0"
	}

	// Only used as intermediate state
	delete(state.EnvVars, "careerbot_surface")

	// Drop optional keys left blank so the defaults apply
	for _, key := range []string{"PUSHOVER_TOKEN", "PUSHOVER_USER", "TELEGRAM_TOKEN", "OLLAMA_API_KEY"} {
		if state.EnvVars[key] == "" {
			delete(state.EnvVars, key)
		}
	}

	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
