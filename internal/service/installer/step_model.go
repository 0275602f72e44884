package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/raanand/careerbot/internal/config"
	"github.com/raanand/careerbot/internal/core"
	"github.com/raanand/careerbot/internal/providers/llm"
)

const defaultResponderModel = "gpt-5-mini"

// ModelStep selects the responder model from the provider's model listing.
// When the listing fails the user can retry or type a model name instead.
type ModelStep struct {
	list     list.Model
	manual   textinput.Model
	typing   bool
	loading  bool
	fetching bool
	err      error

	fetch func(ctx context.Context, state *InstallState) ([]core.Model, error)
}

func NewModelStep() Step {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select the responder model"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 40
	ti.Placeholder = defaultResponderModel

	return &ModelStep{
		list:    l,
		manual:  ti,
		loading: true,
		fetch:   fetchModels,
	}
}

func fetchModels(ctx context.Context, state *InstallState) ([]core.Model, error) {
	cfg := &config.LLMConfig{
		OpenAIAPIKey:        state.EnvVars["OPENAI_API_KEY"],
		OpenRouterAPIKey:    state.EnvVars["OPENROUTER_API_KEY"],
		OllamaBaseURL:       state.EnvVars["OLLAMA_BASE_URL"],
		OllamaAPIKey:        state.EnvVars["OLLAMA_API_KEY"],
		CustomOpenAIBaseURL: state.EnvVars["CUSTOM_OPENAI_BASE_URL"],
		CustomOpenAIAPIKey:  state.EnvVars["CUSTOM_OPENAI_API_KEY"],
	}

	lister, err := llm.NewModelLister(state.EnvVars["LLM_PROVIDER"], cfg)
	if err != nil {
		return nil, err
	}
	return lister.Models(ctx)
}

func (s *ModelStep) Init() tea.Cmd {
	return nil
}

func (s *ModelStep) fetchCmd(state *InstallState) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		models, err := s.fetch(ctx, state)
		if err != nil {
			return errMsg(err)
		}

		var items []list.Item
		for _, mod := range models {
			items = append(items, item{
				id:    mod.ID,
				title: mod.Name,
				desc:  fmt.Sprintf("ID: %s", mod.ID),
			})
		}
		return modelsMsg(items)
	}
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	// Trigger fetch once when we enter the step
	if s.loading && !s.fetching {
		s.fetching = true
		return s, s.fetchCmd(state)
	}

	if s.typing {
		return s.updateManual(msg, state)
	}

	s.list.SetSize(width, height-4)

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case modelsMsg:
		s.list.SetItems(msg)
		s.loading = false
		s.fetching = false
		return s, nil

	case errMsg:
		s.loading = false
		s.fetching = false
		s.err = msg
		return s, nil

	case tea.KeyMsg:
		// On a listing error, Enter retries and "m" switches to manual entry
		if s.err != nil {
			switch msg.String() {
			case "enter":
				s.err = nil
				s.loading = true
				s.fetching = false
				return s, nil
			case "m":
				s.err = nil
				s.typing = true
				s.manual.Focus()
				return s, textinput.Blink
			}
			return s, nil
		}

		if msg.String() == "enter" {
			wasFiltering := s.list.FilterState() == list.Filtering
			s.list, cmd = s.list.Update(msg)

			if wasFiltering || s.list.FilterState() == list.Filtering {
				return s, cmd
			}

			if i, ok := s.list.SelectedItem().(item); ok {
				state.EnvVars["RESPONDER_MODEL"] = i.id
				return nil, nil
			}
			return s, cmd
		}
	}

	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *ModelStep) updateManual(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.manual, cmd = s.manual.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			model := s.manual.Value()
			if model == "" {
				model = defaultResponderModel
			}
			state.EnvVars["RESPONDER_MODEL"] = model
			return nil, nil
		}
	}
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	if s.typing {
		return "Enter the model that answers visitor questions:\n\n" +
			s.manual.View() + "\n\n" +
			"(press enter to confirm, empty keeps the default)\n"
	}
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error fetching models: %v", s.err)) +
			"\n\nCheck your API key and internet connection.\n\n(press enter to retry, m to type a model name, ctrl+c to quit)\n"
	}
	if s.loading {
		return "Fetching available models...\n"
	}
	return s.list.View()
}
