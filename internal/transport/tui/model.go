package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raanand/careerbot/internal/core"
	"github.com/raanand/careerbot/internal/service/agent"
)

var (
	visitorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	botStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type replyMsg struct {
	text string
}

type chatModel struct {
	ctx       context.Context
	agent     *agent.Agent
	router    core.CmdRouter
	candidate string

	input      textinput.Model
	transcript viewport.Model
	spinner    spinner.Model

	lines   []string
	waiting bool
	ready   bool
}

func newChatModel(ctx context.Context, ag *agent.Agent, router core.CmdRouter, candidate string) chatModel {
	input := textinput.New()
	input.Placeholder = fmt.Sprintf("Ask about %s's career...", candidate)
	input.Focus()
	input.CharLimit = 2000

	sp := spinner.New()
	sp.Spinner = spinner.Points

	return chatModel{
		ctx:       ctx,
		agent:     ag,
		router:    router,
		candidate: candidate,
		input:     input,
		spinner:   sp,
		lines: []string{
			hintStyle.Render(fmt.Sprintf("Chatting with %s. Type /help for commands, ctrl+c to quit.", candidate)),
		},
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) sendCmd(input string) tea.Cmd {
	return func() tea.Msg {
		if resp, handled := m.router.Execute(m.ctx, sessionID, input); handled {
			return replyMsg{text: resp}
		}
		return replyMsg{text: m.agent.Run(m.ctx, sessionID, input, nil)}
	}
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.transcript = viewport.New(msg.Width, msg.Height-3)
			m.ready = true
		} else {
			m.transcript.Width = msg.Width
			m.transcript.Height = msg.Height - 3
		}
		m.input.Width = msg.Width - 4
		m.refreshTranscript()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.waiting {
				break
			}
			m.lines = append(m.lines, visitorStyle.Render("You: ")+text)
			m.input.Reset()
			m.waiting = true
			m.refreshTranscript()
			cmds = append(cmds, m.sendCmd(text), m.spinner.Tick)
		}

	case replyMsg:
		m.waiting = false
		m.lines = append(m.lines, botStyle.Render(m.candidate+": ")+msg.text, "")
		m.refreshTranscript()

	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.transcript, cmd = m.transcript.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *chatModel) refreshTranscript() {
	if !m.ready {
		return
	}
	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	m.transcript.GotoBottom()
}

func (m chatModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	status := ""
	if m.waiting {
		status = m.spinner.View() + " thinking"
	}

	return m.transcript.View() + "\n" + status + "\n" + m.input.View()
}
