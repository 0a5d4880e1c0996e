package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var chatKeys = struct {
	Send key.Binding
	Quit key.Binding
}{
	Send: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ask")),
	Quit: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// advisorChat is a bubbletea model for a multi-turn advisor conversation.
// Each turn is answered independently.
type advisorChat struct {
	advisor  app.AdvisorUseCase
	industry string
	input    textinput.Model
	messages []string
	quitting bool
}

func newAdvisorChat(advisor app.AdvisorUseCase, industry string) *advisorChat {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Placeholder = "e.g. our growth has stalled in a crowded market"

	return &advisorChat{
		advisor:  advisor,
		industry: industry,
		input:    ti,
		messages: []string{formatter.FormatChatWelcome()},
	}
}

func (m *advisorChat) Init() tea.Cmd {
	return textinput.Blink
}

func (m *advisorChat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, chatKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, chatKeys.Send):
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" {
				return m, nil
			}
			return m.handleInput(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *advisorChat) View() string {
	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString(formatter.StylePurple.Render("you") + formatter.Dim("> "))
	b.WriteString(m.input.View())
	b.WriteString("\n" + formatter.Dim(chatKeys.Send.Help().Key+" "+chatKeys.Send.Help().Desc+" · "+
		chatKeys.Quit.Help().Key+" "+chatKeys.Quit.Help().Desc))
	return b.String()
}

func (m *advisorChat) handleInput(text string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(text) {
	case "/quit", "/exit", "/q", "quit", "exit":
		m.quitting = true
		return m, tea.Quit
	}

	m.messages = append(m.messages, formatter.Dim("You: ")+text)
	resp, err := m.advisor.Ask(context.Background(), app.AdvisorRequest{Message: text, Industry: m.industry})
	if err != nil {
		m.messages = append(m.messages, formatter.StyleRed.Render("Error: "+err.Error()))
		return m, nil
	}
	m.messages = append(m.messages, formatter.FormatAdvisorReply(resp))
	if resp.Locked {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}
