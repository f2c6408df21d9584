package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1a7f3c")).
			Padding(0, 1)

	userStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0a84ff"))

	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#30d158"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff453a"))
)

// Model defines the application state
type Model struct {
	client   *ApiClient
	input    textinput.Model
	spinner  spinner.Model
	history  []string
	total    float64
	loading  bool
	errorMsg string
}

type replyMsg struct {
	reply *ChatReply
	err   error
}

type sessionMsg struct {
	welcome string
	err     error
}

func initialModel() Model {
	ti := textinput.New()
	ti.Placeholder = "Type your message..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		client:  NewApiClient(),
		input:   ti,
		spinner: s,
		loading: true,
	}
}

// Init starts the session
func (m Model) Init() tea.Cmd {
	client := m.client
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		welcome, err := client.CreateSession()
		return sessionMsg{welcome: welcome, err: err}
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.loading {
				return m, nil
			}
			m.history = append(m.history, userStyle.Render("You: ")+text)
			m.input.Reset()
			m.loading = true
			client := m.client
			return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
				reply, err := client.SendMessage(text)
				return replyMsg{reply: reply, err: err}
			})
		}

	case sessionMsg:
		m.loading = false
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Could not reach the server: %v", msg.err)
		} else {
			m.history = append(m.history, assistantStyle.Render("Shack: "+msg.welcome))
		}
		return m, nil

	case replyMsg:
		m.loading = false
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Request failed: %v", msg.err)
		} else {
			m.errorMsg = ""
			m.history = append(m.history, assistantStyle.Render("Shack: "+msg.reply.Reply))
			m.total = msg.reply.Total
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Shake Shack Customer Support"))
	b.WriteString("\n\n")

	for _, line := range m.history {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.errorMsg != "" {
		b.WriteString(errorStyle.Render(m.errorMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(totalStyle.Render(fmt.Sprintf("Order total: $%.2f", m.total)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Thinking...")
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n\n(esc to quit)")

	return docStyle.Render(b.String())
}

func main() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		fmt.Printf("Error running CLI: %v\n", err)
		os.Exit(1)
	}
}
