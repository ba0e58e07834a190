package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/shvbsle/skirmish/internal/config"
	"github.com/shvbsle/skirmish/internal/frontends"
)

// Version is the current version of skirmish.
const Version = "v0.1.0"

// ViewMode represents the current input mode of the lobby.
type ViewMode int

const (
	// ViewModeNormal is the default mode: pick a frontend from the list.
	ViewModeNormal ViewMode = iota
	// ViewModeCommand is the command entry mode activated by pressing ':'.
	ViewModeCommand
)

// Model is the lobby shown before and between games. It lists the
// registered frontends and remembers which one the player picked, so main
// can launch it after the program exits.
type Model struct {
	config             *config.Config
	registry           *frontends.Registry
	frontends          []frontends.Frontend
	highScore          int
	cursor             int
	commandInput       textinput.Model
	help               help.Model
	keys               keyMap
	viewMode           ViewMode
	commandSuggestions []string
	width              int
	height             int
	commandErr         string
	now                func() time.Time
	launch             frontends.Frontend
}

type commandErrMsg struct {
	message string
}

type clearCommandErrMsg struct{}

// New creates the lobby. highScore is shown in the header.
func New(cfg *config.Config, registry *frontends.Registry, highScore int) Model {
	ti := textinput.New()
	ti.Placeholder = "frontend or quit..."
	ti.CharLimit = 40
	ti.Width = 30

	suggestions := append(registry.CommandSuggestions(), "quit", "q")

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return Model{
		config:             cfg,
		registry:           registry,
		frontends:          registry.List(),
		highScore:          highScore,
		commandInput:       ti,
		help:               h,
		keys:               newKeyMap(),
		viewMode:           ViewModeNormal,
		commandSuggestions: suggestions,
		now:                time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// GetFrontendToLaunch returns the frontend the player picked, or nil if they
// quit.
func (m Model) GetFrontendToLaunch() frontends.Frontend {
	return m.launch
}

// Update handles messages and updates the model state accordingly.
// It implements the tea.Model interface for Bubble Tea.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case commandErrMsg:
		m.commandErr = msg.message
		return m, tea.Tick(5*time.Second, func(t time.Time) tea.Msg {
			return clearCommandErrMsg{}
		})

	case clearCommandErrMsg:
		m.commandErr = ""
		return m, nil

	case tea.KeyMsg:
		if m.viewMode == ViewModeCommand {
			switch msg.String() {
			case "enter":
				command := strings.TrimSpace(m.commandInput.Value())
				m.commandInput.Reset()
				m.viewMode = ViewModeNormal
				return m.executeCommand(command)
			case "esc":
				m.commandInput.Reset()
				m.viewMode = ViewModeNormal
				return m, nil
			case "tab":
				filtered := m.getFilteredSuggestions()
				if len(filtered) > 0 {
					m.commandInput.SetValue(filtered[0])
					m.commandInput.SetCursor(len(filtered[0]))
				}
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			default:
				m.commandInput, cmd = m.commandInput.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case ":":
			m.viewMode = ViewModeCommand
			m.commandErr = ""
			return m, m.commandInput.Focus()
		case "q", "ctrl+c":
			logger().Info("user quit lobby")
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.frontends)-1 {
				m.cursor++
			}
			return m, nil
		case "enter", " ":
			if len(m.frontends) == 0 {
				return m, nil
			}
			m.launch = m.frontends[m.cursor]
			logger().Info("frontend selected", "frontend", m.launch.Name())
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	m.renderHeader(&b)
	b.WriteString("\n\n")

	if len(m.frontends) == 0 {
		b.WriteString(errorStyle.Render("no frontends registered"))
		b.WriteString("\n")
	}
	for i, f := range m.frontends {
		name := f.Name()
		desc := dimStyle.Render(" " + f.Description())
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+name) + desc)
		} else {
			b.WriteString("  " + valueStyle.Render(name) + desc)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.viewMode == ViewModeCommand:
		b.WriteString(promptStyle.Render(":") + m.commandInput.View())
		if filtered := m.getFilteredSuggestions(); len(filtered) > 0 && m.commandInput.Value() != "" {
			b.WriteString("  " + dimStyle.Render(strings.Join(filtered, " ")))
		}
	case m.commandErr != "":
		b.WriteString(errorStyle.Render(m.commandErr))
	default:
		b.WriteString(m.help.View(m.keys))
	}

	return m.truncate(b.String())
}

// truncate clips every line to the terminal width without breaking escape
// sequences.
func (m Model) truncate(s string) string {
	if m.width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > m.width {
			lines[i] = ansi.Truncate(line, m.width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
