package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	skirmishlog "github.com/shvbsle/skirmish/internal/log"
)

func logger() *slog.Logger {
	return skirmishlog.TUI()
}

// executeCommand runs a palette command: quit, or any frontend name or
// alias.
func (m Model) executeCommand(command string) (tea.Model, tea.Cmd) {
	command = strings.ToLower(command)
	logger().Info("executing command", "command", command)

	switch command {
	case "":
		return m, nil
	case "quit", "q":
		logger().Info("user quit lobby")
		return m, tea.Quit
	}

	f, ok := m.registry.Lookup(command)
	if !ok {
		logger().Warn("unknown command", "command", command)
		return m, m.showCommandError(fmt.Sprintf("did not recognize command `%s`", command))
	}

	m.launch = f
	logger().Info("frontend selected", "frontend", f.Name(), "command", command)
	return m, tea.Quit
}

// showCommandError returns a command that sets the command error; Update
// clears it after 5 seconds.
func (m Model) showCommandError(errMsg string) tea.Cmd {
	return func() tea.Msg {
		return commandErrMsg{errMsg}
	}
}

func (m Model) getFilteredSuggestions() []string {
	input := strings.ToLower(m.commandInput.Value())
	var filtered []string

	for _, suggestion := range m.commandSuggestions {
		if strings.HasPrefix(suggestion, input) {
			filtered = append(filtered, suggestion)
		}
	}

	return filtered
}
