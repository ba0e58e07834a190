package tui

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// EasterEggMode represents special seasonal themes
type EasterEggMode int

const (
	EasterEggNone EasterEggMode = iota
	EasterEggHalloween
	EasterEggChristmas
)

// detectEasterEgg checks the EASTER_EGG environment variable, then the date.
func detectEasterEgg(now time.Time) EasterEggMode {
	if easterEgg := os.Getenv("EASTER_EGG"); easterEgg != "" {
		switch strings.ToLower(easterEgg) {
		case "halloween":
			return EasterEggHalloween
		case "xmas", "christmas":
			return EasterEggChristmas
		}
	}

	month := now.Month()
	day := now.Day()

	if month == time.October && day == 31 {
		return EasterEggHalloween
	}

	if month == time.December && day == 25 {
		return EasterEggChristmas
	}

	return EasterEggNone
}

// getBannerStyles colors the two banner figures: the player on the left
// and its opponent on the right.
func getBannerStyles(logo string, mode EasterEggMode) (string, string) {
	switch mode {
	case EasterEggHalloween:
		orangeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
		return orangeStyle.Render(logo), orangeStyle.Render(mirror(logo))

	case EasterEggChristmas:
		redStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
		greenStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
		return redStyle.Render(logo), greenStyle.Render(mirror(logo))

	default:
		// Player blue, enemy orange-red, as in game.
		playerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
		enemyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("202")).Bold(true)
		return playerStyle.Render(logo), enemyStyle.Render(mirror(logo))
	}
}

var mirrored = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
}

// mirror flips ASCII art horizontally so the two figures face each other.
func mirror(logo string) string {
	lines := strings.Split(logo, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}

	for i, line := range lines {
		runes := []rune(line)
		out := make([]rune, width)
		for j := range out {
			out[j] = ' '
		}
		for j, r := range runes {
			if m, ok := mirrored[r]; ok {
				r = m
			}
			out[width-1-j] = r
		}
		lines[i] = strings.TrimRight(string(out), " ")
	}
	return strings.Join(lines, "\n")
}
