package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader draws the info block on the left and the two banner figures
// on the right. Below 20 lines the figures are dropped.
func (m Model) renderHeader(b *strings.Builder) {
	var info strings.Builder
	info.WriteString(titleStyle.Render("SKIRMISH") + " " + dimStyle.Render(Version) + "\n")
	info.WriteString(labelStyle.Render("High Score: ") + scoreStyle.Render(fmt.Sprintf("%d", m.highScore)) + "\n")
	info.WriteString(labelStyle.Render("Frontends: ") + valueStyle.Render(fmt.Sprintf("%d", len(m.frontends))))
	if m.config != nil && m.config.SpectateAddr != "" {
		info.WriteString("\n" + labelStyle.Render("Spectate: ") + valueStyle.Render("ws://"+m.config.SpectateAddr+"/ws"))
	}
	infoBlock := info.String()

	if m.height > 0 && m.height < 20 {
		b.WriteString(infoBlock)
		return
	}

	logo := ""
	if m.config != nil {
		logo = m.config.Logo
	}
	if logo == "" {
		b.WriteString(infoBlock)
		return
	}

	player, enemy := getBannerStyles(logo, detectEasterEgg(m.now()))
	banner := lipgloss.JoinHorizontal(lipgloss.Top, player, "   ", enemy)

	termWidth := max(m.width, 60)
	const minGap = 2
	gap := termWidth - lipgloss.Width(infoBlock) - lipgloss.Width(banner)
	if gap < minGap {
		gap = minGap
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		infoBlock,
		strings.Repeat(" ", gap),
		banner,
	))
}
