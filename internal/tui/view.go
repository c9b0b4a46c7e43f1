package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordrush/internal/game"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	typedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A5A"))
	cursorStyle  = pendingStyle.Underline(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.session.Phase() {
	case game.PhaseActive:
		body = m.viewActive()
	case game.PhaseOver:
		body = m.viewOver()
	default:
		body = m.viewIdle()
	}
	lines := []string{body, "", m.help.View(m.keys)}
	if footer := m.renderFooter(); footer != "" {
		lines = append(lines, footer)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) viewIdle() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("wordrush"),
		"",
		labelStyle.Render(fmt.Sprintf("Type each word before the %ds clock runs out.", game.SessionSeconds)),
	)
}

func (m *Model) viewActive() string {
	s := m.session
	return lipgloss.JoinVertical(lipgloss.Center,
		renderTarget(s.Target(), s.Typed()),
		"",
		renderStat("Time", fmt.Sprintf("%ds", s.SecondsRemaining())),
		renderStat("Score", fmt.Sprintf("%d", s.Score())),
		renderStat("Accuracy", fmt.Sprintf("%.2f%%", s.Accuracy())),
		renderStat("Error rate", fmt.Sprintf("%.2f%%", s.ErrorRate())),
		"",
		m.rocket.ViewAs(float64(s.Progress())/float64(game.MaxProgress)),
	)
}

func (m *Model) viewOver() string {
	s := m.session
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Game over!"),
		"",
		renderStat("Score", fmt.Sprintf("%d", s.Score())),
		renderStat("Accuracy", fmt.Sprintf("%.2f%%", s.Accuracy())),
		renderStat("Error rate", fmt.Sprintf("%.2f%%", s.ErrorRate())),
	)
}

// renderTarget highlights the typed part of target and underlines the next character.
func renderTarget(target, typed string) string {
	typedLen := len([]rune(typed))
	var b strings.Builder
	for i, r := range []rune(target) {
		style := pendingStyle
		switch {
		case i < typedLen:
			style = typedStyle
		case i == typedLen:
			style = cursorStyle
		}
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

const statLabelWidth = 10

func renderStat(label, value string) string {
	pad := statLabelWidth - runewidth.StringWidth(label)
	if pad < 0 {
		pad = 0
	}
	return labelStyle.Render(label+strings.Repeat(" ", pad)) + " " + valueStyle.Render(value)
}

func (m *Model) renderFooter() string {
	if !m.hasLast {
		return ""
	}
	return footerStyle.Render(fmt.Sprintf("Last %d  Best %d", m.lastScore, m.bestScore))
}
