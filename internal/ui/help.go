package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProjectURL is shown in the help overlay.
const ProjectURL = "https://github.com/LunaraCodes/gag-notifier"

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

func (m Model) helpSections() []helpSection {
	general := []helpItem{
		{"c", "Check stock now"},
	}
	if m.canMinimize {
		general = append(general, helpItem{"m", "Minimize to tray"})
	}
	general = append(general,
		helpItem{"T", "Cycle theme"},
		helpItem{"?", "Toggle help"},
		helpItem{"q/ctrl+c", "Quit"},
	)

	return []helpSection{
		{
			title: "Views",
			items: []helpItem{
				{"1/2/3", "Seeds/Gear/Log"},
				{"tab", "Next view"},
				{"shift+tab", "Previous view"},
			},
		},
		{
			title: "Watch list",
			items: []helpItem{
				{"hjkl", "Move cursor"},
				{"space", "Toggle item"},
				{"a", "Watch all"},
				{"n", "Watch none"},
			},
		},
		{
			title: "Log",
			items: []helpItem{
				{"space", "Toggle follow mode"},
				{"j/k", "Scroll"},
				{"g/G", "Top/bottom"},
			},
		},
		{title: "General", items: general},
	}
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	sections := m.helpSections()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(ProjectURL))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(50)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// renderConfirmQuit renders the quit confirmation dialog.
func (m Model) renderConfirmQuit() string {
	styles := m.theme.Styles()
	body := styles.Text.Bold(true).Render("Quit gagwatch?") + "\n\n" +
		styles.MutedText.Render("Your watch list is saved and checks stop.") + "\n\n" +
		styles.WarningText.Render("y") + styles.Text.Render(" quit   ") +
		styles.WarningText.Render("n") + styles.Text.Render(" stay")

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 3)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(body),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
