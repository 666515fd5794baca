package ui

import (
	"fmt"
	"strings"

	"github.com/lunaracodes/gagwatch/internal/catalog"
)

// countdownText renders the header countdown.
func countdownText(seconds int) string {
	return fmt.Sprintf("Next check in: %ds", seconds)
}

// renderHeader renders the status line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("gagwatch", styles.Logo)}

	snap := m.snapshot
	switch {
	case snap.Checking || m.checking:
		parts = append(parts, bg.Render("Checking...", styles.WarningText.Bold(true)))
	case snap.HasCountdown:
		parts = append(parts, bg.Render(countdownText(int(snap.Countdown.Seconds())), styles.AccentText.Bold(true)))
	}

	for _, cat := range catalog.Categories {
		selected, total := m.selection.Count(cat)
		parts = append(parts,
			bg.Render(cat.Title()+":", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d/%d", selected, total), styles.Text))
	}

	if !snap.LastCheck.IsZero() {
		parts = append(parts,
			bg.Render("Last check", styles.FaintText)+bg.Space()+
				bg.Render(snap.LastCheck.Format("15:04:05"), styles.MutedText))
	}

	maxErr := 60
	if m.width < 100 {
		maxErr = 30
	}
	for _, cat := range catalog.Categories {
		if err := snap.FetchErrors[cat]; err != nil {
			parts = append(parts,
				bg.Render("ERROR", styles.DangerText)+bg.Space()+
					bg.Render(truncate(err.Error(), maxErr), styles.DangerText.Bold(false)))
		}
	}

	if m.notice != "" {
		parts = append(parts, bg.Render(m.notice, styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderCommandBar renders view tabs and the keys for the active view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, 12)
	for i, v := range viewOrder {
		label := fmt.Sprintf("%d %s", i+1, v.title())
		if v == ViewLog {
			label = fmt.Sprintf("%d Log", i+1)
		}
		style := styles.MutedText
		if v == m.currentView {
			style = styles.AccentText.Bold(true).Underline(true)
		}
		segments = append(segments, bg.Render(label, style))
	}

	type cmd struct{ key, desc string }
	var commands []cmd
	if m.currentView == ViewLog {
		followLabel := "Pause"
		if !m.follow {
			followLabel = "Follow"
		}
		commands = []cmd{
			{"Space", followLabel},
			{"g/G", "Top/Bottom"},
		}
	} else {
		commands = []cmd{
			{"Space", "Toggle"},
			{"a/n", "All/None"},
			{"hjkl", "Move"},
		}
	}
	commands = append(commands, cmd{"c", "Check"})
	if m.canMinimize {
		commands = append(commands, cmd{"m", "Tray"})
	}
	commands = append(commands, cmd{"q", "Quit"}, cmd{"?", "More"})

	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
