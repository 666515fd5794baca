package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunaracodes/gagwatch/internal/catalog"
	"github.com/lunaracodes/gagwatch/internal/state"
)

const checklistColumns = 3

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// perColumn returns how many items each column holds when n items are laid
// out column by column.
func perColumn(n, columns int) int {
	if columns <= 0 {
		columns = 1
	}
	return (n + columns - 1) / columns
}

// moveCursor moves a flat index through a column-major grid of n items.
// Moves that would leave the grid keep the cursor where it is, except that
// moving right into a shorter last column lands on its last item.
func moveCursor(idx, n, columns int, dir direction) int {
	if n <= 0 {
		return 0
	}
	if idx < 0 || idx >= n {
		idx = 0
	}
	per := perColumn(n, columns)
	switch dir {
	case dirUp:
		if idx%per > 0 {
			return idx - 1
		}
	case dirDown:
		if idx%per < per-1 && idx+1 < n {
			return idx + 1
		}
	case dirLeft:
		if idx-per >= 0 {
			return idx - per
		}
	case dirRight:
		if idx+per < n {
			return idx + per
		}
		if (idx/per+1)*per < n {
			return n - 1
		}
	}
	return idx
}

func (m Model) handleChecklistKey(cat catalog.Category, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := cat.Names()
	idx := m.cursor[cat]

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor[cat] = moveCursor(idx, len(names), checklistColumns, dirUp)
	case key.Matches(msg, m.keys.Down):
		m.cursor[cat] = moveCursor(idx, len(names), checklistColumns, dirDown)
	case key.Matches(msg, m.keys.Left):
		m.cursor[cat] = moveCursor(idx, len(names), checklistColumns, dirLeft)
	case key.Matches(msg, m.keys.Right):
		m.cursor[cat] = moveCursor(idx, len(names), checklistColumns, dirRight)
	case key.Matches(msg, m.keys.Toggle):
		if idx >= 0 && idx < len(names) {
			on, _ := m.selection.Toggle(cat, names[idx])
			m.log.Debug().Str("category", cat.String()).Str("item", names[idx]).Bool("selected", on).Msg("watch toggled")
		}
	case key.Matches(msg, m.keys.SelectAll):
		m.selection.SetAll(cat, true)
	case key.Matches(msg, m.keys.SelectNone):
		m.selection.SetAll(cat, false)
	}
	return m, nil
}

// renderChecklist renders the category as a bordered three-column grid.
func (m Model) renderChecklist(cat catalog.Category) string {
	selected, total := m.selection.Count(cat)
	title := fmt.Sprintf("%s  %d/%d watched", cat.Title(), selected, total)

	height := m.height - 2
	innerWidth := m.width - 2
	content := m.renderChecklistColumns(cat, innerWidth, m.theme.FocusBg)
	return m.renderTitledBox(title, content, m.width, height, true)
}

func (m Model) renderChecklistColumns(cat catalog.Category, width int, bgColor string) string {
	names := cat.Names()
	if len(names) == 0 {
		return ""
	}
	per := perColumn(len(names), checklistColumns)
	colWidth := width / checklistColumns
	if colWidth < 8 {
		colWidth = 8
	}

	now := m.clock.Now()
	cursor := m.cursor[cat]
	columns := make([]string, 0, checklistColumns)
	for col := 0; col < checklistColumns; col++ {
		start := col * per
		if start >= len(names) {
			break
		}
		end := min(start+per, len(names))

		var lines []string
		for i := start; i < end; i++ {
			name := names[i]
			restock, _ := m.store.RestockText(name, now)
			lines = append(lines, m.renderChecklistRow(name, m.selection.Selected(cat, name), restock, colWidth, bgColor, i == cursor))
		}
		columns = append(columns, strings.Join(lines, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m Model) renderChecklistRow(name string, on bool, restock string, width int, bgColor string, focused bool) string {
	if focused {
		bgColor = m.theme.SelectionBg
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	box := "[ ]"
	boxStyle := styles.FaintText
	if on {
		box = "[x]"
		boxStyle = styles.SuccessText
	}
	nameStyle := styles.Text
	if focused {
		nameStyle = nameStyle.Foreground(lipgloss.Color(m.theme.SelectionText)).Bold(true)
	}

	left := bg.Space() + bg.Render(box, boxStyle) + bg.Space() + bg.Render(name, nameStyle)
	used := 1 + len(box) + 1 + lipgloss.Width(name)

	right := ""
	if restock != "" {
		room := width - used - 2
		restock = truncate(restock, room)
		if restock != "" {
			restockStyle := styles.MutedText
			if restock == state.NewItemText {
				restockStyle = styles.WarningText
			}
			gap := width - used - lipgloss.Width(restock) - 1
			right = bg.Spaces(gap) + bg.Render(restock, restockStyle)
		}
	}
	return bg.FillLine(left+right, width)
}
