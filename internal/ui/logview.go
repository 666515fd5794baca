package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunaracodes/gagwatch/internal/state"
)

const emptyLogText = "No restocks yet. Watched items show up here when they come into stock."

// initLogViewport initializes the log viewport.
func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(max(m.width-2, 0), max(m.height-4, 0))
}

// refreshLog pulls the displayable tail of the notification log.
func (m *Model) refreshLog() {
	m.logLines = m.store.RecentLog(state.LogDisplayLimit)
	m.updateLogViewport()
}

// updateLogViewport resizes the viewport and re-renders its content.
func (m *Model) updateLogViewport() {
	// Box height = m.height - 2 (header, cmdbar); inner = box - 2 borders.
	m.logViewport.Width = max(m.width-2, 0)
	m.logViewport.Height = max(m.height-4, 0)
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.logViewport.SetContent(m.renderLogContent())
	if m.follow {
		m.logViewport.GotoBottom()
	}
}

func (m Model) renderLogContent() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	width := m.logViewport.Width

	if len(m.logLines) == 0 {
		return bg.FillLine(bg.Space()+bg.Render(emptyLogText, styles.MutedText), width)
	}

	lines := make([]string, 0, len(m.logLines))
	for _, e := range m.logLines {
		line := bg.Space() + bg.Render(e.Line(), styles.Text) + bg.Space() +
			bg.Render(e.Category.Title(), styles.FaintText)
		lines = append(lines, bg.FillLine(line, width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			m.logViewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		m.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		m.follow = true
		return m, nil
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	if !m.logViewport.AtBottom() {
		m.follow = false
	}
	return m, cmd
}

// renderLog renders the log view.
func (m Model) renderLog() string {
	snap := m.snapshot
	title := "Notification Log"
	if snap.LogTotal > len(m.logLines) {
		title = fmt.Sprintf("Notification Log  last %d of %d", len(m.logLines), snap.LogTotal)
	}
	return m.renderTitledBox(title, m.logViewport.View(), m.width, m.height-2, true)
}
