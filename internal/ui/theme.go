package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lunaracodes/gagwatch/internal/prefs"
)

// Theme is a named palette. Colors are hex strings.
type Theme struct {
	Name string

	Background string // behind modals
	Surface    string // header and command bar, like a notebook tab strip
	SurfaceAlt string // unfocused boxes
	FocusBg    string // checklist and log panels

	SelectionBg   string // checklist cursor
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string // tabs, keys and the logo
	Success string // watched checkbox
	Warning string // "New item!" and notices
	Danger  string // fetch errors
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),

		Header:   fg(t.Text).Background(lipgloss.Color(t.Surface)).Padding(0, 1),
		Logo:     fg(t.Accent).Bold(true),
		Selected: fg(t.SelectionText).Background(lipgloss.Color(t.SelectionBg)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
}

// WithBackground returns a copy of Styles painted on bgColor. Selected
// keeps its own background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	for _, st := range []*lipgloss.Style{
		&out.Text, &out.MutedText, &out.FaintText, &out.AccentText,
		&out.SuccessText, &out.WarningText, &out.DangerText,
		&out.Header, &out.Logo,
	} {
		*st = st.Background(bg)
	}
	return out
}

// DefaultThemeName is used when no preference is stored.
const DefaultThemeName = prefs.DefaultTheme

// themes in cycle order; the first is the default.
var themes = []Theme{
	{
		// The notifier's original light look: grey window, white panels,
		// steel-blue accent and a light grey tab strip.
		Name: "Classic",

		Background: "#f5f5f5",
		Surface:    "#e0e0e0",
		SurfaceAlt: "#f5f5f5",
		FocusBg:    "#ffffff",

		SelectionBg:   "#2c5e8a",
		SelectionText: "#ffffff",

		Border:      "#c4c4c4",
		BorderFocus: "#2c5e8a",

		Text:    "#333333",
		Muted:   "#5f5f5f",
		Faint:   "#8c8c8c",
		Accent:  "#2c5e8a",
		Success: "#2f7d32",
		Warning: "#a65f00",
		Danger:  "#c0392b",
	},
	{
		// Dark greens for a garden at night.
		Name: "Garden",

		Background: "#0f1a12",
		Surface:    "#16261a",
		SurfaceAlt: "#1c3022",
		FocusBg:    "#213828",

		SelectionBg:   "#3a6644",
		SelectionText: "#f1f7ee",

		Border:      "#3c5a44",
		BorderFocus: "#8fcb6b",

		Text:    "#e4eedf",
		Muted:   "#a3b89c",
		Faint:   "#6f8869",
		Accent:  "#8fcb6b",
		Success: "#6fd08c",
		Warning: "#e8c35a",
		Danger:  "#e0645c",
	},
	{
		// Classic's accent on a dark blue ground.
		Name: "Midnight",

		Background: "#0b1020",
		Surface:    "#121a2e",
		SurfaceAlt: "#18223a",
		FocusBg:    "#1c2843",

		SelectionBg:   "#2c5e8a",
		SelectionText: "#eef3fa",

		Border:      "#2f3d5c",
		BorderFocus: "#6fa8dc",

		Text:    "#dde5f0",
		Muted:   "#8d9ab0",
		Faint:   "#647089",
		Accent:  "#6fa8dc",
		Success: "#7cc49a",
		Warning: "#e6b65c",
		Danger:  "#e06c75",
	},
}

func themeIndex(name string) int {
	for i, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return i
		}
	}
	return -1
}

// GetTheme returns the named theme, or the default for unknown names.
// Matching ignores case so hand-edited prefs still apply.
func GetTheme(name string) Theme {
	if i := themeIndex(name); i >= 0 {
		return themes[i]
	}
	return themes[0]
}

// NextTheme returns the theme after current in the cycle.
func NextTheme(current string) string {
	return themes[(themeIndex(current)+1)%len(themes)].Name
}

// ThemeNames returns the available theme names in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
