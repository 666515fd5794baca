package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/lunaracodes/gagwatch/internal/prefs"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Classic", "Garden", "Midnight"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
	names[0] = "mutated"
	if ThemeNames()[0] != DefaultThemeName {
		t.Fatal("ThemeNames exposes internal order")
	}
}

func TestDefaultThemeMatchesPrefs(t *testing.T) {
	if DefaultThemeName != prefs.DefaultTheme || ThemeNames()[0] != DefaultThemeName {
		t.Fatalf("default theme %q is not first or differs from prefs %q", DefaultThemeName, prefs.DefaultTheme)
	}
}

func TestClassicUsesLightPalette(t *testing.T) {
	c := GetTheme("Classic")
	if c.Background != "#f5f5f5" || c.Text != "#333333" || c.Accent != "#2c5e8a" || c.FocusBg != "#ffffff" || c.Surface != "#e0e0e0" {
		t.Fatalf("Classic palette = %+v", c)
	}
}

func TestNextTheme(t *testing.T) {
	tests := map[string]string{
		"Classic":  "Garden",
		"Garden":   "Midnight",
		"Midnight": "Classic",
		"garden":   "Midnight",
		"Unknown":  "Classic",
	}
	for in, want := range tests {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("midnight").Name; got != "Midnight" {
		t.Fatalf("GetTheme(midnight).Name = %q", got)
	}
	if got := GetTheme("Sepia").Name; got != DefaultThemeName {
		t.Fatalf("GetTheme(Sepia).Name = %q, want fallback %q", got, DefaultThemeName)
	}
}

func TestWithBackgroundKeepsSelection(t *testing.T) {
	th := GetTheme("Classic")
	styles := th.Styles().WithBackground(th.FocusBg)
	if got := styles.Text.GetBackground(); got != lipgloss.Color(th.FocusBg) {
		t.Fatalf("Text background = %v, want %s", got, th.FocusBg)
	}
	if got := styles.Selected.GetBackground(); got != lipgloss.Color(th.SelectionBg) {
		t.Fatalf("Selected background = %v, want %s", got, th.SelectionBg)
	}
}

func TestCountdownText(t *testing.T) {
	if got := countdownText(90); got != "Next check in: 90s" {
		t.Fatalf("countdownText(90) = %q", got)
	}
}
