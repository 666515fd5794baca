package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the window.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Minimize   key.Binding
	CheckNow   key.Binding

	// View switching
	ViewSeeds key.Binding
	ViewGear  key.Binding
	ViewLog   key.Binding

	// Checklist
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Toggle     key.Binding
	SelectAll  key.Binding
	SelectNone key.Binding

	// Log
	ToggleFollow key.Binding
	Top          key.Binding
	Bottom       key.Binding

	// Confirmation
	Yes key.Binding
	No  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next view"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous view"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Minimize to tray"),
		),
		CheckNow: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Check now"),
		),

		ViewSeeds: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Seeds"),
		),
		ViewGear: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Gear"),
		),
		ViewLog: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Notification log"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Previous column"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Next column"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "Toggle item"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Select all"),
		),
		SelectNone: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Select none"),
		),

		ToggleFollow: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Toggle follow mode"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		Yes: key.NewBinding(
			key.WithKeys("y", "Y", "ctrl+c"),
			key.WithHelp("y", "Quit"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "Stay"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ViewSeeds, k.ViewGear, k.ViewLog},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.SelectAll, k.SelectNone},
		{k.ToggleFollow, k.Top, k.Bottom},
		{k.CheckNow, k.Minimize, k.CycleTheme, k.Help, k.Quit},
	}
}
