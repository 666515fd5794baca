// Package ui implements the gagwatch window with Bubble Tea.
//
// # Views
//
//   - Seeds and Gear: the watch list as a three-column checklist, each
//     item with its restock text once it has been seen in stock
//   - Log: the last 50 notification log lines, following new entries
//
// # Data Flow
//
// The window never receives pushes from the background loops. It pulls a
// state.Snapshot every second for the countdown and header, and re-reads
// the log every five seconds. The watch.Selection is read on every render
// and written only through Toggle and SetAll, so it stays the single source
// of truth for what the poller announces.
//
// # Lifetime
//
// One tea.Program is one window session. The session ends with an Outcome:
// OutcomeMinimize when the user sends the window to the tray, OutcomeQuit
// after a confirmed quit or a QuitMsg sent by the caller. Showing the
// window again means running a new program with the same Options.
package ui
