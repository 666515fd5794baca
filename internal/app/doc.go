// Package app wires configuration, the stock client, the watch list, the
// notifier, the scheduler, the tray and the window into the running
// gagwatch process.
//
// # Overview
//
// Run is the composition root. It loads config, builds the logger, loads
// the watch list and then either performs one check (--check) or starts the
// interactive session:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        TOML config, defaults when missing
//	       ├─────> logging.New()        zerolog + lumberjack
//	       ├─────> stock.NewClient()    seeds/gear HTTP client
//	       ├─────> watch.Load()         saved selection, defaults on error
//	       ├─────> NewChecker()         fetch + match + notify
//	       ├─────> Scheduler.Start()    countdown and boundary loops
//	       ├─────> tray.Start()         optional tray icon
//	       └─────> windowHost.loop()    one tea.Program per window session
//
// # Checks
//
// Checker.CheckAll fetches seeds then gear. For each category it announces
// every selected item present in the response, in response order, records
// the restock in the state.Store and appends a log line. When nothing
// selected is in stock it sends a single informational notification. Fetch
// errors are logged, reported once as an error notification and shown in
// the window header; the other category is still checked. Passes are
// serialized, so a tray "Check now" during a scheduled check waits for it.
//
// # Scheduling
//
// The poll loop sleeps until the next multiple of the granularity past the
// hour (every 5 minutes by default) and then runs a check. A separate loop
// publishes the seconds left to the store once per second for the header.
// Both loops end when the context is cancelled.
//
// # Window Lifetime
//
// Minimizing ends the current tea.Program while the loops and the tray keep
// running. Tray "Show" starts a fresh program over the same store and
// selection. Tray "Quit" closes the open window, or cancels the context
// when minimized. On the way out the selection is saved, the loops are
// joined and the tray is removed.
//
// When no tray can be started the window cannot be minimized and the
// session ends with the window.
package app
