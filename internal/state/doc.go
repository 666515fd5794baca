// Package state provides the thread-safe store shared by the poller and the
// UI.
//
// # Overview
//
// The Store holds everything the background loops produce and the UI
// renders: the restock history per item, the notification log, the
// countdown to the next scheduled check, and the outcome of the last check.
//
//	Producers (goroutines):          Consumer (UI):
//	┌──────────────────────┐         ┌──────────────────┐
//	│ countdown loop       │         │                  │
//	│   SetCountdown()     │         │                  │
//	│ polling loop         │────────→│ store.Snapshot() │
//	│   RecordRestock()    │ (mutex) │       ↓          │
//	│   AppendLog()        │         │   render views   │
//	│   FinishCheck()      │         │                  │
//	└──────────────────────┘         └──────────────────┘
//
// # Concurrency Model
//
// A single sync.RWMutex guards all fields. Writers hold the lock only for
// the duration of a slice append or map update; Snapshot copies every
// slice and map it returns so the UI can keep it across renders without
// racing the poller.
//
// # Restock History
//
// History keeps at most MaxRestockHistory instants per item, oldest first.
// FormatRestock turns a history into the text shown next to each
// checklist item:
//
//	fewer than 2 restocks  →  "New item!"
//	otherwise              →  "<minutes since last>m ago (Avg: <mean gap>m)"
//
// The mean gap is (newest - oldest) / (count - 1), a plain moving-window
// average. Missed checks make it overstate the gap between restocks.
//
// # Notification Log
//
// The log grows without bound for the life of the process. Snapshot and
// RecentLog only ever expose the last LogDisplayLimit entries.
//
// The zero value of Store is ready to use.
package state
