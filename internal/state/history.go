package state

import (
	"fmt"
	"math"
	"time"
)

// NewItemText is shown for items with fewer than two recorded restocks.
const NewItemText = "New item!"

// FormatRestock renders a restock history (oldest first) relative to now.
// Minutes since the last restock are floored and never negative; the
// average gap is rounded half to even.
func FormatRestock(history []time.Time, now time.Time) string {
	if len(history) < 2 {
		return NewItemText
	}
	newest := history[len(history)-1]
	oldest := history[0]

	avg := newest.Sub(oldest).Minutes() / float64(len(history)-1)
	since := now.Sub(newest)
	if since < 0 {
		since = 0
	}
	return fmt.Sprintf("%dm ago (Avg: %dm)", int(since/time.Minute), int(math.RoundToEven(avg)))
}
