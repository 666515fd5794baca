// Package stock is the HTTP client for the seed and gear stock endpoints.
package stock

import (
	"fmt"
	"net/http"
)

// Entry is one item present in a stock response. The API sends more fields
// (quantities, images); only the name matters for matching.
type Entry struct {
	Name string `json:"name"`
}

// Names returns the entry names in response order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// StatusError reports a non-success HTTP status from the API.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}
