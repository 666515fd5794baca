package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lunaracodes/gagwatch/internal/catalog"
	"github.com/lunaracodes/gagwatch/internal/clock"
	"github.com/lunaracodes/gagwatch/internal/notify"
	"github.com/lunaracodes/gagwatch/internal/state"
	"github.com/lunaracodes/gagwatch/internal/stock"
	"github.com/lunaracodes/gagwatch/internal/watch"
)

// CategoryResult is the outcome of one category within a check.
type CategoryResult struct {
	Category catalog.Category
	InStock  []string // every name in the response
	Matched  []string // selected names that were announced
	Err      error
	Skipped  bool // fetch succeeded with an empty list
}

// Result is the outcome of a full check, seeds first.
type Result []CategoryResult

// Matched returns every announced item across categories.
func (r Result) Matched() []string {
	var out []string
	for _, c := range r {
		out = append(out, c.Matched...)
	}
	return out
}

// Err returns the first fetch error, if any.
func (r Result) Err() error {
	for _, c := range r {
		if c.Err != nil {
			return c.Err
		}
	}
	return nil
}

// Checker runs fetch+notify passes.
type Checker struct {
	fetcher   stock.Fetcher
	selection *watch.Selection
	store     *state.Store
	notifier  notify.Notifier
	clock     clock.Clock
	log       zerolog.Logger

	mu sync.Mutex
}

// NewChecker wires a Checker. A nil clock uses the wall clock.
func NewChecker(f stock.Fetcher, sel *watch.Selection, store *state.Store, n notify.Notifier, clk clock.Clock, log zerolog.Logger) *Checker {
	if clk == nil {
		clk = clock.Real()
	}
	return &Checker{
		fetcher:   f,
		selection: sel,
		store:     store,
		notifier:  n,
		clock:     clk,
		log:       log.With().Str("component", "checker").Logger(),
	}
}

// CheckAll fetches every category in order and announces watched items.
// Concurrent calls run one after another.
func (c *Checker) CheckAll(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.BeginCheck()
	result := make(Result, 0, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		if ctx.Err() != nil {
			break
		}
		result = append(result, c.check(ctx, cat))
	}
	c.store.FinishCheck(c.clock.Now())
	return result
}

func (c *Checker) check(ctx context.Context, cat catalog.Category) CategoryResult {
	res := CategoryResult{Category: cat}

	entries, err := c.fetcher.Fetch(ctx, cat)
	if err != nil {
		res.Err = fmt.Errorf("fetch %s: %w", cat, err)
		c.store.SetFetchError(cat, res.Err)
		if ctx.Err() != nil {
			// Shutting down; not worth a popup.
			return res
		}
		c.log.Warn().Err(err).Str("category", cat.String()).Msg("stock fetch failed")
		c.send(notify.Notification{Kind: notify.KindError, Title: notify.ErrorTitle, Message: err.Error()})
		return res
	}
	c.store.SetFetchError(cat, nil)

	res.InStock = stock.Names(entries)
	if len(entries) == 0 {
		res.Skipped = true
		c.log.Debug().Str("category", cat.String()).Msg("empty stock response")
		return res
	}
	res.Matched = c.announce(cat, entries)
	return res
}

// announce notifies for each selected entry in response order, or once
// when none is selected.
func (c *Checker) announce(cat catalog.Category, entries []stock.Entry) []string {
	var matched []string
	for _, e := range entries {
		if !cat.Contains(e.Name) {
			c.log.Debug().Str("category", cat.String()).Str("item", e.Name).Msg("item not in catalog")
			continue
		}
		if !c.selection.Selected(cat, e.Name) {
			continue
		}
		matched = append(matched, e.Name)

		now := c.clock.Now()
		c.send(notify.Notification{
			Kind:    notify.KindRestock,
			Title:   cat.Title() + " Stock Update",
			Message: e.Name + " is in stock!",
		})
		c.store.RecordRestock(e.Name, now)
		c.store.AppendLog(state.LogEntry{
			At:       now,
			Category: cat,
			Item:     e.Name,
			Text:     e.Name + " restocked!",
		})
		c.log.Info().Str("category", cat.String()).Str("item", e.Name).Msg("watched item in stock")
	}

	if len(matched) == 0 {
		c.send(notify.Notification{
			Kind:    notify.KindNoMatch,
			Title:   notify.AppTitle,
			Message: fmt.Sprintf("No selected %s items found in stock", cat),
		})
	}
	return matched
}

func (c *Checker) send(n notify.Notification) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.Notify(n); err != nil {
		c.log.Debug().Err(err).Str("kind", n.Kind.String()).Msg("notify failed")
	}
}
