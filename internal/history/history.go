// Package history keeps the short, persisted list of recent search queries.
package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ryan-rushton/omni/internal/kvstore"
)

const (
	// Capacity is the maximum number of remembered queries.
	Capacity = 5
	// Key is the store key holding the JSON array of queries.
	Key = "recent_searches"
)

// Recent is the most-recent-first list of committed search queries. It is
// not safe for concurrent use; one owner reads and writes it.
type Recent struct {
	store   kvstore.Store
	logger  *slog.Logger
	entries []string
}

// Open loads the list from store. Missing or unreadable data yields an empty
// list; it is never an error.
func Open(store kvstore.Store, logger *slog.Logger) *Recent {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Recent{store: store, logger: logger}

	raw, ok, err := store.Get(Key)
	switch {
	case err != nil:
		logger.Warn("reading recent searches", "error", err)
		return r
	case !ok:
		return r
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Warn("discarding malformed recent searches", "error", err)
		return r
	}
	// Re-recording oldest first normalizes duplicates and length.
	for _, q := range slices.Backward(stored) {
		r.push(q)
	}
	return r
}

// List returns the queries, most recent first.
func (r *Recent) List() []string {
	return slices.Clone(r.entries)
}

// Record moves query to the front and persists the list. The in-memory list
// changes even when the write fails. Empty queries are ignored.
func (r *Recent) Record(query string) error {
	if query == "" {
		return nil
	}
	r.push(query)
	return r.save()
}

// Clear forgets every query.
func (r *Recent) Clear() error {
	r.entries = nil
	return r.save()
}

func (r *Recent) push(query string) {
	if query == "" {
		return
	}
	next := make([]string, 0, Capacity)
	next = append(next, query)
	for _, e := range r.entries {
		if e != query && len(next) < Capacity {
			next = append(next, e)
		}
	}
	r.entries = next
}

func (r *Recent) save() error {
	entries := r.entries
	if entries == nil {
		entries = []string{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding recent searches: %w", err)
	}
	if err := r.store.Set(Key, string(data)); err != nil {
		return fmt.Errorf("saving recent searches: %w", err)
	}
	return nil
}
