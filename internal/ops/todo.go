// Package ops implements the todo operations as independent
// load-mutate-save units over a Store.
package ops

import (
	"errors"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/store"
)

// loadLenient loads the collection, degrading an undecodable file to an
// empty collection. The corruption is already reported to the log sink
// by the store; mutations intentionally proceed so a damaged file can
// be overwritten with good data. The degraded result lets callers warn
// the user instead of hiding the loss.
func loadLenient(s Store) (model.Collection, bool, error) {
	c, err := s.Load()
	if err != nil {
		var pe *store.ParseError
		if errors.As(err, &pe) {
			return model.Collection{}, true, nil
		}
		return nil, false, err
	}
	return c, false, nil
}

// Add appends an entry to the collection and persists it.
func Add(s Store, e model.Entry) (degraded bool, err error) {
	c, degraded, err := loadLenient(s)
	if err != nil {
		return false, err
	}
	c = append(c, e)
	if err := s.Save(c); err != nil {
		return degraded, err
	}
	return degraded, nil
}

// Delete removes the entry at idx and persists the collection. An index
// outside [0, len) returns *cli.InvalidIndexError and leaves the file
// untouched. Indices are positions at load time and shift after any
// deletion.
func Delete(s Store, idx int) (removed model.Entry, degraded bool, err error) {
	c, degraded, err := loadLenient(s)
	if err != nil {
		return model.Entry{}, false, err
	}

	if idx < 0 || idx >= len(c) {
		return model.Entry{}, degraded, &cli.InvalidIndexError{Index: idx, Length: len(c)}
	}

	removed = c[idx]
	c = append(c[:idx], c[idx+1:]...)
	if err := s.Save(c); err != nil {
		return model.Entry{}, degraded, err
	}
	return removed, degraded, nil
}

// List returns the entries, optionally keeping only those whose
// priority label equals priority. Filtering a collection of opaque
// entries (line-text storage) returns *cli.UnsupportedFilterError.
// The result is re-indexed from 0 in filtered order.
func List(s Store, priority model.Priority) (entries []model.Entry, degraded bool, err error) {
	c, degraded, err := loadLenient(s)
	if err != nil {
		return nil, false, err
	}

	if priority == "" {
		return c, degraded, nil
	}

	filtered := make([]model.Entry, 0, len(c))
	for _, e := range c {
		if e.Opaque() {
			return nil, degraded, &cli.UnsupportedFilterError{Field: "priority"}
		}
		if e.Priority == priority {
			filtered = append(filtered, e)
		}
	}
	return filtered, degraded, nil
}
