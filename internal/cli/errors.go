package cli

import "fmt"

// InvalidIndexError indicates a delete index outside the collection
// bounds (negative or past the end).
type InvalidIndexError struct {
	Index  int // the rejected index
	Length int // the collection length at load time
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid todo index %d (collection has %d entries)", e.Index, e.Length)
}

// UnsupportedFilterError indicates a structured filter was applied to a
// collection whose entries have no structured fields (line-text mode).
type UnsupportedFilterError struct {
	Field string // the field that was filtered on
}

func (e *UnsupportedFilterError) Error() string {
	return fmt.Sprintf("cannot filter by %s: entries stored as plain text have no structured fields", e.Field)
}
