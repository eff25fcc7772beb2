// Package model defines the core data structures for the todo CLI.
package model

import "fmt"

// Entry represents a single todo item.
//
// Collections loaded from line-text storage carry opaque entries: the
// structured fields are empty and Text holds the raw line. Name,
// description, and priority cannot be recovered from an opaque entry.
type Entry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`

	// Text is the raw line for entries loaded in line-text mode.
	Text string `json:"-"`

	// opaque marks line-text entries explicitly. A blank line is a
	// valid opaque entry, so Text alone cannot carry the distinction.
	opaque bool
}

// OpaqueEntry returns an entry holding only the raw line form, as
// loaded from line-text storage.
func OpaqueEntry(line string) Entry {
	return Entry{Text: line, opaque: true}
}

// Opaque reports whether the entry is an unstructured line-text entry.
func (e Entry) Opaque() bool {
	return e.opaque
}

// Display returns the one-line rendering of the entry. Structured
// entries render as "name: description [Priority: label]"; opaque
// entries render as their raw line.
func (e Entry) Display() string {
	if e.Opaque() {
		return e.Text
	}
	return fmt.Sprintf("%s: %s [Priority: %s]", e.Name, e.Description, e.Priority)
}

// Collection is the ordered set of entries for the active todo file.
// Order is insertion order; an entry's only identity is its position.
type Collection []Entry
