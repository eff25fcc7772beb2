package model

import "fmt"

// Priority is the urgency level of a todo entry, held as its display
// label. The label is what gets persisted and filtered on.
type Priority string

const (
	PriorityOptional Priority = "Optional"
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCrucial  Priority = "Crucial"
)

// priorityByKey maps the short command-line keys to priorities.
var priorityByKey = map[string]Priority{
	"o": PriorityOptional,
	"l": PriorityLow,
	"m": PriorityMedium,
	"h": PriorityHigh,
	"c": PriorityCrucial,
}

// PriorityKeys returns the short keys in increasing urgency order, for
// help text and shell completion.
func PriorityKeys() []string {
	return []string{"o", "l", "m", "h", "c"}
}

// ParsePriorityKey maps a short key (o/l/m/h/c) to its Priority.
func ParsePriorityKey(key string) (Priority, error) {
	p, ok := priorityByKey[key]
	if !ok {
		return "", fmt.Errorf("invalid priority %q: must be one of o, l, m, h, c", key)
	}
	return p, nil
}

// Key returns the short key for a priority, or "" for labels outside
// the enumeration (possible for collections edited by hand).
func (p Priority) Key() string {
	for _, k := range PriorityKeys() {
		if priorityByKey[k] == p {
			return k
		}
	}
	return ""
}
