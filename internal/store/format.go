package store

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jacksmith/todo/internal/model"
)

// Format identifies one of the three on-disk encodings.
type Format string

const (
	// FormatJSON stores the collection as one indented JSON array.
	FormatJSON Format = "json"
	// FormatCSV stores the collection as a header row plus one row per
	// entry with columns name, description, priority.
	FormatCSV Format = "csv"
	// FormatText stores one opaque line per entry. Structured fields
	// are not recoverable from this encoding.
	FormatText Format = "txt"
)

// ParseFormat maps a storage_type config value to a Format.
// Unrecognized values fall back to line-text.
func ParseFormat(s string) Format {
	switch s {
	case string(FormatJSON):
		return FormatJSON
	case string(FormatCSV):
		return FormatCSV
	default:
		return FormatText
	}
}

// codec is the load/save strategy for a single encoding. One codec is
// selected when the store is opened and used for the whole session.
type codec interface {
	load(r io.Reader) (model.Collection, error)
	save(w io.Writer, c model.Collection) error
}

// codec returns the strategy for the format.
func (f Format) codec() codec {
	switch f {
	case FormatJSON:
		return jsonCodec{}
	case FormatCSV:
		return csvCodec{}
	default:
		return textCodec{}
	}
}

// jsonCodec reads and writes the whole collection as one JSON array.
type jsonCodec struct{}

func (jsonCodec) load(r io.Reader) (model.Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var c model.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func (jsonCodec) save(w io.Writer, c model.Collection) error {
	if c == nil {
		c = model.Collection{}
	}
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// csvHeader is the fixed three-column schema for tabular storage.
var csvHeader = []string{"name", "description", "priority"}

// csvCodec reads and writes a header row plus one row per entry.
type csvCodec struct{}

func (csvCodec) load(r io.Reader) (model.Collection, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return model.Collection{}, nil
	}

	// Map columns by header name so column order is not significant.
	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}
	for _, name := range csvHeader {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	c := make(model.Collection, 0, len(records)-1)
	for _, row := range records[1:] {
		// Priority is kept as its stored label, not re-validated
		// against the enumeration.
		c = append(c, model.Entry{
			Name:        row[cols["name"]],
			Description: row[cols["description"]],
			Priority:    model.Priority(row[cols["priority"]]),
		})
	}
	return c, nil
}

func (csvCodec) save(w io.Writer, c model.Collection) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, e := range c {
		if e.Opaque() {
			return fmt.Errorf("entry %d has no structured fields and cannot be written as csv", i)
		}
		if err := cw.Write([]string{e.Name, e.Description, string(e.Priority)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// textCodec reads raw lines and writes one display line per entry.
type textCodec struct{}

func (textCodec) load(r io.Reader) (model.Collection, error) {
	var c model.Collection
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		c = append(c, model.OpaqueEntry(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if c == nil {
		c = model.Collection{}
	}
	return c, nil
}

func (textCodec) save(w io.Writer, c model.Collection) error {
	for _, e := range c {
		if _, err := fmt.Fprintln(w, e.Display()); err != nil {
			return err
		}
	}
	return nil
}
