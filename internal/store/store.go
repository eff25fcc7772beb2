// Package store persists the todo collection to a single local file in
// one of three interchangeable encodings: structured-record (json),
// tabular (csv), or line-text (txt).
//
// A Store is a per-invocation session object: it carries the active
// file path, the codec selected from configuration, and the log sink.
// Every save overwrites the file wholesale. There is no locking and no
// atomic rename; concurrent invocations race and the last writer wins.
package store

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jacksmith/todo/internal/logging"
	"github.com/jacksmith/todo/internal/model"
)

// ParseError indicates the todo file exists but could not be decoded in
// the configured format. Load returns it alongside an empty collection
// so callers can choose between degrading and surfacing the failure.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("todo file %s is not valid %s: %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Store provides access to the todo file for one session.
type Store struct {
	path   string
	format Format
	codec  codec
	log    *logging.Logger
}

// Open returns a Store for the configured file path and storage type.
// Load and save failures are reported to log in addition to being
// returned.
func Open(cfg *Config, log *logging.Logger) *Store {
	format := ParseFormat(cfg.StorageType)
	return &Store{
		path:   cfg.FileName,
		format: format,
		codec:  format.codec(),
		log:    log,
	}
}

// Path returns the active todo file path.
func (s *Store) Path() string {
	return s.path
}

// Format returns the encoding selected at open time.
func (s *Store) Format() Format {
	return s.format
}

// SetPath overrides the todo file path for the rest of the session.
// The override is not persisted.
func (s *Store) SetPath(path string) {
	s.path = path
}

// Load reads the collection from the active file.
//
// A missing file yields an empty collection and no error. A file that
// cannot be decoded in the configured format yields an empty collection
// and a *ParseError, so the caller can still operate while knowing the
// stored data was unreadable.
func (s *Store) Load() (model.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Infof("No todo file found, starting a new one.")
			return model.Collection{}, nil
		}
		s.log.Errorf("Failed to load todos: %v", err)
		return nil, fmt.Errorf("failed to read todo file %s: %w", s.path, err)
	}

	c, err := s.codec.load(bytes.NewReader(data))
	if err != nil {
		s.log.Errorf("Failed to load todos: %v", err)
		return model.Collection{}, &ParseError{Path: s.path, Format: s.format, Err: err}
	}
	return c, nil
}

// Save overwrites the active file with the collection in the configured
// encoding. A failed save can leave a truncated file behind; there is
// no backup of the previous contents.
func (s *Store) Save(c model.Collection) error {
	var buf bytes.Buffer
	if err := s.codec.save(&buf, c); err != nil {
		s.log.Errorf("Failed to save todos: %v", err)
		return fmt.Errorf("failed to encode todos as %s: %w", s.format, err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		s.log.Errorf("Failed to save todos: %v", err)
		return fmt.Errorf("failed to write todo file %s: %w", s.path, err)
	}
	return nil
}
