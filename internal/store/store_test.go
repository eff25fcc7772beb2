package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jacksmith/todo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore returns a store on a fresh temp file in the given format.
func newTestStore(t *testing.T, storageType string) *Store {
	t.Helper()
	cfg := &Config{
		FileName:    filepath.Join(t.TempDir(), "todos."+storageType),
		StorageType: storageType,
		LogFile:     "todo.log",
	}
	return Open(cfg, nil)
}

func TestLoadMissingFileIsEmptyCollection(t *testing.T) {
	for _, format := range []string{"json", "csv", "txt"} {
		t.Run(format, func(t *testing.T) {
			s := newTestStore(t, format)
			c, err := s.Load()
			require.NoError(t, err)
			assert.Empty(t, c)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	want := model.Collection{
		{Name: "Groceries", Description: "Milk and eggs", Priority: model.PriorityHigh},
		{Name: "Taxes", Description: "File before the deadline", Priority: model.PriorityCrucial},
	}

	for _, format := range []string{"json", "csv"} {
		t.Run(format, func(t *testing.T) {
			s := newTestStore(t, format)
			require.NoError(t, s.Save(want))

			got, err := s.Load()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("txt is lossy but string-stable", func(t *testing.T) {
		s := newTestStore(t, "txt")
		require.NoError(t, s.Save(want))

		got, err := s.Load()
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for i := range got {
			assert.True(t, got[i].Opaque())
			assert.Equal(t, want[i].Display(), got[i].Display())
		}
	})
}

func TestLoadCorruptFileReturnsParseError(t *testing.T) {
	tests := []struct {
		format  string
		content string
	}{
		{"json", "this is not json"},
		{"csv", "name,description\nonly,two,columns,here,\"unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			s := newTestStore(t, tt.format)
			require.NoError(t, os.WriteFile(s.Path(), []byte(tt.content), 0644))

			c, err := s.Load()
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, s.Path(), pe.Path)
			assert.Equal(t, ParseFormat(tt.format), pe.Format)

			// Callers that choose to degrade get an empty collection.
			assert.Empty(t, c)
		})
	}
}

func TestTextLoadNeverParseErrors(t *testing.T) {
	s := newTestStore(t, "txt")
	require.NoError(t, os.WriteFile(s.Path(), []byte("{\"any\": \"bytes\"}\nare fine\n"), 0644))

	c, err := s.Load()
	require.NoError(t, err)
	require.Len(t, c, 2)
	assert.Equal(t, "{\"any\": \"bytes\"}", c[0].Display())
}

func TestSaveOverwritesWholesale(t *testing.T) {
	s := newTestStore(t, "json")
	require.NoError(t, s.Save(model.Collection{
		{Name: "One", Description: "first", Priority: model.PriorityLow},
		{Name: "Two", Description: "second", Priority: model.PriorityLow},
	}))
	require.NoError(t, s.Save(model.Collection{
		{Name: "Only", Description: "survivor", Priority: model.PriorityMedium},
	}))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Only", got[0].Name)
}

func TestSetPathOverridesForSession(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		FileName:    filepath.Join(dir, "default.json"),
		StorageType: "json",
		LogFile:     "todo.log",
	}
	s := Open(cfg, nil)

	override := filepath.Join(dir, "override.json")
	s.SetPath(override)
	assert.Equal(t, override, s.Path())

	require.NoError(t, s.Save(model.Collection{
		{Name: "Here", Description: "not there", Priority: model.PriorityMedium},
	}))

	_, err := os.Stat(override)
	assert.NoError(t, err)
	_, err = os.Stat(cfg.FileName)
	assert.True(t, os.IsNotExist(err), "default path must stay untouched")

	// The config itself is not mutated by the override.
	assert.Equal(t, filepath.Join(dir, "default.json"), cfg.FileName)
}

func TestSaveCSVWithOpaqueEntriesFails(t *testing.T) {
	s := newTestStore(t, "csv")
	err := s.Save(model.Collection{model.OpaqueEntry("free-form line")})
	require.Error(t, err)

	// A codec-level failure must not touch the file.
	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestStoreFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, newTestStore(t, "json").Format())
	assert.Equal(t, FormatText, newTestStore(t, "ini").Format())
}
