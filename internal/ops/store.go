package ops

import "github.com/jacksmith/todo/internal/model"

// Store defines the persistence interface required by todo operations.
// The concrete implementation is store.Store, but this interface allows
// alternative backends (in-memory, etc.) for testing.
type Store interface {
	Load() (model.Collection, error)
	Save(c model.Collection) error
}
