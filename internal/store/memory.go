package store

import (
	"context"

	"codebird/pkg/models"
)

// MemoryStore keeps state in process memory. It backs tests and has no
// durability guarantees.
type MemoryStore struct {
	state *models.State
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: models.NewState()}
}

// Load returns a deep copy so callers cannot mutate stored state in place.
func (m *MemoryStore) Load(ctx context.Context) (*models.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.state.Clone(), nil
}

// Save replaces the stored state with a deep copy of the given one.
func (m *MemoryStore) Save(ctx context.Context, state *models.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.state = state.Clone()
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
