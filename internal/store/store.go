// Package store persists repository state between command invocations.
package store

import (
	"context"

	"codebird/pkg/models"
)

// FormatVersion identifies the on-disk layout. Bump on incompatible changes.
const FormatVersion = "1"

// Store loads and saves the complete repository state. Commands read the
// state once, mutate it in memory, and write it back before exiting.
type Store interface {
	Load(ctx context.Context) (*models.State, error)
	Save(ctx context.Context, state *models.State) error
	Close() error
}
