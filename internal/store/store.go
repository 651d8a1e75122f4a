package store

import (
	"context"

	"tasklist/internal/models"
)

// Store defines the interface for data persistence operations.
// Load and Save move the entire collection; there is no indexed access.
type Store interface {
	// Load reads the full task collection. A missing backing file is not
	// an error and yields an empty collection.
	Load(ctx context.Context) ([]models.Task, error)

	// Save persists the full task collection, replacing whatever was
	// stored before. The write is atomic: a concurrent Load observes
	// either the old or the new collection, never a partial file.
	Save(ctx context.Context, tasks []models.Task) error
}
