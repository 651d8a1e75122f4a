package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tasklist/internal/models"
	"tasklist/internal/store"
)

// ErrNotFound is returned when a referenced task id does not exist.
var ErrNotFound = errors.New("task not found")

// Repository exposes task-level CRUD semantics over a Store. It owns id
// assignment and merge policy. Every operation is a full
// load-mutate-save cycle guarded by a single mutex, so mutations never
// race each other and never observe a torn collection.
type Repository struct {
	store store.Store
	mu    sync.Mutex
	now   func() time.Time
}

// New creates a repository over the given store.
func New(s store.Store) *Repository {
	return &Repository{
		store: s,
		now:   time.Now,
	}
}

// List returns the full task collection as persisted.
func (r *Repository) List(ctx context.Context) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Load(ctx)
}

// Get returns the task with the given id, or ErrNotFound.
func (r *Repository) Get(ctx context.Context, id int64) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			task := tasks[i]
			return &task, nil
		}
	}

	return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// Create validates the draft, assigns the next id, and appends the task
// to the collection. Any caller-supplied id is ignored; ids are
// monotonic and never reused after deletion.
func (r *Repository) Create(ctx context.Context, draft models.Task) (*models.Task, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now()
	draft.ID = nextID(tasks)
	draft.CreatedAt = now
	draft.UpdatedAt = now

	tasks = append(tasks, draft)
	if err := r.store.Save(ctx, tasks); err != nil {
		return nil, err
	}

	return &draft, nil
}

// Update merges the set fields of the patch into the task with the
// given id and persists the result. Fields absent from the patch are
// left unchanged. On a miss nothing is persisted.
func (r *Repository) Update(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}

		merged := tasks[i]
		patch.Apply(&merged)
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		merged.UpdatedAt = r.now()

		tasks[i] = merged
		if err := r.store.Save(ctx, tasks); err != nil {
			return nil, err
		}

		return &merged, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// Toggle flips the completion flag of the task with the given id.
func (r *Repository) Toggle(ctx context.Context, id int64) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}

		tasks[i].Completed = !tasks[i].Completed
		tasks[i].UpdatedAt = r.now()

		if err := r.store.Save(ctx, tasks); err != nil {
			return nil, err
		}

		task := tasks[i]
		return &task, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// Delete removes the task with the given id and reports whether a task
// was actually removed. Remaining ids are not renumbered, so a deleted
// id is retired forever.
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.store.Load(ctx)
	if err != nil {
		return false, err
	}

	filtered := tasks[:0:0]
	for _, task := range tasks {
		if task.ID != id {
			filtered = append(filtered, task)
		}
	}

	if err := r.store.Save(ctx, filtered); err != nil {
		return false, err
	}

	return len(filtered) < len(tasks), nil
}

// nextID computes max existing id + 1, or 1 for an empty collection.
func nextID(tasks []models.Task) int64 {
	var max int64
	for _, task := range tasks {
		if task.ID > max {
			max = task.ID
		}
	}
	return max + 1
}
