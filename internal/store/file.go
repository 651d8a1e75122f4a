package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tasklist/internal/models"
)

// FileStore implements the Store interface on top of a single JSON file.
// It performs no locking; callers serialize access.
type FileStore struct {
	path string
}

// NewFileStore creates a file store backed by the given path. The file
// and its directory need not exist yet; Save creates both.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the full task collection. A missing file means
// no tasks yet; an unreadable or unparseable file is a CorruptError.
func (s *FileStore) Load(ctx context.Context) ([]models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("failed to read store file %s: %w", s.path, err)
	}

	// A successful Save always writes a JSON array, so an empty file
	// means a writer died mid-stream rather than "no tasks".
	if len(data) == 0 {
		return nil, &CorruptError{Path: s.path, Err: errors.New("file is empty")}
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}

	return tasks, nil
}

// Save encodes the full task collection and atomically replaces the
// backing file: the data is written to a temp file in the same
// directory, synced, then renamed over the target. If anything fails
// before the rename, the previous file is untouched.
func (s *FileStore) Save(ctx context.Context, tasks []models.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: s.path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: s.path, Err: err}
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: s.path, Err: err}
	}

	return nil
}
