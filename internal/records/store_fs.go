package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"resume-builder/internal/telemetry"
)

// FSStore implements Store on the local filesystem. Each record lives at
// <dir>/<key>_resume.json as a 4-space-indented JSON object. There is no
// locking: concurrent saves to the same key race and the last writer wins.
type FSStore struct {
	dir string
}

// NewFSStore creates the store directory if absent and returns a store
// rooted there.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir %s: %w", dir, err)
	}
	return &FSStore{dir: dir}, nil
}

// Dir returns the store directory.
func (s *FSStore) Dir() string {
	return s.dir
}

// Save writes the record to <dir>/<key>_resume.json.
func (s *FSStore) Save(ctx context.Context, name Name, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return fmt.Errorf("encode record %q: %w", name, err)
	}

	path := filepath.Join(s.dir, name.FileName())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write record %q: %w", name, err)
	}
	return nil
}

// Load reads the record saved under the name's key. Missing and corrupt
// files both come back as ErrNotFound; corrupt files are logged.
func (s *FSStore) Load(ctx context.Context, name Name) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	path := filepath.Join(s.dir, name.FileName())
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("read record %q: %w", name, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		telemetry.Error("records.load.corrupt", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// List enumerates the store directory for record files and recovers the
// display names. Directory enumeration order is passed through as-is.
func (s *FSStore) List(ctx context.Context) ([]Name, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read store dir: %w", err)
	}

	var names []Name
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := NameFromFileName(entry.Name()); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

var _ Store = (*FSStore)(nil)
