package draft

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/starford/cookbook/internal/apperr"
	"github.com/starford/cookbook/internal/storage"
)

const fileExt = ".yaml"

// FileStore persists drafts as YAML files in the drafts directory, one file
// per named draft.
type FileStore struct {
	dir storage.Provider
}

// NewFileStore creates a FileStore backed by the given directory.
func NewFileStore(dir storage.Provider) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the directory drafts are stored in.
func (s *FileStore) Dir() string {
	return s.dir.Root()
}

// Save writes the draft under the given name.
func (s *FileStore) Save(name string, d *Draft) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("draft: encode %s: %w", name, err)
	}
	return s.dir.Write(name+fileExt, data, 0o644)
}

// Load reads the named draft. A missing draft reports apperr.ErrNotFound.
func (s *FileStore) Load(name string) (*Draft, error) {
	data, err := s.dir.Read(name + fileExt)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("draft %q: %w", name, apperr.ErrNotFound)
		}
		return nil, err
	}
	return decode(name, data)
}

// Delete removes the named draft.
func (s *FileStore) Delete(name string) error {
	if err := s.dir.Delete(name + fileExt); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("draft %q: %w", name, apperr.ErrNotFound)
		}
		return err
	}
	return nil
}

// List returns the names of all stored drafts.
func (s *FileStore) List() ([]string, error) {
	files, err := s.dir.List(fileExt)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(f, fileExt))
	}
	return names, nil
}

func decode(name string, data []byte) (*Draft, error) {
	var d Draft
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("draft: parse %s: %w", name, err)
	}
	return &d, nil
}
