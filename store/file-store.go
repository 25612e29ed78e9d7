package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileStore persists a single record of type T to one file.
type FileStore[T any] struct {
	path      string
	format    string
	Marshal   func(v any) ([]byte, error)
	Unmarshal func(data []byte, v any) error
}

func jsonMarshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// NewFileStore returns a store for path in the given format ("json" or "yaml").
func NewFileStore[T any](path, format string) (*FileStore[T], error) {
	fs := &FileStore[T]{path: path, format: format}
	switch format {
	case "json":
		fs.Marshal = jsonMarshalIndent
		fs.Unmarshal = json.Unmarshal
	case "yaml":
		fs.Marshal = yaml.Marshal
		fs.Unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("unsupported store format: %q", format)
	}
	return fs, nil
}

// Path returns the backing file path.
func (fs *FileStore[T]) Path() string {
	return fs.path
}

// Save serializes data and replaces the file contents. The record is written
// to a sibling temp file first and renamed over the target, so readers never
// observe a partial record.
func (fs *FileStore[T]) Save(data T) error {
	serialized, err := fs.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "serializing record")
	}
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating directory %s", dir)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(fs.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(serialized); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Wrapf(err, "writing %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.Wrapf(err, "closing %s", tmpName)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return errors.Wrapf(err, "chmod %s", tmpName)
	}
	if err := os.Rename(tmpName, fs.path); err != nil {
		cleanup()
		return errors.Wrapf(err, "replacing %s", fs.path)
	}
	return nil
}

// Load reads and deserializes the record. A missing file yields an error
// matching os.ErrNotExist.
func (fs *FileStore[T]) Load() (T, error) {
	var data T
	serialized, err := os.ReadFile(fs.path)
	if err != nil {
		return data, errors.Wrapf(err, "reading %s", fs.path)
	}
	if err := fs.Unmarshal(serialized, &data); err != nil {
		var zero T
		return zero, errors.Wrapf(err, "decoding %s", fs.path)
	}
	return data, nil
}
