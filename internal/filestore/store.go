// Package filestore persists whole JSON documents as files under a data directory.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"heroes-service/internal/metrics"
)

// Store reads and writes named JSON documents below basePath.
// It does no locking; callers that read-modify-write must serialize themselves.
type Store struct {
	basePath string
	recorder *metrics.Recorder
}

// New constructs a Store rooted at basePath. recorder may be nil.
func New(basePath string, recorder *metrics.Recorder) *Store {
	if basePath == "" {
		basePath = "."
	}
	return &Store{basePath: basePath, recorder: recorder}
}

// BasePath exposes the root directory.
func (s *Store) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Path returns the file backing the named document.
func (s *Store) Path(name string) string {
	return filepath.Join(s.basePath, name)
}

// Load decodes the named document, returning def when the file does not exist.
func Load[T any](s *Store, name string, def T) (T, error) {
	if s == nil {
		return def, errors.New("file store not configured")
	}
	if err := validateName(name); err != nil {
		return def, err
	}

	start := time.Now()
	doc, err := decode[T](s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		s.recorder.RecordStoreOperation(metrics.OpLoad, name, time.Since(start), nil)
		return def, nil
	}
	s.recorder.RecordStoreOperation(metrics.OpLoad, name, time.Since(start), err)
	if err != nil {
		return def, fmt.Errorf("load %s: %w", name, err)
	}
	return doc, nil
}

// Save replaces the named document with doc, indented for humans.
func (s *Store) Save(name string, doc any) error {
	if s == nil {
		return errors.New("file store not configured")
	}
	if err := validateName(name); err != nil {
		return err
	}

	start := time.Now()
	err := s.write(s.Path(name), doc)
	s.recorder.RecordStoreOperation(metrics.OpSave, name, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// Check reports whether the named document is absent or decodes as JSON.
func (s *Store) Check(name string) error {
	_, err := Load[json.RawMessage](s, name, nil)
	return err
}

func (s *Store) write(target string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func decode[T any](path string) (T, error) {
	var doc T
	f, err := os.Open(path)
	if err != nil {
		return doc, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return doc, err
	}
	return doc, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("document name required")
	}
	if name != filepath.Base(name) {
		return fmt.Errorf("document name %q must not contain a path", name)
	}
	return nil
}
