// Package store persists the entire application state as a single JSON
// document on disk. A missing file is seeded with the default document; a
// file that exists but cannot be parsed is reported as ErrCorrupt and never
// silently replaced.
//
// All mutations go through Update, which serializes read-modify-write
// cycles behind a single-writer lock so concurrent requests cannot lose
// each other's changes.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

var (
	// ErrCorrupt marks a data file that exists but does not parse.
	ErrCorrupt = errors.New("data file is corrupt")
	// ErrTimeout marks a store operation that could not finish in time.
	ErrTimeout = errors.New("store unavailable")
)

type Store struct {
	path    string
	timeout time.Duration
	lock    chan struct{} // capacity 1; held for the whole read-modify-write cycle
}

func New(path string, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Store{
		path:    path,
		timeout: timeout,
		lock:    make(chan struct{}, 1),
	}
}

// Load returns the persisted document, seeding and persisting the default
// document if no data file exists yet.
func (s *Store) Load(ctx context.Context) (*Document, error) {
	var doc *Document
	err := s.serialized(ctx, func() error {
		var err error
		doc, err = s.load()
		return err
	})
	return doc, err
}

// Save rewrites the whole document. Errors propagate; callers must not
// assume success.
func (s *Store) Save(ctx context.Context, doc *Document) error {
	return s.serialized(ctx, func() error {
		return s.save(doc)
	})
}

// View runs fn against a freshly loaded document without persisting
// anything. fn must not retain the document past the call.
func (s *Store) View(ctx context.Context, fn func(*Document) error) error {
	return s.serialized(ctx, func() error {
		doc, err := s.load()
		if err != nil {
			return err
		}
		return fn(doc)
	})
}

// Update runs one serialized read-modify-write cycle: load, apply fn, and
// persist the result. If fn returns an error nothing is written.
func (s *Store) Update(ctx context.Context, fn func(*Document) error) (*Document, error) {
	var doc *Document
	err := s.serialized(ctx, func() error {
		var err error
		doc, err = s.load()
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return err
		}
		return s.save(doc)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// serialized acquires the single-writer lock and runs fn, bounding both the
// wait and the I/O by the store timeout. The lock is only released once fn
// has actually finished, even if the caller has already timed out.
func (s *Store) serialized(ctx context.Context, fn func() error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	select {
	case s.lock <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("waiting for store lock: %w", ErrTimeout)
	}

	done := make(chan error, 1)
	go func() {
		defer func() { <-s.lock }()
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("store operation: %w", ErrTimeout)
	}
}

func (s *Store) load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := DefaultDocument()
		if err := s.save(doc); err != nil {
			return nil, fmt.Errorf("seeding data file: %w", err)
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	doc.normalize()
	return doc, nil
}

// save writes atomically: serialize to a temp file in the same directory,
// then rename over the previous content.
func (s *Store) save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".quizzy-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing data file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing data file: %w", err)
	}
	return nil
}
