package knowledge

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"freezer-inventory/pkg/foodparser"
	"freezer-inventory/pkg/log"
)

// Store serves the current knowledge base. Snapshots are immutable; a reload
// swaps the pointer so in-flight parses keep the snapshot they started with.
type Store struct {
	l       log.Logger
	path    string
	current atomic.Pointer[foodparser.KnowledgeBase]
}

// NewStore loads the knowledge base at path. An empty path uses the
// compiled-in tables.
func NewStore(l log.Logger, path string) (*Store, error) {
	kb, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	s := &Store{l: l, path: path}
	s.current.Store(kb)
	return s, nil
}

// KnowledgeBase returns the current snapshot.
func (s *Store) KnowledgeBase() *foodparser.KnowledgeBase {
	return s.current.Load()
}

// Path is the backing file, or "" for the compiled-in tables.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the backing file. On error the previous snapshot stays.
func (s *Store) Reload(ctx context.Context) error {
	kb, err := LoadFile(s.path)
	if err != nil {
		return err
	}
	s.current.Store(kb)
	s.l.Infof(ctx, "knowledge base reloaded: path=%s shelf_life_entries=%d", s.path, len(kb.ShelfLife))
	return nil
}

// LoadFile decodes a YAML knowledge base file.
func LoadFile(path string) (*foodparser.KnowledgeBase, error) {
	if path == "" {
		return foodparser.DefaultKnowledgeBase(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open knowledge base: %w", err)
	}
	defer f.Close()

	kb, err := foodparser.LoadKnowledgeBase(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return kb, nil
}
