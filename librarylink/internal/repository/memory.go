package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/Astemirdum/library-link/librarylink/internal/model"
)

type memory struct {
	mu    sync.RWMutex
	items model.Items
}

// NewMemory keeps the state in process memory. Nothing survives a restart.
func NewMemory() *memory {
	return &memory{items: make(model.Items)}
}

func (m *memory) Get(_ context.Context, keys ...model.StateKey) (model.Items, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make(model.Items, len(keys))
	for _, k := range keys {
		if v, ok := m.items[k]; ok {
			items[k] = slices.Clone(v)
		}
	}
	return items, nil
}

func (m *memory) Set(_ context.Context, items model.Items) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range items {
		m.items[k] = slices.Clone(v)
	}
	return nil
}
