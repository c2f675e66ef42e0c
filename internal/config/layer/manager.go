package layer

import (
	"sort"
	"sync"

	"github.com/dshills/keychord/internal/config/loader"
)

// Manager holds at most one layer per source and provides merged access.
type Manager struct {
	mu     sync.RWMutex
	layers []*Layer // sorted by source, lowest precedence first
	merged map[string]any
	dirty  bool
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{dirty: true}
}

// Set adds l, replacing any layer from the same source.
func (m *Manager) Set(l *Layer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.layers {
		if existing.Source == l.Source {
			m.layers[i] = l
			m.dirty = true
			return
		}
	}
	m.layers = append(m.layers, l)
	sort.Slice(m.layers, func(i, j int) bool {
		return m.layers[i].Source < m.layers[j].Source
	})
	m.dirty = true
}

// Remove drops the layer for source. Returns true if one was present.
func (m *Manager) Remove(source Source) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, l := range m.layers {
		if l.Source == source {
			m.layers = append(m.layers[:i], m.layers[i+1:]...)
			m.dirty = true
			return true
		}
	}
	return false
}

// Layer returns the layer for source, or nil.
func (m *Manager) Layer(source Source) *Layer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, l := range m.layers {
		if l.Source == source {
			return l
		}
	}
	return nil
}

// Layers returns all layers, lowest precedence first.
func (m *Manager) Layers() []*Layer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Layer, len(m.layers))
	copy(out, m.layers)
	return out
}

// Merge combines all layers into a single configuration map.
// Results are cached until a layer is set or removed.
func (m *Manager) Merge() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dirty || m.merged == nil {
		result := make(map[string]any)
		for _, l := range m.layers {
			result = loader.DeepMerge(result, loader.Clone(l.Data))
		}
		m.merged = result
		m.dirty = false
	}
	return loader.Clone(m.merged)
}

// Get returns the effective value for a dotted path and the layer that
// provides it.
func (m *Manager) Get(path string) (any, *Layer, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.layers) - 1; i >= 0; i-- {
		l := m.layers[i]
		if val, ok := GetByPath(l.Data, path); ok {
			return val, l, true
		}
	}
	return nil, nil, false
}

// WhichLayer names the layer that provides path, or "" when unset.
func (m *Manager) WhichLayer(path string) string {
	_, l, found := m.Get(path)
	if !found {
		return ""
	}
	return l.Name()
}
