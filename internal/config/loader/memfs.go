package loader

import (
	"io/fs"
	"path"
	"sync"
	"testing/fstest"
	"time"
)

// MemFS is an in-memory FileSystem for tests and embedded defaults.
type MemFS struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemFS creates an empty in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

// AddFile creates or replaces a file.
func (m *MemFS) AddFile(name, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path.Clean(name)] = []byte(content)
}

// Remove deletes a file.
func (m *MemFS) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path.Clean(name))
}

func (m *MemFS) snapshot() fstest.MapFS {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(fstest.MapFS, len(m.files))
	for name, data := range m.files {
		out[trimRoot(name)] = &fstest.MapFile{Data: data, Mode: 0o644, ModTime: time.Time{}}
	}
	return out
}

// Open implements fs.FS.
func (m *MemFS) Open(name string) (fs.File, error) {
	return m.snapshot().Open(trimRoot(path.Clean(name)))
}

// ReadFile reads the entire file at name.
func (m *MemFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// Stat returns file info for name.
func (m *MemFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(m.snapshot(), trimRoot(path.Clean(name)))
}

// trimRoot turns an absolute slash path into an fs.FS name.
func trimRoot(name string) string {
	for len(name) > 0 && name[0] == '/' {
		name = name[1:]
	}
	if name == "" {
		return "."
	}
	return name
}
