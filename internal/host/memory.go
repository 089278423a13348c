package host

import (
	"fmt"
	"io/fs"
	"sync"
)

// Memory is an in-memory Host. It is safe for concurrent use.
type Memory struct {
	View  string
	Width int

	mu     sync.Mutex
	files  map[string]string
	writes int
}

// NewMemory creates an in-memory host holding files.
func NewMemory(files map[string]string) *Memory {
	m := &Memory{files: make(map[string]string, len(files))}
	for k, v := range files {
		m.files[k] = v
	}
	return m
}

// Read returns the stored document.
func (m *Memory) Read(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	content, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("read document: %w", fs.ErrNotExist)
	}
	return content, nil
}

// Write stores the document.
func (m *Memory) Write(path, content string) error {
	if path == "" {
		return ErrEmptyPath
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = content
	m.writes++
	return nil
}

// ActiveViewName returns m.View.
func (m *Memory) ActiveViewName() string { return m.View }

// WindowWidth returns m.Width.
func (m *Memory) WindowWidth() int { return m.Width }

// File returns the stored document without going through Read.
func (m *Memory) File(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.files[path]
}

// Writes returns how many times Write was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
