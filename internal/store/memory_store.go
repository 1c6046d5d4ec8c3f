package store

import (
	"fmt"
	"sort"
	"sync"
)

// MemoryStore хранит артефакты в памяти. Используется в тестах и для dry-run.
type MemoryStore struct {
	mu    sync.RWMutex
	files map[string]string
	dirs  map[string]struct{}
}

// NewMemoryStore создаёт пустое хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		files: make(map[string]string),
		dirs:  make(map[string]struct{}),
	}
}

func (m *MemoryStore) Ensure(p string, isDir bool) error {
	p = Clean(p)
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[p]; ok {
		if isDir {
			return fmt.Errorf("%s уже существует как файл", p)
		}
		return nil
	}
	if _, ok := m.dirs[p]; ok {
		if !isDir {
			return fmt.Errorf("%s уже существует как каталог", p)
		}
		return nil
	}

	for _, dir := range parents(p) {
		m.dirs[dir] = struct{}{}
	}
	if isDir {
		m.dirs[p] = struct{}{}
	} else {
		m.files[p] = ""
	}
	return nil
}

func (m *MemoryStore) ReadText(p string) (string, error) {
	p = Clean(p)
	m.mu.RLock()
	defer m.mu.RUnlock()

	text, ok := m.files[p]
	if !ok {
		return "", fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	return text, nil
}

func (m *MemoryStore) WriteText(p string, content string) error {
	p = Clean(p)
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.dirs[p]; ok {
		return fmt.Errorf("%s является каталогом", p)
	}
	for _, dir := range parents(p) {
		m.dirs[dir] = struct{}{}
	}
	m.files[p] = content
	return nil
}

func (m *MemoryStore) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files = make(map[string]string)
	m.dirs = make(map[string]struct{})
	return nil
}

func (m *MemoryStore) List() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// HasDir сообщает, был ли создан каталог
func (m *MemoryStore) HasDir(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.dirs[Clean(p)]
	return ok
}

var _ Store = (*MemoryStore)(nil)
