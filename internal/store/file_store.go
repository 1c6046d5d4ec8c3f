package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileStore реализует хранилище артефактов в файловой системе
type FileStore struct {
	basePath string // Корень вывода
}

// NewFileStore создаёт файловое хранилище и его корневой каталог
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("не удалось создать директорию %s: %w", basePath, err)
	}
	return &FileStore{basePath: basePath}, nil
}

// Root возвращает корневой каталог
func (fst *FileStore) Root() string {
	return fst.basePath
}

func (fst *FileStore) full(p string) string {
	return filepath.Join(fst.basePath, filepath.FromSlash(Clean(p)))
}

// Ensure создаёт каталог или пустой файл, если путь отсутствует
func (fst *FileStore) Ensure(p string, isDir bool) error {
	full := fst.full(p)
	if _, err := os.Stat(full); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("ошибка проверки %s: %w", p, err)
	}

	if isDir {
		if err := os.MkdirAll(full, 0755); err != nil {
			return fmt.Errorf("ошибка создания каталога %s: %w", p, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("ошибка создания каталога для %s: %w", p, err)
	}
	f, err := os.OpenFile(full, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("ошибка создания файла %s: %w", p, err)
	}
	return f.Close()
}

// ReadText читает файл целиком
func (fst *FileStore) ReadText(p string) (string, error) {
	data, err := os.ReadFile(fst.full(p))
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("ошибка чтения файла %s: %w", p, err)
	}
	return string(data), nil
}

// WriteText перезаписывает файл
func (fst *FileStore) WriteText(p string, content string) error {
	full := fst.full(p)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("ошибка создания каталога для %s: %w", p, err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		return fmt.Errorf("ошибка записи файла %s: %w", p, err)
	}
	return nil
}

// Reset удаляет корень вывода и создаёт его заново
func (fst *FileStore) Reset() error {
	if err := os.RemoveAll(fst.basePath); err != nil {
		return fmt.Errorf("ошибка очистки %s: %w", fst.basePath, err)
	}
	if err := os.MkdirAll(fst.basePath, 0755); err != nil {
		return fmt.Errorf("не удалось создать директорию %s: %w", fst.basePath, err)
	}
	return nil
}

// List обходит корень и возвращает пути файлов со слешами
func (fst *FileStore) List() ([]string, error) {
	var out []string
	err := filepath.WalkDir(fst.basePath, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(fst.basePath, p)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка обхода %s: %w", fst.basePath, err)
	}
	sort.Strings(out)
	return out, nil
}

var _ Store = (*FileStore)(nil)
