// Package store содержит абстракцию хранилища артефактов: отображение
// относительный путь -> текст, поверх которого строятся все генераторы.
//
// Использование:
//
//	s, _ := store.NewFileStore("out")
//	_ = s.Ensure("pack/texts/en_US.lang", false)
//	doc, fellBack, err := store.ReadJSONOrDefault(s, "pack/blocks.json", defaultDoc)
//	err = store.WriteJSON(s, "pack/blocks.json", doc)
package store

import (
	"errors"
	"path"
	"strings"
)

// ErrNotFound путь ни разу не создавался и не записывался
var ErrNotFound = errors.New("artifact not found")

// Store хранилище артефактов, адресуемое относительными путями со слешами.
// Все записи сразу долговечны, буферизации нет.
type Store interface {
	// Ensure создаёт путь и родительские каталоги, если их нет.
	// Файл создаётся пустым; существующий путь не трогается.
	Ensure(p string, isDir bool) error

	// ReadText возвращает содержимое файла или ErrNotFound.
	ReadText(p string) (string, error)

	// WriteText полностью перезаписывает файл, создавая родителей.
	WriteText(p string, content string) error

	// Reset стирает корень вывода целиком и создаёт его пустым.
	Reset() error

	// List возвращает отсортированные пути всех файлов.
	List() ([]string, error)
}

// Clean нормализует относительный путь: слеши, без ведущего "/" и "./".
func Clean(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}

// Join склеивает части пути артефакта
func Join(parts ...string) string {
	return Clean(path.Join(parts...))
}

// parents возвращает все родительские каталоги пути, от корня вглубь
func parents(p string) []string {
	var out []string
	dir := path.Dir(p)
	for dir != "." && dir != "/" && dir != "" {
		out = append([]string{dir}, out...)
		dir = path.Dir(dir)
	}
	return out
}
