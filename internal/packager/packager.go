// Package packager упаковывает сгенерированные паки в архивы, которые
// игра импортирует двойным щелчком: .mcaddon (оба пака) и .mcpack (один).
package packager

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/annel0/addon-builder/internal/store"
	"github.com/klauspost/compress/zip"
)

// Расширения архивов
const (
	AddonExtension = ".mcaddon"
	PackExtension  = ".mcpack"
)

// ArchiveTime метка времени всех записей (1980-01-01 UTC)
var ArchiveTime = time.Unix(315532800, 0).UTC()

// WriteMCAddon пишет все файлы хранилища в zip-архив с сохранением путей.
// Все записи получают ArchiveTime, поэтому одинаковое содержимое даёт
// побайтно одинаковый архив.
func WriteMCAddon(s store.Store, w io.Writer) (int, error) {
	return writeArchive(s, w, "")
}

// WriteMCPack пишет один пак: пути в архиве отсчитываются от root, так что
// manifest.json оказывается в корне архива.
func WriteMCPack(s store.Store, root string, w io.Writer) (int, error) {
	root = store.Clean(root)
	if root == "" {
		return 0, fmt.Errorf("packager: pack root is required")
	}
	return writeArchive(s, w, root)
}

func writeArchive(s store.Store, w io.Writer, root string) (int, error) {
	files, err := s.List()
	if err != nil {
		return 0, fmt.Errorf("packager: list artifacts: %w", err)
	}

	zw := zip.NewWriter(w)
	written := 0
	for _, p := range files {
		name := p
		if root != "" {
			if !strings.HasPrefix(p, root+"/") {
				continue
			}
			name = strings.TrimPrefix(p, root+"/")
		}

		content, err := s.ReadText(p)
		if err != nil {
			zw.Close()
			return written, fmt.Errorf("packager: read %s: %w", p, err)
		}

		fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: ArchiveTime})
		if err != nil {
			zw.Close()
			return written, fmt.Errorf("packager: add %s: %w", name, err)
		}
		if _, err := io.WriteString(fw, content); err != nil {
			zw.Close()
			return written, fmt.Errorf("packager: write %s: %w", name, err)
		}
		written++
	}

	if err := zw.Close(); err != nil {
		return written, fmt.Errorf("packager: finalize archive: %w", err)
	}
	return written, nil
}
