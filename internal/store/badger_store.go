package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v3"
)

const (
	fileKeyPrefix = "f:"
	dirKeyPrefix  = "d:"
)

// BadgerStore хранит артефакты в BadgerDB, ключом служит относительный путь.
// Каталоги хранятся отдельными маркерными ключами.
type BadgerStore struct {
	db      *badger.DB
	dbPath  string
	mutex   sync.RWMutex
	isReady bool
}

// NewBadgerStore открывает (или создаёт) базу в dbPath
func NewBadgerStore(dbPath string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB
	return openBadgerStore(opts, dbPath)
}

// NewInMemoryBadgerStore открывает базу без файлов на диске
func NewInMemoryBadgerStore() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return openBadgerStore(opts, "")
}

func openBadgerStore(opts badger.Options, dbPath string) (*BadgerStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}
	return &BadgerStore{db: db, dbPath: dbPath, isReady: true}, nil
}

// Close закрывает базу
func (bs *BadgerStore) Close() error {
	bs.mutex.Lock()
	defer bs.mutex.Unlock()

	if !bs.isReady {
		return nil
	}
	bs.isReady = false
	return bs.db.Close()
}

func (bs *BadgerStore) ready() error {
	if !bs.isReady {
		return fmt.Errorf("хранилище не готово")
	}
	return nil
}

func keyExists(txn *badger.Txn, key string) (bool, error) {
	_, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func markParents(txn *badger.Txn, p string) error {
	for _, dir := range parents(p) {
		if err := txn.Set([]byte(dirKeyPrefix+dir), nil); err != nil {
			return err
		}
	}
	return nil
}

func (bs *BadgerStore) Ensure(p string, isDir bool) error {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()
	if err := bs.ready(); err != nil {
		return err
	}

	p = Clean(p)
	err := bs.db.Update(func(txn *badger.Txn) error {
		isFile, err := keyExists(txn, fileKeyPrefix+p)
		if err != nil {
			return err
		}
		isDirKey, err := keyExists(txn, dirKeyPrefix+p)
		if err != nil {
			return err
		}
		if isFile || isDirKey {
			return nil
		}

		if err := markParents(txn, p); err != nil {
			return err
		}
		if isDir {
			return txn.Set([]byte(dirKeyPrefix+p), nil)
		}
		return txn.Set([]byte(fileKeyPrefix+p), []byte{})
	})
	if err != nil {
		return fmt.Errorf("ошибка создания %s в BadgerDB: %w", p, err)
	}
	return nil
}

func (bs *BadgerStore) ReadText(p string) (string, error) {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()
	if err := bs.ready(); err != nil {
		return "", err
	}

	p = Clean(p)
	var data []byte
	err := bs.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fileKeyPrefix + p))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data = append([]byte{}, val...)
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("ошибка чтения из BadgerDB: %w", err)
	}
	return string(data), nil
}

func (bs *BadgerStore) WriteText(p string, content string) error {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()
	if err := bs.ready(); err != nil {
		return err
	}

	p = Clean(p)
	err := bs.db.Update(func(txn *badger.Txn) error {
		if err := markParents(txn, p); err != nil {
			return err
		}
		return txn.Set([]byte(fileKeyPrefix+p), []byte(content))
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения в BadgerDB: %w", err)
	}
	return nil
}

// Reset удаляет все ключи базы
func (bs *BadgerStore) Reset() error {
	bs.mutex.Lock()
	defer bs.mutex.Unlock()
	if err := bs.ready(); err != nil {
		return err
	}
	if err := bs.db.DropAll(); err != nil {
		return fmt.Errorf("ошибка очистки BadgerDB: %w", err)
	}
	return nil
}

func (bs *BadgerStore) List() ([]string, error) {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()
	if err := bs.ready(); err != nil {
		return nil, err
	}

	var out []string
	err := bs.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(fileKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().KeyCopy(nil))
			out = append(out, strings.TrimPrefix(key, fileKeyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка обхода BadgerDB: %w", err)
	}
	sort.Strings(out)
	return out, nil
}

var _ Store = (*BadgerStore)(nil)
