package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends возвращает все реализации хранилища для общих тестов
func backends(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	require.NoError(t, err, "не удалось создать файловое хранилище")

	badgerStore, err := NewInMemoryBadgerStore()
	require.NoError(t, err, "не удалось открыть BadgerDB")
	t.Cleanup(func() { badgerStore.Close() })

	return map[string]Store{
		"file":   fileStore,
		"memory": NewMemoryStore(),
		"badger": badgerStore,
	}
}

func TestStore_EnsureReadWrite(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.ReadText("pack/manifest.json")
			assert.True(t, errors.Is(err, ErrNotFound), "чтение несозданного пути должно давать ErrNotFound")

			require.NoError(t, s.Ensure("pack/manifest.json", false))
			text, err := s.ReadText("pack/manifest.json")
			require.NoError(t, err)
			assert.Equal(t, "", text, "Ensure создаёт пустой файл")

			require.NoError(t, s.WriteText("pack/manifest.json", "{}"))
			require.NoError(t, s.Ensure("pack/manifest.json", false), "повторный Ensure не должен затирать файл")
			text, err = s.ReadText("pack/manifest.json")
			require.NoError(t, err)
			assert.Equal(t, "{}", text)

			require.NoError(t, s.Ensure("pack/items", true))
			require.NoError(t, s.WriteText("pack/items/apple.json", "a"))

			files, err := s.List()
			require.NoError(t, err)
			assert.Equal(t, []string{"pack/items/apple.json", "pack/manifest.json"}, files)
		})
	}
}

func TestStore_Reset(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.WriteText("a/b.txt", "x"))
			require.NoError(t, s.Reset())

			files, err := s.List()
			require.NoError(t, err)
			assert.Empty(t, files)

			_, err = s.ReadText("a/b.txt")
			assert.True(t, errors.Is(err, ErrNotFound))
		})
	}
}

func TestReadJSONOrDefault(t *testing.T) {
	type doc struct {
		Name string `json:"name"`
	}
	def := doc{Name: "default"}

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			got, fellBack, err := ReadJSONOrDefault(s, "missing.json", def)
			require.NoError(t, err)
			assert.True(t, fellBack)
			assert.Equal(t, def, got)

			require.NoError(t, s.Ensure("empty.json", false))
			got, fellBack, err = ReadJSONOrDefault(s, "empty.json", def)
			require.NoError(t, err)
			assert.True(t, fellBack, "пустой файл трактуется как отсутствующий")
			assert.Equal(t, def, got)

			require.NoError(t, s.WriteText("broken.json", "{not json"))
			got, fellBack, err = ReadJSONOrDefault(s, "broken.json", def)
			require.NoError(t, err, "повреждённый документ не должен давать ошибку")
			assert.True(t, fellBack)
			assert.Equal(t, def, got)

			require.NoError(t, WriteJSON(s, "ok.json", doc{Name: "stored"}))
			got, fellBack, err = ReadJSONOrDefault(s, "ok.json", def)
			require.NoError(t, err)
			assert.False(t, fellBack)
			assert.Equal(t, "stored", got.Name)
		})
	}
}

func TestWriteJSON_Indent(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, WriteJSON(s, "x.json", map[string]int{"a": 1}))
	text, err := s.ReadText("x.json")
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": 1\n}", text)
}

func TestAppendLine(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, AppendLine(s, "texts/en_US.lang", "a=1"))
	require.NoError(t, AppendLine(s, "texts/en_US.lang", "b=2"))

	text, err := s.ReadText("texts/en_US.lang")
	require.NoError(t, err)
	assert.Equal(t, "a=1\nb=2", text)

	require.NoError(t, s.WriteText("texts/en_US.lang", "\n\n  c=3"))
	require.NoError(t, AppendLine(s, "texts/en_US.lang", "d=4"))
	text, _ = s.ReadText("texts/en_US.lang")
	assert.Equal(t, "c=3\nd=4", text, "ведущие пробелы должны отбрасываться")
}

func TestUpsertLine(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, UpsertLine(s, "en_US.lang", "item.ns:a.name", "A"))
	require.NoError(t, UpsertLine(s, "en_US.lang", "item.ns:b.name", "B"))
	require.NoError(t, UpsertLine(s, "en_US.lang", "item.ns:a.name", "A2"))

	text, err := s.ReadText("en_US.lang")
	require.NoError(t, err)
	assert.Equal(t, "item.ns:a.name=A2\nitem.ns:b.name=B", text)
}

func TestClean(t *testing.T) {
	assert.Equal(t, "a/b", Clean("./a//b/"))
	assert.Equal(t, "a/b", Clean("/a/b"))
	assert.Equal(t, "a/b/c.json", Join("a", "b", "c.json"))
	assert.Equal(t, []string{"a", "a/b"}, parents("a/b/c.json"))
}

func TestMemoryStore_Dirs(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Ensure("pack/textures/items", true))
	assert.True(t, s.HasDir("pack"))
	assert.True(t, s.HasDir("pack/textures/items"))
	assert.Error(t, s.WriteText("pack/textures", "x"), "нельзя записать файл поверх каталога")
}
