package diffreport

import (
	"testing"

	"github.com/annel0/addon-builder/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWith(t *testing.T, files map[string]string) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore()
	for p, content := range files {
		require.NoError(t, s.WriteText(p, content))
	}
	return s
}

func TestCompare(t *testing.T) {
	before := storeWith(t, map[string]string{
		"pack/a.lang":  "item.x:a.name=A\nitem.x:b.name=B",
		"pack/old.txt": "gone",
		"pack/same":    "same",
	})
	after := storeWith(t, map[string]string{
		"pack/a.lang": "item.x:a.name=A\nitem.x:b.name=Bee",
		"pack/new":    "fresh\n",
		"pack/same":   "same",
	})

	report, err := Compare(before, after, 0)
	require.NoError(t, err)
	require.Len(t, report.Changes, 3)
	assert.Equal(t, 1, report.Unchanged)
	assert.Equal(t, "1 added, 1 modified, 1 removed, 1 unchanged", report.Summary())

	modified := report.Changes[0]
	assert.Equal(t, "pack/a.lang", modified.Path)
	assert.Equal(t, Modified, modified.Kind)
	assert.Contains(t, modified.Patch, "--- a/pack/a.lang")
	assert.Contains(t, modified.Patch, "+++ b/pack/a.lang")
	assert.Contains(t, modified.Patch, "-item.x:b.name=B\n")
	assert.Contains(t, modified.Patch, "+item.x:b.name=Bee\n")
	assert.Contains(t, modified.Patch, " item.x:a.name=A\n")

	assert.Equal(t, Added, report.Changes[1].Kind)
	assert.Contains(t, report.Changes[1].Patch, "--- /dev/null")
	assert.Contains(t, report.Changes[1].Patch, "+fresh\n")

	assert.Equal(t, Removed, report.Changes[2].Kind)
	assert.Contains(t, report.Changes[2].Patch, "-gone\n")

	assert.Contains(t, report.Patch(), "pack/old.txt")
}

func TestCompare_Identical(t *testing.T) {
	files := map[string]string{"a": "1", "b/c": "2"}
	report, err := Compare(storeWith(t, files), storeWith(t, files), 3)
	require.NoError(t, err)
	assert.True(t, report.Empty())
	assert.Equal(t, 2, report.Unchanged)
	assert.Empty(t, report.Patch())
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{}, splitLines(""))
	assert.Equal(t, []string{"a\n", "b\n"}, splitLines("a\nb"))
	assert.Equal(t, []string{"a\n", "b\n"}, splitLines("a\nb\n"))
}
