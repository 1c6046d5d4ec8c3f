// Package diffreport сравнивает два дерева артефактов и выдаёт unified diff
// по каждому добавленному, изменённому или удалённому файлу. Используется
// в режиме dry-run: новая сборка пишется в память и сравнивается с тем,
// что уже лежит в каталоге вывода.
package diffreport

import (
	"fmt"
	"sort"
	"strings"

	"github.com/annel0/addon-builder/internal/store"
	difflib "github.com/pmezard/go-difflib/difflib"
)

// DefaultContext число строк контекста в ханках
const DefaultContext = 3

// ChangeKind вид изменения файла
type ChangeKind string

const (
	Added    ChangeKind = "added"
	Modified ChangeKind = "modified"
	Removed  ChangeKind = "removed"
)

// Change изменение одного файла
type Change struct {
	Path  string
	Kind  ChangeKind
	Patch string
}

// Report результат сравнения. Changes отсортированы по пути.
type Report struct {
	Changes   []Change
	Unchanged int
}

// Empty сообщает, что деревья совпадают
func (r Report) Empty() bool {
	return len(r.Changes) == 0
}

// Count возвращает число изменений указанного вида
func (r Report) Count(kind ChangeKind) int {
	n := 0
	for _, c := range r.Changes {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Summary однострочная сводка
func (r Report) Summary() string {
	return fmt.Sprintf("%d added, %d modified, %d removed, %d unchanged",
		r.Count(Added), r.Count(Modified), r.Count(Removed), r.Unchanged)
}

// Patch склеивает патчи всех изменений
func (r Report) Patch() string {
	var sb strings.Builder
	for _, c := range r.Changes {
		sb.WriteString(c.Patch)
	}
	return sb.String()
}

// Compare сравнивает before и after. context <= 0 означает DefaultContext.
func Compare(before, after store.Store, context int) (Report, error) {
	if context <= 0 {
		context = DefaultContext
	}

	oldFiles, err := snapshot(before)
	if err != nil {
		return Report{}, err
	}
	newFiles, err := snapshot(after)
	if err != nil {
		return Report{}, err
	}

	paths := make(map[string]struct{}, len(oldFiles)+len(newFiles))
	for p := range oldFiles {
		paths[p] = struct{}{}
	}
	for p := range newFiles {
		paths[p] = struct{}{}
	}
	sorted := make([]string, 0, len(paths))
	for p := range paths {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)

	var report Report
	for _, p := range sorted {
		oldText, inOld := oldFiles[p]
		newText, inNew := newFiles[p]

		var change Change
		switch {
		case !inOld:
			change = Change{Path: p, Kind: Added}
			change.Patch, err = unified("/dev/null", "b/"+p, "", newText, context)
		case !inNew:
			change = Change{Path: p, Kind: Removed}
			change.Patch, err = unified("a/"+p, "/dev/null", oldText, "", context)
		case oldText != newText:
			change = Change{Path: p, Kind: Modified}
			change.Patch, err = unified("a/"+p, "b/"+p, oldText, newText, context)
		default:
			report.Unchanged++
			continue
		}
		if err != nil {
			return Report{}, fmt.Errorf("diff %s: %w", p, err)
		}
		report.Changes = append(report.Changes, change)
	}
	return report, nil
}

func snapshot(s store.Store) (map[string]string, error) {
	files, err := s.List()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(files))
	for _, p := range files {
		text, err := s.ReadText(p)
		if err != nil {
			return nil, err
		}
		out[p] = text
	}
	return out, nil
}

func unified(fromName, toName, a, b string, context int) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(a),
		B:        splitLines(b),
		FromFile: fromName,
		ToFile:   toName,
		Context:  context,
	})
}

// splitLines режет текст на строки с сохранением "\n". Последней строке
// без перевода строки он дописывается, иначе она склеится со следующим
// заголовком патча.
func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if last := lines[len(lines)-1]; last == "" {
		lines = lines[:len(lines)-1]
	} else if !strings.HasSuffix(last, "\n") {
		lines[len(lines)-1] = last + "\n"
	}
	return lines
}
