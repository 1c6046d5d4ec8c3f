package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/annel0/addon-builder/internal/addon"
	"github.com/annel0/addon-builder/internal/logging"
	"github.com/annel0/addon-builder/internal/manifest"
	"github.com/annel0/addon-builder/internal/metrics"
	"github.com/annel0/addon-builder/internal/store"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore отказывает в Reset, остальное делегирует MemoryStore
type failingStore struct {
	*store.MemoryStore
}

func (f failingStore) Reset() error {
	return errors.New("disk is read-only")
}

func newTestManager(t *testing.T, s store.Store) *Manager {
	t.Helper()
	m, err := New(Options{
		Name:        "My Addon",
		Description: "Test addon",
		Store:       s,
		Manifests:   manifest.NewStableBuilder("test"),
	})
	require.NoError(t, err)
	return m
}

func sampleContent(m *Manager) {
	apple := addon.NewItem("apple").SetDisplayName("Apple").SetFood(4).
		SetRecipe(addon.NewShapelessRecipe().AddIngredient("minecraft:apple", 1))
	stick := addon.NewItem("stick").SetDisplayName("Stick")
	ruby := addon.NewBlock("ruby_block").SetDisplayName("Ruby Block").SetSound(addon.SoundMetal).
		SetRecipe(addon.NewShapedRecipe("##", "##").SetKey('#', "minecraft:redstone"))
	m.AddItem(apple, stick)
	m.AddBlock(ruby)
}

func TestManager_InitializeWritesLinkedManifests(t *testing.T) {
	s := store.NewMemoryStore()
	m := newTestManager(t, s)

	m.Initialize(context.Background())
	require.Equal(t, StateInitialized, m.State())

	var res, beh manifest.Manifest
	text, err := s.ReadText("my_addon_resources/manifest.json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(text), &res))
	text, err = s.ReadText("my_addon_behaviour/manifest.json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(text), &beh))

	assert.True(t, beh.DependsOn(res), "behaviour pack должен зависеть от resource pack")
	assert.Equal(t, "My Addon Resources", res.Header.Name)
	assert.Equal(t, "My Addon Behaviour", beh.Header.Name)
	assert.Equal(t, manifest.ModuleTypeResources, res.Modules[0].Type)
	assert.Equal(t, manifest.ModuleTypeData, beh.Modules[0].Type)

	gotRes, gotBeh := m.Manifests()
	assert.Equal(t, res.Header.UUID, gotRes.Header.UUID)
	assert.Equal(t, beh.Header.UUID, gotBeh.Header.UUID)

	for _, dir := range m.Layout().Skeleton() {
		assert.True(t, s.HasDir(dir), "каталог %s должен существовать", dir)
	}
}

func TestManager_InitializeWipesPreviousOutput(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Ensure("stale/file.txt", false))
	require.NoError(t, s.WriteText("stale/file.txt", "old"))

	m := newTestManager(t, s)
	m.Initialize(context.Background())

	_, err := s.ReadText("stale/file.txt")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestManager_GenerateEndToEnd(t *testing.T) {
	s := store.NewMemoryStore()
	collector := metrics.NewCollector()
	m, err := New(Options{Name: "My Addon", Store: s, Metrics: collector})
	require.NoError(t, err)
	assert.Equal(t, "my_addon", m.Namespace())

	sampleContent(m)
	m.Initialize(context.Background())

	report, err := m.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Items)
	assert.Equal(t, 1, report.Blocks)
	assert.Equal(t, 2, report.Recipes)
	assert.Equal(t, StateGenerated, m.State())

	files, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, len(files), report.Files)

	for _, p := range files {
		text, err := s.ReadText(p)
		require.NoError(t, err)
		if strings.HasSuffix(p, ".json") {
			var doc map[string]interface{}
			assert.NoError(t, json.Unmarshal([]byte(text), &doc), "файл %s должен быть валидным JSON", p)
		}
		assert.NotContains(t, text, "My Addon:", "идентификаторы строятся из технического имени")
	}

	assert.Contains(t, files, "my_addon_behaviour/items/apple.json")
	assert.Contains(t, files, "my_addon_behaviour/blocks/ruby_block.json")
	assert.Contains(t, files, "my_addon_behaviour/recipes/apple.json")
	assert.Contains(t, files, "my_addon_behaviour/recipes/ruby_block.json")
	assert.Contains(t, files, "my_addon_resources/textures/item_texture.json")
	assert.Contains(t, files, "my_addon_resources/blocks.json")

	lang, err := s.ReadText("my_addon_resources/texts/en_US.lang")
	require.NoError(t, err)
	assert.Contains(t, lang, "item.my_addon:apple.name=Apple")
	assert.Contains(t, lang, "tile.my_addon:ruby_block.name=Ruby Block")

	assert.Equal(t, float64(2), testutil.ToFloat64(collector.FilesWrittenCounter("manifest")))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.FilesWrittenCounter("block")))

	_, err = m.Generate(context.Background())
	assert.True(t, errors.Is(err, ErrAlreadyGenerated))
}

func TestManager_ExplicitNamespace(t *testing.T) {
	s := store.NewMemoryStore()
	m, err := New(Options{Name: "My Addon", Namespace: "ruby", Store: s})
	require.NoError(t, err)

	m.AddItem(addon.NewItem("gem"))
	m.Initialize(context.Background())
	_, err = m.Generate(context.Background())
	require.NoError(t, err)

	text, err := s.ReadText("my_addon_behaviour/items/gem.json")
	require.NoError(t, err, "каталоги паков по-прежнему берут имя из отображаемого имени")
	assert.Contains(t, text, `"ruby:gem"`)
}

func TestManager_GenerateAbortsOnInvalidEntity(t *testing.T) {
	s := store.NewMemoryStore()
	m := newTestManager(t, s)

	bad := addon.NewItem("bad")
	bad.Recipe = addon.NewShapedRecipe("#?").SetKey('#', "minecraft:stone")
	m.AddItem(addon.NewItem("good"), bad, addon.NewItem("never"))
	m.Initialize(context.Background())

	report, err := m.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, addon.ErrInvalidRecipe))
	assert.Contains(t, err.Error(), `"bad"`)
	assert.Equal(t, 1, report.Items)
	assert.Equal(t, StateInitialized, m.State())

	_, err = s.ReadText("my_addon_behaviour/items/good.json")
	assert.NoError(t, err, "файлы до ошибки остаются на месте")
	_, err = s.ReadText("my_addon_behaviour/items/never.json")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestManager_GenerateRequiresInitialize(t *testing.T) {
	m := newTestManager(t, store.NewMemoryStore())
	_, err := m.Generate(context.Background())
	assert.True(t, errors.Is(err, ErrNotInitialized))
}

func TestManager_InitializeFailureIsLoggedNotReturned(t *testing.T) {
	var buf bytes.Buffer
	m, err := New(Options{
		Name:   "My Addon",
		Store:  failingStore{store.NewMemoryStore()},
		Logger: logging.NewWriterLogger("test", &buf, logging.WARN),
	})
	require.NoError(t, err)

	m.Initialize(context.Background())
	assert.Equal(t, StateUninitialized, m.State())
	assert.Contains(t, buf.String(), "disk is read-only")

	_, err = m.Generate(context.Background())
	assert.True(t, errors.Is(err, ErrNotInitialized))
}

func TestManager_GenerateHonoursCancellation(t *testing.T) {
	m := newTestManager(t, store.NewMemoryStore())
	m.AddItem(addon.NewItem("apple"))
	m.Initialize(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.Generate(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNew_RequiresStoreAndName(t *testing.T) {
	_, err := New(Options{Name: "x"})
	assert.Error(t, err)
	_, err = New(Options{Store: store.NewMemoryStore()})
	assert.Error(t, err)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "initialized", StateInitialized.String())
	assert.Equal(t, "unknown", State(42).String())
}
