package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/annel0/addon-builder/internal/addon"
	"github.com/annel0/addon-builder/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
addon:
  name: Ruby Addon
  description: Rubies everywhere
  stable_uuids: true
output:
  dir: build/out
  backend: memory
logging:
  console_level: debug
content:
  items:
    - id: ruby
      display_name: Ruby
      category: Items
      max_stack_size: 16
    - id: ruby_apple
      display_name: Ruby Apple
      food:
        nutrition: 6
      recipe:
        type: shapeless
        ingredients:
          - item: minecraft:apple
          - item: ruby_addon:ruby
            count: 4
  blocks:
    - id: ruby_block
      display_name: Ruby Block
      sound: metal
      hardness: 2.5
      resistance: 6
      render_method: alpha_test
      recipe:
        type: shaped
        pattern: ["##", "##"]
        key:
          "#": ruby_addon:ruby
        result_count: 2
`

func TestParse_FullDocument(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Ruby Addon", cfg.Addon.Name)
	assert.True(t, cfg.Addon.StableUUIDs)
	assert.Equal(t, "build/out", cfg.Output.GetDir())

	backend, err := cfg.Output.GetBackend()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, backend)

	level, err := cfg.Logging.GetConsoleLevel()
	require.NoError(t, err)
	assert.Equal(t, logging.DEBUG, level)

	items, blocks, err := cfg.Content.Build()
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Len(t, blocks, 1)

	assert.Equal(t, addon.CategoryItems, items[0].Category)
	assert.Equal(t, 16, items[0].MaxStackSize)
	assert.Nil(t, items[0].Recipe)

	apple := items[1]
	assert.True(t, apple.Food)
	assert.Equal(t, 6, apple.Nutrition)
	require.NotNil(t, apple.Recipe)
	assert.Equal(t, addon.RecipeShapeless, apple.Recipe.Kind())
	assert.Equal(t, "ruby_apple", apple.Recipe.ResultID())
	shapeless := apple.Recipe.(*addon.ShapelessRecipe)
	assert.Equal(t, 1, shapeless.Ingredients()[0].Count, "количество по умолчанию 1")
	assert.Equal(t, 4, shapeless.Ingredients()[1].Count)

	block := blocks[0]
	assert.Equal(t, addon.SoundMetal, block.Sound)
	assert.Equal(t, 2.5, block.Hardness)
	assert.Equal(t, 6, block.Resistance)
	assert.Equal(t, addon.RenderAlphaTest, block.RenderMethod)
	shaped := block.Recipe.(*addon.ShapedRecipe)
	assert.Equal(t, 2, shaped.ResultCount())
	assert.Equal(t, map[rune]string{'#': "ruby_addon:ruby"}, shaped.Key())
	assert.NoError(t, block.Validate())
}

func TestParse_DefaultsForOmittedFields(t *testing.T) {
	cfg, err := Parse([]byte("addon:\n  name: X\ncontent:\n  blocks:\n    - id: b\n"))
	require.NoError(t, err)

	_, blocks, err := cfg.Content.Build()
	require.NoError(t, err)
	assert.Equal(t, addon.SoundStone, blocks[0].Sound)
	assert.Equal(t, 1.0, blocks[0].Hardness)
	assert.Equal(t, addon.RenderOpaque, blocks[0].RenderMethod)
	assert.Equal(t, addon.CategoryConstruction, blocks[0].Category)

	backend, err := cfg.Output.GetBackend()
	require.NoError(t, err)
	assert.Equal(t, BackendFS, backend)
	assert.Equal(t, "addon-builder", cfg.Telemetry.GetServiceName())
}

func TestParse_RequiresName(t *testing.T) {
	_, err := Parse([]byte("addon:\n  description: nameless\n"))
	assert.Error(t, err)
}

func TestContentBuild_Errors(t *testing.T) {
	cases := map[string]Content{
		"unknown sound":    {Blocks: []BlockDefinition{{ID: "b", Sound: "meow"}}},
		"unknown category": {Items: []ItemDefinition{{ID: "i", Category: "Weapons"}}},
		"unknown render":   {Blocks: []BlockDefinition{{ID: "b", RenderMethod: "shiny"}}},
		"unknown recipe":   {Items: []ItemDefinition{{ID: "i", Recipe: &RecipeDefinition{Type: "furnace"}}}},
		"multi-rune key": {Items: []ItemDefinition{{ID: "i", Recipe: &RecipeDefinition{
			Type: "shaped", Pattern: []string{"#"}, Key: map[string]string{"##": "minecraft:stone"},
		}}}},
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := content.Build()
			assert.Error(t, err)
		})
	}

	_, _, err := cases["unknown recipe"].Build()
	assert.True(t, errors.Is(err, addon.ErrInvalidRecipe))
}

func TestOutputConfig_EnvFallback(t *testing.T) {
	t.Setenv(EnvOutputDir, "/tmp/addons")
	o := OutputConfig{}
	assert.Equal(t, "/tmp/addons", o.GetDir())
	assert.Equal(t, "/tmp/addons.badger", o.GetBadgerPath())

	o.Dir = "explicit"
	assert.Equal(t, "explicit", o.GetDir(), "значение из конфига приоритетнее окружения")

	_, err := (&OutputConfig{Backend: "s3"}).GetBackend()
	assert.Error(t, err)
}

func TestOutputConfig_Default(t *testing.T) {
	t.Setenv(EnvOutputDir, "")
	assert.Equal(t, DefaultOutputDir, (&OutputConfig{}).GetDir())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ruby Addon", cfg.Addon.Name)

	t.Setenv(EnvConfigPath, path)
	cfg, err = Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	t.Setenv(EnvConfigPath, "")
	cfg, err = Load("")
	assert.NoError(t, err)
	assert.Nil(t, cfg, "без пути и переменной окружения конфиг не загружается")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSchema(t *testing.T) {
	data, err := MarshalSchema()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Addon Builder Configuration", doc["title"])

	props, ok := doc["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, props, "addon")
	assert.Contains(t, props, "content")
	assert.Contains(t, doc["required"], "addon")
}
