package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/annel0/addon-builder/internal/addon"
)

// Content декларативное описание содержимого аддона
type Content struct {
	Items  []ItemDefinition  `yaml:"items" json:"items,omitempty"`
	Blocks []BlockDefinition `yaml:"blocks" json:"blocks,omitempty"`
}

type FoodDefinition struct {
	Nutrition int `yaml:"nutrition" json:"nutrition"`
}

type ItemDefinition struct {
	ID           string            `yaml:"id" json:"id" jsonschema:"required"`
	DisplayName  string            `yaml:"display_name" json:"display_name,omitempty"`
	Texture      string            `yaml:"texture" json:"texture,omitempty"`
	Category     string            `yaml:"category" json:"category,omitempty" jsonschema:"enum=Construction,enum=Equipment,enum=Items,enum=Nature"`
	MaxStackSize *int              `yaml:"max_stack_size" json:"max_stack_size,omitempty"`
	Food         *FoodDefinition   `yaml:"food" json:"food,omitempty"`
	Recipe       *RecipeDefinition `yaml:"recipe" json:"recipe,omitempty"`
}

type BlockDefinition struct {
	ID           string            `yaml:"id" json:"id" jsonschema:"required"`
	DisplayName  string            `yaml:"display_name" json:"display_name,omitempty"`
	Texture      string            `yaml:"texture" json:"texture,omitempty"`
	Category     string            `yaml:"category" json:"category,omitempty" jsonschema:"enum=Construction,enum=Equipment,enum=Items,enum=Nature"`
	Sound        string            `yaml:"sound" json:"sound,omitempty"`
	Hardness     *float64          `yaml:"hardness" json:"hardness,omitempty"`
	Resistance   *int              `yaml:"resistance" json:"resistance,omitempty"`
	RenderMethod string            `yaml:"render_method" json:"render_method,omitempty" jsonschema:"enum=blend,enum=opaque,enum=alpha_test"`
	Recipe       *RecipeDefinition `yaml:"recipe" json:"recipe,omitempty"`
}

type IngredientDefinition struct {
	Item  string `yaml:"item" json:"item" jsonschema:"required"`
	Count int    `yaml:"count" json:"count,omitempty"`
}

// RecipeDefinition рецепт в конфигурации. Для shaped используются pattern
// и key, для shapeless используется ingredients.
type RecipeDefinition struct {
	Type        string                 `yaml:"type" json:"type" jsonschema:"required,enum=shaped,enum=shapeless"`
	Pattern     []string               `yaml:"pattern" json:"pattern,omitempty"`
	Key         map[string]string      `yaml:"key" json:"key,omitempty"`
	Ingredients []IngredientDefinition `yaml:"ingredients" json:"ingredients,omitempty"`
	ResultCount int                    `yaml:"result_count" json:"result_count,omitempty"`
	Tags        []string               `yaml:"tags" json:"tags,omitempty"`
}

// Build превращает определения в доменные объекты в порядке объявления.
// Здесь проверяются только ошибки конфигурации (неизвестные перечисления,
// некорректные ключи); инварианты сущностей проверяются при генерации.
func (c Content) Build() ([]*addon.Item, []*addon.Block, error) {
	items := make([]*addon.Item, 0, len(c.Items))
	for i, def := range c.Items {
		item, err := def.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("content.items[%d] (%s): %w", i, def.ID, err)
		}
		items = append(items, item)
	}

	blocks := make([]*addon.Block, 0, len(c.Blocks))
	for i, def := range c.Blocks {
		block, err := def.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("content.blocks[%d] (%s): %w", i, def.ID, err)
		}
		blocks = append(blocks, block)
	}
	return items, blocks, nil
}

func (d ItemDefinition) Build() (*addon.Item, error) {
	category, err := addon.ParseCategory(d.Category)
	if err != nil {
		return nil, err
	}

	item := addon.NewItem(d.ID).SetCategory(category)
	if d.DisplayName != "" {
		item.SetDisplayName(d.DisplayName)
	}
	if d.Texture != "" {
		item.SetTexture(d.Texture)
	}
	if d.MaxStackSize != nil {
		item.SetMaxStackSize(*d.MaxStackSize)
	}
	if d.Food != nil {
		item.SetFood(d.Food.Nutrition)
	}
	if d.Recipe != nil {
		recipe, err := d.Recipe.Build()
		if err != nil {
			return nil, err
		}
		item.SetRecipe(recipe)
	}
	return item, nil
}

func (d BlockDefinition) Build() (*addon.Block, error) {
	category, err := addon.ParseCategory(d.Category)
	if err != nil {
		return nil, err
	}
	sound, err := addon.ParseBlockSound(d.Sound)
	if err != nil {
		return nil, err
	}
	render, err := addon.ParseRenderMethod(d.RenderMethod)
	if err != nil {
		return nil, err
	}

	block := addon.NewBlock(d.ID).
		SetCategory(category).
		SetSound(sound).
		SetRenderMethod(render)
	if d.DisplayName != "" {
		block.SetDisplayName(d.DisplayName)
	}
	if d.Texture != "" {
		block.SetTexture(d.Texture)
	}
	if d.Hardness != nil {
		block.SetHardness(*d.Hardness)
	}
	if d.Resistance != nil {
		block.SetResistance(*d.Resistance)
	}
	if d.Recipe != nil {
		recipe, err := d.Recipe.Build()
		if err != nil {
			return nil, err
		}
		block.SetRecipe(recipe)
	}
	return block, nil
}

// Build строит рецепт нужного вида
func (d RecipeDefinition) Build() (addon.Recipe, error) {
	switch d.Type {
	case "shaped":
		r := addon.NewShapedRecipe(d.Pattern...)
		for symbol, itemID := range d.Key {
			if utf8.RuneCountInString(symbol) != 1 {
				return nil, fmt.Errorf("%w: key %q must be a single character", addon.ErrInvalidRecipe, symbol)
			}
			s, _ := utf8.DecodeRuneInString(symbol)
			r.SetKey(s, itemID)
		}
		if d.ResultCount != 0 {
			r.SetResultCount(d.ResultCount)
		}
		if len(d.Tags) > 0 {
			r.SetTags(d.Tags...)
		}
		return r, nil

	case "shapeless":
		r := addon.NewShapelessRecipe()
		for _, ing := range d.Ingredients {
			count := ing.Count
			if count == 0 {
				count = 1
			}
			r.AddIngredient(ing.Item, count)
		}
		if d.ResultCount != 0 {
			r.SetResultCount(d.ResultCount)
		}
		if len(d.Tags) > 0 {
			r.SetTags(d.Tags...)
		}
		return r, nil

	default:
		return nil, fmt.Errorf("%w: unknown recipe type %q", addon.ErrInvalidRecipe, d.Type)
	}
}
