package emit

import (
	"github.com/annel0/addon-builder/internal/addon"
)

// FormatVersion версия формата определений предметов, блоков и рецептов
const FormatVersion = "1.16.100"

// FoodUseDuration длительность поедания в тиках
const FoodUseDuration = 32

// ItemDocument документ items/<id>.json
type ItemDocument struct {
	FormatVersion string   `json:"format_version"`
	Item          ItemBody `json:"minecraft:item"`
}

type ItemBody struct {
	Description ItemDescription `json:"description"`
	Components  ItemComponents  `json:"components"`
}

type ItemDescription struct {
	Identifier string `json:"identifier"`
	Category   string `json:"category"`
}

// ItemComponents компоненты предмета. Пищевые компоненты заданы указателями:
// у несъедобного предмета их нет в документе вовсе.
type ItemComponents struct {
	Icon         TextureRef     `json:"minecraft:icon"`
	DisplayName  ValueRef       `json:"minecraft:display_name"`
	MaxStackSize int            `json:"minecraft:max_stack_size"`
	UseDuration  *int           `json:"minecraft:use_duration,omitempty"`
	Food         *FoodComponent `json:"minecraft:food,omitempty"`
}

type TextureRef struct {
	Texture string `json:"texture"`
}

type ValueRef struct {
	Value string `json:"value"`
}

type FoodComponent struct {
	Nutrition int `json:"nutrition"`
}

// NewItemDocument строит определение предмета
func NewItemDocument(namespace string, item *addon.Item) ItemDocument {
	identifier := addon.Identifier(namespace, item.ID)
	doc := ItemDocument{
		FormatVersion: FormatVersion,
		Item: ItemBody{
			Description: ItemDescription{
				Identifier: identifier,
				Category:   string(item.Category),
			},
			Components: ItemComponents{
				Icon:         TextureRef{Texture: identifier},
				DisplayName:  ValueRef{Value: item.DisplayName},
				MaxStackSize: item.MaxStackSize,
			},
		},
	}

	if item.Food {
		duration := FoodUseDuration
		doc.Item.Components.UseDuration = &duration
		doc.Item.Components.Food = &FoodComponent{Nutrition: item.Nutrition}
	}
	return doc
}

// BlockDocument документ blocks/<id>.json
type BlockDocument struct {
	FormatVersion string    `json:"format_version"`
	Block         BlockBody `json:"minecraft:block"`
}

type BlockBody struct {
	Description BlockDescription `json:"description"`
	Components  BlockComponents  `json:"components"`
}

type BlockDescription struct {
	Identifier             string `json:"identifier"`
	RegisterToCreativeMenu bool   `json:"register_to_creative_menu"`
	Category               string `json:"category"`
}

type BlockComponents struct {
	MaterialInstances       map[string]MaterialInstance `json:"minecraft:material_instances"`
	DestructibleByMining    MiningComponent             `json:"minecraft:destructible_by_mining"`
	DestructibleByExplosion ExplosionComponent          `json:"minecraft:destructible_by_explosion"`
}

type MaterialInstance struct {
	Texture      string `json:"texture"`
	RenderMethod string `json:"render_method"`
}

type MiningComponent struct {
	SecondsToDestroy float64 `json:"seconds_to_destroy"`
}

type ExplosionComponent struct {
	ExplosionResistance int `json:"explosion_resistance"`
}

// NewBlockDocument строит определение блока. Материал "*" применяется ко
// всем граням и ссылается на запись terrain-атласа.
func NewBlockDocument(namespace string, block *addon.Block) BlockDocument {
	identifier := addon.Identifier(namespace, block.ID)
	return BlockDocument{
		FormatVersion: FormatVersion,
		Block: BlockBody{
			Description: BlockDescription{
				Identifier:             identifier,
				RegisterToCreativeMenu: true,
				Category:               string(block.Category),
			},
			Components: BlockComponents{
				MaterialInstances: map[string]MaterialInstance{
					"*": {Texture: identifier, RenderMethod: string(block.RenderMethod)},
				},
				DestructibleByMining:    MiningComponent{SecondsToDestroy: block.Hardness},
				DestructibleByExplosion: ExplosionComponent{ExplosionResistance: block.Resistance},
			},
		},
	}
}
