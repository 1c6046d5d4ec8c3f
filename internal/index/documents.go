package index

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Относительные пути индексов внутри resource pack
const (
	ItemTexturePath    = "textures/item_texture.json"
	TerrainTexturePath = "textures/terrain_texture.json"
	BlockSoundPath     = "blocks.json"
)

// Имена атласов и параметры terrain-атласа по умолчанию
const (
	ItemAtlasName       = "atlas.items"
	TerrainAtlasName    = "atlas.terrain"
	TerrainPadding      = 8
	TerrainNumMipLevels = 4
)

// BlocksFormatVersion версия формата blocks.json
var BlocksFormatVersion = [3]int{1, 1, 0}

// TextureEntry запись атласа: путь к текстуре без расширения
type TextureEntry struct {
	Textures string `json:"textures"`
}

// ItemTextureAtlas документ textures/item_texture.json
type ItemTextureAtlas struct {
	ResourcePackName string                  `json:"resource_pack_name"`
	TextureName      string                  `json:"texture_name"`
	TextureData      map[string]TextureEntry `json:"texture_data"`
}

// NewItemTextureAtlas канонический пустой атлас предметов
func NewItemTextureAtlas(namespace string) ItemTextureAtlas {
	return ItemTextureAtlas{
		ResourcePackName: namespace,
		TextureName:      ItemAtlasName,
		TextureData:      make(map[string]TextureEntry),
	}
}

// TerrainTextureAtlas документ textures/terrain_texture.json
type TerrainTextureAtlas struct {
	ResourcePackName string                  `json:"resource_pack_name"`
	TextureName      string                  `json:"texture_name"`
	Padding          int                     `json:"padding"`
	NumMipLevels     int                     `json:"num_mip_levels"`
	TextureData      map[string]TextureEntry `json:"texture_data"`
}

// NewTerrainTextureAtlas канонический пустой атлас блоков
func NewTerrainTextureAtlas(namespace string) TerrainTextureAtlas {
	return TerrainTextureAtlas{
		ResourcePackName: namespace,
		TextureName:      TerrainAtlasName,
		Padding:          TerrainPadding,
		NumMipLevels:     TerrainNumMipLevels,
		TextureData:      make(map[string]TextureEntry),
	}
}

// BlockSoundEntry запись blocks.json: имя текстуры из terrain-атласа и звук
type BlockSoundEntry struct {
	Textures string `json:"textures"`
	Sound    string `json:"sound,omitempty"`
}

// BlockSoundIndex документ blocks.json. В JSON записи лежат прямо в корне
// рядом с format_version, поэтому сериализация ручная.
type BlockSoundIndex struct {
	FormatVersion [3]int
	Entries       map[string]BlockSoundEntry
}

// NewBlockSoundIndex канонический пустой blocks.json
func NewBlockSoundIndex() BlockSoundIndex {
	return BlockSoundIndex{
		FormatVersion: BlocksFormatVersion,
		Entries:       make(map[string]BlockSoundEntry),
	}
}

func (b BlockSoundIndex) MarshalJSON() ([]byte, error) {
	root := make(map[string]interface{}, len(b.Entries)+1)
	root["format_version"] = b.FormatVersion
	for id, entry := range b.Entries {
		root[id] = entry
	}
	return json.Marshal(root)
}

func (b *BlockSoundIndex) UnmarshalJSON(data []byte) error {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return err
	}
	if root == nil {
		return fmt.Errorf("blocks.json: ожидался объект")
	}

	b.FormatVersion = BlocksFormatVersion
	b.Entries = make(map[string]BlockSoundEntry, len(root))
	for key, raw := range root {
		if key == "format_version" {
			if err := json.Unmarshal(raw, &b.FormatVersion); err != nil {
				return fmt.Errorf("blocks.json: format_version: %w", err)
			}
			continue
		}
		var entry BlockSoundEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return fmt.Errorf("blocks.json: запись %s: %w", key, err)
		}
		b.Entries[key] = entry
	}
	return nil
}

// IDs возвращает отсортированные идентификаторы записей
func (b BlockSoundIndex) IDs() []string {
	return sortedKeys(b.Entries)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
