// Package index сливает записи отдельных предметов и блоков в общие
// документы resource pack: item_texture.json, terrain_texture.json и
// blocks.json. Формат Bedrock требует один такой файл на пак, поэтому
// каждое слияние перечитывает документ, заменяет запись своего
// идентификатора и записывает документ целиком обратно.
package index

import (
	"github.com/annel0/addon-builder/internal/addon"
	"github.com/annel0/addon-builder/internal/logging"
	"github.com/annel0/addon-builder/internal/metrics"
	"github.com/annel0/addon-builder/internal/store"
)

// Имена индексов для логов и метрик
const (
	KindItemTexture    = "item_texture"
	KindTerrainTexture = "terrain_texture"
	KindBlockSound     = "block_sound"
)

// DefaultItemTexturePath путь текстуры предмета по соглашению
func DefaultItemTexturePath(id string) string {
	return "textures/items/" + id
}

// DefaultBlockTexturePath путь текстуры блока по соглашению
func DefaultBlockTexturePath(id string) string {
	return "textures/blocks/" + id
}

// Merger сливает записи в индексы одного resource pack
type Merger struct {
	store        store.Store
	resourceRoot string
	namespace    string
	logger       *logging.Logger
	metrics      *metrics.Collector
}

// NewMerger создаёт сливатель для resource pack в resourceRoot
func NewMerger(s store.Store, resourceRoot, namespace string, logger *logging.Logger, m *metrics.Collector) *Merger {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Merger{
		store:        s,
		resourceRoot: resourceRoot,
		namespace:    namespace,
		logger:       logger,
		metrics:      m,
	}
}

func (m *Merger) path(rel string) string {
	return store.Join(m.resourceRoot, rel)
}

// load гарантирует наличие файла и читает его с подменой на def
func load[T any](m *Merger, kind, rel string, def T) (T, error) {
	p := m.path(rel)
	if err := m.store.Ensure(p, false); err != nil {
		return def, err
	}
	doc, fellBack, err := store.ReadJSONOrDefault(m.store, p, def)
	if err != nil {
		return def, err
	}
	if fellBack {
		m.logger.Debug("Индекс %s пуст или не разбирается, начинаем с документа по умолчанию", p)
	}
	m.metrics.IndexMerged(kind, fellBack)
	return doc, nil
}

func (m *Merger) save(rel string, doc interface{}) error {
	if err := store.WriteJSON(m.store, m.path(rel), doc); err != nil {
		return err
	}
	m.metrics.FileWritten("index")
	return nil
}

// MergeItemTexture добавляет или заменяет запись "<ns>:<id>" в item_texture.json.
// Пустой texture означает путь по соглашению.
func (m *Merger) MergeItemTexture(id, texture string) error {
	if texture == "" {
		texture = DefaultItemTexturePath(id)
	}

	doc, err := load(m, KindItemTexture, ItemTexturePath, NewItemTextureAtlas(m.namespace))
	if err != nil {
		return err
	}
	if doc.TextureName == "" {
		doc.TextureName = ItemAtlasName
	}
	if doc.ResourcePackName == "" {
		doc.ResourcePackName = m.namespace
	}
	if doc.TextureData == nil {
		doc.TextureData = make(map[string]TextureEntry)
	}

	name := addon.Identifier(m.namespace, id)
	doc.TextureData[name] = TextureEntry{Textures: texture}
	m.logger.Trace("item_texture: %s -> %s", name, texture)
	return m.save(ItemTexturePath, doc)
}

// MergeTerrainTexture добавляет или заменяет запись в terrain_texture.json
func (m *Merger) MergeTerrainTexture(id, texture string) error {
	if texture == "" {
		texture = DefaultBlockTexturePath(id)
	}

	doc, err := load(m, KindTerrainTexture, TerrainTexturePath, NewTerrainTextureAtlas(m.namespace))
	if err != nil {
		return err
	}
	if doc.TextureName == "" {
		doc.TextureName = TerrainAtlasName
	}
	if doc.ResourcePackName == "" {
		doc.ResourcePackName = m.namespace
	}
	if doc.TextureData == nil {
		doc.TextureData = make(map[string]TextureEntry)
	}

	name := addon.Identifier(m.namespace, id)
	doc.TextureData[name] = TextureEntry{Textures: texture}
	m.logger.Trace("terrain_texture: %s -> %s", name, texture)
	return m.save(TerrainTexturePath, doc)
}

// MergeBlockSound добавляет или заменяет запись блока в blocks.json.
// Поле textures ссылается на запись terrain-атласа с тем же идентификатором.
func (m *Merger) MergeBlockSound(id string, sound addon.BlockSound) error {
	doc, err := load(m, KindBlockSound, BlockSoundPath, NewBlockSoundIndex())
	if err != nil {
		return err
	}
	if doc.Entries == nil {
		doc.Entries = make(map[string]BlockSoundEntry)
	}

	name := addon.Identifier(m.namespace, id)
	doc.Entries[name] = BlockSoundEntry{Textures: name, Sound: string(sound)}
	m.logger.Trace("blocks.json: %s sound=%s", name, sound)
	return m.save(BlockSoundPath, doc)
}

// ReadItemTextures читает текущий атлас предметов (для отчётов и тестов)
func (m *Merger) ReadItemTextures() (ItemTextureAtlas, error) {
	doc, _, err := store.ReadJSONOrDefault(m.store, m.path(ItemTexturePath), NewItemTextureAtlas(m.namespace))
	return doc, err
}

// ReadTerrainTextures читает текущий атлас блоков
func (m *Merger) ReadTerrainTextures() (TerrainTextureAtlas, error) {
	doc, _, err := store.ReadJSONOrDefault(m.store, m.path(TerrainTexturePath), NewTerrainTextureAtlas(m.namespace))
	return doc, err
}

// ReadBlockSounds читает текущий blocks.json
func (m *Merger) ReadBlockSounds() (BlockSoundIndex, error) {
	doc, _, err := store.ReadJSONOrDefault(m.store, m.path(BlockSoundPath), NewBlockSoundIndex())
	return doc, err
}
