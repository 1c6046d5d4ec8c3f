// Package emit записывает артефакты одной сущности: строку языкового
// файла, записи в общих индексах, документ рецепта и определение
// предмета или блока.
package emit

import (
	"fmt"

	"github.com/annel0/addon-builder/internal/addon"
	"github.com/annel0/addon-builder/internal/index"
	"github.com/annel0/addon-builder/internal/logging"
	"github.com/annel0/addon-builder/internal/metrics"
	"github.com/annel0/addon-builder/internal/store"
)

// DefaultLanguage язык, в который пишутся отображаемые имена
const DefaultLanguage = "en_US"

// Подкаталоги behaviour и resource pack
const (
	ItemsDir         = "items"
	BlocksDir        = "blocks"
	RecipesDir       = "recipes"
	TextsDir         = "texts"
	ItemTexturesDir  = "textures/items"
	BlockTexturesDir = "textures/blocks"
)

// Layout корни двух паков внутри хранилища
type Layout struct {
	BehaviourRoot string
	ResourceRoot  string
}

// NewLayout выводит корни паков из технического имени аддона
func NewLayout(technicalName string) Layout {
	return Layout{
		BehaviourRoot: technicalName + "_behaviour",
		ResourceRoot:  technicalName + "_resources",
	}
}

// Skeleton фиксированный набор каталогов, создаваемых при инициализации
func (l Layout) Skeleton() []string {
	return []string{
		store.Join(l.BehaviourRoot, ItemsDir),
		store.Join(l.BehaviourRoot, BlocksDir),
		store.Join(l.BehaviourRoot, RecipesDir),
		store.Join(l.ResourceRoot, ItemTexturesDir),
		store.Join(l.ResourceRoot, BlockTexturesDir),
		store.Join(l.ResourceRoot, TextsDir),
	}
}

// LangPath путь к языковому файлу
func (l Layout) LangPath() string {
	return store.Join(l.ResourceRoot, TextsDir, DefaultLanguage+".lang")
}

func (l Layout) ItemPath(id string) string {
	return store.Join(l.BehaviourRoot, ItemsDir, id+".json")
}

func (l Layout) BlockPath(id string) string {
	return store.Join(l.BehaviourRoot, BlocksDir, id+".json")
}

func (l Layout) RecipePath(id string) string {
	return store.Join(l.BehaviourRoot, RecipesDir, id+".json")
}

// Emitter пишет артефакты предметов и блоков
type Emitter struct {
	store     store.Store
	layout    Layout
	namespace string
	merger    *index.Merger
	logger    *logging.Logger
	metrics   *metrics.Collector
}

// NewEmitter создаёт эмиттер поверх хранилища
func NewEmitter(s store.Store, layout Layout, namespace string, logger *logging.Logger, m *metrics.Collector) *Emitter {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Emitter{
		store:     s,
		layout:    layout,
		namespace: namespace,
		merger:    index.NewMerger(s, layout.ResourceRoot, namespace, logger, m),
		logger:    logger,
		metrics:   m,
	}
}

// Merger возвращает сливатель индексов этого эмиттера
func (e *Emitter) Merger() *index.Merger {
	return e.merger
}

// writeLang добавляет или заменяет строку "<key>=<value>" в языковом файле
func (e *Emitter) writeLang(key, value string) error {
	e.logger.Debug("Запись '%s' в язык %s со значением '%s'", key, DefaultLanguage, value)
	if err := store.UpsertLine(e.store, e.layout.LangPath(), key, value); err != nil {
		return fmt.Errorf("ошибка записи языкового файла: %w", err)
	}
	e.metrics.FileWritten("lang")
	return nil
}

func (e *Emitter) writeDocument(kind, p string, doc interface{}) error {
	if err := store.WriteJSON(e.store, p, doc); err != nil {
		return err
	}
	e.metrics.FileWritten(kind)
	return nil
}

// EmitRecipe пишет recipes/<owner>.json целиком, без слияния
func (e *Emitter) EmitRecipe(r addon.Recipe, entityID string) error {
	doc, err := NewRecipeDocument(e.namespace, r, entityID)
	if err != nil {
		return err
	}
	owner := recipeOwner(r, entityID)
	e.logger.Debug("Рецепт %s (%s) для '%s'", owner, r.Kind(), entityID)
	return e.writeDocument("recipe", e.layout.RecipePath(owner), doc)
}

// EmitItem пишет все артефакты предмета: язык, атлас, рецепт, определение
func (e *Emitter) EmitItem(item *addon.Item) error {
	if item == nil {
		return fmt.Errorf("%w: nil item", addon.ErrInvalidItem)
	}
	if err := item.Validate(); err != nil {
		return err
	}
	e.logger.Debug("Создание предмета с id '%s'", item.ID)

	identifier := addon.Identifier(e.namespace, item.ID)
	if err := e.writeLang("item."+identifier+".name", item.DisplayName); err != nil {
		return err
	}
	if err := e.merger.MergeItemTexture(item.ID, item.Texture); err != nil {
		return fmt.Errorf("ошибка слияния item_texture: %w", err)
	}
	if item.Recipe != nil {
		if err := e.EmitRecipe(item.Recipe, item.ID); err != nil {
			return err
		}
	}

	e.logger.Debug("Не забудьте положить текстуру предмета '%s' в %s.png", item.ID, item.TexturePath())
	if err := e.writeDocument("item", e.layout.ItemPath(item.ID), NewItemDocument(e.namespace, item)); err != nil {
		return err
	}
	e.metrics.EntityEmitted("item")
	return nil
}

// EmitBlock пишет все артефакты блока: язык, terrain-атлас, blocks.json,
// рецепт, определение
func (e *Emitter) EmitBlock(block *addon.Block) error {
	if block == nil {
		return fmt.Errorf("%w: nil block", addon.ErrInvalidBlock)
	}
	if err := block.Validate(); err != nil {
		return err
	}
	e.logger.Debug("Создание блока с id '%s'", block.ID)

	identifier := addon.Identifier(e.namespace, block.ID)
	if err := e.writeLang("tile."+identifier+".name", block.DisplayName); err != nil {
		return err
	}
	if err := e.merger.MergeTerrainTexture(block.ID, block.Texture); err != nil {
		return fmt.Errorf("ошибка слияния terrain_texture: %w", err)
	}
	if err := e.merger.MergeBlockSound(block.ID, block.Sound); err != nil {
		return fmt.Errorf("ошибка слияния blocks.json: %w", err)
	}
	if block.Recipe != nil {
		if err := e.EmitRecipe(block.Recipe, block.ID); err != nil {
			return err
		}
	}

	e.logger.Debug("Не забудьте положить текстуру блока '%s' в %s.png", block.ID, block.TexturePath())
	if err := e.writeDocument("block", e.layout.BlockPath(block.ID), NewBlockDocument(e.namespace, block)); err != nil {
		return err
	}
	e.metrics.EntityEmitted("block")
	return nil
}
