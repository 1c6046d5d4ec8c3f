package addon

import (
	"fmt"
	"math"
	"strings"
)

// Block описание пользовательского блока
type Block struct {
	ID           string
	DisplayName  string
	Texture      string // пусто => textures/blocks/<id>
	Category     CreativeCategory
	Sound        BlockSound
	Hardness     float64 // секунд до разрушения
	Resistance   int     // сопротивление взрыву
	RenderMethod RenderMethod
	Recipe       Recipe
}

// NewBlock создаёт блок со значениями по умолчанию
func NewBlock(id string) *Block {
	return &Block{
		ID:           id,
		DisplayName:  "Placeholder",
		Category:     CategoryConstruction,
		Sound:        SoundStone,
		Hardness:     1.0,
		Resistance:   1,
		RenderMethod: RenderOpaque,
	}
}

func (b *Block) SetID(id string) *Block {
	b.ID = id
	if b.Recipe != nil {
		b.Recipe.bind(id)
	}
	return b
}

func (b *Block) SetDisplayName(name string) *Block {
	b.DisplayName = name
	return b
}

func (b *Block) SetTexture(path string) *Block {
	b.Texture = path
	return b
}

func (b *Block) SetCategory(category CreativeCategory) *Block {
	b.Category = category
	return b
}

func (b *Block) SetSound(sound BlockSound) *Block {
	b.Sound = sound
	return b
}

// SetHardness время добычи блока в секундах
func (b *Block) SetHardness(seconds float64) *Block {
	b.Hardness = seconds
	return b
}

func (b *Block) SetResistance(resistance int) *Block {
	b.Resistance = resistance
	return b
}

func (b *Block) SetRenderMethod(method RenderMethod) *Block {
	b.RenderMethod = method
	return b
}

// SetRecipe прикрепляет рецепт и проставляет обратную ссылку на блок
func (b *Block) SetRecipe(r Recipe) *Block {
	b.Recipe = r
	if r != nil {
		r.bind(b.ID)
	}
	return b
}

// Validate проверяет инварианты блока и его рецепта
func (b *Block) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidBlock)
	}
	if !b.Category.Valid() {
		return fmt.Errorf("%w: %s: unknown category %q", ErrInvalidBlock, b.ID, b.Category)
	}
	if !b.Sound.Valid() {
		return fmt.Errorf("%w: %s: unknown sound %q", ErrInvalidBlock, b.ID, b.Sound)
	}
	if !b.RenderMethod.Valid() {
		return fmt.Errorf("%w: %s: unknown render method %q", ErrInvalidBlock, b.ID, b.RenderMethod)
	}
	if b.Hardness < 0 || math.IsNaN(b.Hardness) || math.IsInf(b.Hardness, 0) {
		return fmt.Errorf("%w: %s: hardness must be a non-negative number", ErrInvalidBlock, b.ID)
	}
	if b.Resistance < 0 {
		return fmt.Errorf("%w: %s: resistance must not be negative", ErrInvalidBlock, b.ID)
	}
	if b.Recipe != nil {
		if err := b.Recipe.Validate(); err != nil {
			return fmt.Errorf("%s: %w", b.ID, err)
		}
	}
	return nil
}

// TexturePath возвращает путь к текстуре с учётом переопределения
func (b *Block) TexturePath() string {
	if b.Texture != "" {
		return b.Texture
	}
	return "textures/blocks/" + b.ID
}
