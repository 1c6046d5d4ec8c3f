package addon

import (
	"fmt"
	"strings"
)

// DefaultMaxStackSize размер стака по умолчанию
const DefaultMaxStackSize = 64

// Item описание пользовательского предмета.
// Заполняется цепочкой сеттеров, регистрируется в генераторе один раз
// и после регистрации не меняется.
type Item struct {
	ID           string
	DisplayName  string
	Texture      string // путь к текстуре; пусто => textures/items/<id>
	Category     CreativeCategory
	MaxStackSize int
	Food         bool
	Nutrition    int // учитывается только при Food
	Recipe       Recipe
}

// NewItem создаёт предмет со значениями по умолчанию
func NewItem(id string) *Item {
	return &Item{
		ID:           id,
		DisplayName:  "Placeholder",
		Category:     CategoryConstruction,
		MaxStackSize: DefaultMaxStackSize,
	}
}

func (i *Item) SetID(id string) *Item {
	i.ID = id
	if i.Recipe != nil {
		i.Recipe.bind(id)
	}
	return i
}

func (i *Item) SetDisplayName(name string) *Item {
	i.DisplayName = name
	return i
}

// SetTexture переопределяет путь к текстуре внутри resource pack
func (i *Item) SetTexture(path string) *Item {
	i.Texture = path
	return i
}

func (i *Item) SetCategory(category CreativeCategory) *Item {
	i.Category = category
	return i
}

func (i *Item) SetMaxStackSize(size int) *Item {
	i.MaxStackSize = size
	return i
}

// SetFood делает предмет съедобным с указанной питательностью
func (i *Item) SetFood(nutrition int) *Item {
	i.Food = true
	i.Nutrition = nutrition
	return i
}

// SetRecipe прикрепляет рецепт и проставляет в нём обратную ссылку на предмет
func (i *Item) SetRecipe(r Recipe) *Item {
	i.Recipe = r
	if r != nil {
		r.bind(i.ID)
	}
	return i
}

// Validate проверяет инварианты предмета и его рецепта
func (i *Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidItem)
	}
	if !i.Category.Valid() {
		return fmt.Errorf("%w: %s: unknown category %q", ErrInvalidItem, i.ID, i.Category)
	}
	if i.MaxStackSize < 1 {
		return fmt.Errorf("%w: %s: max stack size must be positive, got %d", ErrInvalidItem, i.ID, i.MaxStackSize)
	}
	if i.Food && i.Nutrition < 0 {
		return fmt.Errorf("%w: %s: nutrition must not be negative", ErrInvalidItem, i.ID)
	}
	if i.Recipe != nil {
		if err := i.Recipe.Validate(); err != nil {
			return fmt.Errorf("%s: %w", i.ID, err)
		}
	}
	return nil
}

// TexturePath возвращает путь к текстуре с учётом переопределения
func (i *Item) TexturePath() string {
	if i.Texture != "" {
		return i.Texture
	}
	return "textures/items/" + i.ID
}
