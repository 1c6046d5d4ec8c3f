package addon

import (
	"fmt"
	"sort"
	"strings"
)

// RecipeKind дискриминант рецепта
type RecipeKind int

const (
	RecipeShaped RecipeKind = iota + 1
	RecipeShapeless
)

// String возвращает строковое представление вида рецепта
func (k RecipeKind) String() string {
	switch k {
	case RecipeShaped:
		return "shaped"
	case RecipeShapeless:
		return "shapeless"
	default:
		return "unknown"
	}
}

// DefaultRecipeTags верстак, на котором доступен рецепт по умолчанию
var DefaultRecipeTags = []string{"crafting_table"}

// Recipe рецепт крафта: ShapedRecipe или ShapelessRecipe.
// Идентификатор результата проставляется при привязке к предмету или блоку
// и является обратной ссылкой, рецепт предметом не владеет.
type Recipe interface {
	Kind() RecipeKind
	// ResultID идентификатор (без пространства имён) владельца рецепта
	ResultID() string
	ResultCount() int
	Tags() []string
	Validate() error
	bind(id string)
}

type recipeBase struct {
	resultID    string
	resultCount int
	tags        []string
}

func newRecipeBase() recipeBase {
	return recipeBase{resultCount: 1, tags: append([]string(nil), DefaultRecipeTags...)}
}

func (b *recipeBase) ResultID() string { return b.resultID }
func (b *recipeBase) ResultCount() int { return b.resultCount }
func (b *recipeBase) bind(id string) { b.resultID = id }
func (b *recipeBase) Tags() []string { return append([]string(nil), b.tags...) }
func (b *recipeBase) validateBase() error {
	if b.resultCount < 1 {
		return fmt.Errorf("%w: result count must be positive, got %d", ErrInvalidRecipe, b.resultCount)
	}
	if len(b.tags) == 0 {
		return fmt.Errorf("%w: at least one tag is required", ErrInvalidRecipe)
	}
	return nil
}

// ShapedRecipe рецепт с фиксированной раскладкой 1..3 x 1..3.
// Таблица ключей символ -> ингредиент задаётся вызывающим явно.
type ShapedRecipe struct {
	recipeBase
	pattern []string
	key     map[rune]string
}

// NewShapedRecipe создаёт рецепт по строкам шаблона ("##", " |")
func NewShapedRecipe(pattern ...string) *ShapedRecipe {
	return &ShapedRecipe{
		recipeBase: newRecipeBase(),
		pattern:    append([]string(nil), pattern...),
		key:        make(map[rune]string),
	}
}

func (r *ShapedRecipe) Kind() RecipeKind { return RecipeShaped }

// SetKey связывает символ шаблона с идентификатором ингредиента
func (r *ShapedRecipe) SetKey(symbol rune, itemID string) *ShapedRecipe {
	r.key[symbol] = itemID
	return r
}

func (r *ShapedRecipe) SetResultCount(count int) *ShapedRecipe {
	r.resultCount = count
	return r
}

func (r *ShapedRecipe) SetTags(tags ...string) *ShapedRecipe {
	r.tags = append([]string(nil), tags...)
	return r
}

// Pattern возвращает копию строк шаблона
func (r *ShapedRecipe) Pattern() []string {
	return append([]string(nil), r.pattern...)
}

// Key возвращает копию таблицы ключей
func (r *ShapedRecipe) Key() map[rune]string {
	out := make(map[rune]string, len(r.key))
	for k, v := range r.key {
		out[k] = v
	}
	return out
}

// Symbols возвращает символы таблицы ключей в отсортированном порядке
func (r *ShapedRecipe) Symbols() []rune {
	out := make([]rune, 0, len(r.key))
	for k := range r.key {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Validate проверяет размеры шаблона и соответствие символов таблице ключей
func (r *ShapedRecipe) Validate() error {
	if err := r.validateBase(); err != nil {
		return err
	}
	if len(r.pattern) == 0 || len(r.pattern) > 3 {
		return fmt.Errorf("%w: pattern must have 1-3 rows, got %d", ErrInvalidRecipe, len(r.pattern))
	}

	used := make(map[rune]bool)
	for i, row := range r.pattern {
		width := len([]rune(row))
		if width == 0 || width > 3 {
			return fmt.Errorf("%w: pattern row %d must have 1-3 symbols, got %q", ErrInvalidRecipe, i, row)
		}
		for _, symbol := range row {
			if symbol == ' ' {
				continue
			}
			if _, ok := r.key[symbol]; !ok {
				return fmt.Errorf("%w: symbol %q has no key entry", ErrInvalidRecipe, symbol)
			}
			used[symbol] = true
		}
	}

	for symbol, item := range r.key {
		if symbol == ' ' {
			return fmt.Errorf("%w: space cannot be a key symbol", ErrInvalidRecipe)
		}
		if strings.TrimSpace(item) == "" {
			return fmt.Errorf("%w: symbol %q maps to an empty item", ErrInvalidRecipe, symbol)
		}
		if !used[symbol] {
			return fmt.Errorf("%w: key symbol %q is not used in the pattern", ErrInvalidRecipe, symbol)
		}
	}
	return nil
}

// Ingredient ингредиент бесформенного рецепта
type Ingredient struct {
	Item  string
	Count int
}

// ShapelessRecipe рецепт без раскладки: упорядоченный список ингредиентов
type ShapelessRecipe struct {
	recipeBase
	ingredients []Ingredient
}

func NewShapelessRecipe() *ShapelessRecipe {
	return &ShapelessRecipe{recipeBase: newRecipeBase()}
}

func (r *ShapelessRecipe) Kind() RecipeKind { return RecipeShapeless }

// AddIngredient добавляет ингредиент в конец списка
func (r *ShapelessRecipe) AddIngredient(itemID string, count int) *ShapelessRecipe {
	r.ingredients = append(r.ingredients, Ingredient{Item: itemID, Count: count})
	return r
}

func (r *ShapelessRecipe) SetResultCount(count int) *ShapelessRecipe {
	r.resultCount = count
	return r
}

func (r *ShapelessRecipe) SetTags(tags ...string) *ShapelessRecipe {
	r.tags = append([]string(nil), tags...)
	return r
}

// Ingredients возвращает копию списка ингредиентов
func (r *ShapelessRecipe) Ingredients() []Ingredient {
	return append([]Ingredient(nil), r.ingredients...)
}

func (r *ShapelessRecipe) Validate() error {
	if err := r.validateBase(); err != nil {
		return err
	}
	if len(r.ingredients) == 0 {
		return fmt.Errorf("%w: shapeless recipe needs at least one ingredient", ErrInvalidRecipe)
	}
	for i, ing := range r.ingredients {
		if strings.TrimSpace(ing.Item) == "" {
			return fmt.Errorf("%w: ingredient %d has an empty item", ErrInvalidRecipe, i)
		}
		if ing.Count < 1 {
			return fmt.Errorf("%w: ingredient %s count must be positive, got %d", ErrInvalidRecipe, ing.Item, ing.Count)
		}
	}
	return nil
}
