package emit

import (
	"fmt"

	"github.com/annel0/addon-builder/internal/addon"
)

// RecipeDocument документ recipes/<id>.json. Заполнено ровно одно из тел.
type RecipeDocument struct {
	FormatVersion string         `json:"format_version"`
	Shaped        *ShapedBody    `json:"minecraft:recipe_shaped,omitempty"`
	Shapeless     *ShapelessBody `json:"minecraft:recipe_shapeless,omitempty"`
}

type RecipeDescription struct {
	Identifier string `json:"identifier"`
}

type ItemRef struct {
	Item string `json:"item"`
}

type RecipeIngredient struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

type RecipeResult struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

type ShapedBody struct {
	Description RecipeDescription  `json:"description"`
	Tags        []string           `json:"tags"`
	Pattern     []string           `json:"pattern"`
	Key         map[string]ItemRef `json:"key"`
	Result      RecipeResult       `json:"result"`
}

type ShapelessBody struct {
	Description RecipeDescription  `json:"description"`
	Tags        []string           `json:"tags"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	Result      RecipeResult       `json:"result"`
}

// recipeOwner идентификатор владельца: обратная ссылка рецепта, а если
// она не проставлена (рецепт присвоен полем), id сущности.
func recipeOwner(r addon.Recipe, entityID string) string {
	if id := r.ResultID(); id != "" {
		return id
	}
	return entityID
}

// NewRecipeDocument строит документ рецепта, выбирая тело по виду рецепта
func NewRecipeDocument(namespace string, r addon.Recipe, entityID string) (RecipeDocument, error) {
	if err := r.Validate(); err != nil {
		return RecipeDocument{}, err
	}

	owner := addon.Identifier(namespace, recipeOwner(r, entityID))
	description := RecipeDescription{Identifier: owner}
	result := RecipeResult{Item: owner, Count: r.ResultCount()}
	doc := RecipeDocument{FormatVersion: FormatVersion}

	switch r.Kind() {
	case addon.RecipeShaped:
		shaped, ok := r.(*addon.ShapedRecipe)
		if !ok {
			return RecipeDocument{}, fmt.Errorf("%w: shaped kind on %T", addon.ErrInvalidRecipe, r)
		}
		key := make(map[string]ItemRef)
		for symbol, item := range shaped.Key() {
			key[string(symbol)] = ItemRef{Item: item}
		}
		doc.Shaped = &ShapedBody{
			Description: description,
			Tags:        shaped.Tags(),
			Pattern:     shaped.Pattern(),
			Key:         key,
			Result:      result,
		}

	case addon.RecipeShapeless:
		shapeless, ok := r.(*addon.ShapelessRecipe)
		if !ok {
			return RecipeDocument{}, fmt.Errorf("%w: shapeless kind on %T", addon.ErrInvalidRecipe, r)
		}
		ingredients := make([]RecipeIngredient, 0, len(shapeless.Ingredients()))
		for _, ing := range shapeless.Ingredients() {
			ingredients = append(ingredients, RecipeIngredient{Item: ing.Item, Count: ing.Count})
		}
		doc.Shapeless = &ShapelessBody{
			Description: description,
			Tags:        shapeless.Tags(),
			Ingredients: ingredients,
			Result:      result,
		}

	default:
		return RecipeDocument{}, fmt.Errorf("%w: unknown recipe kind %v", addon.ErrInvalidRecipe, r.Kind())
	}

	return doc, nil
}
