package addon

import "errors"

var (
	// ErrInvalidItem описание предмета не проходит проверку
	ErrInvalidItem = errors.New("invalid item")
	// ErrInvalidBlock описание блока не проходит проверку
	ErrInvalidBlock = errors.New("invalid block")
	// ErrInvalidRecipe рецепт некорректен (шаблон, ключи, ингредиенты)
	ErrInvalidRecipe = errors.New("invalid recipe")
)
