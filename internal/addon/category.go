package addon

import "fmt"

// CreativeCategory вкладка творческого инвентаря, в которую попадает предмет или блок
type CreativeCategory string

const (
	CategoryConstruction CreativeCategory = "Construction"
	CategoryEquipment    CreativeCategory = "Equipment"
	CategoryItems        CreativeCategory = "Items"
	CategoryNature       CreativeCategory = "Nature"
)

// Valid проверяет, что категория одна из четырёх известных
func (c CreativeCategory) Valid() bool {
	switch c {
	case CategoryConstruction, CategoryEquipment, CategoryItems, CategoryNature:
		return true
	}
	return false
}

// ParseCategory разбирает категорию; пустая строка даёт Construction
func ParseCategory(s string) (CreativeCategory, error) {
	if s == "" {
		return CategoryConstruction, nil
	}
	c := CreativeCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown creative category %q", s)
	}
	return c, nil
}

// RenderMethod способ отрисовки материала блока
type RenderMethod string

const (
	RenderBlend     RenderMethod = "blend"
	RenderOpaque    RenderMethod = "opaque"
	RenderAlphaTest RenderMethod = "alpha_test"
)

// Valid проверяет, что метод известен движку
func (r RenderMethod) Valid() bool {
	switch r {
	case RenderBlend, RenderOpaque, RenderAlphaTest:
		return true
	}
	return false
}

// ParseRenderMethod разбирает метод отрисовки; пустая строка даёт opaque
func ParseRenderMethod(s string) (RenderMethod, error) {
	if s == "" {
		return RenderOpaque, nil
	}
	r := RenderMethod(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown render method %q", s)
	}
	return r, nil
}
