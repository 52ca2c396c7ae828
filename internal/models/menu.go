package models

import "github.com/shopspring/decimal"

// MenuSection is the top-level menu grouping
type MenuSection string

const (
	SectionRegular  MenuSection = "Regular"
	SectionCatering MenuSection = "Catering"
)

// Category is the cuisine-style grouping within a section
type Category string

const (
	CategoryAppetizers     Category = "Appetizers"
	CategorySalads         Category = "Salads"
	CategorySoups          Category = "Soups"
	CategoryPasta          Category = "Pasta"
	CategoryBakedPasta     Category = "Baked Pasta"
	CategoryVegetables     Category = "Sautéed Vegetables"
	CategoryEntrees        Category = "Entrees"
	CategoryParmigiana     Category = "Parmigiana Platters"
	CategoryWraps          Category = "Wraps"
	CategoryHeroes         Category = "Heroes"
	CategoryPizza          Category = "Pizza"
	CategorySpecialtyPizza Category = "Specialty Pies"
	CategoryCalzones       Category = "Calzones & Rolls"
	CategorySides          Category = "Side Orders"
	CategoryDesserts       Category = "Desserts"
	CategoryBeverages      Category = "Beverages"
)

// PriceVariant is a named price option for one menu item (size, tray size).
// The first variant in an item's list is the implicit default.
type PriceVariant struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// MenuItem is an immutable catalog entry. The base price is charged when the
// item has no variants; otherwise a variant price applies.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Variants    []PriceVariant  `json:"variants,omitempty"`
	Category    Category        `json:"category"`
	Section     MenuSection     `json:"section"`
	Image       string          `json:"image"`
	Popular     bool            `json:"popular,omitempty"`
	Spicy       bool            `json:"spicy,omitempty"`
	Vegetarian  bool            `json:"vegetarian,omitempty"`
}
