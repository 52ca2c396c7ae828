package menu

import (
	"strings"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/shopspring/decimal"
)

// CategoryAll is the sentinel meaning "no category filter"
const CategoryAll models.Category = "All"

// Filter is the transient browsing state applied to the catalog
type Filter struct {
	Section    models.MenuSection
	Category   models.Category
	Query      string
	Vegetarian bool
	Spicy      bool
}

// Cleared returns the filter with search text and dietary flags reset.
// Section and category are deliberately kept.
func (f Filter) Cleared() Filter {
	f.Query = ""
	f.Vegetarian = false
	f.Spicy = false
	return f
}

// PricedItem pairs a visible catalog entry with its resolved selling price
type PricedItem struct {
	Item    models.MenuItem      `json:"item"`
	Price   decimal.Decimal      `json:"price"`
	Variant *models.PriceVariant `json:"variant,omitempty"`
}

// Visible applies the filter pipeline and resolves each surviving item's
// current price. Stages narrow in order: section, then search OR category,
// then the dietary flags. A non-empty search bypasses the category filter
// entirely: search always overrides category selection.
//
// selected maps item id to an explicitly chosen variant label; items without
// an entry fall back to their first variant.
func Visible(catalog []models.MenuItem, f Filter, selected map[string]string) []PricedItem {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]PricedItem, 0, len(catalog))
	for _, it := range catalog {
		if it.Section != f.Section {
			continue
		}
		if query != "" {
			if !strings.Contains(strings.ToLower(it.Name), query) &&
				!strings.Contains(strings.ToLower(it.Description), query) {
				continue
			}
		} else if f.Category != "" && f.Category != CategoryAll && it.Category != f.Category {
			continue
		}
		if f.Vegetarian && !it.Vegetarian {
			continue
		}
		if f.Spicy && !it.Spicy {
			continue
		}

		price, variant := ResolvePrice(it, selected[it.ID])
		out = append(out, PricedItem{Item: it, Price: price, Variant: variant})
	}
	return out
}

// Categories returns the category choices offered for a section: All first,
// then the distinct categories present among that section's items, in
// catalog order.
func Categories(catalog []models.MenuItem, section models.MenuSection) []models.Category {
	seen := make(map[models.Category]bool)
	out := []models.Category{CategoryAll}
	for _, it := range catalog {
		if it.Section != section || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return out
}

// ResolvePrice returns the current selling price for an item: the variant
// matching selectedLabel, else the item's first variant, else the base
// price. An unknown label falls back to the default variant.
func ResolvePrice(item models.MenuItem, selectedLabel string) (decimal.Decimal, *models.PriceVariant) {
	if len(item.Variants) == 0 {
		return item.Price, nil
	}
	if selectedLabel != "" {
		if variant, ok := FindVariant(item, selectedLabel); ok {
			return variant.Price, variant
		}
	}
	first := item.Variants[0]
	return first.Price, &first
}

// FindVariant looks up a variant of item by label
func FindVariant(item models.MenuItem, label string) (*models.PriceVariant, bool) {
	for i := range item.Variants {
		if item.Variants[i].Label == label {
			variant := item.Variants[i]
			return &variant, true
		}
	}
	return nil, false
}
