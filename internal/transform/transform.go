// Package transform holds the pure catalog transformation functions:
// location filtering, reference resolution, price formatting and the
// grouped/counted menu views. Nothing here performs I/O; irregular data
// resolves to sentinels instead of errors.
package transform

import (
	"log"
	"slices"
	"sort"

	"menuproxy-api/internal/model"
	"menuproxy-api/internal/upstream"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AvailableAt reports whether an object is sold at the given location.
// Location IDs match exactly; there is no partial or case-insensitive
// matching.
func AvailableAt(obj upstream.CatalogObject, locationID string) bool {
	if obj.PresentAtAllLocations {
		return true
	}
	return slices.Contains(obj.PresentAtLocationIDs, locationID)
}

// FilterByLocation returns the objects available at the given location,
// preserving input order.
func FilterByLocation(objects []upstream.CatalogObject, locationID string) []upstream.CatalogObject {
	filtered := make([]upstream.CatalogObject, 0, len(objects))
	for _, obj := range objects {
		if AvailableAt(obj, locationID) {
			filtered = append(filtered, obj)
		}
	}
	return filtered
}

// BuildMenuItem flattens one catalog item, resolving its category, image
// and variation prices through the index.
func BuildMenuItem(obj upstream.CatalogObject, idx *Index) model.MenuItem {
	item := model.MenuItem{
		ID:         obj.ID,
		Category:   UncategorizedName,
		Variations: []model.MenuItemVariation{},
	}

	data := obj.ItemData
	if data == nil {
		return item
	}

	item.Name = data.Name
	item.Description = data.Description
	item.Category = idx.CategoryName(data.CategoryID)
	item.ImageURL = idx.ImageURL(data.ImageIDs)

	for _, v := range data.Variations {
		if v.ItemVariationData == nil {
			continue
		}
		var cents int64
		if v.ItemVariationData.PriceMoney != nil {
			cents = v.ItemVariationData.PriceMoney.Amount
		}
		item.Variations = append(item.Variations, model.MenuItemVariation{
			ID:             v.ID,
			Name:           v.ItemVariationData.Name,
			PriceCents:     cents,
			Price:          MajorUnits(cents),
			PriceFormatted: FormatPrice(cents),
		})
	}

	return item
}

// GroupByCategory builds the category-grouped menu from location-filtered
// items. Items are grouped by resolved display name, so two category IDs
// sharing a name merge into one group. Groups are sorted by name with a
// locale-aware comparison; within a group, items keep their upstream
// order.
func GroupByCategory(items []upstream.CatalogObject, idx *Index) []model.CategoryGroup {
	grouped := make(map[string][]model.MenuItem)
	var names []string

	for _, obj := range items {
		menuItem := BuildMenuItem(obj, idx)
		if _, ok := grouped[menuItem.Category]; !ok {
			names = append(names, menuItem.Category)
		}
		grouped[menuItem.Category] = append(grouped[menuItem.Category], menuItem)
	}

	collator := newCollator()
	sort.SliceStable(names, func(i, j int) bool {
		return collator.CompareString(names[i], names[j]) < 0
	})

	groups := make([]model.CategoryGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, model.CategoryGroup{
			Category:   name,
			CategoryID: idx.CategoryID(name),
			Items:      grouped[name],
		})
	}
	return groups
}

// CategoriesWithCounts derives per-category item counts from the
// location-filtered item set. Only categories referenced by at least one
// item appear; counts never come from upstream category metadata. A
// reference the related objects do not resolve keeps its ID and gets the
// Unknown Category name with a warning in the log.
func CategoriesWithCounts(items []upstream.CatalogObject, idx *Index) []model.CategoryCount {
	counts := make(map[string]int)
	var order []string

	for _, obj := range items {
		if obj.ItemData == nil || obj.ItemData.CategoryID == "" {
			continue
		}
		id := obj.ItemData.CategoryID
		if _, ok := counts[id]; !ok {
			order = append(order, id)
		}
		counts[id]++
	}

	categories := make([]model.CategoryCount, 0, len(order))
	for _, id := range order {
		name, ok := idx.LookupCategoryName(id)
		if !ok {
			log.Printf("[Transform] Warning: no category object for referenced id %q", id)
			name = UnknownCategoryName
		}
		categories = append(categories, model.CategoryCount{
			ID:        id,
			Name:      name,
			ItemCount: counts[id],
		})
	}

	collator := newCollator()
	sort.SliceStable(categories, func(i, j int) bool {
		return collator.CompareString(categories[i].Name, categories[j].Name) < 0
	})

	return categories
}

// newCollator returns a fresh collator per call; collators carry internal
// buffers and are not safe for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}
