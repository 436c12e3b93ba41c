package transform

import (
	"menuproxy-api/internal/upstream"
)

// Sentinel values used when a reference cannot be resolved. A missing
// category is a normal data state upstream, not an error.
const (
	// UncategorizedName is the display name for items without a
	// resolvable category reference.
	UncategorizedName = "Uncategorized"

	// UncategorizedID is the group ID used when no category object
	// matches a group's display name.
	UncategorizedID = "uncategorized"

	// UnknownCategoryName is the display name for a counted category ID
	// the related objects never resolve.
	UnknownCategoryName = "Unknown Category"
)

// Index holds ID-keyed lookups over a related-objects collection so item
// references resolve in constant time instead of rescanning the list per
// item.
//
// The related-objects collection can contain the same category ID at
// different categorization levels (product category vs. menu grouping).
// Only regular-kind categories are indexed, and duplicates keep the first
// occurrence, matching first-match-wins resolution over the raw list.
type Index struct {
	categoryNames map[string]string // category ID -> display name
	categoryIDs   map[string]string // display name -> representative ID
	imageURLs     map[string]string // image ID -> URL
}

// NewIndex builds the lookup tables from a related-objects collection.
func NewIndex(related []upstream.CatalogObject) *Index {
	idx := &Index{
		categoryNames: make(map[string]string),
		categoryIDs:   make(map[string]string),
		imageURLs:     make(map[string]string),
	}

	for _, obj := range related {
		switch obj.Type {
		case upstream.ObjectTypeCategory:
			if obj.CategoryData == nil || !isRegularCategory(obj.CategoryData) {
				continue
			}
			if _, ok := idx.categoryNames[obj.ID]; !ok {
				idx.categoryNames[obj.ID] = obj.CategoryData.Name
			}
			if _, ok := idx.categoryIDs[obj.CategoryData.Name]; !ok {
				idx.categoryIDs[obj.CategoryData.Name] = obj.ID
			}
		case upstream.ObjectTypeImage:
			if obj.ImageData == nil {
				continue
			}
			if _, ok := idx.imageURLs[obj.ID]; !ok {
				idx.imageURLs[obj.ID] = obj.ImageData.URL
			}
		}
	}

	return idx
}

// isRegularCategory reports whether a category is a product category.
// An absent category_type defaults to the product kind.
func isRegularCategory(data *upstream.CategoryData) bool {
	return data.CategoryType == "" || data.CategoryType == upstream.CategoryTypeRegular
}

// CategoryName resolves a category reference to its display name. An
// empty reference resolves to the Uncategorized sentinel without a
// lookup; so does an ID the related objects do not contain.
func (idx *Index) CategoryName(categoryID string) string {
	if categoryID == "" {
		return UncategorizedName
	}
	if name, ok := idx.categoryNames[categoryID]; ok {
		return name
	}
	return UncategorizedName
}

// LookupCategoryName reports the display name for a category ID and
// whether the related objects contained it.
func (idx *Index) LookupCategoryName(categoryID string) (string, bool) {
	name, ok := idx.categoryNames[categoryID]
	return name, ok
}

// CategoryID returns the representative category ID for a display name,
// or the uncategorized sentinel when no category object carries it.
func (idx *Index) CategoryID(name string) string {
	if id, ok := idx.categoryIDs[name]; ok {
		return id
	}
	return UncategorizedID
}

// ImageURL resolves an item's first image reference to its URL, or ""
// when the item has no image references or the ID does not resolve.
func (idx *Index) ImageURL(imageIDs []string) string {
	if len(imageIDs) == 0 {
		return ""
	}
	return idx.imageURLs[imageIDs[0]]
}
