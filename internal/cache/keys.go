package cache

import "strings"

// Delimiter joins cache key segments. Prefix-based Clear calls rely on
// every caller building keys through this package, so individual reads
// and bulk invalidation stay composable.
const Delimiter = ":"

const (
	locationsKey      = "locations"
	catalogSegment    = "catalog"
	categoriesSegment = "categories"
)

// Key joins segments into a canonical cache key.
func Key(segments ...string) string {
	return strings.Join(segments, Delimiter)
}

// LocationsKey is the cache key for the active-locations listing.
func LocationsKey() string {
	return locationsKey
}

// CatalogKey is the cache key for a location's grouped menu.
func CatalogKey(locationID string) string {
	return Key(catalogSegment, locationID)
}

// CategoriesKey is the cache key for a location's category counts.
func CategoriesKey(locationID string) string {
	return Key(categoriesSegment, locationID)
}

// CatalogPrefix covers every cached catalog view, for invalidation.
func CatalogPrefix() string {
	return catalogSegment + Delimiter
}

// CategoriesPrefix covers every cached categories view, for invalidation.
func CategoriesPrefix() string {
	return categoriesSegment + Delimiter
}
