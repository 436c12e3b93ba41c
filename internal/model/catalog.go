package model

// MenuItemVariation is a purchasable variant of a menu item.
// Price and PriceFormatted are always derived from PriceCents;
// the minor-unit amount is the only source of truth.
type MenuItemVariation struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	PriceCents     int64   `json:"priceCents"`
	Price          float64 `json:"price"`
	PriceFormatted string  `json:"priceFormatted"`
}

// MenuItem is a fully denormalized catalog item: category and image
// references are resolved to their display values at build time.
type MenuItem struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Category    string              `json:"category"`
	ImageURL    string              `json:"imageUrl,omitempty"`
	Variations  []MenuItemVariation `json:"variations"`
}

// CategoryGroup holds the menu items sharing one resolved category name.
type CategoryGroup struct {
	Category   string     `json:"category"`
	CategoryID string     `json:"categoryId"`
	Items      []MenuItem `json:"items"`
}

// CategoryCount is a category summary for the categories listing.
type CategoryCount struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"itemCount"`
}

// Catalog is the full grouped menu for one location.
// Truncated reports that the upstream page ceiling cut aggregation short.
type Catalog struct {
	Categories []CategoryGroup `json:"categories"`
	Truncated  bool            `json:"truncated,omitempty"`
}

// CategoryList is the categories-with-counts view for one location.
type CategoryList struct {
	Categories []CategoryCount `json:"categories"`
	Truncated  bool            `json:"truncated,omitempty"`
}
