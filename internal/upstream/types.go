package upstream

// Catalog object kinds returned by the commerce API.
const (
	ObjectTypeItem      = "ITEM"
	ObjectTypeCategory  = "CATEGORY"
	ObjectTypeImage     = "IMAGE"
	ObjectTypeVariation = "ITEM_VARIATION"
)

// CategoryTypeRegular marks a product category. Menu-grouping categories
// share the same ID namespace but carry a different category_type.
const CategoryTypeRegular = "REGULAR_CATEGORY"

// LocationStatusActive marks a location that is open for business.
const LocationStatusActive = "ACTIVE"

// Money is an amount in minor currency units (cents).
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// ItemData is the payload of an ITEM object. CategoryID and ImageIDs are
// references into the related-objects collection; they are not guaranteed
// to resolve.
type ItemData struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"category_id,omitempty"`
	ImageIDs    []string        `json:"image_ids,omitempty"`
	Variations  []CatalogObject `json:"variations,omitempty"`
}

// CategoryData is the payload of a CATEGORY object. An empty CategoryType
// is treated as the regular (product) kind.
type CategoryData struct {
	Name         string `json:"name"`
	CategoryType string `json:"category_type,omitempty"`
}

// ImageData is the payload of an IMAGE object.
type ImageData struct {
	URL string `json:"url"`
}

// VariationData is the payload of an ITEM_VARIATION object.
type VariationData struct {
	ItemID     string `json:"item_id,omitempty"`
	Name       string `json:"name"`
	PriceMoney *Money `json:"price_money,omitempty"`
}

// CatalogObject is the normalized tagged union the commerce API returns.
// Exactly one data arm matching Type is populated.
type CatalogObject struct {
	Type                  string         `json:"type"`
	ID                    string         `json:"id"`
	PresentAtAllLocations bool           `json:"present_at_all_locations,omitempty"`
	PresentAtLocationIDs  []string       `json:"present_at_location_ids,omitempty"`
	ItemData              *ItemData      `json:"item_data,omitempty"`
	CategoryData          *CategoryData  `json:"category_data,omitempty"`
	ImageData             *ImageData     `json:"image_data,omitempty"`
	ItemVariationData     *VariationData `json:"item_variation_data,omitempty"`
}

// Address is the upstream location address; every field is optional.
type Address struct {
	AddressLine1                 string `json:"address_line_1,omitempty"`
	AddressLine2                 string `json:"address_line_2,omitempty"`
	Locality                     string `json:"locality,omitempty"`
	AdministrativeDistrictLevel1 string `json:"administrative_district_level_1,omitempty"`
	PostalCode                   string `json:"postal_code,omitempty"`
	Country                      string `json:"country,omitempty"`
}

// Location is the upstream location record.
type Location struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  *Address `json:"address,omitempty"`
	Timezone string   `json:"timezone,omitempty"`
	Status   string   `json:"status"`
}

// SearchPage is one page of a catalog search. RelatedObjects holds the
// referenced categories and images for the objects on this page; a
// reference may resolve against a different page than its item.
type SearchPage struct {
	Objects        []CatalogObject `json:"objects,omitempty"`
	RelatedObjects []CatalogObject `json:"related_objects,omitempty"`
	Cursor         string          `json:"cursor,omitempty"`
}

type listLocationsResponse struct {
	Locations []Location `json:"locations"`
}

type searchCatalogRequest struct {
	ObjectTypes           []string `json:"object_types"`
	IncludeRelatedObjects bool     `json:"include_related_objects"`
	Cursor                string   `json:"cursor,omitempty"`
}
