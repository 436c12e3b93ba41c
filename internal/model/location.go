package model

// Address holds the optional street address of a location.
type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Location is an active restaurant location.
type Location struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  Address `json:"address"`
	Timezone string  `json:"timezone"`
	Status   string  `json:"status"`
}

// LocationList is the response shape for the locations listing.
type LocationList struct {
	Locations []Location `json:"locations"`
}
