package domain

import "time"

type Product struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Category    *Category          `json:"category,omitempty"`
	Attributes  []ProductAttribute `json:"attributes,omitempty"`
	Prices      []Price            `json:"prices,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ProductAttribute binds a concrete value to one of the product's
// category attributes.
type ProductAttribute struct {
	Attribute Attribute `json:"attribute"`
	Value     string    `json:"value"`
}
