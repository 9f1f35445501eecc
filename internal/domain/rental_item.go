package domain

import "time"

// RentalItem is an optional add-on good with quantity-bounded pricing.
// FieldKey identifies the form field that carries the ordered quantity
// ("rental-" + FieldKey).
type RentalItem struct {
	ID          uint      `json:"id"`
	FormID      uint      `json:"form_id"`
	ItemName    string    `json:"item_name"`
	FieldKey    string    `json:"field_key"`
	Price       int       `json:"price"`
	Unit        string    `json:"unit"`
	Description string    `json:"description"`
	MinQuantity int       `json:"min_quantity"`
	MaxQuantity int       `json:"max_quantity"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FieldName returns the full form field name for this item.
func (r RentalItem) FieldName() string {
	return RentalFieldPrefix + r.FieldKey
}

// QuantityInRange checks the ordered quantity against the item's bounds.
func (r RentalItem) QuantityInRange(qty int) bool {
	return qty >= r.MinQuantity && qty <= r.MaxQuantity
}
