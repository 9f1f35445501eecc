package domain

import "time"

// AreaCharge is the booth portion of a price breakdown.
type AreaCharge struct {
	AreaID uint   `json:"area_id"`
	DateID uint   `json:"date_id"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
}

// RentalCharge is one priced rental line in a breakdown.
type RentalCharge struct {
	RentalID  uint   `json:"rental_id"`
	ItemName  string `json:"item_name"`
	FieldKey  string `json:"field_key"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
	LineTotal int    `json:"line_total"`
	Unit      string `json:"unit"`
}

type Breakdown struct {
	Area        *AreaCharge    `json:"area,omitempty"`
	Rental      []RentalCharge `json:"rental,omitempty"`
	RentalTotal int            `json:"rental_total"`
}

// PriceResult is the outcome of a price calculation. A non-empty Errors list
// means the submission must be rejected; TotalPrice still carries the
// best-effort total for diagnostic display.
type PriceResult struct {
	TotalPrice   int       `json:"total_price"`
	Breakdown    Breakdown `json:"breakdown"`
	Errors       []string  `json:"errors"`
	Warnings     []string  `json:"warnings"`
	Success      bool      `json:"success"`
	Currency     string    `json:"currency"`
	CalculatedAt time.Time `json:"calculated_at"`
}

// PaymentParams is what the payment collaborator receives. Amount is in the
// currency's base unit; JPY has no minor unit, so no conversion happens.
type PaymentParams struct {
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}

// Acceptance is the submission gate verdict. Reasons are field-attributable
// rejection messages, empty when OK.
type Acceptance struct {
	OK      bool     `json:"ok"`
	Reasons []string `json:"reasons"`
}
