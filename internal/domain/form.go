package domain

import "time"

type FormType string

const (
	FormTypeMarche FormType = "marche"
	FormTypeStage  FormType = "stage"
)

// Label returns the customer-facing Japanese name of the form type.
func (t FormType) Label() string {
	if t == FormTypeStage {
		return "ステージ"
	}

	return "マルシェ"
}

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodBoth         PaymentMethod = "both"
)

func (m PaymentMethod) AllowsCreditCard() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodBoth
}

// Form is one configured registration form. ExternalFormID is the identifier
// used by the external form-rendering system and is the key submissions
// arrive under.
type Form struct {
	ID             uint          `json:"id"`
	ExternalFormID uint          `json:"external_form_id"`
	Name           string        `json:"name"`
	Type           FormType      `json:"type"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
