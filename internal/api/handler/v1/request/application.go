package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/marchemgmt/marche-api/internal/domain"
)

var errEmptyFields = errors.New("fields must not be empty")

// SubmitApplicationRequest carries the raw form payload. Field values may be
// scalars or arrays; array values are normalized to their first element
// during processing.
type SubmitApplicationRequest struct {
	Fields domain.FieldMap `json:"fields"`
}

func (req *SubmitApplicationRequest) Validate() error {
	if len(req.Fields) == 0 {
		return errEmptyFields
	}

	return nil
}

// QuoteRequest prices a payload without storing anything.
type QuoteRequest struct {
	Fields domain.FieldMap `json:"fields"`
}

func (req *QuoteRequest) Validate() error {
	if len(req.Fields) == 0 {
		return errEmptyFields
	}

	return nil
}

// CheckAcceptanceRequest asks whether a submission with these selections
// would be admitted right now.
type CheckAcceptanceRequest struct {
	DateID           uint           `json:"date_id"`
	AreaName         string         `json:"area_name"`
	RentalQuantities map[string]int `json:"rental_quantities"`
}

func (req *CheckAcceptanceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DateID, validation.Required),
	)
}

// CreatePaymentIntentRequest opens a provider payment for the payload's
// computed total.
type CreatePaymentIntentRequest struct {
	Fields domain.FieldMap `json:"fields"`
}

func (req *CreatePaymentIntentRequest) Validate() error {
	if len(req.Fields) == 0 {
		return errEmptyFields
	}

	return nil
}
