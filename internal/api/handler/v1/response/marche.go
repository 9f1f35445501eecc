package response

import (
	"github.com/marchemgmt/marche-api/internal/domain"
	"github.com/marchemgmt/marche-api/internal/payment"
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// RejectionResponse reports why a submission or payment attempt was turned
// away. Rendered with HTTP 422.
type RejectionResponse struct {
	Accepted bool     `json:"accepted"`
	Reasons  []string `json:"reasons"`
}

type AcceptanceResponse struct {
	Acceptable bool     `json:"acceptable"`
	Reasons    []string `json:"reasons,omitempty"`
}

type SubmissionResponse struct {
	Application domain.Application `json:"application"`
	Duplicate   bool               `json:"duplicate"`
}

type QuoteResponse struct {
	domain.PriceResult
}

type PaymentIntentResponse struct {
	Intent payment.Intent     `json:"intent"`
	Price  domain.PriceResult `json:"price"`
}
