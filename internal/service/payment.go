package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/marchemgmt/marche-api/internal/domain"
	"github.com/marchemgmt/marche-api/internal/payment"
)

var ErrPaymentNotSupported = errors.New("form does not accept credit card payment")

type PaymentGateway interface {
	CreateIntent(ctx context.Context, p domain.PaymentParams) (payment.Intent, error)
}

// PaymentService opens payment intents for priced submissions.
type PaymentService struct {
	catalog PricingCatalog
	pricing *PricingService
	gateway PaymentGateway
}

func NewPaymentService(catalog PricingCatalog, pricing *PricingService, gateway PaymentGateway) *PaymentService {
	return &PaymentService{
		catalog: catalog,
		pricing: pricing,
		gateway: gateway,
	}
}

// CreateIntent prices the submission and opens a provider payment intent for
// the total. Pricing failures reject rather than opening a zero intent.
func (s *PaymentService) CreateIntent(ctx context.Context, formID uint, fields domain.FieldMap) (payment.Intent, domain.PriceResult, error) {
	form, err := s.catalog.FindFormByID(ctx, formID)
	if err != nil {
		return payment.Intent{}, domain.PriceResult{}, fmt.Errorf("s.catalog.FindFormByID -> %w", err)
	}

	if !form.PaymentMethod.AllowsCreditCard() {
		return payment.Intent{}, domain.PriceResult{}, ErrPaymentNotSupported
	}

	params, result := s.pricing.PaymentParams(ctx, formID, fields)
	if !result.Success {
		return payment.Intent{}, result, &RejectionError{Reasons: result.Errors}
	}

	intent, err := s.gateway.CreateIntent(ctx, params)
	if err != nil {
		return payment.Intent{}, result, fmt.Errorf("s.gateway.CreateIntent -> %w", err)
	}

	return intent, result, nil
}
