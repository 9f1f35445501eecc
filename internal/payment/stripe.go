// Package payment wraps the Stripe client behind a small gateway interface
// so services stay testable without network access.
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"

	"github.com/marchemgmt/marche-api/internal/config"
	"github.com/marchemgmt/marche-api/internal/domain"
)

// Intent is the subset of a created payment intent callers need to finish
// the checkout from the browser.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type StripeGateway struct {
	currency string
}

func NewStripeGateway(conf *config.StripeConfig) *StripeGateway {
	stripe.Key = conf.SecretKey

	return &StripeGateway{
		currency: conf.Currency,
	}
}

// CreateIntent opens a payment intent for the given parameters. The currency
// from the parameters wins; the configured currency is the fallback.
func (g *StripeGateway) CreateIntent(ctx context.Context, p domain.PaymentParams) (Intent, error) {
	currency := p.Currency
	if currency == "" {
		currency = g.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(p.Amount),
		Currency:    stripe.String(currency),
		Description: stripe.String(p.Description),
	}
	params.Context = ctx

	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("paymentintent.New -> %w", err)
	}

	return Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
