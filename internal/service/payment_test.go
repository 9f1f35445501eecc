package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchemgmt/marche-api/internal/domain"
	"github.com/marchemgmt/marche-api/internal/payment"
)

type fakeGateway struct {
	params domain.PaymentParams
	err    error
}

func (f *fakeGateway) CreateIntent(_ context.Context, p domain.PaymentParams) (payment.Intent, error) {
	f.params = p
	if f.err != nil {
		return payment.Intent{}, f.err
	}

	return payment.Intent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Amount:       p.Amount,
		Currency:     p.Currency,
	}, nil
}

func TestCreateIntent(t *testing.T) {
	catalog, form, date, area := seedCatalog(t)
	pricing := NewPricingService(catalog, newFakeAppStore())
	ctx := context.Background()

	t.Run("opens intent for priced submission", func(t *testing.T) {
		gateway := &fakeGateway{}
		svc := NewPaymentService(catalog, pricing, gateway)

		intent, result, err := svc.CreateIntent(ctx, form.ID, submissionFields(date.Label(), area.Name))
		require.NoError(t, err)
		assert.Equal(t, "pi_test", intent.ID)
		assert.Equal(t, int64(3000), intent.Amount)
		assert.Equal(t, 3000, result.TotalPrice)
		assert.Equal(t, "jpy", gateway.params.Currency)
		assert.Contains(t, gateway.params.Description, "山田太郎")
	})

	t.Run("pricing failure rejects without opening an intent", func(t *testing.T) {
		gateway := &fakeGateway{}
		svc := NewPaymentService(catalog, pricing, gateway)

		_, result, err := svc.CreateIntent(ctx, form.ID, submissionFields(date.Label(), "Zエリア"))

		var rejection *RejectionError
		require.ErrorAs(t, err, &rejection)
		assert.False(t, result.Success)
		assert.Empty(t, gateway.params.Currency, "gateway must not be called")
	})

	t.Run("bank transfer form refuses card intents", func(t *testing.T) {
		bankOnly, err := catalog.CreateForm(ctx, domain.Form{
			Name:          "銀行振込のみ",
			Type:          domain.FormTypeMarche,
			PaymentMethod: domain.PaymentMethodBankTransfer,
		})
		require.NoError(t, err)

		svc := NewPaymentService(catalog, pricing, &fakeGateway{})

		_, _, err = svc.CreateIntent(ctx, bankOnly.ID, submissionFields("", ""))
		assert.ErrorIs(t, err, ErrPaymentNotSupported)
	})
}
