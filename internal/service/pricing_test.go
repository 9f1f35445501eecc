package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchemgmt/marche-api/internal/domain"
)

func seedCatalog(t *testing.T) (*fakeCatalog, domain.Form, domain.EventDate, domain.Area) {
	t.Helper()

	catalog := newFakeCatalog()
	ctx := context.Background()

	form, err := catalog.CreateForm(ctx, domain.Form{
		ExternalFormID: 123,
		Name:           "冬のマルシェ",
		Type:           domain.FormTypeMarche,
		PaymentMethod:  domain.PaymentMethodCreditCard,
	})
	require.NoError(t, err)

	date, err := catalog.CreateDate(ctx, domain.EventDate{
		FormID:    form.ID,
		DateValue: time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	})
	require.NoError(t, err)

	area, err := catalog.CreateArea(ctx, domain.Area{
		FormID:               form.ID,
		DateID:               date.ID,
		Name:                 "Aエリア",
		Price:                3000,
		Capacity:             2,
		CapacityLimitEnabled: true,
		IsActive:             true,
	})
	require.NoError(t, err)

	_, err = catalog.CreateRentalItem(ctx, domain.RentalItem{
		FormID:      form.ID,
		ItemName:    "テーブル",
		FieldKey:    "table",
		Price:       500,
		Unit:        "台",
		MaxQuantity: 3,
		IsActive:    true,
	})
	require.NoError(t, err)

	return catalog, form, date, area
}

func submissionFields(dateLabel, areaName string) domain.FieldMap {
	fields := domain.FieldMap{
		domain.FieldCustomerName:  domain.NewScalar("山田太郎"),
		domain.FieldCustomerEmail: domain.NewScalar("taro@example.com"),
	}
	if dateLabel != "" {
		fields[domain.FieldDate] = domain.NewList(dateLabel)
	}
	if areaName != "" {
		fields[domain.FieldBoothLocation] = domain.NewList(areaName)
	}

	return fields
}

func TestAreaAvailability(t *testing.T) {
	catalog, form, date, area := seedCatalog(t)
	apps := newFakeAppStore()
	pricing := NewPricingService(catalog, apps)
	ctx := context.Background()

	t.Run("empty area", func(t *testing.T) {
		status, err := pricing.AreaAvailability(ctx, form.ID, date.ID, area.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, status.Available)
		assert.Equal(t, 0, status.Used)
		assert.False(t, status.IsFull)
	})

	t.Run("full at capacity", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			_, _, err := apps.Create(ctx, domain.Application{
				FormID:   form.ID,
				DateID:   date.ID,
				AreaName: area.Name,
				Fields:   domain.FieldMap{"n": domain.NewScalar(string(rune('a' + i)))},
			}, 0)
			require.NoError(t, err)
		}

		status, err := pricing.AreaAvailability(ctx, form.ID, date.ID, area.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, status.Used)
		assert.Equal(t, 0, status.Available)
		assert.True(t, status.IsFull)
	})

	t.Run("limit disabled reports unlimited", func(t *testing.T) {
		unlimited, err := catalog.CreateArea(ctx, domain.Area{
			FormID:   form.ID,
			DateID:   date.ID,
			Name:     "Bエリア",
			Capacity: 5,
			IsActive: true,
		})
		require.NoError(t, err)

		status, err := pricing.AreaAvailability(ctx, form.ID, date.ID, unlimited.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.UnlimitedAvailable, status.Available)
		assert.False(t, status.IsFull)
	})

	t.Run("unknown area", func(t *testing.T) {
		status, err := pricing.AreaAvailability(ctx, form.ID, date.ID, 9999)
		require.NoError(t, err)
		assert.True(t, status.CapacityLimitEnabled)
		assert.Equal(t, 0, status.Available)
	})
}

func TestCalculatePrice(t *testing.T) {
	catalog, form, date, area := seedCatalog(t)
	pricing := NewPricingService(catalog, newFakeAppStore())
	ctx := context.Background()

	t.Run("area plus rentals", func(t *testing.T) {
		fields := submissionFields(date.Label(), area.Name)
		fields["rental-table"] = domain.NewScalar("2")

		result := pricing.CalculatePrice(ctx, form.ID, fields)
		require.True(t, result.Success, "errors: %v", result.Errors)
		assert.Equal(t, 4000, result.TotalPrice)
		assert.Equal(t, "JPY", result.Currency)

		require.NotNil(t, result.Breakdown.Area)
		assert.Equal(t, area.ID, result.Breakdown.Area.AreaID)
		assert.Equal(t, 3000, result.Breakdown.Area.Price)

		require.Len(t, result.Breakdown.Rental, 1)
		assert.Equal(t, 2, result.Breakdown.Rental[0].Quantity)
		assert.Equal(t, 1000, result.Breakdown.Rental[0].LineTotal)
		assert.Equal(t, 1000, result.Breakdown.RentalTotal)
	})

	t.Run("no area selected warns but succeeds", func(t *testing.T) {
		result := pricing.CalculatePrice(ctx, form.ID, submissionFields(date.Label(), ""))
		assert.True(t, result.Success)
		assert.Equal(t, 0, result.TotalPrice)
		assert.Contains(t, result.Warnings, "no area selected")
	})

	t.Run("unknown area fails", func(t *testing.T) {
		result := pricing.CalculatePrice(ctx, form.ID, submissionFields(date.Label(), "Zエリア"))
		assert.False(t, result.Success)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], `area "Zエリア" not found`)
	})

	t.Run("unknown rental item warns but succeeds", func(t *testing.T) {
		fields := submissionFields(date.Label(), area.Name)
		fields["rental-ghost"] = domain.NewScalar("1")

		result := pricing.CalculatePrice(ctx, form.ID, fields)
		assert.True(t, result.Success)
		assert.Equal(t, 3000, result.TotalPrice)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], `rental item "ghost" not found`)
	})

	t.Run("rental quantity above maximum fails", func(t *testing.T) {
		fields := submissionFields(date.Label(), area.Name)
		fields["rental-table"] = domain.NewScalar("4")

		result := pricing.CalculatePrice(ctx, form.ID, fields)
		assert.False(t, result.Success)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "exceeds maximum 3")
		assert.Equal(t, 3000, result.TotalPrice)
	})

	t.Run("zero and non-numeric quantities skipped", func(t *testing.T) {
		fields := submissionFields(date.Label(), area.Name)
		fields["rental-table"] = domain.NewScalar("abc")

		result := pricing.CalculatePrice(ctx, form.ID, fields)
		assert.True(t, result.Success)
		assert.Equal(t, 3000, result.TotalPrice)
		assert.Empty(t, result.Breakdown.Rental)
	})

	t.Run("unknown form", func(t *testing.T) {
		result := pricing.CalculatePrice(ctx, 9999, submissionFields(date.Label(), area.Name))
		assert.False(t, result.Success)
		assert.Contains(t, result.Errors, "form not found in catalog")
	})
}

func TestCalculatePriceDateAgnosticFallback(t *testing.T) {
	catalog, form, date, _ := seedCatalog(t)
	pricing := NewPricingService(catalog, newFakeAppStore())
	ctx := context.Background()

	// Legacy area with no date binding is still resolvable when the per-date
	// lookup misses.
	legacy, err := catalog.CreateArea(ctx, domain.Area{
		FormID:   form.ID,
		Name:     "旧エリア",
		Price:    2000,
		IsActive: true,
	})
	require.NoError(t, err)

	result := pricing.CalculatePrice(ctx, form.ID, submissionFields(date.Label(), legacy.Name))
	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, 2000, result.TotalPrice)
	require.NotNil(t, result.Breakdown.Area)
	assert.Equal(t, legacy.ID, result.Breakdown.Area.AreaID)
}

func TestCalculatePriceClampsNegativeTotal(t *testing.T) {
	catalog, form, date, _ := seedCatalog(t)
	pricing := NewPricingService(catalog, newFakeAppStore())
	ctx := context.Background()

	discounted, err := catalog.CreateArea(ctx, domain.Area{
		FormID:   form.ID,
		DateID:   date.ID,
		Name:     "割引エリア",
		Price:    -500,
		IsActive: true,
	})
	require.NoError(t, err)

	result := pricing.CalculatePrice(ctx, form.ID, submissionFields(date.Label(), discounted.Name))
	assert.False(t, result.Success)
	assert.Equal(t, 0, result.TotalPrice)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "invalid negative price")
}

func TestPaymentDescription(t *testing.T) {
	catalog, form, date, area := seedCatalog(t)
	pricing := NewPricingService(catalog, newFakeAppStore())
	ctx := context.Background()

	fields := submissionFields(date.Label(), area.Name)
	result := pricing.CalculatePrice(ctx, form.ID, fields)
	require.True(t, result.Success)

	description := pricing.PaymentDescription(ctx, form.ID, fields, result)
	assert.Equal(t, "2024年12月12日(木)に開催のマルシェで申し込みの山田太郎(taro@example.com)さんの決済です。出店場所はAエリアです", description)
}

func TestPaymentParams(t *testing.T) {
	catalog, form, date, area := seedCatalog(t)
	pricing := NewPricingService(catalog, newFakeAppStore())
	ctx := context.Background()

	t.Run("successful calculation", func(t *testing.T) {
		fields := submissionFields(date.Label(), area.Name)
		fields["rental-table"] = domain.NewScalar("2")

		params, result := pricing.PaymentParams(ctx, form.ID, fields)
		require.True(t, result.Success)
		assert.Equal(t, int64(4000), params.Amount)
		assert.Equal(t, "jpy", params.Currency)
		assert.Equal(t, "1", params.Metadata["form_id"])
		assert.Equal(t, "マルシェ", params.Metadata["form_type"])
		assert.Equal(t, "山田太郎", params.Metadata["customer_name"])
		assert.Equal(t, "Aエリア", params.Metadata["area_name"])
		assert.Equal(t, "2", params.Metadata["rental-table"])
	})

	t.Run("failed calculation yields zero amount", func(t *testing.T) {
		params, result := pricing.PaymentParams(ctx, form.ID, submissionFields(date.Label(), "Zエリア"))
		assert.False(t, result.Success)
		assert.Equal(t, int64(0), params.Amount)
		assert.Equal(t, "エラー: 料金計算に失敗しました", params.Description)
		assert.Contains(t, params.Metadata["error"], "not found")
	})
}
