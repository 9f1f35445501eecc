package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupRequestValidate(t *testing.T) {
	valid := SignupRequest{
		Email:           "admin@example.com",
		Password:        "Password123",
		ConfirmPassword: "Password123",
		Name:            "管理者",
	}
	assert.NoError(t, valid.Validate())

	t.Run("weak password", func(t *testing.T) {
		req := valid
		req.Password = "password"
		req.ConfirmPassword = "password"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("short password", func(t *testing.T) {
		req := valid
		req.Password = "Pass1"
		req.ConfirmPassword = "Pass1"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		req := valid
		req.ConfirmPassword = "Password124"
		assert.ErrorIs(t, req.Validate(), errConfirmPasswordMismatch)
	})

	t.Run("bad email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})
}

func TestCreateFormRequestValidate(t *testing.T) {
	valid := CreateFormRequest{
		ExternalFormID: 123,
		Name:           "冬のマルシェ",
		Type:           "marche",
		PaymentMethod:  "both",
	}
	assert.NoError(t, valid.Validate())

	t.Run("unknown type", func(t *testing.T) {
		req := valid
		req.Type = "flea_market"
		assert.Error(t, req.Validate())
	})

	t.Run("unknown payment method", func(t *testing.T) {
		req := valid
		req.PaymentMethod = "cash"
		assert.Error(t, req.Validate())
	})
}

func TestCreateDateRequest(t *testing.T) {
	req := CreateDateRequest{DateValue: "2026-12-12", Description: "午前の部"}
	require.NoError(t, req.Validate())
	assert.Equal(t, 2026, req.ParsedDate().Year())
	assert.True(t, req.Active())

	t.Run("invalid date", func(t *testing.T) {
		bad := CreateDateRequest{DateValue: "12/12/2026"}
		assert.Error(t, bad.Validate())
	})

	t.Run("explicit inactive", func(t *testing.T) {
		inactive := false
		req := CreateDateRequest{DateValue: "2026-12-12", IsActive: &inactive}
		require.NoError(t, req.Validate())
		assert.False(t, req.Active())
	})
}

func TestCreateAreaRequestValidate(t *testing.T) {
	valid := CreateAreaRequest{DateID: 1, Name: "Aエリア", Price: 3000, Capacity: 10}
	assert.NoError(t, valid.Validate())

	t.Run("missing date", func(t *testing.T) {
		req := valid
		req.DateID = 0
		assert.Error(t, req.Validate())
	})

	t.Run("negative price", func(t *testing.T) {
		req := valid
		req.Price = -1
		assert.Error(t, req.Validate())
	})
}

func TestCreateRentalItemRequest(t *testing.T) {
	valid := CreateRentalItemRequest{ItemName: "テーブル", FieldKey: "table", Price: 500, Unit: "台"}
	require.NoError(t, valid.Validate())
	assert.Equal(t, 99, valid.Max())

	t.Run("bad field key", func(t *testing.T) {
		req := valid
		req.FieldKey = "Table_1"
		assert.Error(t, req.Validate())
	})

	t.Run("max below min", func(t *testing.T) {
		max := 1
		req := valid
		req.MinQuantity = 2
		req.MaxQuantity = &max
		assert.ErrorIs(t, req.Validate(), errQuantityBounds)
	})
}

func TestReorderRequestValidate(t *testing.T) {
	assert.NoError(t, (&ReorderRequest{OrderedIDs: []uint{3, 1, 2}}).Validate())
	assert.Error(t, (&ReorderRequest{}).Validate())
}
