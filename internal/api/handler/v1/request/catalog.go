package request

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

var fieldKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9\-]*$`)

var errQuantityBounds = errors.New("max_quantity must not be below min_quantity")

type CreateFormRequest struct {
	ExternalFormID uint   `json:"external_form_id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	PaymentMethod  string `json:"payment_method"`
}

func (req *CreateFormRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ExternalFormID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Type, validation.Required, validation.In("marche", "stage")),
		validation.Field(&req.PaymentMethod, validation.Required, validation.In("credit_card", "bank_transfer", "both")),
	)
}

type UpdateFormRequest struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	PaymentMethod string `json:"payment_method"`
}

func (req *UpdateFormRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Type, validation.Required, validation.In("marche", "stage")),
		validation.Field(&req.PaymentMethod, validation.Required, validation.In("credit_card", "bank_transfer", "both")),
	)
}

type CreateDateRequest struct {
	DateValue   string `json:"date_value"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

func (req *CreateDateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DateValue, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Description, validation.Length(0, 255)),
	)
}

// ParsedDate returns the date value; call after Validate.
func (req *CreateDateRequest) ParsedDate() time.Time {
	t, _ := time.Parse("2006-01-02", req.DateValue)

	return t
}

// Active defaults to true when the flag is omitted.
func (req *CreateDateRequest) Active() bool {
	if req.IsActive == nil {
		return true
	}

	return *req.IsActive
}

type CreateAreaRequest struct {
	DateID               uint   `json:"date_id"`
	Name                 string `json:"name"`
	Price                int    `json:"price"`
	Capacity             int    `json:"capacity"`
	CapacityLimitEnabled bool   `json:"capacity_limit_enabled"`
	IsActive             *bool  `json:"is_active"`
	SortOrder            int    `json:"sort_order"`
}

func (req *CreateAreaRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DateID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Price, validation.Min(0)),
		validation.Field(&req.Capacity, validation.Min(0)),
	)
}

func (req *CreateAreaRequest) Active() bool {
	if req.IsActive == nil {
		return true
	}

	return *req.IsActive
}

type CreateRentalItemRequest struct {
	ItemName    string `json:"item_name"`
	FieldKey    string `json:"field_key"`
	Price       int    `json:"price"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
	MinQuantity int    `json:"min_quantity"`
	MaxQuantity *int   `json:"max_quantity"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

func (req *CreateRentalItemRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.ItemName, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.FieldKey, validation.Required, validation.Match(fieldKeyPattern)),
		validation.Field(&req.Price, validation.Min(0)),
		validation.Field(&req.MinQuantity, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	if req.MaxQuantity != nil && *req.MaxQuantity < req.MinQuantity {
		return errQuantityBounds
	}

	return nil
}

// Max defaults to 99 when the bound is omitted.
func (req *CreateRentalItemRequest) Max() int {
	if req.MaxQuantity == nil {
		return 99
	}

	return *req.MaxQuantity
}

func (req *CreateRentalItemRequest) Active() bool {
	if req.IsActive == nil {
		return true
	}

	return *req.IsActive
}

type ReorderRequest struct {
	OrderedIDs []uint `json:"ordered_ids"`
}

func (req *ReorderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.OrderedIDs, validation.Required, validation.Length(1, 0)),
	)
}
