package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/marchemgmt/marche-api/internal/domain"
	"github.com/marchemgmt/marche-api/internal/repository"
)

var (
	ErrFormNotFound   = repository.ErrFormNotFound
	ErrDateNotFound   = repository.ErrDateNotFound
	ErrAreaNotFound   = repository.ErrAreaNotFound
	ErrRentalNotFound = repository.ErrRentalNotFound
)

// metadataKeyPattern strips characters the payment provider rejects in
// metadata keys.
var metadataKeyPattern = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)

type PricingCatalog interface {
	FindFormByID(ctx context.Context, id uint) (domain.Form, error)
	FindDateByLabel(ctx context.Context, formID uint, label string) (domain.EventDate, error)
	FindAreaForDate(ctx context.Context, areaID, formID, dateID uint) (domain.Area, error)
	FindAreaByName(ctx context.Context, formID uint, name string, dateID *uint) (domain.Area, error)
	FindRentalItemByFieldKey(ctx context.Context, formID uint, fieldKey string) (domain.RentalItem, error)
}

type ApplicationCounter interface {
	CountByArea(ctx context.Context, formID, dateID uint, areaName string) (int, error)
}

// PricingService is the capacity and pricing engine: stateless computation
// over point-in-time catalog reads.
type PricingService struct {
	catalog PricingCatalog
	apps    ApplicationCounter
}

func NewPricingService(catalog PricingCatalog, apps ApplicationCounter) *PricingService {
	return &PricingService{
		catalog: catalog,
		apps:    apps,
	}
}

// AreaAvailability snapshots how many slots of an area are taken. An unknown
// area yields a zeroed status rather than an error; capacity checks treat it
// as unsatisfiable by name lookup elsewhere.
func (s *PricingService) AreaAvailability(ctx context.Context, formID, dateID, areaID uint) (domain.CapacityStatus, error) {
	area, err := s.catalog.FindAreaForDate(ctx, areaID, formID, dateID)
	if err != nil {
		if errors.Is(err, ErrAreaNotFound) {
			return domain.CapacityStatus{CapacityLimitEnabled: true}, nil
		}

		return domain.CapacityStatus{}, fmt.Errorf("s.catalog.FindAreaForDate -> %w", err)
	}

	used, err := s.apps.CountByArea(ctx, formID, dateID, area.Name)
	if err != nil {
		return domain.CapacityStatus{}, fmt.Errorf("s.apps.CountByArea -> %w", err)
	}

	status := domain.CapacityStatus{
		AreaName:             area.Name,
		Capacity:             area.Capacity,
		CapacityLimitEnabled: area.CapacityLimitEnabled,
		Used:                 used,
	}

	if !area.HasCapacityLimit() {
		status.Available = domain.UnlimitedAvailable
		status.IsFull = false

		return status, nil
	}

	status.Available = area.Capacity - used
	if status.Available < 0 {
		status.Available = 0
	}
	status.IsFull = used >= area.Capacity

	return status, nil
}

// resolveDateID turns the submitted date label into a date id, when present
// and resolvable. A missing or unknown label is not an error here; the area
// lookup then runs date-agnostically.
func (s *PricingService) resolveDateID(ctx context.Context, formID uint, fields domain.FieldMap) *uint {
	label := fields.First(domain.FieldDate)
	if label == "" {
		return nil
	}

	date, err := s.catalog.FindDateByLabel(ctx, formID, label)
	if err != nil {
		return nil
	}

	return &date.ID
}

// resolveArea prefers the per-date area; the date-agnostic retry keeps
// catalogs from before per-date areas working.
func (s *PricingService) resolveArea(ctx context.Context, formID uint, name string, dateID *uint) (domain.Area, error) {
	area, err := s.catalog.FindAreaByName(ctx, formID, name, dateID)
	if err != nil && errors.Is(err, ErrAreaNotFound) && dateID != nil {
		area, err = s.catalog.FindAreaByName(ctx, formID, name, nil)
	}

	return area, err
}

// CalculatePrice computes the total owed for a submission: area price plus
// rental lines. A non-empty Errors list means the submission must be
// rejected; the total is still the best-effort figure for display.
func (s *PricingService) CalculatePrice(ctx context.Context, formID uint, fields domain.FieldMap) domain.PriceResult {
	result := domain.PriceResult{
		Currency:     "JPY",
		CalculatedAt: time.Now().UTC(),
	}

	if _, err := s.catalog.FindFormByID(ctx, formID); err != nil {
		if errors.Is(err, ErrFormNotFound) {
			result.Errors = append(result.Errors, "form not found in catalog")
		} else {
			zap.L().Error("price calculation failed to load form", zap.Uint("form_id", formID), zap.Error(err))
			result.Errors = append(result.Errors, "unexpected error during price calculation")
		}

		return result
	}

	total := 0
	total += s.calculateAreaPrice(ctx, formID, fields, &result)
	total += s.calculateRentalPrice(ctx, formID, fields, &result)

	if total < 0 {
		result.Errors = append(result.Errors, "total price cannot be negative")
		total = 0
	}

	result.TotalPrice = total
	result.Success = len(result.Errors) == 0

	return result
}

func (s *PricingService) calculateAreaPrice(ctx context.Context, formID uint, fields domain.FieldMap, result *domain.PriceResult) int {
	name := fields.First(domain.FieldBoothLocation)
	if name == "" {
		result.Warnings = append(result.Warnings, "no area selected")

		return 0
	}

	dateID := s.resolveDateID(ctx, formID, fields)

	area, err := s.resolveArea(ctx, formID, name, dateID)
	if err != nil {
		if errors.Is(err, ErrAreaNotFound) {
			result.Errors = append(result.Errors, fmt.Sprintf("area %q not found for form %d", name, formID))
		} else {
			zap.L().Error("area price lookup failed", zap.Uint("form_id", formID), zap.String("area", name), zap.Error(err))
			result.Errors = append(result.Errors, "unexpected error during price calculation")
		}

		return 0
	}

	if area.Price < 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("invalid negative price for area %q: %d", area.Name, area.Price))

		return 0
	}

	result.Breakdown.Area = &domain.AreaCharge{
		AreaID: area.ID,
		DateID: area.DateID,
		Name:   area.Name,
		Price:  area.Price,
	}

	return area.Price
}

func (s *PricingService) calculateRentalPrice(ctx context.Context, formID uint, fields domain.FieldMap, result *domain.PriceResult) int {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if strings.HasPrefix(name, domain.RentalFieldPrefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	total := 0
	for _, name := range names {
		qty, err := strconv.Atoi(strings.TrimSpace(fields.First(name)))
		if err != nil || qty <= 0 {
			continue
		}

		fieldKey := strings.TrimPrefix(name, domain.RentalFieldPrefix)

		item, err := s.catalog.FindRentalItemByFieldKey(ctx, formID, fieldKey)
		if err != nil {
			if errors.Is(err, ErrRentalNotFound) {
				result.Warnings = append(result.Warnings, fmt.Sprintf("rental item %q not found for form %d", fieldKey, formID))
			} else {
				zap.L().Error("rental price lookup failed", zap.Uint("form_id", formID), zap.String("field_key", fieldKey), zap.Error(err))
				result.Errors = append(result.Errors, "unexpected error during price calculation")
			}

			continue
		}

		if qty < item.MinQuantity {
			result.Errors = append(result.Errors, fmt.Sprintf("quantity %d for %q is below minimum %d", qty, item.ItemName, item.MinQuantity))

			continue
		}
		if qty > item.MaxQuantity {
			result.Errors = append(result.Errors, fmt.Sprintf("quantity %d for %q exceeds maximum %d", qty, item.ItemName, item.MaxQuantity))

			continue
		}
		if item.Price < 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("invalid negative price for rental item %q: %d", item.ItemName, item.Price))

			continue
		}

		lineTotal := item.Price * qty
		total += lineTotal

		result.Breakdown.Rental = append(result.Breakdown.Rental, domain.RentalCharge{
			RentalID:  item.ID,
			ItemName:  item.ItemName,
			FieldKey:  item.FieldKey,
			Quantity:  qty,
			UnitPrice: item.Price,
			LineTotal: lineTotal,
			Unit:      item.Unit,
		})
	}

	result.Breakdown.RentalTotal = total

	return total
}

// PaymentAmount converts the computed total into the payment provider's
// amount. JPY has no minor unit, so the amount is the total unmodified.
func (s *PricingService) PaymentAmount(totalPrice int) int64 {
	return int64(totalPrice)
}

// PaymentDescription builds the human-readable transaction description from
// whatever submission fields are present, degrading to a generic sentence.
func (s *PricingService) PaymentDescription(ctx context.Context, formID uint, fields domain.FieldMap, result domain.PriceResult) string {
	formType := domain.FormTypeMarche.Label()
	if form, err := s.catalog.FindFormByID(ctx, formID); err == nil {
		formType = form.Type.Label()
	}

	var b strings.Builder

	if label := fields.First(domain.FieldDate); label != "" {
		if date, err := s.catalog.FindDateByLabel(ctx, formID, label); err == nil {
			b.WriteString(domain.JapaneseDate(date.DateValue))
			b.WriteString("に開催の")
		}
	}

	b.WriteString(formType)
	b.WriteString("で申し込みの")

	if name := fields.First(domain.FieldCustomerName); name != "" {
		b.WriteString(name)
		if email := fields.First(domain.FieldCustomerEmail); email != "" {
			b.WriteString("(" + email + ")")
		}
		b.WriteString("さんの決済です。")
	} else {
		b.WriteString("お客様の決済です。")
	}

	if result.Breakdown.Area != nil {
		b.WriteString("出店場所は" + result.Breakdown.Area.Name + "です")
	}

	return b.String()
}

// PaymentMetadata builds the flat key→value map forwarded to the payment
// provider. Values are strings only; rental keys are sanitized to the
// provider's accepted character set.
func (s *PricingService) PaymentMetadata(ctx context.Context, formID uint, fields domain.FieldMap, result domain.PriceResult) map[string]string {
	metadata := map[string]string{
		"form_id": strconv.FormatUint(uint64(formID), 10),
	}

	formType := domain.FormTypeMarche.Label()
	if form, err := s.catalog.FindFormByID(ctx, formID); err == nil {
		formType = form.Type.Label()
	}
	metadata["form_type"] = formType

	if label := fields.First(domain.FieldDate); label != "" {
		metadata["date"] = label
	}
	if name := fields.First(domain.FieldCustomerName); name != "" {
		metadata["customer_name"] = name
	}
	if email := fields.First(domain.FieldCustomerEmail); email != "" {
		metadata["customer_email"] = email
	}

	if name := fields.First(domain.FieldBoothLocation); name != "" {
		metadata["area_name"] = name
	} else if result.Breakdown.Area != nil {
		metadata["area_name"] = result.Breakdown.Area.Name
	}

	for name, qty := range fields.RentalQuantities() {
		key := metadataKeyPattern.ReplaceAllString(domain.RentalFieldPrefix+name, "")
		metadata[key] = strconv.Itoa(qty)
	}

	return metadata
}

// PaymentParams assembles everything the payment collaborator needs. A failed
// calculation produces a zero-amount, error-describing parameter set instead
// of propagating a fault into the submission pipeline.
func (s *PricingService) PaymentParams(ctx context.Context, formID uint, fields domain.FieldMap) (domain.PaymentParams, domain.PriceResult) {
	result := s.CalculatePrice(ctx, formID, fields)

	if !result.Success {
		return domain.PaymentParams{
			Amount:      0,
			Currency:    "jpy",
			Description: "エラー: 料金計算に失敗しました",
			Metadata: map[string]string{
				"form_id": strconv.FormatUint(uint64(formID), 10),
				"error":   strings.Join(result.Errors, "; "),
			},
		}, result
	}

	return domain.PaymentParams{
		Amount:      s.PaymentAmount(result.TotalPrice),
		Currency:    "jpy",
		Description: s.PaymentDescription(ctx, formID, fields, result),
		Metadata:    s.PaymentMetadata(ctx, formID, fields, result),
	}, result
}
