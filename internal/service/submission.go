package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/marchemgmt/marche-api/internal/domain"
	"github.com/marchemgmt/marche-api/internal/repository"
)

var ErrApplicationNotFound = repository.ErrApplicationNotFound

// RejectionError carries the user-facing reasons a submission was turned
// away. It is distinct from internal failures so handlers can render a 422
// instead of a 500.
type RejectionError struct {
	Reasons []string
}

func (e *RejectionError) Error() string {
	return "submission rejected: " + strings.Join(e.Reasons, "; ")
}

// Upload is one file attached to a submission.
type Upload struct {
	FileName string
	Content  io.Reader
}

type SubmissionCatalog interface {
	PricingCatalog
	ListRentalItems(ctx context.Context, formID uint, activeOnly bool) ([]domain.RentalItem, error)
}

type ApplicationStore interface {
	ApplicationCounter
	Create(ctx context.Context, app domain.Application, window time.Duration) (domain.Application, bool, error)
	FindByID(ctx context.Context, id uint) (domain.Application, error)
	List(ctx context.Context, formID uint, dateID *uint) ([]domain.Application, error)
	AttachFiles(ctx context.Context, applicationID uint, files []domain.UploadedFile) ([]domain.UploadedFile, error)
	Delete(ctx context.Context, id uint) ([]string, error)
	Statistics(ctx context.Context, formID uint, dateID *uint) (domain.Statistics, error)
}

// FileStore persists uploaded attachments outside the database.
type FileStore interface {
	Save(fileName string, content io.Reader) (path string, url string, err error)
	Remove(path string) error
}

// SubmissionService is the capacity-validated intake gate in front of the
// application store.
type SubmissionService struct {
	catalog      SubmissionCatalog
	apps         ApplicationStore
	pricing      *PricingService
	files        FileStore
	dedupeWindow time.Duration
}

func NewSubmissionService(catalog SubmissionCatalog, apps ApplicationStore, pricing *PricingService, files FileStore, dedupeWindow time.Duration) *SubmissionService {
	return &SubmissionService{
		catalog:      catalog,
		apps:         apps,
		pricing:      pricing,
		files:        files,
		dedupeWindow: dedupeWindow,
	}
}

// CheckAcceptable reports whether a submission with the given selections
// would be admitted right now. It never mutates state, so callers may use it
// for live form validation as well as the pre-insert gate.
func (s *SubmissionService) CheckAcceptable(ctx context.Context, formID, dateID uint, areaName string, rentalQuantities map[string]int) (domain.Acceptance, error) {
	var reasons []string

	if areaName != "" {
		area, err := s.pricing.resolveArea(ctx, formID, areaName, &dateID)
		switch {
		case errors.Is(err, ErrAreaNotFound):
			reasons = append(reasons, "選択されたエリアが見つかりません。")
		case err != nil:
			return domain.Acceptance{}, fmt.Errorf("s.pricing.resolveArea -> %w", err)
		case area.HasCapacityLimit():
			status, err := s.pricing.AreaAvailability(ctx, formID, area.DateID, area.ID)
			if err != nil {
				return domain.Acceptance{}, fmt.Errorf("s.pricing.AreaAvailability -> %w", err)
			}
			if status.IsFull {
				reasons = append(reasons, fmt.Sprintf("%sは定員に達しているため、お申し込みできません。", area.Name))
			}
		}
	}

	items, err := s.catalog.ListRentalItems(ctx, formID, true)
	if err != nil {
		return domain.Acceptance{}, fmt.Errorf("s.catalog.ListRentalItems -> %w", err)
	}

	for _, item := range items {
		qty := rentalQuantities[item.FieldKey]
		if qty < item.MinQuantity {
			reasons = append(reasons, fmt.Sprintf("%sの数量は%d以上で入力してください。", item.ItemName, item.MinQuantity))
		}
		if qty > item.MaxQuantity {
			reasons = append(reasons, fmt.Sprintf("%sの数量は%d以下で入力してください。", item.ItemName, item.MaxQuantity))
		}
	}

	return domain.Acceptance{
		OK:      len(reasons) == 0,
		Reasons: reasons,
	}, nil
}

// Submit runs the full intake pipeline: normalize fields, resolve the event
// date, gate on capacity and quantity bounds, price, then persist exactly one
// record for the effective payload within the dedupe window. The returned
// bool reports whether a new record was created; false means the stored
// record is a recent duplicate.
func (s *SubmissionService) Submit(ctx context.Context, formID uint, fields domain.FieldMap, uploads []Upload) (domain.Application, bool, error) {
	if _, err := s.catalog.FindFormByID(ctx, formID); err != nil {
		return domain.Application{}, false, fmt.Errorf("s.catalog.FindFormByID -> %w", err)
	}

	dateLabel := fields.First(domain.FieldDate)
	if dateLabel == "" {
		return domain.Application{}, false, &RejectionError{Reasons: []string{"開催日が選択されていません。"}}
	}

	date, err := s.catalog.FindDateByLabel(ctx, formID, dateLabel)
	if err != nil {
		if errors.Is(err, ErrDateNotFound) {
			return domain.Application{}, false, &RejectionError{Reasons: []string{"選択された開催日が見つかりません。"}}
		}

		return domain.Application{}, false, fmt.Errorf("s.catalog.FindDateByLabel -> %w", err)
	}

	areaName := fields.First(domain.FieldBoothLocation)
	flyerCount, _ := fields.Int(domain.FieldFlyerCount)

	quantities := fields.RentalQuantities()

	acceptance, err := s.CheckAcceptable(ctx, formID, date.ID, areaName, quantities)
	if err != nil {
		return domain.Application{}, false, fmt.Errorf("s.CheckAcceptable -> %w", err)
	}
	if !acceptance.OK {
		return domain.Application{}, false, &RejectionError{Reasons: acceptance.Reasons}
	}

	price := s.pricing.CalculatePrice(ctx, formID, fields)
	if !price.Success {
		return domain.Application{}, false, &RejectionError{Reasons: price.Errors}
	}

	lines, err := s.rentalLines(ctx, formID, quantities)
	if err != nil {
		return domain.Application{}, false, fmt.Errorf("s.rentalLines -> %w", err)
	}

	app := domain.Application{
		FormID:        formID,
		DateID:        date.ID,
		Fields:        fields,
		AreaName:      areaName,
		FlyerCount:    flyerCount,
		VehicleHeight: fields.First(domain.FieldVehicleHeight),
		RentalLines:   lines,
	}

	stored, created, err := s.apps.Create(ctx, app, s.dedupeWindow)
	if err != nil {
		return domain.Application{}, false, fmt.Errorf("s.apps.Create -> %w", err)
	}

	if created && len(uploads) > 0 {
		files, err := s.storeUploads(uploads)
		if err != nil {
			zap.L().Warn("failed to store submission uploads", zap.Uint("application_id", stored.ID), zap.Error(err))
		}
		if len(files) > 0 {
			attached, err := s.apps.AttachFiles(ctx, stored.ID, files)
			if err != nil {
				return domain.Application{}, false, fmt.Errorf("s.apps.AttachFiles -> %w", err)
			}
			stored.Files = attached
		}
	}

	return stored, created, nil
}

// rentalLines snapshots the priced rental selection so later reporting does
// not depend on the catalog keeping the same prices.
func (s *SubmissionService) rentalLines(ctx context.Context, formID uint, quantities map[string]int) (map[string]domain.RentalLine, error) {
	items, err := s.catalog.ListRentalItems(ctx, formID, true)
	if err != nil {
		return nil, fmt.Errorf("s.catalog.ListRentalItems -> %w", err)
	}

	lines := make(map[string]domain.RentalLine)
	for _, item := range items {
		qty := quantities[item.FieldKey]
		if qty <= 0 {
			continue
		}

		lines[item.FieldName()] = domain.RentalLine{
			ItemName:  item.ItemName,
			Quantity:  qty,
			UnitPrice: item.Price,
			Unit:      item.Unit,
		}
	}

	return lines, nil
}

func (s *SubmissionService) storeUploads(uploads []Upload) ([]domain.UploadedFile, error) {
	if s.files == nil {
		return nil, nil
	}

	var files []domain.UploadedFile
	for _, upload := range uploads {
		path, url, err := s.files.Save(upload.FileName, upload.Content)
		if err != nil {
			return files, fmt.Errorf("s.files.Save -> %w", err)
		}

		files = append(files, domain.UploadedFile{
			FileName: upload.FileName,
			FilePath: path,
			FileURL:  url,
		})
	}

	return files, nil
}

func (s *SubmissionService) GetApplication(ctx context.Context, id uint) (domain.Application, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, fmt.Errorf("s.apps.FindByID -> %w", err)
	}

	return app, nil
}

func (s *SubmissionService) ListApplications(ctx context.Context, formID uint, dateID *uint) ([]domain.Application, error) {
	apps, err := s.apps.List(ctx, formID, dateID)
	if err != nil {
		return nil, fmt.Errorf("s.apps.List -> %w", err)
	}

	return apps, nil
}

// DeleteApplication removes the record and best-effort removes its stored
// attachments.
func (s *SubmissionService) DeleteApplication(ctx context.Context, id uint) error {
	paths, err := s.apps.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("s.apps.Delete -> %w", err)
	}

	if s.files == nil {
		return nil
	}

	for _, path := range paths {
		if err := s.files.Remove(path); err != nil {
			zap.L().Warn("failed to remove application attachment", zap.String("path", path), zap.Error(err))
		}
	}

	return nil
}

func (s *SubmissionService) Statistics(ctx context.Context, formID uint, dateID *uint) (domain.Statistics, error) {
	stats, err := s.apps.Statistics(ctx, formID, dateID)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("s.apps.Statistics -> %w", err)
	}

	return stats, nil
}
