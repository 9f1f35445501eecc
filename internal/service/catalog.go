package service

import (
	"context"
	"fmt"
	"time"

	"github.com/marchemgmt/marche-api/internal/domain"
	"github.com/marchemgmt/marche-api/internal/repository"
)

var (
	ErrFormExists   = repository.ErrFormExists
	ErrDateExists   = repository.ErrDateExists
	ErrAreaExists   = repository.ErrAreaExists
	ErrRentalExists = repository.ErrRentalExists
)

type CatalogRepository interface {
	SubmissionCatalog

	CreateForm(ctx context.Context, form domain.Form) (domain.Form, error)
	FindFormByExternalID(ctx context.Context, externalID uint) (domain.Form, error)
	ListForms(ctx context.Context) ([]domain.Form, error)
	UpdateForm(ctx context.Context, form domain.Form) (domain.Form, error)
	DeleteForm(ctx context.Context, id uint) error

	CreateDate(ctx context.Context, date domain.EventDate) (domain.EventDate, error)
	FindDateByID(ctx context.Context, id uint) (domain.EventDate, error)
	ListDates(ctx context.Context, formID uint, activeOnly bool) ([]domain.EventDate, error)
	UpdateDate(ctx context.Context, date domain.EventDate) (domain.EventDate, error)
	DeleteDate(ctx context.Context, formID, id uint) error
	ReorderDates(ctx context.Context, formID uint, orderedIDs []uint) error

	CreateArea(ctx context.Context, area domain.Area) (domain.Area, error)
	FindAreaByID(ctx context.Context, id uint) (domain.Area, error)
	ListAreas(ctx context.Context, formID uint, dateID *uint, activeOnly bool) ([]domain.Area, error)
	UpdateArea(ctx context.Context, area domain.Area) (domain.Area, error)
	DeleteArea(ctx context.Context, formID, id uint) error
	ReorderAreas(ctx context.Context, formID uint, orderedIDs []uint) error

	CreateRentalItem(ctx context.Context, item domain.RentalItem) (domain.RentalItem, error)
	FindRentalItemByID(ctx context.Context, id uint) (domain.RentalItem, error)
	UpdateRentalItem(ctx context.Context, item domain.RentalItem) (domain.RentalItem, error)
	DeleteRentalItem(ctx context.Context, formID, id uint) error
	ReorderRentalItems(ctx context.Context, formID uint, orderedIDs []uint) error
}

// CatalogService manages the event catalog: forms, dates, areas and rental
// items, plus the option lists the public form renders from.
type CatalogService struct {
	catalog CatalogRepository
	apps    ApplicationCounter
}

func NewCatalogService(catalog CatalogRepository, apps ApplicationCounter) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		apps:    apps,
	}
}

func (s *CatalogService) CreateForm(ctx context.Context, form domain.Form) (domain.Form, error) {
	created, err := s.catalog.CreateForm(ctx, form)
	if err != nil {
		return domain.Form{}, fmt.Errorf("s.catalog.CreateForm -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetForm(ctx context.Context, id uint) (domain.Form, error) {
	form, err := s.catalog.FindFormByID(ctx, id)
	if err != nil {
		return domain.Form{}, fmt.Errorf("s.catalog.FindFormByID -> %w", err)
	}

	return form, nil
}

func (s *CatalogService) GetFormByExternalID(ctx context.Context, externalID uint) (domain.Form, error) {
	form, err := s.catalog.FindFormByExternalID(ctx, externalID)
	if err != nil {
		return domain.Form{}, fmt.Errorf("s.catalog.FindFormByExternalID -> %w", err)
	}

	return form, nil
}

func (s *CatalogService) ListForms(ctx context.Context) ([]domain.Form, error) {
	forms, err := s.catalog.ListForms(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.catalog.ListForms -> %w", err)
	}

	return forms, nil
}

func (s *CatalogService) UpdateForm(ctx context.Context, form domain.Form) (domain.Form, error) {
	updated, err := s.catalog.UpdateForm(ctx, form)
	if err != nil {
		return domain.Form{}, fmt.Errorf("s.catalog.UpdateForm -> %w", err)
	}

	return updated, nil
}

// DeleteForm removes a form and its catalog entries. Applications already
// received are kept for reporting.
func (s *CatalogService) DeleteForm(ctx context.Context, id uint) error {
	if err := s.catalog.DeleteForm(ctx, id); err != nil {
		return fmt.Errorf("s.catalog.DeleteForm -> %w", err)
	}

	return nil
}

func (s *CatalogService) CreateDate(ctx context.Context, date domain.EventDate) (domain.EventDate, error) {
	created, err := s.catalog.CreateDate(ctx, date)
	if err != nil {
		return domain.EventDate{}, fmt.Errorf("s.catalog.CreateDate -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetDate(ctx context.Context, id uint) (domain.EventDate, error) {
	date, err := s.catalog.FindDateByID(ctx, id)
	if err != nil {
		return domain.EventDate{}, fmt.Errorf("s.catalog.FindDateByID -> %w", err)
	}

	return date, nil
}

func (s *CatalogService) ListDates(ctx context.Context, formID uint, activeOnly bool) ([]domain.EventDate, error) {
	dates, err := s.catalog.ListDates(ctx, formID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("s.catalog.ListDates -> %w", err)
	}

	return dates, nil
}

func (s *CatalogService) UpdateDate(ctx context.Context, date domain.EventDate) (domain.EventDate, error) {
	updated, err := s.catalog.UpdateDate(ctx, date)
	if err != nil {
		return domain.EventDate{}, fmt.Errorf("s.catalog.UpdateDate -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteDate(ctx context.Context, formID, id uint) error {
	if err := s.catalog.DeleteDate(ctx, formID, id); err != nil {
		return fmt.Errorf("s.catalog.DeleteDate -> %w", err)
	}

	return nil
}

func (s *CatalogService) ReorderDates(ctx context.Context, formID uint, orderedIDs []uint) error {
	if err := s.catalog.ReorderDates(ctx, formID, orderedIDs); err != nil {
		return fmt.Errorf("s.catalog.ReorderDates -> %w", err)
	}

	return nil
}

func (s *CatalogService) CreateArea(ctx context.Context, area domain.Area) (domain.Area, error) {
	created, err := s.catalog.CreateArea(ctx, area)
	if err != nil {
		return domain.Area{}, fmt.Errorf("s.catalog.CreateArea -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetArea(ctx context.Context, id uint) (domain.Area, error) {
	area, err := s.catalog.FindAreaByID(ctx, id)
	if err != nil {
		return domain.Area{}, fmt.Errorf("s.catalog.FindAreaByID -> %w", err)
	}

	return area, nil
}

func (s *CatalogService) ListAreas(ctx context.Context, formID uint, dateID *uint, activeOnly bool) ([]domain.Area, error) {
	areas, err := s.catalog.ListAreas(ctx, formID, dateID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("s.catalog.ListAreas -> %w", err)
	}

	return areas, nil
}

func (s *CatalogService) UpdateArea(ctx context.Context, area domain.Area) (domain.Area, error) {
	updated, err := s.catalog.UpdateArea(ctx, area)
	if err != nil {
		return domain.Area{}, fmt.Errorf("s.catalog.UpdateArea -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteArea(ctx context.Context, formID, id uint) error {
	if err := s.catalog.DeleteArea(ctx, formID, id); err != nil {
		return fmt.Errorf("s.catalog.DeleteArea -> %w", err)
	}

	return nil
}

func (s *CatalogService) ReorderAreas(ctx context.Context, formID uint, orderedIDs []uint) error {
	if err := s.catalog.ReorderAreas(ctx, formID, orderedIDs); err != nil {
		return fmt.Errorf("s.catalog.ReorderAreas -> %w", err)
	}

	return nil
}

func (s *CatalogService) CreateRentalItem(ctx context.Context, item domain.RentalItem) (domain.RentalItem, error) {
	created, err := s.catalog.CreateRentalItem(ctx, item)
	if err != nil {
		return domain.RentalItem{}, fmt.Errorf("s.catalog.CreateRentalItem -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetRentalItem(ctx context.Context, id uint) (domain.RentalItem, error) {
	item, err := s.catalog.FindRentalItemByID(ctx, id)
	if err != nil {
		return domain.RentalItem{}, fmt.Errorf("s.catalog.FindRentalItemByID -> %w", err)
	}

	return item, nil
}

func (s *CatalogService) ListRentalItems(ctx context.Context, formID uint, activeOnly bool) ([]domain.RentalItem, error) {
	items, err := s.catalog.ListRentalItems(ctx, formID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("s.catalog.ListRentalItems -> %w", err)
	}

	return items, nil
}

func (s *CatalogService) UpdateRentalItem(ctx context.Context, item domain.RentalItem) (domain.RentalItem, error) {
	updated, err := s.catalog.UpdateRentalItem(ctx, item)
	if err != nil {
		return domain.RentalItem{}, fmt.Errorf("s.catalog.UpdateRentalItem -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteRentalItem(ctx context.Context, formID, id uint) error {
	if err := s.catalog.DeleteRentalItem(ctx, formID, id); err != nil {
		return fmt.Errorf("s.catalog.DeleteRentalItem -> %w", err)
	}

	return nil
}

func (s *CatalogService) ReorderRentalItems(ctx context.Context, formID uint, orderedIDs []uint) error {
	if err := s.catalog.ReorderRentalItems(ctx, formID, orderedIDs); err != nil {
		return fmt.Errorf("s.catalog.ReorderRentalItems -> %w", err)
	}

	return nil
}

// DateOptions lists the selectable dates for the public form: active entries
// whose date has not passed, in display order.
func (s *CatalogService) DateOptions(ctx context.Context, formID uint) ([]domain.DateOption, error) {
	dates, err := s.catalog.ListDates(ctx, formID, true)
	if err != nil {
		return nil, fmt.Errorf("s.catalog.ListDates -> %w", err)
	}

	today := time.Now().Truncate(24 * time.Hour)

	options := make([]domain.DateOption, 0, len(dates))
	for _, date := range dates {
		if date.DateValue.Before(today) {
			continue
		}

		options = append(options, domain.DateOption{
			DateID: date.ID,
			Label:  date.Label(),
		})
	}

	return options, nil
}

// AreaOptions lists the selectable areas for one event date. Areas at
// capacity are omitted entirely so the form cannot offer a slot the gate
// would reject.
func (s *CatalogService) AreaOptions(ctx context.Context, formID, dateID uint) ([]domain.AreaOption, error) {
	areas, err := s.catalog.ListAreas(ctx, formID, &dateID, true)
	if err != nil {
		return nil, fmt.Errorf("s.catalog.ListAreas -> %w", err)
	}

	options := make([]domain.AreaOption, 0, len(areas))
	for _, area := range areas {
		available := domain.UnlimitedAvailable

		if area.HasCapacityLimit() {
			used, err := s.apps.CountByArea(ctx, formID, area.DateID, area.Name)
			if err != nil {
				return nil, fmt.Errorf("s.apps.CountByArea -> %w", err)
			}

			available = area.Capacity - used
			if available <= 0 {
				continue
			}
		}

		options = append(options, domain.AreaOption{
			AreaID:    area.ID,
			DateID:    area.DateID,
			Name:      area.Name,
			Price:     area.Price,
			Available: available,
		})
	}

	return options, nil
}
