package repository

import (
	"context"
	"fmt"

	"github.com/marchemgmt/marche-api/internal/domain"
	"github.com/marchemgmt/marche-api/internal/repository/dao"
)

var (
	ErrFormNotFound   = dao.ErrFormNotFound
	ErrFormExists     = dao.ErrFormExists
	ErrDateNotFound   = dao.ErrDateNotFound
	ErrDateExists     = dao.ErrDateExists
	ErrAreaNotFound   = dao.ErrAreaNotFound
	ErrAreaExists     = dao.ErrAreaExists
	ErrRentalNotFound = dao.ErrRentalNotFound
	ErrRentalExists   = dao.ErrRentalExists
)

type CatalogDAO interface {
	InsertForm(ctx context.Context, form dao.Form) (dao.Form, error)
	FindFormByID(ctx context.Context, id uint) (dao.Form, error)
	FindFormByExternalID(ctx context.Context, externalID uint) (dao.Form, error)
	ListForms(ctx context.Context) ([]dao.Form, error)
	UpdateForm(ctx context.Context, form dao.Form) (dao.Form, error)
	DeleteForm(ctx context.Context, id uint) error

	InsertDate(ctx context.Context, date dao.EventDate) (dao.EventDate, error)
	FindDateByID(ctx context.Context, id uint) (dao.EventDate, error)
	ListDates(ctx context.Context, formID uint, activeOnly bool) ([]dao.EventDate, error)
	UpdateDate(ctx context.Context, date dao.EventDate) (dao.EventDate, error)
	DeleteDate(ctx context.Context, formID, id uint) error
	ReorderDates(ctx context.Context, formID uint, orderedIDs []uint) error

	InsertArea(ctx context.Context, area dao.Area) (dao.Area, error)
	FindAreaByID(ctx context.Context, id uint) (dao.Area, error)
	FindAreaForDate(ctx context.Context, areaID, formID, dateID uint) (dao.Area, error)
	FindAreaByName(ctx context.Context, formID uint, name string, dateID *uint) (dao.Area, error)
	ListAreas(ctx context.Context, formID uint, dateID *uint, activeOnly bool) ([]dao.Area, error)
	UpdateArea(ctx context.Context, area dao.Area) (dao.Area, error)
	DeleteArea(ctx context.Context, formID, id uint) error
	ReorderAreas(ctx context.Context, formID uint, orderedIDs []uint) error

	InsertRentalItem(ctx context.Context, item dao.RentalItem) (dao.RentalItem, error)
	FindRentalItemByID(ctx context.Context, id uint) (dao.RentalItem, error)
	FindRentalItemByFieldKey(ctx context.Context, formID uint, fieldKey string) (dao.RentalItem, error)
	ListRentalItems(ctx context.Context, formID uint, activeOnly bool) ([]dao.RentalItem, error)
	UpdateRentalItem(ctx context.Context, item dao.RentalItem) (dao.RentalItem, error)
	DeleteRentalItem(ctx context.Context, formID, id uint) error
	ReorderRentalItems(ctx context.Context, formID uint, orderedIDs []uint) error
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) formDomainToDao(f domain.Form) dao.Form {
	return dao.Form{
		ID:             f.ID,
		ExternalFormID: f.ExternalFormID,
		Name:           f.Name,
		Type:           string(f.Type),
		PaymentMethod:  string(f.PaymentMethod),
	}
}

func (r *CatalogRepository) formDaoToDomain(f dao.Form) domain.Form {
	return domain.Form{
		ID:             f.ID,
		ExternalFormID: f.ExternalFormID,
		Name:           f.Name,
		Type:           domain.FormType(f.Type),
		PaymentMethod:  domain.PaymentMethod(f.PaymentMethod),
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

func (r *CatalogRepository) dateDomainToDao(d domain.EventDate) dao.EventDate {
	return dao.EventDate{
		ID:          d.ID,
		FormID:      d.FormID,
		DateValue:   d.DateValue,
		Description: d.Description,
		IsActive:    d.IsActive,
		SortOrder:   d.SortOrder,
	}
}

func (r *CatalogRepository) dateDaoToDomain(d dao.EventDate) domain.EventDate {
	return domain.EventDate{
		ID:          d.ID,
		FormID:      d.FormID,
		DateValue:   d.DateValue,
		Description: d.Description,
		IsActive:    d.IsActive,
		SortOrder:   d.SortOrder,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *CatalogRepository) areaDomainToDao(a domain.Area) dao.Area {
	return dao.Area{
		ID:                   a.ID,
		FormID:               a.FormID,
		DateID:               a.DateID,
		AreaName:             a.Name,
		Price:                a.Price,
		Capacity:             a.Capacity,
		CapacityLimitEnabled: a.CapacityLimitEnabled,
		IsActive:             a.IsActive,
		SortOrder:            a.SortOrder,
	}
}

func (r *CatalogRepository) areaDaoToDomain(a dao.Area) domain.Area {
	return domain.Area{
		ID:                   a.ID,
		FormID:               a.FormID,
		DateID:               a.DateID,
		Name:                 a.AreaName,
		Price:                a.Price,
		Capacity:             a.Capacity,
		CapacityLimitEnabled: a.CapacityLimitEnabled,
		IsActive:             a.IsActive,
		SortOrder:            a.SortOrder,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func (r *CatalogRepository) rentalDomainToDao(i domain.RentalItem) dao.RentalItem {
	return dao.RentalItem{
		ID:          i.ID,
		FormID:      i.FormID,
		ItemName:    i.ItemName,
		FieldKey:    i.FieldKey,
		Price:       i.Price,
		Unit:        i.Unit,
		Description: i.Description,
		MinQuantity: i.MinQuantity,
		MaxQuantity: i.MaxQuantity,
		IsActive:    i.IsActive,
		SortOrder:   i.SortOrder,
	}
}

func (r *CatalogRepository) rentalDaoToDomain(i dao.RentalItem) domain.RentalItem {
	return domain.RentalItem{
		ID:          i.ID,
		FormID:      i.FormID,
		ItemName:    i.ItemName,
		FieldKey:    i.FieldKey,
		Price:       i.Price,
		Unit:        i.Unit,
		Description: i.Description,
		MinQuantity: i.MinQuantity,
		MaxQuantity: i.MaxQuantity,
		IsActive:    i.IsActive,
		SortOrder:   i.SortOrder,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (r *CatalogRepository) CreateForm(ctx context.Context, form domain.Form) (domain.Form, error) {
	created, err := r.dao.InsertForm(ctx, r.formDomainToDao(form))
	if err != nil {
		return domain.Form{}, fmt.Errorf("r.dao.InsertForm -> %w", err)
	}

	return r.formDaoToDomain(created), nil
}

func (r *CatalogRepository) FindFormByID(ctx context.Context, id uint) (domain.Form, error) {
	found, err := r.dao.FindFormByID(ctx, id)
	if err != nil {
		return domain.Form{}, fmt.Errorf("r.dao.FindFormByID -> %w", err)
	}

	return r.formDaoToDomain(found), nil
}

func (r *CatalogRepository) FindFormByExternalID(ctx context.Context, externalID uint) (domain.Form, error) {
	found, err := r.dao.FindFormByExternalID(ctx, externalID)
	if err != nil {
		return domain.Form{}, fmt.Errorf("r.dao.FindFormByExternalID -> %w", err)
	}

	return r.formDaoToDomain(found), nil
}

func (r *CatalogRepository) ListForms(ctx context.Context) ([]domain.Form, error) {
	found, err := r.dao.ListForms(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListForms -> %w", err)
	}

	forms := make([]domain.Form, len(found))
	for i, f := range found {
		forms[i] = r.formDaoToDomain(f)
	}

	return forms, nil
}

func (r *CatalogRepository) UpdateForm(ctx context.Context, form domain.Form) (domain.Form, error) {
	updated, err := r.dao.UpdateForm(ctx, r.formDomainToDao(form))
	if err != nil {
		return domain.Form{}, fmt.Errorf("r.dao.UpdateForm -> %w", err)
	}

	return r.formDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteForm(ctx context.Context, id uint) error {
	if err := r.dao.DeleteForm(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteForm -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) CreateDate(ctx context.Context, date domain.EventDate) (domain.EventDate, error) {
	created, err := r.dao.InsertDate(ctx, r.dateDomainToDao(date))
	if err != nil {
		return domain.EventDate{}, fmt.Errorf("r.dao.InsertDate -> %w", err)
	}

	return r.dateDaoToDomain(created), nil
}

func (r *CatalogRepository) FindDateByID(ctx context.Context, id uint) (domain.EventDate, error) {
	found, err := r.dao.FindDateByID(ctx, id)
	if err != nil {
		return domain.EventDate{}, fmt.Errorf("r.dao.FindDateByID -> %w", err)
	}

	return r.dateDaoToDomain(found), nil
}

// FindDateByLabel resolves an active event date from the option label the
// form posted back. Labels are rendered, not stored, so the match walks the
// form's active dates.
func (r *CatalogRepository) FindDateByLabel(ctx context.Context, formID uint, label string) (domain.EventDate, error) {
	dates, err := r.dao.ListDates(ctx, formID, true)
	if err != nil {
		return domain.EventDate{}, fmt.Errorf("r.dao.ListDates -> %w", err)
	}

	for _, d := range dates {
		candidate := r.dateDaoToDomain(d)
		if candidate.Label() == label {
			return candidate, nil
		}
	}

	return domain.EventDate{}, ErrDateNotFound
}

func (r *CatalogRepository) ListDates(ctx context.Context, formID uint, activeOnly bool) ([]domain.EventDate, error) {
	found, err := r.dao.ListDates(ctx, formID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListDates -> %w", err)
	}

	dates := make([]domain.EventDate, len(found))
	for i, d := range found {
		dates[i] = r.dateDaoToDomain(d)
	}

	return dates, nil
}

func (r *CatalogRepository) UpdateDate(ctx context.Context, date domain.EventDate) (domain.EventDate, error) {
	updated, err := r.dao.UpdateDate(ctx, r.dateDomainToDao(date))
	if err != nil {
		return domain.EventDate{}, fmt.Errorf("r.dao.UpdateDate -> %w", err)
	}

	return r.dateDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteDate(ctx context.Context, formID, id uint) error {
	if err := r.dao.DeleteDate(ctx, formID, id); err != nil {
		return fmt.Errorf("r.dao.DeleteDate -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) ReorderDates(ctx context.Context, formID uint, orderedIDs []uint) error {
	if err := r.dao.ReorderDates(ctx, formID, orderedIDs); err != nil {
		return fmt.Errorf("r.dao.ReorderDates -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) CreateArea(ctx context.Context, area domain.Area) (domain.Area, error) {
	created, err := r.dao.InsertArea(ctx, r.areaDomainToDao(area))
	if err != nil {
		return domain.Area{}, fmt.Errorf("r.dao.InsertArea -> %w", err)
	}

	return r.areaDaoToDomain(created), nil
}

func (r *CatalogRepository) FindAreaByID(ctx context.Context, id uint) (domain.Area, error) {
	found, err := r.dao.FindAreaByID(ctx, id)
	if err != nil {
		return domain.Area{}, fmt.Errorf("r.dao.FindAreaByID -> %w", err)
	}

	return r.areaDaoToDomain(found), nil
}

func (r *CatalogRepository) FindAreaForDate(ctx context.Context, areaID, formID, dateID uint) (domain.Area, error) {
	found, err := r.dao.FindAreaForDate(ctx, areaID, formID, dateID)
	if err != nil {
		return domain.Area{}, fmt.Errorf("r.dao.FindAreaForDate -> %w", err)
	}

	return r.areaDaoToDomain(found), nil
}

func (r *CatalogRepository) FindAreaByName(ctx context.Context, formID uint, name string, dateID *uint) (domain.Area, error) {
	found, err := r.dao.FindAreaByName(ctx, formID, name, dateID)
	if err != nil {
		return domain.Area{}, fmt.Errorf("r.dao.FindAreaByName -> %w", err)
	}

	return r.areaDaoToDomain(found), nil
}

func (r *CatalogRepository) ListAreas(ctx context.Context, formID uint, dateID *uint, activeOnly bool) ([]domain.Area, error) {
	found, err := r.dao.ListAreas(ctx, formID, dateID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAreas -> %w", err)
	}

	areas := make([]domain.Area, len(found))
	for i, a := range found {
		areas[i] = r.areaDaoToDomain(a)
	}

	return areas, nil
}

func (r *CatalogRepository) UpdateArea(ctx context.Context, area domain.Area) (domain.Area, error) {
	updated, err := r.dao.UpdateArea(ctx, r.areaDomainToDao(area))
	if err != nil {
		return domain.Area{}, fmt.Errorf("r.dao.UpdateArea -> %w", err)
	}

	return r.areaDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteArea(ctx context.Context, formID, id uint) error {
	if err := r.dao.DeleteArea(ctx, formID, id); err != nil {
		return fmt.Errorf("r.dao.DeleteArea -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) ReorderAreas(ctx context.Context, formID uint, orderedIDs []uint) error {
	if err := r.dao.ReorderAreas(ctx, formID, orderedIDs); err != nil {
		return fmt.Errorf("r.dao.ReorderAreas -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) CreateRentalItem(ctx context.Context, item domain.RentalItem) (domain.RentalItem, error) {
	created, err := r.dao.InsertRentalItem(ctx, r.rentalDomainToDao(item))
	if err != nil {
		return domain.RentalItem{}, fmt.Errorf("r.dao.InsertRentalItem -> %w", err)
	}

	return r.rentalDaoToDomain(created), nil
}

func (r *CatalogRepository) FindRentalItemByID(ctx context.Context, id uint) (domain.RentalItem, error) {
	found, err := r.dao.FindRentalItemByID(ctx, id)
	if err != nil {
		return domain.RentalItem{}, fmt.Errorf("r.dao.FindRentalItemByID -> %w", err)
	}

	return r.rentalDaoToDomain(found), nil
}

func (r *CatalogRepository) FindRentalItemByFieldKey(ctx context.Context, formID uint, fieldKey string) (domain.RentalItem, error) {
	found, err := r.dao.FindRentalItemByFieldKey(ctx, formID, fieldKey)
	if err != nil {
		return domain.RentalItem{}, fmt.Errorf("r.dao.FindRentalItemByFieldKey -> %w", err)
	}

	return r.rentalDaoToDomain(found), nil
}

func (r *CatalogRepository) ListRentalItems(ctx context.Context, formID uint, activeOnly bool) ([]domain.RentalItem, error) {
	found, err := r.dao.ListRentalItems(ctx, formID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListRentalItems -> %w", err)
	}

	items := make([]domain.RentalItem, len(found))
	for i, item := range found {
		items[i] = r.rentalDaoToDomain(item)
	}

	return items, nil
}

func (r *CatalogRepository) UpdateRentalItem(ctx context.Context, item domain.RentalItem) (domain.RentalItem, error) {
	updated, err := r.dao.UpdateRentalItem(ctx, r.rentalDomainToDao(item))
	if err != nil {
		return domain.RentalItem{}, fmt.Errorf("r.dao.UpdateRentalItem -> %w", err)
	}

	return r.rentalDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteRentalItem(ctx context.Context, formID, id uint) error {
	if err := r.dao.DeleteRentalItem(ctx, formID, id); err != nil {
		return fmt.Errorf("r.dao.DeleteRentalItem -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) ReorderRentalItems(ctx context.Context, formID uint, orderedIDs []uint) error {
	if err := r.dao.ReorderRentalItems(ctx, formID, orderedIDs); err != nil {
		return fmt.Errorf("r.dao.ReorderRentalItems -> %w", err)
	}

	return nil
}
