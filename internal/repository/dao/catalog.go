package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrFormNotFound   = errors.New("form not found")
	ErrFormExists     = errors.New("form already registered")
	ErrDateNotFound   = errors.New("event date not found")
	ErrDateExists     = errors.New("event date already exists")
	ErrAreaNotFound   = errors.New("area not found")
	ErrAreaExists     = errors.New("area already exists")
	ErrRentalNotFound = errors.New("rental item not found")
	ErrRentalExists   = errors.New("rental item already exists")
)

type Form struct {
	ID uint `gorm:"primaryKey"`

	ExternalFormID uint   `gorm:"unique;not null"`
	Name           string `gorm:"not null"`
	Type           string `gorm:"not null;default:marche"`
	PaymentMethod  string `gorm:"not null;default:both"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDate struct {
	ID uint `gorm:"primaryKey"`

	FormID      uint      `gorm:"not null;index;uniqueIndex:uni_event_dates_form_date"`
	DateValue   time.Time `gorm:"type:date;not null;uniqueIndex:uni_event_dates_form_date"`
	Description string
	IsActive    bool `gorm:"not null;default:true"`
	SortOrder   int  `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Area struct {
	ID uint `gorm:"primaryKey"`

	FormID               uint   `gorm:"not null;index:idx_areas_form_date;uniqueIndex:uni_areas_form_date_name"`
	DateID               uint   `gorm:"not null;index:idx_areas_form_date;uniqueIndex:uni_areas_form_date_name"`
	AreaName             string `gorm:"not null;uniqueIndex:uni_areas_form_date_name"`
	Price                int    `gorm:"not null;default:0"`
	Capacity             int    `gorm:"not null;default:0"`
	CapacityLimitEnabled bool   `gorm:"not null;default:true"`
	IsActive             bool   `gorm:"not null;default:true"`
	SortOrder            int    `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type RentalItem struct {
	ID uint `gorm:"primaryKey"`

	FormID      uint   `gorm:"not null;index;uniqueIndex:uni_rental_items_form_name;uniqueIndex:uni_rental_items_form_field"`
	ItemName    string `gorm:"not null;uniqueIndex:uni_rental_items_form_name"`
	FieldKey    string `gorm:"not null;uniqueIndex:uni_rental_items_form_field"`
	Price       int    `gorm:"not null;default:0"`
	Unit        string `gorm:"not null"`
	Description string
	MinQuantity int  `gorm:"not null;default:0"`
	MaxQuantity int  `gorm:"not null;default:99"`
	IsActive    bool `gorm:"not null;default:true"`
	SortOrder   int  `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, constraint)
}

func (d *CatalogDAO) InsertForm(ctx context.Context, form Form) (Form, error) {
	result := d.db.WithContext(ctx).Create(&form)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_forms_external_form_id") {
			return Form{}, ErrFormExists
		}

		return Form{}, result.Error
	}

	return form, nil
}

func (d *CatalogDAO) FindFormByID(ctx context.Context, id uint) (Form, error) {
	var form Form

	result := d.db.WithContext(ctx).First(&form, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Form{}, ErrFormNotFound
		}

		return Form{}, result.Error
	}

	return form, nil
}

func (d *CatalogDAO) FindFormByExternalID(ctx context.Context, externalID uint) (Form, error) {
	var form Form

	result := d.db.WithContext(ctx).Where("external_form_id = ?", externalID).First(&form)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Form{}, ErrFormNotFound
		}

		return Form{}, result.Error
	}

	return form, nil
}

func (d *CatalogDAO) ListForms(ctx context.Context) ([]Form, error) {
	var forms []Form

	result := d.db.WithContext(ctx).Order("id").Find(&forms)
	if result.Error != nil {
		return nil, result.Error
	}

	return forms, nil
}

func (d *CatalogDAO) UpdateForm(ctx context.Context, form Form) (Form, error) {
	result := d.db.WithContext(ctx).Model(&Form{}).
		Where("id = ?", form.ID).
		Updates(map[string]interface{}{
			"name":           form.Name,
			"type":           form.Type,
			"payment_method": form.PaymentMethod,
		})
	if result.Error != nil {
		return Form{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Form{}, ErrFormNotFound
	}

	return d.FindFormByID(ctx, form.ID)
}

// DeleteForm removes the form and its catalog rows. Applications outlive the
// form; they are historical records.
func (d *CatalogDAO) DeleteForm(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", id).Delete(&EventDate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).Delete(&Area{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).Delete(&RentalItem{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Form{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFormNotFound
		}

		return nil
	})
}

func (d *CatalogDAO) InsertDate(ctx context.Context, date EventDate) (EventDate, error) {
	result := d.db.WithContext(ctx).Create(&date)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_event_dates_form_date") {
			return EventDate{}, ErrDateExists
		}

		return EventDate{}, result.Error
	}

	return date, nil
}

func (d *CatalogDAO) FindDateByID(ctx context.Context, id uint) (EventDate, error) {
	var date EventDate

	result := d.db.WithContext(ctx).Where("is_active = ?", true).First(&date, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return EventDate{}, ErrDateNotFound
		}

		return EventDate{}, result.Error
	}

	return date, nil
}

func (d *CatalogDAO) ListDates(ctx context.Context, formID uint, activeOnly bool) ([]EventDate, error) {
	var dates []EventDate

	query := d.db.WithContext(ctx).Where("form_id = ?", formID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	result := query.Order("sort_order, date_value").Find(&dates)
	if result.Error != nil {
		return nil, result.Error
	}

	return dates, nil
}

func (d *CatalogDAO) UpdateDate(ctx context.Context, date EventDate) (EventDate, error) {
	result := d.db.WithContext(ctx).Model(&EventDate{}).
		Where("id = ? AND form_id = ?", date.ID, date.FormID).
		Updates(map[string]interface{}{
			"date_value":  date.DateValue,
			"description": date.Description,
			"is_active":   date.IsActive,
			"sort_order":  date.SortOrder,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_event_dates_form_date") {
			return EventDate{}, ErrDateExists
		}

		return EventDate{}, result.Error
	}
	if result.RowsAffected == 0 {
		return EventDate{}, ErrDateNotFound
	}

	var updated EventDate
	if err := d.db.WithContext(ctx).First(&updated, date.ID).Error; err != nil {
		return EventDate{}, err
	}

	return updated, nil
}

func (d *CatalogDAO) DeleteDate(ctx context.Context, formID, id uint) error {
	result := d.db.WithContext(ctx).Where("form_id = ?", formID).Delete(&EventDate{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDateNotFound
	}

	return nil
}

// ReorderDates rewrites sort_order for the given ids in one transaction.
// Either every row is updated or none are.
func (d *CatalogDAO) ReorderDates(ctx context.Context, formID uint, orderedIDs []uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			result := tx.Model(&EventDate{}).
				Where("id = ? AND form_id = ?", id, formID).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrDateNotFound
			}
		}

		return nil
	})
}

func (d *CatalogDAO) InsertArea(ctx context.Context, area Area) (Area, error) {
	result := d.db.WithContext(ctx).Create(&area)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_areas_form_date_name") {
			return Area{}, ErrAreaExists
		}

		return Area{}, result.Error
	}

	return area, nil
}

func (d *CatalogDAO) FindAreaByID(ctx context.Context, id uint) (Area, error) {
	var area Area

	result := d.db.WithContext(ctx).Where("is_active = ?", true).First(&area, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Area{}, ErrAreaNotFound
		}

		return Area{}, result.Error
	}

	return area, nil
}

// FindAreaForDate looks an area up by id scoped to its form and date,
// regardless of the active flag. Capacity snapshots need inactive areas too.
func (d *CatalogDAO) FindAreaForDate(ctx context.Context, areaID, formID, dateID uint) (Area, error) {
	var area Area

	result := d.db.WithContext(ctx).
		Where("id = ? AND form_id = ? AND date_id = ?", areaID, formID, dateID).
		First(&area)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Area{}, ErrAreaNotFound
		}

		return Area{}, result.Error
	}

	return area, nil
}

// FindAreaByName resolves an active area by name. A nil dateID searches
// date-agnostically, which legacy catalogs without per-date areas rely on.
func (d *CatalogDAO) FindAreaByName(ctx context.Context, formID uint, name string, dateID *uint) (Area, error) {
	var area Area

	query := d.db.WithContext(ctx).
		Where("form_id = ? AND area_name = ? AND is_active = ?", formID, name, true)
	if dateID != nil {
		query = query.Where("date_id = ?", *dateID)
	}

	result := query.Order("sort_order").First(&area)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Area{}, ErrAreaNotFound
		}

		return Area{}, result.Error
	}

	return area, nil
}

func (d *CatalogDAO) ListAreas(ctx context.Context, formID uint, dateID *uint, activeOnly bool) ([]Area, error) {
	var areas []Area

	query := d.db.WithContext(ctx).Where("form_id = ?", formID)
	if dateID != nil {
		query = query.Where("date_id = ?", *dateID)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	result := query.Order("sort_order, area_name").Find(&areas)
	if result.Error != nil {
		return nil, result.Error
	}

	return areas, nil
}

func (d *CatalogDAO) UpdateArea(ctx context.Context, area Area) (Area, error) {
	result := d.db.WithContext(ctx).Model(&Area{}).
		Where("id = ? AND form_id = ?", area.ID, area.FormID).
		Updates(map[string]interface{}{
			"date_id":                area.DateID,
			"area_name":              area.AreaName,
			"price":                  area.Price,
			"capacity":               area.Capacity,
			"capacity_limit_enabled": area.CapacityLimitEnabled,
			"is_active":              area.IsActive,
			"sort_order":             area.SortOrder,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_areas_form_date_name") {
			return Area{}, ErrAreaExists
		}

		return Area{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Area{}, ErrAreaNotFound
	}

	var updated Area
	if err := d.db.WithContext(ctx).First(&updated, area.ID).Error; err != nil {
		return Area{}, err
	}

	return updated, nil
}

func (d *CatalogDAO) DeleteArea(ctx context.Context, formID, id uint) error {
	result := d.db.WithContext(ctx).Where("form_id = ?", formID).Delete(&Area{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAreaNotFound
	}

	return nil
}

func (d *CatalogDAO) ReorderAreas(ctx context.Context, formID uint, orderedIDs []uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			result := tx.Model(&Area{}).
				Where("id = ? AND form_id = ?", id, formID).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrAreaNotFound
			}
		}

		return nil
	})
}

func (d *CatalogDAO) InsertRentalItem(ctx context.Context, item RentalItem) (RentalItem, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_rental_items_form_name") ||
			isUniqueViolation(result.Error, "uni_rental_items_form_field") {
			return RentalItem{}, ErrRentalExists
		}

		return RentalItem{}, result.Error
	}

	return item, nil
}

func (d *CatalogDAO) FindRentalItemByID(ctx context.Context, id uint) (RentalItem, error) {
	var item RentalItem

	result := d.db.WithContext(ctx).Where("is_active = ?", true).First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return RentalItem{}, ErrRentalNotFound
		}

		return RentalItem{}, result.Error
	}

	return item, nil
}

func (d *CatalogDAO) FindRentalItemByFieldKey(ctx context.Context, formID uint, fieldKey string) (RentalItem, error) {
	var item RentalItem

	result := d.db.WithContext(ctx).
		Where("form_id = ? AND field_key = ? AND is_active = ?", formID, fieldKey, true).
		Order("sort_order").
		First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return RentalItem{}, ErrRentalNotFound
		}

		return RentalItem{}, result.Error
	}

	return item, nil
}

func (d *CatalogDAO) ListRentalItems(ctx context.Context, formID uint, activeOnly bool) ([]RentalItem, error) {
	var items []RentalItem

	query := d.db.WithContext(ctx).Where("form_id = ?", formID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	result := query.Order("sort_order, item_name").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *CatalogDAO) UpdateRentalItem(ctx context.Context, item RentalItem) (RentalItem, error) {
	result := d.db.WithContext(ctx).Model(&RentalItem{}).
		Where("id = ? AND form_id = ?", item.ID, item.FormID).
		Updates(map[string]interface{}{
			"item_name":    item.ItemName,
			"field_key":    item.FieldKey,
			"price":        item.Price,
			"unit":         item.Unit,
			"description":  item.Description,
			"min_quantity": item.MinQuantity,
			"max_quantity": item.MaxQuantity,
			"is_active":    item.IsActive,
			"sort_order":   item.SortOrder,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_rental_items_form_name") ||
			isUniqueViolation(result.Error, "uni_rental_items_form_field") {
			return RentalItem{}, ErrRentalExists
		}

		return RentalItem{}, result.Error
	}
	if result.RowsAffected == 0 {
		return RentalItem{}, ErrRentalNotFound
	}

	var updated RentalItem
	if err := d.db.WithContext(ctx).First(&updated, item.ID).Error; err != nil {
		return RentalItem{}, err
	}

	return updated, nil
}

func (d *CatalogDAO) DeleteRentalItem(ctx context.Context, formID, id uint) error {
	result := d.db.WithContext(ctx).Where("form_id = ?", formID).Delete(&RentalItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRentalNotFound
	}

	return nil
}

func (d *CatalogDAO) ReorderRentalItems(ctx context.Context, formID uint, orderedIDs []uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			result := tx.Model(&RentalItem{}).
				Where("id = ? AND form_id = ?", id, formID).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrRentalNotFound
			}
		}

		return nil
	})
}
