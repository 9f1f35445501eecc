package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type Application struct {
	ID uint `gorm:"primaryKey"`

	FormID uint `gorm:"not null;index;index:idx_applications_form_date"`
	DateID uint `gorm:"not null;index;index:idx_applications_form_date"`

	// Fields is the raw submitted payload as JSON.
	Fields        string `gorm:"column:application_data;type:jsonb;not null"`
	AreaName      string `gorm:"index"`
	FlyerCount    int    `gorm:"not null;default:0"`
	VehicleHeight string
	RentalLines   string `gorm:"column:rental_items;type:jsonb"`

	// PayloadHash is the dedupe key: MD5 of the normalized payload.
	PayloadHash string `gorm:"size:32;index:idx_applications_dedupe"`

	Files []UploadedFile `gorm:"foreignKey:ApplicationID"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UploadedFile struct {
	ID uint `gorm:"primaryKey"`

	ApplicationID uint   `gorm:"not null;index"`
	FileName      string `gorm:"not null"`
	FilePath      string `gorm:"size:500;not null"`
	FileURL       string `gorm:"size:500;not null"`

	UploadedAt time.Time `gorm:"not null"`
}

type AreaCountRow struct {
	AreaName string
	Count    int
}

type ApplicationDAO struct {
	db *gorm.DB
}

func NewApplicationDAO(db *gorm.DB) *ApplicationDAO {
	return &ApplicationDAO{
		db: db,
	}
}

// InsertIfNotDuplicate stores the application unless an identical payload for
// the same (form, date, area) already arrived within the dedupe window. The
// duplicate case returns the existing row and created=false; it is not an
// error, since network retries double-submit.
func (d *ApplicationDAO) InsertIfNotDuplicate(ctx context.Context, app Application, window time.Duration) (Application, bool, error) {
	var existing Application

	result := d.db.WithContext(ctx).
		Where("form_id = ? AND date_id = ? AND area_name = ? AND payload_hash = ? AND created_at > ?",
			app.FormID, app.DateID, app.AreaName, app.PayloadHash, time.Now().UTC().Add(-window)).
		Preload("Files").
		First(&existing)
	if result.Error == nil {
		return existing, false, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Application{}, false, result.Error
	}

	if err := d.db.WithContext(ctx).Create(&app).Error; err != nil {
		return Application{}, false, err
	}

	return app, true, nil
}

func (d *ApplicationDAO) FindByID(ctx context.Context, id uint) (Application, error) {
	var app Application

	result := d.db.WithContext(ctx).Preload("Files").First(&app, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Application{}, ErrApplicationNotFound
		}

		return Application{}, result.Error
	}

	return app, nil
}

func (d *ApplicationDAO) List(ctx context.Context, formID uint, dateID *uint) ([]Application, error) {
	var apps []Application

	query := d.db.WithContext(ctx).Where("form_id = ?", formID)
	if dateID != nil {
		query = query.Where("date_id = ?", *dateID)
	}

	result := query.Preload("Files").Order("created_at DESC").Find(&apps)
	if result.Error != nil {
		return nil, result.Error
	}

	return apps, nil
}

// CountByArea is the occupancy figure capacity checks run on.
func (d *ApplicationDAO) CountByArea(ctx context.Context, formID, dateID uint, areaName string) (int, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Application{}).
		Where("form_id = ? AND date_id = ? AND area_name = ?", formID, dateID, areaName).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(count), nil
}

// statsQuery scopes an aggregate to one form, optionally narrowed to a date.
func (d *ApplicationDAO) statsQuery(ctx context.Context, formID uint, dateID *uint) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&Application{}).Where("form_id = ?", formID)
	if dateID != nil {
		query = query.Where("date_id = ?", *dateID)
	}

	return query
}

func (d *ApplicationDAO) AreaCounts(ctx context.Context, formID uint, dateID *uint) ([]AreaCountRow, error) {
	var rows []AreaCountRow

	result := d.statsQuery(ctx, formID, dateID).
		Select("area_name, COUNT(*) AS count").
		Where("area_name <> ''").
		Group("area_name").
		Order("count DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *ApplicationDAO) FlyerTotal(ctx context.Context, formID uint, dateID *uint) (int, error) {
	var total *int

	result := d.statsQuery(ctx, formID, dateID).
		Select("SUM(flyer_count)").
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}
	if total == nil {
		return 0, nil
	}

	return *total, nil
}

func (d *ApplicationDAO) VehicleHeights(ctx context.Context, formID uint, dateID *uint) ([]string, error) {
	var heights []string

	result := d.statsQuery(ctx, formID, dateID).
		Where("vehicle_height <> ''").
		Pluck("vehicle_height", &heights)
	if result.Error != nil {
		return nil, result.Error
	}

	return heights, nil
}

// RentalLinesJSON returns the raw rental line payloads of a (form, date);
// item totals are aggregated in the repository.
func (d *ApplicationDAO) RentalLinesJSON(ctx context.Context, formID uint, dateID *uint) ([]string, error) {
	var payloads []string

	result := d.statsQuery(ctx, formID, dateID).
		Where("rental_items IS NOT NULL AND rental_items::text <> ''").
		Pluck("rental_items", &payloads)
	if result.Error != nil {
		return nil, result.Error
	}

	return payloads, nil
}

func (d *ApplicationDAO) InsertFiles(ctx context.Context, files []UploadedFile) ([]UploadedFile, error) {
	if len(files) == 0 {
		return nil, nil
	}

	if err := d.db.WithContext(ctx).Create(&files).Error; err != nil {
		return nil, err
	}

	return files, nil
}

// Delete removes the application and its file rows in one transaction and
// returns the stored file paths so the caller can remove the blobs.
func (d *ApplicationDAO) Delete(ctx context.Context, id uint) ([]string, error) {
	var paths []string

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&UploadedFile{}).
			Where("application_id = ?", id).
			Pluck("file_path", &paths).Error; err != nil {
			return err
		}

		if err := tx.Where("application_id = ?", id).Delete(&UploadedFile{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Application{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrApplicationNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
