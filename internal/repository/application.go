package repository

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/marchemgmt/marche-api/internal/domain"
	"github.com/marchemgmt/marche-api/internal/repository/dao"
)

var ErrApplicationNotFound = dao.ErrApplicationNotFound

type ApplicationDAO interface {
	InsertIfNotDuplicate(ctx context.Context, app dao.Application, window time.Duration) (dao.Application, bool, error)
	FindByID(ctx context.Context, id uint) (dao.Application, error)
	List(ctx context.Context, formID uint, dateID *uint) ([]dao.Application, error)
	CountByArea(ctx context.Context, formID, dateID uint, areaName string) (int, error)
	AreaCounts(ctx context.Context, formID uint, dateID *uint) ([]dao.AreaCountRow, error)
	FlyerTotal(ctx context.Context, formID uint, dateID *uint) (int, error)
	VehicleHeights(ctx context.Context, formID uint, dateID *uint) ([]string, error)
	RentalLinesJSON(ctx context.Context, formID uint, dateID *uint) ([]string, error)
	InsertFiles(ctx context.Context, files []dao.UploadedFile) ([]dao.UploadedFile, error)
	Delete(ctx context.Context, id uint) ([]string, error)
}

type ApplicationRepository struct {
	dao ApplicationDAO
}

func NewApplicationRepository(dao ApplicationDAO) *ApplicationRepository {
	return &ApplicationRepository{
		dao: dao,
	}
}

// payloadHash is the dedupe key. FieldMap marshals with sorted keys, so the
// hash is stable for identical payloads.
func payloadHash(fields domain.FieldMap) (string, string, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", "", fmt.Errorf("json.Marshal -> %w", err)
	}

	sum := md5.Sum(raw)

	return string(raw), hex.EncodeToString(sum[:]), nil
}

func (r *ApplicationRepository) appDaoToDomain(a dao.Application) (domain.Application, error) {
	var fields domain.FieldMap
	if a.Fields != "" {
		if err := json.Unmarshal([]byte(a.Fields), &fields); err != nil {
			return domain.Application{}, fmt.Errorf("json.Unmarshal fields -> %w", err)
		}
	}

	lines := map[string]domain.RentalLine{}
	if a.RentalLines != "" {
		if err := json.Unmarshal([]byte(a.RentalLines), &lines); err != nil {
			return domain.Application{}, fmt.Errorf("json.Unmarshal rental lines -> %w", err)
		}
	}

	files := make([]domain.UploadedFile, len(a.Files))
	for i, f := range a.Files {
		files[i] = domain.UploadedFile{
			ID:            f.ID,
			ApplicationID: f.ApplicationID,
			FileName:      f.FileName,
			FilePath:      f.FilePath,
			FileURL:       f.FileURL,
			UploadedAt:    f.UploadedAt,
		}
	}

	return domain.Application{
		ID:            a.ID,
		FormID:        a.FormID,
		DateID:        a.DateID,
		Fields:        fields,
		AreaName:      a.AreaName,
		FlyerCount:    a.FlyerCount,
		VehicleHeight: a.VehicleHeight,
		RentalLines:   lines,
		Files:         files,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}, nil
}

// Create persists the application unless it is a duplicate inside the dedupe
// window. The returned bool is false when an existing record was returned.
func (r *ApplicationRepository) Create(ctx context.Context, app domain.Application, window time.Duration) (domain.Application, bool, error) {
	rawFields, hash, err := payloadHash(app.Fields)
	if err != nil {
		return domain.Application{}, false, err
	}

	rawLines, err := json.Marshal(app.RentalLines)
	if err != nil {
		return domain.Application{}, false, fmt.Errorf("json.Marshal rental lines -> %w", err)
	}

	stored, created, err := r.dao.InsertIfNotDuplicate(ctx, dao.Application{
		FormID:        app.FormID,
		DateID:        app.DateID,
		Fields:        rawFields,
		AreaName:      app.AreaName,
		FlyerCount:    app.FlyerCount,
		VehicleHeight: app.VehicleHeight,
		RentalLines:   string(rawLines),
		PayloadHash:   hash,
	}, window)
	if err != nil {
		return domain.Application{}, false, fmt.Errorf("r.dao.InsertIfNotDuplicate -> %w", err)
	}

	result, err := r.appDaoToDomain(stored)
	if err != nil {
		return domain.Application{}, false, err
	}

	return result, created, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uint) (domain.Application, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.appDaoToDomain(found)
}

func (r *ApplicationRepository) List(ctx context.Context, formID uint, dateID *uint) ([]domain.Application, error) {
	found, err := r.dao.List(ctx, formID, dateID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	apps := make([]domain.Application, len(found))
	for i, a := range found {
		apps[i], err = r.appDaoToDomain(a)
		if err != nil {
			return nil, err
		}
	}

	return apps, nil
}

func (r *ApplicationRepository) CountByArea(ctx context.Context, formID, dateID uint, areaName string) (int, error) {
	count, err := r.dao.CountByArea(ctx, formID, dateID, areaName)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByArea -> %w", err)
	}

	return count, nil
}

func (r *ApplicationRepository) AttachFiles(ctx context.Context, applicationID uint, files []domain.UploadedFile) ([]domain.UploadedFile, error) {
	rows := make([]dao.UploadedFile, len(files))
	for i, f := range files {
		rows[i] = dao.UploadedFile{
			ApplicationID: applicationID,
			FileName:      f.FileName,
			FilePath:      f.FilePath,
			FileURL:       f.FileURL,
			UploadedAt:    f.UploadedAt,
		}
	}

	inserted, err := r.dao.InsertFiles(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertFiles -> %w", err)
	}

	attached := make([]domain.UploadedFile, len(inserted))
	for i, f := range inserted {
		attached[i] = domain.UploadedFile{
			ID:            f.ID,
			ApplicationID: f.ApplicationID,
			FileName:      f.FileName,
			FilePath:      f.FilePath,
			FileURL:       f.FileURL,
			UploadedAt:    f.UploadedAt,
		}
	}

	return attached, nil
}

// Delete removes the application and returns the stored file paths so the
// caller can drop the blobs as well.
func (r *ApplicationRepository) Delete(ctx context.Context, id uint) ([]string, error) {
	paths, err := r.dao.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return paths, nil
}

// Statistics aggregates one (form, date): per-area counts, flyer totals, the
// low/high roof vehicle split and rental item totals.
func (r *ApplicationRepository) Statistics(ctx context.Context, formID uint, dateID *uint) (domain.Statistics, error) {
	var stats domain.Statistics

	counts, err := r.dao.AreaCounts(ctx, formID, dateID)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("r.dao.AreaCounts -> %w", err)
	}
	for _, row := range counts {
		stats.AreaCounts = append(stats.AreaCounts, domain.AreaCount{AreaName: row.AreaName, Count: row.Count})
	}

	stats.FlyerTotal, err = r.dao.FlyerTotal(ctx, formID, dateID)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("r.dao.FlyerTotal -> %w", err)
	}

	heights, err := r.dao.VehicleHeights(ctx, formID, dateID)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("r.dao.VehicleHeights -> %w", err)
	}
	for _, h := range heights {
		mm, ok := parseMillimeters(h)
		if !ok {
			continue
		}
		if mm <= domain.LowRoofMaxHeightMM {
			stats.LowRoofCars++
		} else {
			stats.HighRoofCars++
		}
	}

	payloads, err := r.dao.RentalLinesJSON(ctx, formID, dateID)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("r.dao.RentalLinesJSON -> %w", err)
	}

	totals := map[string]int{}
	for _, payload := range payloads {
		var lines map[string]domain.RentalLine
		if err := json.Unmarshal([]byte(payload), &lines); err != nil {
			continue
		}
		for _, line := range lines {
			totals[line.ItemName] += line.Quantity
		}
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		stats.RentalTotals = append(stats.RentalTotals, domain.RentalTotal{ItemName: name, Total: totals[name]})
	}

	return stats, nil
}

func parseMillimeters(value string) (int, bool) {
	var mm int
	if _, err := fmt.Sscanf(value, "%d", &mm); err != nil {
		return 0, false
	}

	return mm, true
}
