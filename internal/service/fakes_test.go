package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/marchemgmt/marche-api/internal/domain"
	"github.com/marchemgmt/marche-api/internal/repository"
)

// fakeCatalog is an in-memory CatalogRepository for service tests.
type fakeCatalog struct {
	forms   map[uint]domain.Form
	dates   map[uint]domain.EventDate
	areas   map[uint]domain.Area
	rentals map[uint]domain.RentalItem
	nextID  uint
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		forms:   make(map[uint]domain.Form),
		dates:   make(map[uint]domain.EventDate),
		areas:   make(map[uint]domain.Area),
		rentals: make(map[uint]domain.RentalItem),
	}
}

func (f *fakeCatalog) id() uint {
	f.nextID++

	return f.nextID
}

func (f *fakeCatalog) CreateForm(_ context.Context, form domain.Form) (domain.Form, error) {
	form.ID = f.id()
	f.forms[form.ID] = form

	return form, nil
}

func (f *fakeCatalog) FindFormByID(_ context.Context, id uint) (domain.Form, error) {
	form, ok := f.forms[id]
	if !ok {
		return domain.Form{}, repository.ErrFormNotFound
	}

	return form, nil
}

func (f *fakeCatalog) FindFormByExternalID(_ context.Context, externalID uint) (domain.Form, error) {
	for _, form := range f.forms {
		if form.ExternalFormID == externalID {
			return form, nil
		}
	}

	return domain.Form{}, repository.ErrFormNotFound
}

func (f *fakeCatalog) ListForms(_ context.Context) ([]domain.Form, error) {
	forms := make([]domain.Form, 0, len(f.forms))
	for _, form := range f.forms {
		forms = append(forms, form)
	}
	sort.Slice(forms, func(i, j int) bool { return forms[i].ID < forms[j].ID })

	return forms, nil
}

func (f *fakeCatalog) UpdateForm(_ context.Context, form domain.Form) (domain.Form, error) {
	if _, ok := f.forms[form.ID]; !ok {
		return domain.Form{}, repository.ErrFormNotFound
	}
	f.forms[form.ID] = form

	return form, nil
}

func (f *fakeCatalog) DeleteForm(_ context.Context, id uint) error {
	if _, ok := f.forms[id]; !ok {
		return repository.ErrFormNotFound
	}
	delete(f.forms, id)

	return nil
}

func (f *fakeCatalog) CreateDate(_ context.Context, date domain.EventDate) (domain.EventDate, error) {
	date.ID = f.id()
	f.dates[date.ID] = date

	return date, nil
}

func (f *fakeCatalog) FindDateByID(_ context.Context, id uint) (domain.EventDate, error) {
	date, ok := f.dates[id]
	if !ok || !date.IsActive {
		return domain.EventDate{}, repository.ErrDateNotFound
	}

	return date, nil
}

func (f *fakeCatalog) FindDateByLabel(_ context.Context, formID uint, label string) (domain.EventDate, error) {
	for _, date := range f.dates {
		if date.FormID == formID && date.IsActive && date.Label() == label {
			return date, nil
		}
	}

	return domain.EventDate{}, repository.ErrDateNotFound
}

func (f *fakeCatalog) ListDates(_ context.Context, formID uint, activeOnly bool) ([]domain.EventDate, error) {
	var dates []domain.EventDate
	for _, date := range f.dates {
		if date.FormID != formID {
			continue
		}
		if activeOnly && !date.IsActive {
			continue
		}
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool {
		if dates[i].SortOrder != dates[j].SortOrder {
			return dates[i].SortOrder < dates[j].SortOrder
		}

		return dates[i].DateValue.Before(dates[j].DateValue)
	})

	return dates, nil
}

func (f *fakeCatalog) UpdateDate(_ context.Context, date domain.EventDate) (domain.EventDate, error) {
	if _, ok := f.dates[date.ID]; !ok {
		return domain.EventDate{}, repository.ErrDateNotFound
	}
	f.dates[date.ID] = date

	return date, nil
}

func (f *fakeCatalog) DeleteDate(_ context.Context, formID, id uint) error {
	date, ok := f.dates[id]
	if !ok || date.FormID != formID {
		return repository.ErrDateNotFound
	}
	delete(f.dates, id)

	return nil
}

func (f *fakeCatalog) ReorderDates(_ context.Context, formID uint, orderedIDs []uint) error {
	for pos, id := range orderedIDs {
		if date, ok := f.dates[id]; ok && date.FormID == formID {
			date.SortOrder = pos
			f.dates[id] = date
		}
	}

	return nil
}

func (f *fakeCatalog) CreateArea(_ context.Context, area domain.Area) (domain.Area, error) {
	area.ID = f.id()
	f.areas[area.ID] = area

	return area, nil
}

func (f *fakeCatalog) FindAreaByID(_ context.Context, id uint) (domain.Area, error) {
	area, ok := f.areas[id]
	if !ok || !area.IsActive {
		return domain.Area{}, repository.ErrAreaNotFound
	}

	return area, nil
}

func (f *fakeCatalog) FindAreaForDate(_ context.Context, areaID, formID, dateID uint) (domain.Area, error) {
	area, ok := f.areas[areaID]
	if !ok || area.FormID != formID || area.DateID != dateID {
		return domain.Area{}, repository.ErrAreaNotFound
	}

	return area, nil
}

func (f *fakeCatalog) FindAreaByName(_ context.Context, formID uint, name string, dateID *uint) (domain.Area, error) {
	var matches []domain.Area
	for _, area := range f.areas {
		if area.FormID != formID || area.Name != name || !area.IsActive {
			continue
		}
		if dateID != nil && area.DateID != *dateID {
			continue
		}
		matches = append(matches, area)
	}
	if len(matches) == 0 {
		return domain.Area{}, repository.ErrAreaNotFound
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].SortOrder < matches[j].SortOrder })

	return matches[0], nil
}

func (f *fakeCatalog) ListAreas(_ context.Context, formID uint, dateID *uint, activeOnly bool) ([]domain.Area, error) {
	var areas []domain.Area
	for _, area := range f.areas {
		if area.FormID != formID {
			continue
		}
		if dateID != nil && area.DateID != *dateID {
			continue
		}
		if activeOnly && !area.IsActive {
			continue
		}
		areas = append(areas, area)
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i].SortOrder < areas[j].SortOrder })

	return areas, nil
}

func (f *fakeCatalog) UpdateArea(_ context.Context, area domain.Area) (domain.Area, error) {
	if _, ok := f.areas[area.ID]; !ok {
		return domain.Area{}, repository.ErrAreaNotFound
	}
	f.areas[area.ID] = area

	return area, nil
}

func (f *fakeCatalog) DeleteArea(_ context.Context, formID, id uint) error {
	area, ok := f.areas[id]
	if !ok || area.FormID != formID {
		return repository.ErrAreaNotFound
	}
	delete(f.areas, id)

	return nil
}

func (f *fakeCatalog) ReorderAreas(_ context.Context, formID uint, orderedIDs []uint) error {
	for pos, id := range orderedIDs {
		if area, ok := f.areas[id]; ok && area.FormID == formID {
			area.SortOrder = pos
			f.areas[id] = area
		}
	}

	return nil
}

func (f *fakeCatalog) CreateRentalItem(_ context.Context, item domain.RentalItem) (domain.RentalItem, error) {
	item.ID = f.id()
	f.rentals[item.ID] = item

	return item, nil
}

func (f *fakeCatalog) FindRentalItemByID(_ context.Context, id uint) (domain.RentalItem, error) {
	item, ok := f.rentals[id]
	if !ok {
		return domain.RentalItem{}, repository.ErrRentalNotFound
	}

	return item, nil
}

func (f *fakeCatalog) FindRentalItemByFieldKey(_ context.Context, formID uint, fieldKey string) (domain.RentalItem, error) {
	for _, item := range f.rentals {
		if item.FormID == formID && item.FieldKey == fieldKey && item.IsActive {
			return item, nil
		}
	}

	return domain.RentalItem{}, repository.ErrRentalNotFound
}

func (f *fakeCatalog) ListRentalItems(_ context.Context, formID uint, activeOnly bool) ([]domain.RentalItem, error) {
	var items []domain.RentalItem
	for _, item := range f.rentals {
		if item.FormID != formID {
			continue
		}
		if activeOnly && !item.IsActive {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })

	return items, nil
}

func (f *fakeCatalog) UpdateRentalItem(_ context.Context, item domain.RentalItem) (domain.RentalItem, error) {
	if _, ok := f.rentals[item.ID]; !ok {
		return domain.RentalItem{}, repository.ErrRentalNotFound
	}
	f.rentals[item.ID] = item

	return item, nil
}

func (f *fakeCatalog) DeleteRentalItem(_ context.Context, formID, id uint) error {
	item, ok := f.rentals[id]
	if !ok || item.FormID != formID {
		return repository.ErrRentalNotFound
	}
	delete(f.rentals, id)

	return nil
}

func (f *fakeCatalog) ReorderRentalItems(_ context.Context, formID uint, orderedIDs []uint) error {
	for pos, id := range orderedIDs {
		if item, ok := f.rentals[id]; ok && item.FormID == formID {
			item.SortOrder = pos
			f.rentals[id] = item
		}
	}

	return nil
}

// fakeAppStore is an in-memory ApplicationStore.
type fakeAppStore struct {
	apps   []domain.Application
	nextID uint
	now    func() time.Time
}

func newFakeAppStore() *fakeAppStore {
	return &fakeAppStore{
		now: time.Now,
	}
}

func payloadKey(fields domain.FieldMap) string {
	data, _ := json.Marshal(fields)

	return string(data)
}

func (f *fakeAppStore) Create(_ context.Context, app domain.Application, window time.Duration) (domain.Application, bool, error) {
	key := payloadKey(app.Fields)
	cutoff := f.now().Add(-window)

	for _, existing := range f.apps {
		if existing.FormID == app.FormID &&
			existing.DateID == app.DateID &&
			existing.AreaName == app.AreaName &&
			payloadKey(existing.Fields) == key &&
			existing.CreatedAt.After(cutoff) {
			return existing, false, nil
		}
	}

	f.nextID++
	app.ID = f.nextID
	app.CreatedAt = f.now()
	f.apps = append(f.apps, app)

	return app, true, nil
}

func (f *fakeAppStore) FindByID(_ context.Context, id uint) (domain.Application, error) {
	for _, app := range f.apps {
		if app.ID == id {
			return app, nil
		}
	}

	return domain.Application{}, repository.ErrApplicationNotFound
}

func (f *fakeAppStore) List(_ context.Context, formID uint, dateID *uint) ([]domain.Application, error) {
	var apps []domain.Application
	for _, app := range f.apps {
		if app.FormID != formID {
			continue
		}
		if dateID != nil && app.DateID != *dateID {
			continue
		}
		apps = append(apps, app)
	}

	return apps, nil
}

func (f *fakeAppStore) CountByArea(_ context.Context, formID, dateID uint, areaName string) (int, error) {
	count := 0
	for _, app := range f.apps {
		if app.FormID == formID && app.DateID == dateID && app.AreaName == areaName {
			count++
		}
	}

	return count, nil
}

func (f *fakeAppStore) AttachFiles(_ context.Context, applicationID uint, files []domain.UploadedFile) ([]domain.UploadedFile, error) {
	for i := range f.apps {
		if f.apps[i].ID == applicationID {
			f.apps[i].Files = append(f.apps[i].Files, files...)

			return f.apps[i].Files, nil
		}
	}

	return nil, repository.ErrApplicationNotFound
}

func (f *fakeAppStore) Delete(_ context.Context, id uint) ([]string, error) {
	for i, app := range f.apps {
		if app.ID == id {
			var paths []string
			for _, file := range app.Files {
				paths = append(paths, file.FilePath)
			}
			f.apps = append(f.apps[:i], f.apps[i+1:]...)

			return paths, nil
		}
	}

	return nil, repository.ErrApplicationNotFound
}

func (f *fakeAppStore) Statistics(_ context.Context, formID uint, dateID *uint) (domain.Statistics, error) {
	stats := domain.Statistics{}
	counts := make(map[string]int)
	for _, app := range f.apps {
		if app.FormID != formID {
			continue
		}
		if dateID != nil && app.DateID != *dateID {
			continue
		}
		if app.AreaName != "" {
			counts[app.AreaName]++
		}
		stats.FlyerTotal += app.FlyerCount
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		stats.AreaCounts = append(stats.AreaCounts, domain.AreaCount{AreaName: name, Count: counts[name]})
	}

	return stats, nil
}
