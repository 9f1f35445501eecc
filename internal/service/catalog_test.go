package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchemgmt/marche-api/internal/domain"
)

func TestDateOptions(t *testing.T) {
	catalog := newFakeCatalog()
	apps := newFakeAppStore()
	svc := NewCatalogService(catalog, apps)
	ctx := context.Background()

	form, err := catalog.CreateForm(ctx, domain.Form{Name: "春のマルシェ", Type: domain.FormTypeMarche})
	require.NoError(t, err)

	past, err := catalog.CreateDate(ctx, domain.EventDate{
		FormID:    form.ID,
		DateValue: time.Now().AddDate(0, 0, -7),
		IsActive:  true,
		SortOrder: 0,
	})
	require.NoError(t, err)

	upcoming, err := catalog.CreateDate(ctx, domain.EventDate{
		FormID:    form.ID,
		DateValue: time.Now().AddDate(0, 0, 7),
		IsActive:  true,
		SortOrder: 1,
	})
	require.NoError(t, err)

	inactive, err := catalog.CreateDate(ctx, domain.EventDate{
		FormID:    form.ID,
		DateValue: time.Now().AddDate(0, 0, 14),
		IsActive:  false,
		SortOrder: 2,
	})
	require.NoError(t, err)

	options, err := svc.DateOptions(ctx, form.ID)
	require.NoError(t, err)

	require.Len(t, options, 1)
	assert.Equal(t, upcoming.ID, options[0].DateID)
	assert.Equal(t, upcoming.Label(), options[0].Label)
	for _, option := range options {
		assert.NotEqual(t, past.ID, option.DateID)
		assert.NotEqual(t, inactive.ID, option.DateID)
	}
}

func TestAreaOptions(t *testing.T) {
	catalog := newFakeCatalog()
	apps := newFakeAppStore()
	svc := NewCatalogService(catalog, apps)
	ctx := context.Background()

	form, err := catalog.CreateForm(ctx, domain.Form{Name: "春のマルシェ", Type: domain.FormTypeMarche})
	require.NoError(t, err)

	date, err := catalog.CreateDate(ctx, domain.EventDate{
		FormID:    form.ID,
		DateValue: time.Now().AddDate(0, 0, 7),
		IsActive:  true,
	})
	require.NoError(t, err)

	limited, err := catalog.CreateArea(ctx, domain.Area{
		FormID:               form.ID,
		DateID:               date.ID,
		Name:                 "Aエリア",
		Price:                3000,
		Capacity:             2,
		CapacityLimitEnabled: true,
		IsActive:             true,
		SortOrder:            0,
	})
	require.NoError(t, err)

	open, err := catalog.CreateArea(ctx, domain.Area{
		FormID:    form.ID,
		DateID:    date.ID,
		Name:      "Bエリア",
		Price:     2000,
		IsActive:  true,
		SortOrder: 1,
	})
	require.NoError(t, err)

	full, err := catalog.CreateArea(ctx, domain.Area{
		FormID:               form.ID,
		DateID:               date.ID,
		Name:                 "Cエリア",
		Price:                1000,
		Capacity:             1,
		CapacityLimitEnabled: true,
		IsActive:             true,
		SortOrder:            2,
	})
	require.NoError(t, err)

	_, _, err = apps.Create(ctx, domain.Application{
		FormID:   form.ID,
		DateID:   date.ID,
		AreaName: full.Name,
	}, 0)
	require.NoError(t, err)

	options, err := svc.AreaOptions(ctx, form.ID, date.ID)
	require.NoError(t, err)

	require.Len(t, options, 2)
	assert.Equal(t, limited.ID, options[0].AreaID)
	assert.Equal(t, 2, options[0].Available)
	assert.Equal(t, open.ID, options[1].AreaID)
	assert.Equal(t, domain.UnlimitedAvailable, options[1].Available)
}

func TestCatalogReorder(t *testing.T) {
	catalog := newFakeCatalog()
	svc := NewCatalogService(catalog, newFakeAppStore())
	ctx := context.Background()

	form, err := catalog.CreateForm(ctx, domain.Form{Name: "春のマルシェ", Type: domain.FormTypeMarche})
	require.NoError(t, err)

	first, err := catalog.CreateDate(ctx, domain.EventDate{
		FormID:    form.ID,
		DateValue: time.Now().AddDate(0, 0, 7),
		IsActive:  true,
		SortOrder: 0,
	})
	require.NoError(t, err)

	second, err := catalog.CreateDate(ctx, domain.EventDate{
		FormID:    form.ID,
		DateValue: time.Now().AddDate(0, 0, 14),
		IsActive:  true,
		SortOrder: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.ReorderDates(ctx, form.ID, []uint{second.ID, first.ID}))

	dates, err := svc.ListDates(ctx, form.ID, true)
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, second.ID, dates[0].ID)
	assert.Equal(t, first.ID, dates[1].ID)
}
