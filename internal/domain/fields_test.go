package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)

	return d
}

func TestFieldValueUnmarshal(t *testing.T) {
	var m FieldMap
	payload := `{
		"your-name": "山田太郎",
		"booth-location": ["Aエリア", "unused"],
		"flyer-number": 300,
		"rental-table": "2"
	}`

	require.NoError(t, json.Unmarshal([]byte(payload), &m))

	assert.Equal(t, "山田太郎", m.First("your-name"))
	assert.Equal(t, "Aエリア", m.First("booth-location"), "array values normalize to the first element")
	assert.Equal(t, "300", m.First("flyer-number"), "numeric scalars read back as strings")
	assert.Equal(t, "2", m.First("rental-table"))
	assert.Equal(t, "", m.First("no-such-field"))
}

func TestFieldValueMarshalRoundTrip(t *testing.T) {
	m := FieldMap{
		"date":  NewScalar("2024年12月12日 (木)"),
		"items": NewList("a", "b"),
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var back FieldMap
	require.NoError(t, json.Unmarshal(data, &back))

	assert.Equal(t, "2024年12月12日 (木)", back.First("date"))
	assert.Equal(t, "a", back.First("items"))
}

func TestFieldMapInt(t *testing.T) {
	var m FieldMap
	require.NoError(t, json.Unmarshal([]byte(`{"flyer-number": "250", "booth-car-height": "abc"}`), &m))

	n, ok := m.Int("flyer-number")
	assert.True(t, ok)
	assert.Equal(t, 250, n)

	_, ok = m.Int("booth-car-height")
	assert.False(t, ok)

	_, ok = m.Int("missing")
	assert.False(t, ok)
}

func TestRentalQuantities(t *testing.T) {
	var m FieldMap
	require.NoError(t, json.Unmarshal([]byte(`{
		"rental-table": "2",
		"rental-chair": ["4"],
		"rental-tent": "0",
		"rental-junk": "abc",
		"your-name": "x"
	}`), &m))

	got := m.RentalQuantities()

	assert.Equal(t, map[string]int{"table": 2, "chair": 4}, got, "zero, non-numeric and non-rental fields are dropped")
}

func TestEventDateLabel(t *testing.T) {
	// 2024-12-12 is a Thursday.
	d := EventDate{DateValue: mustDate(t, "2024-12-12")}
	assert.Equal(t, "2024年12月12日 (木)", d.Label())

	d.Description = "午前の部"
	assert.Equal(t, "2024年12月12日 (木) - 午前の部", d.Label())
}

func TestJapaneseDate(t *testing.T) {
	assert.Equal(t, "2024年12月12日(木)", JapaneseDate(mustDate(t, "2024-12-12")))
	assert.Equal(t, "2025年1月5日(日)", JapaneseDate(mustDate(t, "2025-01-05")))
}

func TestAreaHasCapacityLimit(t *testing.T) {
	assert.False(t, Area{CapacityLimitEnabled: false, Capacity: 10}.HasCapacityLimit())
	assert.False(t, Area{CapacityLimitEnabled: true, Capacity: 0}.HasCapacityLimit(), "capacity 0 means unlimited even with the flag on")
	assert.True(t, Area{CapacityLimitEnabled: true, Capacity: 1}.HasCapacityLimit())
}
