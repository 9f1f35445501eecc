package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Submission field names shared with the external registration forms.
const (
	FieldDate          = "date"
	FieldBoothLocation = "booth-location"
	FieldCustomerName  = "your-name"
	FieldCustomerEmail = "your-email"
	FieldFlyerCount    = "flyer-number"
	FieldVehicleHeight = "booth-car-height"

	// RentalFieldPrefix marks rental quantity fields, e.g. "rental-tent".
	RentalFieldPrefix = "rental-"
)

// FieldValue is one submitted form value. The form system posts either a
// scalar or a single-element list for the same field depending on the field
// type, so both shapes are preserved and callers normalize through First.
type FieldValue struct {
	scalar string
	list   []string
	isList bool
}

func NewScalar(value string) FieldValue {
	return FieldValue{scalar: value}
}

func NewList(values ...string) FieldValue {
	return FieldValue{list: values, isList: true}
}

// First returns the scalar value, or the first element for list values.
func (v FieldValue) First() string {
	if v.isList {
		if len(v.list) == 0 {
			return ""
		}

		return v.list[0]
	}

	return v.scalar
}

func (v FieldValue) IsEmpty() bool {
	return strings.TrimSpace(v.First()) == ""
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.isList {
		return json.Marshal(v.list)
	}

	return json.Marshal(v.scalar)
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}

		*v = NewList(list...)

		return nil
	}

	var scalar string
	if err := json.Unmarshal(data, &scalar); err != nil {
		// Numeric scalars are accepted as-is.
		var number json.Number
		if numErr := json.Unmarshal(data, &number); numErr != nil {
			return err
		}

		*v = NewScalar(number.String())

		return nil
	}

	*v = NewScalar(scalar)

	return nil
}

// FieldMap is the raw submitted payload, keyed by form field name.
type FieldMap map[string]FieldValue

// First returns the normalized value for key, or "" when absent.
func (m FieldMap) First(key string) string {
	return m[key].First()
}

// Int parses the normalized value for key as an integer.
func (m FieldMap) Int(key string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(m.First(key)))
	if err != nil {
		return 0, false
	}

	return n, true
}

// RentalQuantities collects positive rental quantities keyed by the catalog
// field key (the field name without the "rental-" prefix).
func (m FieldMap) RentalQuantities() map[string]int {
	quantities := make(map[string]int)
	for name := range m {
		if !strings.HasPrefix(name, RentalFieldPrefix) {
			continue
		}

		qty, ok := m.Int(name)
		if !ok || qty <= 0 {
			continue
		}

		quantities[strings.TrimPrefix(name, RentalFieldPrefix)] = qty
	}

	return quantities
}
