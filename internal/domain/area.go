package domain

import "time"

// UnlimitedAvailable is the sentinel reported for areas without an effective
// capacity limit.
const UnlimitedAvailable = 999999

// Area is a booth/location slot within an event date. Capacity 0 means
// unlimited; the limit only applies when CapacityLimitEnabled is set.
type Area struct {
	ID                   uint      `json:"id"`
	FormID               uint      `json:"form_id"`
	DateID               uint      `json:"date_id"`
	Name                 string    `json:"name"`
	Price                int       `json:"price"`
	Capacity             int       `json:"capacity"`
	CapacityLimitEnabled bool      `json:"capacity_limit_enabled"`
	IsActive             bool      `json:"is_active"`
	SortOrder            int       `json:"sort_order"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// HasCapacityLimit reports whether the capacity check applies at all.
func (a Area) HasCapacityLimit() bool {
	return a.CapacityLimitEnabled && a.Capacity > 0
}

// CapacityStatus is a point-in-time availability snapshot for one area.
type CapacityStatus struct {
	AreaName             string `json:"area_name"`
	Capacity             int    `json:"capacity"`
	CapacityLimitEnabled bool   `json:"capacity_limit_enabled"`
	Used                 int    `json:"used"`
	Available            int    `json:"available"`
	IsFull               bool   `json:"is_full"`
}
