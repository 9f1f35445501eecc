package domain

import (
	"fmt"
	"time"
)

var japaneseWeekdays = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// JapaneseDate formats a date the way it appears in payment descriptions,
// e.g. 2024年12月12日(木).
func JapaneseDate(t time.Time) string {
	return fmt.Sprintf("%d年%d月%d日(%s)", t.Year(), int(t.Month()), t.Day(), japaneseWeekdays[t.Weekday()])
}

// EventDate is one concrete date on which a form's event takes place.
type EventDate struct {
	ID          uint      `json:"id"`
	FormID      uint      `json:"form_id"`
	DateValue   time.Time `json:"date_value"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Label renders the option label shown in the form's date selector, e.g.
// 2024年12月12日 (木) - 午前の部. Submissions carry this label back and date
// lookups compare against it, so the format must stay stable.
func (d EventDate) Label() string {
	t := d.DateValue
	label := fmt.Sprintf("%d年%d月%d日 (%s)", t.Year(), int(t.Month()), t.Day(), japaneseWeekdays[t.Weekday()])
	if d.Description != "" {
		label += " - " + d.Description
	}

	return label
}
