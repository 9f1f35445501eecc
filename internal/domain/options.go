package domain

// DateOption is one selectable entry in a form's date selector.
type DateOption struct {
	DateID uint   `json:"date_id"`
	Label  string `json:"label"`
}

// AreaOption is one selectable entry in a form's booth location selector.
// Areas that are full are never offered, so the list shrinks as the event
// books up.
type AreaOption struct {
	AreaID    uint   `json:"area_id"`
	DateID    uint   `json:"date_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Available int    `json:"available"`
}
