package domain

import "time"

// LowRoofMaxHeightMM splits vehicles into low/high roof for the per-date
// statistics. Parking rows at the venues clear 1550mm.
const LowRoofMaxHeightMM = 1550

// RentalLine is one rented item recorded on an application, keyed in
// Application.RentalLines by the full rental field name.
type RentalLine struct {
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
	Unit      string `json:"unit"`
}

// Application is one vendor submission accepted against a form and date.
// Fields keeps the raw payload; AreaName, FlyerCount and VehicleHeight are
// derived from it at intake time.
type Application struct {
	ID            uint                  `json:"id"`
	FormID        uint                  `json:"form_id"`
	DateID        uint                  `json:"date_id"`
	Fields        FieldMap              `json:"fields"`
	AreaName      string                `json:"area_name"`
	FlyerCount    int                   `json:"flyer_count"`
	VehicleHeight string                `json:"vehicle_height"`
	RentalLines   map[string]RentalLine `json:"rental_lines"`
	Files         []UploadedFile        `json:"files"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// UploadedFile is one attachment stored for an application.
type UploadedFile struct {
	ID            uint      `json:"id"`
	ApplicationID uint      `json:"application_id"`
	FileName      string    `json:"file_name"`
	FilePath      string    `json:"file_path"`
	FileURL       string    `json:"file_url"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

type AreaCount struct {
	AreaName string `json:"area_name"`
	Count    int    `json:"count"`
}

type RentalTotal struct {
	ItemName string `json:"item_name"`
	Total    int    `json:"total"`
}

// Statistics aggregates the applications of one (form, date).
type Statistics struct {
	AreaCounts   []AreaCount   `json:"area_counts"`
	FlyerTotal   int           `json:"flyer_total"`
	LowRoofCars  int           `json:"low_roof_cars"`
	HighRoofCars int           `json:"high_roof_cars"`
	RentalTotals []RentalTotal `json:"rental_totals"`
}
