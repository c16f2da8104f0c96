package models

import "github.com/shopspring/decimal"

// Platform is one of the delivery platforms a driver works for.
type Platform string

const (
	PlatformTalabat Platform = "talabat"
	PlatformJahez   Platform = "jahez"
	PlatformCareem  Platform = "careem"
	PlatformNoon    Platform = "noon"
	PlatformOther   Platform = "other"
)

// Platforms returns every platform value. Aggregations iterate this list so
// that adding a platform is a one-line change here.
func Platforms() []Platform {
	return []Platform{
		PlatformTalabat,
		PlatformJahez,
		PlatformCareem,
		PlatformNoon,
		PlatformOther,
	}
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformTalabat, PlatformJahez, PlatformCareem, PlatformNoon, PlatformOther:
		return true
	}
	return false
}

// DeliveryStatus labels a delivery job. There is no transition graph; any
// status may be set to any other via update.
type DeliveryStatus string

const (
	StatusCompleted  DeliveryStatus = "completed"
	StatusInProgress DeliveryStatus = "in_progress"
	StatusCancelled  DeliveryStatus = "cancelled"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusCancelled:
		return true
	}
	return false
}

// Delivery is a single delivery job in the logbook.
// Date is "YYYY-MM-DD" and Time is 24-hour "HH:MM", both local wall clock at
// creation; the date format doubles as chronological sort order.
type Delivery struct {
	ID       string          `json:"id"`
	Customer string          `json:"customer"`
	Platform Platform        `json:"platform"`
	Fee      decimal.Decimal `json:"fee"`
	Area     string          `json:"area"`
	Notes    string          `json:"notes"`
	Time     string          `json:"time"`
	Date     string          `json:"date"`
	Status   DeliveryStatus  `json:"status"`
}
