package domain

import "time"

type ServiceCategory string

const (
	CategoryResort         ServiceCategory = "Resort"
	CategoryVehicle        ServiceCategory = "Vehicle"
	CategoryConferenceHall ServiceCategory = "Conference Hall"
)

// Service is a bookable catalog item. The booking engine only ever reads
// services; mutation goes through the seed tooling and the admin endpoint.
type Service struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title" validate:"required"`
	Category    ServiceCategory `json:"category" validate:"required"`
	Location    string          `json:"location"`
	PricePerDay float64         `json:"pricePerDay" validate:"required,gt=0"`
	Image       string          `json:"image,omitempty"`
	Available   bool            `json:"available"`
	Badge       string          `json:"badge,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
