package catalog

type CreateServiceRequest struct {
	Title       string  `json:"title" validate:"required"`
	Category    string  `json:"category" validate:"required,oneof=Resort Vehicle 'Conference Hall'"`
	Location    string  `json:"location"`
	PricePerDay float64 `json:"pricePerDay" validate:"required,gt=0"`
	Image       string  `json:"image"`
	Available   bool    `json:"available"`
	Badge       string  `json:"badge"`
}
