package booking

import (
	"time"
)

type AvailabilityRequest struct {
	ServiceID    int64  `json:"serviceId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

type CreateBookingRequest struct {
	ServiceID    int64  `json:"serviceId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	TotalGuests  int    `json:"totalGuests" binding:"required,gt=0"`
}

type UpdateDatesRequest struct {
	BookingID    string `json:"bookingId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

type CancelBookingRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}

type AvailabilityResponse struct {
	ServiceID int64 `json:"serviceId"`
	Available bool  `json:"available"`
}

// BookingDetails is a booking with the denormalized service and user
// summary attached, as returned by my-bookings.
type BookingDetails struct {
	ID            int64      `json:"id"`
	BookingID     string     `json:"bookingId"`
	BookingDate   time.Time  `json:"bookingDate"`
	CheckInDate   time.Time  `json:"checkInDate"`
	CheckOutDate  time.Time  `json:"checkOutDate"`
	TotalDays     int        `json:"totalDays"`
	TotalGuests   int        `json:"totalGuests"`
	TotalPrice    float64    `json:"totalPrice"`
	PaymentStatus string     `json:"paymentStatus"`
	Status        string     `json:"bookingStatus"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`

	Service BookingServiceSummary `json:"service"`
	User    BookingUserSummary    `json:"user"`
}

type BookingServiceSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	PricePerDay float64 `json:"pricePerDay"`
}

type BookingUserSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// parseDate accepts the plain calendar form used by the web client and
// full RFC 3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
