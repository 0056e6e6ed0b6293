package domain

import "time"

type BookingStatus string

const (
	BookingUpcoming  BookingStatus = "Upcoming"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentPaid      PaymentStatus = "Paid"
	PaymentCancelled PaymentStatus = "Cancelled"
)

type Booking struct {
	ID        int64 `json:"id"`
	// Human-readable id, BK-<year>-<zero-padded sequence>. Assigned once
	// at creation from the per-year counter, never reused.
	BookingID     string        `json:"bookingId"`
	UserID        int64         `json:"userId" validate:"required"`
	ServiceID     int64         `json:"serviceId" validate:"required"`
	BookingDate   time.Time     `json:"bookingDate"`
	CheckInDate   time.Time     `json:"checkInDate" validate:"required"`
	CheckOutDate  time.Time     `json:"checkOutDate" validate:"required"`
	TotalDays     int           `json:"totalDays"`
	TotalGuests   int           `json:"totalGuests" validate:"required,gt=0"`
	TotalPrice    float64       `json:"totalPrice"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Status        BookingStatus `json:"bookingStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	CancelledAt   *time.Time    `json:"cancelledAt,omitempty"`
}

// Active reports whether the booking blocks other reservations of the same
// service. Cancelled bookings never block, whatever their payment status.
func (b *Booking) Active() bool {
	if b.Status == BookingCancelled {
		return false
	}
	return b.Status == BookingUpcoming || b.PaymentStatus == PaymentPaid
}

// Overlaps uses inclusive boundaries: ranges that touch on a date conflict.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return !b.CheckInDate.After(checkOut) && !b.CheckOutDate.Before(checkIn)
}

// BookingCounter backs sequential booking id generation. One row per year,
// incremented under a row lock inside the booking-create transaction.
type BookingCounter struct {
	Year int   `json:"year"`
	Seq  int64 `json:"seq"`
}
