package booking

import (
	"context"
	"time"

	"bookease/internal/domain"
	"bookease/internal/repository"
)

// BookingRepository is the slice of the booking store this service uses.
type BookingRepository interface {
	HasOverlap(ctx context.Context, serviceID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error)
	UpdateDates(ctx context.Context, b *domain.Booking) error
	Cancel(ctx context.Context, id int64, at time.Time) error
	ListByUser(ctx context.Context, userID int64) ([]repository.UserBookingDetails, error)
}

// ServiceRepository gives the engine read access to the catalog.
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}
