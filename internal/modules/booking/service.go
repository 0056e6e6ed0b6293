package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"bookease/internal/domain"
	"bookease/internal/repository"

	"gorm.io/gorm"
)

// Service is the booking conflict & lifecycle engine. It owns the overlap
// invariant, price derivation and status transitions; identity and catalog
// are consulted through the narrow repository interfaces.
type Service struct {
	bookings BookingRepository
	services ServiceRepository
}

func NewService(bookings BookingRepository, services ServiceRepository) *Service {
	return &Service{
		bookings: bookings,
		services: services,
	}
}

type dateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func (s *Service) parseRange(checkIn, checkOut string) (dateRange, error) {
	in, err := parseDate(checkIn)
	if err != nil {
		return dateRange{}, ErrValidation
	}
	out, err := parseDate(checkOut)
	if err != nil {
		return dateRange{}, ErrValidation
	}
	if !out.After(in) {
		return dateRange{}, ErrValidation
	}
	return dateRange{checkIn: in, checkOut: out}, nil
}

func totalDays(r dateRange) int {
	return int(math.Ceil(r.checkOut.Sub(r.checkIn).Hours() / 24))
}

// CheckAvailability runs the overlap scan without side effects.
func (s *Service) CheckAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResponse, error) {
	r, err := s.parseRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	overlap, err := s.bookings.HasOverlap(ctx, req.ServiceID, r.checkIn, r.checkOut, 0)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrConflict
	}
	return &AvailabilityResponse{ServiceID: req.ServiceID, Available: true}, nil
}

// CreateBooking validates the range, resolves the service, derives the
// totals and persists the booking. The repository re-checks the overlap
// and mints the sequential id inside its transaction; the advisory scan
// here keeps the common conflict path cheap.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if userID == 0 {
		return nil, ErrValidation
	}
	if req.TotalGuests <= 0 {
		return nil, ErrValidation
	}
	r, err := s.parseRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if !svc.Available {
		return nil, ErrServiceNotFound
	}

	overlap, err := s.bookings.HasOverlap(ctx, req.ServiceID, r.checkIn, r.checkOut, 0)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrConflict
	}

	days := totalDays(r)
	now := time.Now()
	b := &domain.Booking{
		UserID:        userID,
		ServiceID:     svc.ID,
		BookingDate:   now,
		CheckInDate:   r.checkIn,
		CheckOutDate:  r.checkOut,
		TotalDays:     days,
		TotalGuests:   req.TotalGuests,
		TotalPrice:    float64(days) * svc.PricePerDay,
		PaymentStatus: domain.PaymentPaid,
		Status:        domain.BookingUpcoming,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDateConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return b, nil
}

// UpdateBookingDates moves an existing booking to a new range, re-running
// the conflict scan with the booking itself excluded and recomputing the
// derived totals against the current catalog price.
func (s *Service) UpdateBookingDates(ctx context.Context, req UpdateDatesRequest) (*domain.Booking, error) {
	r, err := s.parseRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByBookingID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	svc, err := s.services.GetByID(ctx, b.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	days := totalDays(r)
	b.CheckInDate = r.checkIn
	b.CheckOutDate = r.checkOut
	b.TotalDays = days
	b.TotalPrice = float64(days) * svc.PricePerDay

	if err := s.bookings.UpdateDates(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDateConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return b, nil
}

// CancelBooking moves the booking to Cancelled. Cancelling twice is an
// error, not a no-op; payment status is left untouched.
func (s *Service) CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if b.Status == domain.BookingCancelled {
		return nil, ErrAlreadyCancelled
	}

	now := time.Now()
	if err := s.bookings.Cancel(ctx, b.ID, now); err != nil {
		return nil, err
	}

	b.Status = domain.BookingCancelled
	b.CancelledAt = &now
	b.UpdatedAt = now
	return b, nil
}

// ListUserBookings returns the caller's bookings newest first. An empty
// result is a normal outcome, not an error.
func (s *Service) ListUserBookings(ctx context.Context, userID int64) ([]BookingDetails, error) {
	if userID == 0 {
		return nil, ErrValidation
	}

	rows, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingDetails{
			ID:            r.ID,
			BookingID:     r.BookingID,
			BookingDate:   r.BookingDate,
			CheckInDate:   r.CheckInDate,
			CheckOutDate:  r.CheckOutDate,
			TotalDays:     r.TotalDays,
			TotalGuests:   r.TotalGuests,
			TotalPrice:    r.TotalPrice,
			PaymentStatus: r.PaymentStatus,
			Status:        r.Status,
			CancelledAt:   r.CancelledAt,
			Service: BookingServiceSummary{
				ID:          r.ServiceID,
				Title:       r.ServiceTitle,
				Category:    r.ServiceCategory,
				Location:    r.ServiceLocation,
				PricePerDay: r.ServicePrice,
			},
			User: BookingUserSummary{
				ID:       r.UserID,
				FullName: r.UserFullName,
				Email:    r.UserEmail,
			},
		})
	}
	return out, nil
}
