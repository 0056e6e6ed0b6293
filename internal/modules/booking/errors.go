package booking

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrServiceNotFound  = errors.New("service not found or not available")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrConflict         = errors.New("service already booked for the selected dates")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)
