package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBooking_Overlaps(t *testing.T) {
	b := &Booking{
		CheckInDate:  date("2024-06-01"),
		CheckOutDate: date("2024-06-04"),
	}

	// partial overlap on the tail of the range
	assert.True(t, b.Overlaps(date("2024-06-03"), date("2024-06-05")))
	// fully contained
	assert.True(t, b.Overlaps(date("2024-06-02"), date("2024-06-03")))
	// containing range
	assert.True(t, b.Overlaps(date("2024-05-30"), date("2024-06-10")))
	// touching boundary dates count as a conflict
	assert.True(t, b.Overlaps(date("2024-06-04"), date("2024-06-07")))
	assert.True(t, b.Overlaps(date("2024-05-30"), date("2024-06-01")))
	// strictly after check-out does not conflict
	assert.False(t, b.Overlaps(date("2024-06-05"), date("2024-06-07")))
	// strictly before check-in does not conflict
	assert.False(t, b.Overlaps(date("2024-05-28"), date("2024-05-31")))
}

func TestBooking_Active(t *testing.T) {
	upcoming := &Booking{Status: BookingUpcoming, PaymentStatus: PaymentPending}
	assert.True(t, upcoming.Active())

	completedPaid := &Booking{Status: BookingCompleted, PaymentStatus: PaymentPaid}
	assert.True(t, completedPaid.Active())

	// cancelled never blocks, even when the payment stayed Paid
	cancelledPaid := &Booking{Status: BookingCancelled, PaymentStatus: PaymentPaid}
	assert.False(t, cancelledPaid.Active())

	completedPending := &Booking{Status: BookingCompleted, PaymentStatus: PaymentPending}
	assert.False(t, completedPending.Active())
}
