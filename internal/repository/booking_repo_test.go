package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bookease/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:booking_repo_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func seedUserAndService(t *testing.T, db *gorm.DB) (*domain.User, *domain.Service) {
	t.Helper()
	ctx := context.Background()

	users := NewUserRepository(db)
	u := &domain.User{FullName: "Demo User", Email: "demo@bookease.io", PasswordHash: "x", Role: domain.RoleUser}
	require.NoError(t, users.Create(ctx, u))

	services := NewServiceRepository(db)
	s := &domain.Service{
		Title:       "Seaside Resort Deluxe",
		Category:    domain.CategoryResort,
		Location:    "Phuket",
		PricePerDay: 100,
		Available:   true,
	}
	require.NoError(t, services.Create(ctx, s))
	return u, s
}

func testDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newBooking(u *domain.User, s *domain.Service, in, out string) *domain.Booking {
	checkIn := testDate(in)
	checkOut := testDate(out)
	days := int(checkOut.Sub(checkIn).Hours() / 24)
	return &domain.Booking{
		UserID:        u.ID,
		ServiceID:     s.ID,
		BookingDate:   time.Now(),
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		TotalDays:     days,
		TotalGuests:   2,
		TotalPrice:    float64(days) * s.PricePerDay,
		PaymentStatus: domain.PaymentPaid,
		Status:        domain.BookingUpcoming,
	}
}

func TestBookingRepository_Create_SequentialIDs(t *testing.T) {
	db := setupTestDB(t)
	u, s := seedUserAndService(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	year := time.Now().Year()

	b1 := newBooking(u, s, "2030-06-01", "2030-06-04")
	require.NoError(t, repo.Create(ctx, b1))
	assert.Equal(t, fmt.Sprintf("BK-%d-001", year), b1.BookingID)

	b2 := newBooking(u, s, "2030-06-05", "2030-06-07")
	require.NoError(t, repo.Create(ctx, b2))
	assert.Equal(t, fmt.Sprintf("BK-%d-002", year), b2.BookingID)
}

func TestBookingRepository_Create_OverlapRejected(t *testing.T) {
	db := setupTestDB(t)
	u, s := seedUserAndService(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking(u, s, "2030-06-01", "2030-06-04")))

	err := repo.Create(ctx, newBooking(u, s, "2030-06-03", "2030-06-05"))
	assert.ErrorIs(t, err, ErrDateConflict)

	// the rolled-back create must not burn a sequence number
	b := newBooking(u, s, "2030-07-01", "2030-07-03")
	require.NoError(t, repo.Create(ctx, b))
	assert.Equal(t, fmt.Sprintf("BK-%d-002", time.Now().Year()), b.BookingID)
}

func TestBookingRepository_Create_TouchingBoundaryConflicts(t *testing.T) {
	db := setupTestDB(t)
	u, s := seedUserAndService(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking(u, s, "2030-06-01", "2030-06-04")))

	// check-in on the existing check-out date conflicts (inclusive bounds)
	err := repo.Create(ctx, newBooking(u, s, "2030-06-04", "2030-06-06"))
	assert.ErrorIs(t, err, ErrDateConflict)

	// the day after the check-out is free
	require.NoError(t, repo.Create(ctx, newBooking(u, s, "2030-06-05", "2030-06-07")))
}

func TestBookingRepository_CancelledBookingsDoNotBlock(t *testing.T) {
	db := setupTestDB(t)
	u, s := seedUserAndService(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	first := newBooking(u, s, "2030-06-01", "2030-06-04")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Cancel(ctx, first.ID, time.Now()))

	// payment status stayed Paid, but the cancelled booking no longer blocks
	require.NoError(t, repo.Create(ctx, newBooking(u, s, "2030-06-02", "2030-06-05")))
}

func TestBookingRepository_UpdateDates_ExcludesSelf(t *testing.T) {
	db := setupTestDB(t)
	u, s := seedUserAndService(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := newBooking(u, s, "2030-06-01", "2030-06-04")
	require.NoError(t, repo.Create(ctx, b))

	// shifting within its own range must not conflict with itself
	b.CheckInDate = testDate("2030-06-02")
	b.CheckOutDate = testDate("2030-06-05")
	b.TotalDays = 3
	b.TotalPrice = 300
	require.NoError(t, repo.UpdateDates(ctx, b))

	got, err := repo.GetByBookingID(ctx, b.BookingID)
	require.NoError(t, err)
	assert.True(t, got.CheckInDate.Equal(testDate("2030-06-02")))
	assert.Equal(t, 3, got.TotalDays)
}

func TestBookingRepository_UpdateDates_ConflictWithOther(t *testing.T) {
	db := setupTestDB(t)
	u, s := seedUserAndService(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking(u, s, "2030-06-01", "2030-06-04")))
	second := newBooking(u, s, "2030-06-10", "2030-06-12")
	require.NoError(t, repo.Create(ctx, second))

	second.CheckInDate = testDate("2030-06-03")
	second.CheckOutDate = testDate("2030-06-06")
	err := repo.UpdateDates(ctx, second)
	assert.ErrorIs(t, err, ErrDateConflict)
}

func TestBookingRepository_ListByUser_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	u, s := seedUserAndService(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	first := newBooking(u, s, "2030-06-01", "2030-06-04")
	require.NoError(t, repo.Create(ctx, first))
	// force distinct created_at values
	require.NoError(t, db.Exec(
		"UPDATE bookings SET created_at = ? WHERE id = ?",
		time.Now().Add(-time.Hour), first.ID,
	).Error)

	second := newBooking(u, s, "2030-06-10", "2030-06-12")
	require.NoError(t, repo.Create(ctx, second))

	rows, err := repo.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.BookingID, rows[0].BookingID)
	assert.Equal(t, first.BookingID, rows[1].BookingID)
	assert.Equal(t, "Seaside Resort Deluxe", rows[0].ServiceTitle)
	assert.Equal(t, "demo@bookease.io", rows[0].UserEmail)

	other, err := repo.ListByUser(ctx, u.ID+100)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestBookingRepository_CompleteElapsed(t *testing.T) {
	db := setupTestDB(t)
	u, s := seedUserAndService(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	past := newBooking(u, s, "2020-01-01", "2020-01-03")
	require.NoError(t, repo.Create(ctx, past))
	future := newBooking(u, s, "2030-06-01", "2030-06-04")
	require.NoError(t, repo.Create(ctx, future))

	n, err := repo.CompleteElapsed(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetByID(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, got.Status)

	stillUpcoming, err := repo.GetByID(ctx, future.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingUpcoming, stillUpcoming.Status)
}
