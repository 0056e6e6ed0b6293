package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookease/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDateConflict reports that another active booking holds an overlapping
// date range for the same service.
var ErrDateConflict = errors.New("booking date range conflict")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	BookingID     string     `gorm:"column:booking_id;uniqueIndex"`
	UserID        int64      `gorm:"column:user_id;index"`
	ServiceID     int64      `gorm:"column:service_id;index"`
	BookingDate   time.Time  `gorm:"column:booking_date"`
	CheckInDate   time.Time  `gorm:"column:check_in_date"`
	CheckOutDate  time.Time  `gorm:"column:check_out_date"`
	TotalDays     int        `gorm:"column:total_days"`
	TotalGuests   int        `gorm:"column:total_guests"`
	TotalPrice    float64    `gorm:"column:total_price"`
	PaymentStatus string     `gorm:"column:payment_status"`
	Status        string     `gorm:"column:status"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	CancelledAt   *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

type bookingCounterModel struct {
	Year int   `gorm:"column:year;primaryKey"`
	Seq  int64 `gorm:"column:seq"`
}

func (bookingCounterModel) TableName() string { return "booking_counters" }

// UserBookingDetails is a booking row denormalized with service and user
// summary fields for the my-bookings listing.
type UserBookingDetails struct {
	ID              int64      `gorm:"column:id"`
	BookingID       string     `gorm:"column:booking_id"`
	UserID          int64      `gorm:"column:user_id"`
	ServiceID       int64      `gorm:"column:service_id"`
	BookingDate     time.Time  `gorm:"column:booking_date"`
	CheckInDate     time.Time  `gorm:"column:check_in_date"`
	CheckOutDate    time.Time  `gorm:"column:check_out_date"`
	TotalDays       int        `gorm:"column:total_days"`
	TotalGuests     int        `gorm:"column:total_guests"`
	TotalPrice      float64    `gorm:"column:total_price"`
	PaymentStatus   string     `gorm:"column:payment_status"`
	Status          string     `gorm:"column:status"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`
	ServiceTitle    string     `gorm:"column:service_title"`
	ServiceCategory string     `gorm:"column:service_category"`
	ServiceLocation string     `gorm:"column:service_location"`
	ServicePrice    float64    `gorm:"column:service_price"`
	UserFullName    string     `gorm:"column:user_full_name"`
	UserEmail       string     `gorm:"column:user_email"`
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:            m.ID,
		BookingID:     m.BookingID,
		UserID:        m.UserID,
		ServiceID:     m.ServiceID,
		BookingDate:   m.BookingDate,
		CheckInDate:   m.CheckInDate,
		CheckOutDate:  m.CheckOutDate,
		TotalDays:     m.TotalDays,
		TotalGuests:   m.TotalGuests,
		TotalPrice:    m.TotalPrice,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		Status:        domain.BookingStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CancelledAt:   m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		BookingID:     b.BookingID,
		UserID:        b.UserID,
		ServiceID:     b.ServiceID,
		BookingDate:   b.BookingDate,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		TotalDays:     b.TotalDays,
		TotalGuests:   b.TotalGuests,
		TotalPrice:    b.TotalPrice,
		PaymentStatus: string(b.PaymentStatus),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

// activeOverlapScope narrows a query to bookings that block the given date
// range on the service: not cancelled, Upcoming or already paid, and with
// inclusive-boundary overlap (ranges touching on a date conflict).
func activeOverlapScope(q *gorm.DB, serviceID int64, checkIn, checkOut time.Time, excludeID int64) *gorm.DB {
	q = q.Where("service_id = ?", serviceID).
		Where("status <> ?", string(domain.BookingCancelled)).
		Where("(status = ? OR payment_status = ?)",
			string(domain.BookingUpcoming), string(domain.PaymentPaid)).
		Where("check_in_date <= ? AND check_out_date >= ?", checkOut, checkIn)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

// HasOverlap runs the conflict scan outside any transaction. excludeID
// leaves out the booking being updated; pass 0 for creation checks.
func (r *BookingRepository) HasOverlap(ctx context.Context, serviceID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error) {
	var cnt int64
	tx := activeOverlapScope(
		r.db.WithContext(ctx).Model(&bookingModel{}),
		serviceID, checkIn, checkOut, excludeID,
	).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// Create assigns the next sequential booking id and inserts the booking in
// one transaction. The per-year counter row is locked FOR UPDATE first, so
// concurrent creates serialize on it and the conflict re-check inside the
// transaction cannot miss a racing insert.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		year := b.BookingDate.Year()

		var counter bookingCounterModel
		err := lockForUpdate(tx).
			Where("year = ?", year).
			First(&counter).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			counter = bookingCounterModel{Year: year, Seq: 0}
			if err := tx.Create(&counter).Error; err != nil {
				// Another transaction seeded this year's row first.
				if !isUniqueViolation(err) {
					return err
				}
				if err := lockForUpdate(tx).
					Where("year = ?", year).
					First(&counter).Error; err != nil {
					return err
				}
			}
		} else if err != nil {
			return err
		}

		var cnt int64
		if err := activeOverlapScope(
			tx.Model(&bookingModel{}),
			b.ServiceID, b.CheckInDate, b.CheckOutDate, 0,
		).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrDateConflict
		}

		counter.Seq++
		if err := tx.Model(&bookingCounterModel{}).
			Where("year = ?", year).
			Update("seq", counter.Seq).Error; err != nil {
			return err
		}

		b.BookingID = fmt.Sprintf("BK-%d-%03d", year, counter.Seq)
		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDateConflict
			}
			return err
		}

		*b = *toDomainBooking(m)
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// UpdateDates rewrites the date range and the derived totals, re-checking
// the overlap invariant inside the transaction with the booking itself
// excluded from the scan.
func (r *BookingRepository) UpdateDates(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := activeOverlapScope(
			tx.Model(&bookingModel{}),
			b.ServiceID, b.CheckInDate, b.CheckOutDate, b.ID,
		).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrDateConflict
		}

		now := time.Now()
		if err := tx.Model(&bookingModel{}).
			Where("id = ?", b.ID).
			Updates(map[string]any{
				"check_in_date":  b.CheckInDate,
				"check_out_date": b.CheckOutDate,
				"total_days":     b.TotalDays,
				"total_price":    b.TotalPrice,
				"updated_at":     now,
			}).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDateConflict
			}
			return err
		}
		b.UpdatedAt = now
		return nil
	})
}

func (r *BookingRepository) Cancel(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       string(domain.BookingCancelled),
			"cancelled_at": at,
			"updated_at":   at,
		}).Error
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]UserBookingDetails, error) {
	var rows []UserBookingDetails
	q := `
SELECT b.id, b.booking_id, b.user_id, b.service_id, b.booking_date,
       b.check_in_date, b.check_out_date, b.total_days, b.total_guests,
       b.total_price, b.payment_status, b.status, b.created_at, b.cancelled_at,
       s.title AS service_title, s.category AS service_category,
       s.location AS service_location, s.price_per_day AS service_price,
       u.full_name AS user_full_name, u.email AS user_email
FROM bookings b
JOIN services s ON s.id = b.service_id
JOIN users u ON u.id = b.user_id
WHERE b.user_id = ?
ORDER BY b.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// CompleteElapsed promotes Upcoming bookings whose check-out date has
// passed to Completed. Returns the number of rows touched.
func (r *BookingRepository) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("status = ? AND check_out_date < ?", string(domain.BookingUpcoming), now).
		Updates(map[string]any{
			"status":     string(domain.BookingCompleted),
			"updated_at": now,
		})
	return tx.RowsAffected, tx.Error
}

// lockForUpdate takes a row lock under postgres. SQLite rejects the clause
// and serializes writers on its own, so there it is a no-op.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// modernc sqlite reports constraint failures in the message only.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
