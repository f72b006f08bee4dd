package booking

import (
	"context"

	"github.com/sharpcuts/booking-api/internal/domain/schedule"
	"github.com/sharpcuts/booking-api/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// -------- Snapshot --------

	// LoadSnapshot materializes the in-memory state the engine computes
	// against: all barbers, all services (inactive included, the engine
	// filters), and bookings dated fromDate or later.
	LoadSnapshot(
		ctx context.Context,
		fromDate string,
	) (*schedule.Snapshot, error)

	// -------- Mutations --------

	// CreateBooking re-checks for overlaps inside a transaction with the
	// barber's rows for that date locked, then inserts.
	CreateBooking(
		ctx context.Context,
		bk *models.Booking,
		durationMin int,
	) error

	// UpdateBookingGuarded saves a rescheduled booking under the same
	// locked re-check, ignoring the booking's own row.
	UpdateBookingGuarded(
		ctx context.Context,
		bk *models.Booking,
		durationMin int,
	) error

	UpdateBooking(
		ctx context.Context,
		bk *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error
}
