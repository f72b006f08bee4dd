package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/sharpcuts/booking-api/internal/domain/booking"
	"github.com/sharpcuts/booking-api/internal/domain/schedule"
	"github.com/sharpcuts/booking-api/internal/httperr"
	"github.com/sharpcuts/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var bk models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		First(&bk, id).Error; err != nil {
		return nil, err
	}
	return &bk, nil
}

// --------------------------------------------------
// Snapshot
// --------------------------------------------------

func (r *BookingGormRepository) LoadSnapshot(
	ctx context.Context,
	fromDate string,
) (*schedule.Snapshot, error) {

	snap := &schedule.Snapshot{}

	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&snap.Barbers).Error; err != nil {
		return nil, err
	}

	// Inactive services included: the engine needs them to resolve the
	// durations of bookings made before a service was retired.
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&snap.Services).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("date >= ?", fromDate).
		Order("date ASC, time ASC").
		Find(&snap.Bookings).Error; err != nil {
		return nil, err
	}

	return snap, nil
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	bk *models.Booking,
	durationMin int,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoOverlap(tx, bk, durationMin, 0); err != nil {
			return err
		}
		return tx.Create(bk).Error
	})
}

func (r *BookingGormRepository) UpdateBookingGuarded(
	ctx context.Context,
	bk *models.Booking,
	durationMin int,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoOverlap(tx, bk, durationMin, bk.ID); err != nil {
			return err
		}
		return tx.Save(bk).Error
	})
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	bk *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(bk).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

// assertNoOverlap re-runs the engine's overlap rule against the barber's
// locked rows for that date. This narrows the snapshot race between two
// clients submitting the same slot; it is still not a database-level
// exclusion constraint.
func assertNoOverlap(tx *gorm.DB, bk *models.Booking, durationMin int, excludeID uint) error {
	q := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			bk.BarberID, bk.Date, models.BookingStatusCancelled,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var others []models.Booking
	if err := q.Find(&others).Error; err != nil {
		return err
	}
	if len(others) == 0 {
		return nil
	}

	serviceIDs := make([]uint, 0, len(others))
	for _, other := range others {
		serviceIDs = append(serviceIDs, other.ServiceID)
	}

	var services []models.Service
	if err := tx.Where("id IN ?", serviceIDs).Find(&services).Error; err != nil {
		return err
	}
	durations := make(map[uint]int, len(services))
	for _, s := range services {
		durations[s.ID] = s.DurationMin
	}

	start, ok := schedule.ParseClock(bk.Time)
	if !ok {
		return httperr.ErrBusiness("invalid_time")
	}
	end := start + durationMin

	for _, other := range others {
		dur, ok := durations[other.ServiceID]
		if !ok {
			continue // dangling service reference, not a conflict
		}
		otherStart, ok := schedule.ParseClock(other.Time)
		if !ok {
			continue
		}
		if schedule.Overlaps(start, end, otherStart, otherStart+dur) {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	return nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
