package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/sharpcuts/booking-api/internal/audit"
	"github.com/sharpcuts/booking-api/internal/cache"
	domain "github.com/sharpcuts/booking-api/internal/domain/booking"
	"github.com/sharpcuts/booking-api/internal/httperr"
	"github.com/sharpcuts/booking-api/internal/models"
	"github.com/sharpcuts/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarberID  uint
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	SMSReminder   bool
	EmailReminder bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
	tz    string
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	service, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// Customers only ever see active services; the engine itself does not
	// care, so the rule lives here at the selection boundary.
	if !service.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	today := timezone.TodayIn(uc.tz)

	snap, err := uc.repo.LoadSnapshot(ctx, today)
	if err != nil {
		return nil, err
	}

	if err := snap.CanBook(in.BarberID, in.ServiceID, in.Date, in.Time, today); err != nil {
		return nil, err
	}

	bk := &models.Booking{
		Reference:     uuid.NewString(),
		BarberID:      in.BarberID,
		ServiceID:     in.ServiceID,
		Date:          in.Date,
		Time:          in.Time,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		SMSReminder:   in.SMSReminder,
		EmailReminder: in.EmailReminder,
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, bk, service.DurationMin); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, in.BarberID, in.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &bk.ID,
		Metadata: map[string]any{
			"barber_id": in.BarberID,
			"date":      in.Date,
			"time":      in.Time,
		},
	})

	return bk, nil
}
