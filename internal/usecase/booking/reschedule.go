package booking

import (
	"context"

	"github.com/sharpcuts/booking-api/internal/audit"
	"github.com/sharpcuts/booking-api/internal/cache"
	domain "github.com/sharpcuts/booking-api/internal/domain/booking"
	"github.com/sharpcuts/booking-api/internal/httperr"
	"github.com/sharpcuts/booking-api/internal/models"
	"github.com/sharpcuts/booking-api/internal/timezone"
)

type RescheduleBookingInput struct {
	BookingID uint
	ActorID   uint

	// Unset fields keep the booking's current value.
	BarberID  *uint
	ServiceID *uint
	Date      *string
	Time      *string
}

type RescheduleBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
	tz    string
}

func NewRescheduleBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
	tz string,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
		tz:    tz,
	}
}

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	in RescheduleBookingInput,
) (*models.Booking, error) {

	bk, err := uc.repo.GetBookingByID(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanReschedule(domain.Status(bk.Status)); err != nil {
		return nil, err
	}

	oldBarberID, oldDate := bk.BarberID, bk.Date

	barberID := bk.BarberID
	if in.BarberID != nil {
		barberID = *in.BarberID
	}
	serviceID := bk.ServiceID
	if in.ServiceID != nil {
		serviceID = *in.ServiceID
	}
	date := bk.Date
	if in.Date != nil {
		date = *in.Date
	}
	timeStr := bk.Time
	if in.Time != nil {
		timeStr = *in.Time
	}

	service, err := uc.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if serviceID != bk.ServiceID && !service.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	today := timezone.TodayIn(uc.tz)

	snap, err := uc.repo.LoadSnapshot(ctx, today)
	if err != nil {
		return nil, err
	}

	// The booking must not collide with itself when kept on its own slot.
	if err := snap.WithoutBooking(bk.ID).CanBook(barberID, serviceID, date, timeStr, today); err != nil {
		return nil, err
	}

	bk.BarberID = barberID
	bk.ServiceID = serviceID
	bk.Date = date
	bk.Time = timeStr
	bk.Barber = models.Barber{}
	bk.Service = models.Service{}

	if err := uc.repo.UpdateBookingGuarded(ctx, bk, service.DurationMin); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, oldBarberID, oldDate)
	uc.cache.InvalidateDay(ctx, barberID, date)

	uc.audit.Dispatch(audit.Event{
		BarberID: &in.ActorID,
		Action:   "booking_rescheduled",
		Entity:   "booking",
		EntityID: &bk.ID,
		Metadata: map[string]any{
			"from": map[string]any{"barber_id": oldBarberID, "date": oldDate},
			"to":   map[string]any{"barber_id": barberID, "date": date, "time": timeStr},
		},
	})

	return bk, nil
}
