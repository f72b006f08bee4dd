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

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
	tz    string
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
	tz string,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
		tz:    tz,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	actorID uint,
	bookingID uint,
) (*models.Booking, error) {

	bk, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(bk, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	// The slot opens up again, so the day's cached availability is stale.
	uc.cache.InvalidateDay(ctx, bk.BarberID, bk.Date)

	uc.audit.Dispatch(audit.Event{
		BarberID: &actorID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &bk.ID,
	})

	return bk, nil
}
