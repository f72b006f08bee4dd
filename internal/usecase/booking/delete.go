package booking

import (
	"context"

	"github.com/sharpcuts/booking-api/internal/audit"
	"github.com/sharpcuts/booking-api/internal/cache"
	domain "github.com/sharpcuts/booking-api/internal/domain/booking"
	"github.com/sharpcuts/booking-api/internal/httperr"
)

// DeleteBooking removes the record entirely, unlike cancellation which keeps
// it for history. Admin-only.
type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	actorID uint,
	bookingID uint,
) error {

	bk, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	if err := uc.repo.DeleteBooking(ctx, bk.ID); err != nil {
		return err
	}

	uc.cache.InvalidateDay(ctx, bk.BarberID, bk.Date)

	uc.audit.Dispatch(audit.Event{
		BarberID: &actorID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bk.ID,
		Metadata: map[string]any{
			"date": bk.Date,
			"time": bk.Time,
		},
	})

	return nil
}
