package booking

import (
	"context"

	"github.com/sharpcuts/booking-api/internal/audit"
	domain "github.com/sharpcuts/booking-api/internal/domain/booking"
	"github.com/sharpcuts/booking-api/internal/httperr"
	"github.com/sharpcuts/booking-api/internal/models"
	"github.com/sharpcuts/booking-api/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	actorID uint,
	bookingID uint,
) (*models.Booking, error) {

	bk, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Complete(bk, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &actorID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &bk.ID,
	})

	return bk, nil
}
