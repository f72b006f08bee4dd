package booking

import (
	"github.com/sharpcuts/booking-api/internal/httperr"
	"github.com/sharpcuts/booking-api/internal/models"
)

type Status string

const (
	StatusConfirmed Status = models.BookingStatusConfirmed
	StatusCancelled Status = models.BookingStatusCancelled
	StatusCompleted Status = models.BookingStatusCompleted
)

// CanCancel defines whether a booking may be cancelled.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete defines whether a booking may be marked completed.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReschedule defines whether a booking may be moved to another slot.
func CanReschedule(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
