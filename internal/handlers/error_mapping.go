package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sharpcuts/booking-api/internal/httperr"
)

// mapBookingError translates the engine's and use cases' business codes into
// HTTP responses. Unknown errors fall through as 500.
func mapBookingError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "barber_not_found":
		httperr.BadRequest(c, "barber_not_found", "Barber not found.")
	case "service_not_found":
		httperr.BadRequest(c, "service_not_found", "Service not found.")
	case "service_inactive":
		httperr.BadRequest(c, "service_inactive", "This service is no longer offered.")
	case "date_unavailable":
		httperr.BadRequest(c, "date_unavailable", "The barber is not available on that date.")
	case "outside_working_hours":
		httperr.BadRequest(c, "outside_working_hours", "That time is outside working hours.")
	case "time_conflict":
		httperr.BadRequest(c, "time_conflict", "That slot has just been taken.")
	case "invalid_time":
		httperr.BadRequest(c, "invalid_time", "Invalid time.")
	case "invalid_state":
		httperr.BadRequest(c, "invalid_state", "The booking is not in a state that allows this.")
	case "booking_not_found":
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	default:
		httperr.Internal(c, "booking_operation_failed", "Something went wrong.")
	}
}
