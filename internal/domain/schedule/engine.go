package schedule

import (
	"strings"
	"time"

	"github.com/sharpcuts/booking-api/internal/httperr"
	"github.com/sharpcuts/booking-api/internal/models"
)

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// IsDateAvailable reports whether the barber nominally works on the given
// calendar date. Dates strictly before today are never available; today is.
// Unknown barbers and unparseable dates are simply unavailable.
func (s *Snapshot) IsDateAvailable(barberID uint, date, today string) bool {
	barber := s.BarberByID(barberID)
	if barber == nil {
		return false
	}

	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}

	if t, err := time.Parse("2006-01-02", today); err == nil && d.Before(t) {
		return false
	}

	weekday := strings.ToLower(d.Weekday().String())
	for _, wd := range barber.WorkingDays {
		if strings.EqualFold(wd, weekday) {
			return true
		}
	}
	return false
}

// AvailableSlots pairs every candidate slot on the date with an availability
// flag for the requested service. Slots whose occupancy interval would run
// past closing are dropped entirely, not just flagged. Unknown barber or
// service, or an unavailable date, yields an empty sequence.
func (s *Snapshot) AvailableSlots(barberID, serviceID uint, date, today string) []TimeSlot {
	barber := s.BarberByID(barberID)
	service := s.ServiceByID(serviceID)

	if barber == nil || service == nil || !s.IsDateAvailable(barberID, date, today) {
		return []TimeSlot{}
	}

	slots := GenerateSlots(barber.WorkingStart, barber.WorkingEnd, DefaultStepMinutes)
	closing := closingMinute(barber.WorkingStart, barber.WorkingEnd)
	busy := s.busyIntervals(barberID, date)

	out := make([]TimeSlot, 0, len(slots))
	for _, t := range slots {
		start, ok := ParseClock(t)
		if !ok {
			continue
		}

		end := start + service.DurationMin
		if end > closing {
			continue
		}

		available := true
		for _, b := range busy {
			if Overlaps(start, end, b.start, b.end) {
				available = false
				break
			}
		}

		out = append(out, TimeSlot{Time: t, Available: available})
	}

	return out
}

// CanBook is the advisory conflict guard run before accepting a booking: the
// requested slot must be reported available by AvailableSlots against this
// snapshot. For edits, call it on Snapshot.WithoutBooking(editedID).
func (s *Snapshot) CanBook(barberID, serviceID uint, date, timeStr, today string) error {
	if s.BarberByID(barberID) == nil {
		return httperr.ErrBusiness("barber_not_found")
	}
	if s.ServiceByID(serviceID) == nil {
		return httperr.ErrBusiness("service_not_found")
	}
	if !s.IsDateAvailable(barberID, date, today) {
		return httperr.ErrBusiness("date_unavailable")
	}

	for _, slot := range s.AvailableSlots(barberID, serviceID, date, today) {
		if slot.Time == timeStr {
			if !slot.Available {
				return httperr.ErrBusiness("time_conflict")
			}
			return nil
		}
	}

	return httperr.ErrBusiness("outside_working_hours")
}

type busyInterval struct {
	start, end int
}

// busyIntervals collects the occupied minute intervals for a barber's date.
// Cancelled bookings and bookings whose service no longer resolves are
// skipped rather than treated as conflicts.
func (s *Snapshot) busyIntervals(barberID uint, date string) []busyInterval {
	var busy []busyInterval
	for _, bk := range s.Bookings {
		if bk.BarberID != barberID || bk.Date != date {
			continue
		}
		if bk.Status == models.BookingStatusCancelled {
			continue
		}

		service := s.ServiceByID(bk.ServiceID)
		if service == nil {
			continue
		}

		start, ok := ParseClock(bk.Time)
		if !ok {
			continue
		}

		busy = append(busy, busyInterval{start: start, end: start + service.DurationMin})
	}
	return busy
}
