// Package schedule is the availability and scheduling engine. Every operation
// is a pure computation over a Snapshot, an in-memory copy of barbers,
// services and bookings that the surrounding application refreshes from the
// database on demand.
//
// The engine never performs I/O and never errors for missing or malformed
// data: unknown ids yield empty results, malformed working hours fall back to
// a standard slot ladder. Conflict checking is advisory against the snapshot;
// two clients booking the same slot from stale snapshots race, and the create
// path narrows (but does not fully close) that window with a row lock at
// write time.
package schedule

import "github.com/sharpcuts/booking-api/internal/models"

type Snapshot struct {
	Barbers  []models.Barber
	Services []models.Service
	Bookings []models.Booking
}

func (s *Snapshot) BarberByID(id uint) *models.Barber {
	for i := range s.Barbers {
		if s.Barbers[i].ID == id {
			return &s.Barbers[i]
		}
	}
	return nil
}

func (s *Snapshot) ServiceByID(id uint) *models.Service {
	for i := range s.Services {
		if s.Services[i].ID == id {
			return &s.Services[i]
		}
	}
	return nil
}

// WithoutBooking returns a copy of the snapshot with one booking removed.
// Reschedule checks use it so a booking does not conflict with itself.
func (s *Snapshot) WithoutBooking(id uint) *Snapshot {
	out := &Snapshot{
		Barbers:  s.Barbers,
		Services: s.Services,
		Bookings: make([]models.Booking, 0, len(s.Bookings)),
	}
	for _, bk := range s.Bookings {
		if bk.ID != id {
			out.Bookings = append(out.Bookings, bk)
		}
	}
	return out
}
