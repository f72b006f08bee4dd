package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpcuts/booking-api/internal/httperr"
	"github.com/sharpcuts/booking-api/internal/models"
)

func httperrCode(err error, code string) bool {
	return httperr.IsBusiness(err, code)
}

// 2026-09-07 is a Monday, 2026-09-08 a Tuesday, 2026-09-06 a Sunday.
const (
	today    = "2026-09-07"
	tomorrow = "2026-09-08"
	sunday   = "2026-09-06"
	lastWeek = "2026-08-31"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Barbers: []models.Barber{
			{
				ID:           1,
				Name:         "Marco",
				WorkingDays:  []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
				WorkingStart: "09:00",
				WorkingEnd:   "17:00",
			},
			{
				ID:           2,
				Name:         "Dee",
				WorkingDays:  []string{"saturday"},
				WorkingStart: "10:00",
				WorkingEnd:   "14:00",
			},
		},
		Services: []models.Service{
			{ID: 10, Name: "Cut", DurationMin: 30, Price: 20, Active: true},
			{ID: 11, Name: "Cut & Beard", DurationMin: 45, Price: 32, Active: true},
			{ID: 12, Name: "Kids Cut", DurationMin: 15, Price: 15, Active: false},
		},
	}
}

func TestIsDateAvailable(t *testing.T) {
	s := testSnapshot()

	assert.True(t, s.IsDateAvailable(1, today, today), "today on a working day")
	assert.True(t, s.IsDateAvailable(1, tomorrow, today))
	assert.False(t, s.IsDateAvailable(1, sunday, today), "sunday not in working days")
	assert.False(t, s.IsDateAvailable(1, lastWeek, today), "past dates never available")
	assert.False(t, s.IsDateAvailable(99, today, today), "unknown barber")
	assert.False(t, s.IsDateAvailable(1, "not-a-date", today))
}

func TestIsDateAvailable_CaseInsensitiveWorkingDays(t *testing.T) {
	s := testSnapshot()
	s.Barbers[0].WorkingDays = []string{"Monday", "TUESDAY"}

	assert.True(t, s.IsDateAvailable(1, today, today))
	assert.True(t, s.IsDateAvailable(1, tomorrow, today))
}

func TestGenerateSlots_FullDay(t *testing.T) {
	slots := GenerateSlots("09:00", "17:00", 30)

	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	assert.Equal(t, "16:30", slots[15], "last slot start strictly before end")
}

func TestGenerateSlots_EmptyInterval(t *testing.T) {
	assert.Empty(t, GenerateSlots("09:00", "09:00", 30))
	assert.Empty(t, GenerateSlots("17:00", "09:00", 30))
}

func TestGenerateSlots_MalformedFallsBack(t *testing.T) {
	// Malformed bounds degrade to the standard half-hour ladder.
	slots := GenerateSlots("9am", "banana", 30)

	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:30", slots[15])
}

func TestGenerateSlots_NonPositiveStepUsesDefault(t *testing.T) {
	slots := GenerateSlots("09:00", "11:00", 0)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestAvailableSlots_ConflictDetection(t *testing.T) {
	s := testSnapshot()
	// 45-minute booking at 10:00 occupies [10:00, 10:45).
	s.Bookings = []models.Booking{
		{ID: 100, BarberID: 1, ServiceID: 11, Date: tomorrow, Time: "10:00", Status: models.BookingStatusConfirmed},
	}

	slots := s.AvailableSlots(1, 10, tomorrow, today)
	require.NotEmpty(t, slots)

	byTime := map[string]bool{}
	for _, sl := range slots {
		byTime[sl.Time] = sl.Available
	}

	avail, ok := byTime["09:30"]
	require.True(t, ok)
	assert.True(t, avail, "ends 10:00, touching does not conflict")

	avail, ok = byTime["10:00"]
	require.True(t, ok)
	assert.False(t, avail)

	avail, ok = byTime["10:30"]
	require.True(t, ok)
	assert.False(t, avail, "overlaps tail of 10:00-10:45")

	avail, ok = byTime["11:00"]
	require.True(t, ok)
	assert.True(t, avail)
}

func TestAvailableSlots_OffGridBookingOverlap(t *testing.T) {
	s := testSnapshot()
	s.Bookings = []models.Booking{
		{ID: 100, BarberID: 1, ServiceID: 11, Date: tomorrow, Time: "10:00", Status: models.BookingStatusConfirmed},
	}

	// A 30-minute candidate starting 09:45 would end 10:15, inside 10:00-10:45.
	// 09:45 is not on the half-hour grid, so assert through the guard instead.
	err := s.CanBook(1, 10, tomorrow, "09:45", today)
	assert.Error(t, err)
}

func TestAvailableSlots_ServiceMustFitBeforeClosing(t *testing.T) {
	s := testSnapshot()

	// 45-minute service: 16:30 would end 17:15, past closing, so the slot is
	// removed from the sequence entirely.
	slots := s.AvailableSlots(1, 11, tomorrow, today)
	require.NotEmpty(t, slots)

	last := slots[len(slots)-1]
	assert.Equal(t, "16:00", last.Time)
	for _, sl := range slots {
		assert.NotEqual(t, "16:30", sl.Time)
	}
}

func TestAvailableSlots_CancelledBookingsIgnored(t *testing.T) {
	s := testSnapshot()
	s.Bookings = []models.Booking{
		{ID: 100, BarberID: 1, ServiceID: 11, Date: tomorrow, Time: "10:00", Status: models.BookingStatusCancelled},
	}

	for _, sl := range s.AvailableSlots(1, 10, tomorrow, today) {
		assert.True(t, sl.Available, "slot %s blocked by a cancelled booking", sl.Time)
	}
}

func TestAvailableSlots_DanglingServiceReferenceIgnored(t *testing.T) {
	s := testSnapshot()
	s.Bookings = []models.Booking{
		{ID: 100, BarberID: 1, ServiceID: 999, Date: tomorrow, Time: "10:00", Status: models.BookingStatusConfirmed},
	}

	for _, sl := range s.AvailableSlots(1, 10, tomorrow, today) {
		assert.True(t, sl.Available)
	}
}

func TestAvailableSlots_EmptyForMissingInputs(t *testing.T) {
	s := testSnapshot()

	assert.Empty(t, s.AvailableSlots(99, 10, tomorrow, today), "unknown barber")
	assert.Empty(t, s.AvailableSlots(1, 99, tomorrow, today), "unknown service")
	assert.Empty(t, s.AvailableSlots(1, 10, sunday, today), "non-working day")
	assert.Empty(t, s.AvailableSlots(1, 10, lastWeek, today), "past date")
}

func TestAvailableSlots_Ordering(t *testing.T) {
	s := testSnapshot()

	slots := s.AvailableSlots(2, 10, "2026-09-12", today) // a Saturday
	require.NotEmpty(t, slots)

	prev := -1
	for _, sl := range slots {
		cur, ok := ParseClock(sl.Time)
		require.True(t, ok)
		assert.Greater(t, cur, prev)
		prev = cur
	}
}

func TestCanBook_RoundTrip(t *testing.T) {
	s := testSnapshot()

	before := s.AvailableSlots(1, 10, tomorrow, today)
	require.NotEmpty(t, before)

	var picked string
	for _, sl := range before {
		if sl.Available {
			picked = sl.Time
			break
		}
	}
	require.NotEmpty(t, picked)
	require.NoError(t, s.CanBook(1, 10, tomorrow, picked, today))

	// Submit the booking into the snapshot and re-resolve: exactly that slot
	// flips to unavailable, everything else keeps its status.
	s.Bookings = append(s.Bookings, models.Booking{
		ID: 200, BarberID: 1, ServiceID: 10,
		Date: tomorrow, Time: picked,
		Status: models.BookingStatusConfirmed,
	})

	after := s.AvailableSlots(1, 10, tomorrow, today)
	require.Len(t, after, len(before))

	for i := range after {
		assert.Equal(t, before[i].Time, after[i].Time)
		if after[i].Time == picked {
			assert.False(t, after[i].Available)
		} else {
			assert.Equal(t, before[i].Available, after[i].Available)
		}
	}

	assert.True(t, httperrCode(s.CanBook(1, 10, tomorrow, picked, today), "time_conflict"))
}

func TestCanBook_ErrorCodes(t *testing.T) {
	s := testSnapshot()

	assert.True(t, httperrCode(s.CanBook(99, 10, tomorrow, "10:00", today), "barber_not_found"))
	assert.True(t, httperrCode(s.CanBook(1, 99, tomorrow, "10:00", today), "service_not_found"))
	assert.True(t, httperrCode(s.CanBook(1, 10, sunday, "10:00", today), "date_unavailable"))
	assert.True(t, httperrCode(s.CanBook(1, 10, lastWeek, "10:00", today), "date_unavailable"))
	assert.True(t, httperrCode(s.CanBook(1, 10, tomorrow, "08:00", today), "outside_working_hours"))
	assert.True(t, httperrCode(s.CanBook(1, 11, tomorrow, "16:30", today), "outside_working_hours"))
}

func TestCanBook_WithoutBookingForReschedule(t *testing.T) {
	s := testSnapshot()
	s.Bookings = []models.Booking{
		{ID: 100, BarberID: 1, ServiceID: 10, Date: tomorrow, Time: "10:00", Status: models.BookingStatusConfirmed},
	}

	// The booking conflicts with itself in the raw snapshot...
	assert.Error(t, s.CanBook(1, 10, tomorrow, "10:00", today))

	// ...but not once excluded, so keeping its own slot on edit is legal.
	assert.NoError(t, s.WithoutBooking(100).CanBook(1, 10, tomorrow, "10:00", today))
}

func TestStats(t *testing.T) {
	s := testSnapshot()
	s.Bookings = []models.Booking{
		{ID: 1, BarberID: 1, ServiceID: 10, Date: today, Time: "09:00", Status: models.BookingStatusConfirmed},  // £20 today
		{ID: 2, BarberID: 1, ServiceID: 11, Date: today, Time: "10:00", Status: models.BookingStatusCancelled},  // ignored
		{ID: 3, BarberID: 1, ServiceID: 11, Date: tomorrow, Time: "11:00", Status: models.BookingStatusConfirmed},
		{ID: 4, BarberID: 2, ServiceID: 10, Date: lastWeek, Time: "10:00", Status: models.BookingStatusCompleted},
		{ID: 5, BarberID: 1, ServiceID: 999, Date: today, Time: "15:00", Status: models.BookingStatusConfirmed}, // dangling service
	}

	st := s.Stats(today)

	assert.Equal(t, 2, st.TodayCount)
	assert.Equal(t, 4, st.TotalCount)
	assert.Equal(t, 1, st.CompletedCount)
	assert.InDelta(t, 20.0, st.TodayRevenue, 0.001, "cancelled and dangling bookings contribute nothing")
}

func TestStats_EmptySnapshot(t *testing.T) {
	s := &Snapshot{}
	st := s.Stats(today)

	assert.Zero(t, st.TodayCount)
	assert.Zero(t, st.TotalCount)
	assert.Zero(t, st.CompletedCount)
	assert.Zero(t, st.TodayRevenue)
}
