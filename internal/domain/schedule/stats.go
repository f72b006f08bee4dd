package schedule

import "github.com/sharpcuts/booking-api/internal/models"

type Stats struct {
	TodayCount     int     `json:"today_count"`
	TotalCount     int     `json:"total_count"`
	CompletedCount int     `json:"completed_count"`
	TodayRevenue   float64 `json:"today_revenue"`
}

// Stats summarizes the booking snapshot for the dashboard. Cancelled bookings
// never count. A booking whose service cannot be resolved contributes zero
// revenue.
func (s *Snapshot) Stats(today string) Stats {
	var st Stats
	for _, bk := range s.Bookings {
		if bk.Status == models.BookingStatusCompleted {
			st.CompletedCount++
		}
		if bk.Status == models.BookingStatusCancelled {
			continue
		}

		st.TotalCount++

		if bk.Date == today {
			st.TodayCount++
			if service := s.ServiceByID(bk.ServiceID); service != nil {
				st.TodayRevenue += service.Price
			}
		}
	}
	return st
}
