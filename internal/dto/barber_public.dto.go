package dto

// PublicBarberDTO is the customer-facing projection of a barber: no email,
// no role, nothing an admin screen would need.
type PublicBarberDTO struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	WorkingDays     []string `json:"working_days"`
	WorkingStart    string   `json:"working_start"`
	WorkingEnd      string   `json:"working_end"`
	ImageURL        string   `json:"image_url"`
	InstagramHandle string   `json:"instagram_handle"`
	JobTitle        string   `json:"job_title"`
}
