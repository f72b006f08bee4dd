package models

import "time"

// Barber is both a bookable resource and an admin login.
type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'standard'" json:"role"`

	// Lowercase weekday names ("monday", ...) on which bookings are accepted.
	WorkingDays []string `gorm:"serializer:json;type:text" json:"working_days"`

	// Daily half-open interval [WorkingStart, WorkingEnd), HH:MM, shop-local.
	WorkingStart string `gorm:"size:5;default:'09:00'" json:"working_start"`
	WorkingEnd   string `gorm:"size:5;default:'17:00'" json:"working_end"`

	ImageURL        string `gorm:"size:255" json:"image_url"`
	InstagramHandle string `gorm:"size:100" json:"instagram_handle"`
	JobTitle        string `gorm:"size:100" json:"job_title"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
