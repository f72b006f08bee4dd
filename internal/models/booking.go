package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference is the code handed to the customer on confirmation.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	BarberID uint   `gorm:"index:idx_bookings_barber_date,priority:1" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date string `gorm:"size:10;index:idx_bookings_barber_date,priority:2" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5" json:"time"`                                            // HH:MM

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	SMSReminder   bool `json:"sms_reminder"`
	EmailReminder bool `json:"email_reminder"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
