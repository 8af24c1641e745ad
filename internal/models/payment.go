package models

import "time"

// Payment is the 1:1 child of a completed appointment. AppointmentID is
// unique so a second payment can never attach to the same appointment.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"uniqueIndex;not null" json:"appointment_id"`

	Amount    float64   `gorm:"not null" json:"amount"`
	Date      time.Time `gorm:"not null" json:"date"`
	Reference string    `gorm:"size:36" json:"reference"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
