package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VehicleID uint `gorm:"index;not null" json:"vehicle_id"`

	ScheduledAt time.Time `json:"scheduled_at"`

	Status      string `gorm:"size:20;default:'scheduled'" json:"status"`
	ServiceType string `gorm:"size:100;not null" json:"service_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
