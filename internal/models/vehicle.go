package models

import "time"

// Vehicle belongs to exactly one customer. Only the customer id is stored;
// the owning side is never embedded, so responses stay acyclic.
type Vehicle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"index;not null" json:"customer_id"`

	Model        string `gorm:"size:50;not null" json:"model"`
	LicensePlate string `gorm:"size:10;not null" json:"license_plate"`
	Type         string `gorm:"size:30;not null" json:"type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
