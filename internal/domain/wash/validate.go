package wash

import (
	"time"

	"github.com/washerhq/carwash-api/internal/apperr"
	"github.com/washerhq/carwash-api/internal/models"
	"github.com/washerhq/carwash-api/internal/validators"
)

// Entity validation runs before every persistence attempt, on creation
// payloads and on the merged result of a partial update.

func ValidateCustomer(c *models.Customer) error {
	if err := validators.RequireString("name", c.Name, 100); err != nil {
		return err
	}
	if err := validators.RequireString("email", c.Email, 100); err != nil {
		return err
	}
	if err := validators.Email("email", c.Email); err != nil {
		return err
	}
	if err := validators.RequireString("phone", c.Phone, 0); err != nil {
		return err
	}
	return validators.Phone("phone", c.Phone)
}

func ValidateVehicle(v *models.Vehicle) error {
	if err := validators.RequireString("model", v.Model, 50); err != nil {
		return err
	}
	if err := validators.RequireString("license_plate", v.LicensePlate, 0); err != nil {
		return err
	}
	if err := validators.LicensePlate("license_plate", v.LicensePlate); err != nil {
		return err
	}
	return validators.RequireString("type", v.Type, 30)
}

func ValidateAppointment(ap *models.Appointment) error {
	if err := validators.RequireString("status", ap.Status, 0); err != nil {
		return err
	}
	if !Status(ap.Status).Valid() {
		return apperr.Validation("status", "must be one of: scheduled, completed, cancelled")
	}
	return validators.RequireString("service_type", ap.ServiceType, 100)
}

func ValidatePayment(p *models.Payment, now time.Time) error {
	if p.Amount <= 0 {
		return apperr.Validation("amount", "must be greater than 0")
	}
	if p.Date.IsZero() {
		return apperr.Validation("date", "must not be empty")
	}
	if p.Date.After(now) {
		return apperr.Validation("date", "must not be in the future")
	}
	return nil
}
