package wash

import (
	"context"

	"github.com/washerhq/carwash-api/internal/models"
)

// Repository is the storage contract for the four-entity ownership chain.
// Lookups return apperr.NotFoundError for missing ids. Deletes cascade
// through owned descendants inside a single transaction.
type Repository interface {
	// Transaction runs fn against a repository bound to a single
	// transaction, committing on nil and rolling back on error.
	Transaction(ctx context.Context, fn func(Repository) error) error

	// -------- Customer --------
	CreateCustomer(ctx context.Context, c *models.Customer) error
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	SaveCustomer(ctx context.Context, c *models.Customer) error
	DeleteCustomer(ctx context.Context, id uint) error

	// -------- Vehicle --------
	CreateVehicle(ctx context.Context, v *models.Vehicle) error
	GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error)
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	SaveVehicle(ctx context.Context, v *models.Vehicle) error
	DeleteVehicle(ctx context.Context, id uint) error

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	SaveAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id uint) error

	// -------- Payment --------
	CreatePayment(ctx context.Context, p *models.Payment) error
	GetPayment(ctx context.Context, id uint) (*models.Payment, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	SavePayment(ctx context.Context, p *models.Payment) error
	DeletePayment(ctx context.Context, id uint) error

	// PaymentExistsForAppointment reports whether an appointment already
	// has a linked payment, optionally ignoring one payment id.
	PaymentExistsForAppointment(ctx context.Context, appointmentID uint, excludePaymentID uint) (bool, error)
}
