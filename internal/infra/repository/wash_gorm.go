package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/washerhq/carwash-api/internal/apperr"
	domain "github.com/washerhq/carwash-api/internal/domain/wash"
	"github.com/washerhq/carwash-api/internal/models"
)

type WashGormRepository struct {
	db *gorm.DB
}

func NewWashGormRepository(db *gorm.DB) *WashGormRepository {
	return &WashGormRepository{db: db}
}

func (r *WashGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&WashGormRepository{db: tx})
	})
}

func notFoundOr(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(entity, id)
	}
	return err
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *WashGormRepository) CreateCustomer(
	ctx context.Context,
	c *models.Customer,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *WashGormRepository) GetCustomer(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFoundOr(err, "Customer", id)
	}
	return &c, nil
}

func (r *WashGormRepository) ListCustomers(
	ctx context.Context,
) ([]models.Customer, error) {

	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *WashGormRepository) SaveCustomer(
	ctx context.Context,
	c *models.Customer,
) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// DeleteCustomer removes the customer and walks the ownership chain
// top-down: vehicles, their appointments, and any linked payments all go
// in the same transaction.
func (r *WashGormRepository) DeleteCustomer(ctx context.Context, id uint) error {
	return r.Transaction(ctx, func(txRepo domain.Repository) error {
		tx := txRepo.(*WashGormRepository).db

		var c models.Customer
		if err := tx.First(&c, id).Error; err != nil {
			return notFoundOr(err, "Customer", id)
		}

		var vehicleIDs []uint
		if err := tx.Model(&models.Vehicle{}).
			Where("customer_id = ?", id).
			Pluck("id", &vehicleIDs).Error; err != nil {
			return err
		}

		if len(vehicleIDs) > 0 {
			if err := deleteAppointmentsForVehicles(tx, vehicleIDs); err != nil {
				return err
			}
			if err := tx.
				Where("id IN ?", vehicleIDs).
				Delete(&models.Vehicle{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&c).Error
	})
}

// --------------------------------------------------
// Vehicle
// --------------------------------------------------

func (r *WashGormRepository) CreateVehicle(
	ctx context.Context,
	v *models.Vehicle,
) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *WashGormRepository) GetVehicle(
	ctx context.Context,
	id uint,
) (*models.Vehicle, error) {

	var v models.Vehicle
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, notFoundOr(err, "Vehicle", id)
	}
	return &v, nil
}

func (r *WashGormRepository) ListVehicles(
	ctx context.Context,
) ([]models.Vehicle, error) {

	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *WashGormRepository) SaveVehicle(
	ctx context.Context,
	v *models.Vehicle,
) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *WashGormRepository) DeleteVehicle(ctx context.Context, id uint) error {
	return r.Transaction(ctx, func(txRepo domain.Repository) error {
		tx := txRepo.(*WashGormRepository).db

		var v models.Vehicle
		if err := tx.First(&v, id).Error; err != nil {
			return notFoundOr(err, "Vehicle", id)
		}

		if err := deleteAppointmentsForVehicles(tx, []uint{id}); err != nil {
			return err
		}

		return tx.Delete(&v).Error
	})
}

func deleteAppointmentsForVehicles(tx *gorm.DB, vehicleIDs []uint) error {
	var appointmentIDs []uint
	if err := tx.Model(&models.Appointment{}).
		Where("vehicle_id IN ?", vehicleIDs).
		Pluck("id", &appointmentIDs).Error; err != nil {
		return err
	}

	if len(appointmentIDs) == 0 {
		return nil
	}

	if err := tx.
		Where("appointment_id IN ?", appointmentIDs).
		Delete(&models.Payment{}).Error; err != nil {
		return err
	}

	return tx.
		Where("id IN ?", appointmentIDs).
		Delete(&models.Appointment{}).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *WashGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *WashGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, notFoundOr(err, "Appointment", id)
	}
	return &ap, nil
}

func (r *WashGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *WashGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *WashGormRepository) DeleteAppointment(ctx context.Context, id uint) error {
	return r.Transaction(ctx, func(txRepo domain.Repository) error {
		tx := txRepo.(*WashGormRepository).db

		var ap models.Appointment
		if err := tx.First(&ap, id).Error; err != nil {
			return notFoundOr(err, "Appointment", id)
		}

		if err := tx.
			Where("appointment_id = ?", id).
			Delete(&models.Payment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&ap).Error
	})
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *WashGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *WashGormRepository) GetPayment(
	ctx context.Context,
	id uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFoundOr(err, "Payment", id)
	}
	return &p, nil
}

func (r *WashGormRepository) ListPayments(
	ctx context.Context,
) ([]models.Payment, error) {

	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *WashGormRepository) SavePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *WashGormRepository) DeletePayment(ctx context.Context, id uint) error {
	return r.Transaction(ctx, func(txRepo domain.Repository) error {
		tx := txRepo.(*WashGormRepository).db

		var p models.Payment
		if err := tx.First(&p, id).Error; err != nil {
			return notFoundOr(err, "Payment", id)
		}

		return tx.Delete(&p).Error
	})
}

func (r *WashGormRepository) PaymentExistsForAppointment(
	ctx context.Context,
	appointmentID uint,
	excludePaymentID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("appointment_id = ?", appointmentID)

	if excludePaymentID != 0 {
		q = q.Where("id <> ?", excludePaymentID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*WashGormRepository)(nil)
