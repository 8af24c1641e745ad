package appointment

import (
	"context"
	"time"

	"github.com/washerhq/carwash-api/internal/audit"
	domain "github.com/washerhq/carwash-api/internal/domain/wash"
	"github.com/washerhq/carwash-api/internal/models"
)

type CreateInput struct {
	Actor string

	VehicleID   uint
	ScheduledAt time.Time
	Status      string
	ServiceType string
}

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo domain.Repository, audit *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: audit}
}

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	status := in.Status
	if status == "" {
		status = string(domain.InitialStatus())
	}

	ap := &models.Appointment{
		VehicleID:   in.VehicleID,
		ScheduledAt: in.ScheduledAt,
		Status:      status,
		ServiceType: in.ServiceType,
	}

	if err := domain.ValidateAppointment(ap); err != nil {
		return nil, err
	}

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		if _, err := repo.GetVehicle(ctx, in.VehicleID); err != nil {
			return err
		}
		return repo.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Username: in.Actor,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
