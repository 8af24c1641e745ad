package appointment

import (
	"context"
	"time"

	"github.com/washerhq/carwash-api/internal/audit"
	domain "github.com/washerhq/carwash-api/internal/domain/wash"
	"github.com/washerhq/carwash-api/internal/models"
)

type UpdateInput struct {
	Actor string

	VehicleID   *uint
	ScheduledAt *time.Time
	Status      *string
	ServiceType *string
}

type Update struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdate(repo domain.Repository, audit *audit.Dispatcher) *Update {
	return &Update{repo: repo, audit: audit}
}

func (uc *Update) Execute(
	ctx context.Context,
	id uint,
	in UpdateInput,
) (*models.Appointment, error) {

	var updated *models.Appointment

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		ap, err := repo.GetAppointment(ctx, id)
		if err != nil {
			return err
		}

		if in.ScheduledAt != nil {
			ap.ScheduledAt = *in.ScheduledAt
		}
		if in.Status != nil {
			// no transition graph: any status may replace any other
			ap.Status = *in.Status
		}
		if in.ServiceType != nil {
			ap.ServiceType = *in.ServiceType
		}
		if in.VehicleID != nil {
			if _, err := repo.GetVehicle(ctx, *in.VehicleID); err != nil {
				return err
			}
			ap.VehicleID = *in.VehicleID
		}

		if err := domain.ValidateAppointment(ap); err != nil {
			return err
		}

		if err := repo.SaveAppointment(ctx, ap); err != nil {
			return err
		}

		updated = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Username: in.Actor,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &updated.ID,
	})

	return updated, nil
}
