package appointment

import (
	"context"

	"github.com/washerhq/carwash-api/internal/apperr"
	"github.com/washerhq/carwash-api/internal/audit"
	domain "github.com/washerhq/carwash-api/internal/domain/wash"
	"github.com/washerhq/carwash-api/internal/models"
)

// UpdateStatus sets an appointment's status directly. Any value from the
// enum is accepted regardless of the current status.
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(repo domain.Repository, audit *audit.Dispatcher) *UpdateStatus {
	return &UpdateStatus{repo: repo, audit: audit}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor string,
	id uint,
	status string,
) (*models.Appointment, error) {

	if !domain.Status(status).Valid() {
		return nil, apperr.Validation("status", "must be one of: scheduled, completed, cancelled")
	}

	var updated *models.Appointment

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		ap, err := repo.GetAppointment(ctx, id)
		if err != nil {
			return err
		}

		ap.Status = status
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
		Username: actor,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &updated.ID,
		Metadata: map[string]string{"status": status},
	})

	return updated, nil
}
