package payment

import (
	"context"
	"time"

	"github.com/washerhq/carwash-api/internal/apperr"
	"github.com/washerhq/carwash-api/internal/audit"
	domain "github.com/washerhq/carwash-api/internal/domain/wash"
	"github.com/washerhq/carwash-api/internal/models"
)

type UpdateInput struct {
	Actor string

	AppointmentID *uint
	Amount        *float64
	Date          *time.Time
}

type Update struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdate(repo domain.Repository, audit *audit.Dispatcher) *Update {
	return &Update{repo: repo, audit: audit}
}

// Execute merges the non-nil fields into the stored payment. The completed
// gate runs again only when the appointment link itself changes; amount and
// date edits never re-check it.
func (uc *Update) Execute(
	ctx context.Context,
	id uint,
	in UpdateInput,
) (*models.Payment, error) {

	var updated *models.Payment

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		p, err := repo.GetPayment(ctx, id)
		if err != nil {
			return err
		}

		if in.Amount != nil {
			p.Amount = *in.Amount
		}
		if in.Date != nil {
			p.Date = *in.Date
		}
		if in.AppointmentID != nil && *in.AppointmentID != p.AppointmentID {
			ap, err := repo.GetAppointment(ctx, *in.AppointmentID)
			if err != nil {
				return err
			}
			if err := domain.CanRegisterPayment(domain.Status(ap.Status)); err != nil {
				return err
			}
			taken, err := repo.PaymentExistsForAppointment(ctx, *in.AppointmentID, p.ID)
			if err != nil {
				return err
			}
			if taken {
				return apperr.InvalidState("appointment already has a payment")
			}
			p.AppointmentID = *in.AppointmentID
		}

		if err := domain.ValidatePayment(p, time.Now()); err != nil {
			return err
		}

		if err := repo.SavePayment(ctx, p); err != nil {
			return err
		}

		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Username: in.Actor,
		Action:   "payment_updated",
		Entity:   "payment",
		EntityID: &updated.ID,
	})

	return updated, nil
}
