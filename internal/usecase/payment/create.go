package payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/washerhq/carwash-api/internal/apperr"
	"github.com/washerhq/carwash-api/internal/audit"
	domain "github.com/washerhq/carwash-api/internal/domain/wash"
	"github.com/washerhq/carwash-api/internal/models"
)

type CreateInput struct {
	Actor string

	AppointmentID uint
	Amount        float64
	Date          time.Time
}

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo domain.Repository, audit *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: audit}
}

// Execute registers a payment against a completed appointment. The gate is
// checked at write time only; a later status change never invalidates an
// existing payment.
func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Payment, error) {

	p := &models.Payment{
		AppointmentID: in.AppointmentID,
		Amount:        in.Amount,
		Date:          in.Date,
		Reference:     uuid.NewString(),
	}

	if err := domain.ValidatePayment(p, time.Now()); err != nil {
		return nil, err
	}

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		ap, err := repo.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return err
		}

		if err := domain.CanRegisterPayment(domain.Status(ap.Status)); err != nil {
			return err
		}

		taken, err := repo.PaymentExistsForAppointment(ctx, in.AppointmentID, 0)
		if err != nil {
			return err
		}
		if taken {
			return apperr.InvalidState("appointment already has a payment")
		}

		return repo.CreatePayment(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Username: in.Actor,
		Action:   "payment_registered",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return p, nil
}
