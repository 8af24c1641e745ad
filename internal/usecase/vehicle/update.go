package vehicle

import (
	"context"

	"github.com/washerhq/carwash-api/internal/audit"
	domain "github.com/washerhq/carwash-api/internal/domain/wash"
	"github.com/washerhq/carwash-api/internal/models"
)

type UpdateInput struct {
	Actor string

	CustomerID   *uint
	Model        *string
	LicensePlate *string
	Type         *string
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
) (*models.Vehicle, error) {

	var updated *models.Vehicle

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		v, err := repo.GetVehicle(ctx, id)
		if err != nil {
			return err
		}

		if in.Model != nil {
			v.Model = *in.Model
		}
		if in.LicensePlate != nil {
			v.LicensePlate = *in.LicensePlate
		}
		if in.Type != nil {
			v.Type = *in.Type
		}
		if in.CustomerID != nil {
			if _, err := repo.GetCustomer(ctx, *in.CustomerID); err != nil {
				return err
			}
			v.CustomerID = *in.CustomerID
		}

		if err := domain.ValidateVehicle(v); err != nil {
			return err
		}

		if err := repo.SaveVehicle(ctx, v); err != nil {
			return err
		}

		updated = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Username: in.Actor,
		Action:   "vehicle_updated",
		Entity:   "vehicle",
		EntityID: &updated.ID,
	})

	return updated, nil
}
