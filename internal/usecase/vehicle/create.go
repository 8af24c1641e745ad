package vehicle

import (
	"context"

	"github.com/washerhq/carwash-api/internal/audit"
	domain "github.com/washerhq/carwash-api/internal/domain/wash"
	"github.com/washerhq/carwash-api/internal/models"
)

type CreateInput struct {
	Actor string

	CustomerID   uint
	Model        string
	LicensePlate string
	Type         string
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
) (*models.Vehicle, error) {

	v := &models.Vehicle{
		CustomerID:   in.CustomerID,
		Model:        in.Model,
		LicensePlate: in.LicensePlate,
		Type:         in.Type,
	}

	if err := domain.ValidateVehicle(v); err != nil {
		return nil, err
	}

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		// the owning customer is always re-resolved by id, never taken
		// from the payload
		if _, err := repo.GetCustomer(ctx, in.CustomerID); err != nil {
			return err
		}
		return repo.CreateVehicle(ctx, v)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Username: in.Actor,
		Action:   "vehicle_created",
		Entity:   "vehicle",
		EntityID: &v.ID,
	})

	return v, nil
}
