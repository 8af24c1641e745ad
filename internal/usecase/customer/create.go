package customer

import (
	"context"

	"github.com/washerhq/carwash-api/internal/audit"
	domain "github.com/washerhq/carwash-api/internal/domain/wash"
	"github.com/washerhq/carwash-api/internal/models"
)

type CreateInput struct {
	Actor string

	Name  string
	Email string
	Phone string
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
) (*models.Customer, error) {

	c := &models.Customer{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}

	if err := domain.ValidateCustomer(c); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Username: in.Actor,
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: &c.ID,
	})

	return c, nil
}
