package customer

import (
	"context"

	"github.com/washerhq/carwash-api/internal/audit"
	domain "github.com/washerhq/carwash-api/internal/domain/wash"
	"github.com/washerhq/carwash-api/internal/models"
)

// UpdateInput carries the partial payload. Nil fields mean "no change
// requested"; present fields always overwrite.
type UpdateInput struct {
	Actor string

	Name  *string
	Email *string
	Phone *string
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
) (*models.Customer, error) {

	var updated *models.Customer

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		c, err := repo.GetCustomer(ctx, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.Email != nil {
			c.Email = *in.Email
		}
		if in.Phone != nil {
			c.Phone = *in.Phone
		}

		if err := domain.ValidateCustomer(c); err != nil {
			return err
		}

		if err := repo.SaveCustomer(ctx, c); err != nil {
			return err
		}

		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Username: in.Actor,
		Action:   "customer_updated",
		Entity:   "customer",
		EntityID: &updated.ID,
	})

	return updated, nil
}
