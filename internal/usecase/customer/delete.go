package customer

import (
	"context"

	"github.com/washerhq/carwash-api/internal/audit"
	domain "github.com/washerhq/carwash-api/internal/domain/wash"
)

type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domain.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

// Execute removes the customer and, transitively, every owned vehicle,
// appointment and payment.
func (uc *Delete) Execute(ctx context.Context, actor string, id uint) error {
	if err := uc.repo.DeleteCustomer(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Username: actor,
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: &id,
	})

	return nil
}
