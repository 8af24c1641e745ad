package appointment

import (
	"context"

	domain "github.com/washerhq/carwash-api/internal/domain/wash"
	"github.com/washerhq/carwash-api/internal/models"
)

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.repo.GetAppointment(ctx, id)
}

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx)
}
