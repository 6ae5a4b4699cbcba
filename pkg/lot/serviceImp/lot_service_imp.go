package serviceImp

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/form"
	"fazenda/pkg/listing"
	repo "fazenda/pkg/lot/repository"
	"fazenda/pkg/lot/service"
)

type lotSvc struct {
	r      repo.LotRepository
	policy form.DatePolicy
}

func New(r repo.LotRepository, policy form.DatePolicy) service.LotService {
	return &lotSvc{r: r, policy: policy}
}

func (s *lotSvc) Create(ctx context.Context, f service.LotForm) (*entities.Lot, error) {
	form.TrimStrings(&f)
	c := form.NewChecker(s.policy)
	l := &entities.Lot{
		PropertyID:   c.ID("propriedade_id", f.PropertyID),
		AnimalID:     c.ID("animal_id", f.AnimalID),
		Quantity:     c.Quantity("quantidade", f.Quantity),
		RecordedDate: c.Date("data_registro", f.RecordedDate),
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *lotSvc) ListRows(ctx context.Context, order listing.Order) ([]entities.LotRow, error) {
	return s.r.ListRows(ctx, repo.RowColumns.Resolve(order))
}
