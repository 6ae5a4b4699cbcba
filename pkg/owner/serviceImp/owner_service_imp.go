package serviceImp

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/form"
	"fazenda/pkg/listing"
	repo "fazenda/pkg/owner/repository"
	"fazenda/pkg/owner/service"
)

type ownerSvc struct{ r repo.OwnerRepository }

func New(r repo.OwnerRepository) service.OwnerService { return &ownerSvc{r} }

func (s *ownerSvc) Create(ctx context.Context, f service.OwnerForm) (*entities.Owner, error) {
	form.TrimStrings(&f)
	c := form.NewChecker(form.Strict)
	c.Struct(&f)
	if err := c.Err(); err != nil {
		return nil, err
	}

	o := &entities.Owner{
		Name:  f.Name,
		TaxID: f.TaxID,
		Email: form.Optional(f.Email),
		Phone: form.Optional(f.Phone),
	}
	if err := s.r.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *ownerSvc) List(ctx context.Context, order listing.Order) ([]entities.Owner, error) {
	return s.r.List(ctx, repo.Columns.Resolve(order))
}

func (s *ownerSvc) Options(ctx context.Context) ([]entities.Option, error) {
	return s.r.Options(ctx)
}
