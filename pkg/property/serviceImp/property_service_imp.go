package serviceImp

import (
	"context"
	"strings"

	"fazenda/entities"
	"fazenda/pkg/form"
	"fazenda/pkg/listing"
	repo "fazenda/pkg/property/repository"
	"fazenda/pkg/property/service"
)

type propertySvc struct{ r repo.PropertyRepository }

func New(r repo.PropertyRepository) service.PropertyService { return &propertySvc{r} }

func (s *propertySvc) Create(ctx context.Context, f service.PropertyForm) (*entities.Property, error) {
	form.TrimStrings(&f)
	f.State = strings.ToUpper(f.State)

	c := form.NewChecker(form.Strict)
	c.Struct(&f)
	p := &entities.Property{
		Name:         f.Name,
		Municipality: f.Municipality,
		State:        f.State,
		TotalAreaHa:  c.Area("area_total", f.TotalArea),
		OwnerID:      c.ID("dono_id", f.OwnerID),
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *propertySvc) List(ctx context.Context, order listing.Order) ([]entities.Property, error) {
	return s.r.List(ctx, repo.Columns.Resolve(order))
}

func (s *propertySvc) ListRows(ctx context.Context, order listing.Order) ([]entities.PropertyRow, error) {
	return s.r.ListRows(ctx, repo.RowColumns.Resolve(order))
}

func (s *propertySvc) Options(ctx context.Context) ([]entities.Option, error) {
	return s.r.Options(ctx)
}
