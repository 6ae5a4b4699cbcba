package serviceImp

import (
	"context"

	"fazenda/entities"
	repo "fazenda/pkg/cultivation/repository"
	"fazenda/pkg/cultivation/service"
	"fazenda/pkg/form"
	"fazenda/pkg/listing"
)

type cultivationSvc struct {
	r      repo.CultivationRepository
	policy form.DatePolicy
}

func New(r repo.CultivationRepository, policy form.DatePolicy) service.CultivationService {
	return &cultivationSvc{r: r, policy: policy}
}

func (s *cultivationSvc) Create(ctx context.Context, f service.CultivationForm) (*entities.Cultivation, error) {
	form.TrimStrings(&f)
	c := form.NewChecker(s.policy)
	cult := &entities.Cultivation{
		PropertyID:          c.ID("propriedade_id", f.PropertyID),
		CropID:              c.ID("cultura_id", f.CropID),
		CultivatedAreaHa:    c.Area("area_cultivada", f.CultivatedArea),
		PlantingDate:        c.Date("data_plantio", f.PlantingDate),
		ExpectedHarvestDate: c.Date("data_colheita", f.ExpectedHarvestDate),
	}
	if p, h := cult.PlantingDate, cult.ExpectedHarvestDate; p != nil && h != nil && h.Less(*p) {
		c.Add("data_colheita", "must not be before the planting date")
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, cult); err != nil {
		return nil, err
	}
	return cult, nil
}

func (s *cultivationSvc) ListRows(ctx context.Context, order listing.Order) ([]entities.CultivationRow, error) {
	return s.r.ListRows(ctx, repo.RowColumns.Resolve(order))
}
