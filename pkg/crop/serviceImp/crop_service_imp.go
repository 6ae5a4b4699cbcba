package serviceImp

import (
	"context"
	"errors"
	"fmt"

	"fazenda/entities"
	repo "fazenda/pkg/crop/repository"
	"fazenda/pkg/crop/service"
	"fazenda/pkg/errs"
	"fazenda/pkg/form"
	"fazenda/pkg/listing"
)

type cropSvc struct{ r repo.CropRepository }

func New(r repo.CropRepository) service.CropService { return &cropSvc{r} }

func build(f *service.CropForm, c *form.Checker) *entities.Crop {
	form.TrimStrings(f)
	c.Struct(f)
	return &entities.Crop{Name: f.Name, Species: form.Optional(f.Species), Cycle: form.Optional(f.Cycle)}
}

func (s *cropSvc) Create(ctx context.Context, f service.CropForm) (*entities.Crop, error) {
	c := form.NewChecker(form.Strict)
	crop := build(&f, c)
	if err := c.Err(); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

func (s *cropSvc) Import(ctx context.Context, forms []service.CropForm, lines []int) (int, error) {
	if len(forms) == 0 {
		return 0, errs.Validation("The spreadsheet has no crops")
	}
	var fields []errs.FieldError
	crops := make([]*entities.Crop, 0, len(forms))
	for i := range forms {
		c := form.NewChecker(form.Strict)
		crops = append(crops, build(&forms[i], c))
		var appErr *errs.Error
		if err := c.Err(); err != nil && errors.As(err, &appErr) {
			line := i + 2
			if i < len(lines) {
				line = lines[i]
			}
			for _, fe := range appErr.Fields {
				fields = append(fields, errs.FieldError{Field: fmt.Sprintf("row %d %s", line, fe.Field), Error: fe.Error})
			}
		}
	}
	if len(fields) > 0 {
		return 0, errs.Validation("Spreadsheet rejected", fields...)
	}
	if err := s.r.CreateBatch(ctx, crops); err != nil {
		return 0, err
	}
	return len(crops), nil
}

func (s *cropSvc) List(ctx context.Context, order listing.Order) ([]entities.Crop, error) {
	return s.r.List(ctx, repo.Columns.Resolve(order))
}

func (s *cropSvc) Options(ctx context.Context) ([]entities.Option, error) {
	return s.r.Options(ctx)
}
