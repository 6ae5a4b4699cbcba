package serviceImp

import (
	"context"

	"fazenda/entities"
	repo "fazenda/pkg/animal/repository"
	"fazenda/pkg/animal/service"
	"fazenda/pkg/form"
	"fazenda/pkg/listing"
)

type animalSvc struct{ r repo.AnimalRepository }

func New(r repo.AnimalRepository) service.AnimalService { return &animalSvc{r} }

func (s *animalSvc) Create(ctx context.Context, f service.AnimalForm) (*entities.Animal, error) {
	form.TrimStrings(&f)
	c := form.NewChecker(form.Strict)
	c.Struct(&f)
	if err := c.Err(); err != nil {
		return nil, err
	}
	a := &entities.Animal{Kind: f.Kind, Breed: form.Optional(f.Breed)}
	if err := s.r.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *animalSvc) List(ctx context.Context, order listing.Order) ([]entities.Animal, error) {
	return s.r.List(ctx, repo.Columns.Resolve(order))
}

func (s *animalSvc) Options(ctx context.Context) ([]entities.Option, error) {
	animals, err := s.r.List(ctx, listing.Order{Key: "kind"})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Option, 0, len(animals))
	for _, a := range animals {
		name := a.Kind
		if a.Breed != nil {
			name += " (" + *a.Breed + ")"
		}
		out = append(out, entities.Option{ID: a.ID, Name: name})
	}
	return out, nil
}
