package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"fazenda/entities"
	"fazenda/pkg/animal/repository"
	"fazenda/pkg/listing"
	"fazenda/pkg/sqlerr"
)

type animalRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AnimalRepository { return &animalRepo{db} }

func (r *animalRepo) Create(ctx context.Context, a *entities.Animal) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(a).Error
	})
	return sqlerr.Translate(err)
}

func (r *animalRepo) List(ctx context.Context, order listing.Order) ([]entities.Animal, error) {
	out := []entities.Animal{}
	if err := r.db.WithContext(ctx).Order(repository.Columns.Clause(order)).Find(&out).Error; err != nil {
		return nil, sqlerr.Translate(err)
	}
	return out, nil
}
