package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"fazenda/entities"
	"fazenda/pkg/crop/repository"
	"fazenda/pkg/listing"
	"fazenda/pkg/sqlerr"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(ctx context.Context, c *entities.Crop) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(c).Error
	})
	return sqlerr.Translate(err)
}

func (r *cropRepo) CreateBatch(ctx context.Context, crops []*entities.Crop) error {
	if len(crops) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(crops, 100).Error
	})
	return sqlerr.Translate(err)
}

func (r *cropRepo) List(ctx context.Context, order listing.Order) ([]entities.Crop, error) {
	out := []entities.Crop{}
	if err := r.db.WithContext(ctx).Order(repository.Columns.Clause(order)).Find(&out).Error; err != nil {
		return nil, sqlerr.Translate(err)
	}
	return out, nil
}

func (r *cropRepo) Options(ctx context.Context) ([]entities.Option, error) {
	out := []entities.Option{}
	err := r.db.WithContext(ctx).Model(&entities.Crop{}).
		Select("id, name").Order("name ASC, id ASC").Scan(&out).Error
	if err != nil {
		return nil, sqlerr.Translate(err)
	}
	return out, nil
}
