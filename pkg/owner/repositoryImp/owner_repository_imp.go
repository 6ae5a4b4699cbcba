package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"fazenda/entities"
	"fazenda/pkg/listing"
	"fazenda/pkg/owner/repository"
	"fazenda/pkg/sqlerr"
)

type ownerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.OwnerRepository { return &ownerRepo{db} }

func (r *ownerRepo) Create(ctx context.Context, o *entities.Owner) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
	return sqlerr.Translate(err)
}

func (r *ownerRepo) List(ctx context.Context, order listing.Order) ([]entities.Owner, error) {
	out := []entities.Owner{}
	if err := r.db.WithContext(ctx).Order(repository.Columns.Clause(order)).Find(&out).Error; err != nil {
		return nil, sqlerr.Translate(err)
	}
	return out, nil
}

func (r *ownerRepo) Options(ctx context.Context) ([]entities.Option, error) {
	out := []entities.Option{}
	err := r.db.WithContext(ctx).Model(&entities.Owner{}).
		Select("id, name").Order("name ASC, id ASC").Scan(&out).Error
	if err != nil {
		return nil, sqlerr.Translate(err)
	}
	return out, nil
}
