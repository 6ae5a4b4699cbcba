package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"fazenda/entities"
	"fazenda/pkg/listing"
	"fazenda/pkg/property/repository"
	"fazenda/pkg/sqlerr"
)

type propertyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PropertyRepository { return &propertyRepo{db} }

func (r *propertyRepo) Create(ctx context.Context, p *entities.Property) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Owner").Create(p).Error
	})
	return sqlerr.Translate(err, "owner")
}

func (r *propertyRepo) List(ctx context.Context, order listing.Order) ([]entities.Property, error) {
	out := []entities.Property{}
	if err := r.db.WithContext(ctx).Order(repository.Columns.Clause(order)).Find(&out).Error; err != nil {
		return nil, sqlerr.Translate(err)
	}
	return out, nil
}

func (r *propertyRepo) ListRows(ctx context.Context, order listing.Order) ([]entities.PropertyRow, error) {
	out := []entities.PropertyRow{}
	err := r.db.WithContext(ctx).
		Table("properties AS p").
		Select("p.id, p.name, p.municipality, p.state, p.total_area_ha, p.owner_id, o.name AS owner_name").
		Joins("JOIN owners o ON o.id = p.owner_id").
		Order(repository.RowColumns.Clause(order)).
		Scan(&out).Error
	if err != nil {
		return nil, sqlerr.Translate(err)
	}
	return out, nil
}

func (r *propertyRepo) Options(ctx context.Context) ([]entities.Option, error) {
	out := []entities.Option{}
	err := r.db.WithContext(ctx).Model(&entities.Property{}).
		Select("id, name").Order("name ASC, id ASC").Scan(&out).Error
	if err != nil {
		return nil, sqlerr.Translate(err)
	}
	return out, nil
}
