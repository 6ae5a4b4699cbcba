package repositoryImp

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fazenda/entities"
	"fazenda/pkg/cultivation/repository"
	"fazenda/pkg/listing"
	"fazenda/pkg/sqlerr"
)

type cultivationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CultivationRepository { return &cultivationRepo{db} }

func (r *cultivationRepo) Create(ctx context.Context, c *entities.Cultivation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(c).Error
	})
	return sqlerr.Translate(err, "property", "crop")
}

func (r *cultivationRepo) ListRows(ctx context.Context, order listing.Order) ([]entities.CultivationRow, error) {
	out := []entities.CultivationRow{}
	err := r.db.WithContext(ctx).
		Table("cultivations AS c").
		Select("c.id, p.name AS property_name, cu.name AS crop_name, c.cultivated_area_ha, c.planting_date, c.expected_harvest_date").
		Joins("JOIN properties p ON p.id = c.property_id").
		Joins("JOIN crops cu ON cu.id = c.crop_id").
		Order(repository.RowColumns.Clause(order)).
		Scan(&out).Error
	if err != nil {
		return nil, sqlerr.Translate(err)
	}
	return out, nil
}
