package repositoryImp

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fazenda/entities"
	"fazenda/pkg/listing"
	"fazenda/pkg/lot/repository"
	"fazenda/pkg/sqlerr"
)

type lotRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LotRepository { return &lotRepo{db} }

func (r *lotRepo) Create(ctx context.Context, l *entities.Lot) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(l).Error
	})
	return sqlerr.Translate(err, "property", "animal")
}

func (r *lotRepo) ListRows(ctx context.Context, order listing.Order) ([]entities.LotRow, error) {
	out := []entities.LotRow{}
	err := r.db.WithContext(ctx).
		Table("lots AS l").
		Select("l.id, p.name AS property_name, a.kind AS animal_kind, a.breed AS animal_breed, l.quantity, l.recorded_date").
		Joins("JOIN properties p ON p.id = l.property_id").
		Joins("JOIN animals a ON a.id = l.animal_id").
		Order(repository.RowColumns.Clause(order)).
		Scan(&out).Error
	if err != nil {
		return nil, sqlerr.Translate(err)
	}
	return out, nil
}
