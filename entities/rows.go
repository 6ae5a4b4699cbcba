package entities

import "github.com/shopspring/decimal"

// Option is an id and display name pair used to fill select inputs.
type Option struct {
	ID   uint
	Name string
}

type PropertyRow struct {
	ID           uint
	Name         string
	Municipality string
	State        string
	TotalAreaHa  decimal.Decimal
	OwnerID      uint
	OwnerName    string
}

type LotRow struct {
	ID           uint
	PropertyName string
	AnimalKind   string
	AnimalBreed  *string
	Quantity     int
	RecordedDate *Date
}

type CultivationRow struct {
	ID                  uint
	PropertyName        string
	CropName            string
	CultivatedAreaHa    decimal.Decimal
	PlantingDate        *Date
	ExpectedHarvestDate *Date
}
