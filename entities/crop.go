package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Crop struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Species *string `json:"species,omitempty"`
	Cycle   *string `json:"cycle,omitempty"` // anual, perene...

	CreatedAt time.Time `json:"created_at"`
}

// Cultivation records a crop planted on a property.
type Cultivation struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	PropertyID          uint            `gorm:"not null;index" json:"property_id"`
	Property            *Property       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CropID              uint            `gorm:"not null;index" json:"crop_id"`
	Crop                *Crop           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CultivatedAreaHa    decimal.Decimal `gorm:"type:numeric(14,4);not null;check:chk_cultivation_area,cultivated_area_ha >= 0" json:"cultivated_area_ha"`
	PlantingDate        *Date           `json:"planting_date,omitempty"`
	ExpectedHarvestDate *Date           `json:"expected_harvest_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
