package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Property struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"not null" json:"name"`
	Municipality string          `gorm:"not null" json:"municipality"`
	State        string          `gorm:"size:2;not null" json:"state"` // UF, upper case
	TotalAreaHa  decimal.Decimal `gorm:"type:numeric(14,4);not null;check:chk_property_area,total_area_ha >= 0" json:"total_area_ha"`
	OwnerID      uint            `gorm:"not null;index" json:"owner_id"`
	Owner        *Owner          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
