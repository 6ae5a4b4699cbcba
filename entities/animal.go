package entities

import "time"

type Animal struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Kind  string  `gorm:"not null" json:"kind"` // e.g. bovino, suino
	Breed *string `json:"breed,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Lot is a batch of one animal kind present on a property.
type Lot struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PropertyID   uint      `gorm:"not null;index" json:"property_id"`
	Property     *Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	AnimalID     uint      `gorm:"not null;index" json:"animal_id"`
	Animal       *Animal   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity     int       `gorm:"not null;check:chk_lot_quantity,quantity > 0" json:"quantity"`
	RecordedDate *Date     `json:"recorded_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
