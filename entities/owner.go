package entities

import "time"

type Owner struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"not null" json:"name"`
	TaxID string  `gorm:"not null;uniqueIndex" json:"tax_id"` // CPF or CNPJ
	Email *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
