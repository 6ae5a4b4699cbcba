package service

import (
	"context"

	"fazenda/entities"
	"fazenda/pkg/listing"
)

// OwnerForm is the submitted owner form.
type OwnerForm struct {
	Name  string `form:"nome" validate:"required,max=120"`
	TaxID string `form:"cpf_cnpj" validate:"required,max=20"`
	Email string `form:"email" validate:"omitempty,email,max=120"`
	Phone string `form:"telefone" validate:"max=30"`
}

type OwnerService interface {
	Create(ctx context.Context, f OwnerForm) (*entities.Owner, error)
	List(ctx context.Context, order listing.Order) ([]entities.Owner, error)
	Options(ctx context.Context) ([]entities.Option, error)
}
