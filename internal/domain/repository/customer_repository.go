package repository

import (
	"context"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
)

// CustomerRepository puerto de lectura de clientes y sus cuentas por cobrar.
type CustomerRepository interface {
	GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error)
}
