package repository

import (
	"context"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
)

// AccountRepository puerto de lectura del plan de cuentas y de las cuentas vinculadas por defecto.
type AccountRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]entity.Account, error)
	ListLinkedDefaults(ctx context.Context, companyID string) ([]entity.LinkedAccountDefault, error)
}
