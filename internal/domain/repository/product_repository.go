package repository

import (
	"context"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
)

// ProductRepository puerto de lectura de productos del catálogo (con cuentas de su categoría).
type ProductRepository interface {
	GetByID(ctx context.Context, companyID, id string) (*entity.Product, error)
	ListByIDs(ctx context.Context, companyID string, ids []string) ([]entity.Product, error)
}
