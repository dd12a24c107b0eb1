package repository

import (
	"context"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
)

// TaxCodeRepository puerto de lectura de códigos de impuesto (IVA y retenciones).
// Devuelve también los inactivos: el motor los trata como tasa 0 y avisa.
type TaxCodeRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]entity.TaxCode, error)
}
