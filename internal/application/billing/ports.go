package billing

import (
	"context"

	"github.com/jhoicas/invoice-engine/internal/domain/pricing"
)

// ReferenceLoader arma la foto de datos maestros para una pasada del motor.
// productIDs y customerID acotan la carga a lo que la factura referencia.
type ReferenceLoader interface {
	Load(ctx context.Context, companyID, customerID string, productIDs []string) (*pricing.ReferenceData, error)
}
