package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
	"github.com/jhoicas/invoice-engine/internal/domain/pricing"
	"github.com/jhoicas/invoice-engine/internal/domain/repository"
)

var _ ReferenceLoader = (*RepositoryReferenceLoader)(nil)

// RepositoryReferenceLoader carga los datos maestros desde los repositorios.
type RepositoryReferenceLoader struct {
	taxRepo      repository.TaxCodeRepository
	accountRepo  repository.AccountRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewRepositoryReferenceLoader construye el cargador.
func NewRepositoryReferenceLoader(
	taxRepo repository.TaxCodeRepository,
	accountRepo repository.AccountRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *RepositoryReferenceLoader {
	return &RepositoryReferenceLoader{
		taxRepo:      taxRepo,
		accountRepo:  accountRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// Load lee impuestos, cuentas, cuentas vinculadas, productos de las líneas y el cliente.
// Un cliente inexistente no es error: la cuenta por cobrar cae a la vinculada.
func (l *RepositoryReferenceLoader) Load(ctx context.Context, companyID, customerID string, productIDs []string) (*pricing.ReferenceData, error) {
	taxCodes, err := l.taxRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("cargar códigos de impuesto: %w", err)
	}
	accounts, err := l.accountRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("cargar plan de cuentas: %w", err)
	}
	linked, err := l.accountRepo.ListLinkedDefaults(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("cargar cuentas vinculadas: %w", err)
	}
	products, err := l.productRepo.ListByIDs(ctx, companyID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}
	var customers []entity.Customer
	if customerID != "" {
		c, err := l.customerRepo.GetByID(ctx, companyID, customerID)
		if err != nil {
			return nil, fmt.Errorf("cargar cliente: %w", err)
		}
		if c != nil {
			customers = append(customers, *c)
		}
	}
	return pricing.NewReferenceData(taxCodes, accounts, products, customers, linked), nil
}
