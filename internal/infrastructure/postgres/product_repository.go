package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
	"github.com/jhoicas/invoice-engine/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo lee productos con las cuentas contables de su categoría (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT p.id, p.sku, p.name, p.selling_price, p.category_price,
	       COALESCE(p.income_account_id, ''), COALESCE(c.income_account_id, ''),
	       COALESCE(p.cogs_account_id, ''), COALESCE(c.cogs_account_id, ''),
	       COALESCE(p.asset_account_id, ''), COALESCE(c.asset_account_id, ''),
	       p.average_cost, p.product_type, p.price_tax_inclusive, COALESCE(p.sales_tax_id, '')
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (entity.Product, error) {
	var p entity.Product
	var catPrice decimal.NullDecimal
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.SellingPrice, &catPrice,
		&p.IncomeAccountID, &p.CategoryIncomeAccountID,
		&p.COGSAccountID, &p.CategoryCOGSAccountID,
		&p.AssetAccountID, &p.CategoryAssetAccountID,
		&p.AverageCost, &p.ProductType, &p.PriceTaxInclusive, &p.SalesTaxID,
	)
	if err != nil {
		return p, err
	}
	if catPrice.Valid {
		v := catPrice.Decimal
		p.CategoryPrice = &v
	}
	return p, nil
}

// GetByID obtiene un producto de la empresa. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, productSelect+` WHERE p.company_id = $1 AND p.id = $2`, companyID, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByIDs obtiene los productos referenciados por las líneas de una factura.
func (r *ProductRepo) ListByIDs(ctx context.Context, companyID string, ids []string) ([]entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, productSelect+` WHERE p.company_id = $1 AND p.id = ANY($2)`, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
