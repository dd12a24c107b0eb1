package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
	"github.com/jhoicas/invoice-engine/internal/domain/repository"
)

var _ repository.TaxCodeRepository = (*TaxCodeRepo)(nil)

// TaxCodeRepo lee los códigos de impuesto de la empresa.
type TaxCodeRepo struct {
	q Querier
}

// NewTaxCodeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaxCodeRepository(q Querier) *TaxCodeRepo {
	return &TaxCodeRepo{q: q}
}

// ListByCompany lista todos los códigos, activos e inactivos.
func (r *TaxCodeRepo) ListByCompany(ctx context.Context, companyID string) ([]entity.TaxCode, error) {
	query := `
		SELECT id, code, name, rate, is_withholding, is_active, COALESCE(posting_account_id, '')
		FROM tax_codes WHERE company_id = $1
		ORDER BY code`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list tax codes: %w", err)
	}
	defer rows.Close()
	var list []entity.TaxCode
	for rows.Next() {
		var tc entity.TaxCode
		if err := rows.Scan(&tc.ID, &tc.Code, &tc.Name, &tc.Rate, &tc.IsWithholding, &tc.IsActive, &tc.PostingAccountID); err != nil {
			return nil, fmt.Errorf("scan tax code: %w", err)
		}
		list = append(list, tc)
	}
	return list, rows.Err()
}
