package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
	"github.com/jhoicas/invoice-engine/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// GetByID obtiene un cliente con su cuenta por cobrar y la de su grupo.
func (r *CustomerRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error) {
	query := `
		SELECT cu.id, cu.name, cu.tax_id,
		       COALESCE(cu.receivable_account_id, ''), COALESCE(g.receivable_account_id, '')
		FROM customers cu
		LEFT JOIN customer_groups g ON g.id = cu.group_id
		WHERE cu.company_id = $1 AND cu.id = $2`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.ReceivableAccountID, &c.GroupReceivableAccountID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}
