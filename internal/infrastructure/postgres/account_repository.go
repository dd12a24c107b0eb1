package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
	"github.com/jhoicas/invoice-engine/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo lee el plan de cuentas y las cuentas vinculadas.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// ListByCompany lista las cuentas de la empresa.
func (r *AccountRepo) ListByCompany(ctx context.Context, companyID string) ([]entity.Account, error) {
	query := `SELECT id, code, name, nature FROM accounts WHERE company_id = $1 ORDER BY code`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []entity.Account
	for rows.Next() {
		var a entity.Account
		var nature string
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &nature); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		a.Nature = entity.Nature(nature)
		list = append(list, a)
	}
	return list, rows.Err()
}

// ListLinkedDefaults lista las cuentas vinculadas por defecto (receivables, discounts_allowed, ...).
func (r *AccountRepo) ListLinkedDefaults(ctx context.Context, companyID string) ([]entity.LinkedAccountDefault, error) {
	query := `SELECT role, account_id FROM linked_accounts WHERE company_id = $1 AND account_id IS NOT NULL`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list linked accounts: %w", err)
	}
	defer rows.Close()
	var list []entity.LinkedAccountDefault
	for rows.Next() {
		var l entity.LinkedAccountDefault
		if err := rows.Scan(&l.Role, &l.AccountID); err != nil {
			return nil, fmt.Errorf("scan linked account: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
