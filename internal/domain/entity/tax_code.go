package entity

import "github.com/shopspring/decimal"

// TaxCode representa un código de impuesto (IVA o retención) vigente durante un cálculo.
// Rate es porcentaje (19 = 19%).
type TaxCode struct {
	ID               string
	Code             string
	Name             string
	Rate             decimal.Decimal
	IsWithholding    bool
	IsActive         bool
	PostingAccountID string
}
