package entity

import "github.com/shopspring/decimal"

// PostingEntry es un asiento de la vista previa contable. Nunca se persiste.
type PostingEntry struct {
	AccountID   string
	AccountCode string
	AccountName string
	Role        AccountRole
	Nature      Nature
	Amount      decimal.Decimal
	Description string
}

// Códigos de advertencia emitidos por el motor.
const (
	WarnQuantityClamped         = "QUANTITY_CLAMPED"
	WarnPriceClamped            = "PRICE_CLAMPED"
	WarnDiscountClamped         = "DISCOUNT_CLAMPED"
	WarnTaxCodeMissing          = "TAX_CODE_MISSING"
	WarnTaxCodeInactive         = "TAX_CODE_INACTIVE"
	WarnExchangeRateClamped     = "EXCHANGE_RATE_CLAMPED"
	WarnProductMissing          = "PRODUCT_MISSING"
	WarnIncompleteConfiguration = "INCOMPLETE_CONFIGURATION"
	WarnUnbalanced              = "UNBALANCED"
)

// Warning es un aviso suave: el motor corrige o omite y lo reporta, nunca falla.
type Warning struct {
	Code    string
	LineID  string
	Field   string
	Message string
}
