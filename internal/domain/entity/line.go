package entity

import "github.com/shopspring/decimal"

// DiscountMode define cuál de los dos campos de descuento manda en la línea.
type DiscountMode string

const (
	DiscountPercentage DiscountMode = "percentage"
	DiscountAmount     DiscountMode = "amount"
)

// Line representa una fila de factura o del carrito POS.
// UnitPrice es siempre el precio base (sin IVA); PriceTaxInclusive solo indica su origen.
type Line struct {
	ID                 string
	ProductID          string
	Quantity           decimal.Decimal
	UnitPrice          decimal.Decimal
	DiscountMode       DiscountMode
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	SalesTaxCodeID     string
	WHTTaxCodeID       string
	PriceTaxInclusive  bool

	// Cuentas elegidas por el usuario para esta línea (vacío = usar la del producto/categoría).
	IncomeAccountOverride    string
	COGSAccountOverride      string
	InventoryAccountOverride string
}

// LineResult es el resultado derivado de una línea; se recalcula en cada pasada.
type LineResult struct {
	LineID              string
	LineSubtotal        decimal.Decimal
	DiscountValue       decimal.Decimal
	AmountAfterDiscount decimal.Decimal
	VATRate             decimal.Decimal
	VATAmount           decimal.Decimal
	AmountAfterVAT      decimal.Decimal
	WHTRate             decimal.Decimal
	WHTAmount           decimal.Decimal
	AmountAfterWHT      decimal.Decimal
	LineTotal           decimal.Decimal
	EquivalentAmount    decimal.Decimal

	// Valores por unidad para mostrar.
	UnitAfterDiscount decimal.Decimal
	UnitVAT           decimal.Decimal
	UnitTotal         decimal.Decimal
}

// InvoiceTotals agrega los resultados de todas las líneas.
type InvoiceTotals struct {
	Subtotal            decimal.Decimal
	TotalDiscount       decimal.Decimal
	TotalTax            decimal.Decimal
	TotalWHT            decimal.Decimal
	AmountAfterDiscount decimal.Decimal
	AmountAfterWHT      decimal.Decimal
	Total               decimal.Decimal
	TotalEquivalent     decimal.Decimal
	EffectiveVATPercent decimal.Decimal
}
