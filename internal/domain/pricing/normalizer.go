package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// NormalizePrice convierte un precio de catálogo en precio base (sin IVA).
// Base = precio / (1 + tasa/100) solo si el precio incluye IVA y la tasa es positiva.
func NormalizePrice(sellingPrice, taxRate decimal.Decimal, isTaxInclusive bool) decimal.Decimal {
	if sellingPrice.IsNegative() {
		return decimal.Zero
	}
	if !isTaxInclusive || !taxRate.IsPositive() {
		return sellingPrice
	}
	return sellingPrice.Div(one.Add(taxRate.Div(hundred)))
}

// InclusivePrice reconstruye el precio con IVA a partir del precio base.
func InclusivePrice(basePrice, taxRate decimal.Decimal) decimal.Decimal {
	if !taxRate.IsPositive() {
		return basePrice
	}
	return basePrice.Mul(one.Add(taxRate.Div(hundred)))
}

// NewLineFromProduct arma una línea nueva al agregar un producto al pedido.
// Es el único punto donde se normaliza el precio; el resto del motor asume precio base.
// Un código de IVA inexistente o inactivo se trata como tasa 0 para la normalización.
func NewLineFromProduct(lineID string, product entity.Product, ref *ReferenceData, quantity decimal.Decimal) entity.Line {
	rate := decimal.Zero
	if tc, ok := ref.TaxCode(product.SalesTaxID); ok && tc.IsActive && !tc.IsWithholding {
		rate = tc.Rate
	}
	return entity.Line{
		ID:                 lineID,
		ProductID:          product.ID,
		Quantity:           quantity,
		UnitPrice:          NormalizePrice(product.CatalogPrice(), rate, product.PriceTaxInclusive),
		DiscountMode:       entity.DiscountPercentage,
		DiscountPercentage: decimal.Zero,
		DiscountAmount:     decimal.Zero,
		SalesTaxCodeID:     product.SalesTaxID,
		PriceTaxInclusive:  product.PriceTaxInclusive,
	}
}
