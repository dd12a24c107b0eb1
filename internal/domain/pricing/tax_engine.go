package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
)

// Discount es el resultado del cálculo de descuento de una línea.
// Percentage y Amount son los valores efectivos tras el recorte a los límites válidos.
type Discount struct {
	Value      decimal.Decimal
	Percentage decimal.Decimal
	Amount     decimal.Decimal
	Clamped    bool
}

// ComputeDiscount calcula el descuento de la línea según el modo.
// Porcentaje se recorta a [0,100]; monto a [0,subtotal].
func ComputeDiscount(subtotal decimal.Decimal, mode entity.DiscountMode, percentage, amount decimal.Decimal) Discount {
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}
	if mode == entity.DiscountAmount {
		eff := clamp(amount, decimal.Zero, subtotal)
		return Discount{
			Value:   eff,
			Amount:  eff,
			Clamped: !eff.Equal(amount),
		}
	}
	pct := clamp(percentage, decimal.Zero, hundred)
	return Discount{
		Value:      subtotal.Mul(pct).Div(hundred),
		Percentage: pct,
		Clamped:    !pct.Equal(percentage),
	}
}

// ComputeVAT calcula el IVA sobre el monto ya descontado. El precio base nunca incluye IVA.
func ComputeVAT(amountAfterDiscount, vatRate decimal.Decimal) decimal.Decimal {
	return percentOf(amountAfterDiscount, vatRate)
}

// ComputeWHT calcula la retención sobre el monto descontado, antes e independiente del IVA.
func ComputeWHT(amountAfterDiscount, whtRate decimal.Decimal) decimal.Decimal {
	return percentOf(amountAfterDiscount, whtRate)
}

// ResolveRate devuelve la tasa del código referenciado por la línea.
// Código vacío: 0 sin aviso. Código inexistente, inactivo o del tipo equivocado: 0 con aviso.
func ResolveRate(ref *ReferenceData, lineID, taxCodeID string, withholding bool) (decimal.Decimal, *entity.Warning) {
	if taxCodeID == "" {
		return decimal.Zero, nil
	}
	field := "sales_tax_code_id"
	if withholding {
		field = "wht_tax_code_id"
	}
	tc, ok := ref.TaxCode(taxCodeID)
	if !ok {
		return decimal.Zero, &entity.Warning{
			Code: entity.WarnTaxCodeMissing, LineID: lineID, Field: field,
			Message: fmt.Sprintf("código de impuesto %s no encontrado, se calcula sin impuesto", taxCodeID),
		}
	}
	if !tc.IsActive {
		return decimal.Zero, &entity.Warning{
			Code: entity.WarnTaxCodeInactive, LineID: lineID, Field: field,
			Message: fmt.Sprintf("código de impuesto %s inactivo, se calcula sin impuesto", tc.Code),
		}
	}
	if tc.IsWithholding != withholding {
		return decimal.Zero, &entity.Warning{
			Code: entity.WarnTaxCodeMissing, LineID: lineID, Field: field,
			Message: fmt.Sprintf("código de impuesto %s no corresponde al campo %s", tc.Code, field),
		}
	}
	if tc.Rate.IsNegative() {
		return decimal.Zero, nil
	}
	return tc.Rate, nil
}

func percentOf(base, rate decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() || !rate.IsPositive() {
		return decimal.Zero
	}
	return base.Mul(rate).Div(hundred)
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
