package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
)

// DefaultMinQuantity es el piso de cantidad: evita divisiones por cero en valores por unidad.
var DefaultMinQuantity = decimal.New(1, -4)

// LineContext agrupa los datos globales de la factura que afectan a cada línea.
type LineContext struct {
	Ref          *ReferenceData
	ExchangeRate decimal.Decimal
	MinQuantity  decimal.Decimal
}

// SanitizeLine devuelve una copia de la línea con los valores numéricos corregidos
// (cantidad >= piso, precio >= 0, descuento dentro de sus límites) y los avisos de cada corrección.
// No modifica la línea original; el llamador decide si aplica la copia al formulario.
func SanitizeLine(line entity.Line, minQty decimal.Decimal) (entity.Line, []entity.Warning) {
	if !minQty.IsPositive() {
		minQty = DefaultMinQuantity
	}
	var warns []entity.Warning
	out := line
	if out.Quantity.LessThan(minQty) {
		warns = append(warns, entity.Warning{
			Code: entity.WarnQuantityClamped, LineID: line.ID, Field: "quantity",
			Message: fmt.Sprintf("cantidad %s ajustada a %s", line.Quantity.String(), minQty.String()),
		})
		out.Quantity = minQty
	}
	if out.UnitPrice.IsNegative() {
		warns = append(warns, entity.Warning{
			Code: entity.WarnPriceClamped, LineID: line.ID, Field: "unit_price",
			Message: fmt.Sprintf("precio %s ajustado a 0", line.UnitPrice.String()),
		})
		out.UnitPrice = decimal.Zero
	}
	if out.DiscountMode != entity.DiscountAmount {
		out.DiscountMode = entity.DiscountPercentage
	}

	subtotal := out.Quantity.Mul(out.UnitPrice)
	d := ComputeDiscount(subtotal, out.DiscountMode, out.DiscountPercentage, out.DiscountAmount)
	if d.Clamped {
		field, from, to := "discount_percentage", out.DiscountPercentage, d.Percentage
		if out.DiscountMode == entity.DiscountAmount {
			field, from, to = "discount_amount", out.DiscountAmount, d.Amount
		}
		warns = append(warns, entity.Warning{
			Code: entity.WarnDiscountClamped, LineID: line.ID, Field: field,
			Message: fmt.Sprintf("descuento %s ajustado a %s", from.String(), to.String()),
		})
		if out.DiscountMode == entity.DiscountAmount {
			out.DiscountAmount = d.Amount
		} else {
			out.DiscountPercentage = d.Percentage
		}
	}
	return out, warns
}

// CalculateLine calcula los montos de una línea. Cada línea se calcula sin mirar las demás.
//
//	subtotal        = cantidad * precio
//	tras descuento  = subtotal - descuento
//	IVA, retención  = tras descuento * tasa / 100
//	total           = tras descuento - retención + IVA
//	equivalente     = total * tasa de cambio
func CalculateLine(line entity.Line, lc LineContext) (entity.LineResult, []entity.Warning) {
	clean, warns := SanitizeLine(line, lc.MinQuantity)

	vatRate, w := ResolveRate(lc.Ref, line.ID, clean.SalesTaxCodeID, false)
	if w != nil {
		warns = append(warns, *w)
	}
	whtRate, w := ResolveRate(lc.Ref, line.ID, clean.WHTTaxCodeID, true)
	if w != nil {
		warns = append(warns, *w)
	}

	rate := lc.ExchangeRate
	if !rate.IsPositive() {
		rate = one
	}

	subtotal := clean.Quantity.Mul(clean.UnitPrice)
	discount := ComputeDiscount(subtotal, clean.DiscountMode, clean.DiscountPercentage, clean.DiscountAmount)
	afterDiscount := subtotal.Sub(discount.Value)
	vat := ComputeVAT(afterDiscount, vatRate)
	wht := ComputeWHT(afterDiscount, whtRate)
	afterWHT := afterDiscount.Sub(wht)
	total := afterWHT.Add(vat)

	return entity.LineResult{
		LineID:              line.ID,
		LineSubtotal:        subtotal,
		DiscountValue:       discount.Value,
		AmountAfterDiscount: afterDiscount,
		VATRate:             vatRate,
		VATAmount:           vat,
		AmountAfterVAT:      afterDiscount.Add(vat),
		WHTRate:             whtRate,
		WHTAmount:           wht,
		AmountAfterWHT:      afterWHT,
		LineTotal:           total,
		EquivalentAmount:    total.Mul(rate),
		UnitAfterDiscount:   afterDiscount.Div(clean.Quantity),
		UnitVAT:             vat.Div(clean.Quantity),
		UnitTotal:           total.Div(clean.Quantity),
	}, warns
}
