package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
)

// Aggregate suma los resultados por línea en los totales de la factura.
// Total es la suma de los totales por línea, no se recalcula desde los agregados.
func Aggregate(results []entity.LineResult) entity.InvoiceTotals {
	var t entity.InvoiceTotals
	for _, r := range results {
		t.Subtotal = t.Subtotal.Add(r.LineSubtotal)
		t.TotalDiscount = t.TotalDiscount.Add(r.DiscountValue)
		t.TotalTax = t.TotalTax.Add(r.VATAmount)
		t.TotalWHT = t.TotalWHT.Add(r.WHTAmount)
		t.Total = t.Total.Add(r.LineTotal)
		t.TotalEquivalent = t.TotalEquivalent.Add(r.EquivalentAmount)
	}
	t.AmountAfterDiscount = t.Subtotal.Sub(t.TotalDiscount)
	t.AmountAfterWHT = t.AmountAfterDiscount.Sub(t.TotalWHT)
	t.EffectiveVATPercent = decimal.Zero
	if t.AmountAfterDiscount.IsPositive() {
		t.EffectiveVATPercent = t.TotalTax.Div(t.AmountAfterDiscount).Mul(hundred)
	}
	return t
}
