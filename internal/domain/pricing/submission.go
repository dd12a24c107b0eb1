package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
)

// SubmissionLine es la línea tal como la espera la API externa de creación de facturas.
type SubmissionLine struct {
	LineID             string
	ProductID          string
	Quantity           decimal.Decimal
	UnitPrice          decimal.Decimal
	DiscountMode       entity.DiscountMode
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	TaxCodeID          string
	TaxPercentage      decimal.Decimal
	TaxAmount          decimal.Decimal
	WHTTaxCodeID       string
	WHTPercentage      decimal.Decimal
	WHTAmount          decimal.Decimal
	LineTotal          decimal.Decimal
	EquivalentAmount   decimal.Decimal
}

// Submission es el payload de envío. Ready es falso si faltan roles obligatorios;
// el llamador no debe enviar la factura en ese caso.
type Submission struct {
	ExchangeRate decimal.Decimal
	Lines        []SubmissionLine
	Totals       entity.InvoiceTotals
	Ready        bool
	MissingRoles []entity.AccountRole
}

// BuildSubmission arma el payload a partir de las líneas corregidas y su resultado.
// places < 0 deja los montos sin redondear.
func BuildSubmission(state State, res Result, places int32) Submission {
	round := func(d decimal.Decimal) decimal.Decimal {
		if places < 0 {
			return d
		}
		return d.Round(places)
	}

	rate := state.ExchangeRate
	if !rate.IsPositive() {
		rate = one
	}
	sub := Submission{
		ExchangeRate: rate,
		Lines:        make([]SubmissionLine, 0, len(res.Lines)),
		Totals:       res.Totals,
	}
	for i, lr := range res.Lines {
		line := res.Corrected[i]
		pct, amt := line.DiscountPercentage, lr.DiscountValue
		if line.DiscountMode == entity.DiscountAmount {
			pct = decimal.Zero
			if lr.LineSubtotal.IsPositive() {
				pct = lr.DiscountValue.Div(lr.LineSubtotal).Mul(hundred)
			}
		}
		sub.Lines = append(sub.Lines, SubmissionLine{
			LineID:             line.ID,
			ProductID:          line.ProductID,
			Quantity:           line.Quantity,
			UnitPrice:          line.UnitPrice,
			DiscountMode:       line.DiscountMode,
			DiscountPercentage: round(pct),
			DiscountAmount:     round(amt),
			TaxCodeID:          line.SalesTaxCodeID,
			TaxPercentage:      lr.VATRate,
			TaxAmount:          round(lr.VATAmount),
			WHTTaxCodeID:       line.WHTTaxCodeID,
			WHTPercentage:      lr.WHTRate,
			WHTAmount:          round(lr.WHTAmount),
			LineTotal:          round(lr.LineTotal),
			EquivalentAmount:   round(lr.EquivalentAmount),
		})
	}

	hasRole := func(role entity.AccountRole) bool {
		for _, p := range res.Postings {
			if p.Role == role {
				return true
			}
		}
		return false
	}
	if !hasRole(entity.RoleReceivable) {
		sub.MissingRoles = append(sub.MissingRoles, entity.RoleReceivable)
	}
	if res.Totals.Subtotal.IsPositive() && !hasRole(entity.RoleIncome) {
		sub.MissingRoles = append(sub.MissingRoles, entity.RoleIncome)
	}
	sub.Ready = len(sub.MissingRoles) == 0 && len(res.Lines) > 0
	return sub
}
