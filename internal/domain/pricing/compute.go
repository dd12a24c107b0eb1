package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
)

// State es la foto del editor de factura (o del carrito POS) en un instante.
type State struct {
	Lines               []entity.Line
	ExchangeRate        decimal.Decimal
	CustomerID          string
	RoleOverrides       map[entity.AccountRole]string
	TaxAccountOverrides map[string]string
}

// Options ajusta el comportamiento numérico del motor.
type Options struct {
	MinQuantity decimal.Decimal
}

// Result es la salida completa de una pasada de cálculo.
// Corrected contiene las líneas con los valores ya corregidos, para que el formulario los refleje.
type Result struct {
	Lines     []entity.LineResult
	Corrected []entity.Line
	Totals    entity.InvoiceTotals
	Postings  []entity.PostingEntry
	Balance   Balance
	Warnings  []entity.Warning
}

// Compute ejecuta el pipeline completo: líneas, totales de factura y vista previa contable.
// Es una función pura: no modifica state ni ref.
func Compute(state State, ref *ReferenceData, opts Options) Result {
	minQty := opts.MinQuantity
	if !minQty.IsPositive() {
		minQty = DefaultMinQuantity
	}

	var warns []entity.Warning
	rate := state.ExchangeRate
	if !rate.IsPositive() {
		if !rate.IsZero() || len(state.Lines) > 0 {
			warns = append(warns, entity.Warning{
				Code: entity.WarnExchangeRateClamped, Field: "exchange_rate",
				Message: fmt.Sprintf("tasa de cambio %s inválida, se usa 1", rate.String()),
			})
		}
		rate = one
	}

	lc := LineContext{Ref: ref, ExchangeRate: rate, MinQuantity: minQty}
	res := Result{
		Lines:     make([]entity.LineResult, len(state.Lines)),
		Corrected: make([]entity.Line, len(state.Lines)),
	}
	for i, line := range state.Lines {
		if _, ok := ref.Product(line.ProductID); !ok {
			warns = append(warns, entity.Warning{
				Code: entity.WarnProductMissing, LineID: line.ID, Field: "product_id",
				Message: fmt.Sprintf("producto %s no encontrado", line.ProductID),
			})
		}
		lr, lw := CalculateLine(line, lc)
		res.Lines[i] = lr
		res.Corrected[i], _ = SanitizeLine(line, minQty)
		warns = append(warns, lw...)
	}

	res.Totals = Aggregate(res.Lines)

	postings, pw := BuildPostingPreview(PostingInput{
		Lines:               state.Lines,
		Results:             res.Lines,
		Totals:              res.Totals,
		Ref:                 ref,
		CustomerID:          state.CustomerID,
		RoleOverrides:       state.RoleOverrides,
		TaxAccountOverrides: state.TaxAccountOverrides,
		MinQuantity:         minQty,
	})
	res.Postings = postings
	warns = append(warns, pw...)

	res.Balance = CheckBalance(postings)
	if !res.Balance.Balanced {
		warns = append(warns, entity.Warning{
			Code: entity.WarnUnbalanced,
			Message: fmt.Sprintf("débitos %s y créditos %s no cuadran",
				res.Balance.Debit.String(), res.Balance.Credit.String()),
		})
	}
	res.Warnings = warns
	return res
}
