package billing

import (
	"github.com/jhoicas/invoice-engine/internal/application/dto"
	"github.com/jhoicas/invoice-engine/internal/domain"
	"github.com/jhoicas/invoice-engine/internal/domain/entity"
	"github.com/jhoicas/invoice-engine/internal/domain/pricing"
	"github.com/jhoicas/invoice-engine/pkg/money"
)

var headerRoles = map[string]entity.AccountRole{
	string(entity.RoleReceivable):      entity.RoleReceivable,
	string(entity.RoleDiscountAllowed): entity.RoleDiscountAllowed,
}

func toLine(in dto.LineRequest) (entity.Line, error) {
	var mode entity.DiscountMode
	switch in.DiscountMode {
	case "", string(entity.DiscountPercentage):
		mode = entity.DiscountPercentage
	case string(entity.DiscountAmount):
		mode = entity.DiscountAmount
	default:
		return entity.Line{}, domain.ErrInvalidInput
	}
	return entity.Line{
		ID:                       in.ID,
		ProductID:                in.ProductID,
		Quantity:                 in.Quantity,
		UnitPrice:                in.UnitPrice,
		DiscountMode:             mode,
		DiscountPercentage:       in.DiscountPercentage,
		DiscountAmount:           in.DiscountAmount,
		SalesTaxCodeID:           in.SalesTaxCodeID,
		WHTTaxCodeID:             in.WHTTaxCodeID,
		PriceTaxInclusive:        in.PriceTaxInclusive,
		IncomeAccountOverride:    in.IncomeAccountOverride,
		COGSAccountOverride:      in.COGSAccountOverride,
		InventoryAccountOverride: in.InventoryAccountOverride,
	}, nil
}

func toLineRequest(l entity.Line) dto.LineRequest {
	return dto.LineRequest{
		ID:                       l.ID,
		ProductID:                l.ProductID,
		Quantity:                 l.Quantity,
		UnitPrice:                l.UnitPrice,
		DiscountMode:             string(l.DiscountMode),
		DiscountPercentage:       l.DiscountPercentage,
		DiscountAmount:           l.DiscountAmount,
		SalesTaxCodeID:           l.SalesTaxCodeID,
		WHTTaxCodeID:             l.WHTTaxCodeID,
		PriceTaxInclusive:        l.PriceTaxInclusive,
		IncomeAccountOverride:    l.IncomeAccountOverride,
		COGSAccountOverride:      l.COGSAccountOverride,
		InventoryAccountOverride: l.InventoryAccountOverride,
	}
}

// toState convierte el request en el estado del motor. Valida solo la forma (IDs de línea
// únicos, modo de descuento y roles de override conocidos); los valores numéricos los corrige el motor.
func toState(in dto.PreviewRequest) (pricing.State, error) {
	state := pricing.State{
		CustomerID:          in.CustomerID,
		ExchangeRate:        in.ExchangeRate,
		Lines:               make([]entity.Line, 0, len(in.Lines)),
		TaxAccountOverrides: in.TaxAccountOverrides,
	}
	seen := make(map[string]bool, len(in.Lines))
	for _, l := range in.Lines {
		if l.ID == "" || seen[l.ID] {
			return state, domain.ErrInvalidInput
		}
		seen[l.ID] = true
		line, err := toLine(l)
		if err != nil {
			return state, err
		}
		state.Lines = append(state.Lines, line)
	}
	if len(in.AccountOverrides) > 0 {
		state.RoleOverrides = make(map[entity.AccountRole]string, len(in.AccountOverrides))
		for k, v := range in.AccountOverrides {
			role, ok := headerRoles[k]
			if !ok {
				return state, domain.ErrInvalidInput
			}
			state.RoleOverrides[role] = v
		}
	}
	return state, nil
}

func productIDs(lines []entity.Line) []string {
	seen := make(map[string]bool, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.ProductID == "" || seen[l.ProductID] {
			continue
		}
		seen[l.ProductID] = true
		ids = append(ids, l.ProductID)
	}
	return ids
}

func toTotalsResponse(t entity.InvoiceTotals, f *money.Formatter) dto.TotalsResponse {
	return dto.TotalsResponse{
		Subtotal:            t.Subtotal,
		TotalDiscount:       t.TotalDiscount,
		TotalTax:            t.TotalTax,
		TotalWHT:            t.TotalWHT,
		AmountAfterDiscount: t.AmountAfterDiscount,
		AmountAfterWHT:      t.AmountAfterWHT,
		Total:               t.Total,
		TotalEquivalent:     t.TotalEquivalent,
		EffectiveVATPercent: t.EffectiveVATPercent,
		TotalDisplay:        f.Format(t.Total),
	}
}

func toWarnings(ws []entity.Warning) []dto.WarningResponse {
	out := make([]dto.WarningResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, dto.WarningResponse{Code: w.Code, LineID: w.LineID, Field: w.Field, Message: w.Message})
	}
	return out
}

func toPreviewResponse(res pricing.Result, f *money.Formatter) *dto.PreviewResponse {
	resp := &dto.PreviewResponse{
		Lines:          make([]dto.LineResultResponse, 0, len(res.Lines)),
		CorrectedLines: make([]dto.LineRequest, 0, len(res.Corrected)),
		Totals:         toTotalsResponse(res.Totals, f),
		Postings:       make([]dto.PostingEntryResponse, 0, len(res.Postings)),
		Balance: dto.BalanceResponse{
			Debit:      res.Balance.Debit,
			Credit:     res.Balance.Credit,
			Difference: res.Balance.Difference,
			Balanced:   res.Balance.Balanced,
		},
		Warnings: toWarnings(res.Warnings),
	}
	for _, r := range res.Lines {
		resp.Lines = append(resp.Lines, dto.LineResultResponse{
			LineID:              r.LineID,
			LineSubtotal:        r.LineSubtotal,
			DiscountValue:       r.DiscountValue,
			AmountAfterDiscount: r.AmountAfterDiscount,
			VATRate:             r.VATRate,
			VATAmount:           r.VATAmount,
			AmountAfterVAT:      r.AmountAfterVAT,
			WHTRate:             r.WHTRate,
			WHTAmount:           r.WHTAmount,
			AmountAfterWHT:      r.AmountAfterWHT,
			LineTotal:           r.LineTotal,
			EquivalentAmount:    r.EquivalentAmount,
			UnitAfterDiscount:   r.UnitAfterDiscount,
			UnitVAT:             r.UnitVAT,
			UnitTotal:           r.UnitTotal,
		})
	}
	for _, l := range res.Corrected {
		resp.CorrectedLines = append(resp.CorrectedLines, toLineRequest(l))
	}
	for _, p := range res.Postings {
		resp.Postings = append(resp.Postings, dto.PostingEntryResponse{
			AccountID:     p.AccountID,
			AccountCode:   p.AccountCode,
			AccountName:   p.AccountName,
			Role:          string(p.Role),
			Nature:        string(p.Nature),
			Amount:        p.Amount,
			AmountDisplay: f.Format(p.Amount),
			Description:   p.Description,
		})
	}
	return resp
}

func toSubmissionResponse(customerID string, sub pricing.Submission, warns []entity.Warning, f *money.Formatter) *dto.SubmissionResponse {
	resp := &dto.SubmissionResponse{
		CustomerID:   customerID,
		ExchangeRate: sub.ExchangeRate,
		Lines:        make([]dto.SubmissionLineResponse, 0, len(sub.Lines)),
		Totals:       toTotalsResponse(sub.Totals, f),
		Ready:        sub.Ready,
		Warnings:     toWarnings(warns),
	}
	for _, r := range sub.MissingRoles {
		resp.MissingRoles = append(resp.MissingRoles, string(r))
	}
	for _, l := range sub.Lines {
		resp.Lines = append(resp.Lines, dto.SubmissionLineResponse{
			LineID:             l.LineID,
			ProductID:          l.ProductID,
			Quantity:           l.Quantity,
			UnitPrice:          l.UnitPrice,
			DiscountMode:       string(l.DiscountMode),
			DiscountPercentage: l.DiscountPercentage,
			DiscountAmount:     l.DiscountAmount,
			TaxCodeID:          l.TaxCodeID,
			TaxPercentage:      l.TaxPercentage,
			TaxAmount:          l.TaxAmount,
			WHTTaxCodeID:       l.WHTTaxCodeID,
			WHTPercentage:      l.WHTPercentage,
			WHTAmount:          l.WHTAmount,
			LineTotal:          l.LineTotal,
			EquivalentAmount:   l.EquivalentAmount,
		})
	}
	return resp
}
