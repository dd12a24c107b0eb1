package dto

import "github.com/shopspring/decimal"

// LineRequest línea de factura o carrito tal como la envía el editor.
// discount_mode: "percentage" (por defecto si va vacío) o "amount"; cualquier otro valor se rechaza.
type LineRequest struct {
	ID                       string          `json:"id"`
	ProductID                string          `json:"product_id"`
	Quantity                 decimal.Decimal `json:"quantity"`
	UnitPrice                decimal.Decimal `json:"unit_price"`
	DiscountMode             string          `json:"discount_mode,omitempty"`
	DiscountPercentage       decimal.Decimal `json:"discount_percentage"`
	DiscountAmount           decimal.Decimal `json:"discount_amount"`
	SalesTaxCodeID           string          `json:"sales_tax_code_id,omitempty"`
	WHTTaxCodeID             string          `json:"wht_tax_code_id,omitempty"`
	PriceTaxInclusive        bool            `json:"price_tax_inclusive"`
	IncomeAccountOverride    string          `json:"income_account_id,omitempty"`
	COGSAccountOverride      string          `json:"cogs_account_id,omitempty"`
	InventoryAccountOverride string          `json:"inventory_account_id,omitempty"`
}

// PreviewRequest body para POST /api/invoices/preview y /api/invoices/submission.
// account_overrides: rol -> cuenta ("receivable", "discount_allowed").
// tax_account_overrides: ID de código de impuesto -> cuenta.
type PreviewRequest struct {
	CustomerID          string            `json:"customer_id"`
	ExchangeRate        decimal.Decimal   `json:"exchange_rate"`
	Lines               []LineRequest     `json:"lines"`
	AccountOverrides    map[string]string `json:"account_overrides,omitempty"`
	TaxAccountOverrides map[string]string `json:"tax_account_overrides,omitempty"`
}

// CartPreviewRequest body para POST /api/pos/cart/preview. El POS siempre factura en moneda local.
// Admite los mismos overrides de cuentas que la factura.
type CartPreviewRequest struct {
	CustomerID          string            `json:"customer_id"`
	Lines               []LineRequest     `json:"lines"`
	AccountOverrides    map[string]string `json:"account_overrides,omitempty"`
	TaxAccountOverrides map[string]string `json:"tax_account_overrides,omitempty"`
}

// NewLineRequest body para POST /api/invoices/lines (agregar producto al pedido).
type NewLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// LineResultResponse resultado calculado de una línea.
type LineResultResponse struct {
	LineID              string          `json:"line_id"`
	LineSubtotal        decimal.Decimal `json:"line_subtotal"`
	DiscountValue       decimal.Decimal `json:"discount_value"`
	AmountAfterDiscount decimal.Decimal `json:"amount_after_discount"`
	VATRate             decimal.Decimal `json:"vat_rate"`
	VATAmount           decimal.Decimal `json:"vat_amount"`
	AmountAfterVAT      decimal.Decimal `json:"amount_after_vat"`
	WHTRate             decimal.Decimal `json:"wht_rate"`
	WHTAmount           decimal.Decimal `json:"wht_amount"`
	AmountAfterWHT      decimal.Decimal `json:"amount_after_wht"`
	LineTotal           decimal.Decimal `json:"line_total"`
	EquivalentAmount    decimal.Decimal `json:"equivalent_amount"`
	UnitAfterDiscount   decimal.Decimal `json:"unit_after_discount"`
	UnitVAT             decimal.Decimal `json:"unit_vat"`
	UnitTotal           decimal.Decimal `json:"unit_total"`
}

// TotalsResponse totales de la factura. TotalDisplay es el total formateado según el locale.
type TotalsResponse struct {
	Subtotal            decimal.Decimal `json:"subtotal"`
	TotalDiscount       decimal.Decimal `json:"total_discount"`
	TotalTax            decimal.Decimal `json:"total_tax"`
	TotalWHT            decimal.Decimal `json:"total_wht"`
	AmountAfterDiscount decimal.Decimal `json:"amount_after_discount"`
	AmountAfterWHT      decimal.Decimal `json:"amount_after_wht"`
	Total               decimal.Decimal `json:"total"`
	TotalEquivalent     decimal.Decimal `json:"total_equivalent"`
	EffectiveVATPercent decimal.Decimal `json:"effective_vat_percent"`
	TotalDisplay        string          `json:"total_display"`
}

// PostingEntryResponse asiento de la vista previa contable.
type PostingEntryResponse struct {
	AccountID     string          `json:"account_id"`
	AccountCode   string          `json:"account_code,omitempty"`
	AccountName   string          `json:"account_name,omitempty"`
	Role          string          `json:"role"`
	Nature        string          `json:"nature"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
	Description   string          `json:"description"`
}

// BalanceResponse comprobación débito = crédito.
type BalanceResponse struct {
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	Difference decimal.Decimal `json:"difference"`
	Balanced   bool            `json:"balanced"`
}

// PreviewResponse resultado completo de una pasada del motor.
// corrected_lines trae las líneas con los valores ya ajustados para que el editor los refleje.
type PreviewResponse struct {
	Lines          []LineResultResponse   `json:"lines"`
	CorrectedLines []LineRequest          `json:"corrected_lines"`
	Totals         TotalsResponse         `json:"totals"`
	Postings       []PostingEntryResponse `json:"postings"`
	Balance        BalanceResponse        `json:"balance"`
	Warnings       []WarningResponse      `json:"warnings"`
}

// SubmissionLineResponse línea del payload para la API externa de creación de facturas.
type SubmissionLineResponse struct {
	LineID             string          `json:"line_id"`
	ProductID          string          `json:"product_id"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	DiscountMode       string          `json:"discount_mode"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	TaxCodeID          string          `json:"tax_code_id,omitempty"`
	TaxPercentage      decimal.Decimal `json:"tax_percentage"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	WHTTaxCodeID       string          `json:"wht_tax_code_id,omitempty"`
	WHTPercentage      decimal.Decimal `json:"wht_percentage"`
	WHTAmount          decimal.Decimal `json:"wht_amount"`
	LineTotal          decimal.Decimal `json:"line_total"`
	EquivalentAmount   decimal.Decimal `json:"equivalent_amount"`
}

// SubmissionResponse payload de envío. Si ready es false, missing_roles indica qué falta configurar.
type SubmissionResponse struct {
	CustomerID   string                   `json:"customer_id"`
	ExchangeRate decimal.Decimal          `json:"exchange_rate"`
	Lines        []SubmissionLineResponse `json:"lines"`
	Totals       TotalsResponse           `json:"totals"`
	Ready        bool                     `json:"ready"`
	MissingRoles []string                 `json:"missing_roles,omitempty"`
	Warnings     []WarningResponse        `json:"warnings"`
}
