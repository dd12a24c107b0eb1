package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
	"github.com/jhoicas/invoice-engine/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Datos de referencia de prueba
// ──────────────────────────────────────────────────────────────────────────────

const (
	accReceivable = "acc-1305"
	accDiscount   = "acc-5305"
	accIncomeA    = "acc-4135-a"
	accIncomeB    = "acc-4135-b"
	accCOGS       = "acc-6135"
	accInventory  = "acc-1435"
	accVAT        = "acc-2408"
	accWHT        = "acc-1355"

	taxVAT18 = "tc-iva-18"
	taxWHT2  = "tc-rte-2"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildTestRef() *pricing.ReferenceData {
	return pricing.NewReferenceData(
		[]entity.TaxCode{
			{ID: taxVAT18, Code: "IVA18", Rate: d("18"), IsActive: true, PostingAccountID: accVAT},
			{ID: taxWHT2, Code: "RTE2", Rate: d("2"), IsActive: true, IsWithholding: true, PostingAccountID: accWHT},
			{ID: "tc-off", Code: "IVA5", Rate: d("5"), IsActive: false},
		},
		[]entity.Account{
			{ID: accReceivable, Code: "130505", Name: "Clientes nacionales", Nature: entity.NatureDebit},
			{ID: accDiscount, Code: "530535", Name: "Descuentos comerciales", Nature: entity.NatureDebit},
			{ID: accIncomeA, Code: "413501", Name: "Ventas de mercancía", Nature: entity.NatureCredit},
			{ID: accIncomeB, Code: "413502", Name: "Ventas de servicios", Nature: entity.NatureCredit},
			{ID: accCOGS, Code: "613501", Name: "Costo de ventas", Nature: entity.NatureDebit},
			{ID: accInventory, Code: "143501", Name: "Inventario de mercancía", Nature: entity.NatureDebit},
			{ID: accVAT, Code: "240801", Name: "IVA generado", Nature: entity.NatureCredit},
			{ID: accWHT, Code: "135515", Name: "Retención en la fuente", Nature: entity.NatureDebit},
		},
		[]entity.Product{
			{
				ID: "p-goods", Name: "Silla", SellingPrice: d("100"), ProductType: entity.ProductTypeGoods,
				IncomeAccountID: accIncomeA, COGSAccountID: accCOGS, AssetAccountID: accInventory,
				AverageCost: d("40"), SalesTaxID: taxVAT18,
			},
			{
				ID: "p-service", Name: "Instalación", SellingPrice: d("100"), ProductType: entity.ProductTypeService,
				CategoryIncomeAccountID: accIncomeB, AverageCost: d("10"),
			},
		},
		[]entity.Customer{{ID: "c-1", Name: "Acme", ReceivableAccountID: accReceivable}},
		[]entity.LinkedAccountDefault{{Role: entity.LinkedDiscountsAllowed, AccountID: accDiscount}},
	)
}

func baseLine() entity.Line {
	return entity.Line{
		ID: "l-1", ProductID: "p-goods", Quantity: d("2"), UnitPrice: d("100"),
		DiscountMode: entity.DiscountPercentage, SalesTaxCodeID: taxVAT18,
	}
}

func lineCtx() pricing.LineContext {
	return pricing.LineContext{Ref: buildTestRef(), ExchangeRate: d("1")}
}

func sumNature(entries []entity.PostingEntry, n entity.Nature) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Nature == n {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func sumRole(entries []entity.PostingEntry, role entity.AccountRole) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Role == role {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func hasWarning(warns []entity.Warning, code string) bool {
	for _, w := range warns {
		if w.Code == code {
			return true
		}
	}
	return false
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de ejemplo
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateLine_SinDescuentoConIVA(t *testing.T) {
	r, warns := pricing.CalculateLine(baseLine(), lineCtx())
	assert.Empty(t, warns)
	assert.True(t, d("200").Equal(r.LineSubtotal))
	assert.True(t, d("36").Equal(r.VATAmount))
	assert.True(t, d("236").Equal(r.LineTotal))

	totals := pricing.Aggregate([]entity.LineResult{r})
	assert.True(t, d("236").Equal(totals.Total))
	assert.True(t, d("18").Equal(totals.EffectiveVATPercent))
}

func TestCalculateLine_DescuentoPorcentaje(t *testing.T) {
	line := baseLine()
	line.DiscountPercentage = d("10")
	r, _ := pricing.CalculateLine(line, lineCtx())
	assert.True(t, d("20").Equal(r.DiscountValue))
	assert.True(t, d("180").Equal(r.AmountAfterDiscount))
	assert.True(t, d("32.4").Equal(r.VATAmount))
	assert.True(t, d("212.4").Equal(r.LineTotal))
}

func TestCalculateLine_DescuentoMontoExcedeSubtotal(t *testing.T) {
	line := baseLine()
	line.DiscountMode = entity.DiscountAmount
	line.DiscountAmount = d("250")
	r, warns := pricing.CalculateLine(line, lineCtx())
	assert.True(t, d("200").Equal(r.DiscountValue))
	assert.True(t, r.AmountAfterDiscount.IsZero())
	assert.True(t, r.VATAmount.IsZero())
	assert.True(t, r.LineTotal.IsZero())
	require.True(t, hasWarning(warns, entity.WarnDiscountClamped), "la corrección del descuento debe reportarse")
}

func TestCalculateLine_ConRetencion(t *testing.T) {
	line := baseLine()
	line.WHTTaxCodeID = taxWHT2
	r, _ := pricing.CalculateLine(line, lineCtx())
	assert.True(t, d("4").Equal(r.WHTAmount))
	assert.True(t, d("196").Equal(r.AmountAfterWHT))
	assert.True(t, d("232").Equal(r.LineTotal))
	assert.True(t, d("236").Equal(r.AmountAfterVAT))
}

func TestNormalizePrice_PrecioConIVA(t *testing.T) {
	base := pricing.NormalizePrice(d("118"), d("18"), true)
	assert.True(t, d("100").Equal(base), "118/1.18 debe ser 100, obtuvo %s", base)
}

func TestPostingPreview_IngresoProporcionalAlSubtotalBruto(t *testing.T) {
	state := pricing.State{
		CustomerID:   "c-1",
		ExchangeRate: d("1"),
		Lines: []entity.Line{
			{ID: "l-a", ProductID: "p-goods", Quantity: d("3"), UnitPrice: d("100"),
				DiscountMode: entity.DiscountPercentage, DiscountPercentage: d("100")},
			{ID: "l-b", ProductID: "p-service", Quantity: d("7"), UnitPrice: d("100"),
				DiscountMode: entity.DiscountPercentage},
		},
	}
	res := pricing.Compute(state, buildTestRef(), pricing.Options{})

	assert.True(t, d("1000").Equal(res.Totals.Subtotal))
	assert.True(t, d("1000").Equal(sumRole(res.Postings, entity.RoleIncome)))
	for _, e := range res.Postings {
		if e.Role != entity.RoleIncome {
			continue
		}
		switch e.AccountID {
		case accIncomeA:
			assert.True(t, d("300").Equal(e.Amount), "cuenta A debe recibir 30%%, obtuvo %s", e.Amount)
		case accIncomeB:
			assert.True(t, d("700").Equal(e.Amount), "cuenta B debe recibir 70%%, obtuvo %s", e.Amount)
		default:
			t.Fatalf("cuenta de ingreso inesperada %s", e.AccountID)
		}
	}
	assert.True(t, res.Balance.Balanced, "débitos %s créditos %s", res.Balance.Debit, res.Balance.Credit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateLine_DescomposicionDelTotal(t *testing.T) {
	cases := []entity.Line{
		baseLine(),
		{ID: "x1", Quantity: d("3.5"), UnitPrice: d("19.99"), DiscountMode: entity.DiscountPercentage,
			DiscountPercentage: d("7.5"), SalesTaxCodeID: taxVAT18, WHTTaxCodeID: taxWHT2},
		{ID: "x2", Quantity: d("1"), UnitPrice: d("333.33"), DiscountMode: entity.DiscountAmount,
			DiscountAmount: d("33.33"), WHTTaxCodeID: taxWHT2},
		{ID: "x3", Quantity: d("0.001"), UnitPrice: d("1000"), DiscountMode: entity.DiscountPercentage,
			SalesTaxCodeID: taxVAT18},
	}
	for _, line := range cases {
		r, _ := pricing.CalculateLine(line, lineCtx())
		expected := r.LineSubtotal.Sub(r.DiscountValue).Sub(r.WHTAmount).Add(r.VATAmount)
		assert.True(t, expected.Equal(r.LineTotal), "línea %s: %s != %s", line.ID, expected, r.LineTotal)
	}
}

func TestComputeDiscount_Limites(t *testing.T) {
	sub := d("200")
	got := pricing.ComputeDiscount(sub, entity.DiscountAmount, decimal.Zero, d("1000"))
	assert.True(t, sub.Equal(got.Value))
	assert.True(t, got.Clamped)

	got = pricing.ComputeDiscount(sub, entity.DiscountPercentage, d("150"), decimal.Zero)
	assert.True(t, d("100").Equal(got.Percentage))
	assert.True(t, sub.Equal(got.Value))

	got = pricing.ComputeDiscount(sub, entity.DiscountPercentage, d("-5"), decimal.Zero)
	assert.True(t, got.Value.IsZero())
	assert.True(t, got.Clamped)

	got = pricing.ComputeDiscount(sub, entity.DiscountAmount, decimal.Zero, d("50"))
	assert.True(t, d("50").Equal(got.Value))
	assert.False(t, got.Clamped)
}

func TestNormalizePrice_IdaYVuelta(t *testing.T) {
	prices := []string{"118", "99.99", "0.01", "12345.67", "1"}
	rates := []string{"5", "18", "19", "7.5"}
	tolerance := d("0.000001")
	for _, p := range prices {
		for _, r := range rates {
			base := pricing.NormalizePrice(d(p), d(r), true)
			back := pricing.InclusivePrice(base, d(r))
			rel := back.Sub(d(p)).Abs().Div(d(p))
			assert.True(t, rel.LessThanOrEqual(tolerance), "precio %s tasa %s: %s", p, r, back)
		}
	}
}

func TestNormalizePrice_SinIVAIncluidoNoCambia(t *testing.T) {
	assert.True(t, d("118").Equal(pricing.NormalizePrice(d("118"), d("18"), false)))
	assert.True(t, d("118").Equal(pricing.NormalizePrice(d("118"), decimal.Zero, true)))
	assert.True(t, pricing.NormalizePrice(d("-5"), d("18"), true).IsZero())
}

func TestAggregate_TotalEsSumaDeLineas(t *testing.T) {
	ctx := lineCtx()
	lines := []entity.Line{
		baseLine(),
		{ID: "l-2", Quantity: d("1"), UnitPrice: d("10.01"), DiscountMode: entity.DiscountPercentage,
			DiscountPercentage: d("3"), WHTTaxCodeID: taxWHT2},
		{ID: "l-3", Quantity: d("7"), UnitPrice: d("3.33"), DiscountMode: entity.DiscountAmount,
			DiscountAmount: d("1.11"), SalesTaxCodeID: taxVAT18},
	}
	var results []entity.LineResult
	sum := decimal.Zero
	for _, l := range lines {
		r, _ := pricing.CalculateLine(l, ctx)
		results = append(results, r)
		sum = sum.Add(r.LineTotal)
	}
	totals := pricing.Aggregate(results)
	assert.True(t, sum.Equal(totals.Total))
	assert.True(t, totals.AmountAfterWHT.Equal(totals.AmountAfterDiscount.Sub(totals.TotalWHT)))
}

func TestAggregate_SinLineas(t *testing.T) {
	totals := pricing.Aggregate(nil)
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.EffectiveVATPercent.IsZero())
}

func TestCompute_FacturaCompletaCuadra(t *testing.T) {
	state := pricing.State{
		CustomerID:   "c-1",
		ExchangeRate: d("4000"),
		Lines: []entity.Line{
			{ID: "l-1", ProductID: "p-goods", Quantity: d("3"), UnitPrice: d("33.33"),
				DiscountMode: entity.DiscountPercentage, DiscountPercentage: d("12.5"),
				SalesTaxCodeID: taxVAT18, WHTTaxCodeID: taxWHT2},
			{ID: "l-2", ProductID: "p-service", Quantity: d("1.5"), UnitPrice: d("71"),
				DiscountMode: entity.DiscountAmount, DiscountAmount: d("5"),
				SalesTaxCodeID: taxVAT18},
			{ID: "l-3", ProductID: "p-goods", Quantity: d("2"), UnitPrice: d("100"),
				DiscountMode: entity.DiscountPercentage, WHTTaxCodeID: taxWHT2,
				IncomeAccountOverride: accIncomeB},
		},
	}
	res := pricing.Compute(state, buildTestRef(), pricing.Options{})

	assert.True(t, sumNature(res.Postings, entity.NatureDebit).Equal(sumNature(res.Postings, entity.NatureCredit)))
	assert.True(t, res.Balance.Balanced)
	assert.True(t, res.Totals.Subtotal.Equal(sumRole(res.Postings, entity.RoleIncome)))
	assert.True(t, res.Totals.TotalTax.Equal(sumRole(res.Postings, entity.RoleTaxPayable)))
	assert.True(t, res.Totals.TotalWHT.Equal(sumRole(res.Postings, entity.RoleWHTReceivable)))
	assert.True(t, sumRole(res.Postings, entity.RoleCOGS).Equal(sumRole(res.Postings, entity.RoleInventory)))
	assert.True(t, d("200").Equal(sumRole(res.Postings, entity.RoleCOGS)), "solo las líneas de bienes generan costo")
	assert.False(t, hasWarning(res.Warnings, entity.WarnIncompleteConfiguration))
	assert.True(t, res.Totals.Total.Mul(d("4000")).Equal(res.Totals.TotalEquivalent))
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden, resolución de cuentas y configuración incompleta
// ──────────────────────────────────────────────────────────────────────────────

func TestPostingPreview_OrdenDebitosLuegoCreditosPorNombre(t *testing.T) {
	line := baseLine()
	line.DiscountPercentage = d("10")
	line.WHTTaxCodeID = taxWHT2
	res := pricing.Compute(pricing.State{CustomerID: "c-1", ExchangeRate: d("1"), Lines: []entity.Line{line}},
		buildTestRef(), pricing.Options{})

	var names []string
	seenCredit := false
	for _, e := range res.Postings {
		if e.Nature == entity.NatureCredit {
			seenCredit = true
		} else {
			assert.False(t, seenCredit, "no puede haber débitos después de créditos")
		}
		names = append(names, e.AccountName)
	}
	assert.Equal(t, []string{
		"Clientes nacionales", "Costo de ventas", "Descuentos comerciales", "Retención en la fuente",
		"IVA generado", "Inventario de mercancía", "Ventas de mercancía",
	}, names)
}

func TestPostingPreview_OverrideTienePrioridad(t *testing.T) {
	state := pricing.State{
		CustomerID:          "c-1",
		ExchangeRate:        d("1"),
		Lines:               []entity.Line{baseLine()},
		RoleOverrides:       map[entity.AccountRole]string{entity.RoleReceivable: "acc-otro"},
		TaxAccountOverrides: map[string]string{taxVAT18: "acc-iva-otro"},
	}
	res := pricing.Compute(state, buildTestRef(), pricing.Options{})
	for _, e := range res.Postings {
		switch e.Role {
		case entity.RoleReceivable:
			assert.Equal(t, "acc-otro", e.AccountID)
		case entity.RoleTaxPayable:
			assert.Equal(t, "acc-iva-otro", e.AccountID)
		}
	}
	assert.True(t, res.Balance.Balanced)
}

func TestPostingPreview_SinCuentaPorCobrarSeOmiteYAvisa(t *testing.T) {
	res := pricing.Compute(pricing.State{ExchangeRate: d("1"), Lines: []entity.Line{baseLine()}},
		buildTestRef(), pricing.Options{})
	for _, e := range res.Postings {
		assert.NotEqual(t, entity.RoleReceivable, e.Role)
		assert.NotEmpty(t, e.AccountID, "nunca se emite un asiento sin cuenta")
	}
	assert.True(t, hasWarning(res.Warnings, entity.WarnIncompleteConfiguration))
	assert.True(t, hasWarning(res.Warnings, entity.WarnUnbalanced))
}

func TestPostingPreview_LineaSinCuentaDeIngresoSeRedistribuye(t *testing.T) {
	state := pricing.State{
		CustomerID:   "c-1",
		ExchangeRate: d("1"),
		Lines: []entity.Line{
			baseLine(),
			{ID: "l-huerfana", ProductID: "p-desconocido", Quantity: d("1"), UnitPrice: d("50"),
				DiscountMode: entity.DiscountPercentage},
		},
	}
	res := pricing.Compute(state, buildTestRef(), pricing.Options{})
	assert.True(t, d("250").Equal(sumRole(res.Postings, entity.RoleIncome)))
	assert.True(t, hasWarning(res.Warnings, entity.WarnIncompleteConfiguration))
	assert.True(t, hasWarning(res.Warnings, entity.WarnProductMissing))
}

func TestPostingPreview_RepartoConResiduo(t *testing.T) {
	ref := pricing.NewReferenceData(nil,
		nil,
		[]entity.Product{
			{ID: "a", IncomeAccountID: "i-a", ProductType: entity.ProductTypeService},
			{ID: "b", IncomeAccountID: "i-b", ProductType: entity.ProductTypeService},
			{ID: "c", IncomeAccountID: "i-c", ProductType: entity.ProductTypeService},
		},
		nil,
		[]entity.LinkedAccountDefault{{Role: entity.LinkedReceivables, AccountID: "ar"}},
	)
	mk := func(id string) entity.Line {
		return entity.Line{ID: id, ProductID: id, Quantity: d("1"), UnitPrice: d("10"), DiscountMode: entity.DiscountPercentage}
	}
	// La línea "x" no tiene cuenta de ingreso: su valor se reparte en tercios no exactos.
	res := pricing.Compute(pricing.State{ExchangeRate: d("1"), Lines: []entity.Line{mk("a"), mk("b"), mk("c"), mk("x")}},
		ref, pricing.Options{})
	assert.True(t, d("40").Equal(sumRole(res.Postings, entity.RoleIncome)))
	assert.True(t, res.Balance.Balanced)
}

func TestPostingPreview_ResiduoNuncaNegativo(t *testing.T) {
	ref := pricing.NewReferenceData(nil,
		nil,
		[]entity.Product{
			{ID: "a", IncomeAccountID: "i-a", ProductType: entity.ProductTypeService},
			{ID: "b", IncomeAccountID: "i-b", ProductType: entity.ProductTypeService},
			{ID: "c", IncomeAccountID: "i-c", ProductType: entity.ProductTypeService},
			{ID: "z", IncomeAccountID: "i-z", ProductType: entity.ProductTypeService},
		},
		nil,
		[]entity.LinkedAccountDefault{{Role: entity.LinkedReceivables, AccountID: "ar"}},
	)
	mk := func(id, price string) entity.Line {
		return entity.Line{ID: id, ProductID: id, Quantity: d("1"), UnitPrice: d(price), DiscountMode: entity.DiscountPercentage}
	}
	// "x" sin cuenta de ingreso obliga a repartir en tercios; "z" es una línea gratis con cuenta propia.
	lines := []entity.Line{mk("a", "1"), mk("b", "1"), mk("c", "1"), mk("x", "2"), mk("z", "0")}
	res := pricing.Compute(pricing.State{ExchangeRate: d("1"), Lines: lines}, ref, pricing.Options{})

	for _, e := range res.Postings {
		assert.False(t, e.Amount.IsNegative(), "monto negativo %s en %s", e.Amount, e.AccountID)
		if e.Role == entity.RoleIncome {
			assert.NotEqual(t, "i-z", e.AccountID, "una cuenta sin subtotal no recibe ingreso")
		}
	}
	assert.True(t, d("5").Equal(sumRole(res.Postings, entity.RoleIncome)))
	assert.True(t, res.Balance.Balanced)
}

func TestCalculateLine_CantidadYPrecioInvalidos(t *testing.T) {
	line := baseLine()
	line.Quantity = d("-3")
	line.UnitPrice = d("-10")
	r, warns := pricing.CalculateLine(line, lineCtx())
	assert.True(t, r.LineSubtotal.IsZero())
	assert.True(t, hasWarning(warns, entity.WarnQuantityClamped))
	assert.True(t, hasWarning(warns, entity.WarnPriceClamped))

	line = baseLine()
	line.Quantity = decimal.Zero
	r, _ = pricing.CalculateLine(line, lineCtx())
	assert.True(t, pricing.DefaultMinQuantity.Mul(d("100")).Equal(r.LineSubtotal))
	assert.True(t, d("118").Equal(r.UnitTotal), "el valor por unidad no debe dividir por cero")
}

func TestCalculateLine_CodigoInactivoOInexistenteEsTasaCero(t *testing.T) {
	line := baseLine()
	line.SalesTaxCodeID = "tc-off"
	r, warns := pricing.CalculateLine(line, lineCtx())
	assert.True(t, r.VATAmount.IsZero())
	assert.True(t, hasWarning(warns, entity.WarnTaxCodeInactive))

	line.SalesTaxCodeID = "tc-nope"
	r, warns = pricing.CalculateLine(line, lineCtx())
	assert.True(t, r.VATAmount.IsZero())
	assert.True(t, hasWarning(warns, entity.WarnTaxCodeMissing))
}

func TestCompute_NoModificaLaEntrada(t *testing.T) {
	line := baseLine()
	line.DiscountMode = entity.DiscountAmount
	line.DiscountAmount = d("999")
	state := pricing.State{CustomerID: "c-1", ExchangeRate: d("1"), Lines: []entity.Line{line}}
	res := pricing.Compute(state, buildTestRef(), pricing.Options{})

	assert.True(t, d("999").Equal(state.Lines[0].DiscountAmount))
	assert.True(t, d("200").Equal(res.Corrected[0].DiscountAmount))
}

func TestNewLineFromProduct_NormalizaUnaVez(t *testing.T) {
	ref := buildTestRef()
	p := entity.Product{ID: "p-incl", SellingPrice: d("118"), PriceTaxInclusive: true, SalesTaxID: taxVAT18}
	line := pricing.NewLineFromProduct("l-n", p, ref, d("1"))
	assert.True(t, d("100").Equal(line.UnitPrice))
	assert.True(t, line.PriceTaxInclusive)
	assert.Equal(t, taxVAT18, line.SalesTaxCodeID)

	catPrice := d("236")
	p.CategoryPrice = &catPrice
	line = pricing.NewLineFromProduct("l-n", p, ref, d("1"))
	assert.True(t, d("200").Equal(line.UnitPrice), "el precio por categoría reemplaza el de catálogo")
}

func TestBuildSubmission_PayloadYRolesFaltantes(t *testing.T) {
	line := baseLine()
	line.DiscountMode = entity.DiscountAmount
	line.DiscountAmount = d("50")
	state := pricing.State{CustomerID: "c-1", ExchangeRate: d("1"), Lines: []entity.Line{line}}
	res := pricing.Compute(state, buildTestRef(), pricing.Options{})

	sub := pricing.BuildSubmission(state, res, 2)
	require.Len(t, sub.Lines, 1)
	assert.True(t, sub.Ready)
	assert.True(t, d("25").Equal(sub.Lines[0].DiscountPercentage))
	assert.True(t, d("50").Equal(sub.Lines[0].DiscountAmount))
	assert.True(t, d("18").Equal(sub.Lines[0].TaxPercentage))
	assert.True(t, d("27").Equal(sub.Lines[0].TaxAmount))
	assert.True(t, d("177").Equal(sub.Lines[0].LineTotal))

	state.CustomerID = ""
	res = pricing.Compute(state, buildTestRef(), pricing.Options{})
	sub = pricing.BuildSubmission(state, res, 2)
	assert.False(t, sub.Ready)
	assert.Contains(t, sub.MissingRoles, entity.RoleReceivable)
}
