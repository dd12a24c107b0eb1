package pricing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-engine/internal/domain/entity"
)

// PostingInput reúne lo que necesita la vista previa contable.
// Lines y Results van en el mismo orden (Results[i] corresponde a Lines[i]).
type PostingInput struct {
	Lines   []entity.Line
	Results []entity.LineResult
	Totals  entity.InvoiceTotals
	Ref     *ReferenceData

	CustomerID string
	// Cuentas elegidas por el usuario para roles de cabecera (receivable, discount_allowed).
	RoleOverrides map[entity.AccountRole]string
	// Cuenta elegida por el usuario para un código de impuesto (ID de código -> cuenta).
	TaxAccountOverrides map[string]string
	MinQuantity         decimal.Decimal
}

// Balance es la comprobación débito = crédito de la vista previa.
type Balance struct {
	Debit      decimal.Decimal
	Credit     decimal.Decimal
	Difference decimal.Decimal
	Balanced   bool
}

// CheckBalance suma débitos y créditos de los asientos.
func CheckBalance(entries []entity.PostingEntry) Balance {
	var b Balance
	for _, e := range entries {
		if e.Nature == entity.NatureDebit {
			b.Debit = b.Debit.Add(e.Amount)
		} else {
			b.Credit = b.Credit.Add(e.Amount)
		}
	}
	b.Difference = b.Debit.Sub(b.Credit)
	b.Balanced = b.Difference.IsZero()
	return b
}

// BuildPostingPreview proyecta los totales de la factura sobre asientos débito/crédito.
//
//	Débito:  cuentas por cobrar (total), costo de venta, descuentos, retenciones
//	Crédito: ingresos (subtotal repartido por cuenta), inventario, IVA por pagar
//
// Un rol sin cuenta resuelta no genera asiento; se reporta como configuración incompleta.
func BuildPostingPreview(in PostingInput) ([]entity.PostingEntry, []entity.Warning) {
	b := &postingBuilder{in: in}

	b.receivable()
	b.income()
	b.costOfSales()
	b.discount()
	b.taxes(false)
	b.taxes(true)

	sortEntries(b.entries)
	return b.entries, b.warns
}

type postingBuilder struct {
	in      PostingInput
	entries []entity.PostingEntry
	warns   []entity.Warning
}

func (b *postingBuilder) add(role entity.AccountRole, nature entity.Nature, accountID string, amount decimal.Decimal, desc string) {
	e := entity.PostingEntry{
		AccountID:   accountID,
		Role:        role,
		Nature:      nature,
		Amount:      amount,
		Description: desc,
	}
	if acc, ok := b.in.Ref.Account(accountID); ok {
		e.AccountCode = acc.Code
		e.AccountName = acc.Name
	}
	b.entries = append(b.entries, e)
}

func (b *postingBuilder) incomplete(role entity.AccountRole, lineID, msg string) {
	b.warns = append(b.warns, entity.Warning{
		Code:    entity.WarnIncompleteConfiguration,
		LineID:  lineID,
		Field:   string(role),
		Message: msg,
	})
}

// resolveHeader resuelve receivable y discount_allowed: override del usuario o cuenta por defecto.
func (b *postingBuilder) resolveHeader(role entity.AccountRole) entity.RoleResolution {
	res := entity.RoleResolution{Override: b.in.RoleOverrides[role]}
	ref := b.in.Ref
	switch role {
	case entity.RoleReceivable:
		if c, ok := ref.Customer(b.in.CustomerID); ok {
			res.Default = firstNonEmpty(c.ReceivableAccountID, c.GroupReceivableAccountID)
		}
		if res.Default == "" {
			res.Default = ref.Linked(entity.LinkedReceivables)
		}
	case entity.RoleDiscountAllowed:
		res.Default = ref.Linked(entity.LinkedDiscountsAllowed)
	}
	return res
}

// resolveLine resuelve las cuentas por línea: override de la línea, producto, categoría, cuenta vinculada.
func (b *postingBuilder) resolveLine(role entity.AccountRole, line entity.Line) entity.RoleResolution {
	p, _ := b.in.Ref.Product(line.ProductID)
	ref := b.in.Ref
	switch role {
	case entity.RoleIncome:
		return entity.RoleResolution{
			Override: line.IncomeAccountOverride,
			Default:  firstNonEmpty(p.IncomeAccountID, p.CategoryIncomeAccountID, ref.Linked(entity.LinkedSales)),
		}
	case entity.RoleCOGS:
		return entity.RoleResolution{
			Override: line.COGSAccountOverride,
			Default:  firstNonEmpty(p.COGSAccountID, p.CategoryCOGSAccountID, ref.Linked(entity.LinkedCostOfSales)),
		}
	case entity.RoleInventory:
		return entity.RoleResolution{
			Override: line.InventoryAccountOverride,
			Default:  firstNonEmpty(p.AssetAccountID, p.CategoryAssetAccountID, ref.Linked(entity.LinkedInventory)),
		}
	}
	return entity.RoleResolution{}
}

// resolveTax resuelve la cuenta de un código de impuesto: override por código, cuenta del código, vinculada.
func (b *postingBuilder) resolveTax(tc entity.TaxCode, withholding bool) entity.RoleResolution {
	linkedKey := entity.LinkedTaxPayable
	if withholding {
		linkedKey = entity.LinkedWHTReceivable
	}
	return entity.RoleResolution{
		Override: b.in.TaxAccountOverrides[tc.ID],
		Default:  firstNonEmpty(tc.PostingAccountID, b.in.Ref.Linked(linkedKey)),
	}
}

func (b *postingBuilder) receivable() {
	acct := b.resolveHeader(entity.RoleReceivable).Effective()
	if acct == "" {
		b.incomplete(entity.RoleReceivable, "", "no hay cuenta por cobrar para el cliente ni cuenta vinculada")
		return
	}
	amount := b.in.Totals.Total
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	b.add(entity.RoleReceivable, entity.NatureDebit, acct, amount, "Cuentas por cobrar")
}

// income reparte el subtotal de la factura entre las cuentas de ingreso en proporción
// al subtotal bruto de sus líneas. Las cuentas sin subtotal no reciben asiento. La cuenta
// de mayor subtotal (desempate por ID) absorbe el residuo de la división, así la suma es
// exactamente el subtotal y ningún monto queda negativo.
func (b *postingBuilder) income() {
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	grouped := decimal.Zero
	for i, line := range b.in.Lines {
		acct := b.resolveLine(entity.RoleIncome, line).Effective()
		if acct == "" {
			b.incomplete(entity.RoleIncome, line.ID, "la línea no tiene cuenta de ingresos; su valor se reparte entre las demás")
			continue
		}
		sub := b.in.Results[i].LineSubtotal
		sums[acct] = sums[acct].Add(sub)
		counts[acct]++
		grouped = grouped.Add(sub)
	}
	if !grouped.IsPositive() {
		if b.in.Totals.Subtotal.IsPositive() {
			b.incomplete(entity.RoleIncome, "", "ninguna línea tiene cuenta de ingresos")
		}
		return
	}

	accts := make([]string, 0, len(sums))
	for a, sum := range sums {
		if sum.IsPositive() {
			accts = append(accts, a)
		}
	}
	sort.Strings(accts)

	absorber := accts[0]
	for _, a := range accts[1:] {
		if sums[a].GreaterThan(sums[absorber]) {
			absorber = a
		}
	}

	subtotal := b.in.Totals.Subtotal
	shares := make(map[string]decimal.Decimal, len(accts))
	assigned := decimal.Zero
	for _, a := range accts {
		if a == absorber {
			continue
		}
		shares[a] = sums[a].Mul(subtotal).Div(grouped)
		assigned = assigned.Add(shares[a])
	}
	shares[absorber] = subtotal.Sub(assigned)

	for _, a := range accts {
		b.add(entity.RoleIncome, entity.NatureCredit, a, shares[a], fmt.Sprintf("Ingresos por ventas (%d líneas)", counts[a]))
	}
}

func (b *postingBuilder) costOfSales() {
	minQty := b.in.MinQuantity
	if !minQty.IsPositive() {
		minQty = DefaultMinQuantity
	}
	for _, line := range b.in.Lines {
		p, ok := b.in.Ref.Product(line.ProductID)
		if !ok || p.IsService() {
			continue
		}
		qty := line.Quantity
		if qty.LessThan(minQty) {
			qty = minQty
		}
		cogs := qty.Mul(p.AverageCost)
		if !cogs.IsPositive() {
			continue
		}
		cogsAcct := b.resolveLine(entity.RoleCOGS, line).Effective()
		invAcct := b.resolveLine(entity.RoleInventory, line).Effective()
		if cogsAcct == "" || invAcct == "" {
			b.incomplete(entity.RoleCOGS, line.ID, fmt.Sprintf("producto %s sin cuenta de costo de venta o inventario", p.Name))
			continue
		}
		b.add(entity.RoleCOGS, entity.NatureDebit, cogsAcct, cogs, "Costo de venta - "+p.Name)
		b.add(entity.RoleInventory, entity.NatureCredit, invAcct, cogs, "Salida de inventario - "+p.Name)
	}
}

func (b *postingBuilder) discount() {
	acct := b.resolveHeader(entity.RoleDiscountAllowed).Effective()
	if acct == "" {
		if b.in.Totals.TotalDiscount.IsPositive() {
			b.incomplete(entity.RoleDiscountAllowed, "", "hay descuentos pero no cuenta de descuentos concedidos")
		}
		return
	}
	b.add(entity.RoleDiscountAllowed, entity.NatureDebit, acct, b.in.Totals.TotalDiscount, "Descuentos concedidos")
}

// taxes agrupa IVA (crédito) o retenciones (débito) por la cuenta resuelta de cada código.
func (b *postingBuilder) taxes(withholding bool) {
	role, nature := entity.RoleTaxPayable, entity.NatureCredit
	if withholding {
		role, nature = entity.RoleWHTReceivable, entity.NatureDebit
	}
	sums := make(map[string]decimal.Decimal)
	names := make(map[string][]string)
	for i, line := range b.in.Lines {
		codeID, amount := line.SalesTaxCodeID, b.in.Results[i].VATAmount
		if withholding {
			codeID, amount = line.WHTTaxCodeID, b.in.Results[i].WHTAmount
		}
		if !amount.IsPositive() {
			continue
		}
		tc, ok := b.in.Ref.TaxCode(codeID)
		if !ok {
			continue
		}
		acct := b.resolveTax(tc, withholding).Effective()
		if acct == "" {
			b.incomplete(role, line.ID, fmt.Sprintf("código de impuesto %s sin cuenta contable", tc.Code))
			continue
		}
		sums[acct] = sums[acct].Add(amount)
		names[acct] = appendUnique(names[acct], tc.Code)
	}

	accts := make([]string, 0, len(sums))
	for a := range sums {
		accts = append(accts, a)
	}
	sort.Strings(accts)
	for _, a := range accts {
		label := "IVA por pagar"
		if withholding {
			label = "Retenciones por cobrar"
		}
		b.add(role, nature, a, sums[a], label+" "+strings.Join(names[a], ", "))
	}
}

// sortEntries deja primero los débitos y luego los créditos; dentro de cada naturaleza,
// por nombre de cuenta ascendente (comparación de bytes). El orden de emisión desempata.
func sortEntries(entries []entity.PostingEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ei, ej := entries[i], entries[j]
		if ei.Nature != ej.Nature {
			return ei.Nature == entity.NatureDebit
		}
		return ei.AccountName < ej.AccountName
	})
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func appendUnique(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}
