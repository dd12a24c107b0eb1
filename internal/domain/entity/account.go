package entity

// Naturaleza contable (débito o crédito).
type Nature string

const (
	NatureDebit  Nature = "debit"
	NatureCredit Nature = "credit"
)

// Account representa una cuenta del plan contable. Nature solo se usa para etiquetar en pantalla.
type Account struct {
	ID     string
	Code   string
	Name   string
	Nature Nature
}

// AccountRole es el rol funcional que una cuenta cumple en la contabilización de la factura.
type AccountRole string

const (
	RoleReceivable      AccountRole = "receivable"
	RoleDiscountAllowed AccountRole = "discount_allowed"
	RoleIncome          AccountRole = "income"
	RoleCOGS            AccountRole = "cogs"
	RoleInventory       AccountRole = "inventory"
	RoleTaxPayable      AccountRole = "tax_payable"
	RoleWHTReceivable   AccountRole = "wht_receivable"
)

// RoleResolution guarda la cuenta por defecto de un rol y la que el usuario eligió.
type RoleResolution struct {
	Default  string
	Override string
}

// Effective devuelve override si existe, si no la cuenta por defecto.
func (r RoleResolution) Effective() string {
	if r.Override != "" {
		return r.Override
	}
	return r.Default
}

// Claves de cuentas vinculadas por defecto (configuración de la empresa).
const (
	LinkedReceivables      = "receivables"
	LinkedDiscountsAllowed = "discounts_allowed"
	LinkedSales            = "sales"
	LinkedCostOfSales      = "cost_of_sales"
	LinkedInventory        = "inventory"
	LinkedTaxPayable       = "tax_payable"
	LinkedWHTReceivable    = "wht_receivable"
)

// LinkedAccountDefault asocia una clave de cuenta vinculada con la cuenta contable por defecto.
type LinkedAccountDefault struct {
	Role      string
	AccountID string
}
