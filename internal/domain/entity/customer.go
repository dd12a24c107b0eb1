package entity

// Customer representa el cliente de la factura con sus cuentas por cobrar por defecto.
type Customer struct {
	ID                       string
	Name                     string
	TaxID                    string // NIT o Cédula
	ReceivableAccountID      string // cuenta propia del cliente
	GroupReceivableAccountID string // cuenta del grupo de clientes
}
