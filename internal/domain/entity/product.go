package entity

import "github.com/shopspring/decimal"

// Tipos de producto. Los servicios no mueven inventario ni generan costo de venta.
const (
	ProductTypeGoods   = "goods"
	ProductTypeService = "service"
)

// Product representa el producto del catálogo tal como lo entrega el servicio de productos.
// Las cuentas de producto tienen prioridad sobre las de su categoría.
type Product struct {
	ID                      string
	SKU                     string
	Name                    string
	SellingPrice            decimal.Decimal  // precio de catálogo (puede incluir IVA)
	CategoryPrice           *decimal.Decimal // precio por categoría; si existe reemplaza SellingPrice
	IncomeAccountID         string
	CategoryIncomeAccountID string
	COGSAccountID           string
	CategoryCOGSAccountID   string
	AssetAccountID          string
	CategoryAssetAccountID  string
	AverageCost             decimal.Decimal // costo promedio ponderado
	ProductType             string
	PriceTaxInclusive       bool
	SalesTaxID              string
}

// IsService indica si el producto es un servicio (sin costo de venta ni inventario).
func (p *Product) IsService() bool {
	return p.ProductType == ProductTypeService
}

// CatalogPrice devuelve el precio de catálogo a usar: el precio por categoría si existe.
func (p *Product) CatalogPrice() decimal.Decimal {
	if p.CategoryPrice != nil {
		return *p.CategoryPrice
	}
	return p.SellingPrice
}
