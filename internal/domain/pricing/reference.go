package pricing

import "github.com/jhoicas/invoice-engine/internal/domain/entity"

// ReferenceData es la foto inmutable de datos maestros usada durante una pasada de cálculo.
// Se construye una vez con NewReferenceData y el motor solo la lee.
type ReferenceData struct {
	taxCodes  map[string]entity.TaxCode
	accounts  map[string]entity.Account
	products  map[string]entity.Product
	customers map[string]entity.Customer
	linked    map[string]string
}

// NewReferenceData indexa los datos maestros por ID. Copia los valores, no los punteros.
func NewReferenceData(
	taxCodes []entity.TaxCode,
	accounts []entity.Account,
	products []entity.Product,
	customers []entity.Customer,
	linked []entity.LinkedAccountDefault,
) *ReferenceData {
	ref := &ReferenceData{
		taxCodes:  make(map[string]entity.TaxCode, len(taxCodes)),
		accounts:  make(map[string]entity.Account, len(accounts)),
		products:  make(map[string]entity.Product, len(products)),
		customers: make(map[string]entity.Customer, len(customers)),
		linked:    make(map[string]string, len(linked)),
	}
	for _, tc := range taxCodes {
		ref.taxCodes[tc.ID] = tc
	}
	for _, a := range accounts {
		ref.accounts[a.ID] = a
	}
	for _, p := range products {
		ref.products[p.ID] = p
	}
	for _, c := range customers {
		ref.customers[c.ID] = c
	}
	for _, l := range linked {
		if l.AccountID != "" {
			ref.linked[l.Role] = l.AccountID
		}
	}
	return ref
}

// TaxCode busca un código de impuesto por ID.
func (r *ReferenceData) TaxCode(id string) (entity.TaxCode, bool) {
	if r == nil || id == "" {
		return entity.TaxCode{}, false
	}
	tc, ok := r.taxCodes[id]
	return tc, ok
}

// Account busca una cuenta por ID.
func (r *ReferenceData) Account(id string) (entity.Account, bool) {
	if r == nil || id == "" {
		return entity.Account{}, false
	}
	a, ok := r.accounts[id]
	return a, ok
}

// Product busca un producto por ID.
func (r *ReferenceData) Product(id string) (entity.Product, bool) {
	if r == nil || id == "" {
		return entity.Product{}, false
	}
	p, ok := r.products[id]
	return p, ok
}

// Customer busca un cliente por ID.
func (r *ReferenceData) Customer(id string) (entity.Customer, bool) {
	if r == nil || id == "" {
		return entity.Customer{}, false
	}
	c, ok := r.customers[id]
	return c, ok
}

// Linked devuelve la cuenta vinculada por defecto para la clave dada ("" si no existe).
func (r *ReferenceData) Linked(role string) string {
	if r == nil {
		return ""
	}
	return r.linked[role]
}
