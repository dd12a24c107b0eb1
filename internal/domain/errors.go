package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El motor de precios no los usa: corrige y avisa. Son para los casos de uso y el transporte.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)
