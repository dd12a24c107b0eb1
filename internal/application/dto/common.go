package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WarningResponse aviso suave del motor (corrección de un valor, configuración incompleta).
type WarningResponse struct {
	Code    string `json:"code"`
	LineID  string `json:"line_id,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}
