package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"` // errores por campo (VALIDATION)
}

// MessageResponse respuesta simple con mensaje legible.
type MessageResponse struct {
	Message string `json:"message"`
}
