package dto

// ErrorResponse cuerpo de error HTTP. Error es el mensaje legible; Code el tipo de fallo.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
