package domain

import "errors"

// Tipos de error del pipeline (sin dependencias externas).
// Cada variante se mapea a un código HTTP en interfaces/http.
var (
	// ErrValidation entrada del cliente ausente o mal formada (400).
	ErrValidation = errors.New("entrada inválida")
	// ErrInvalidResponse el LLM respondió algo que no cumple el contrato (500).
	ErrInvalidResponse = errors.New("respuesta inválida del LLM")
	// ErrTransport la llamada al LLM falló: red, timeout o respuesta de API rota (500).
	ErrTransport = errors.New("fallo al invocar el LLM")
)

// Error transporta el tipo (uno de los sentinels de arriba), el mensaje legible
// que se devuelve al cliente y, opcionalmente, la causa original.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap permite errors.Is tanto contra el tipo como contra la causa.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// NewValidationError error de validación de la petición.
func NewValidationError(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// NewInvalidResponseError el texto devuelto por el LLM no se pudo interpretar.
func NewInvalidResponseError(msg string) error {
	return &Error{Kind: ErrInvalidResponse, Message: msg}
}

// NewTransportError envuelve cualquier fallo de la llamada externa.
func NewTransportError(msg string, cause error) error {
	return &Error{Kind: ErrTransport, Message: msg, Err: cause}
}

// KindOf devuelve el sentinel del error o nil si no pertenece al pipeline.
func KindOf(err error) error {
	switch {
	case errors.Is(err, ErrValidation):
		return ErrValidation
	case errors.Is(err, ErrInvalidResponse):
		return ErrInvalidResponse
	case errors.Is(err, ErrTransport):
		return ErrTransport
	default:
		return nil
	}
}
