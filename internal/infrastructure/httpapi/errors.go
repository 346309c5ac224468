package httpapi

import (
	"encoding/json"

	"github.com/jhoicas/tienda-client/internal/application/dto"
	"github.com/jhoicas/tienda-client/internal/domain"
)

// genericMessage mensaje cuando el payload de error falta o no tiene la forma {"error": ...}.
const genericMessage = "error inesperado del servidor"

// APIError error normalizado de una respuesta no-2xx del API remoto.
// Message es presentable al usuario; Unwrap expone el sentinela de dominio
// según la clase de fallo para decidir con errors.Is.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string { return e.Message }

// Unwrap devuelve el sentinela de la clase (puede ser nil para 5xx genéricos).
func (e *APIError) Unwrap() error { return e.kind }

// newAPIError extrae el mensaje del payload {"error": ...} y clasifica por status:
// 401 sesión inválida, 403 autorización insuficiente, 404 no encontrado, 400 entrada rechazada.
func newAPIError(status int, payload []byte) *APIError {
	message := genericMessage
	var body dto.ErrorResponse
	if err := json.Unmarshal(payload, &body); err == nil && body.Error != "" {
		message = body.Error
	}

	var kind error
	switch status {
	case 400:
		kind = domain.ErrInvalidInput
	case 401:
		kind = domain.ErrUnauthorized
	case 403:
		kind = domain.ErrForbidden
	case 404:
		kind = domain.ErrNotFound
	}

	return &APIError{Status: status, Message: message, kind: kind}
}
