package dto

// ErrorResponse cuerpo de error del API remoto. El contrato es un único campo "error";
// si el payload no tiene esta forma, el cliente degrada a un mensaje genérico.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse respuesta simple de confirmación (ej. actualización de WhatsApp).
type MessageResponse struct {
	Message string `json:"message"`
}
