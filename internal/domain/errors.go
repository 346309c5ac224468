package domain

import "errors"

// Errores de dominio del cliente (sin dependencias externas).
// La capa HTTP normaliza cada respuesta fallida a uno de estos sentinelas;
// el resto del código decide con errors.Is sin mirar códigos de estado.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("credencial no aceptada por el servidor")
	ErrForbidden         = errors.New("acceso denegado")
	ErrTransport         = errors.New("servicio remoto inalcanzable")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
