package credstore

import "github.com/jhoicas/tienda-client/internal/domain/entity"

// Store persiste el par credencial + snapshot de identidad del cliente.
// Contrato: Write es atómico frente a lectores (nunca se observa un par a medias);
// Read devuelve ambos o ninguno (un archivo con una sola mitad se trata como vacío);
// un medio de almacenamiento ausente o inaccesible degrada a lectura vacía, jamás panic.
type Store interface {
	// Read devuelve la identidad y la credencial persistidas, o (nil, "") si no hay sesión guardada.
	Read() (*entity.Identity, string, error)
	// Write persiste identidad y credencial como un todo.
	Write(identity entity.Identity, token string) error
	// Clear elimina ambas claves; es idempotente.
	Clear() error
}
