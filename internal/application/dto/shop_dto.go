package dto

import (
	"fmt"

	"github.com/jhoicas/tienda-client/internal/domain"
)

// UpdateWhatsAppRequest cuerpo de PUT /shops/whatsapp (SuperAdmin).
type UpdateWhatsAppRequest struct {
	WhatsAppNumber string `json:"whatsapp_number"`
}

// Validate exige un número no vacío antes del dispatch.
func (r UpdateWhatsAppRequest) Validate() error {
	if r.WhatsAppNumber == "" {
		return fmt.Errorf("%w: whatsapp_number es requerido", domain.ErrInvalidInput)
	}
	return nil
}
