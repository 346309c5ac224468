package httpapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/tienda-client/internal/application/dto"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
)

// ShopsAPI ajustes de tienda.
type ShopsAPI struct {
	c *Client
}

// List tiendas de la plataforma (mismo recurso que el listado público).
func (s *ShopsAPI) List(ctx context.Context) ([]entity.Shop, error) {
	var out []entity.Shop
	if err := s.c.do(ctx, http.MethodGet, "/shops", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateWhatsApp cambia el número de contacto de la tienda propia (SuperAdmin).
func (s *ShopsAPI) UpdateWhatsApp(ctx context.Context, whatsappNumber string) error {
	req := dto.UpdateWhatsAppRequest{WhatsAppNumber: whatsappNumber}
	if err := req.Validate(); err != nil {
		return err
	}
	var out dto.MessageResponse
	return s.c.do(ctx, http.MethodPut, "/shops/whatsapp", req, &out)
}
