package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/tienda-client/internal/domain/entity"
)

// PublicAPI catálogo público: navegable sin sesión.
type PublicAPI struct {
	c *Client
}

// GetShops lista las tiendas de la plataforma.
func (p *PublicAPI) GetShops(ctx context.Context) ([]entity.Shop, error) {
	var out []entity.Shop
	if err := p.c.do(ctx, http.MethodGet, "/shops", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProducts catálogo público de una tienda, con enlaces WhatsApp y sin precios de compra.
func (p *PublicAPI) GetProducts(ctx context.Context, shopID int) ([]entity.PublicProduct, error) {
	var out []entity.PublicProduct
	path := fmt.Sprintf("/public/%d/products", shopID)
	if err := p.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
