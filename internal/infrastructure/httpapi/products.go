package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/tienda-client/internal/application/dto"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
)

// ProductsAPI gestión de productos de la tienda del staff autenticado.
// Las respuestas traen purchase_price solo cuando el rol del token es SuperAdmin;
// para Admin el campo llega en cero y no debe mostrarse.
type ProductsAPI struct {
	c *Client
}

// List productos de la tienda propia.
func (p *ProductsAPI) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := p.c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create da de alta un producto.
func (p *ProductsAPI) Create(ctx context.Context, in dto.ProductInput) (*entity.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out entity.Product
	if err := p.c.do(ctx, http.MethodPost, "/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza los datos de un producto.
func (p *ProductsAPI) Update(ctx context.Context, id int, in dto.ProductInput) (*entity.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out entity.Product
	if err := p.c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un producto.
func (p *ProductsAPI) Delete(ctx context.Context, id int) error {
	return p.c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}
