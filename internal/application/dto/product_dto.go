package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-client/internal/domain"
)

// ProductInput cuerpo de alta/actualización de producto.
type ProductInput struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Stock         int             `json:"stock"`
	ImageURL      string          `json:"image_url"`
}

// Validate rechaza el input antes del dispatch: precios no negativos, stock >= 0, nombre requerido.
func (p ProductInput) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if p.PurchasePrice.IsNegative() || p.SellingPrice.IsNegative() {
		return fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrInvalidInput)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}
