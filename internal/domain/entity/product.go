package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo de una tienda.
// PurchasePrice solo viaja en respuestas para SuperAdmin; para Admin y público el API lo omite.
type Product struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Stock         int             `json:"stock"`
	ImageURL      string          `json:"image_url"`
	ShopID        int             `json:"shop_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Profit margen unitario (venta - compra). Solo tiene sentido con datos de SuperAdmin.
func (p *Product) Profit() decimal.Decimal {
	return p.SellingPrice.Sub(p.PurchasePrice)
}

// AdminProduct respuesta de producto para rol Admin (sin precio de compra).
type AdminProduct struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Stock        int             `json:"stock"`
	ImageURL     string          `json:"image_url"`
	ShopID       int             `json:"shop_id"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PublicProduct producto visible para visitantes anónimos del catálogo público.
type PublicProduct struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Stock        int             `json:"stock"`
	ImageURL     string          `json:"image_url"`
	WhatsAppLink string          `json:"whatsapp_link"`
}

// ToAdmin proyecta el producto a la vista de Admin.
func (p *Product) ToAdmin() AdminProduct {
	return AdminProduct{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		SellingPrice: p.SellingPrice,
		Stock:        p.Stock,
		ImageURL:     p.ImageURL,
		ShopID:       p.ShopID,
		CreatedAt:    p.CreatedAt,
	}
}

// ToPublic proyecta el producto a la vista pública, con enlace de contacto WhatsApp.
func (p *Product) ToPublic(whatsappNumber string) PublicProduct {
	return PublicProduct{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		SellingPrice: p.SellingPrice,
		Stock:        p.Stock,
		ImageURL:     p.ImageURL,
		WhatsAppLink: WhatsAppLink(whatsappNumber, p.Name),
	}
}
