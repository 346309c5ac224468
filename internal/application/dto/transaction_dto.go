package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-client/internal/domain"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
)

// CreateTransactionRequest cuerpo de POST /transactions.
// Cantidad y monto los aporta el caller; el cliente no deriva montos.
type CreateTransactionRequest struct {
	Type      entity.TransactionType `json:"type"`
	ProductID *int                   `json:"product_id,omitempty"`
	Quantity  int                    `json:"quantity"`
	Amount    decimal.Decimal        `json:"amount"`
}

// Validate aplica el contrato de forma antes del dispatch:
// Sale exige product_id; Expense y Withdrawal lo prohíben; quantity y amount positivos.
func (t CreateTransactionRequest) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: tipo de transacción desconocido %q", domain.ErrInvalidInput, t.Type)
	}
	if t.Type == entity.TransactionSale && t.ProductID == nil {
		return fmt.Errorf("%w: una venta requiere product_id", domain.ErrInvalidInput)
	}
	if t.Type != entity.TransactionSale && t.ProductID != nil {
		return fmt.Errorf("%w: product_id solo aplica a ventas", domain.ErrInvalidInput)
	}
	if t.Quantity <= 0 {
		return fmt.Errorf("%w: quantity debe ser positivo", domain.ErrInvalidInput)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount debe ser positivo", domain.ErrInvalidInput)
	}
	return nil
}
