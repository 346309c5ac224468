package httpapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/tienda-client/internal/application/dto"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
)

// TransactionsAPI movimientos financieros de la tienda (staff).
type TransactionsAPI struct {
	c *Client
}

// List transacciones de la tienda propia.
func (t *TransactionsAPI) List(ctx context.Context) ([]entity.Transaction, error) {
	var out []entity.Transaction
	if err := t.c.do(ctx, http.MethodGet, "/transactions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registra un movimiento. El contrato de forma se valida antes del dispatch.
func (t *TransactionsAPI) Create(ctx context.Context, in dto.CreateTransactionRequest) (*entity.Transaction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out entity.Transaction
	if err := t.c.do(ctx, http.MethodPost, "/transactions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
