package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tipo de movimiento financiero de la tienda.
type TransactionType string

const (
	TransactionSale       TransactionType = "Sale"
	TransactionExpense    TransactionType = "Expense"
	TransactionWithdrawal TransactionType = "Withdrawal"
)

// Valid indica si el tipo pertenece a la enumeración cerrada.
func (t TransactionType) Valid() bool {
	return t == TransactionSale || t == TransactionExpense || t == TransactionWithdrawal
}

// Transaction movimiento registrado contra una tienda.
// ProductID es obligatorio para ventas y debe estar ausente en gastos y retiros.
type Transaction struct {
	ID        int             `json:"id"`
	Type      TransactionType `json:"type"`
	ProductID *int            `json:"product_id,omitempty"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	ShopID    int             `json:"shop_id"`
	CreatedAt time.Time       `json:"created_at"`
}
