package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-client/internal/application/dto"
	"github.com/jhoicas/tienda-client/internal/domain"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
)

// pageTransactions lista y alta de movimientos financieros.
func pageTransactions(ctx context.Context, d *Deps, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		return transactionsList(ctx, d)
	case "create":
		return transactionsCreate(ctx, d, args[1:])
	default:
		return fmt.Errorf("%w: subcomando %q (list|create)", domain.ErrInvalidInput, args[0])
	}
}

func transactionsList(ctx context.Context, d *Deps) error {
	transactions, err := d.API.Transactions.List(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(d.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIPO\tPRODUCTO\tCANTIDAD\tMONTO\tFECHA")
	for _, t := range transactions {
		product := "-"
		if t.ProductID != nil {
			product = fmt.Sprintf("%d", *t.ProductID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
			t.ID, t.Type, product, t.Quantity, t.Amount.StringFixed(2),
			t.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func transactionsCreate(ctx context.Context, d *Deps, args []string) error {
	fs := flag.NewFlagSet("transactions create", flag.ContinueOnError)
	typeStr := fs.String("type", "", "Sale, Expense o Withdrawal")
	productID := fs.Int("product", 0, "id del producto (solo ventas)")
	quantity := fs.Int("quantity", 1, "cantidad")
	amountStr := fs.String("amount", "", "monto del movimiento")
	if err := fs.Parse(args); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(*amountStr)
	if err != nil {
		return fmt.Errorf("%w: amount %q", domain.ErrInvalidInput, *amountStr)
	}
	req := dto.CreateTransactionRequest{
		Type:     entity.TransactionType(*typeStr),
		Quantity: *quantity,
		Amount:   amount,
	}
	if *productID != 0 {
		req.ProductID = productID
	}

	t, err := d.API.Transactions.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.Out, "Movimiento %d registrado (%s por %s).\n", t.ID, t.Type, t.Amount.StringFixed(2))
	return nil
}
