package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// pageDashboard resumen de la tienda. Las estadísticas financieras se piden y
// muestran solo con la capacidad CanSeeFinancials; los demás bloques son para todo staff.
func pageDashboard(ctx context.Context, d *Deps, _ []string) error {
	id := d.Session.Session().Identity()
	fmt.Fprintf(d.Out, "Bienvenido, %s (rol %s)\n\n", id.Name, id.Role)

	if d.Session.CanSeeFinancials() {
		stats, err := d.API.Dashboard.GetStats(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(d.Out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Ventas totales\t"+stats.TotalSales.StringFixed(2))
		fmt.Fprintln(w, "Gastos totales\t"+stats.TotalExpenses.StringFixed(2))
		fmt.Fprintln(w, "Beneficio neto\t"+stats.NetProfit.StringFixed(2))
		fmt.Fprintf(w, "Productos vendidos\t%d\n", stats.ProductsSold)
		fmt.Fprintf(w, "Stock bajo\t%d\n", stats.LowStockCount)
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(d.Out)
	}

	transactions, err := d.API.Transactions.List(ctx)
	if err != nil {
		return err
	}
	if len(transactions) > 5 {
		transactions = transactions[len(transactions)-5:]
	}
	fmt.Fprintln(d.Out, "Últimos movimientos:")
	w := tabwriter.NewWriter(d.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIPO\tCANTIDAD\tMONTO\tFECHA")
	for _, t := range transactions {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			t.ID, t.Type, t.Quantity, t.Amount.StringFixed(2), t.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
