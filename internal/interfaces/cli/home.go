package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"
)

// pageShops portada pública: tiendas navegables sin sesión.
func pageShops(ctx context.Context, d *Deps, _ []string) error {
	shops, err := d.API.Public.GetShops(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(d.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIENDA\tWHATSAPP")
	for _, s := range shops {
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Name, s.WhatsAppNumber)
	}
	return w.Flush()
}

// pageCatalog catálogo público de una tienda, con enlaces de consulta WhatsApp.
func pageCatalog(ctx context.Context, d *Deps, args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	shop := fs.Int("shop", 0, "id de la tienda")
	if err := fs.Parse(args); err != nil {
		return err
	}

	products, err := d.API.Public.GetProducts(ctx, *shop)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(d.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCTO\tCATEGORÍA\tPRECIO\tSTOCK\tCONSULTAR")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			p.ID, p.Name, p.Category, p.SellingPrice.StringFixed(2), p.Stock, p.WhatsAppLink)
	}
	return w.Flush()
}
