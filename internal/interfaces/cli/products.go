package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-client/internal/application/dto"
	"github.com/jhoicas/tienda-client/internal/domain"
)

// pageProducts CRUD de productos de la tienda propia.
// Precio de compra y beneficio se muestran solo con CanSeeFinancials.
func pageProducts(ctx context.Context, d *Deps, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		return productsList(ctx, d)
	case "create":
		return productsCreate(ctx, d, args[1:])
	case "update":
		return productsUpdate(ctx, d, args[1:])
	case "delete":
		return productsDelete(ctx, d, args[1:])
	default:
		return fmt.Errorf("%w: subcomando %q (list|create|update|delete)", domain.ErrInvalidInput, args[0])
	}
}

func productsList(ctx context.Context, d *Deps) error {
	products, err := d.API.Products.List(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(d.Out, 0, 4, 2, ' ', 0)
	if d.Session.CanSeeFinancials() {
		fmt.Fprintln(w, "ID\tPRODUCTO\tCATEGORÍA\tCOMPRA\tVENTA\tBENEFICIO\tSTOCK")
		for i := range products {
			p := &products[i]
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
				p.ID, p.Name, p.Category,
				p.PurchasePrice.StringFixed(2), p.SellingPrice.StringFixed(2),
				p.Profit().StringFixed(2), p.Stock)
		}
	} else {
		fmt.Fprintln(w, "ID\tPRODUCTO\tCATEGORÍA\tVENTA\tSTOCK")
		for i := range products {
			p := &products[i]
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
				p.ID, p.Name, p.Category, p.SellingPrice.StringFixed(2), p.Stock)
		}
	}
	return w.Flush()
}

// productFlags flags comunes de alta y actualización.
func productFlags(fs *flag.FlagSet) (name, description, category, purchase, selling, imageURL *string, stock *int) {
	name = fs.String("name", "", "nombre del producto")
	description = fs.String("description", "", "descripción")
	category = fs.String("category", "", "categoría")
	purchase = fs.String("purchase-price", "0", "precio de compra")
	selling = fs.String("selling-price", "0", "precio de venta")
	imageURL = fs.String("image-url", "", "URL de la imagen")
	stock = fs.Int("stock", 0, "unidades en stock")
	return
}

func parseProductInput(name, description, category, purchase, selling, imageURL string, stock int) (dto.ProductInput, error) {
	pp, err := decimal.NewFromString(purchase)
	if err != nil {
		return dto.ProductInput{}, fmt.Errorf("%w: purchase-price %q", domain.ErrInvalidInput, purchase)
	}
	sp, err := decimal.NewFromString(selling)
	if err != nil {
		return dto.ProductInput{}, fmt.Errorf("%w: selling-price %q", domain.ErrInvalidInput, selling)
	}
	return dto.ProductInput{
		Name:          name,
		Description:   description,
		Category:      category,
		PurchasePrice: pp,
		SellingPrice:  sp,
		Stock:         stock,
		ImageURL:      imageURL,
	}, nil
}

func productsCreate(ctx context.Context, d *Deps, args []string) error {
	fs := flag.NewFlagSet("products create", flag.ContinueOnError)
	name, description, category, purchase, selling, imageURL, stock := productFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, err := parseProductInput(*name, *description, *category, *purchase, *selling, *imageURL, *stock)
	if err != nil {
		return err
	}
	p, err := d.API.Products.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.Out, "Producto %d creado: %s\n", p.ID, p.Name)
	return nil
}

func productsUpdate(ctx context.Context, d *Deps, args []string) error {
	fs := flag.NewFlagSet("products update", flag.ContinueOnError)
	id := fs.Int("id", 0, "id del producto")
	name, description, category, purchase, selling, imageURL, stock := productFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, err := parseProductInput(*name, *description, *category, *purchase, *selling, *imageURL, *stock)
	if err != nil {
		return err
	}
	p, err := d.API.Products.Update(ctx, *id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.Out, "Producto %d actualizado.\n", p.ID)
	return nil
}

func productsDelete(ctx context.Context, d *Deps, args []string) error {
	fs := flag.NewFlagSet("products delete", flag.ContinueOnError)
	id := fs.Int("id", 0, "id del producto")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := d.API.Products.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(d.Out, "Producto %d eliminado.\n", *id)
	return nil
}
