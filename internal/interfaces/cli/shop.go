package cli

import (
	"context"
	"flag"
	"fmt"
)

// pageWhatsApp actualiza el número de contacto de la tienda propia.
// El API lo restringe a SuperAdmin; aquí solo se presenta el rechazo si llega.
func pageWhatsApp(ctx context.Context, d *Deps, args []string) error {
	fs := flag.NewFlagSet("whatsapp", flag.ContinueOnError)
	number := fs.String("number", "", "número WhatsApp de la tienda")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := d.API.Shops.UpdateWhatsApp(ctx, *number); err != nil {
		return err
	}
	fmt.Fprintln(d.Out, "Número WhatsApp actualizado.")
	return nil
}
