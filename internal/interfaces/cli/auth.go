package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/jhoicas/tienda-client/internal/application/dto"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
)

// pageLogin establece la sesión. El resultado del controller ya viene normalizado:
// aquí solo se presenta.
func pageLogin(ctx context.Context, d *Deps, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "email de la cuenta")
	password := fs.String("password", "", "password de la cuenta")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res := d.Session.Login(ctx, *email, *password)
	if !res.Success {
		fmt.Fprintf(d.Out, "Login fallido: %s\n", res.Error)
		return nil
	}
	id := d.Session.Session().Identity()
	fmt.Fprintf(d.Out, "Sesión iniciada como %s (%s)\n", id.Name, id.Role)
	return nil
}

// pageRegister da de alta una cuenta; no inicia sesión.
func pageRegister(ctx context.Context, d *Deps, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "nombre completo")
	email := fs.String("email", "", "email de la cuenta")
	password := fs.String("password", "", "password de la cuenta")
	roleStr := fs.String("role", string(entity.RoleAdmin), "Admin o SuperAdmin")
	shop := fs.Int("shop", 0, "id de la tienda")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res := d.Session.Register(ctx, dto.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     entity.Role(*roleStr),
		ShopID:   *shop,
	})
	if !res.Success {
		fmt.Fprintf(d.Out, "Registro fallido: %s\n", res.Error)
		return nil
	}
	fmt.Fprintln(d.Out, "Cuenta creada. Inicia sesión con: tienda login --email ... --password ...")
	return nil
}

func pageLogout(_ context.Context, d *Deps, _ []string) error {
	d.Session.Logout()
	fmt.Fprintln(d.Out, "Sesión cerrada.")
	return nil
}

func pageWhoami(_ context.Context, d *Deps, _ []string) error {
	id := d.Session.Session().Identity()
	if id == nil {
		fmt.Fprintln(d.Out, "Sin sesión.")
		return nil
	}
	fmt.Fprintf(d.Out, "%s <%s>, rol %s, tienda %d\n", id.Name, id.Email, id.Role, id.ShopID)
	return nil
}
