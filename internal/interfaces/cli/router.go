package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/jhoicas/tienda-client/internal/application/guard"
	"github.com/jhoicas/tienda-client/internal/application/session"
	"github.com/jhoicas/tienda-client/internal/infrastructure/httpapi"
	"github.com/jhoicas/tienda-client/pkg/logger"
)

// errLoginRequired la ruta era protegida y la sesión es anónima.
var errLoginRequired = errors.New("se requiere iniciar sesión")

// Deps dependencias compartidas por todas las páginas.
type Deps struct {
	Session *session.Controller
	Guard   *guard.Guard
	API     *httpapi.Client
	Log     *logger.Logger
	Out     io.Writer
}

type handlerFunc func(ctx context.Context, d *Deps, args []string) error

// route una página navegable: su handler y si exige sesión.
type route struct {
	protected bool
	help      string
	run       handlerFunc
}

// Router tabla de navegación del cliente. Antes de despachar una ruta protegida
// consulta al guard, que espera el fin del bootstrap y redirige al login si
// no hay sesión; la página nunca se ejecuta sin ese veredicto.
type Router struct {
	deps   *Deps
	routes map[string]route
}

// NewRouter registra las páginas del cliente.
func NewRouter(deps *Deps) *Router {
	r := &Router{deps: deps, routes: map[string]route{}}

	// Públicas
	r.routes["shops"] = route{help: "lista las tiendas de la plataforma", run: pageShops}
	r.routes["catalog"] = route{help: "catálogo público de una tienda: catalog --shop <id>", run: pageCatalog}
	r.routes["login"] = route{help: "inicia sesión: login --email <e> --password <p>", run: pageLogin}
	r.routes["register"] = route{help: "registra una cuenta de staff", run: pageRegister}

	// Protegidas
	r.routes["logout"] = route{protected: true, help: "cierra la sesión", run: pageLogout}
	r.routes["whoami"] = route{protected: true, help: "muestra la identidad de la sesión", run: pageWhoami}
	r.routes["dashboard"] = route{protected: true, help: "resumen de la tienda (finanzas solo SuperAdmin)", run: pageDashboard}
	r.routes["products"] = route{protected: true, help: "products list|create|update|delete", run: pageProducts}
	r.routes["transactions"] = route{protected: true, help: "transactions list|create", run: pageTransactions}
	r.routes["whatsapp"] = route{protected: true, help: "actualiza el número WhatsApp de la tienda (SuperAdmin)", run: pageWhatsApp}

	return r
}

// Run despacha una navegación. Un ErrUnauthorized devuelto por la página se delega
// al controller de sesión, único autorizado a limpiar la sesión.
func (r *Router) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		r.usage()
		return nil
	}
	rt, ok := r.routes[args[0]]
	if !ok {
		r.usage()
		return fmt.Errorf("comando desconocido %q", args[0])
	}

	decision, err := r.deps.Guard.Resolve(ctx, rt.protected)
	if err != nil {
		return err
	}
	if decision == guard.Redirect {
		fmt.Fprintln(r.deps.Out, "Necesitas iniciar sesión: tienda login --email <e> --password <p>")
		return errLoginRequired
	}

	err = rt.run(ctx, r.deps, args[1:])
	if err != nil && r.deps.Session.HandleUnauthorized(err) {
		fmt.Fprintln(r.deps.Out, "Tu sesión expiró; inicia sesión de nuevo.")
	}
	return err
}

func (r *Router) usage() {
	fmt.Fprintln(r.deps.Out, "Uso: tienda <comando> [flags]")
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(r.deps.Out, "  %-14s %s\n", name, r.routes[name].help)
	}
}
