package guard

import (
	"context"

	"github.com/jhoicas/tienda-client/internal/application/session"
)

// Decision veredicto del guard sobre una navegación.
type Decision int

const (
	// Admit la navegación procede.
	Admit Decision = iota
	// Redirect la ruta es protegida y no hay sesión: enviar al login antes de ejecutar nada.
	Redirect
	// Wait el bootstrap no terminó; un chequeo ahora sería inválido y debe esperar.
	Wait
)

func (d Decision) String() string {
	switch d {
	case Admit:
		return "admit"
	case Redirect:
		return "redirect"
	default:
		return "wait"
	}
}

// Guard frontera de navegación: consulta la sesión y decide si una ruta protegida
// se ejecuta, se redirige al login, o debe esperar al fin del bootstrap.
type Guard struct {
	sess *session.Session
}

// New construye el guard sobre la vista de solo lectura de la sesión.
func New(sess *session.Session) *Guard {
	return &Guard{sess: sess}
}

// Check decisión síncrona para el estado actual. Durante Bootstrapping una ruta
// protegida no se admite ni se redirige: devuelve Wait.
func (g *Guard) Check(protected bool) Decision {
	if !protected {
		return Admit
	}
	switch g.sess.State() {
	case session.Bootstrapping:
		return Wait
	case session.Authenticated:
		return Admit
	default:
		return Redirect
	}
}

// Resolve como Check, pero bloquea mientras la sesión siga en Bootstrapping.
// Solo retorna Admit o Redirect, o el error del contexto si se cancela antes.
func (g *Guard) Resolve(ctx context.Context, protected bool) (Decision, error) {
	if !protected {
		return Admit, nil
	}
	select {
	case <-g.sess.Ready():
	case <-ctx.Done():
		return Wait, ctx.Err()
	}
	return g.Check(protected), nil
}
