package guard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-client/internal/application/guard"
	"github.com/jhoicas/tienda-client/internal/application/session"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
	"github.com/jhoicas/tienda-client/internal/infrastructure/credstore"
	"github.com/jhoicas/tienda-client/pkg/logger"
)

// Durante el bootstrap una ruta protegida no se admite ni se redirige: espera.
func TestGuard_BootstrappingEspera(t *testing.T) {
	sess := session.NewSession()
	g := guard.New(sess)

	assert.Equal(t, guard.Wait, g.Check(true))
	// Las rutas públicas no dependen del bootstrap.
	assert.Equal(t, guard.Admit, g.Check(false))
}

// Resuelto a Anonymous, una ruta protegida redirige al login.
func TestGuard_AnonimoRedirige(t *testing.T) {
	sess := session.NewSession()
	ctrl := session.NewController(nil, credstore.NewMemoryStore(), sess, logger.Nop())
	ctrl.Bootstrap()

	g := guard.New(sess)
	assert.Equal(t, guard.Redirect, g.Check(true))
	assert.Equal(t, guard.Admit, g.Check(false))
}

// Con sesión restaurada, la ruta protegida se admite.
func TestGuard_AutenticadoAdmite(t *testing.T) {
	store := credstore.NewMemoryStore()
	require.NoError(t, store.Write(entity.Identity{ID: 1, Email: "super@shop1.com", Role: entity.RoleSuperAdmin, ShopID: 1}, "tok-abc"))
	sess := session.NewSession()
	ctrl := session.NewController(nil, store, sess, logger.Nop())
	ctrl.Bootstrap()

	g := guard.New(sess)
	assert.Equal(t, guard.Admit, g.Check(true))
}

// Resolve bloquea hasta el fin del bootstrap y entonces emite el veredicto real.
func TestGuard_ResolveEsperaBootstrap(t *testing.T) {
	sess := session.NewSession()
	ctrl := session.NewController(nil, credstore.NewMemoryStore(), sess, logger.Nop())
	g := guard.New(sess)

	done := make(chan guard.Decision, 1)
	go func() {
		d, err := g.Resolve(context.Background(), true)
		if err == nil {
			done <- d
		}
	}()

	// El veredicto no puede llegar antes de que el bootstrap termine.
	select {
	case <-done:
		t.Fatal("el guard decidió durante el bootstrap")
	case <-time.After(50 * time.Millisecond):
	}

	ctrl.Bootstrap()

	select {
	case d := <-done:
		assert.Equal(t, guard.Redirect, d)
	case <-time.After(time.Second):
		t.Fatal("Resolve no resolvió tras el bootstrap")
	}
}

// Un contexto cancelado libera al guard aunque el bootstrap nunca termine.
func TestGuard_ResolveContextoCancelado(t *testing.T) {
	sess := session.NewSession()
	g := guard.New(sess)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Resolve(ctx, true)
	assert.ErrorIs(t, err, context.Canceled)
}
