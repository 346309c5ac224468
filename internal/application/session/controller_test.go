package session_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-client/internal/application/dto"
	"github.com/jhoicas/tienda-client/internal/application/session"
	"github.com/jhoicas/tienda-client/internal/domain"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
	"github.com/jhoicas/tienda-client/internal/infrastructure/credstore"
	"github.com/jhoicas/tienda-client/internal/infrastructure/httpapi"
	"github.com/jhoicas/tienda-client/pkg/logger"
)

// fakeAuth implementación de AuthAPI con respuestas programables.
type fakeAuth struct {
	loginFn    func(email, password string) (*dto.AuthResponse, error)
	registerFn func(req dto.RegisterRequest) (*entity.Identity, error)
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*dto.AuthResponse, error) {
	return f.loginFn(email, password)
}

func (f *fakeAuth) Register(_ context.Context, req dto.RegisterRequest) (*entity.Identity, error) {
	return f.registerFn(req)
}

func adminIdentity() entity.Identity {
	return entity.Identity{ID: 2, Name: "Admin 1", Email: "admin@shop1.com", Role: entity.RoleAdmin, ShopID: 1}
}

func superIdentity() entity.Identity {
	return entity.Identity{ID: 1, Name: "Super Admin 1", Email: "super@shop1.com", Role: entity.RoleSuperAdmin, ShopID: 1}
}

func newController(auth session.AuthAPI, store credstore.Store) *session.Controller {
	return session.NewController(auth, store, session.NewSession(), logger.Nop())
}

// Login correcto: la sesión pasa a Authenticated, los predicados reflejan el rol
// Admin y el par queda persistido.
func TestLogin_AdminCorrecto(t *testing.T) {
	auth := &fakeAuth{loginFn: func(email, password string) (*dto.AuthResponse, error) {
		assert.Equal(t, "admin@shop1.com", email)
		assert.Equal(t, "admin123", password)
		return &dto.AuthResponse{User: adminIdentity(), Token: "tok-abc"}, nil
	}}
	store := credstore.NewMemoryStore()
	ctrl := newController(auth, store)
	ctrl.Bootstrap()

	res := ctrl.Login(context.Background(), "admin@shop1.com", "admin123")

	require.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Equal(t, session.Authenticated, ctrl.Session().State())
	assert.True(t, ctrl.IsAuthenticated())
	assert.True(t, ctrl.IsAdmin())
	assert.False(t, ctrl.IsSuperAdmin())
	assert.False(t, ctrl.CanSeeFinancials())

	// El par se persistió completo.
	id, token, err := store.Read()
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "tok-abc", token)
	assert.Equal(t, 2, id.ID)
}

// Login rechazado: el resultado trae el mensaje del payload remoto y la sesión
// previa queda intacta.
func TestLogin_RechazadoNoMutaSesion(t *testing.T) {
	calls := 0
	auth := &fakeAuth{loginFn: func(_, _ string) (*dto.AuthResponse, error) {
		calls++
		if calls == 1 {
			return &dto.AuthResponse{User: superIdentity(), Token: "tok-super"}, nil
		}
		return nil, &httpapi.APIError{Status: 401, Message: "invalid credentials"}
	}}
	store := credstore.NewMemoryStore()
	ctrl := newController(auth, store)
	ctrl.Bootstrap()

	require.True(t, ctrl.Login(context.Background(), "super@shop1.com", "admin123").Success)

	res := ctrl.Login(context.Background(), "super@shop1.com", "incorrecta")
	require.False(t, res.Success)
	assert.Equal(t, "invalid credentials", res.Error)

	// La sesión anterior sobrevive al fallo.
	assert.Equal(t, session.Authenticated, ctrl.Session().State())
	assert.Equal(t, "tok-super", ctrl.Session().Token())
	_, token, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "tok-super", token)
}

// Fallo de transporte: mensaje genérico, nunca el error crudo de red.
func TestLogin_TransporteCaido(t *testing.T) {
	auth := &fakeAuth{loginFn: func(_, _ string) (*dto.AuthResponse, error) {
		return nil, fmt.Errorf("%w: dial tcp: connection refused", domain.ErrTransport)
	}}
	ctrl := newController(auth, credstore.NewMemoryStore())
	ctrl.Bootstrap()

	res := ctrl.Login(context.Background(), "admin@shop1.com", "admin123")
	require.False(t, res.Success)
	assert.Equal(t, "no se pudo contactar el servidor", res.Error)
	assert.Equal(t, session.Anonymous, ctrl.Session().State())
}

// Registrar no establece sesión: la cuenta nueva debe hacer login aparte.
func TestRegister_NoEstableceSesion(t *testing.T) {
	auth := &fakeAuth{registerFn: func(req dto.RegisterRequest) (*entity.Identity, error) {
		id := adminIdentity()
		id.Email = req.Email
		return &id, nil
	}}
	ctrl := newController(auth, credstore.NewMemoryStore())
	ctrl.Bootstrap()

	res := ctrl.Register(context.Background(), dto.RegisterRequest{
		Name: "Nueva", Email: "nueva@shop1.com", Password: "secreta1", Role: entity.RoleAdmin, ShopID: 1,
	})
	require.True(t, res.Success)
	assert.Equal(t, session.Anonymous, ctrl.Session().State())
	assert.False(t, ctrl.IsAuthenticated())
}

// Bootstrap con par completo hidrata exactamente esa identidad.
func TestBootstrap_RestauraSesion(t *testing.T) {
	store := credstore.NewMemoryStore()
	require.NoError(t, store.Write(superIdentity(), "tok-guardado"))
	ctrl := newController(nil, store)

	assert.Equal(t, session.Bootstrapping, ctrl.Session().State())
	ctrl.Bootstrap()

	assert.Equal(t, session.Authenticated, ctrl.Session().State())
	assert.Equal(t, "tok-guardado", ctrl.Session().Token())
	id := ctrl.Session().Identity()
	require.NotNil(t, id)
	assert.Equal(t, "super@shop1.com", id.Email)
	assert.True(t, ctrl.IsSuperAdmin())
}

// Bootstrap con store vacío resuelve a Anonymous y cierra la ventana de loading.
func TestBootstrap_StoreVacio(t *testing.T) {
	ctrl := newController(nil, credstore.NewMemoryStore())
	ctrl.Bootstrap()

	assert.Equal(t, session.Anonymous, ctrl.Session().State())
	select {
	case <-ctrl.Session().Ready():
	default:
		t.Fatal("la ventana de loading no se cerró")
	}
}

// SuperAdmin implica Admin en todo estado alcanzable.
func TestRoles_SuperAdminImplicaAdmin(t *testing.T) {
	auth := &fakeAuth{loginFn: func(_, _ string) (*dto.AuthResponse, error) {
		return &dto.AuthResponse{User: superIdentity(), Token: "tok-super"}, nil
	}}
	ctrl := newController(auth, credstore.NewMemoryStore())
	ctrl.Bootstrap()

	// Sin sesión ambos predicados son falsos.
	assert.False(t, ctrl.IsAdmin())
	assert.False(t, ctrl.IsSuperAdmin())

	require.True(t, ctrl.Login(context.Background(), "super@shop1.com", "admin123").Success)
	assert.True(t, ctrl.IsSuperAdmin())
	assert.True(t, ctrl.IsAdmin(), "IsSuperAdmin implica IsAdmin")
	assert.True(t, ctrl.CanSeeFinancials())
}

// Logout es incondicional e idempotente: repetirlo en Anonymous no cambia nada.
func TestLogout_Idempotente(t *testing.T) {
	auth := &fakeAuth{loginFn: func(_, _ string) (*dto.AuthResponse, error) {
		return &dto.AuthResponse{User: adminIdentity(), Token: "tok-abc"}, nil
	}}
	store := credstore.NewMemoryStore()
	ctrl := newController(auth, store)
	ctrl.Bootstrap()
	require.True(t, ctrl.Login(context.Background(), "admin@shop1.com", "admin123").Success)

	ctrl.Logout()
	assert.Equal(t, session.Anonymous, ctrl.Session().State())
	id, token, err := store.Read()
	require.NoError(t, err)
	assert.Nil(t, id)
	assert.Empty(t, token)

	ctrl.Logout()
	assert.Equal(t, session.Anonymous, ctrl.Session().State())
}

// Una credencial rechazada por el servidor cierra la sesión; otros errores no.
func TestHandleUnauthorized(t *testing.T) {
	auth := &fakeAuth{loginFn: func(_, _ string) (*dto.AuthResponse, error) {
		return &dto.AuthResponse{User: adminIdentity(), Token: "tok-abc"}, nil
	}}
	ctrl := newController(auth, credstore.NewMemoryStore())
	ctrl.Bootstrap()
	require.True(t, ctrl.Login(context.Background(), "admin@shop1.com", "admin123").Success)

	// Un 403 (privilegio insuficiente) no toca la sesión.
	forbidden := fmt.Errorf("%w: super admin access required", domain.ErrForbidden)
	assert.False(t, ctrl.HandleUnauthorized(forbidden))
	assert.Equal(t, session.Authenticated, ctrl.Session().State())

	// Un 401 (credencial muerta) sí la cierra.
	unauthorized := fmt.Errorf("%w: invalid or expired token", domain.ErrUnauthorized)
	assert.True(t, ctrl.HandleUnauthorized(unauthorized))
	assert.Equal(t, session.Anonymous, ctrl.Session().State())

	// Ya en Anonymous es un no-op.
	assert.False(t, ctrl.HandleUnauthorized(unauthorized))
}
