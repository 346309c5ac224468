package session

import (
	"context"
	"errors"

	"github.com/jhoicas/tienda-client/internal/application/dto"
	"github.com/jhoicas/tienda-client/internal/domain"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
	"github.com/jhoicas/tienda-client/internal/infrastructure/credstore"
	"github.com/jhoicas/tienda-client/internal/infrastructure/httpapi"
	"github.com/jhoicas/tienda-client/pkg/logger"
)

// AuthAPI operaciones de autenticación que consume el controller.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*entity.Identity, error)
}

// Result desenlace de una operación de autenticación. Las operaciones del controller
// nunca propagan panics ni errores crudos: todo fallo se convierte a este tipo.
type Result struct {
	Success bool
	Error   string // mensaje presentable; vacío si Success
}

// Mensajes genéricos cuando el servidor no entrega uno presentable.
const (
	loginFailedMessage    = "no se pudo iniciar sesión"
	registerFailedMessage = "no se pudo completar el registro"
)

// Controller orquesta login/registro/logout y es el único dueño de la Session.
// Ningún otro componente muta la sesión: las páginas solo leen predicados.
//
// No está pensado para logins concurrentes: si se emiten dos antes de que
// resuelva el primero, gana la última resolución (last-write-wins documentado).
type Controller struct {
	auth  AuthAPI
	store credstore.Store
	sess  *Session
	log   *logger.Logger
}

// NewController construye el controller sobre una sesión recién creada.
func NewController(auth AuthAPI, store credstore.Store, sess *Session, log *logger.Logger) *Controller {
	return &Controller{auth: auth, store: store, sess: sess, log: log}
}

// Session vista de solo lectura de la sesión (para guard, cliente HTTP y páginas).
func (c *Controller) Session() *Session {
	return c.sess
}

// Bootstrap hidrata la sesión desde el store: con par completo queda Authenticated,
// si no Anonymous. Cierra la ventana de loading exactamente una vez, pase lo que pase.
// Una sola llamada por proceso; el host no debe re-invocarlo.
func (c *Controller) Bootstrap() {
	defer c.sess.finishBootstrap()

	identity, token, err := c.store.Read()
	if err != nil {
		c.log.Warn().Err(err).Msg("leer sesión persistida")
		return
	}
	if identity == nil || token == "" {
		c.log.Debug().Msg("sin sesión persistida")
		return
	}
	c.sess.set(*identity, token)
	c.log.Info().Str("email", identity.Email).Str("role", string(identity.Role)).Msg("sesión restaurada")
}

// Login autentica contra el API. En éxito escribe el par en el store y en memoria;
// en fallo devuelve el mensaje del payload remoto (o uno genérico) y no toca la
// sesión existente.
func (c *Controller) Login(ctx context.Context, email, password string) Result {
	resp, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return failure(err, loginFailedMessage)
	}

	// Persistir primero: si el medio falla, la sesión en memoria sigue siendo válida
	// para este proceso y solo se pierde la restauración tras reinicio.
	if err := c.store.Write(resp.User, resp.Token); err != nil {
		c.log.Warn().Err(err).Msg("persistir sesión")
	}
	c.sess.set(resp.User, resp.Token)
	c.log.Info().Str("email", resp.User.Email).Str("role", string(resp.User.Role)).Msg("login correcto")
	return Result{Success: true}
}

// Register da de alta una cuenta sin establecer sesión: la cuenta nueva debe hacer login.
func (c *Controller) Register(ctx context.Context, req dto.RegisterRequest) Result {
	if _, err := c.auth.Register(ctx, req); err != nil {
		return failure(err, registerFailedMessage)
	}
	return Result{Success: true}
}

// Logout limpia store y memoria incondicionalmente; nunca falla y es idempotente.
func (c *Controller) Logout() {
	if err := c.store.Clear(); err != nil {
		c.log.Warn().Err(err).Msg("limpiar sesión persistida")
	}
	c.sess.clear()
	c.log.Info().Msg("sesión cerrada")
}

// HandleUnauthorized política para fallos de sesión inválida: si el error de una
// llamada autenticada indica que el servidor ya no acepta la credencial, se cierra
// la sesión (seguir adjuntando una credencial muerta nunca es correcto).
// Devuelve true si la sesión fue cerrada.
func (c *Controller) HandleUnauthorized(err error) bool {
	if !errors.Is(err, domain.ErrUnauthorized) {
		return false
	}
	if c.sess.State() != Authenticated {
		return false
	}
	c.log.Warn().Msg("credencial rechazada por el servidor; cerrando sesión")
	c.Logout()
	return true
}

// IsAuthenticated hay credencial vigente.
func (c *Controller) IsAuthenticated() bool {
	return c.sess.Token() != ""
}

// IsAdmin true para Admin y SuperAdmin (SuperAdmin implica Admin). Falso sin sesión.
func (c *Controller) IsAdmin() bool {
	id := c.sess.Identity()
	return id != nil && (id.Role == entity.RoleAdmin || id.Role == entity.RoleSuperAdmin)
}

// IsSuperAdmin true solo para SuperAdmin. Falso sin sesión.
func (c *Controller) IsSuperAdmin() bool {
	id := c.sess.Identity()
	return id != nil && id.Role == entity.RoleSuperAdmin
}

// CanSeeFinancials capacidad única para el renderizado por rol: precio de compra,
// beneficio y reportes del dashboard solo para SuperAdmin.
func (c *Controller) CanSeeFinancials() bool {
	return c.IsSuperAdmin()
}

// failure convierte un error de la capa HTTP en Result, extrayendo el mensaje
// del payload remoto cuando existe.
func failure(err error, fallback string) Result {
	if errors.Is(err, domain.ErrTransport) {
		return Result{Error: "no se pudo contactar el servidor"}
	}
	var apiErr *httpapi.APIError
	if errors.As(err, &apiErr) {
		return Result{Error: apiErr.Message}
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return Result{Error: err.Error()}
	}
	return Result{Error: fallback}
}
