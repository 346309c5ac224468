package stubapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-client/internal/domain/entity"
	pkgjwt "github.com/jhoicas/tienda-client/pkg/jwt"
	"github.com/jhoicas/tienda-client/pkg/logger"
)

// Config parámetros del stub: emisión de tokens.
type Config struct {
	JWTSecret     string
	JWTExpiration int // minutos
	JWTIssuer     string
}

// Claves de Locals que deja el middleware de auth.
const (
	localUserID = "user_id"
	localShopID = "shop_id"
	localRole   = "role"
)

type server struct {
	data *Store
	cfg  Config
	log  *logger.Logger
}

// New arma la aplicación fiber que suplanta al API remoto de la plataforma:
// mismo contrato de rutas, cuerpos y errores {"error": ...}, estado en memoria.
func New(cfg Config, log *logger.Logger) *fiber.App {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash del seed")
	}
	s := &server{data: NewStore(string(hash)), cfg: cfg, log: log}

	app := fiber.New(fiber.Config{
		AppName:               "tienda-stub",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	// Público
	app.Post("/login", s.login)
	app.Post("/register", s.register)
	app.Get("/shops", s.listShops)
	app.Get("/public/:shopId/products", s.publicProducts)

	// Staff autenticado
	app.Get("/products", s.authRequired, s.listProducts)
	app.Post("/products", s.authRequired, s.createProduct)
	app.Put("/products/:id", s.authRequired, s.updateProduct)
	app.Delete("/products/:id", s.authRequired, s.deleteProduct)
	app.Get("/transactions", s.authRequired, s.listTransactions)
	app.Post("/transactions", s.authRequired, s.createTransaction)

	// SuperAdmin
	app.Get("/reports/dashboard", s.authRequired, s.requireSuperAdmin, s.dashboard)
	app.Put("/shops/whatsapp", s.authRequired, s.requireSuperAdmin, s.updateWhatsApp)

	return app
}

// authRequired valida el Bearer token y deja user_id, shop_id y role en Locals.
func (s *server) authRequired(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" {
		return fail(c, fiber.StatusUnauthorized, "authorization header required")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return fail(c, fiber.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := pkgjwt.Parse(s.cfg.JWTSecret, strings.TrimSpace(parts[1]))
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "invalid or expired token")
	}
	c.Locals(localUserID, claims.UserID)
	c.Locals(localShopID, claims.ShopID)
	c.Locals(localRole, entity.Role(claims.Role))
	return c.Next()
}

// requireSuperAdmin corta con 403 si el rol del token no es SuperAdmin.
func (s *server) requireSuperAdmin(c *fiber.Ctx) error {
	if role(c) != entity.RoleSuperAdmin {
		return fail(c, fiber.StatusForbidden, "super admin access required")
	}
	return c.Next()
}

func role(c *fiber.Ctx) entity.Role {
	r, _ := c.Locals(localRole).(entity.Role)
	return r
}

func shopID(c *fiber.Ctx) int {
	id, _ := c.Locals(localShopID).(int)
	return id
}

// fail responde con el formato de error del contrato remoto.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
