package stubapi

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-client/internal/application/dto"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
	pkgjwt "github.com/jhoicas/tienda-client/pkg/jwt"
)

// login intercambia email+password por {user, token}. Cualquier fallo de
// credenciales responde 401 con el mismo mensaje, sin filtrar si la cuenta existe.
func (s *server) login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}
	if in.Email == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Email and password are required")
	}
	u, err := s.data.UserByEmail(in.Email)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	token, err := pkgjwt.Generate(s.cfg.JWTSecret, u.ID, u.ShopID, string(u.Role), s.cfg.JWTIssuer, s.cfg.JWTExpiration)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "could not issue token")
	}
	s.log.Info().Str("email", u.Email).Str("role", string(u.Role)).Msg("login en stub")
	return c.JSON(dto.AuthResponse{User: u.Identity, Token: token})
}

// register da de alta una cuenta; no emite token (el login es un paso aparte).
func (s *server) register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Name, email, and password are required")
	}
	if !in.Role.Valid() {
		return fail(c, fiber.StatusBadRequest, "Invalid role. Must be SuperAdmin or Admin")
	}
	if _, err := s.data.ShopByID(in.ShopID); err != nil {
		return fail(c, fiber.StatusBadRequest, "Shop not found")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "could not hash password")
	}
	id, err := s.data.AddUser(in.Name, in.Email, string(hash), in.Role, in.ShopID)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "email already exists")
	}
	return c.Status(fiber.StatusCreated).JSON(id)
}

func (s *server) listShops(c *fiber.Ctx) error {
	return c.JSON(s.data.Shops())
}

// publicProducts catálogo anónimo: sin purchase_price, con enlace WhatsApp de la tienda.
func (s *server) publicProducts(c *fiber.Ctx) error {
	id, err := c.ParamsInt("shopId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid shop id")
	}
	shop, err := s.data.ShopByID(id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "Shop not found")
	}
	products := s.data.ProductsByShop(shop.ID)
	out := make([]entity.PublicProduct, 0, len(products))
	for i := range products {
		out = append(out, products[i].ToPublic(shop.WhatsAppNumber))
	}
	return c.JSON(out)
}

// listProducts catálogo de la tienda del token. SuperAdmin ve todo;
// Admin recibe la proyección sin precio de compra.
func (s *server) listProducts(c *fiber.Ctx) error {
	products := s.data.ProductsByShop(shopID(c))
	if role(c) == entity.RoleSuperAdmin {
		return c.JSON(products)
	}
	out := make([]entity.AdminProduct, 0, len(products))
	for i := range products {
		out = append(out, products[i].ToAdmin())
	}
	return c.JSON(out)
}

func (s *server) createProduct(c *fiber.Ctx) error {
	var in dto.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}
	if err := in.Validate(); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	p := s.data.AddProduct(in, shopID(c))
	if role(c) == entity.RoleSuperAdmin {
		return c.Status(fiber.StatusCreated).JSON(p)
	}
	return c.Status(fiber.StatusCreated).JSON(p.ToAdmin())
}

func (s *server) updateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	var in dto.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}
	if err := in.Validate(); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	p, err := s.data.UpdateProduct(id, in, shopID(c))
	if err != nil {
		return fail(c, fiber.StatusNotFound, "Product not found")
	}
	if role(c) == entity.RoleSuperAdmin {
		return c.JSON(p)
	}
	return c.JSON(p.ToAdmin())
}

func (s *server) deleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	if err := s.data.DeleteProduct(id, shopID(c)); err != nil {
		return fail(c, fiber.StatusNotFound, "Product not found")
	}
	return c.JSON(dto.MessageResponse{Message: "Product deleted successfully"})
}

func (s *server) listTransactions(c *fiber.Ctx) error {
	out := s.data.TransactionsByShop(shopID(c))
	if out == nil {
		out = []entity.Transaction{}
	}
	return c.JSON(out)
}

func (s *server) createTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}
	if err := in.Validate(); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	t, err := s.data.AddTransaction(in, shopID(c))
	switch err {
	case nil:
	case errNotFound:
		return fail(c, fiber.StatusBadRequest, "product not found")
	case errWrongShop:
		return fail(c, fiber.StatusBadRequest, "product does not belong to this shop")
	case errInsufficientStock:
		return fail(c, fiber.StatusBadRequest, "insufficient stock")
	default:
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

func (s *server) dashboard(c *fiber.Ctx) error {
	return c.JSON(s.data.Dashboard(shopID(c)))
}

func (s *server) updateWhatsApp(c *fiber.Ctx) error {
	var in dto.UpdateWhatsAppRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}
	if in.WhatsAppNumber == "" {
		return fail(c, fiber.StatusBadRequest, "WhatsApp number is required")
	}
	if err := s.data.UpdateWhatsApp(shopID(c), in.WhatsAppNumber); err != nil {
		return fail(c, fiber.StatusNotFound, "Shop not found")
	}
	return c.JSON(dto.MessageResponse{Message: "WhatsApp number updated successfully"})
}
