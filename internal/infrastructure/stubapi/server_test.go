package stubapi_test

import (
	"context"
	"net"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-client/internal/application/dto"
	"github.com/jhoicas/tienda-client/internal/domain"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
	"github.com/jhoicas/tienda-client/internal/infrastructure/httpapi"
	"github.com/jhoicas/tienda-client/internal/infrastructure/stubapi"
	"github.com/jhoicas/tienda-client/pkg/logger"
)

// tokenHolder TokenSource mutable para simular login/logout en los tests.
type tokenHolder struct {
	mu    sync.Mutex
	token string
}

func (h *tokenHolder) Token() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.token
}

func (h *tokenHolder) set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// startStub levanta el stub en un puerto efímero y devuelve un cliente apuntándole.
func startStub(t *testing.T) (*httpapi.Client, *tokenHolder) {
	t.Helper()

	app := stubapi.New(stubapi.Config{
		JWTSecret:     "secreto-de-test",
		JWTExpiration: 60,
		JWTIssuer:     "tienda-stub",
	}, logger.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	holder := &tokenHolder{}
	client := httpapi.New("http://"+ln.Addr().String(), holder, 5*time.Second, logger.Nop())
	return client, holder
}

func loginAs(t *testing.T, client *httpapi.Client, holder *tokenHolder, email string) *dto.AuthResponse {
	t.Helper()
	res, err := client.Auth.Login(context.Background(), email, "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	holder.set(res.Token)
	return res
}

// Login con las cuentas seed devuelve identidad + token; credencial mala ⇒ 401.
func TestStub_Login(t *testing.T) {
	client, _ := startStub(t)
	ctx := context.Background()

	res, err := client.Auth.Login(ctx, "super@shop1.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSuperAdmin, res.User.Role)
	assert.Equal(t, 1, res.User.ShopID)

	_, err = client.Auth.Login(ctx, "super@shop1.com", "incorrecta")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	var apiErr *httpapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

// El catálogo público no requiere sesión, omite el precio de compra y trae el
// enlace WhatsApp armado con el número de la tienda.
func TestStub_CatalogoPublico(t *testing.T) {
	client, _ := startStub(t)
	ctx := context.Background()

	shops, err := client.Public.GetShops(ctx)
	require.NoError(t, err)
	require.Len(t, shops, 2)

	products, err := client.Public.GetProducts(ctx, 1)
	require.NoError(t, err)
	require.NotEmpty(t, products)

	for _, p := range products {
		assert.Contains(t, p.WhatsAppLink, "https://wa.me/212600000001?text=")
		assert.Contains(t, p.WhatsAppLink, url.QueryEscape(p.Name))
		assert.True(t, p.SellingPrice.IsPositive())
	}

	// Tienda inexistente ⇒ 404.
	_, err = client.Public.GetProducts(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Sin token los recursos de staff responden 401.
func TestStub_StaffSinSesion(t *testing.T) {
	client, _ := startStub(t)

	_, err := client.Products.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Un Admin ve su inventario sin precio de compra; un SuperAdmin lo ve completo.
func TestStub_ProyeccionPorRol(t *testing.T) {
	client, holder := startStub(t)
	ctx := context.Background()

	loginAs(t, client, holder, "admin@shop1.com")
	adminView, err := client.Products.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, adminView)
	for _, p := range adminView {
		assert.True(t, p.PurchasePrice.IsZero(), "el Admin no debe recibir precio de compra")
	}

	loginAs(t, client, holder, "super@shop1.com")
	superView, err := client.Products.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, superView)
	assert.True(t, superView[0].PurchasePrice.IsPositive())
}

// El dashboard es exclusivo del SuperAdmin: el Admin recibe 403 y conserva su sesión.
func TestStub_DashboardSoloSuperAdmin(t *testing.T) {
	client, holder := startStub(t)
	ctx := context.Background()

	loginAs(t, client, holder, "admin@shop1.com")
	_, err := client.Dashboard.GetStats(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	loginAs(t, client, holder, "super@shop1.com")
	stats, err := client.Dashboard.GetStats(ctx)
	require.NoError(t, err)
	// Seed: AirPods Pro con stock 3 es el único bajo el umbral.
	assert.Equal(t, 1, stats.LowStockCount)
}

// Una venta decrementa el stock y alimenta los agregados del dashboard.
func TestStub_VentaDecrementaStock(t *testing.T) {
	client, holder := startStub(t)
	ctx := context.Background()
	loginAs(t, client, holder, "super@shop1.com")

	productID := 1 // iPhone 14 Pro, stock 15, compra 8000, venta 10000
	tx, err := client.Transactions.Create(ctx, dto.CreateTransactionRequest{
		Type: entity.TransactionSale, ProductID: &productID,
		Quantity: 2, Amount: decimal.NewFromInt(20000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionSale, tx.Type)

	products, err := client.Products.List(ctx)
	require.NoError(t, err)
	for _, p := range products {
		if p.ID == productID {
			assert.Equal(t, 13, p.Stock)
		}
	}

	stats, err := client.Dashboard.GetStats(ctx)
	require.NoError(t, err)
	assert.True(t, stats.TotalSales.Equal(decimal.NewFromInt(20000)))
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(20000)))
	assert.True(t, stats.TotalCost.Equal(decimal.NewFromInt(16000)))
	assert.True(t, stats.NetProfit.Equal(decimal.NewFromInt(4000)))
	assert.Equal(t, 2, stats.ProductsSold)

	// Vender más que el stock restante se rechaza con 400.
	_, err = client.Transactions.Create(ctx, dto.CreateTransactionRequest{
		Type: entity.TransactionSale, ProductID: &productID,
		Quantity: 99, Amount: decimal.NewFromInt(990000),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Alta, edición y baja de un producto sobre la tienda propia.
func TestStub_CicloDeProducto(t *testing.T) {
	client, holder := startStub(t)
	ctx := context.Background()
	loginAs(t, client, holder, "super@shop1.com")

	created, err := client.Products.Create(ctx, dto.ProductInput{
		Name: "Teclado mecánico", Category: "Accessories",
		PurchasePrice: decimal.NewFromInt(300), SellingPrice: decimal.NewFromInt(500), Stock: 10,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	updated, err := client.Products.Update(ctx, created.ID, dto.ProductInput{
		Name: "Teclado mecánico RGB", Category: "Accessories",
		PurchasePrice: decimal.NewFromInt(300), SellingPrice: decimal.NewFromInt(550), Stock: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "Teclado mecánico RGB", updated.Name)

	require.NoError(t, client.Products.Delete(ctx, created.ID))

	// Un producto de otra tienda es invisible: editarlo responde 404.
	_, err = client.Products.Update(ctx, 3, dto.ProductInput{
		Name: "Ajeno", Category: "Smartphones",
		PurchasePrice: decimal.NewFromInt(1), SellingPrice: decimal.NewFromInt(2), Stock: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El SuperAdmin actualiza el número WhatsApp de su tienda y el catálogo público lo refleja.
func TestStub_ActualizarWhatsApp(t *testing.T) {
	client, holder := startStub(t)
	ctx := context.Background()
	loginAs(t, client, holder, "super@shop1.com")

	require.NoError(t, client.Shops.UpdateWhatsApp(ctx, "212611111111"))

	products, err := client.Public.GetProducts(ctx, 1)
	require.NoError(t, err)
	require.NotEmpty(t, products)
	assert.Contains(t, products[0].WhatsAppLink, "https://wa.me/212611111111?text=")
}

// Registrar crea la cuenta sin sesión; el email duplicado se rechaza con 400.
func TestStub_Registro(t *testing.T) {
	client, _ := startStub(t)
	ctx := context.Background()

	id, err := client.Auth.Register(ctx, dto.RegisterRequest{
		Name: "Nueva Cuenta", Email: "nueva@shop2.com", Password: "secreta1",
		Role: entity.RoleAdmin, ShopID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, id.Role)

	_, err = client.Auth.Register(ctx, dto.RegisterRequest{
		Name: "Duplicada", Email: "nueva@shop2.com", Password: "secreta1",
		Role: entity.RoleAdmin, ShopID: 2,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
