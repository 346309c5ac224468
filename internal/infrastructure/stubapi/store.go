package stubapi

import (
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-client/internal/application/dto"
	"github.com/jhoicas/tienda-client/internal/domain/entity"
)

// Errores internos del stub; los handlers los traducen al formato {"error": ...} del contrato.
var (
	errNotFound          = errors.New("not found")
	errEmailExists       = errors.New("email already exists")
	errWrongShop         = errors.New("product does not belong to this shop")
	errInsufficientStock = errors.New("insufficient stock")
)

// user cuenta del stub; el hash bcrypt nunca sale en respuestas.
type user struct {
	entity.Identity
	PasswordHash string
}

// Store estado en memoria del stub: usuarios, tiendas, productos y transacciones.
// Suplanta la persistencia del servicio real para desarrollo local y tests.
type Store struct {
	mu           sync.RWMutex
	users        []user
	shops        []entity.Shop
	products     []entity.Product
	transactions []entity.Transaction
	nextUserID   int
	nextProdID   int
	nextTxID     int
}

// NewStore crea el estado con el seed de desarrollo: dos tiendas, un SuperAdmin
// y un Admin (password admin123 vía el hash que pasa el caller) y catálogo de ejemplo.
func NewStore(seedPasswordHash string) *Store {
	now := time.Now()
	return &Store{
		users: []user{
			{
				Identity: entity.Identity{
					ID: 1, Name: "Super Admin 1", Email: "super@shop1.com",
					Role: entity.RoleSuperAdmin, ShopID: 1, CreatedAt: now,
				},
				PasswordHash: seedPasswordHash,
			},
			{
				Identity: entity.Identity{
					ID: 2, Name: "Admin 1", Email: "admin@shop1.com",
					Role: entity.RoleAdmin, ShopID: 1, CreatedAt: now,
				},
				PasswordHash: seedPasswordHash,
			},
		},
		shops: []entity.Shop{
			{ID: 1, Name: "TechStore Casablanca", Active: true, WhatsAppNumber: "212600000001", CreatedAt: now},
			{ID: 2, Name: "ElectroShop Rabat", Active: true, WhatsAppNumber: "212600000002", CreatedAt: now},
		},
		products: []entity.Product{
			{
				ID: 1, Name: "iPhone 14 Pro", Description: "Latest iPhone with advanced camera system",
				Category: "Smartphones", PurchasePrice: decimal.NewFromInt(8000),
				SellingPrice: decimal.NewFromInt(10000), Stock: 15,
				ImageURL: "https://example.com/iphone14.jpg", ShopID: 1, CreatedAt: now,
			},
			{
				ID: 2, Name: "MacBook Pro M2", Description: "Powerful laptop for professionals",
				Category: "Laptops", PurchasePrice: decimal.NewFromInt(15000),
				SellingPrice: decimal.NewFromInt(18000), Stock: 8,
				ImageURL: "https://example.com/macbook.jpg", ShopID: 1, CreatedAt: now,
			},
			{
				ID: 3, Name: "Samsung Galaxy S23", Description: "Premium Android smartphone",
				Category: "Smartphones", PurchasePrice: decimal.NewFromInt(6000),
				SellingPrice: decimal.NewFromInt(7500), Stock: 20,
				ImageURL: "https://example.com/samsung.jpg", ShopID: 2, CreatedAt: now,
			},
			{
				ID: 4, Name: "AirPods Pro", Description: "Wireless earbuds with noise cancellation",
				Category: "Accessories", PurchasePrice: decimal.NewFromInt(1500),
				SellingPrice: decimal.NewFromInt(2000), Stock: 3,
				ImageURL: "https://example.com/airpods.jpg", ShopID: 1, CreatedAt: now,
			},
		},
		nextUserID: 3,
		nextProdID: 5,
		nextTxID:   1,
	}
}

// UserByEmail devuelve la cuenta o errNotFound.
func (s *Store) UserByEmail(email string) (user, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user{}, errNotFound
}

// AddUser registra una cuenta nueva; email duplicado ⇒ errEmailExists.
func (s *Store) AddUser(name, email, passwordHash string, role entity.Role, shopID int) (entity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return entity.Identity{}, errEmailExists
		}
	}
	id := entity.Identity{
		ID: s.nextUserID, Name: name, Email: email,
		Role: role, ShopID: shopID, CreatedAt: time.Now(),
	}
	s.users = append(s.users, user{Identity: id, PasswordHash: passwordHash})
	s.nextUserID++
	return id, nil
}

// Shops listado completo de tiendas.
func (s *Store) Shops() []entity.Shop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Shop, len(s.shops))
	copy(out, s.shops)
	return out
}

// ShopByID devuelve la tienda o errNotFound.
func (s *Store) ShopByID(id int) (entity.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sh := range s.shops {
		if sh.ID == id {
			return sh, nil
		}
	}
	return entity.Shop{}, errNotFound
}

// UpdateWhatsApp cambia el número de contacto de una tienda.
func (s *Store) UpdateWhatsApp(shopID int, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shops {
		if s.shops[i].ID == shopID {
			s.shops[i].WhatsAppNumber = number
			return nil
		}
	}
	return errNotFound
}

// ProductsByShop productos de una tienda.
func (s *Store) ProductsByShop(shopID int) []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Product
	for _, p := range s.products {
		if p.ShopID == shopID {
			out = append(out, p)
		}
	}
	return out
}

// ProductByID devuelve el producto o errNotFound.
func (s *Store) ProductByID(id int) (entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Product{}, errNotFound
}

// AddProduct da de alta un producto en la tienda indicada.
func (s *Store) AddProduct(in dto.ProductInput, shopID int) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := entity.Product{
		ID: s.nextProdID, Name: in.Name, Description: in.Description, Category: in.Category,
		PurchasePrice: in.PurchasePrice, SellingPrice: in.SellingPrice, Stock: in.Stock,
		ImageURL: in.ImageURL, ShopID: shopID, CreatedAt: time.Now(),
	}
	s.products = append(s.products, p)
	s.nextProdID++
	return p
}

// UpdateProduct reemplaza los datos de un producto de la tienda; fuera de la tienda ⇒ errNotFound.
func (s *Store) UpdateProduct(id int, in dto.ProductInput, shopID int) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id && s.products[i].ShopID == shopID {
			p := &s.products[i]
			p.Name, p.Description, p.Category = in.Name, in.Description, in.Category
			p.PurchasePrice, p.SellingPrice = in.PurchasePrice, in.SellingPrice
			p.Stock, p.ImageURL = in.Stock, in.ImageURL
			return *p, nil
		}
	}
	return entity.Product{}, errNotFound
}

// DeleteProduct elimina un producto de la tienda.
func (s *Store) DeleteProduct(id, shopID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id && s.products[i].ShopID == shopID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

// TransactionsByShop movimientos de una tienda.
func (s *Store) TransactionsByShop(shopID int) []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Transaction
	for _, t := range s.transactions {
		if t.ShopID == shopID {
			out = append(out, t)
		}
	}
	return out
}

// AddTransaction registra un movimiento. Para ventas valida que el producto exista,
// pertenezca a la tienda y tenga stock suficiente, y decrementa el stock en el acto.
func (s *Store) AddTransaction(in dto.CreateTransactionRequest, shopID int) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.ProductID != nil {
		idx := -1
		for i := range s.products {
			if s.products[i].ID == *in.ProductID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return entity.Transaction{}, errNotFound
		}
		if s.products[idx].ShopID != shopID {
			return entity.Transaction{}, errWrongShop
		}
		if in.Type == entity.TransactionSale {
			if s.products[idx].Stock < in.Quantity {
				return entity.Transaction{}, errInsufficientStock
			}
			s.products[idx].Stock -= in.Quantity
		}
	}

	t := entity.Transaction{
		ID: s.nextTxID, Type: in.Type, ProductID: in.ProductID,
		Quantity: in.Quantity, Amount: in.Amount, ShopID: shopID, CreatedAt: time.Now(),
	}
	s.transactions = append(s.transactions, t)
	s.nextTxID++
	return t, nil
}

// Dashboard agrega los totales financieros de una tienda: ventas, gastos,
// revenue/costo por producto vendido, beneficio neto y conteo de stock bajo (< 5).
func (s *Store) Dashboard(shopID int) dto.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := dto.DashboardStats{}
	for _, p := range s.products {
		if p.ShopID == shopID && p.Stock < 5 {
			stats.LowStockCount++
		}
	}
	for _, t := range s.transactions {
		if t.ShopID != shopID {
			continue
		}
		switch t.Type {
		case entity.TransactionSale:
			stats.TotalSales = stats.TotalSales.Add(t.Amount)
			stats.ProductsSold += t.Quantity
			if t.ProductID != nil {
				for _, p := range s.products {
					if p.ID == *t.ProductID {
						qty := decimal.NewFromInt(int64(t.Quantity))
						stats.TotalRevenue = stats.TotalRevenue.Add(p.SellingPrice.Mul(qty))
						stats.TotalCost = stats.TotalCost.Add(p.PurchasePrice.Mul(qty))
						break
					}
				}
			}
		case entity.TransactionExpense, entity.TransactionWithdrawal:
			stats.TotalExpenses = stats.TotalExpenses.Add(t.Amount)
		}
	}
	stats.NetProfit = stats.TotalRevenue.Sub(stats.TotalCost).Sub(stats.TotalExpenses)
	return stats
}
