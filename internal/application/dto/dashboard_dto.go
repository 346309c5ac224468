package dto

import "github.com/shopspring/decimal"

// DashboardStats respuesta de GET /reports/dashboard (solo SuperAdmin por convención).
// Los montos son decimales: las sumas de dinero nunca se acumulan en float64.
type DashboardStats struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	LowStockCount int             `json:"low_stock_count"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	ProductsSold  int             `json:"products_sold"`
}
