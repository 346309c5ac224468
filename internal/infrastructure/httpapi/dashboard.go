package httpapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/tienda-client/internal/application/dto"
)

// DashboardAPI estadísticas financieras agregadas (SuperAdmin por convención del API).
type DashboardAPI struct {
	c *Client
}

// GetStats totales de ventas, gastos, beneficio neto y stock bajo.
func (d *DashboardAPI) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	var out dto.DashboardStats
	if err := d.c.do(ctx, http.MethodGet, "/reports/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
