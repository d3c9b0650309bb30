package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el resumen del panel.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// TotalClientes devuelve el total de clientes registrados.
func (r *DashboardRepo) TotalClientes(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM clientes`)
}

// TotalVehiculos devuelve el total de vehículos registrados.
func (r *DashboardRepo) TotalVehiculos(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM vehiculos`)
}

// ReparacionesEnProceso devuelve cuántas órdenes están en estado en_proceso.
func (r *DashboardRepo) ReparacionesEnProceso(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM reparaciones WHERE estado = 'en_proceso'`)
}

func (r *DashboardRepo) count(ctx context.Context, query string) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return total, nil
}
