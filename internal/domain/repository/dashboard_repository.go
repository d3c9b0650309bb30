package repository

import "context"

// DashboardRepository consultas de solo lectura para el resumen del panel.
// Son tres COUNT independientes, sin transacción: los totales son informativos,
// no invariantes, y pueden divergir frente a escrituras concurrentes.
type DashboardRepository interface {
	TotalClientes(ctx context.Context) (int, error)
	TotalVehiculos(ctx context.Context) (int, error)
	ReparacionesEnProceso(ctx context.Context) (int, error)
}
