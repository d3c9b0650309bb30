package usecase

import (
	"context"

	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen del panel de control.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetResumen ejecuta los tres COUNT en secuencia, sin transacción: los totales
// son informativos y no necesitan ser atómicos entre sí.
func (uc *DashboardUseCase) GetResumen(ctx context.Context) (*dto.DashboardResumen, error) {
	clientes, err := uc.repo.TotalClientes(ctx)
	if err != nil {
		return nil, err
	}
	vehiculos, err := uc.repo.TotalVehiculos(ctx)
	if err != nil {
		return nil, err
	}
	enProceso, err := uc.repo.ReparacionesEnProceso(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResumen{
		TotalClientes:         clientes,
		TotalVehiculos:        vehiculos,
		ReparacionesEnProceso: enProceso,
	}, nil
}
