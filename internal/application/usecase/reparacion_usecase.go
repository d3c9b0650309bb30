package usecase

import (
	"time"

	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// fechaLayout formato de fecha del front original (YYYY-MM-DD).
const fechaLayout = "2006-01-02"

// ReparacionUseCase casos de uso para órdenes de trabajo.
type ReparacionUseCase struct {
	repo repository.ReparacionRepository
}

// NewReparacionUseCase construye el caso de uso.
func NewReparacionUseCase(repo repository.ReparacionRepository) *ReparacionUseCase {
	return &ReparacionUseCase{repo: repo}
}

// Create registra una orden nueva en estado pendiente y devuelve el ID generado.
func (uc *ReparacionUseCase) Create(in dto.CreateReparacionRequest) (int64, error) {
	if in.VehiculoID == 0 || in.MecanicoID == 0 {
		return 0, domain.ErrInvalidInput
	}
	ingreso, err := parseFecha(in.FechaIngreso)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	r := &entity.Reparacion{
		VehiculoID:   in.VehiculoID,
		MecanicoID:   in.MecanicoID,
		FechaIngreso: ingreso,
		Descripcion:  in.Descripcion,
		Estado:       entity.ReparacionPendiente,
		Costo:        in.Costo,
	}
	if err := uc.repo.Create(r); err != nil {
		return 0, err
	}
	return r.ID, nil
}

// List devuelve todas las órdenes con los datos del vehículo y el mecánico.
func (uc *ReparacionUseCase) List() ([]dto.ReparacionResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReparacionResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toReparacionResponse(r))
	}
	return out, nil
}

// GetDetalle devuelve una orden enriquecida. nil, nil si no existe.
func (uc *ReparacionUseCase) GetDetalle(id int64) (*dto.ReparacionResponse, error) {
	r, err := uc.repo.GetDetalle(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	resp := toReparacionResponse(r)
	return &resp, nil
}

// GetDetalleEntity devuelve la entidad enriquecida para usos internos
// (generación de PDF). nil, nil si no existe.
func (uc *ReparacionUseCase) GetDetalleEntity(id int64) (*entity.ReparacionDetalle, error) {
	return uc.repo.GetDetalle(id)
}

// Update actualiza una orden por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *ReparacionUseCase) Update(id int64, in dto.UpdateReparacionRequest) error {
	var salida *time.Time
	if in.FechaSalida != nil && *in.FechaSalida != "" {
		t, err := parseFecha(*in.FechaSalida)
		if err != nil {
			return domain.ErrInvalidInput
		}
		salida = &t
	}
	r := &entity.Reparacion{
		ID:          id,
		MecanicoID:  in.MecanicoID,
		FechaSalida: salida,
		Descripcion: in.Descripcion,
		Estado:      in.Estado,
		Costo:       in.Costo,
	}
	return uc.repo.Update(r)
}

// Delete elimina una orden (borrado físico). Devuelve domain.ErrNotFound si no existe.
func (uc *ReparacionUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// Confirmar marca la orden como completada y estampa la fecha de salida.
// No mira el estado previo: confirmar una orden ya completada vuelve a dejar
// el mismo efecto (idempotente por efecto, no por guarda).
func (uc *ReparacionUseCase) Confirmar(id int64) error {
	return uc.repo.Confirmar(id)
}

// parseFecha acepta YYYY-MM-DD y, como tolerancia, RFC3339.
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(fechaLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toReparacionResponse(r *entity.ReparacionDetalle) dto.ReparacionResponse {
	var salida *string
	if r.FechaSalida != nil {
		s := r.FechaSalida.Format(fechaLayout)
		salida = &s
	}
	return dto.ReparacionResponse{
		ID:             r.ID,
		VehiculoID:     r.VehiculoID,
		MecanicoID:     r.MecanicoID,
		FechaIngreso:   r.FechaIngreso.Format(fechaLayout),
		FechaSalida:    salida,
		Descripcion:    r.Descripcion,
		Estado:         r.Estado,
		Costo:          r.Costo,
		Patente:        r.Patente,
		Marca:          r.Marca,
		Modelo:         r.Modelo,
		MecanicoNombre: r.MecanicoNombre,
	}
}
