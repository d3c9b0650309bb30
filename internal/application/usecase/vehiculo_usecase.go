package usecase

import (
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// VehiculoUseCase casos de uso CRUD para vehículos.
type VehiculoUseCase struct {
	repo repository.VehiculoRepository
}

// NewVehiculoUseCase construye el caso de uso.
func NewVehiculoUseCase(repo repository.VehiculoRepository) *VehiculoUseCase {
	return &VehiculoUseCase{repo: repo}
}

// Create crea un vehículo y devuelve el ID generado.
func (uc *VehiculoUseCase) Create(in dto.CreateVehiculoRequest) (int64, error) {
	if in.ClienteID == 0 || in.Patente == "" {
		return 0, domain.ErrInvalidInput
	}
	v := &entity.Vehiculo{
		ClienteID:   in.ClienteID,
		Patente:     in.Patente,
		Marca:       in.Marca,
		Modelo:      in.Modelo,
		Anio:        in.Anio,
		Descripcion: in.Descripcion,
		MecanicoID:  in.MecanicoID,
	}
	if err := uc.repo.Create(v); err != nil {
		return 0, err
	}
	return v.ID, nil
}

// List devuelve la página solicitada aplicando búsqueda por substring
// (patente/marca/modelo) y filtros de igualdad por marca y modelo.
func (uc *VehiculoUseCase) List(filter repository.VehiculoFilter, page, limit int) (*dto.VehiculoListResponse, error) {
	page, limit, offset := dto.NormalizarPagina(page, limit)
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	data := make([]dto.VehiculoResponse, 0, len(list))
	for _, v := range list {
		data = append(data, toVehiculoResponse(v))
	}
	return &dto.VehiculoListResponse{
		Data: data,
		Paginacion: dto.Paginacion{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: dto.TotalPages(total, limit),
		},
	}, nil
}

// Update actualiza un vehículo por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *VehiculoUseCase) Update(id int64, in dto.UpdateVehiculoRequest) error {
	v := &entity.Vehiculo{
		ID:          id,
		Patente:     in.Patente,
		Marca:       in.Marca,
		Modelo:      in.Modelo,
		Anio:        in.Anio,
		Descripcion: in.Descripcion,
		MecanicoID:  in.MecanicoID,
	}
	return uc.repo.Update(v)
}

// Delete elimina un vehículo (borrado físico). Devuelve domain.ErrNotFound si no existe.
func (uc *VehiculoUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toVehiculoResponse(v *entity.Vehiculo) dto.VehiculoResponse {
	return dto.VehiculoResponse{
		ID:          v.ID,
		ClienteID:   v.ClienteID,
		Patente:     v.Patente,
		Marca:       v.Marca,
		Modelo:      v.Modelo,
		Anio:        v.Anio,
		Descripcion: v.Descripcion,
		MecanicoID:  v.MecanicoID,
	}
}
