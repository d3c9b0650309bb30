package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// VehiculoFilter filtros del listado de vehículos: Search hace búsqueda por
// substring sobre patente/marca/modelo; Marca y Modelo son igualdad exacta.
type VehiculoFilter struct {
	Search string
	Marca  string
	Modelo string
}

// VehiculoRepository define el puerto de persistencia para Vehiculo.
type VehiculoRepository interface {
	Create(v *entity.Vehiculo) error
	GetByID(id int64) (*entity.Vehiculo, error)
	List(filter VehiculoFilter, limit, offset int) ([]*entity.Vehiculo, error)
	Count() (int, error)
	Update(v *entity.Vehiculo) error
	Delete(id int64) error
}
