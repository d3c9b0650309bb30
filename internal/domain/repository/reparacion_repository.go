package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// ReparacionRepository define el puerto de persistencia para Reparacion.
type ReparacionRepository interface {
	Create(r *entity.Reparacion) error
	// GetDetalle devuelve la orden con los datos del vehículo y del mecánico
	// (para el detalle y el comprobante PDF). nil, nil si no existe.
	GetDetalle(id int64) (*entity.ReparacionDetalle, error)
	// List devuelve todas las órdenes enriquecidas con vehículo y mecánico.
	List() ([]*entity.ReparacionDetalle, error)
	// Update, Delete y Confirmar devuelven domain.ErrNotFound si no existe la fila.
	Update(r *entity.Reparacion) error
	Delete(id int64) error
	// Confirmar marca la orden como completada y estampa la fecha de salida,
	// sin importar el estado previo (idempotente por efecto).
	Confirmar(id int64) error
}
