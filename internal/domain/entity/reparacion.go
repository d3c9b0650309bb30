package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una reparación.
const (
	ReparacionPendiente  = "pendiente"
	ReparacionEnProceso  = "en_proceso"
	ReparacionCompletada = "completada"
)

// Reparacion representa una orden de trabajo sobre un vehículo, asignada a un mecánico.
type Reparacion struct {
	ID           int64
	VehiculoID   int64
	MecanicoID   int64
	FechaIngreso time.Time
	FechaSalida  *time.Time // se estampa al completar
	Descripcion  string
	Estado       string // pendiente, en_proceso, completada
	Costo        decimal.Decimal
}

// ReparacionDetalle es la fila enriquecida que devuelve el listado: la orden
// más los datos del vehículo y el nombre del mecánico (JOIN en la consulta).
type ReparacionDetalle struct {
	Reparacion
	Patente        string
	Marca          string
	Modelo         string
	MecanicoNombre string
}
