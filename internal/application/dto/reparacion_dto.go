package dto

import "github.com/shopspring/decimal"

// CreateReparacionRequest entrada para crear una orden de trabajo.
// Las fechas viajan como "YYYY-MM-DD" (formato del front original).
type CreateReparacionRequest struct {
	VehiculoID   int64           `json:"vehiculo_id"`
	MecanicoID   int64           `json:"mecanico_id"`
	FechaIngreso string          `json:"fecha_ingreso"`
	Descripcion  string          `json:"descripcion"`
	Costo        decimal.Decimal `json:"costo"`
}

// UpdateReparacionRequest entrada para actualizar una orden.
type UpdateReparacionRequest struct {
	FechaSalida *string         `json:"fecha_salida"`
	Descripcion string          `json:"descripcion"`
	Estado      string          `json:"estado"`
	Costo       decimal.Decimal `json:"costo"`
	MecanicoID  int64           `json:"mecanico_id"`
}

// ReparacionResponse salida de una orden con los datos del vehículo y el
// nombre del mecánico (el listado hace JOIN con vehiculos y usuarios).
type ReparacionResponse struct {
	ID             int64           `json:"id"`
	VehiculoID     int64           `json:"vehiculo_id"`
	MecanicoID     int64           `json:"mecanico_id"`
	FechaIngreso   string          `json:"fecha_ingreso"`
	FechaSalida    *string         `json:"fecha_salida"`
	Descripcion    string          `json:"descripcion"`
	Estado         string          `json:"estado"`
	Costo          decimal.Decimal `json:"costo"`
	Patente        string          `json:"patente"`
	Marca          string          `json:"marca"`
	Modelo         string          `json:"modelo"`
	MecanicoNombre string          `json:"mecanico_nombre"`
}
