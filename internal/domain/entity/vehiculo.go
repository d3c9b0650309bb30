package entity

// Vehiculo representa un vehículo de un cliente, con un mecánico asignado opcional.
type Vehiculo struct {
	ID          int64
	ClienteID   int64
	Patente     string
	Marca       string
	Modelo      string
	Anio        int
	Descripcion string
	MecanicoID  *int64 // nil si aún no tiene mecánico asignado
}
