package dto

// CreateVehiculoRequest entrada para crear un vehículo.
type CreateVehiculoRequest struct {
	ClienteID   int64  `json:"cliente_id"`
	Patente     string `json:"patente"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Anio        int    `json:"anio"`
	Descripcion string `json:"descripcion"`
	MecanicoID  *int64 `json:"mecanico_id"`
}

// UpdateVehiculoRequest entrada para actualizar un vehículo (el cliente no cambia).
type UpdateVehiculoRequest struct {
	Patente     string `json:"patente"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Anio        int    `json:"anio"`
	Descripcion string `json:"descripcion"`
	MecanicoID  *int64 `json:"mecanico_id"`
}

// VehiculoResponse salida de un vehículo.
type VehiculoResponse struct {
	ID          int64  `json:"id"`
	ClienteID   int64  `json:"cliente_id"`
	Patente     string `json:"patente"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Anio        int    `json:"anio"`
	Descripcion string `json:"descripcion"`
	MecanicoID  *int64 `json:"mecanico_id"`
}

// VehiculoListResponse listado paginado de vehículos.
type VehiculoListResponse struct {
	Data []VehiculoResponse `json:"data"`
	Paginacion
}
