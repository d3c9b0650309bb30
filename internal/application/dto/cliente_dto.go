package dto

// CreateClienteRequest entrada para crear un cliente.
type CreateClienteRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	RUT      string `json:"rut"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// UpdateClienteRequest entrada para actualizar un cliente (el RUT no se edita).
type UpdateClienteRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	RUT      string `json:"rut"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// ClienteListResponse listado paginado de clientes.
type ClienteListResponse struct {
	Data []ClienteResponse `json:"data"`
	Paginacion
}
