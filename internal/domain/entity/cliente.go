package entity

// Cliente representa un cliente del taller.
type Cliente struct {
	ID       int64
	Nombre   string
	Apellido string
	RUT      string
	Email    string
	Telefono string
}
