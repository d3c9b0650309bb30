package entity

// Roles válidos para Usuario.
const (
	RolAdmin      = "admin"
	RolSecretaria = "secretaria"
	RolMecanico   = "mecanico"
)

// Estados de cuenta. Las cuentas nunca se borran: se marcan inactivo.
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// Usuario representa una cuenta del personal del taller.
type Usuario struct {
	ID           int64
	Nombre       string
	Apellido     string
	Email        string
	PasswordHash string // bcrypt, nunca texto plano después de persistir
	RUT          string
	Telefono     string
	Rol          string // admin, secretaria, mecanico
	Estado       string // activo, inactivo
	// RequiereReseteo fuerza el cambio de contraseña en el primer inicio de
	// sesión (cuentas creadas por el admin con contraseña provisoria).
	RequiereReseteo bool
}

// RolValido indica si s es uno de los roles reconocidos.
func RolValido(s string) bool {
	return s == RolAdmin || s == RolSecretaria || s == RolMecanico
}
