package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// UsuarioFilter filtros de igualdad para el listado de usuarios.
// El front-end los usa para cargar mecánicos activos (rol=mecanico&estado=activo).
type UsuarioFilter struct {
	Rol    string
	Estado string
}

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	// Create persiste el usuario y asigna el ID generado por la base.
	// Devuelve domain.ErrEmailDuplicado si el email ya existe.
	Create(u *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	List(filter UsuarioFilter) ([]*entity.Usuario, error)
	// Update actualiza los datos de perfil (no la contraseña).
	// Devuelve domain.ErrNotFound si no existe la fila.
	Update(u *entity.Usuario) error
	// UpdatePassword reemplaza el hash y limpia el flag requiere_reseteo.
	UpdatePassword(id int64, passwordHash string) error
	// Desactivar marca la cuenta como inactiva (soft delete; la fila no se borra).
	Desactivar(id int64) error
}
