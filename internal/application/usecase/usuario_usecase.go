package usecase

import (
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
	"github.com/tu-usuario/taller-api/pkg/password"
)

// UsuarioUseCase casos de uso para cuentas del personal.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Create crea una cuenta (operación de admin): hashea la contraseña y marca
// requiere_reseteo para forzar el cambio en el primer login.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (int64, error) {
	if in.Nombre == "" || in.Email == "" || in.Password == "" || !entity.RolValido(in.Rol) {
		return 0, domain.ErrInvalidInput
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return 0, err
	}
	u := &entity.Usuario{
		Nombre:          in.Nombre,
		Apellido:        in.Apellido,
		Email:           in.Email,
		PasswordHash:    hash,
		RUT:             in.RUT,
		Telefono:        in.Telefono,
		Rol:             in.Rol,
		Estado:          entity.EstadoActivo,
		RequiereReseteo: true,
	}
	if err := uc.repo.Create(u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

// List devuelve las cuentas (sin hash) aplicando filtros de igualdad por rol y
// estado. El front usa rol=mecanico&estado=activo para poblar los selectores
// de mecánico; las cuentas desactivadas quedan fuera de esa búsqueda pero
// siguen apareciendo en el listado sin filtros.
func (uc *UsuarioUseCase) List(filter repository.UsuarioFilter) ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UsuarioResponse{
			ID:       u.ID,
			Nombre:   u.Nombre,
			Apellido: u.Apellido,
			Email:    u.Email,
			RUT:      u.RUT,
			Telefono: u.Telefono,
			Rol:      u.Rol,
			Estado:   u.Estado,
		})
	}
	return out, nil
}

// Update actualiza el perfil de una cuenta. La autorización (admin o la propia
// cuenta) la decide la capa HTTP; aquí solo se valida la entrada.
func (uc *UsuarioUseCase) Update(id int64, in dto.UpdateUsuarioRequest) error {
	if in.Rol != "" && !entity.RolValido(in.Rol) {
		return domain.ErrInvalidInput
	}
	u := &entity.Usuario{
		ID:       id,
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Email:    in.Email,
		Telefono: in.Telefono,
		Rol:      in.Rol,
		Estado:   in.Estado,
	}
	return uc.repo.Update(u)
}

// Desactivar marca la cuenta como inactiva en lugar de borrarla; la fila sigue
// existiendo para el historial de órdenes del mecánico.
func (uc *UsuarioUseCase) Desactivar(id int64) error {
	return uc.repo.Desactivar(id)
}
