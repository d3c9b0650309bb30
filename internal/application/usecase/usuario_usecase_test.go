package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
	"github.com/tu-usuario/taller-api/pkg/password"
)

// fakeUsuarioRepo repositorio en memoria para los tests de cuentas.
type fakeUsuarioRepo struct {
	usuarios []*entity.Usuario
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	for _, existing := range r.usuarios {
		if existing.Email == u.Email {
			return domain.ErrEmailDuplicado
		}
	}
	u.ID = int64(len(r.usuarios) + 1)
	r.usuarios = append(r.usuarios, u)
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) List(filter repository.UsuarioFilter) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.usuarios {
		if filter.Rol != "" && u.Rol != filter.Rol {
			continue
		}
		if filter.Estado != "" && u.Estado != filter.Estado {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	existing, _ := r.GetByID(u.ID)
	if existing == nil {
		return domain.ErrNotFound
	}
	*existing = *u
	return nil
}

func (r *fakeUsuarioRepo) UpdatePassword(id int64, hash string) error {
	existing, _ := r.GetByID(id)
	if existing == nil {
		return domain.ErrNotFound
	}
	existing.PasswordHash = hash
	existing.RequiereReseteo = false
	return nil
}

func (r *fakeUsuarioRepo) Desactivar(id int64) error {
	existing, _ := r.GetByID(id)
	if existing == nil {
		return domain.ErrNotFound
	}
	existing.Estado = entity.EstadoInactivo
	return nil
}

func TestUsuarioCreate_HasheaYMarcaReseteo(t *testing.T) {
	repo := &fakeUsuarioRepo{}
	uc := usecase.NewUsuarioUseCase(repo)

	id, err := uc.Create(dto.CreateUsuarioRequest{
		Nombre:   "Pedro",
		Apellido: "Soto",
		Email:    "pedro@taller.cl",
		Password: "inicial123",
		Rol:      entity.RolMecanico,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	u := repo.usuarios[0]
	assert.NotEqual(t, "inicial123", u.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.True(t, password.Verify("inicial123", u.PasswordHash))
	assert.True(t, u.RequiereReseteo, "la cuenta nueva debe forzar cambio de contraseña")
	assert.Equal(t, entity.EstadoActivo, u.Estado)
}

func TestUsuarioCreate_RolDesconocido_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(&fakeUsuarioRepo{})

	_, err := uc.Create(dto.CreateUsuarioRequest{
		Nombre:   "Pedro",
		Email:    "pedro@taller.cl",
		Password: "x",
		Rol:      "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUsuarioCreate_EmailDuplicado_PropagaError(t *testing.T) {
	repo := &fakeUsuarioRepo{}
	uc := usecase.NewUsuarioUseCase(repo)

	in := dto.CreateUsuarioRequest{
		Nombre:   "Pedro",
		Email:    "pedro@taller.cl",
		Password: "x",
		Rol:      entity.RolMecanico,
	}
	_, err := uc.Create(in)
	require.NoError(t, err)

	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrEmailDuplicado)
}

func TestUsuarioList_FiltraPorRolYEstado(t *testing.T) {
	repo := &fakeUsuarioRepo{usuarios: []*entity.Usuario{
		{ID: 1, Nombre: "Admin", Rol: entity.RolAdmin, Estado: entity.EstadoActivo, PasswordHash: "h"},
		{ID: 2, Nombre: "Pedro", Rol: entity.RolMecanico, Estado: entity.EstadoActivo, PasswordHash: "h"},
		{ID: 3, Nombre: "Diego", Rol: entity.RolMecanico, Estado: entity.EstadoInactivo, PasswordHash: "h"},
	}}
	uc := usecase.NewUsuarioUseCase(repo)

	// El selector de mecánicos del front: rol=mecanico&estado=activo.
	out, err := uc.List(repository.UsuarioFilter{Rol: entity.RolMecanico, Estado: entity.EstadoActivo})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Pedro", out[0].Nombre)

	// Sin filtros aparecen todas las cuentas, incluidas las desactivadas.
	todos, err := uc.List(repository.UsuarioFilter{})
	require.NoError(t, err)
	assert.Len(t, todos, 3)
}

func TestUsuarioDesactivar_EsBorradoLogico(t *testing.T) {
	repo := &fakeUsuarioRepo{usuarios: []*entity.Usuario{
		{ID: 1, Nombre: "Pedro", Rol: entity.RolMecanico, Estado: entity.EstadoActivo},
	}}
	uc := usecase.NewUsuarioUseCase(repo)

	require.NoError(t, uc.Desactivar(1))
	assert.Equal(t, entity.EstadoInactivo, repo.usuarios[0].Estado)
	assert.Len(t, repo.usuarios, 1, "la fila no se borra")
}

func TestUsuarioUpdate_RolDesconocido_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(&fakeUsuarioRepo{})
	err := uc.Update(1, dto.UpdateUsuarioRequest{Rol: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
