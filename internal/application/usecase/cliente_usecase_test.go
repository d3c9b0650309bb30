package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
)

// fakeClienteRepo repositorio en memoria para los tests de clientes.
type fakeClienteRepo struct {
	clientes []*entity.Cliente

	lastLimit  int
	lastOffset int
}

func (r *fakeClienteRepo) Create(c *entity.Cliente) error {
	c.ID = int64(len(r.clientes) + 1)
	r.clientes = append(r.clientes, c)
	return nil
}

func (r *fakeClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	for _, c := range r.clientes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	r.lastLimit, r.lastOffset = limit, offset
	if offset >= len(r.clientes) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.clientes) {
		end = len(r.clientes)
	}
	return r.clientes[offset:end], nil
}

func (r *fakeClienteRepo) Count() (int, error) { return len(r.clientes), nil }

func (r *fakeClienteRepo) Update(c *entity.Cliente) error {
	for _, existing := range r.clientes {
		if existing.ID == c.ID {
			*existing = *c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeClienteRepo) Delete(id int64) error {
	for i, c := range r.clientes {
		if c.ID == id {
			r.clientes = append(r.clientes[:i], r.clientes[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func conClientes(n int) *fakeClienteRepo {
	repo := &fakeClienteRepo{}
	for i := 1; i <= n; i++ {
		repo.clientes = append(repo.clientes, &entity.Cliente{
			ID:       int64(i),
			Nombre:   fmt.Sprintf("Cliente%d", i),
			Apellido: "Test",
		})
	}
	return repo
}

func TestClienteCreate_SinNombre_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewClienteUseCase(&fakeClienteRepo{})

	_, err := uc.Create(dto.CreateClienteRequest{Apellido: "Solo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateClienteRequest{Nombre: "Solo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClienteCreate_DevuelveIDGenerado(t *testing.T) {
	uc := usecase.NewClienteUseCase(&fakeClienteRepo{})

	id, err := uc.Create(dto.CreateClienteRequest{Nombre: "Ana", Apellido: "Rojas"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestClienteList_PaginacionCompleta(t *testing.T) {
	uc := usecase.NewClienteUseCase(conClientes(25))

	out, err := uc.List(2, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 10, out.Limit)
	assert.Equal(t, 25, out.TotalCount)
	assert.Equal(t, 3, out.TotalPages)
	assert.Len(t, out.Data, 10)
	assert.Equal(t, "Cliente11", out.Data[0].Nombre, "la página 2 empieza en el cliente 11")
}

// page y limit fuera de rango caen a los defaults (1 y 10).
func TestClienteList_DefaultsDePagina(t *testing.T) {
	repo := conClientes(5)
	uc := usecase.NewClienteUseCase(repo)

	out, err := uc.List(0, -3)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 10, out.Limit)
	assert.Equal(t, 0, repo.lastOffset)
	assert.Equal(t, 10, repo.lastLimit)
	assert.Len(t, out.Data, 5)
	assert.Equal(t, 1, out.TotalPages)
}

// Una página más allá del final devuelve lista vacía, no error.
func TestClienteList_PaginaVacia(t *testing.T) {
	uc := usecase.NewClienteUseCase(conClientes(5))

	out, err := uc.List(4, 10)
	require.NoError(t, err)
	assert.Empty(t, out.Data)
	assert.Equal(t, 5, out.TotalCount)
}

func TestClienteUpdate_NoExiste_RetornaErrNotFound(t *testing.T) {
	uc := usecase.NewClienteUseCase(&fakeClienteRepo{})
	err := uc.Update(99, dto.UpdateClienteRequest{Nombre: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClienteDelete_NoExiste_RetornaErrNotFound(t *testing.T) {
	uc := usecase.NewClienteUseCase(&fakeClienteRepo{})
	assert.ErrorIs(t, uc.Delete(99), domain.ErrNotFound)
}
