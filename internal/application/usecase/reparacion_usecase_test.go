package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
)

// fakeReparacionRepo repositorio en memoria para los tests de órdenes.
type fakeReparacionRepo struct {
	ordenes map[int64]*entity.ReparacionDetalle
	nextID  int64

	confirmadas []int64
}

func newFakeReparacionRepo() *fakeReparacionRepo {
	return &fakeReparacionRepo{ordenes: make(map[int64]*entity.ReparacionDetalle), nextID: 1}
}

func (r *fakeReparacionRepo) Create(rep *entity.Reparacion) error {
	rep.ID = r.nextID
	r.nextID++
	r.ordenes[rep.ID] = &entity.ReparacionDetalle{Reparacion: *rep}
	return nil
}

func (r *fakeReparacionRepo) GetDetalle(id int64) (*entity.ReparacionDetalle, error) {
	return r.ordenes[id], nil
}

func (r *fakeReparacionRepo) List() ([]*entity.ReparacionDetalle, error) {
	out := make([]*entity.ReparacionDetalle, 0, len(r.ordenes))
	for id := int64(1); id < r.nextID; id++ {
		if det, ok := r.ordenes[id]; ok {
			out = append(out, det)
		}
	}
	return out, nil
}

func (r *fakeReparacionRepo) Update(rep *entity.Reparacion) error {
	det, ok := r.ordenes[rep.ID]
	if !ok {
		return domain.ErrNotFound
	}
	det.Reparacion = *rep
	return nil
}

func (r *fakeReparacionRepo) Delete(id int64) error {
	if _, ok := r.ordenes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.ordenes, id)
	return nil
}

func (r *fakeReparacionRepo) Confirmar(id int64) error {
	det, ok := r.ordenes[id]
	if !ok {
		return domain.ErrNotFound
	}
	det.Estado = entity.ReparacionCompletada
	hoy := time.Now().Truncate(24 * time.Hour)
	det.FechaSalida = &hoy
	r.confirmadas = append(r.confirmadas, id)
	return nil
}

func crearOrden(t *testing.T, uc *usecase.ReparacionUseCase) int64 {
	t.Helper()
	id, err := uc.Create(dto.CreateReparacionRequest{
		VehiculoID:   1,
		MecanicoID:   2,
		FechaIngreso: "2026-08-20",
		Descripcion:  "Cambio de pastillas de freno",
		Costo:        decimal.NewFromInt(45000),
	})
	require.NoError(t, err)
	return id
}

func TestReparacionCreate_SiempreNacePendiente(t *testing.T) {
	repo := newFakeReparacionRepo()
	uc := usecase.NewReparacionUseCase(repo)

	id := crearOrden(t, uc)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, entity.ReparacionPendiente, repo.ordenes[id].Estado,
		"el estado inicial no lo elige el cliente")
}

func TestReparacionCreate_CamposObligatorios(t *testing.T) {
	uc := usecase.NewReparacionUseCase(newFakeReparacionRepo())

	_, err := uc.Create(dto.CreateReparacionRequest{MecanicoID: 2, FechaIngreso: "2026-08-20"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "falta vehiculo_id")

	_, err = uc.Create(dto.CreateReparacionRequest{VehiculoID: 1, FechaIngreso: "2026-08-20"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "falta mecanico_id")

	_, err = uc.Create(dto.CreateReparacionRequest{VehiculoID: 1, MecanicoID: 2, FechaIngreso: "20/08/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha en formato no soportado")
}

func TestReparacionList_FormateaFechas(t *testing.T) {
	repo := newFakeReparacionRepo()
	uc := usecase.NewReparacionUseCase(repo)
	id := crearOrden(t, uc)

	// Enriquecer como lo haría el JOIN.
	det := repo.ordenes[id]
	det.Patente = "ABCD12"
	det.Marca = "Toyota"
	det.Modelo = "Yaris"
	det.MecanicoNombre = "Pedro Soto"

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "2026-08-20", out[0].FechaIngreso)
	assert.Nil(t, out[0].FechaSalida, "sin fecha de salida el campo viaja como null")
	assert.Equal(t, "ABCD12", out[0].Patente)
	assert.Equal(t, "Pedro Soto", out[0].MecanicoNombre)
	assert.True(t, out[0].Costo.Equal(decimal.NewFromInt(45000)))
}

func TestReparacionUpdate_FechaSalidaInvalida(t *testing.T) {
	repo := newFakeReparacionRepo()
	uc := usecase.NewReparacionUseCase(repo)
	id := crearOrden(t, uc)

	mala := "no-es-fecha"
	err := uc.Update(id, dto.UpdateReparacionRequest{FechaSalida: &mala})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReparacionConfirmar_CompletaYEstampaSalida(t *testing.T) {
	repo := newFakeReparacionRepo()
	uc := usecase.NewReparacionUseCase(repo)
	id := crearOrden(t, uc)

	require.NoError(t, uc.Confirmar(id))
	assert.Equal(t, entity.ReparacionCompletada, repo.ordenes[id].Estado)
	assert.NotNil(t, repo.ordenes[id].FechaSalida)

	// Confirmar de nuevo no falla: la operación es idempotente por efecto.
	require.NoError(t, uc.Confirmar(id))
	assert.Equal(t, []int64{id, id}, repo.confirmadas)
}

func TestReparacionConfirmar_NoExiste_RetornaErrNotFound(t *testing.T) {
	uc := usecase.NewReparacionUseCase(newFakeReparacionRepo())
	assert.ErrorIs(t, uc.Confirmar(99), domain.ErrNotFound)
}

func TestReparacionGetDetalleEntity_NoExiste_DevuelveNil(t *testing.T) {
	uc := usecase.NewReparacionUseCase(newFakeReparacionRepo())
	det, err := uc.GetDetalleEntity(99)
	require.NoError(t, err)
	assert.Nil(t, det)
}
