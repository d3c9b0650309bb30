package usecase

import (
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente y devuelve el ID generado.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (int64, error) {
	if in.Nombre == "" || in.Apellido == "" {
		return 0, domain.ErrInvalidInput
	}
	c := &entity.Cliente{
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		RUT:      in.RUT,
		Email:    in.Email,
		Telefono: in.Telefono,
	}
	if err := uc.repo.Create(c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// List devuelve la página solicitada junto al total y el número de páginas.
// El total se consulta aparte y sin transacción: es un dato informativo.
func (uc *ClienteUseCase) List(page, limit int) (*dto.ClienteListResponse, error) {
	page, limit, offset := dto.NormalizarPagina(page, limit)
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	data := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		data = append(data, toClienteResponse(c))
	}
	return &dto.ClienteListResponse{
		Data: data,
		Paginacion: dto.Paginacion{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: dto.TotalPages(total, limit),
		},
	}, nil
}

// Update actualiza un cliente por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *ClienteUseCase) Update(id int64, in dto.UpdateClienteRequest) error {
	c := &entity.Cliente{
		ID:       id,
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Email:    in.Email,
		Telefono: in.Telefono,
	}
	return uc.repo.Update(c)
}

// Delete elimina un cliente (borrado físico). Devuelve domain.ErrNotFound si no existe.
func (uc *ClienteUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:       c.ID,
		Nombre:   c.Nombre,
		Apellido: c.Apellido,
		RUT:      c.RUT,
		Email:    c.Email,
		Telefono: c.Telefono,
	}
}
