package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	// Create persiste el cliente y asigna el ID generado por la base.
	Create(c *entity.Cliente) error
	GetByID(id int64) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Count() (int, error)
	// Update y Delete devuelven domain.ErrNotFound si no existe la fila.
	Update(c *entity.Cliente) error
	Delete(id int64) error
}
