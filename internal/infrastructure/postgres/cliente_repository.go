package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	pool *pgxpool.Pool
}

// NewClienteRepository construye el adaptador.
func NewClienteRepository(pool *pgxpool.Pool) *ClienteRepo {
	return &ClienteRepo{pool: pool}
}

// Create persiste un cliente nuevo y asigna el ID generado.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (nombre, apellido, rut, email, telefono)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		c.Nombre, c.Apellido, c.RUT, c.Email, c.Telefono,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. nil, nil si no existe.
func (r *ClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	query := `SELECT id, nombre, apellido, rut, email, telefono FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nombre, &c.Apellido, &c.RUT, &c.Email, &c.Telefono,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista clientes con paginación.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT id, nombre, apellido, rut, email, telefono
		FROM clientes ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Apellido, &c.RUT, &c.Email, &c.Telefono); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count devuelve el total de clientes.
func (r *ClienteRepo) Count() (int, error) {
	var total int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM clientes`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count clientes: %w", err)
	}
	return total, nil
}

// Update actualiza un cliente. ErrNotFound si no hay fila.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $2, apellido = $3, email = $4, telefono = $5
		WHERE id = $1`
	ct, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Apellido, c.Email, c.Telefono,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID (borrado físico). ErrNotFound si no hay fila.
func (r *ClienteRepo) Delete(id int64) error {
	ct, err := r.pool.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
