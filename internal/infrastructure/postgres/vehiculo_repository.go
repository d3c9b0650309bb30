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

var _ repository.VehiculoRepository = (*VehiculoRepo)(nil)

// VehiculoRepo implementación de VehiculoRepository sobre PostgreSQL.
type VehiculoRepo struct {
	pool *pgxpool.Pool
}

// NewVehiculoRepository construye el adaptador.
func NewVehiculoRepository(pool *pgxpool.Pool) *VehiculoRepo {
	return &VehiculoRepo{pool: pool}
}

// Create persiste un vehículo nuevo y asigna el ID generado.
func (r *VehiculoRepo) Create(v *entity.Vehiculo) error {
	query := `
		INSERT INTO vehiculos (cliente_id, patente, marca, modelo, anio, descripcion, mecanico_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		v.ClienteID, v.Patente, v.Marca, v.Modelo, v.Anio, v.Descripcion, v.MecanicoID,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert vehiculo: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID. nil, nil si no existe.
func (r *VehiculoRepo) GetByID(id int64) (*entity.Vehiculo, error) {
	query := `
		SELECT id, cliente_id, patente, marca, modelo, anio, descripcion, mecanico_id
		FROM vehiculos WHERE id = $1`
	var v entity.Vehiculo
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ClienteID, &v.Patente, &v.Marca, &v.Modelo, &v.Anio, &v.Descripcion, &v.MecanicoID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehiculo: %w", err)
	}
	return &v, nil
}

// List lista vehículos con paginación, búsqueda por substring (patente,
// marca, modelo) y filtros de igualdad por marca y modelo.
func (r *VehiculoRepo) List(filter repository.VehiculoFilter, limit, offset int) ([]*entity.Vehiculo, error) {
	query := `
		SELECT id, cliente_id, patente, marca, modelo, anio, descripcion, mecanico_id
		FROM vehiculos WHERE 1=1`
	var args []any
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (patente ILIKE $%d OR marca ILIKE $%d OR modelo ILIKE $%d)", n, n, n)
	}
	if filter.Marca != "" {
		args = append(args, filter.Marca)
		query += fmt.Sprintf(" AND marca = $%d", len(args))
	}
	if filter.Modelo != "" {
		args = append(args, filter.Modelo)
		query += fmt.Sprintf(" AND modelo = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vehiculos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehiculo
	for rows.Next() {
		var v entity.Vehiculo
		if err := rows.Scan(&v.ID, &v.ClienteID, &v.Patente, &v.Marca, &v.Modelo, &v.Anio,
			&v.Descripcion, &v.MecanicoID); err != nil {
			return nil, fmt.Errorf("scan vehiculo: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Count devuelve el total de vehículos (sin aplicar filtros, como el sistema original).
func (r *VehiculoRepo) Count() (int, error) {
	var total int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM vehiculos`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count vehiculos: %w", err)
	}
	return total, nil
}

// Update actualiza un vehículo. ErrNotFound si no hay fila.
func (r *VehiculoRepo) Update(v *entity.Vehiculo) error {
	query := `
		UPDATE vehiculos SET patente = $2, marca = $3, modelo = $4, anio = $5, descripcion = $6, mecanico_id = $7
		WHERE id = $1`
	ct, err := r.pool.Exec(context.Background(), query,
		v.ID, v.Patente, v.Marca, v.Modelo, v.Anio, v.Descripcion, v.MecanicoID,
	)
	if err != nil {
		return fmt.Errorf("update vehiculo: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un vehículo por ID (borrado físico). ErrNotFound si no hay fila.
func (r *VehiculoRepo) Delete(id int64) error {
	ct, err := r.pool.Exec(context.Background(), `DELETE FROM vehiculos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehiculo: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
