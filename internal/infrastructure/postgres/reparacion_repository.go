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

var _ repository.ReparacionRepository = (*ReparacionRepo)(nil)

// ReparacionRepo implementación de ReparacionRepository sobre PostgreSQL.
type ReparacionRepo struct {
	pool *pgxpool.Pool
}

// NewReparacionRepository construye el adaptador.
func NewReparacionRepository(pool *pgxpool.Pool) *ReparacionRepo {
	return &ReparacionRepo{pool: pool}
}

// selectDetalle columnas del listado enriquecido. Los LEFT JOIN toleran
// vehículos o mecánicos borrados; COALESCE evita strings NULL en el scan.
const selectDetalle = `
	SELECT r.id, r.vehiculo_id, r.mecanico_id, r.fecha_ingreso, r.fecha_salida,
	       r.descripcion, r.estado, r.costo,
	       COALESCE(v.patente, ''), COALESCE(v.marca, ''), COALESCE(v.modelo, ''),
	       COALESCE(u.nombre, '')
	FROM reparaciones r
	LEFT JOIN vehiculos v ON r.vehiculo_id = v.id
	LEFT JOIN usuarios  u ON r.mecanico_id = u.id`

// Create persiste una orden nueva y asigna el ID generado.
func (r *ReparacionRepo) Create(rep *entity.Reparacion) error {
	query := `
		INSERT INTO reparaciones (vehiculo_id, mecanico_id, fecha_ingreso, descripcion, estado, costo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		rep.VehiculoID, rep.MecanicoID, rep.FechaIngreso, rep.Descripcion, rep.Estado, rep.Costo,
	).Scan(&rep.ID)
	if err != nil {
		return fmt.Errorf("insert reparacion: %w", err)
	}
	return nil
}

// GetDetalle obtiene una orden con vehículo y mecánico. nil, nil si no existe.
func (r *ReparacionRepo) GetDetalle(id int64) (*entity.ReparacionDetalle, error) {
	var d entity.ReparacionDetalle
	err := r.pool.QueryRow(context.Background(), selectDetalle+" WHERE r.id = $1", id).Scan(
		&d.ID, &d.VehiculoID, &d.MecanicoID, &d.FechaIngreso, &d.FechaSalida,
		&d.Descripcion, &d.Estado, &d.Costo,
		&d.Patente, &d.Marca, &d.Modelo, &d.MecanicoNombre,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reparacion: %w", err)
	}
	return &d, nil
}

// List devuelve todas las órdenes enriquecidas.
func (r *ReparacionRepo) List() ([]*entity.ReparacionDetalle, error) {
	rows, err := r.pool.Query(context.Background(), selectDetalle+" ORDER BY r.id")
	if err != nil {
		return nil, fmt.Errorf("list reparaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReparacionDetalle
	for rows.Next() {
		var d entity.ReparacionDetalle
		if err := rows.Scan(
			&d.ID, &d.VehiculoID, &d.MecanicoID, &d.FechaIngreso, &d.FechaSalida,
			&d.Descripcion, &d.Estado, &d.Costo,
			&d.Patente, &d.Marca, &d.Modelo, &d.MecanicoNombre,
		); err != nil {
			return nil, fmt.Errorf("scan reparacion: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza una orden. ErrNotFound si no hay fila.
func (r *ReparacionRepo) Update(rep *entity.Reparacion) error {
	query := `
		UPDATE reparaciones SET fecha_salida = $2, descripcion = $3, estado = $4, costo = $5, mecanico_id = $6
		WHERE id = $1`
	ct, err := r.pool.Exec(context.Background(), query,
		rep.ID, rep.FechaSalida, rep.Descripcion, rep.Estado, rep.Costo, rep.MecanicoID,
	)
	if err != nil {
		return fmt.Errorf("update reparacion: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una orden por ID (borrado físico). ErrNotFound si no hay fila.
func (r *ReparacionRepo) Delete(id int64) error {
	ct, err := r.pool.Exec(context.Background(), `DELETE FROM reparaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reparacion: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Confirmar completa la orden y estampa la fecha de salida en un solo UPDATE,
// sin condicionar por el estado previo.
func (r *ReparacionRepo) Confirmar(id int64) error {
	query := `UPDATE reparaciones SET estado = 'completada', fecha_salida = CURRENT_DATE WHERE id = $1`
	ct, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("confirmar reparacion: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
