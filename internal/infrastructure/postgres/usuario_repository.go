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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// Create persiste un usuario nuevo y asigna el ID generado.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre, apellido, email, password, rut, telefono, rol, estado, requiere_reseteo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		u.Nombre, u.Apellido, u.Email, u.PasswordHash, u.RUT, u.Telefono, u.Rol, u.Estado, u.RequiereReseteo,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. nil, nil si no existe.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre, apellido, email, password, rut, telefono, rol, estado, requiere_reseteo
		FROM usuarios WHERE id = $1`
	var u entity.Usuario
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.PasswordHash, &u.RUT, &u.Telefono,
		&u.Rol, &u.Estado, &u.RequiereReseteo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by id: %w", err)
	}
	return &u, nil
}

// GetByEmail obtiene un usuario por email (lo usa el login). nil, nil si no existe.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre, apellido, email, password, rut, telefono, rol, estado, requiere_reseteo
		FROM usuarios WHERE email = $1 LIMIT 1`
	var u entity.Usuario
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.PasswordHash, &u.RUT, &u.Telefono,
		&u.Rol, &u.Estado, &u.RequiereReseteo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by email: %w", err)
	}
	return &u, nil
}

// List lista usuarios con filtros de igualdad opcionales por rol y estado.
func (r *UsuarioRepo) List(filter repository.UsuarioFilter) ([]*entity.Usuario, error) {
	query := `
		SELECT id, nombre, apellido, email, password, rut, telefono, rol, estado, requiere_reseteo
		FROM usuarios WHERE 1=1`
	var args []any
	if filter.Rol != "" {
		args = append(args, filter.Rol)
		query += fmt.Sprintf(" AND rol = $%d", len(args))
	}
	if filter.Estado != "" {
		args = append(args, filter.Estado)
		query += fmt.Sprintf(" AND estado = $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.PasswordHash, &u.RUT,
			&u.Telefono, &u.Rol, &u.Estado, &u.RequiereReseteo); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza los datos de perfil. ErrNotFound si no hay fila.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nombre = $2, apellido = $3, email = $4, telefono = $5, rol = $6, estado = $7
		WHERE id = $1`
	ct, err := r.pool.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Apellido, u.Email, u.Telefono, u.Rol, u.Estado,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailDuplicado
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePassword reemplaza el hash y limpia el flag de reseteo obligatorio.
func (r *UsuarioRepo) UpdatePassword(id int64, passwordHash string) error {
	query := `UPDATE usuarios SET password = $2, requiere_reseteo = false WHERE id = $1`
	ct, err := r.pool.Exec(context.Background(), query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Desactivar marca la cuenta como inactiva; la fila no se borra.
func (r *UsuarioRepo) Desactivar(id int64) error {
	query := `UPDATE usuarios SET estado = 'inactivo' WHERE id = $1`
	ct, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("desactivar usuario: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
