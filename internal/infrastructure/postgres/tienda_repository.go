package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/sistema-ventas/internal/domain/entity"
	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

var _ repository.TiendaRepository = (*TiendaRepo)(nil)

// TiendaRepo implementación del puerto TiendaRepository sobre PostgreSQL.
type TiendaRepo struct {
	q Querier
}

// NewTiendaRepository construye el adaptador de persistencia para tiendas.
func NewTiendaRepository(q Querier) *TiendaRepo {
	return &TiendaRepo{q: q}
}

// Create persiste una nueva tienda.
func (r *TiendaRepo) Create(tienda *entity.Tienda) error {
	query := `
		INSERT INTO tiendas (id, nombre, direccion, telefono, email, administrador, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tienda.ID, tienda.Nombre, tienda.Direccion, tienda.Telefono,
		tienda.Email, tienda.Administrador, tienda.CreatedAt, tienda.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tienda: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *TiendaRepo) GetByID(id string) (*entity.Tienda, error) {
	query := `
		SELECT id, nombre, direccion, telefono, email, administrador, created_at, updated_at
		FROM tiendas WHERE id = $1`
	var t entity.Tienda
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Nombre, &t.Direccion, &t.Telefono, &t.Email, &t.Administrador,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tienda: %w", err)
	}
	return &t, nil
}

// Update actualiza una tienda existente.
func (r *TiendaRepo) Update(tienda *entity.Tienda) error {
	query := `
		UPDATE tiendas
		SET nombre = $2, direccion = $3, telefono = $4, email = $5, administrador = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tienda.ID, tienda.Nombre, tienda.Direccion, tienda.Telefono,
		tienda.Email, tienda.Administrador, tienda.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tienda: %w", err)
	}
	return nil
}

// List lista todas las tiendas.
func (r *TiendaRepo) List() ([]*entity.Tienda, error) {
	query := `
		SELECT id, nombre, direccion, telefono, email, administrador, created_at, updated_at
		FROM tiendas ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tiendas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tienda
	for rows.Next() {
		var t entity.Tienda
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Direccion, &t.Telefono, &t.Email,
			&t.Administrador, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tienda: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina una tienda por ID.
func (r *TiendaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tiendas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tienda: %w", err)
	}
	return nil
}

// Count devuelve el total de tiendas registradas.
func (r *TiendaRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM tiendas`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tiendas: %w", err)
	}
	return n, nil
}
