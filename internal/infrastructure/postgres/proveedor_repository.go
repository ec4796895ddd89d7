package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/sistema-ventas/internal/domain"
	"github.com/tu-usuario/sistema-ventas/internal/domain/entity"
	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador de persistencia para proveedores.
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste un nuevo proveedor. El RUC es único.
func (r *ProveedorRepo) Create(proveedor *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (id, nombre, ruc, direccion, telefono, email, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.Nombre, proveedor.RUC, proveedor.Direccion,
		proveedor.Telefono, proveedor.Email, proveedor.Activo,
		proveedor.CreatedAt, proveedor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	return r.get(`WHERE id = $1`, id)
}

// GetByRUC obtiene un proveedor por su RUC único.
func (r *ProveedorRepo) GetByRUC(ruc string) (*entity.Proveedor, error) {
	return r.get(`WHERE ruc = $1`, ruc)
}

func (r *ProveedorRepo) get(where string, arg any) (*entity.Proveedor, error) {
	query := `
		SELECT id, nombre, ruc, direccion, telefono, email, activo, created_at, updated_at
		FROM proveedores ` + where
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Nombre, &p.RUC, &p.Direccion, &p.Telefono, &p.Email,
		&p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// Update actualiza un proveedor existente.
func (r *ProveedorRepo) Update(proveedor *entity.Proveedor) error {
	query := `
		UPDATE proveedores
		SET nombre = $2, ruc = $3, direccion = $4, telefono = $5, email = $6, activo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.Nombre, proveedor.RUC, proveedor.Direccion,
		proveedor.Telefono, proveedor.Email, proveedor.Activo, proveedor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// List lista todos los proveedores.
func (r *ProveedorRepo) List() ([]*entity.Proveedor, error) {
	query := `
		SELECT id, nombre, ruc, direccion, telefono, email, activo, created_at, updated_at
		FROM proveedores ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.RUC, &p.Direccion, &p.Telefono,
			&p.Email, &p.Activo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor por ID.
func (r *ProveedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}
