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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador de persistencia para clientes.
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente. La identificación es única.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nombre, identificacion, direccion, telefono, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombre, cliente.Identificacion, cliente.Direccion,
		cliente.Telefono, cliente.Email, cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.get(`WHERE id = $1`, id)
}

// GetByIdentificacion obtiene un cliente por su identificación única.
func (r *ClienteRepo) GetByIdentificacion(identificacion string) (*entity.Cliente, error) {
	return r.get(`WHERE identificacion = $1`, identificacion)
}

func (r *ClienteRepo) get(where string, arg any) (*entity.Cliente, error) {
	query := `
		SELECT id, nombre, identificacion, direccion, telefono, email, created_at, updated_at
		FROM clientes ` + where
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Nombre, &c.Identificacion, &c.Direccion, &c.Telefono, &c.Email,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente existente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nombre = $2, identificacion = $3, direccion = $4, telefono = $5, email = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombre, cliente.Identificacion, cliente.Direccion,
		cliente.Telefono, cliente.Email, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// List lista todos los clientes.
func (r *ClienteRepo) List() ([]*entity.Cliente, error) {
	query := `
		SELECT id, nombre, identificacion, direccion, telefono, email, created_at, updated_at
		FROM clientes ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Identificacion, &c.Direccion,
			&c.Telefono, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente por ID.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

// Count devuelve el total de clientes registrados.
func (r *ClienteRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM clientes`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count clientes: %w", err)
	}
	return n, nil
}
