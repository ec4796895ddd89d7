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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, codigo, nombre, descripcion, marca, categoria, precio, stock, stock_asignado, activo, proveedor_id, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre
// PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para
// productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Codigo, producto.Nombre, producto.Descripcion, producto.Marca,
		producto.Categoria, producto.Precio, producto.Stock, producto.StockAsignado,
		producto.Activo, producto.ProveedorID, producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.get(`SELECT `+productoColumns+` FROM productos WHERE id = $1`, id)
}

// GetForUpdate obtiene un producto bloqueando la fila (SELECT FOR UPDATE).
// Usar dentro de una transacción.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.get(`SELECT `+productoColumns+` FROM productos WHERE id = $1 FOR UPDATE`, id)
}

// GetByCodigo obtiene un producto por su código único.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	return r.get(`SELECT `+productoColumns+` FROM productos WHERE codigo = $1`, codigo)
}

func (r *ProductoRepo) get(query string, arg any) (*entity.Producto, error) {
	var p entity.Producto
	var proveedorID *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Marca, &p.Categoria,
		&p.Precio, &p.Stock, &p.StockAsignado, &p.Activo, &proveedorID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	if proveedorID != nil {
		p.ProveedorID = *proveedorID
	}
	return &p, nil
}

// Update actualiza los datos descriptivos. Stock y StockAsignado se
// modifican únicamente vía UpdateStocks/IncrementStock.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos
		SET codigo = $2, nombre = $3, descripcion = $4, marca = $5, categoria = $6,
		    precio = $7, activo = $8, proveedor_id = NULLIF($9, ''), updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Codigo, producto.Nombre, producto.Descripcion, producto.Marca,
		producto.Categoria, producto.Precio, producto.Activo, producto.ProveedorID, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateStocks fija stock de bodega y stock asignado en una sola escritura
// (usado por el motor de asignación bajo transacción).
func (r *ProductoRepo) UpdateStocks(id string, stock, stockAsignado int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = $2, stock_asignado = $3, updated_at = now() WHERE id = $1`,
		id, stock, stockAsignado,
	)
	if err != nil {
		return fmt.Errorf("update stocks producto: %w", err)
	}
	return nil
}

// IncrementStock suma delta al stock de bodega (entradas de mercadería).
func (r *ProductoRepo) IncrementStock(id string, delta int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = stock + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("increment stock producto: %w", err)
	}
	return nil
}

// List lista todos los productos.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	return r.list(`SELECT ` + productoColumns + ` FROM productos ORDER BY nombre`)
}

// ListBajoStock lista productos con stock de bodega por debajo del umbral.
func (r *ProductoRepo) ListBajoStock(stockMinimo int) ([]*entity.Producto, error) {
	return r.list(`SELECT `+productoColumns+` FROM productos WHERE stock < $1 ORDER BY stock`, stockMinimo)
}

func (r *ProductoRepo) list(query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		var proveedorID *string
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Marca, &p.Categoria,
			&p.Precio, &p.Stock, &p.StockAsignado, &p.Activo, &proveedorID,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		if proveedorID != nil {
			p.ProveedorID = *proveedorID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
