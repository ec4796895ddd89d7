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

var _ repository.ProductoTiendaRepository = (*ProductoTiendaRepo)(nil)

// ProductoTiendaRepo implementación del puerto ProductoTiendaRepository
// sobre PostgreSQL. El par (tienda_id, producto_id) tiene constraint único.
type ProductoTiendaRepo struct {
	q Querier
}

// NewProductoTiendaRepository construye el adaptador de persistencia para
// asignaciones de stock por tienda.
func NewProductoTiendaRepository(q Querier) *ProductoTiendaRepo {
	return &ProductoTiendaRepo{q: q}
}

// Get obtiene la asignación (tienda, producto), o nil si no existe.
func (r *ProductoTiendaRepo) Get(tiendaID, productoID string) (*entity.ProductoTienda, error) {
	return r.get(`SELECT tienda_id, producto_id, stock_local, created_at, updated_at
		FROM productos_tienda WHERE tienda_id = $1 AND producto_id = $2`, tiendaID, productoID)
}

// GetForUpdate obtiene la asignación bloqueando la fila. Usar dentro de una tx.
func (r *ProductoTiendaRepo) GetForUpdate(tiendaID, productoID string) (*entity.ProductoTienda, error) {
	return r.get(`SELECT tienda_id, producto_id, stock_local, created_at, updated_at
		FROM productos_tienda WHERE tienda_id = $1 AND producto_id = $2 FOR UPDATE`, tiendaID, productoID)
}

func (r *ProductoTiendaRepo) get(query, tiendaID, productoID string) (*entity.ProductoTienda, error) {
	var pt entity.ProductoTienda
	err := r.q.QueryRow(context.Background(), query, tiendaID, productoID).Scan(
		&pt.TiendaID, &pt.ProductoID, &pt.StockLocal, &pt.CreatedAt, &pt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto_tienda: %w", err)
	}
	return &pt, nil
}

// ListByTienda lista las asignaciones de una tienda.
func (r *ProductoTiendaRepo) ListByTienda(tiendaID string) ([]*entity.ProductoTienda, error) {
	return r.list(`SELECT tienda_id, producto_id, stock_local, created_at, updated_at
		FROM productos_tienda WHERE tienda_id = $1 ORDER BY created_at`, tiendaID)
}

// ListBajoStock lista las asignaciones de la tienda con stock local por
// debajo del umbral.
func (r *ProductoTiendaRepo) ListBajoStock(tiendaID string, stockMinimo int) ([]*entity.ProductoTienda, error) {
	return r.list(`SELECT tienda_id, producto_id, stock_local, created_at, updated_at
		FROM productos_tienda WHERE tienda_id = $1 AND stock_local < $2 ORDER BY stock_local`, tiendaID, stockMinimo)
}

func (r *ProductoTiendaRepo) list(query string, args ...any) ([]*entity.ProductoTienda, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos_tienda: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductoTienda
	for rows.Next() {
		var pt entity.ProductoTienda
		if err := rows.Scan(&pt.TiendaID, &pt.ProductoID, &pt.StockLocal, &pt.CreatedAt, &pt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto_tienda: %w", err)
		}
		list = append(list, &pt)
	}
	return list, rows.Err()
}

// Create persiste una nueva asignación.
func (r *ProductoTiendaRepo) Create(pt *entity.ProductoTienda) error {
	query := `
		INSERT INTO productos_tienda (tienda_id, producto_id, stock_local, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		pt.TiendaID, pt.ProductoID, pt.StockLocal, pt.CreatedAt, pt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrYaAsignado
		}
		return fmt.Errorf("insert producto_tienda: %w", err)
	}
	return nil
}

// UpdateStockLocal fija el stock local de la asignación.
func (r *ProductoTiendaRepo) UpdateStockLocal(tiendaID, productoID string, stockLocal int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos_tienda SET stock_local = $3, updated_at = now() WHERE tienda_id = $1 AND producto_id = $2`,
		tiendaID, productoID, stockLocal,
	)
	if err != nil {
		return fmt.Errorf("update stock_local: %w", err)
	}
	return nil
}

// Delete elimina la asignación.
func (r *ProductoTiendaRepo) Delete(tiendaID, productoID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM productos_tienda WHERE tienda_id = $1 AND producto_id = $2`,
		tiendaID, productoID,
	)
	if err != nil {
		return fmt.Errorf("delete producto_tienda: %w", err)
	}
	return nil
}
