package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/sistema-ventas/internal/domain/entity"
	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

const ventaColumns = `id, cliente_id, tienda_id, fecha_venta, precio_total, detalles`

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL.
// Los detalles de la venta se persisten en una columna JSONB.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de persistencia de ventas.
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste una venta con sus detalles.
func (r *VentaRepo) Create(venta *entity.Venta) error {
	query := `
		INSERT INTO ventas (id, cliente_id, tienda_id, fecha_venta, precio_total, detalles)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.ClienteID, venta.TiendaID, venta.FechaVenta, venta.PrecioTotal, venta.Detalles,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por id, o nil si no existe.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	var v entity.Venta
	err := r.q.QueryRow(context.Background(),
		`SELECT `+ventaColumns+` FROM ventas WHERE id = $1`, id,
	).Scan(&v.ID, &v.ClienteID, &v.TiendaID, &v.FechaVenta, &v.PrecioTotal, &v.Detalles)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// List lista todas las ventas, las más recientes primero.
func (r *VentaRepo) List() ([]*entity.Venta, error) {
	return r.list(`SELECT ` + ventaColumns + ` FROM ventas ORDER BY fecha_venta DESC`)
}

// ListPorFecha lista las ventas dentro del rango [inicio, fin].
func (r *VentaRepo) ListPorFecha(inicio, fin time.Time) ([]*entity.Venta, error) {
	return r.list(`SELECT `+ventaColumns+` FROM ventas
		WHERE fecha_venta >= $1 AND fecha_venta <= $2 ORDER BY fecha_venta DESC`, inicio, fin)
}

// ListPorTienda lista las ventas de una tienda.
func (r *VentaRepo) ListPorTienda(tiendaID string) ([]*entity.Venta, error) {
	return r.list(`SELECT `+ventaColumns+` FROM ventas
		WHERE tienda_id = $1 ORDER BY fecha_venta DESC`, tiendaID)
}

func (r *VentaRepo) list(query string, args ...any) ([]*entity.Venta, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var ventas []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.ClienteID, &v.TiendaID, &v.FechaVenta, &v.PrecioTotal, &v.Detalles); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		ventas = append(ventas, &v)
	}
	return ventas, rows.Err()
}
