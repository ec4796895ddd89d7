package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

var _ repository.EstadisticaRepository = (*EstadisticaRepo)(nil)

// EstadisticaRepo consultas de agregación sobre ventas para el dashboard.
// Las agregaciones por categoría expanden los detalles JSONB de cada venta.
type EstadisticaRepo struct {
	q Querier
}

// NewEstadisticaRepository construye el adaptador de consultas estadísticas.
func NewEstadisticaRepository(q Querier) *EstadisticaRepo {
	return &EstadisticaRepo{q: q}
}

// SumVentas suma el total de ventas dentro del rango [inicio, fin].
func (r *EstadisticaRepo) SumVentas(inicio, fin time.Time) (decimal.Decimal, error) {
	return r.sum(`SELECT COALESCE(SUM(precio_total), 0) FROM ventas
		WHERE fecha_venta >= $1 AND fecha_venta <= $2`, inicio, fin)
}

// SumVentasTotales suma el total histórico de ventas.
func (r *EstadisticaRepo) SumVentasTotales() (decimal.Decimal, error) {
	return r.sum(`SELECT COALESCE(SUM(precio_total), 0) FROM ventas`)
}

func (r *EstadisticaRepo) sum(query string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum ventas: %w", err)
	}
	return total, nil
}

// VentasPorCategoria agrupa el importe vendido por categoría de producto,
// expandiendo las líneas de detalle de cada venta.
func (r *EstadisticaRepo) VentasPorCategoria() ([]repository.VentasPorGrupo, error) {
	return r.grupos(`
		SELECT p.categoria,
		       SUM((d->>'cantidad')::int * (d->>'precioUnitario')::numeric) AS total
		FROM ventas v
		CROSS JOIN LATERAL jsonb_array_elements(v.detalles) AS d
		JOIN productos p ON p.id = d->>'productoId'
		GROUP BY p.categoria
		ORDER BY total DESC`)
}

// VentasPorTienda agrupa el importe vendido por tienda.
func (r *EstadisticaRepo) VentasPorTienda() ([]repository.VentasPorGrupo, error) {
	return r.grupos(`
		SELECT t.nombre, SUM(v.precio_total) AS total
		FROM ventas v
		JOIN tiendas t ON t.id = v.tienda_id
		GROUP BY t.nombre
		ORDER BY total DESC`)
}

// VentasMensuales agrupa el importe vendido por mes (formato YYYY-MM).
func (r *EstadisticaRepo) VentasMensuales() ([]repository.VentasPorGrupo, error) {
	return r.grupos(`
		SELECT to_char(fecha_venta, 'YYYY-MM') AS mes, SUM(precio_total) AS total
		FROM ventas
		GROUP BY mes
		ORDER BY mes`)
}

func (r *EstadisticaRepo) grupos(query string) ([]repository.VentasPorGrupo, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("agrupar ventas: %w", err)
	}
	defer rows.Close()
	var grupos []repository.VentasPorGrupo
	for rows.Next() {
		var g repository.VentasPorGrupo
		if err := rows.Scan(&g.Grupo, &g.Total); err != nil {
			return nil, fmt.Errorf("scan grupo: %w", err)
		}
		grupos = append(grupos, g)
	}
	return grupos, rows.Err()
}
