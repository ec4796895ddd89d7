package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentasPorGrupo agregado de ventas por una dimensión (categoría, tienda o mes).
type VentasPorGrupo struct {
	Grupo string
	Total decimal.Decimal
}

// EstadisticaRepository define las consultas de agregación para el dashboard.
type EstadisticaRepository interface {
	SumVentas(inicio, fin time.Time) (decimal.Decimal, error)
	SumVentasTotales() (decimal.Decimal, error)
	VentasPorCategoria() ([]VentasPorGrupo, error)
	VentasPorTienda() ([]VentasPorGrupo, error)
	VentasMensuales() ([]VentasPorGrupo, error)
}
