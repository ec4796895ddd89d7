package dto

import "github.com/shopspring/decimal"

// ResumenEstadisticasResponse agregados para las tarjetas del dashboard.
type ResumenEstadisticasResponse struct {
	VentasHoy          decimal.Decimal `json:"ventasHoy"`
	VentasSemana       decimal.Decimal `json:"ventasSemana"`
	TotalClientes      int64           `json:"totalClientes"`
	TotalTiendas       int64           `json:"totalTiendas"`
	ProductosStockBajo int             `json:"productosStockBajo"`
	VentasTotales      decimal.Decimal `json:"ventasTotales"`
}

// VentasPorGrupoResponse un punto de las gráficas del dashboard
// (ventas por categoría, por tienda o por mes).
type VentasPorGrupoResponse struct {
	Grupo string          `json:"grupo"`
	Total decimal.Decimal `json:"total"`
}
