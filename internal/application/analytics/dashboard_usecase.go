package analytics

import (
	"time"

	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

// umbralStockBajo umbral por defecto para contar productos con poco stock.
const umbralStockBajo = 10

// DashboardUseCase arma los agregados de la pantalla de estadísticas.
type DashboardUseCase struct {
	estRepo     repository.EstadisticaRepository
	clienteRepo repository.ClienteRepository
	tiendaRepo  repository.TiendaRepository
	prodRepo    repository.ProductoRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	estRepo repository.EstadisticaRepository,
	clienteRepo repository.ClienteRepository,
	tiendaRepo repository.TiendaRepository,
	prodRepo repository.ProductoRepository,
) *DashboardUseCase {
	return &DashboardUseCase{estRepo: estRepo, clienteRepo: clienteRepo, tiendaRepo: tiendaRepo, prodRepo: prodRepo}
}

// Resumen devuelve las tarjetas del dashboard: ventas de hoy, de la última
// semana, totales, y conteos de clientes, tiendas y productos bajo stock.
func (uc *DashboardUseCase) Resumen() (*dto.ResumenEstadisticasResponse, error) {
	ahora := time.Now()
	inicioDia := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	inicioSemana := ahora.AddDate(0, 0, -7)

	ventasHoy, err := uc.estRepo.SumVentas(inicioDia, ahora)
	if err != nil {
		return nil, err
	}
	ventasSemana, err := uc.estRepo.SumVentas(inicioSemana, ahora)
	if err != nil {
		return nil, err
	}
	ventasTotales, err := uc.estRepo.SumVentasTotales()
	if err != nil {
		return nil, err
	}
	totalClientes, err := uc.clienteRepo.Count()
	if err != nil {
		return nil, err
	}
	totalTiendas, err := uc.tiendaRepo.Count()
	if err != nil {
		return nil, err
	}
	bajoStock, err := uc.prodRepo.ListBajoStock(umbralStockBajo)
	if err != nil {
		return nil, err
	}

	return &dto.ResumenEstadisticasResponse{
		VentasHoy:          ventasHoy,
		VentasSemana:       ventasSemana,
		TotalClientes:      totalClientes,
		TotalTiendas:       totalTiendas,
		ProductosStockBajo: len(bajoStock),
		VentasTotales:      ventasTotales,
	}, nil
}

// VentasPorCategoria agrega ventas por categoría de producto.
func (uc *DashboardUseCase) VentasPorCategoria() ([]dto.VentasPorGrupoResponse, error) {
	grupos, err := uc.estRepo.VentasPorCategoria()
	if err != nil {
		return nil, err
	}
	return mapGrupos(grupos), nil
}

// VentasPorTienda agrega ventas por tienda.
func (uc *DashboardUseCase) VentasPorTienda() ([]dto.VentasPorGrupoResponse, error) {
	grupos, err := uc.estRepo.VentasPorTienda()
	if err != nil {
		return nil, err
	}
	return mapGrupos(grupos), nil
}

// VentasMensuales agrega ventas por mes calendario.
func (uc *DashboardUseCase) VentasMensuales() ([]dto.VentasPorGrupoResponse, error) {
	grupos, err := uc.estRepo.VentasMensuales()
	if err != nil {
		return nil, err
	}
	return mapGrupos(grupos), nil
}

func mapGrupos(grupos []repository.VentasPorGrupo) []dto.VentasPorGrupoResponse {
	items := make([]dto.VentasPorGrupoResponse, 0, len(grupos))
	for _, g := range grupos {
		items = append(items, dto.VentasPorGrupoResponse{Grupo: g.Grupo, Total: g.Total})
	}
	return items
}
