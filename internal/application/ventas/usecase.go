package ventas

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
	"github.com/tu-usuario/sistema-ventas/internal/domain"
	"github.com/tu-usuario/sistema-ventas/internal/domain/entity"
	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

// UseCase registra ventas y expone los listados. El total se calcula en el
// servidor (Σ cantidad × precio unitario); cada línea descuenta del stock
// asignado a la tienda, nunca de bodega: lo vendido sale del sistema.
type UseCase struct {
	txRunner    TxRunner
	clienteRepo repository.ClienteRepository
	tiendaRepo  repository.TiendaRepository
	ventaRepo   repository.VentaRepository
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	txRunner TxRunner,
	clienteRepo repository.ClienteRepository,
	tiendaRepo repository.TiendaRepository,
	ventaRepo repository.VentaRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, clienteRepo: clienteRepo, tiendaRepo: tiendaRepo, ventaRepo: ventaRepo}
}

// Registrar valida y persiste una venta. Cualquier línea inválida (producto
// no asignado a la tienda o cantidad mayor al stock local) aborta la venta
// completa.
func (uc *UseCase) Registrar(ctx context.Context, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	if in.ClienteID == "" || in.TiendaID == "" || len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, d := range in.Detalles {
		if d.ProductoID == "" || d.Cantidad < 1 || !d.PrecioUnitario.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNoExiste
	}
	tienda, err := uc.tiendaRepo.GetByID(in.TiendaID)
	if err != nil {
		return nil, err
	}
	if tienda == nil {
		return nil, domain.ErrTiendaNoExiste
	}

	total := decimal.Zero
	for _, d := range in.Detalles {
		total = total.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))))
	}

	detalles := make([]entity.DetalleVenta, 0, len(in.Detalles))
	for _, d := range in.Detalles {
		detalles = append(detalles, entity.DetalleVenta{
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
		})
	}
	detallesJSON, err := json.Marshal(detalles)
	if err != nil {
		return nil, err
	}

	venta := &entity.Venta{
		ID:          uuid.New().String(),
		ClienteID:   in.ClienteID,
		TiendaID:    in.TiendaID,
		FechaVenta:  time.Now(),
		PrecioTotal: total,
		Detalles:    detallesJSON,
	}

	err = uc.txRunner.RunVenta(ctx, func(
		prodRepo repository.ProductoRepository,
		ptRepo repository.ProductoTiendaRepository,
		ventaRepo repository.VentaRepository,
	) error {
		for _, d := range in.Detalles {
			pt, err := ptRepo.GetForUpdate(in.TiendaID, d.ProductoID)
			if err != nil {
				return err
			}
			if pt == nil {
				return domain.ErrNoAsignado
			}
			if d.Cantidad > pt.StockLocal {
				return domain.ErrStockTiendaExcede
			}
			if err := ptRepo.UpdateStockLocal(in.TiendaID, d.ProductoID, pt.StockLocal-d.Cantidad); err != nil {
				return err
			}
			producto, err := prodRepo.GetForUpdate(d.ProductoID)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.ErrProductoNoExiste
			}
			// Lo vendido sale del stock asignado; bodega no cambia.
			if err := prodRepo.UpdateStocks(producto.ID, producto.Stock, producto.StockAsignado-d.Cantidad); err != nil {
				return err
			}
		}
		return ventaRepo.Create(venta)
	})
	if err != nil {
		return nil, err
	}

	out := uc.toResponse(venta)
	out.NombreCliente = cliente.Nombre
	out.NombreTienda = tienda.Nombre
	return out, nil
}

// GetByID obtiene una venta por ID.
func (uc *UseCase) GetByID(id string) (*dto.VentaResponse, error) {
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, nil
	}
	return uc.denormalizar(venta), nil
}

// List lista todas las ventas.
func (uc *UseCase) List() ([]dto.VentaResponse, error) {
	list, err := uc.ventaRepo.List()
	if err != nil {
		return nil, err
	}
	return uc.mapear(list), nil
}

// ListPorFecha lista las ventas dentro del rango [inicio, fin].
func (uc *UseCase) ListPorFecha(inicio, fin time.Time) ([]dto.VentaResponse, error) {
	if fin.Before(inicio) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.ventaRepo.ListPorFecha(inicio, fin)
	if err != nil {
		return nil, err
	}
	return uc.mapear(list), nil
}

// ListPorTienda lista las ventas de una tienda.
func (uc *UseCase) ListPorTienda(tiendaID string) ([]dto.VentaResponse, error) {
	tienda, err := uc.tiendaRepo.GetByID(tiendaID)
	if err != nil {
		return nil, err
	}
	if tienda == nil {
		return nil, domain.ErrTiendaNoExiste
	}
	list, err := uc.ventaRepo.ListPorTienda(tiendaID)
	if err != nil {
		return nil, err
	}
	return uc.mapear(list), nil
}

func (uc *UseCase) mapear(list []*entity.Venta) []dto.VentaResponse {
	items := make([]dto.VentaResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *uc.denormalizar(v))
	}
	return items
}

func (uc *UseCase) denormalizar(v *entity.Venta) *dto.VentaResponse {
	out := uc.toResponse(v)
	if cliente, err := uc.clienteRepo.GetByID(v.ClienteID); err == nil && cliente != nil {
		out.NombreCliente = cliente.Nombre
	}
	if tienda, err := uc.tiendaRepo.GetByID(v.TiendaID); err == nil && tienda != nil {
		out.NombreTienda = tienda.Nombre
	}
	return out
}

func (uc *UseCase) toResponse(v *entity.Venta) *dto.VentaResponse {
	var detalles []dto.DetalleVentaRequest
	_ = json.Unmarshal(v.Detalles, &detalles)
	return &dto.VentaResponse{
		ID:          v.ID,
		ClienteID:   v.ClienteID,
		TiendaID:    v.TiendaID,
		FechaVenta:  v.FechaVenta,
		PrecioTotal: v.PrecioTotal,
		Detalles:    detalles,
	}
}
