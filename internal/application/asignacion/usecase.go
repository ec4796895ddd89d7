package asignacion

import (
	"context"
	"time"

	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
	"github.com/tu-usuario/sistema-ventas/internal/domain"
	"github.com/tu-usuario/sistema-ventas/internal/domain/entity"
	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

// UseCase gobierna cuánto stock de un producto puede asignarse a cada
// tienda. Toda mutación corre en una transacción con bloqueo de la fila
// del producto (SELECT FOR UPDATE), de modo que en todo momento
// Stock + StockAsignado del producto se conserve frente a asignaciones,
// ajustes y eliminaciones.
type UseCase struct {
	txRunner   TxRunner
	tiendaRepo repository.TiendaRepository
	prodRepo   repository.ProductoRepository
	ptRepo     repository.ProductoTiendaRepository
}

// NewUseCase construye el motor de asignación.
func NewUseCase(
	txRunner TxRunner,
	tiendaRepo repository.TiendaRepository,
	prodRepo repository.ProductoRepository,
	ptRepo repository.ProductoTiendaRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, tiendaRepo: tiendaRepo, prodRepo: prodRepo, ptRepo: ptRepo}
}

// Asignar crea la asignación (tienda, producto) con la cantidad indicada,
// descontándola del stock de bodega. Falla si la cantidad no es positiva,
// si el par ya existe o si excede el stock sin asignar; nunca aplica
// parcialmente.
func (uc *UseCase) Asignar(ctx context.Context, in dto.AsignarProductoRequest) (*dto.ProductoTiendaResponse, error) {
	if in.TiendaID == "" || in.ProductoID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 1 {
		return nil, domain.ErrInvalidInput
	}
	tienda, err := uc.tiendaRepo.GetByID(in.TiendaID)
	if err != nil {
		return nil, err
	}
	if tienda == nil {
		return nil, domain.ErrTiendaNoExiste
	}

	var out *dto.ProductoTiendaResponse
	err = uc.txRunner.Run(ctx, func(
		prodRepo repository.ProductoRepository,
		ptRepo repository.ProductoTiendaRepository,
	) error {
		producto, err := prodRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrProductoNoExiste
		}
		existente, err := ptRepo.Get(in.TiendaID, in.ProductoID)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrYaAsignado
		}
		if in.Stock > producto.Stock {
			return domain.ErrStockInsuficiente
		}
		now := time.Now()
		pt := &entity.ProductoTienda{
			TiendaID:   in.TiendaID,
			ProductoID: in.ProductoID,
			StockLocal: in.Stock,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := ptRepo.Create(pt); err != nil {
			return err
		}
		if err := prodRepo.UpdateStocks(producto.ID, producto.Stock-in.Stock, producto.StockAsignado+in.Stock); err != nil {
			return err
		}
		out = toResponse(pt, producto, tienda)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ActualizarStockLocal fija la asignación en la NUEVA cantidad indicada.
// El delta (nueva - actual) debe caber en el stock sin asignar del
// producto; un delta negativo devuelve unidades a bodega.
func (uc *UseCase) ActualizarStockLocal(ctx context.Context, tiendaID, productoID string, cantidad int) (*dto.ProductoTiendaResponse, error) {
	if cantidad < 0 {
		return nil, domain.ErrInvalidInput
	}
	tienda, err := uc.tiendaRepo.GetByID(tiendaID)
	if err != nil {
		return nil, err
	}
	if tienda == nil {
		return nil, domain.ErrTiendaNoExiste
	}

	var out *dto.ProductoTiendaResponse
	err = uc.txRunner.Run(ctx, func(
		prodRepo repository.ProductoRepository,
		ptRepo repository.ProductoTiendaRepository,
	) error {
		producto, err := prodRepo.GetForUpdate(productoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrProductoNoExiste
		}
		pt, err := ptRepo.GetForUpdate(tiendaID, productoID)
		if err != nil {
			return err
		}
		if pt == nil {
			return domain.ErrNoAsignado
		}
		delta := cantidad - pt.StockLocal
		if delta > producto.Stock {
			return domain.ErrStockInsuficiente
		}
		pt.StockLocal = cantidad
		pt.UpdatedAt = time.Now()
		if err := ptRepo.UpdateStockLocal(tiendaID, productoID, cantidad); err != nil {
			return err
		}
		if err := prodRepo.UpdateStocks(producto.ID, producto.Stock-delta, producto.StockAsignado+delta); err != nil {
			return err
		}
		out = toResponse(pt, producto, tienda)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Eliminar quita la asignación y devuelve su stock a bodega.
func (uc *UseCase) Eliminar(ctx context.Context, tiendaID, productoID string) error {
	return uc.txRunner.Run(ctx, func(
		prodRepo repository.ProductoRepository,
		ptRepo repository.ProductoTiendaRepository,
	) error {
		producto, err := prodRepo.GetForUpdate(productoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrProductoNoExiste
		}
		pt, err := ptRepo.GetForUpdate(tiendaID, productoID)
		if err != nil {
			return err
		}
		if pt == nil {
			return domain.ErrNoAsignado
		}
		if err := ptRepo.Delete(tiendaID, productoID); err != nil {
			return err
		}
		return prodRepo.UpdateStocks(producto.ID, producto.Stock+pt.StockLocal, producto.StockAsignado-pt.StockLocal)
	})
}

// ListarPorTienda lista las asignaciones de una tienda con los datos
// denormalizados del producto para los listados.
func (uc *UseCase) ListarPorTienda(tiendaID string) ([]dto.ProductoTiendaResponse, error) {
	tienda, err := uc.tiendaRepo.GetByID(tiendaID)
	if err != nil {
		return nil, err
	}
	if tienda == nil {
		return nil, domain.ErrTiendaNoExiste
	}
	asignaciones, err := uc.ptRepo.ListByTienda(tiendaID)
	if err != nil {
		return nil, err
	}
	return uc.denormalizar(asignaciones, tienda)
}

// ListarBajoStock lista las asignaciones de la tienda por debajo del umbral.
func (uc *UseCase) ListarBajoStock(tiendaID string, stockMinimo int) ([]dto.ProductoTiendaResponse, error) {
	tienda, err := uc.tiendaRepo.GetByID(tiendaID)
	if err != nil {
		return nil, err
	}
	if tienda == nil {
		return nil, domain.ErrTiendaNoExiste
	}
	asignaciones, err := uc.ptRepo.ListBajoStock(tiendaID, stockMinimo)
	if err != nil {
		return nil, err
	}
	return uc.denormalizar(asignaciones, tienda)
}

func (uc *UseCase) denormalizar(asignaciones []*entity.ProductoTienda, tienda *entity.Tienda) ([]dto.ProductoTiendaResponse, error) {
	items := make([]dto.ProductoTiendaResponse, 0, len(asignaciones))
	for _, pt := range asignaciones {
		producto, err := uc.prodRepo.GetByID(pt.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			continue
		}
		items = append(items, *toResponse(pt, producto, tienda))
	}
	return items, nil
}

func toResponse(pt *entity.ProductoTienda, producto *entity.Producto, tienda *entity.Tienda) *dto.ProductoTiendaResponse {
	return &dto.ProductoTiendaResponse{
		TiendaID:       pt.TiendaID,
		ProductoID:     pt.ProductoID,
		Stock:          pt.StockLocal,
		NombreProducto: producto.Nombre,
		CodigoProducto: producto.Codigo,
		PrecioProducto: producto.Precio,
		NombreTienda:   tienda.Nombre,
		UpdatedAt:      pt.UpdatedAt,
	}
}
