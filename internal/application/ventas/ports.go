package ventas

import (
	"context"

	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

// TxRunner ejecuta el registro de una venta dentro de una transacción:
// descuento de stock por tienda y escritura de la venta, todo o nada.
type TxRunner interface {
	RunVenta(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		ptRepo repository.ProductoTiendaRepository,
		ventaRepo repository.VentaRepository,
	) error) error
}
