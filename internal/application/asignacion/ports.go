package asignacion

import (
	"context"

	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la fila de asignación y los
// contadores de stock del producto cambien atómicamente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		ptRepo repository.ProductoTiendaRepository,
	) error) error
}
