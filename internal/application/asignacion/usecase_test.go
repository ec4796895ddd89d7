package asignacion_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sistema-ventas/internal/application/asignacion"
	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
	"github.com/tu-usuario/sistema-ventas/internal/domain"
	"github.com/tu-usuario/sistema-ventas/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de prueba: una tienda y un producto con 100 unidades en bodega.
// ──────────────────────────────────────────────────────────────────────────────

const (
	tiendaID   = "tienda-1"
	productoID = "producto-1"
)

func nuevoEntorno() (*memStore, *asignacion.UseCase) {
	s := newMemStore()
	s.tiendas[tiendaID] = entity.Tienda{ID: tiendaID, Nombre: "Centro"}
	s.productos[productoID] = entity.Producto{
		ID:     productoID,
		Codigo: "P-001",
		Nombre: "Teclado",
		Precio: decimal.NewFromFloat(25.50),
		Stock:  100,
	}
	uc := asignacion.NewUseCase(
		&fakeTxRunner{s: s},
		&fakeTiendaRepo{s: s},
		&fakeProductoRepo{s: s},
		&fakePTRepo{s: s},
	)
	return s, uc
}

// totalProducto suma bodega + asignado; debe ser constante salvo ventas.
func totalProducto(s *memStore) int {
	p := s.productos[productoID]
	return p.Stock + p.StockAsignado
}

func asignar(t *testing.T, uc *asignacion.UseCase, cantidad int) *dto.ProductoTiendaResponse {
	t.Helper()
	out, err := uc.Asignar(context.Background(), dto.AsignarProductoRequest{
		TiendaID:   tiendaID,
		ProductoID: productoID,
		Stock:      cantidad,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Asignar
// ──────────────────────────────────────────────────────────────────────────────

func TestAsignar_DescuentaDeBodega(t *testing.T) {
	s, uc := nuevoEntorno()

	out := asignar(t, uc, 40)

	assert.Equal(t, 40, out.Stock, "la asignación debe quedar con la cantidad pedida")
	assert.Equal(t, "Teclado", out.NombreProducto)
	assert.Equal(t, "Centro", out.NombreTienda)

	p := s.productos[productoID]
	assert.Equal(t, 60, p.Stock, "bodega debe bajar en la cantidad asignada")
	assert.Equal(t, 40, p.StockAsignado)
	assert.Equal(t, 100, totalProducto(s), "asignar no crea ni destruye unidades")
}

func TestAsignar_RechazaCantidadNoPositiva(t *testing.T) {
	_, uc := nuevoEntorno()

	for _, cantidad := range []int{0, -5} {
		_, err := uc.Asignar(context.Background(), dto.AsignarProductoRequest{
			TiendaID:   tiendaID,
			ProductoID: productoID,
			Stock:      cantidad,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestAsignar_RechazaExcesoSinAplicarNada(t *testing.T) {
	s, uc := nuevoEntorno()

	_, err := uc.Asignar(context.Background(), dto.AsignarProductoRequest{
		TiendaID:   tiendaID,
		ProductoID: productoID,
		Stock:      101,
	})
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	assert.Empty(t, s.asignaciones, "un rechazo no debe dejar asignación creada")
	assert.Equal(t, 100, s.productos[productoID].Stock, "bodega debe quedar intacta")
}

func TestAsignar_RechazaDuplicado(t *testing.T) {
	s, uc := nuevoEntorno()
	asignar(t, uc, 10)

	_, err := uc.Asignar(context.Background(), dto.AsignarProductoRequest{
		TiendaID:   tiendaID,
		ProductoID: productoID,
		Stock:      5,
	})
	assert.ErrorIs(t, err, domain.ErrYaAsignado)
	assert.Equal(t, 10, s.asignaciones[ptKey(tiendaID, productoID)].StockLocal,
		"la asignación original no debe cambiar")
	assert.Equal(t, 100, totalProducto(s))
}

func TestAsignar_TiendaInexistente(t *testing.T) {
	_, uc := nuevoEntorno()

	_, err := uc.Asignar(context.Background(), dto.AsignarProductoRequest{
		TiendaID:   "no-existe",
		ProductoID: productoID,
		Stock:      5,
	})
	assert.ErrorIs(t, err, domain.ErrTiendaNoExiste)
}

// ──────────────────────────────────────────────────────────────────────────────
// ActualizarStockLocal — la cantidad es el valor NUEVO, no un delta
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizar_SubirMueveDesdeBodega(t *testing.T) {
	s, uc := nuevoEntorno()
	asignar(t, uc, 30)

	out, err := uc.ActualizarStockLocal(context.Background(), tiendaID, productoID, 50)
	require.NoError(t, err)

	assert.Equal(t, 50, out.Stock)
	assert.Equal(t, 50, s.productos[productoID].Stock, "bodega baja solo el delta (20)")
	assert.Equal(t, 100, totalProducto(s))
}

func TestActualizar_BajarDevuelveABodega(t *testing.T) {
	s, uc := nuevoEntorno()
	asignar(t, uc, 30)

	out, err := uc.ActualizarStockLocal(context.Background(), tiendaID, productoID, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, out.Stock)
	assert.Equal(t, 90, s.productos[productoID].Stock, "el delta negativo vuelve a bodega")
	assert.Equal(t, 100, totalProducto(s))
}

func TestActualizar_RechazaExcesoSinAplicarNada(t *testing.T) {
	s, uc := nuevoEntorno()
	asignar(t, uc, 30)

	// máximo alcanzable: 30 locales + 70 en bodega = 100
	_, err := uc.ActualizarStockLocal(context.Background(), tiendaID, productoID, 101)
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	assert.Equal(t, 30, s.asignaciones[ptKey(tiendaID, productoID)].StockLocal)
	assert.Equal(t, 70, s.productos[productoID].Stock)
}

func TestActualizar_RechazaCantidadNegativa(t *testing.T) {
	_, uc := nuevoEntorno()
	asignar(t, uc, 30)

	_, err := uc.ActualizarStockLocal(context.Background(), tiendaID, productoID, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActualizar_ParNoAsignado(t *testing.T) {
	_, uc := nuevoEntorno()

	_, err := uc.ActualizarStockLocal(context.Background(), tiendaID, productoID, 5)
	assert.ErrorIs(t, err, domain.ErrNoAsignado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminar_DevuelveStockABodega(t *testing.T) {
	s, uc := nuevoEntorno()
	asignar(t, uc, 45)

	require.NoError(t, uc.Eliminar(context.Background(), tiendaID, productoID))

	assert.Empty(t, s.asignaciones)
	p := s.productos[productoID]
	assert.Equal(t, 100, p.Stock, "todo el stock local debe volver a bodega")
	assert.Equal(t, 0, p.StockAsignado)
}

func TestEliminar_ParNoAsignado(t *testing.T) {
	_, uc := nuevoEntorno()

	err := uc.Eliminar(context.Background(), tiendaID, productoID)
	assert.ErrorIs(t, err, domain.ErrNoAsignado)
}

// Secuencia asignar → actualizar → eliminar: las unidades se conservan en
// cada paso y el estado final es idéntico al inicial.
func TestSecuencia_ConservaUnidades(t *testing.T) {
	s, uc := nuevoEntorno()
	ctx := context.Background()

	asignar(t, uc, 25)
	assert.Equal(t, 100, totalProducto(s))

	_, err := uc.ActualizarStockLocal(ctx, tiendaID, productoID, 60)
	require.NoError(t, err)
	assert.Equal(t, 100, totalProducto(s))

	_, err = uc.ActualizarStockLocal(ctx, tiendaID, productoID, 5)
	require.NoError(t, err)
	assert.Equal(t, 100, totalProducto(s))

	require.NoError(t, uc.Eliminar(ctx, tiendaID, productoID))
	p := s.productos[productoID]
	assert.Equal(t, 100, p.Stock)
	assert.Equal(t, 0, p.StockAsignado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListarPorTienda_Denormaliza(t *testing.T) {
	_, uc := nuevoEntorno()
	asignar(t, uc, 12)

	items, err := uc.ListarPorTienda(tiendaID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Teclado", items[0].NombreProducto)
	assert.Equal(t, "P-001", items[0].CodigoProducto)
	assert.Equal(t, "Centro", items[0].NombreTienda)
	assert.True(t, decimal.NewFromFloat(25.50).Equal(items[0].PrecioProducto))
	assert.Equal(t, 12, items[0].Stock)
	assert.WithinDuration(t, time.Now(), items[0].UpdatedAt, time.Minute)
}

func TestListarBajoStock_FiltraPorUmbral(t *testing.T) {
	_, uc := nuevoEntorno()
	asignar(t, uc, 4)

	bajos, err := uc.ListarBajoStock(tiendaID, 10)
	require.NoError(t, err)
	assert.Len(t, bajos, 1)

	vacios, err := uc.ListarBajoStock(tiendaID, 3)
	require.NoError(t, err)
	assert.Empty(t, vacios)
}
