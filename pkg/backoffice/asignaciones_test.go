package backoffice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sistema-ventas/pkg/apiclient"
	"github.com/tu-usuario/sistema-ventas/pkg/backoffice"
)

// ──────────────────────────────────────────────────────────────────────────────
// API falso con la semántica real de asignaciones: asignar mueve unidades
// de bodega al stock local, eliminar las devuelve.
// ──────────────────────────────────────────────────────────────────────────────

type apiAsignaciones struct {
	productos    map[string]*apiclient.Producto
	asignaciones map[string]*apiclient.ProductoTienda // clave productoID (una sola tienda)
}

func nuevoAPIAsignaciones() *apiAsignaciones {
	return &apiAsignaciones{
		productos: map[string]*apiclient.Producto{
			"p1": {ID: "p1", Codigo: "P-001", Nombre: "Teclado", Precio: decimal.RequireFromString("5.00"), Stock: 10},
			"p2": {ID: "p2", Codigo: "P-002", Nombre: "Mouse", Precio: decimal.RequireFromString("3.50"), Stock: 0},
			"p3": {ID: "p3", Codigo: "P-003", Nombre: "Monitor", Precio: decimal.RequireFromString("120.00"), Stock: 4},
		},
		asignaciones: map[string]*apiclient.ProductoTienda{},
	}
}

func (f *apiAsignaciones) cliente(t *testing.T) *apiclient.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tiendas/{id}", func(w http.ResponseWriter, r *http.Request) {
		escribirSobre(w, http.StatusOK, apiclient.Tienda{ID: r.PathValue("id"), Nombre: "Centro"}, true, "Operación exitosa")
	})
	mux.HandleFunc("GET /productos", func(w http.ResponseWriter, r *http.Request) {
		out := make([]apiclient.Producto, 0, len(f.productos))
		for _, id := range []string{"p1", "p2", "p3"} {
			out = append(out, *f.productos[id])
		}
		escribirSobre(w, http.StatusOK, out, true, "Operación exitosa")
	})
	mux.HandleFunc("GET /productos/{id}", func(w http.ResponseWriter, r *http.Request) {
		escribirSobre(w, http.StatusOK, f.productos[r.PathValue("id")], true, "Operación exitosa")
	})
	mux.HandleFunc("GET /productos-tienda/tienda/{id}", func(w http.ResponseWriter, r *http.Request) {
		out := make([]apiclient.ProductoTienda, 0, len(f.asignaciones))
		for _, id := range []string{"p1", "p2", "p3"} {
			if pt, ok := f.asignaciones[id]; ok {
				out = append(out, *pt)
			}
		}
		escribirSobre(w, http.StatusOK, out, true, "Operación exitosa")
	})
	mux.HandleFunc("POST /productos-tienda", func(w http.ResponseWriter, r *http.Request) {
		var in apiclient.AsignacionInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		p := f.productos[in.ProductoID]
		if in.Stock > p.Stock {
			escribirSobre(w, http.StatusBadRequest, nil, false, "no hay suficiente stock disponible")
			return
		}
		if _, ya := f.asignaciones[in.ProductoID]; ya {
			escribirSobre(w, http.StatusConflict, nil, false, "el producto ya está asignado a esta tienda")
			return
		}
		p.Stock -= in.Stock
		p.StockAsignado += in.Stock
		pt := &apiclient.ProductoTienda{
			TiendaID: in.TiendaID, ProductoID: in.ProductoID, Stock: in.Stock,
			NombreProducto: p.Nombre, CodigoProducto: p.Codigo, PrecioProducto: p.Precio,
			NombreTienda: "Centro",
		}
		f.asignaciones[in.ProductoID] = pt
		escribirSobre(w, http.StatusCreated, pt, true, "Operación exitosa")
	})
	mux.HandleFunc("PUT /productos-tienda/{tienda}/{producto}", func(w http.ResponseWriter, r *http.Request) {
		productoID := r.PathValue("producto")
		cantidad, _ := strconv.Atoi(r.URL.Query().Get("cantidad"))
		pt := f.asignaciones[productoID]
		p := f.productos[productoID]
		delta := cantidad - pt.Stock
		if delta > p.Stock {
			escribirSobre(w, http.StatusBadRequest, nil, false, "no hay suficiente stock disponible")
			return
		}
		p.Stock -= delta
		p.StockAsignado += delta
		pt.Stock = cantidad
		escribirSobre(w, http.StatusOK, pt, true, "Operación exitosa")
	})
	mux.HandleFunc("DELETE /productos-tienda/{tienda}/{producto}", func(w http.ResponseWriter, r *http.Request) {
		productoID := r.PathValue("producto")
		pt := f.asignaciones[productoID]
		p := f.productos[productoID]
		p.Stock += pt.Stock
		p.StockAsignado -= pt.Stock
		delete(f.asignaciones, productoID)
		escribirSobre(w, http.StatusOK, nil, true, "Operación exitosa")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return apiclient.New(apiclient.Config{BaseURL: srv.URL})
}

func motorConTienda(t *testing.T, f *apiAsignaciones) *backoffice.Asignaciones {
	t.Helper()
	m := backoffice.NewAsignaciones(f.cliente(t))
	require.NoError(t, m.SeleccionarTienda(context.Background(), "t1"))
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// Conjunto elegible
// ──────────────────────────────────────────────────────────────────────────────

// Solo son elegibles los productos con stock en bodega y sin asignación
// previa en la tienda.
func TestSeleccionarTienda_ExcluyeSinStockYAsignados(t *testing.T) {
	f := nuevoAPIAsignaciones()
	m := motorConTienda(t, f)

	estado := m.Estado()
	require.Len(t, estado.Seleccionables, 2, "p2 no tiene stock en bodega")
	assert.Equal(t, "p1", estado.Seleccionables[0].ID)
	assert.Equal(t, "p3", estado.Seleccionables[1].ID)
	assert.Empty(t, estado.Asignaciones)
}

func TestAsignar_SacaElProductoDeLosElegibles(t *testing.T) {
	f := nuevoAPIAsignaciones()
	m := motorConTienda(t, f)

	require.NoError(t, m.Asignar(context.Background(), "p1", 6))

	estado := m.Estado()
	require.Len(t, estado.Asignaciones, 1)
	assert.Equal(t, 6, estado.Asignaciones[0].Stock)
	require.Len(t, estado.Seleccionables, 1, "p1 asignado ya no es elegible")
	assert.Equal(t, "p3", estado.Seleccionables[0].ID)
}

func TestAsignar_RechazaDuplicadoLocalmente(t *testing.T) {
	f := nuevoAPIAsignaciones()
	m := motorConTienda(t, f)
	require.NoError(t, m.Asignar(context.Background(), "p1", 2))

	err := m.Asignar(context.Background(), "p1", 1)
	assert.ErrorIs(t, err, backoffice.ErrProductoNoElegible,
		"el producto asignado sale del conjunto elegible")
}

func TestAsignar_ValidaCantidadLocalmente(t *testing.T) {
	f := nuevoAPIAsignaciones()
	m := motorConTienda(t, f)

	assert.ErrorIs(t, m.Asignar(context.Background(), "p1", 0), backoffice.ErrCantidadInvalida)
	assert.ErrorIs(t, m.Asignar(context.Background(), "p1", 11), backoffice.ErrCantidadExcede)
	assert.ErrorIs(t, m.Asignar(context.Background(), "p2", 1), backoffice.ErrProductoNoElegible)
}

func TestSinTiendaSeleccionada(t *testing.T) {
	f := nuevoAPIAsignaciones()
	m := backoffice.NewAsignaciones(f.cliente(t))

	assert.ErrorIs(t, m.Asignar(context.Background(), "p1", 1), backoffice.ErrSinTienda)
	assert.ErrorIs(t, m.Eliminar(context.Background(), "p1"), backoffice.ErrSinTienda)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualizar y eliminar recargan las listas
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarAsignacion_NuevaCantidad(t *testing.T) {
	f := nuevoAPIAsignaciones()
	m := motorConTienda(t, f)
	require.NoError(t, m.Asignar(context.Background(), "p1", 4))

	require.NoError(t, m.ActualizarAsignacion(context.Background(), "p1", 9))

	estado := m.Estado()
	assert.Equal(t, 9, estado.Asignaciones[0].Stock, "la cantidad es el valor nuevo, no un delta")
	assert.Equal(t, 1, f.productos["p1"].Stock)
}

func TestActualizarAsignacion_RechazaExcesoLocalmente(t *testing.T) {
	f := nuevoAPIAsignaciones()
	m := motorConTienda(t, f)
	require.NoError(t, m.Asignar(context.Background(), "p1", 4))

	// máximo alcanzable: 4 asignadas + 6 en bodega
	err := m.ActualizarAsignacion(context.Background(), "p1", 11)
	assert.ErrorIs(t, err, backoffice.ErrCantidadExcede)
	assert.Equal(t, 4, m.Estado().Asignaciones[0].Stock)
}

func TestEliminar_DevuelveElProductoALosElegibles(t *testing.T) {
	f := nuevoAPIAsignaciones()
	m := motorConTienda(t, f)
	require.NoError(t, m.Asignar(context.Background(), "p1", 10))

	// Con todo su stock asignado, p1 tampoco es elegible por bodega vacía.
	require.Empty(t, f.productos["p1"].Stock)

	require.NoError(t, m.Eliminar(context.Background(), "p1"))

	estado := m.Estado()
	assert.Empty(t, estado.Asignaciones)
	require.Len(t, estado.Seleccionables, 2, "el stock devuelto vuelve a hacer elegible a p1")
	assert.Equal(t, 10, f.productos["p1"].Stock)
}
