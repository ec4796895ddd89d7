// Package backoffice contiene los motores de estado de las pantallas de
// administración: asignación de stock por tienda y composición de ventas.
// Cada motor expone instantáneas inmutables de su estado; toda mutación
// valida localmente, llama al API y recarga las listas completas.
package backoffice

import (
	"context"
	"errors"

	"github.com/tu-usuario/sistema-ventas/pkg/apiclient"
)

// Errores de validación local del motor de asignaciones.
var (
	ErrSinTienda          = errors.New("seleccione una tienda")
	ErrProductoNoElegible = errors.New("el producto no está disponible para asignar")
	ErrCantidadInvalida   = errors.New("la cantidad debe ser mayor que cero")
	ErrCantidadExcede     = errors.New("la cantidad excede el stock disponible")
)

// EstadoAsignaciones instantánea de la pantalla de asignaciones: la tienda
// seleccionada, sus asignaciones y el conjunto de productos elegibles
// (no asignados aún a esa tienda y con stock en bodega).
type EstadoAsignaciones struct {
	Tienda         apiclient.Tienda
	Asignaciones   []apiclient.ProductoTienda
	Seleccionables []apiclient.Producto
}

// Asignaciones motor de la pantalla de asignación producto-tienda.
type Asignaciones struct {
	api     *apiclient.Client
	estado  EstadoAsignaciones
	cargado bool
}

// NewAsignaciones construye el motor sin tienda seleccionada.
func NewAsignaciones(api *apiclient.Client) *Asignaciones {
	return &Asignaciones{api: api}
}

// Estado devuelve la instantánea vigente. Las listas se copian: mutar el
// resultado no afecta al motor.
func (a *Asignaciones) Estado() EstadoAsignaciones {
	out := a.estado
	out.Asignaciones = append([]apiclient.ProductoTienda(nil), a.estado.Asignaciones...)
	out.Seleccionables = append([]apiclient.Producto(nil), a.estado.Seleccionables...)
	return out
}

// SeleccionarTienda fija la tienda de trabajo y carga sus asignaciones y
// el catálogo elegible. Si alguna carga falla, el estado no cambia.
func (a *Asignaciones) SeleccionarTienda(ctx context.Context, tiendaID string) error {
	tienda, err := a.api.Tiendas.Obtener(ctx, tiendaID)
	if err != nil {
		return err
	}
	asignaciones, seleccionables, err := a.cargarListas(ctx, tiendaID)
	if err != nil {
		return err
	}
	a.estado = EstadoAsignaciones{
		Tienda:         tienda,
		Asignaciones:   asignaciones,
		Seleccionables: seleccionables,
	}
	a.cargado = true
	return nil
}

// Asignar asigna cantidad unidades del producto a la tienda seleccionada.
// El producto debe estar en el conjunto elegible y la cantidad dentro del
// stock de bodega; tras el alta se recargan ambas listas.
func (a *Asignaciones) Asignar(ctx context.Context, productoID string, cantidad int) error {
	if !a.cargado {
		return ErrSinTienda
	}
	if cantidad < 1 {
		return ErrCantidadInvalida
	}
	producto, ok := a.seleccionable(productoID)
	if !ok {
		return ErrProductoNoElegible
	}
	if cantidad > producto.Stock {
		return ErrCantidadExcede
	}
	_, err := a.api.ProductosTienda.Asignar(ctx, apiclient.AsignacionInput{
		TiendaID:   a.estado.Tienda.ID,
		ProductoID: productoID,
		Stock:      cantidad,
	})
	if err != nil {
		return err
	}
	return a.recargar(ctx)
}

// ActualizarAsignacion fija el stock local de la asignación en cantidad
// (valor nuevo, no delta). El incremento no puede exceder lo que queda en
// bodega.
func (a *Asignaciones) ActualizarAsignacion(ctx context.Context, productoID string, cantidad int) error {
	if !a.cargado {
		return ErrSinTienda
	}
	if cantidad < 0 {
		return ErrCantidadInvalida
	}
	actual, ok := a.asignada(productoID)
	if !ok {
		return ErrProductoNoElegible
	}
	if delta := cantidad - actual.Stock; delta > 0 && delta > a.stockBodega(ctx, productoID) {
		return ErrCantidadExcede
	}
	_, err := a.api.ProductosTienda.ActualizarStock(ctx, a.estado.Tienda.ID, productoID, cantidad)
	if err != nil {
		return err
	}
	return a.recargar(ctx)
}

// Eliminar quita el producto de la tienda; su stock local vuelve a bodega
// y el producto reaparece entre los elegibles.
func (a *Asignaciones) Eliminar(ctx context.Context, productoID string) error {
	if !a.cargado {
		return ErrSinTienda
	}
	if _, ok := a.asignada(productoID); !ok {
		return ErrProductoNoElegible
	}
	if err := a.api.ProductosTienda.Eliminar(ctx, a.estado.Tienda.ID, productoID); err != nil {
		return err
	}
	return a.recargar(ctx)
}

// recargar vuelve a pedir asignaciones y catálogo tras una mutación.
func (a *Asignaciones) recargar(ctx context.Context) error {
	asignaciones, seleccionables, err := a.cargarListas(ctx, a.estado.Tienda.ID)
	if err != nil {
		return err
	}
	a.estado.Asignaciones = asignaciones
	a.estado.Seleccionables = seleccionables
	return nil
}

func (a *Asignaciones) cargarListas(ctx context.Context, tiendaID string) ([]apiclient.ProductoTienda, []apiclient.Producto, error) {
	asignaciones, err := a.api.ProductosTienda.PorTienda(ctx, tiendaID)
	if err != nil {
		return nil, nil, err
	}
	productos, err := a.api.Productos.Listar(ctx)
	if err != nil {
		return nil, nil, err
	}
	asignados := make(map[string]struct{}, len(asignaciones))
	for _, pt := range asignaciones {
		asignados[pt.ProductoID] = struct{}{}
	}
	seleccionables := make([]apiclient.Producto, 0, len(productos))
	for _, p := range productos {
		if _, ya := asignados[p.ID]; ya {
			continue
		}
		if p.Stock < 1 {
			continue
		}
		seleccionables = append(seleccionables, p)
	}
	return asignaciones, seleccionables, nil
}

func (a *Asignaciones) seleccionable(productoID string) (apiclient.Producto, bool) {
	for _, p := range a.estado.Seleccionables {
		if p.ID == productoID {
			return p, true
		}
	}
	return apiclient.Producto{}, false
}

func (a *Asignaciones) asignada(productoID string) (apiclient.ProductoTienda, bool) {
	for _, pt := range a.estado.Asignaciones {
		if pt.ProductoID == productoID {
			return pt, true
		}
	}
	return apiclient.ProductoTienda{}, false
}

// stockBodega consulta el stock sin asignar vigente del producto. Si la
// consulta falla se devuelve 0 y la validación rechaza el incremento; el
// servidor revalida de todos modos.
func (a *Asignaciones) stockBodega(ctx context.Context, productoID string) int {
	producto, err := a.api.Productos.Obtener(ctx, productoID)
	if err != nil {
		return 0
	}
	return producto.Stock
}
