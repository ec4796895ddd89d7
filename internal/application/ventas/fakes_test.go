package ventas_test

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/sistema-ventas/internal/domain"
	"github.com/tu-usuario/sistema-ventas/internal/domain/entity"
	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

// Fakes en memoria. RunVenta trabaja sobre una copia y solo la publica si
// fn no falla, reproduciendo el rollback transaccional.

type memStore struct {
	clientes     map[string]entity.Cliente
	tiendas      map[string]entity.Tienda
	productos    map[string]entity.Producto
	asignaciones map[string]entity.ProductoTienda // clave tiendaID|productoID
	ventas       map[string]entity.Venta
}

func newMemStore() *memStore {
	return &memStore{
		clientes:     map[string]entity.Cliente{},
		tiendas:      map[string]entity.Tienda{},
		productos:    map[string]entity.Producto{},
		asignaciones: map[string]entity.ProductoTienda{},
		ventas:       map[string]entity.Venta{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.clientes {
		c.clientes[k] = v
	}
	for k, v := range s.tiendas {
		c.tiendas[k] = v
	}
	for k, v := range s.productos {
		c.productos[k] = v
	}
	for k, v := range s.asignaciones {
		c.asignaciones[k] = v
	}
	for k, v := range s.ventas {
		c.ventas[k] = v
	}
	return c
}

func ptKey(tiendaID, productoID string) string { return tiendaID + "|" + productoID }

type fakeClienteRepo struct{ s *memStore }

func (r *fakeClienteRepo) Create(c *entity.Cliente) error {
	r.s.clientes[c.ID] = *c
	return nil
}

func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	if c, ok := r.s.clientes[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *fakeClienteRepo) GetByIdentificacion(identificacion string) (*entity.Cliente, error) {
	for _, c := range r.s.clientes {
		if c.Identificacion == identificacion {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeClienteRepo) Update(c *entity.Cliente) error {
	r.s.clientes[c.ID] = *c
	return nil
}

func (r *fakeClienteRepo) List() ([]*entity.Cliente, error) { return nil, nil }

func (r *fakeClienteRepo) Delete(id string) error {
	delete(r.s.clientes, id)
	return nil
}

func (r *fakeClienteRepo) Count() (int64, error) { return int64(len(r.s.clientes)), nil }

type fakeTiendaRepo struct{ s *memStore }

func (r *fakeTiendaRepo) Create(t *entity.Tienda) error {
	r.s.tiendas[t.ID] = *t
	return nil
}

func (r *fakeTiendaRepo) GetByID(id string) (*entity.Tienda, error) {
	if t, ok := r.s.tiendas[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *fakeTiendaRepo) Update(t *entity.Tienda) error {
	r.s.tiendas[t.ID] = *t
	return nil
}

func (r *fakeTiendaRepo) List() ([]*entity.Tienda, error) { return nil, nil }

func (r *fakeTiendaRepo) Delete(id string) error {
	delete(r.s.tiendas, id)
	return nil
}

func (r *fakeTiendaRepo) Count() (int64, error) { return int64(len(r.s.tiendas)), nil }

type fakeProductoRepo struct{ s *memStore }

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	r.s.productos[p.ID] = *p
	return nil
}

func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	if p, ok := r.s.productos[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) { return r.GetByID(id) }

func (r *fakeProductoRepo) GetByCodigo(string) (*entity.Producto, error) { return nil, nil }

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	r.s.productos[p.ID] = *p
	return nil
}

func (r *fakeProductoRepo) UpdateStocks(id string, stock, stockAsignado int) error {
	p, ok := r.s.productos[id]
	if !ok {
		return domain.ErrProductoNoExiste
	}
	p.Stock = stock
	p.StockAsignado = stockAsignado
	r.s.productos[id] = p
	return nil
}

func (r *fakeProductoRepo) IncrementStock(id string, delta int) error {
	p, ok := r.s.productos[id]
	if !ok {
		return domain.ErrProductoNoExiste
	}
	p.Stock += delta
	r.s.productos[id] = p
	return nil
}

func (r *fakeProductoRepo) List() ([]*entity.Producto, error) { return nil, nil }

func (r *fakeProductoRepo) ListBajoStock(int) ([]*entity.Producto, error) { return nil, nil }

func (r *fakeProductoRepo) Delete(id string) error {
	delete(r.s.productos, id)
	return nil
}

type fakePTRepo struct{ s *memStore }

func (r *fakePTRepo) Get(tiendaID, productoID string) (*entity.ProductoTienda, error) {
	if pt, ok := r.s.asignaciones[ptKey(tiendaID, productoID)]; ok {
		return &pt, nil
	}
	return nil, nil
}

func (r *fakePTRepo) GetForUpdate(tiendaID, productoID string) (*entity.ProductoTienda, error) {
	return r.Get(tiendaID, productoID)
}

func (r *fakePTRepo) ListByTienda(string) ([]*entity.ProductoTienda, error) { return nil, nil }

func (r *fakePTRepo) ListBajoStock(string, int) ([]*entity.ProductoTienda, error) {
	return nil, nil
}

func (r *fakePTRepo) Create(pt *entity.ProductoTienda) error {
	r.s.asignaciones[ptKey(pt.TiendaID, pt.ProductoID)] = *pt
	return nil
}

func (r *fakePTRepo) UpdateStockLocal(tiendaID, productoID string, stockLocal int) error {
	key := ptKey(tiendaID, productoID)
	pt, ok := r.s.asignaciones[key]
	if !ok {
		return domain.ErrNoAsignado
	}
	pt.StockLocal = stockLocal
	r.s.asignaciones[key] = pt
	return nil
}

func (r *fakePTRepo) Delete(tiendaID, productoID string) error {
	delete(r.s.asignaciones, ptKey(tiendaID, productoID))
	return nil
}

type fakeVentaRepo struct{ s *memStore }

func (r *fakeVentaRepo) Create(v *entity.Venta) error {
	r.s.ventas[v.ID] = *v
	return nil
}

func (r *fakeVentaRepo) GetByID(id string) (*entity.Venta, error) {
	if v, ok := r.s.ventas[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (r *fakeVentaRepo) List() ([]*entity.Venta, error) {
	out := make([]*entity.Venta, 0, len(r.s.ventas))
	for _, v := range r.s.ventas {
		v := v
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaVenta.After(out[j].FechaVenta) })
	return out, nil
}

func (r *fakeVentaRepo) ListPorFecha(inicio, fin time.Time) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.s.ventas {
		if !v.FechaVenta.Before(inicio) && !v.FechaVenta.After(fin) {
			v := v
			out = append(out, &v)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) ListPorTienda(tiendaID string) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.s.ventas {
		if v.TiendaID == tiendaID {
			v := v
			out = append(out, &v)
		}
	}
	return out, nil
}

type fakeTxRunner struct{ s *memStore }

func (tx *fakeTxRunner) RunVenta(_ context.Context, fn func(
	productoRepo repository.ProductoRepository,
	ptRepo repository.ProductoTiendaRepository,
	ventaRepo repository.VentaRepository,
) error) error {
	copia := tx.s.clone()
	if err := fn(&fakeProductoRepo{s: copia}, &fakePTRepo{s: copia}, &fakeVentaRepo{s: copia}); err != nil {
		return err
	}
	*tx.s = *copia
	return nil
}
