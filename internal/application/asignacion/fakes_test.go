package asignacion_test

import (
	"context"
	"sort"

	"github.com/tu-usuario/sistema-ventas/internal/domain"
	"github.com/tu-usuario/sistema-ventas/internal/domain/entity"
	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional: Run trabaja sobre una copia
// del almacén y solo la publica si fn no devuelve error, igual que un
// rollback de base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	tiendas      map[string]entity.Tienda
	productos    map[string]entity.Producto
	asignaciones map[string]entity.ProductoTienda // clave tiendaID|productoID
}

func newMemStore() *memStore {
	return &memStore{
		tiendas:      map[string]entity.Tienda{},
		productos:    map[string]entity.Producto{},
		asignaciones: map[string]entity.ProductoTienda{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.tiendas {
		c.tiendas[k] = v
	}
	for k, v := range s.productos {
		c.productos[k] = v
	}
	for k, v := range s.asignaciones {
		c.asignaciones[k] = v
	}
	return c
}

func ptKey(tiendaID, productoID string) string { return tiendaID + "|" + productoID }

// fakeTiendaRepo sobre el almacén en memoria.
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

func (r *fakeTiendaRepo) List() ([]*entity.Tienda, error) {
	out := make([]*entity.Tienda, 0, len(r.s.tiendas))
	for _, t := range r.s.tiendas {
		t := t
		out = append(out, &t)
	}
	return out, nil
}

func (r *fakeTiendaRepo) Delete(id string) error {
	delete(r.s.tiendas, id)
	return nil
}

func (r *fakeTiendaRepo) Count() (int64, error) { return int64(len(r.s.tiendas)), nil }

// fakeProductoRepo sobre el almacén en memoria.
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

func (r *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r *fakeProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	for _, p := range r.s.productos {
		if p.Codigo == codigo {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

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

func (r *fakeProductoRepo) List() ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(r.s.productos))
	for _, p := range r.s.productos {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductoRepo) ListBajoStock(stockMinimo int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.s.productos {
		if p.Stock < stockMinimo {
			p := p
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) Delete(id string) error {
	delete(r.s.productos, id)
	return nil
}

// fakePTRepo sobre el almacén en memoria.
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

func (r *fakePTRepo) ListByTienda(tiendaID string) ([]*entity.ProductoTienda, error) {
	var out []*entity.ProductoTienda
	for _, pt := range r.s.asignaciones {
		if pt.TiendaID == tiendaID {
			pt := pt
			out = append(out, &pt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductoID < out[j].ProductoID })
	return out, nil
}

func (r *fakePTRepo) ListBajoStock(tiendaID string, stockMinimo int) ([]*entity.ProductoTienda, error) {
	var out []*entity.ProductoTienda
	for _, pt := range r.s.asignaciones {
		if pt.TiendaID == tiendaID && pt.StockLocal < stockMinimo {
			pt := pt
			out = append(out, &pt)
		}
	}
	return out, nil
}

func (r *fakePTRepo) Create(pt *entity.ProductoTienda) error {
	key := ptKey(pt.TiendaID, pt.ProductoID)
	if _, ok := r.s.asignaciones[key]; ok {
		return domain.ErrYaAsignado
	}
	r.s.asignaciones[key] = *pt
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

// fakeTxRunner publica la copia solo si fn termina sin error.
type fakeTxRunner struct{ s *memStore }

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	productoRepo repository.ProductoRepository,
	ptRepo repository.ProductoTiendaRepository,
) error) error {
	copia := tx.s.clone()
	if err := fn(&fakeProductoRepo{s: copia}, &fakePTRepo{s: copia}); err != nil {
		return err
	}
	*tx.s = *copia
	return nil
}
