package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
	"github.com/tu-usuario/sistema-ventas/internal/domain"
	"github.com/tu-usuario/sistema-ventas/internal/domain/entity"
	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos. Stock y StockAsignado
// no se editan por Update: las entradas de mercadería van por
// IncrementarStock y las asignaciones por el motor de asignación.
type ProductoUseCase struct {
	repo   repository.ProductoRepository
	ptRepo repository.ProductoTiendaRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, ptRepo repository.ProductoTiendaRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, ptRepo: ptRepo}
}

// Create crea un producto. El stock inicial entra a bodega sin asignar.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:            uuid.New().String(),
		Codigo:        in.Codigo,
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		Marca:         in.Marca,
		Categoria:     in.Categoria,
		Precio:        in.Precio,
		Stock:         in.Stock,
		StockAsignado: 0,
		Activo:        true,
		ProveedorID:   in.ProveedorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// Update actualiza los datos descriptivos de un producto.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.Codigo != nil && *in.Codigo != producto.Codigo {
		existing, err := uc.repo.GetByCodigo(*in.Codigo)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		producto.Codigo = *in.Codigo
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.Marca != nil {
		producto.Marca = *in.Marca
	}
	if in.Categoria != nil {
		producto.Categoria = *in.Categoria
	}
	if in.Precio != nil {
		if in.Precio.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if in.Activo != nil {
		producto.Activo = *in.Activo
	}
	if in.ProveedorID != nil {
		producto.ProveedorID = *in.ProveedorID
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// IncrementarStock suma unidades a bodega (endpoint dedicado, solo
// incrementos; evita sobreescrituras arbitrarias durante ediciones
// concurrentes).
func (uc *ProductoUseCase) IncrementarStock(id string, delta int) (*dto.ProductoResponse, error) {
	if delta <= 0 {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if err := uc.repo.IncrementStock(id, delta); err != nil {
		return nil, err
	}
	producto.Stock += delta
	producto.UpdatedAt = time.Now()
	return toProductoResponse(producto), nil
}

// List lista todos los productos del catálogo general.
func (uc *ProductoUseCase) List() ([]dto.ProductoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// ListBajoStock lista productos con stock de bodega por debajo del umbral.
func (uc *ProductoUseCase) ListBajoStock(stockMinimo int) ([]dto.ProductoResponse, error) {
	list, err := uc.repo.ListBajoStock(stockMinimo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// ListPorTienda lista los productos asignados a una tienda con el stock
// vendible en esa tienda (catálogo de la pantalla de ventas).
func (uc *ProductoUseCase) ListPorTienda(tiendaID string) ([]dto.ProductoTiendaCatalogoResponse, error) {
	asignaciones, err := uc.ptRepo.ListByTienda(tiendaID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoTiendaCatalogoResponse, 0, len(asignaciones))
	for _, pt := range asignaciones {
		producto, err := uc.repo.GetByID(pt.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			continue
		}
		items = append(items, dto.ProductoTiendaCatalogoResponse{
			ID:        producto.ID,
			Codigo:    producto.Codigo,
			Nombre:    producto.Nombre,
			Categoria: producto.Categoria,
			Precio:    producto.Precio,
			Stock:     pt.StockLocal,
		})
	}
	return items, nil
}

// Delete elimina un producto por ID.
func (uc *ProductoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:            p.ID,
		Codigo:        p.Codigo,
		Nombre:        p.Nombre,
		Descripcion:   p.Descripcion,
		Marca:         p.Marca,
		Categoria:     p.Categoria,
		Precio:        p.Precio,
		Stock:         p.Stock,
		StockAsignado: p.StockAsignado,
		Activo:        p.Activo,
		ProveedorID:   p.ProveedorID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
