package apiclient

import (
	"context"
	"net/http"
)

// TiendaInput datos para crear o actualizar una tienda.
type TiendaInput struct {
	Nombre        string `json:"nombre"`
	Direccion     string `json:"direccion"`
	Telefono      string `json:"telefono"`
	Email         string `json:"email"`
	Administrador string `json:"administrador"`
}

// Tiendas cliente del recurso /tiendas.
type Tiendas struct {
	g *Gateway
}

// Listar lista todas las tiendas.
func (c *Tiendas) Listar(ctx context.Context) ([]Tienda, error) {
	return resolver[[]Tienda](c.g.Do(ctx, http.MethodGet, "/tiendas", nil))
}

// Obtener obtiene una tienda por ID.
func (c *Tiendas) Obtener(ctx context.Context, id string) (Tienda, error) {
	return resolver[Tienda](c.g.Do(ctx, http.MethodGet, "/tiendas/"+id, nil))
}

// Crear crea una tienda.
func (c *Tiendas) Crear(ctx context.Context, in TiendaInput) (Tienda, error) {
	return resolver[Tienda](c.g.Do(ctx, http.MethodPost, "/tiendas", in))
}

// Actualizar actualiza una tienda.
func (c *Tiendas) Actualizar(ctx context.Context, id string, in TiendaInput) (Tienda, error) {
	return resolver[Tienda](c.g.Do(ctx, http.MethodPut, "/tiendas/"+id, in))
}

// Eliminar elimina una tienda.
func (c *Tiendas) Eliminar(ctx context.Context, id string) error {
	return resolverVacio(c.g.Do(ctx, http.MethodDelete, "/tiendas/"+id, nil))
}
