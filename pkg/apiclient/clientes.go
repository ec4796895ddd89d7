package apiclient

import (
	"context"
	"net/http"
)

// ClienteInput datos para crear o actualizar un cliente.
type ClienteInput struct {
	Nombre         string `json:"nombre"`
	Identificacion string `json:"identificacion"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
}

// Clientes cliente del recurso /clientes.
type Clientes struct {
	g *Gateway
}

// Listar lista todos los clientes.
func (c *Clientes) Listar(ctx context.Context) ([]Cliente, error) {
	return resolver[[]Cliente](c.g.Do(ctx, http.MethodGet, "/clientes", nil))
}

// Obtener obtiene un cliente por ID.
func (c *Clientes) Obtener(ctx context.Context, id string) (Cliente, error) {
	return resolver[Cliente](c.g.Do(ctx, http.MethodGet, "/clientes/"+id, nil))
}

// Crear crea un cliente.
func (c *Clientes) Crear(ctx context.Context, in ClienteInput) (Cliente, error) {
	return resolver[Cliente](c.g.Do(ctx, http.MethodPost, "/clientes", in))
}

// Actualizar actualiza un cliente.
func (c *Clientes) Actualizar(ctx context.Context, id string, in ClienteInput) (Cliente, error) {
	return resolver[Cliente](c.g.Do(ctx, http.MethodPut, "/clientes/"+id, in))
}

// Eliminar elimina un cliente.
func (c *Clientes) Eliminar(ctx context.Context, id string) error {
	return resolverVacio(c.g.Do(ctx, http.MethodDelete, "/clientes/"+id, nil))
}
