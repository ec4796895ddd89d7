package apiclient

import (
	"context"
	"errors"
	"net/http"
	"regexp"
)

var rucPattern = regexp.MustCompile(`^\d{13}$`)

// ErrRUCInvalido el RUC no tiene exactamente 13 dígitos. Se valida en el
// cliente antes de enviar, igual que lo haría un formulario.
var ErrRUCInvalido = errors.New("el RUC debe tener exactamente 13 dígitos")

// ProveedorInput datos para crear o actualizar un proveedor.
type ProveedorInput struct {
	Nombre    string `json:"nombre"`
	RUC       string `json:"ruc"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}

// Proveedores cliente del recurso /proveedores.
type Proveedores struct {
	g *Gateway
}

// Listar lista todos los proveedores.
func (c *Proveedores) Listar(ctx context.Context) ([]Proveedor, error) {
	return resolver[[]Proveedor](c.g.Do(ctx, http.MethodGet, "/proveedores", nil))
}

// Obtener obtiene un proveedor por ID.
func (c *Proveedores) Obtener(ctx context.Context, id string) (Proveedor, error) {
	return resolver[Proveedor](c.g.Do(ctx, http.MethodGet, "/proveedores/"+id, nil))
}

// Crear crea un proveedor. El RUC se valida localmente antes de enviar.
func (c *Proveedores) Crear(ctx context.Context, in ProveedorInput) (Proveedor, error) {
	if !rucPattern.MatchString(in.RUC) {
		return Proveedor{}, ErrRUCInvalido
	}
	return resolver[Proveedor](c.g.Do(ctx, http.MethodPost, "/proveedores", in))
}

// Actualizar actualiza un proveedor. El RUC se valida localmente.
func (c *Proveedores) Actualizar(ctx context.Context, id string, in ProveedorInput) (Proveedor, error) {
	if !rucPattern.MatchString(in.RUC) {
		return Proveedor{}, ErrRUCInvalido
	}
	return resolver[Proveedor](c.g.Do(ctx, http.MethodPut, "/proveedores/"+id, in))
}

// Eliminar elimina un proveedor.
func (c *Proveedores) Eliminar(ctx context.Context, id string) error {
	return resolverVacio(c.g.Do(ctx, http.MethodDelete, "/proveedores/"+id, nil))
}
