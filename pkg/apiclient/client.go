package apiclient

import (
	"encoding/json"
	"errors"
)

// Client agrupa los clientes tipados por recurso sobre un gateway común.
type Client struct {
	Tiendas         *Tiendas
	Proveedores     *Proveedores
	Clientes        *Clientes
	Productos       *Productos
	ProductosTienda *ProductosTienda
	Ventas          *Ventas
	Estadisticas    *Estadisticas
}

// New construye el cliente completo del API.
func New(cfg Config) *Client {
	g := NewGateway(cfg)
	return &Client{
		Tiendas:         &Tiendas{g: g},
		Proveedores:     &Proveedores{g: g},
		Clientes:        &Clientes{g: g},
		Productos:       &Productos{g: g},
		ProductosTienda: &ProductosTienda{g: g},
		Ventas:          &Ventas{g: g},
		Estadisticas:    &Estadisticas{g: g},
	}
}

// resolver decodifica el campo data del sobre hacia la forma nombrada.
// En sobres de fallo devuelve el mensaje del servidor tal cual.
func resolver[T any](r *Respuesta) (T, error) {
	var out T
	if !r.Success {
		return out, errors.New(r.Message)
	}
	if len(r.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(r.Data, &out); err != nil {
		return out, errors.New("Error: " + err.Error())
	}
	return out, nil
}

// resolverVacio valida un sobre sin interés en data (deletes).
func resolverVacio(r *Respuesta) error {
	if !r.Success {
		return errors.New(r.Message)
	}
	return nil
}
