package dto

import "time"

// CreateClienteRequest datos para crear un cliente. Todos los campos son
// obligatorios.
type CreateClienteRequest struct {
	Nombre         string `json:"nombre"`
	Identificacion string `json:"identificacion"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
}

// UpdateClienteRequest datos para actualizar un cliente.
type UpdateClienteRequest struct {
	Nombre         *string `json:"nombre"`
	Identificacion *string `json:"identificacion"`
	Direccion      *string `json:"direccion"`
	Telefono       *string `json:"telefono"`
	Email          *string `json:"email"`
}

// ClienteResponse representación de salida de un cliente.
type ClienteResponse struct {
	ID             string    `json:"id"`
	Nombre         string    `json:"nombre"`
	Identificacion string    `json:"identificacion"`
	Direccion      string    `json:"direccion"`
	Telefono       string    `json:"telefono"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
