package dto

import "time"

// CreateTiendaRequest datos para crear una tienda.
type CreateTiendaRequest struct {
	Nombre        string `json:"nombre"`
	Direccion     string `json:"direccion"`
	Telefono      string `json:"telefono"`
	Email         string `json:"email"`
	Administrador string `json:"administrador"`
}

// UpdateTiendaRequest datos para actualizar una tienda (campos opcionales).
type UpdateTiendaRequest struct {
	Nombre        *string `json:"nombre"`
	Direccion     *string `json:"direccion"`
	Telefono      *string `json:"telefono"`
	Email         *string `json:"email"`
	Administrador *string `json:"administrador"`
}

// TiendaResponse representación de salida de una tienda.
type TiendaResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Direccion     string    `json:"direccion"`
	Telefono      string    `json:"telefono"`
	Email         string    `json:"email"`
	Administrador string    `json:"administrador"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
