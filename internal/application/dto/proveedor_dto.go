package dto

import "time"

// CreateProveedorRequest datos para crear un proveedor. El RUC debe tener
// exactamente 13 dígitos.
type CreateProveedorRequest struct {
	Nombre    string `json:"nombre"`
	RUC       string `json:"ruc"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}

// UpdateProveedorRequest datos para actualizar un proveedor.
type UpdateProveedorRequest struct {
	Nombre    *string `json:"nombre"`
	RUC       *string `json:"ruc"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Activo    *bool   `json:"activo"`
}

// ProveedorResponse representación de salida de un proveedor.
type ProveedorResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	RUC       string    `json:"ruc"`
	Direccion string    `json:"direccion"`
	Telefono  string    `json:"telefono"`
	Email     string    `json:"email"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
