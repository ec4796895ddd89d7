package entity

import "time"

// Proveedor representa un proveedor de productos. El RUC debe tener
// exactamente 13 dígitos (se valida antes de persistir).
type Proveedor struct {
	ID        string
	Nombre    string
	RUC       string // único, 13 dígitos
	Direccion string
	Telefono  string
	Email     string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
