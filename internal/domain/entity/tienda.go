package entity

import "time"

// Tienda representa un local físico con su propia asignación de productos.
type Tienda struct {
	ID            string
	Nombre        string
	Direccion     string
	Telefono      string
	Email         string
	Administrador string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
