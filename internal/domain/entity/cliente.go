package entity

import "time"

// Cliente representa un cliente registrado para ventas.
type Cliente struct {
	ID             string
	Nombre         string
	Identificacion string // única
	Direccion      string
	Telefono       string
	Email          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
