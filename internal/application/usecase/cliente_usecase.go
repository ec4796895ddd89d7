package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
	"github.com/tu-usuario/sistema-ventas/internal/domain"
	"github.com/tu-usuario/sistema-ventas/internal/domain/entity"
	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente. Todos los campos son obligatorios y la
// identificación es única.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" || in.Identificacion == "" || in.Direccion == "" || in.Telefono == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByIdentificacion(in.Identificacion)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		Identificacion: in.Identificacion,
		Direccion:      in.Direccion,
		Telefono:       in.Telefono,
		Email:          in.Email,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// Update actualiza un cliente (solo los campos presentes).
func (uc *ClienteUseCase) Update(id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	if in.Identificacion != nil && *in.Identificacion != cliente.Identificacion {
		existing, err := uc.repo.GetByIdentificacion(*in.Identificacion)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		cliente.Identificacion = *in.Identificacion
	}
	if in.Nombre != nil {
		cliente.Nombre = *in.Nombre
	}
	if in.Direccion != nil {
		cliente.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// List lista todos los clientes.
func (uc *ClienteUseCase) List() ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return items, nil
}

// Delete elimina un cliente por ID.
func (uc *ClienteUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:             c.ID,
		Nombre:         c.Nombre,
		Identificacion: c.Identificacion,
		Direccion:      c.Direccion,
		Telefono:       c.Telefono,
		Email:          c.Email,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
