package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
	"github.com/tu-usuario/sistema-ventas/internal/domain"
	"github.com/tu-usuario/sistema-ventas/internal/domain/entity"
	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

// TiendaUseCase casos de uso CRUD para tiendas.
type TiendaUseCase struct {
	repo repository.TiendaRepository
}

// NewTiendaUseCase construye el caso de uso.
func NewTiendaUseCase(repo repository.TiendaRepository) *TiendaUseCase {
	return &TiendaUseCase{repo: repo}
}

// Create crea una nueva tienda.
func (uc *TiendaUseCase) Create(in dto.CreateTiendaRequest) (*dto.TiendaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tienda := &entity.Tienda{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		Direccion:     in.Direccion,
		Telefono:      in.Telefono,
		Email:         in.Email,
		Administrador: in.Administrador,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(tienda); err != nil {
		return nil, err
	}
	return toTiendaResponse(tienda), nil
}

// GetByID obtiene una tienda por ID.
func (uc *TiendaUseCase) GetByID(id string) (*dto.TiendaResponse, error) {
	tienda, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tienda == nil {
		return nil, nil
	}
	return toTiendaResponse(tienda), nil
}

// Update actualiza una tienda existente (solo los campos presentes).
func (uc *TiendaUseCase) Update(id string, in dto.UpdateTiendaRequest) (*dto.TiendaResponse, error) {
	tienda, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tienda == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		tienda.Nombre = *in.Nombre
	}
	if in.Direccion != nil {
		tienda.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		tienda.Telefono = *in.Telefono
	}
	if in.Email != nil {
		tienda.Email = *in.Email
	}
	if in.Administrador != nil {
		tienda.Administrador = *in.Administrador
	}
	tienda.UpdatedAt = time.Now()
	if err := uc.repo.Update(tienda); err != nil {
		return nil, err
	}
	return toTiendaResponse(tienda), nil
}

// List lista todas las tiendas.
func (uc *TiendaUseCase) List() ([]dto.TiendaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TiendaResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTiendaResponse(t))
	}
	return items, nil
}

// Delete elimina una tienda por ID.
func (uc *TiendaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toTiendaResponse(t *entity.Tienda) *dto.TiendaResponse {
	if t == nil {
		return nil
	}
	return &dto.TiendaResponse{
		ID:            t.ID,
		Nombre:        t.Nombre,
		Direccion:     t.Direccion,
		Telefono:      t.Telefono,
		Email:         t.Email,
		Administrador: t.Administrador,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
