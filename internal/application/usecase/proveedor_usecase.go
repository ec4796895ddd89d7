package usecase

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
	"github.com/tu-usuario/sistema-ventas/internal/domain"
	"github.com/tu-usuario/sistema-ventas/internal/domain/entity"
	"github.com/tu-usuario/sistema-ventas/internal/domain/repository"
)

// rucPattern el RUC debe tener exactamente 13 dígitos.
var rucPattern = regexp.MustCompile(`^\d{13}$`)

// ValidarRUC indica si el RUC cumple el formato exigido (13 dígitos).
func ValidarRUC(ruc string) bool {
	return rucPattern.MatchString(ruc)
}

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Create crea un proveedor. El RUC es único y debe tener 13 dígitos.
func (uc *ProveedorUseCase) Create(in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Nombre == "" || !ValidarRUC(in.RUC) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByRUC(in.RUC)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	proveedor := &entity.Proveedor{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		RUC:       in.RUC,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *ProveedorUseCase) GetByID(id string) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, nil
	}
	return toProveedorResponse(proveedor), nil
}

// Update actualiza un proveedor (solo los campos presentes).
func (uc *ProveedorUseCase) Update(id string, in dto.UpdateProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, nil
	}
	if in.RUC != nil {
		if !ValidarRUC(*in.RUC) {
			return nil, domain.ErrInvalidInput
		}
		if *in.RUC != proveedor.RUC {
			existing, err := uc.repo.GetByRUC(*in.RUC)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		proveedor.RUC = *in.RUC
	}
	if in.Nombre != nil {
		proveedor.Nombre = *in.Nombre
	}
	if in.Direccion != nil {
		proveedor.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		proveedor.Telefono = *in.Telefono
	}
	if in.Email != nil {
		proveedor.Email = *in.Email
	}
	if in.Activo != nil {
		proveedor.Activo = *in.Activo
	}
	proveedor.UpdatedAt = time.Now()
	if err := uc.repo.Update(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// List lista todos los proveedores.
func (uc *ProveedorUseCase) List() ([]dto.ProveedorResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProveedorResponse(p))
	}
	return items, nil
}

// Delete elimina un proveedor por ID.
func (uc *ProveedorUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	if p == nil {
		return nil
	}
	return &dto.ProveedorResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		RUC:       p.RUC,
		Direccion: p.Direccion,
		Telefono:  p.Telefono,
		Email:     p.Email,
		Activo:    p.Activo,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
