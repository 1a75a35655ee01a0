package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// AlmoxarifadoUseCase casos de uso CRUD para almoxarifados.
type AlmoxarifadoUseCase struct {
	repo        repository.AlmoxarifadoRepository
	centralRepo repository.CentralRepository
}

// NewAlmoxarifadoUseCase constrói o caso de uso.
func NewAlmoxarifadoUseCase(repo repository.AlmoxarifadoRepository, centralRepo repository.CentralRepository) *AlmoxarifadoUseCase {
	return &AlmoxarifadoUseCase{repo: repo, centralRepo: centralRepo}
}

// Create cria um almoxarifado vinculado a uma central existente.
func (uc *AlmoxarifadoUseCase) Create(in dto.CreateAlmoxarifadoRequest) (*dto.AlmoxarifadoResponse, error) {
	central, err := uc.centralRepo.GetByID(in.CentralID)
	if err != nil {
		return nil, err
	}
	if central == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	a := &entity.Almoxarifado{
		ID:        uuid.New().String(),
		CentralID: in.CentralID,
		Nome:      in.Nome,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAlmoxarifadoResponse(a), nil
}

// GetByID obtém um almoxarifado por ID.
func (uc *AlmoxarifadoUseCase) GetByID(id string) (*dto.AlmoxarifadoResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toAlmoxarifadoResponse(a), nil
}

// Update atualiza um almoxarifado.
func (uc *AlmoxarifadoUseCase) Update(id string, in dto.UpdateAlmoxarifadoRequest) (*dto.AlmoxarifadoResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	if in.Nome != nil {
		a.Nome = *in.Nome
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toAlmoxarifadoResponse(a), nil
}

// List lista almoxarifados, opcionalmente filtrados por central.
func (uc *AlmoxarifadoUseCase) List(centralID string, limit, offset int) (*dto.AlmoxarifadoListResponse, error) {
	var list []*entity.Almoxarifado
	var err error
	if centralID != "" {
		list, err = uc.repo.ListByCentral(centralID)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlmoxarifadoResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAlmoxarifadoResponse(a))
	}
	return &dto.AlmoxarifadoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina um almoxarifado por ID.
func (uc *AlmoxarifadoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAlmoxarifadoResponse(a *entity.Almoxarifado) *dto.AlmoxarifadoResponse {
	if a == nil {
		return nil
	}
	return &dto.AlmoxarifadoResponse{
		ID:        a.ID,
		CentralID: a.CentralID,
		Nome:      a.Nome,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
