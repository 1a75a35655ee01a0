package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// SubAlmoxarifadoUseCase casos de uso CRUD para sub-almoxarifados.
type SubAlmoxarifadoUseCase struct {
	repo      repository.SubAlmoxarifadoRepository
	almoxRepo repository.AlmoxarifadoRepository
}

// NewSubAlmoxarifadoUseCase constrói o caso de uso.
func NewSubAlmoxarifadoUseCase(repo repository.SubAlmoxarifadoRepository, almoxRepo repository.AlmoxarifadoRepository) *SubAlmoxarifadoUseCase {
	return &SubAlmoxarifadoUseCase{repo: repo, almoxRepo: almoxRepo}
}

// Create cria um sub-almoxarifado vinculado a um almoxarifado existente.
func (uc *SubAlmoxarifadoUseCase) Create(in dto.CreateSubAlmoxarifadoRequest) (*dto.SubAlmoxarifadoResponse, error) {
	almox, err := uc.almoxRepo.GetByID(in.AlmoxarifadoID)
	if err != nil {
		return nil, err
	}
	if almox == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	s := &entity.SubAlmoxarifado{
		ID:             uuid.New().String(),
		AlmoxarifadoID: in.AlmoxarifadoID,
		Nome:           in.Nome,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSubAlmoxarifadoResponse(s), nil
}

// GetByID obtém um sub-almoxarifado por ID.
func (uc *SubAlmoxarifadoUseCase) GetByID(id string) (*dto.SubAlmoxarifadoResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSubAlmoxarifadoResponse(s), nil
}

// Update atualiza um sub-almoxarifado.
func (uc *SubAlmoxarifadoUseCase) Update(id string, in dto.UpdateSubAlmoxarifadoRequest) (*dto.SubAlmoxarifadoResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if in.Nome != nil {
		s.Nome = *in.Nome
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSubAlmoxarifadoResponse(s), nil
}

// List lista sub-almoxarifados, opcionalmente filtrados por almoxarifado.
func (uc *SubAlmoxarifadoUseCase) List(almoxarifadoID string, limit, offset int) (*dto.SubAlmoxarifadoListResponse, error) {
	var list []*entity.SubAlmoxarifado
	var err error
	if almoxarifadoID != "" {
		list, err = uc.repo.ListByAlmoxarifado(almoxarifadoID)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubAlmoxarifadoResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubAlmoxarifadoResponse(s))
	}
	return &dto.SubAlmoxarifadoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina um sub-almoxarifado por ID.
func (uc *SubAlmoxarifadoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSubAlmoxarifadoResponse(s *entity.SubAlmoxarifado) *dto.SubAlmoxarifadoResponse {
	if s == nil {
		return nil
	}
	return &dto.SubAlmoxarifadoResponse{
		ID:             s.ID,
		AlmoxarifadoID: s.AlmoxarifadoID,
		Nome:           s.Nome,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
