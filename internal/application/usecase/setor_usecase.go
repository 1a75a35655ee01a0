package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// SetorUseCase casos de uso CRUD para setores, incluindo os vínculos
// multi-pai com sub-almoxarifados.
type SetorUseCase struct {
	repo     repository.SetorRepository
	almoxRepo repository.AlmoxarifadoRepository
	subRepo  repository.SubAlmoxarifadoRepository
}

// NewSetorUseCase constrói o caso de uso.
func NewSetorUseCase(repo repository.SetorRepository, almoxRepo repository.AlmoxarifadoRepository, subRepo repository.SubAlmoxarifadoRepository) *SetorUseCase {
	return &SetorUseCase{repo: repo, almoxRepo: almoxRepo, subRepo: subRepo}
}

// Create cria um setor. SubAlmoxarifadoIDs pode ser vazio (setor direto do
// almoxarifado) ou ter vários vínculos; todos devem existir.
func (uc *SetorUseCase) Create(in dto.CreateSetorRequest) (*dto.SetorResponse, error) {
	almox, err := uc.almoxRepo.GetByID(in.AlmoxarifadoID)
	if err != nil {
		return nil, err
	}
	if almox == nil {
		return nil, domain.ErrNotFound
	}
	for _, subID := range in.SubAlmoxarifadoIDs {
		sub, err := uc.subRepo.GetByID(subID)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	s := &entity.Setor{
		ID:                 uuid.New().String(),
		AlmoxarifadoID:     in.AlmoxarifadoID,
		Nome:               in.Nome,
		SubAlmoxarifadoIDs: in.SubAlmoxarifadoIDs,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSetorResponse(s), nil
}

// GetByID obtém um setor por ID.
func (uc *SetorUseCase) GetByID(id string) (*dto.SetorResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSetorResponse(s), nil
}

// Update atualiza um setor e seus vínculos.
func (uc *SetorUseCase) Update(id string, in dto.UpdateSetorRequest) (*dto.SetorResponse, error) {
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
	if in.SubAlmoxarifadoIDs != nil {
		for _, subID := range *in.SubAlmoxarifadoIDs {
			sub, err := uc.subRepo.GetByID(subID)
			if err != nil {
				return nil, err
			}
			if sub == nil {
				return nil, domain.ErrNotFound
			}
		}
		s.SubAlmoxarifadoIDs = *in.SubAlmoxarifadoIDs
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSetorResponse(s), nil
}

// List lista setores com paginação.
func (uc *SetorUseCase) List(limit, offset int) (*dto.SetorListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SetorResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSetorResponse(s))
	}
	return &dto.SetorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina um setor por ID.
func (uc *SetorUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSetorResponse(s *entity.Setor) *dto.SetorResponse {
	if s == nil {
		return nil
	}
	ids := s.SubAlmoxarifadoIDs
	if ids == nil {
		ids = []string{}
	}
	return &dto.SetorResponse{
		ID:                 s.ID,
		AlmoxarifadoID:     s.AlmoxarifadoID,
		Nome:               s.Nome,
		SubAlmoxarifadoIDs: ids,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
