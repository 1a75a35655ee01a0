package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// CentralUseCase casos de uso CRUD para centrais.
type CentralUseCase struct {
	repo repository.CentralRepository
}

// NewCentralUseCase constrói o caso de uso.
func NewCentralUseCase(repo repository.CentralRepository) *CentralUseCase {
	return &CentralUseCase{repo: repo}
}

// Create cria uma nova central.
func (uc *CentralUseCase) Create(in dto.CreateCentralRequest) (*dto.CentralResponse, error) {
	now := time.Now()
	ativa := true
	if in.Ativa != nil {
		ativa = *in.Ativa
	}
	central := &entity.Central{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Ativa:     ativa,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(central); err != nil {
		return nil, err
	}
	return toCentralResponse(central), nil
}

// GetByID obtém uma central por ID.
func (uc *CentralUseCase) GetByID(id string) (*dto.CentralResponse, error) {
	central, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if central == nil {
		return nil, nil
	}
	return toCentralResponse(central), nil
}

// Update atualiza uma central.
func (uc *CentralUseCase) Update(id string, in dto.UpdateCentralRequest) (*dto.CentralResponse, error) {
	central, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if central == nil {
		return nil, nil
	}
	if in.Nome != nil {
		central.Nome = *in.Nome
	}
	if in.Ativa != nil {
		central.Ativa = *in.Ativa
	}
	central.UpdatedAt = time.Now()
	if err := uc.repo.Update(central); err != nil {
		return nil, err
	}
	return toCentralResponse(central), nil
}

// List lista centrais com paginação.
func (uc *CentralUseCase) List(limit, offset int) (*dto.CentralListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CentralResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCentralResponse(c))
	}
	return &dto.CentralListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina uma central por ID.
func (uc *CentralUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCentralResponse(c *entity.Central) *dto.CentralResponse {
	if c == nil {
		return nil
	}
	return &dto.CentralResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		Ativa:     c.Ativa,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
