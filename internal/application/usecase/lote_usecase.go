package usecase

import (
	"time"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// LoteUseCase consultas de lotes com status derivado da validade.
type LoteUseCase struct {
	repo repository.LoteRepository
}

// NewLoteUseCase constrói o caso de uso.
func NewLoteUseCase(repo repository.LoteRepository) *LoteUseCase {
	return &LoteUseCase{repo: repo}
}

// GetByID obtém um lote por ID.
func (uc *LoteUseCase) GetByID(id string) (*dto.LoteResponse, error) {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, nil
	}
	return toLoteResponse(l, time.Now()), nil
}

// ListByProduto lista os lotes de um produto em todos os locais.
func (uc *LoteUseCase) ListByProduto(produtoID string) ([]dto.LoteResponse, error) {
	list, err := uc.repo.ListByProduto(produtoID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.LoteResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLoteResponse(l, now))
	}
	return out, nil
}

func toLoteResponse(l *entity.Lote, ref time.Time) *dto.LoteResponse {
	return &dto.LoteResponse{
		ID:            l.ID,
		ProdutoID:     l.ProdutoID,
		LocalTipo:     l.LocalTipo,
		LocalID:       l.LocalID,
		Numero:        l.Numero,
		Validade:      l.Validade,
		PrecoUnitario: l.PrecoUnitario,
		Quantidade:    l.Quantidade,
		Status:        l.Status(ref),
	}
}
