package estoque

import (
	"github.com/shopspring/decimal"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// ConsultaUseCase consultas de leitura de saldo (snapshots por local,
// agregados por central e origens candidatas por produto).
type ConsultaUseCase struct {
	estoqueRepo repository.EstoqueRepository
	localRepo   repository.LocalRepository
	produtoRepo repository.ProdutoRepository
}

// NewConsultaUseCase constrói o caso de uso.
func NewConsultaUseCase(
	estoqueRepo repository.EstoqueRepository,
	localRepo repository.LocalRepository,
	produtoRepo repository.ProdutoRepository,
) *ConsultaUseCase {
	return &ConsultaUseCase{estoqueRepo: estoqueRepo, localRepo: localRepo, produtoRepo: produtoRepo}
}

// PorLocal devolve os saldos de um local da hierarquia.
func (uc *ConsultaUseCase) PorLocal(tipo, id string) ([]dto.EstoqueItemResponse, error) {
	if !entity.ValidLocalTipo(tipo) {
		return nil, domain.ErrInvalidInput
	}
	local, err := uc.localRepo.Get(tipo, id)
	if err != nil {
		return nil, err
	}
	if local == nil {
		return nil, domain.ErrNotFound
	}
	saldos, err := uc.estoqueRepo.ListByLocal(tipo, id)
	if err != nil {
		return nil, err
	}
	return uc.toItems(saldos)
}

// PorCentral agrega os saldos de toda a subárvore de uma central.
func (uc *ConsultaUseCase) PorCentral(centralID string) ([]dto.EstoqueItemResponse, error) {
	local, err := uc.localRepo.Get(entity.LocalTipoCentral, centralID)
	if err != nil {
		return nil, err
	}
	if local == nil {
		return nil, domain.ErrNotFound
	}
	saldos, err := uc.estoqueRepo.ListByCentral(centralID)
	if err != nil {
		return nil, err
	}
	return uc.toItems(saldos)
}

// Hierarquia devolve todos os saldos não-zerados, para a visão consolidada
// por nó da hierarquia.
func (uc *ConsultaUseCase) Hierarquia() ([]dto.EstoqueItemResponse, error) {
	saldos, err := uc.estoqueRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return uc.toItems(saldos)
}

// Origens devolve, por produto, os locais candidatos com disponibilidade
// positiva. Setores não são origem de atendimento e ficam de fora.
func (uc *ConsultaUseCase) Origens(produtoIDs []string) (map[string][]dto.OrigemEstoqueResponse, error) {
	out := make(map[string][]dto.OrigemEstoqueResponse, len(produtoIDs))
	for _, produtoID := range produtoIDs {
		saldos, err := uc.estoqueRepo.ListByProduto(produtoID)
		if err != nil {
			return nil, err
		}
		origens := make([]dto.OrigemEstoqueResponse, 0, len(saldos))
		for _, s := range saldos {
			if s.LocalTipo == entity.LocalTipoSetor || !s.Disponivel.GreaterThan(decimal.Zero) {
				continue
			}
			nome := ""
			if local, err := uc.localRepo.Get(s.LocalTipo, s.LocalID); err == nil && local != nil {
				nome = local.Nome
			}
			origens = append(origens, dto.OrigemEstoqueResponse{
				OrigemTipo: s.LocalTipo,
				OrigemID:   s.LocalID,
				OrigemNome: nome,
				Disponivel: s.Disponivel,
			})
		}
		out[produtoID] = origens
	}
	return out, nil
}

func (uc *ConsultaUseCase) toItems(saldos []*entity.Estoque) ([]dto.EstoqueItemResponse, error) {
	items := make([]dto.EstoqueItemResponse, 0, len(saldos))
	for _, s := range saldos {
		nome := ""
		if p, err := uc.produtoRepo.GetByID(s.ProdutoID); err == nil && p != nil {
			nome = p.Nome
		}
		items = append(items, dto.EstoqueItemResponse{
			ProdutoID:   s.ProdutoID,
			ProdutoNome: nome,
			LocalTipo:   s.LocalTipo,
			LocalID:     s.LocalID,
			Quantidade:  s.Quantidade,
			Disponivel:  s.Disponivel,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return items, nil
}
