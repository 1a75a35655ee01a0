package demanda

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pluckapp/almox-api/internal/application/dto"
	appestoque "github.com/pluckapp/almox-api/internal/application/estoque"
	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
	"github.com/pluckapp/almox-api/pkg/cobertura"
)

// UseCase ciclo de vida de demandas: criação, listagem, atendimento
// transacional e ranking de origens por cobertura.
type UseCase struct {
	demandaRepo repository.DemandaRepository
	setorRepo   repository.SetorRepository
	produtoRepo repository.ProdutoRepository
	estoqueRepo repository.EstoqueRepository
	localRepo   repository.LocalRepository
	txRunner    appestoque.TxRunner
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	demandaRepo repository.DemandaRepository,
	setorRepo repository.SetorRepository,
	produtoRepo repository.ProdutoRepository,
	estoqueRepo repository.EstoqueRepository,
	localRepo repository.LocalRepository,
	txRunner appestoque.TxRunner,
) *UseCase {
	return &UseCase{
		demandaRepo: demandaRepo,
		setorRepo:   setorRepo,
		produtoRepo: produtoRepo,
		estoqueRepo: estoqueRepo,
		localRepo:   localRepo,
		txRunner:    txRunner,
	}
}

// Create cria uma demanda com status pendente e contadores zerados.
func (uc *UseCase) Create(userID string, in dto.CreateDemandaRequest) (*dto.DemandaResponse, error) {
	if in.SetorID == "" || len(in.Itens) == 0 {
		return nil, domain.ErrInvalidInput
	}
	setor, err := uc.setorRepo.GetByID(in.SetorID)
	if err != nil {
		return nil, err
	}
	if setor == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	d := &entity.Demanda{
		ID:         uuid.New().String(),
		SetorID:    in.SetorID,
		Status:     entity.DemandaStatusPendente,
		Observacao: in.Observacao,
		CreatedAt:  now,
		UpdatedAt:  now,
		CreatedBy:  userID,
	}
	for _, item := range in.Itens {
		produto, err := uc.produtoRepo.GetByID(item.ProdutoID)
		if err != nil {
			return nil, err
		}
		if produto == nil {
			return nil, domain.ErrNotFound
		}
		if err := produto.ValidaQuantidade(item.Quantidade); err != nil {
			return nil, err
		}
		d.Itens = append(d.Itens, entity.DemandaItem{
			ID:         uuid.New().String(),
			DemandaID:  d.ID,
			ProdutoID:  item.ProdutoID,
			Quantidade: item.Quantidade,
			Atendido:   decimal.Zero,
		})
	}
	if err := uc.demandaRepo.Create(d); err != nil {
		return nil, err
	}
	return uc.toResponse(d, nil), nil
}

// GetByID devolve a demanda com itens e histórico de atendimentos.
func (uc *UseCase) GetByID(id string) (*dto.DemandaResponse, error) {
	d, err := uc.demandaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	atendimentos, err := uc.demandaRepo.ListAtendimentos(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(d, atendimentos), nil
}

// List lista demandas com filtros.
func (uc *UseCase) List(f repository.DemandaFilter) (*dto.DemandaListResponse, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	list, err := uc.demandaRepo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DemandaResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *uc.toResponse(d, nil))
	}
	return &dto.DemandaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Atender aplica um atendimento: uma única origem para todos os itens
// selecionados. Valida cada quantidade contra o restante do item e contra o
// disponível na origem, e aplica baixa na origem, crédito no setor, linhas
// do livro-razão, contadores e status em uma transação.
func (uc *UseCase) Atender(ctx context.Context, userID, demandaID string, in dto.AtenderDemandaRequest) (*dto.DemandaResponse, error) {
	if in.OrigemTipo == "" || in.OrigemID == "" || len(in.Itens) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.OrigemTipo == entity.LocalTipoSetor {
		return nil, domain.ErrInvalidInput
	}
	origem, err := uc.localRepo.Get(in.OrigemTipo, in.OrigemID)
	if err != nil {
		return nil, err
	}
	if origem == nil {
		return nil, domain.ErrNotFound
	}

	d, err := uc.demandaRepo.GetByID(demandaID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if d.Status == entity.DemandaStatusAtendido {
		return nil, domain.ErrDemandFulfilled
	}

	itensPorProduto := make(map[string]*entity.DemandaItem, len(d.Itens))
	for i := range d.Itens {
		itensPorProduto[d.Itens[i].ProdutoID] = &d.Itens[i]
	}

	// Pré-validação fora da transação: restante e unidade do produto.
	// Linhas repetidas do mesmo produto são rejeitadas para que cada
	// quantidade seja comparável ao restante do item. O disponível na origem
	// e o restante definitivo são verificados dentro da transação, com as
	// linhas bloqueadas.
	vistos := make(map[string]struct{}, len(in.Itens))
	for _, pedido := range in.Itens {
		if _, repetido := vistos[pedido.ProdutoID]; repetido {
			return nil, domain.ErrInvalidInput
		}
		vistos[pedido.ProdutoID] = struct{}{}

		item, ok := itensPorProduto[pedido.ProdutoID]
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		produto, err := uc.produtoRepo.GetByID(pedido.ProdutoID)
		if err != nil {
			return nil, err
		}
		if produto == nil {
			return nil, domain.ErrNotFound
		}
		if err := produto.ValidaQuantidade(pedido.Quantidade); err != nil {
			return nil, err
		}
		if pedido.Quantidade.GreaterThan(item.Restante()) {
			return nil, domain.ErrQuantityExceeded
		}
	}

	now := time.Now()
	atendimento := &entity.Atendimento{
		ID:         uuid.New().String(),
		DemandaID:  d.ID,
		OrigemTipo: in.OrigemTipo,
		OrigemID:   in.OrigemID,
		CreatedAt:  now,
		CreatedBy:  userID,
	}
	for _, pedido := range in.Itens {
		atendimento.Itens = append(atendimento.Itens, entity.AtendimentoItem{
			ProdutoID:  pedido.ProdutoID,
			Quantidade: pedido.Quantidade,
		})
	}

	err = uc.txRunner.RunDemanda(ctx, func(
		movRepo repository.MovimentacaoRepository,
		estoqueRepo repository.EstoqueRepository,
		demandaRepo repository.DemandaRepository,
	) error {
		// Releitura com a linha da demanda bloqueada: outro atendimento pode
		// ter avançado os contadores entre a pré-validação e o lock.
		atual, err := demandaRepo.GetByIDForUpdate(d.ID)
		if err != nil {
			return err
		}
		if atual == nil {
			return domain.ErrNotFound
		}
		if atual.Status == entity.DemandaStatusAtendido {
			return domain.ErrDemandFulfilled
		}
		porProduto := make(map[string]*entity.DemandaItem, len(atual.Itens))
		for i := range atual.Itens {
			porProduto[atual.Itens[i].ProdutoID] = &atual.Itens[i]
		}

		for _, pedido := range in.Itens {
			item, ok := porProduto[pedido.ProdutoID]
			if !ok {
				return domain.ErrInvalidInput
			}
			if pedido.Quantidade.GreaterThan(item.Restante()) {
				return domain.ErrQuantityExceeded
			}

			origemSaldo, err := estoqueRepo.GetForUpdate(pedido.ProdutoID, in.OrigemTipo, in.OrigemID)
			if err != nil {
				return err
			}
			if origemSaldo.Disponivel.LessThan(pedido.Quantidade) {
				return domain.ErrInsufficientStock
			}
			origemSaldo.Quantidade = origemSaldo.Quantidade.Sub(pedido.Quantidade)
			origemSaldo.Disponivel = origemSaldo.Disponivel.Sub(pedido.Quantidade)
			origemSaldo.UpdatedAt = now
			if err := estoqueRepo.Upsert(origemSaldo); err != nil {
				return err
			}

			setorSaldo, err := estoqueRepo.GetForUpdate(pedido.ProdutoID, entity.LocalTipoSetor, atual.SetorID)
			if err != nil {
				return err
			}
			setorSaldo.Quantidade = setorSaldo.Quantidade.Add(pedido.Quantidade)
			setorSaldo.Disponivel = setorSaldo.Disponivel.Add(pedido.Quantidade)
			setorSaldo.UpdatedAt = now
			if err := estoqueRepo.Upsert(setorSaldo); err != nil {
				return err
			}

			if err := movRepo.Create(&entity.Movimentacao{
				ID:          uuid.New().String(),
				TransacaoID: atendimento.ID,
				Tipo:        entity.MovTipoDistribuicao,
				ProdutoID:   pedido.ProdutoID,
				OrigemTipo:  in.OrigemTipo,
				OrigemID:    in.OrigemID,
				DestinoTipo: entity.LocalTipoSetor,
				DestinoID:   atual.SetorID,
				Quantidade:  pedido.Quantidade,
				Data:        now,
				CreatedAt:   now,
				CreatedBy:   userID,
			}); err != nil {
				return err
			}

			item.Atendido = item.Atendido.Add(pedido.Quantidade)
			if err := demandaRepo.UpdateItemAtendido(item.ID, item.Atendido); err != nil {
				return err
			}
		}

		if err := demandaRepo.CreateAtendimento(atendimento); err != nil {
			return err
		}
		return demandaRepo.UpdateStatus(atual.ID, atual.DeriveStatus())
	})
	if err != nil {
		return nil, err
	}

	return uc.GetByID(d.ID)
}

// Origens calcula o ranking de cobertura para os itens pendentes da
// demanda: locais candidatos ordenados por quanto cada um cobriria sozinho
// do pedido restante.
func (uc *UseCase) Origens(demandaID string) (*dto.OrigensDemandaResponse, error) {
	d, err := uc.demandaRepo.GetByID(demandaID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}

	itens := make([]cobertura.Item, 0, len(d.Itens))
	origensPorProduto := make(map[string][]cobertura.Origem)
	origensDTO := make(map[string][]dto.OrigemEstoqueResponse)

	for _, item := range d.Itens {
		itens = append(itens, cobertura.Item{
			ProdutoID:  item.ProdutoID,
			Quantidade: item.Quantidade,
			Atendido:   item.Atendido,
		})
		if !item.Restante().GreaterThan(decimal.Zero) {
			continue
		}
		saldos, err := uc.estoqueRepo.ListByProduto(item.ProdutoID)
		if err != nil {
			return nil, err
		}
		for _, s := range saldos {
			if s.LocalTipo == entity.LocalTipoSetor || !s.Disponivel.GreaterThan(decimal.Zero) {
				continue
			}
			nome := ""
			if local, err := uc.localRepo.Get(s.LocalTipo, s.LocalID); err == nil && local != nil {
				nome = local.Nome
			}
			origensPorProduto[item.ProdutoID] = append(origensPorProduto[item.ProdutoID], cobertura.Origem{
				Tipo:       s.LocalTipo,
				ID:         s.LocalID,
				Nome:       nome,
				Disponivel: s.Disponivel,
			})
			origensDTO[item.ProdutoID] = append(origensDTO[item.ProdutoID], dto.OrigemEstoqueResponse{
				OrigemTipo: s.LocalTipo,
				OrigemID:   s.LocalID,
				OrigemNome: nome,
				Disponivel: s.Disponivel,
			})
		}
	}

	ranking := cobertura.RankOrigens(itens, origensPorProduto)
	out := &dto.OrigensDemandaResponse{Origens: origensDTO}
	for _, r := range ranking {
		out.Ranking = append(out.Ranking, dto.OrigemRanqueadaResponse{
			OrigemTipo:     r.Tipo,
			OrigemID:       r.ID,
			OrigemNome:     r.Nome,
			TotalCobertura: r.TotalCobertura,
			ItensComSaldo:  r.ItensComSaldo,
			ItensIntegrais: r.ItensIntegrais,
		})
	}
	return out, nil
}

func (uc *UseCase) toResponse(d *entity.Demanda, atendimentos []*entity.Atendimento) *dto.DemandaResponse {
	out := &dto.DemandaResponse{
		ID:         d.ID,
		SetorID:    d.SetorID,
		Status:     d.Status,
		Observacao: d.Observacao,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	for i := range d.Itens {
		item := &d.Itens[i]
		out.Itens = append(out.Itens, dto.DemandaItemResponse{
			ID:         item.ID,
			ProdutoID:  item.ProdutoID,
			Quantidade: item.Quantidade,
			Atendido:   item.Atendido,
			Restante:   item.Restante(),
		})
	}
	for _, a := range atendimentos {
		ar := dto.AtendimentoResponse{
			ID:         a.ID,
			OrigemTipo: a.OrigemTipo,
			OrigemID:   a.OrigemID,
			CreatedAt:  a.CreatedAt,
			CreatedBy:  a.CreatedBy,
		}
		for _, ai := range a.Itens {
			ar.Itens = append(ar.Itens, dto.AtendimentoItemResponse{ProdutoID: ai.ProdutoID, Quantidade: ai.Quantidade})
		}
		out.Atendimentos = append(out.Atendimentos, ar)
	}
	return out
}
