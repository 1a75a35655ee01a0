package estoque

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// MovimentacaoUseCase registra movimentações de estoque de forma
// transacional (entrada, distribuição, estorno, saída justificada, consumo,
// carrinho de setor) com bloqueio de linha (SELECT FOR UPDATE) e
// Commit/Rollback.
type MovimentacaoUseCase struct {
	txRunner    TxRunner
	produtoRepo repository.ProdutoRepository
	localRepo   repository.LocalRepository
	movRepo     repository.MovimentacaoRepository
}

// NewMovimentacaoUseCase constrói o caso de uso.
func NewMovimentacaoUseCase(
	txRunner TxRunner,
	produtoRepo repository.ProdutoRepository,
	localRepo repository.LocalRepository,
	movRepo repository.MovimentacaoRepository,
) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{
		txRunner:    txRunner,
		produtoRepo: produtoRepo,
		localRepo:   localRepo,
		movRepo:     movRepo,
	}
}

// validaProdutoELocal carrega o produto, valida a quantidade e confere que o
// local (tipo+id) existe na hierarquia.
func (uc *MovimentacaoUseCase) validaProdutoELocal(produtoID string, q decimal.Decimal, localTipo, localID string) (*entity.Produto, error) {
	produto, err := uc.produtoRepo.GetByID(produtoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	if err := produto.ValidaQuantidade(q); err != nil {
		return nil, err
	}
	if !entity.ValidLocalTipo(localTipo) {
		return nil, domain.ErrInvalidInput
	}
	local, err := uc.localRepo.Get(localTipo, localID)
	if err != nil {
		return nil, err
	}
	if local == nil {
		return nil, domain.ErrNotFound
	}
	return produto, nil
}

// creditar soma a quantidade ao saldo do local (linha bloqueada).
func creditar(estoqueRepo repository.EstoqueRepository, produtoID, tipo, id string, q decimal.Decimal, now time.Time) error {
	saldo, err := estoqueRepo.GetForUpdate(produtoID, tipo, id)
	if err != nil {
		return err
	}
	saldo.Quantidade = saldo.Quantidade.Add(q)
	saldo.Disponivel = saldo.Disponivel.Add(q)
	saldo.UpdatedAt = now
	return estoqueRepo.Upsert(saldo)
}

// debitar subtrai a quantidade do saldo do local, verificando o disponível
// (linha bloqueada). Retorna ErrInsufficientStock se o disponível não cobre.
func debitar(estoqueRepo repository.EstoqueRepository, produtoID, tipo, id string, q decimal.Decimal, now time.Time) error {
	saldo, err := estoqueRepo.GetForUpdate(produtoID, tipo, id)
	if err != nil {
		return err
	}
	if saldo.Disponivel.LessThan(q) {
		return domain.ErrInsufficientStock
	}
	saldo.Quantidade = saldo.Quantidade.Sub(q)
	saldo.Disponivel = saldo.Disponivel.Sub(q)
	saldo.UpdatedAt = now
	return estoqueRepo.Upsert(saldo)
}

// Entrada registra o recebimento de material em um almoxarifado: cria ou
// atualiza o lote informado, soma ao saldo do destino e grava a linha no
// livro-razão, tudo em uma transação.
func (uc *MovimentacaoUseCase) Entrada(ctx context.Context, userID string, in dto.EntradaRequest) (*entity.Movimentacao, error) {
	produto, err := uc.validaProdutoELocal(in.ProdutoID, in.Quantidade, in.DestinoTipo, in.DestinoID)
	if err != nil {
		return nil, err
	}
	if produto.ControleLote {
		if in.LoteNumero == "" || in.LoteValidade == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.PrecoUnitario != nil && in.PrecoUnitario.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.Movimentacao{
		ID:          uuid.New().String(),
		TransacaoID: uuid.New().String(),
		Tipo:        entity.MovTipoEntrada,
		ProdutoID:   in.ProdutoID,
		DestinoTipo: in.DestinoTipo,
		DestinoID:   in.DestinoID,
		Quantidade:  in.Quantidade,
		Data:        now,
		CreatedAt:   now,
		CreatedBy:   userID,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		estoqueRepo repository.EstoqueRepository,
		loteRepo repository.LoteRepository,
	) error {
		if in.LoteNumero != "" {
			if err := upsertLote(loteRepo, produto.ID, in, now); err != nil {
				return err
			}
		}
		if err := creditar(estoqueRepo, in.ProdutoID, in.DestinoTipo, in.DestinoID, in.Quantidade, now); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// upsertLote soma ao lote existente (mesmo número no mesmo local) ou cria um novo.
func upsertLote(loteRepo repository.LoteRepository, produtoID string, in dto.EntradaRequest, now time.Time) error {
	lote, err := loteRepo.GetByNumero(produtoID, in.DestinoTipo, in.DestinoID, in.LoteNumero)
	if err != nil {
		return err
	}
	preco := decimal.Zero
	if in.PrecoUnitario != nil {
		preco = *in.PrecoUnitario
	}
	if lote == nil {
		validade := now
		if in.LoteValidade != nil {
			validade = *in.LoteValidade
		}
		return loteRepo.Create(&entity.Lote{
			ID:            uuid.New().String(),
			ProdutoID:     produtoID,
			LocalTipo:     in.DestinoTipo,
			LocalID:       in.DestinoID,
			Numero:        in.LoteNumero,
			Validade:      validade,
			PrecoUnitario: preco,
			Quantidade:    in.Quantidade,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	lote.Quantidade = lote.Quantidade.Add(in.Quantidade)
	if in.PrecoUnitario != nil {
		lote.PrecoUnitario = preco
	}
	lote.UpdatedAt = now
	return loteRepo.Update(lote)
}

// Distribuicao transfere estoque hierarquia abaixo: debita a origem
// (verificando o disponível) e credita o destino na mesma transação.
func (uc *MovimentacaoUseCase) Distribuicao(ctx context.Context, userID string, in dto.DistribuicaoRequest) (*entity.Movimentacao, error) {
	if in.OrigemTipo == in.DestinoTipo && in.OrigemID == in.DestinoID {
		return nil, domain.ErrInvalidInput
	}
	// Distribuição é sempre em quantidade inteira, independente da unidade.
	if !in.Quantidade.Equal(in.Quantidade.Truncate(0)) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.validaProdutoELocal(in.ProdutoID, in.Quantidade, in.OrigemTipo, in.OrigemID); err != nil {
		return nil, err
	}
	destino, err := uc.localRepo.Get(in.DestinoTipo, in.DestinoID)
	if err != nil {
		return nil, err
	}
	if destino == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.Movimentacao{
		ID:          uuid.New().String(),
		TransacaoID: uuid.New().String(),
		Tipo:        entity.MovTipoDistribuicao,
		ProdutoID:   in.ProdutoID,
		OrigemTipo:  in.OrigemTipo,
		OrigemID:    in.OrigemID,
		DestinoTipo: in.DestinoTipo,
		DestinoID:   in.DestinoID,
		Quantidade:  in.Quantidade,
		Data:        now,
		CreatedAt:   now,
		CreatedBy:   userID,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		estoqueRepo repository.EstoqueRepository,
		_ repository.LoteRepository,
	) error {
		if err := debitar(estoqueRepo, in.ProdutoID, in.OrigemTipo, in.OrigemID, in.Quantidade, now); err != nil {
			return err
		}
		if err := creditar(estoqueRepo, in.ProdutoID, in.DestinoTipo, in.DestinoID, in.Quantidade, now); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// EstornoDistribuicao devolve o estoque de uma distribuição para a origem e
// grava a linha de estorno vinculada à movimentação original. Cada
// distribuição pode ser estornada uma única vez.
func (uc *MovimentacaoUseCase) EstornoDistribuicao(ctx context.Context, userID, movimentacaoID string) (*entity.Movimentacao, error) {
	original, err := uc.movRepo.GetByID(movimentacaoID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrNotFound
	}
	if original.Tipo != entity.MovTipoDistribuicao {
		return nil, domain.ErrInvalidInput
	}
	// Atalho sem transação; a verificação que vale é a de dentro, com a
	// linha da movimentação original bloqueada.
	existente, err := uc.movRepo.GetEstornoDe(movimentacaoID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrAlreadyReversed
	}

	now := time.Now()
	estorno := &entity.Movimentacao{
		ID:          uuid.New().String(),
		TransacaoID: uuid.New().String(),
		Tipo:        entity.MovTipoEstornoDistribuicao,
		ProdutoID:   original.ProdutoID,
		OrigemTipo:  original.DestinoTipo,
		OrigemID:    original.DestinoID,
		DestinoTipo: original.OrigemTipo,
		DestinoID:   original.OrigemID,
		Quantidade:  original.Quantidade,
		EstornoDe:   original.ID,
		Data:        now,
		CreatedAt:   now,
		CreatedBy:   userID,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		estoqueRepo repository.EstoqueRepository,
		_ repository.LoteRepository,
	) error {
		// Lock na movimentação original: estornos concorrentes serializam
		// aqui e o segundo enxerga o estorno gravado pelo primeiro.
		trancada, err := movRepo.GetByIDForUpdate(original.ID)
		if err != nil {
			return err
		}
		if trancada == nil {
			return domain.ErrNotFound
		}
		existente, err := movRepo.GetEstornoDe(original.ID)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrAlreadyReversed
		}

		if err := debitar(estoqueRepo, original.ProdutoID, original.DestinoTipo, original.DestinoID, original.Quantidade, now); err != nil {
			return err
		}
		if err := creditar(estoqueRepo, original.ProdutoID, original.OrigemTipo, original.OrigemID, original.Quantidade, now); err != nil {
			return err
		}
		return movRepo.Create(estorno)
	})
	if err != nil {
		return nil, err
	}
	return estorno, nil
}

// SaidaJustificada registra uma saída sem destino interno. A justificativa
// é obrigatória e não pode ser vazia.
func (uc *MovimentacaoUseCase) SaidaJustificada(ctx context.Context, userID string, in dto.SaidaJustificadaRequest) (*entity.Movimentacao, error) {
	if strings.TrimSpace(in.Justificativa) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantidade.Equal(in.Quantidade.Truncate(0)) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.validaProdutoELocal(in.ProdutoID, in.Quantidade, in.OrigemTipo, in.OrigemID); err != nil {
		return nil, err
	}

	now := time.Now()
	mov := &entity.Movimentacao{
		ID:            uuid.New().String(),
		TransacaoID:   uuid.New().String(),
		Tipo:          entity.MovTipoSaidaJustificada,
		ProdutoID:     in.ProdutoID,
		OrigemTipo:    in.OrigemTipo,
		OrigemID:      in.OrigemID,
		Quantidade:    in.Quantidade,
		Justificativa: strings.TrimSpace(in.Justificativa),
		Data:          now,
		CreatedAt:     now,
		CreatedBy:     userID,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		estoqueRepo repository.EstoqueRepository,
		_ repository.LoteRepository,
	) error {
		if err := debitar(estoqueRepo, in.ProdutoID, in.OrigemTipo, in.OrigemID, in.Quantidade, now); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// Consumo registra o consumo de material por um setor (baixa no saldo do setor).
func (uc *MovimentacaoUseCase) Consumo(ctx context.Context, userID string, in dto.ConsumoRequest) (*entity.Movimentacao, error) {
	if _, err := uc.validaProdutoELocal(in.ProdutoID, in.Quantidade, entity.LocalTipoSetor, in.SetorID); err != nil {
		return nil, err
	}

	now := time.Now()
	mov := &entity.Movimentacao{
		ID:          uuid.New().String(),
		TransacaoID: uuid.New().String(),
		Tipo:        entity.MovTipoConsumo,
		ProdutoID:   in.ProdutoID,
		OrigemTipo:  entity.LocalTipoSetor,
		OrigemID:    in.SetorID,
		Quantidade:  in.Quantidade,
		Data:        now,
		CreatedAt:   now,
		CreatedBy:   userID,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		estoqueRepo repository.EstoqueRepository,
		_ repository.LoteRepository,
	) error {
		if err := debitar(estoqueRepo, in.ProdutoID, entity.LocalTipoSetor, in.SetorID, in.Quantidade, now); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// SaidaSetor aplica o carrinho inteiro (N linhas para um setor) em UMA
// transação: ou todas as linhas entram, ou nenhuma. Substitui o laço
// sequencial sem rollback do cliente original.
func (uc *MovimentacaoUseCase) SaidaSetor(ctx context.Context, userID string, in dto.SaidaSetorRequest) ([]*entity.Movimentacao, error) {
	if len(in.Linhas) == 0 {
		return nil, domain.ErrInvalidInput
	}
	setor, err := uc.localRepo.Get(entity.LocalTipoSetor, in.SetorID)
	if err != nil {
		return nil, err
	}
	if setor == nil {
		return nil, domain.ErrNotFound
	}
	for _, linha := range in.Linhas {
		if _, err := uc.validaProdutoELocal(linha.ProdutoID, linha.Quantidade, linha.OrigemTipo, linha.OrigemID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	transacaoID := uuid.New().String()
	movs := make([]*entity.Movimentacao, 0, len(in.Linhas))
	for _, linha := range in.Linhas {
		movs = append(movs, &entity.Movimentacao{
			ID:          uuid.New().String(),
			TransacaoID: transacaoID,
			Tipo:        entity.MovTipoDistribuicao,
			ProdutoID:   linha.ProdutoID,
			OrigemTipo:  linha.OrigemTipo,
			OrigemID:    linha.OrigemID,
			DestinoTipo: entity.LocalTipoSetor,
			DestinoID:   in.SetorID,
			Quantidade:  linha.Quantidade,
			Data:        now,
			CreatedAt:   now,
			CreatedBy:   userID,
		})
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		estoqueRepo repository.EstoqueRepository,
		_ repository.LoteRepository,
	) error {
		for i, linha := range in.Linhas {
			if err := debitar(estoqueRepo, linha.ProdutoID, linha.OrigemTipo, linha.OrigemID, linha.Quantidade, now); err != nil {
				return err
			}
			if err := creditar(estoqueRepo, linha.ProdutoID, entity.LocalTipoSetor, in.SetorID, linha.Quantidade, now); err != nil {
				return err
			}
			if err := movRepo.Create(movs[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movs, nil
}

// List consulta o livro-razão com filtros.
func (uc *MovimentacaoUseCase) List(f repository.MovimentacaoFilter) ([]*entity.Movimentacao, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	return uc.movRepo.List(f)
}
