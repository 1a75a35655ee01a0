package estoque

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

type fixture struct {
	uc      *MovimentacaoUseCase
	estoque *fakeEstoqueRepo
	movs    *fakeMovRepo
	lotes   *fakeLoteRepo
}

func newFixture() *fixture {
	produtos := &fakeProdutoRepo{produtos: map[string]*entity.Produto{
		"p-caneta": {ID: "p-caneta", Codigo: "PAP-0001", Nome: "Caneta", Unidade: entity.UnidadeUN},
		"p-arroz":  {ID: "p-arroz", Codigo: "ALI-0001", Nome: "Arroz", Unidade: entity.UnidadeKG},
		"p-vacina": {ID: "p-vacina", Codigo: "MED-0001", Nome: "Vacina", Unidade: entity.UnidadeUN, ControleLote: true},
	}}
	locais := &fakeLocalRepo{locais: map[string]*entity.Local{
		localKey("almoxarifado", "a1"):     {Tipo: "almoxarifado", ID: "a1", Nome: "Geral"},
		localKey("sub_almoxarifado", "b1"): {Tipo: "sub_almoxarifado", ID: "b1", Nome: "Anexo"},
		localKey("setor", "s1"):            {Tipo: "setor", ID: "s1", Nome: "Cozinha"},
	}}
	movs := &fakeMovRepo{}
	estoque := newFakeEstoqueRepo()
	lotes := &fakeLoteRepo{}
	tx := &fakeTxRunner{movRepo: movs, estoqueRepo: estoque, loteRepo: lotes}
	return &fixture{
		uc:      NewMovimentacaoUseCase(tx, produtos, locais, movs),
		estoque: estoque,
		movs:    movs,
		lotes:   lotes,
	}
}

func TestEntradaCreditaSaldo(t *testing.T) {
	fx := newFixture()

	mov, err := fx.uc.Entrada(context.Background(), "u1", dto.EntradaRequest{
		ProdutoID:   "p-caneta",
		Quantidade:  dec("100"),
		DestinoTipo: "almoxarifado",
		DestinoID:   "a1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovTipoEntrada, mov.Tipo)
	assert.True(t, fx.estoque.disponivel("p-caneta", "almoxarifado", "a1").Equal(dec("100")))
	assert.Len(t, fx.movs.movs, 1)
}

func TestEntradaExigeLoteQuandoProdutoControlado(t *testing.T) {
	fx := newFixture()

	_, err := fx.uc.Entrada(context.Background(), "u1", dto.EntradaRequest{
		ProdutoID:   "p-vacina",
		Quantidade:  dec("10"),
		DestinoTipo: "almoxarifado",
		DestinoID:   "a1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	validade := time.Now().AddDate(0, 6, 0)
	_, err = fx.uc.Entrada(context.Background(), "u1", dto.EntradaRequest{
		ProdutoID:    "p-vacina",
		Quantidade:   dec("10"),
		DestinoTipo:  "almoxarifado",
		DestinoID:    "a1",
		LoteNumero:   "L-2026-01",
		LoteValidade: &validade,
	})
	require.NoError(t, err)
	require.Len(t, fx.lotes.lotes, 1)
	assert.Equal(t, "L-2026-01", fx.lotes.lotes[0].Numero)
}

func TestEntradaProdutoInexistente(t *testing.T) {
	fx := newFixture()
	_, err := fx.uc.Entrada(context.Background(), "u1", dto.EntradaRequest{
		ProdutoID: "nao-existe", Quantidade: dec("1"),
		DestinoTipo: "almoxarifado", DestinoID: "a1",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDistribuicaoMoveSaldo(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("p-caneta", "almoxarifado", "a1", dec("50"))

	mov, err := fx.uc.Distribuicao(context.Background(), "u1", dto.DistribuicaoRequest{
		ProdutoID: "p-caneta", Quantidade: dec("20"),
		OrigemTipo: "almoxarifado", OrigemID: "a1",
		DestinoTipo: "sub_almoxarifado", DestinoID: "b1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovTipoDistribuicao, mov.Tipo)
	assert.True(t, fx.estoque.disponivel("p-caneta", "almoxarifado", "a1").Equal(dec("30")))
	assert.True(t, fx.estoque.disponivel("p-caneta", "sub_almoxarifado", "b1").Equal(dec("20")))
}

func TestDistribuicaoSaldoInsuficiente(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("p-caneta", "almoxarifado", "a1", dec("5"))

	_, err := fx.uc.Distribuicao(context.Background(), "u1", dto.DistribuicaoRequest{
		ProdutoID: "p-caneta", Quantidade: dec("8"),
		OrigemTipo: "almoxarifado", OrigemID: "a1",
		DestinoTipo: "setor", DestinoID: "s1",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// rollback: nada mudou e nada foi gravado no livro-razão
	assert.True(t, fx.estoque.disponivel("p-caneta", "almoxarifado", "a1").Equal(dec("5")))
	assert.True(t, fx.estoque.disponivel("p-caneta", "setor", "s1").IsZero())
	assert.Empty(t, fx.movs.movs)
}

func TestDistribuicaoOrigemIgualDestino(t *testing.T) {
	fx := newFixture()
	_, err := fx.uc.Distribuicao(context.Background(), "u1", dto.DistribuicaoRequest{
		ProdutoID: "p-caneta", Quantidade: dec("1"),
		OrigemTipo: "almoxarifado", OrigemID: "a1",
		DestinoTipo: "almoxarifado", DestinoID: "a1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDistribuicaoSempreInteira(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("p-arroz", "almoxarifado", "a1", dec("50"))

	// mesmo para produto fracionável (KG) a distribuição é em inteiros
	_, err := fx.uc.Distribuicao(context.Background(), "u1", dto.DistribuicaoRequest{
		ProdutoID: "p-arroz", Quantidade: dec("2.5"),
		OrigemTipo: "almoxarifado", OrigemID: "a1",
		DestinoTipo: "setor", DestinoID: "s1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConsumoRespeitaUnidade(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("p-caneta", "setor", "s1", dec("10"))
	fx.estoque.seed("p-arroz", "setor", "s1", dec("10"))

	// UN não admite fração
	_, err := fx.uc.Consumo(context.Background(), "u1", dto.ConsumoRequest{
		ProdutoID: "p-caneta", Quantidade: dec("1.5"), SetorID: "s1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// KG admite até 2 casas
	mov, err := fx.uc.Consumo(context.Background(), "u1", dto.ConsumoRequest{
		ProdutoID: "p-arroz", Quantidade: dec("1.25"), SetorID: "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovTipoConsumo, mov.Tipo)
	assert.True(t, fx.estoque.disponivel("p-arroz", "setor", "s1").Equal(dec("8.75")))

	// mas não 3 casas
	_, err = fx.uc.Consumo(context.Background(), "u1", dto.ConsumoRequest{
		ProdutoID: "p-arroz", Quantidade: dec("1.255"), SetorID: "s1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaidaJustificadaExigeJustificativa(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("p-caneta", "almoxarifado", "a1", dec("10"))

	_, err := fx.uc.SaidaJustificada(context.Background(), "u1", dto.SaidaJustificadaRequest{
		ProdutoID: "p-caneta", Quantidade: dec("2"),
		OrigemTipo: "almoxarifado", OrigemID: "a1",
		Justificativa: "   ",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	mov, err := fx.uc.SaidaJustificada(context.Background(), "u1", dto.SaidaJustificadaRequest{
		ProdutoID: "p-caneta", Quantidade: dec("2"),
		OrigemTipo: "almoxarifado", OrigemID: "a1",
		Justificativa: "vencimento do lote",
	})
	require.NoError(t, err)
	assert.Equal(t, "vencimento do lote", mov.Justificativa)
	assert.True(t, fx.estoque.disponivel("p-caneta", "almoxarifado", "a1").Equal(dec("8")))
}

func TestEstornoDistribuicaoUmaUnicaVez(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("p-caneta", "almoxarifado", "a1", dec("50"))

	mov, err := fx.uc.Distribuicao(context.Background(), "u1", dto.DistribuicaoRequest{
		ProdutoID: "p-caneta", Quantidade: dec("20"),
		OrigemTipo: "almoxarifado", OrigemID: "a1",
		DestinoTipo: "sub_almoxarifado", DestinoID: "b1",
	})
	require.NoError(t, err)

	estorno, err := fx.uc.EstornoDistribuicao(context.Background(), "u2", mov.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MovTipoEstornoDistribuicao, estorno.Tipo)
	assert.Equal(t, mov.ID, estorno.EstornoDe)

	// saldo voltou ao estado original
	assert.True(t, fx.estoque.disponivel("p-caneta", "almoxarifado", "a1").Equal(dec("50")))
	assert.True(t, fx.estoque.disponivel("p-caneta", "sub_almoxarifado", "b1").IsZero())

	// segunda tentativa é rejeitada
	_, err = fx.uc.EstornoDistribuicao(context.Background(), "u2", mov.ID)
	require.ErrorIs(t, err, domain.ErrAlreadyReversed)
}

func TestEstornoSomenteDeDistribuicao(t *testing.T) {
	fx := newFixture()

	entrada, err := fx.uc.Entrada(context.Background(), "u1", dto.EntradaRequest{
		ProdutoID: "p-caneta", Quantidade: dec("10"),
		DestinoTipo: "almoxarifado", DestinoID: "a1",
	})
	require.NoError(t, err)

	_, err = fx.uc.EstornoDistribuicao(context.Background(), "u1", entrada.ID)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = fx.uc.EstornoDistribuicao(context.Background(), "u1", "nao-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// movRepoEstornoAtrasado devolve nil na consulta de estorno feita fora da
// transação, imitando outra requisição que comita o estorno da mesma
// distribuição entre a pré-verificação e o início da transação.
type movRepoEstornoAtrasado struct{ *fakeMovRepo }

func (m *movRepoEstornoAtrasado) GetEstornoDe(string) (*entity.Movimentacao, error) {
	return nil, nil
}

func TestEstornoConcorrenteBarradoDentroDaTransacao(t *testing.T) {
	produtos := &fakeProdutoRepo{produtos: map[string]*entity.Produto{
		"p-caneta": {ID: "p-caneta", Codigo: "PAP-0001", Nome: "Caneta", Unidade: entity.UnidadeUN},
	}}
	locais := &fakeLocalRepo{locais: map[string]*entity.Local{
		localKey("almoxarifado", "a1"):     {Tipo: "almoxarifado", ID: "a1", Nome: "Geral"},
		localKey("sub_almoxarifado", "b1"): {Tipo: "sub_almoxarifado", ID: "b1", Nome: "Anexo"},
	}}
	movs := &fakeMovRepo{}
	estoque := newFakeEstoqueRepo()
	tx := &fakeTxRunner{movRepo: movs, estoqueRepo: estoque, loteRepo: &fakeLoteRepo{}}
	uc := NewMovimentacaoUseCase(tx, produtos, locais, &movRepoEstornoAtrasado{movs})

	// estado após o estorno concorrente: saldo já devolvido e linha gravada
	estoque.seed("p-caneta", "almoxarifado", "a1", dec("50"))
	estoque.seed("p-caneta", "sub_almoxarifado", "b1", dec("20"))
	movs.movs = append(movs.movs,
		&entity.Movimentacao{
			ID: "m1", Tipo: entity.MovTipoDistribuicao, ProdutoID: "p-caneta",
			OrigemTipo: "almoxarifado", OrigemID: "a1",
			DestinoTipo: "sub_almoxarifado", DestinoID: "b1",
			Quantidade: dec("20"),
		},
		&entity.Movimentacao{
			ID: "m2", Tipo: entity.MovTipoEstornoDistribuicao, ProdutoID: "p-caneta",
			OrigemTipo: "sub_almoxarifado", OrigemID: "b1",
			DestinoTipo: "almoxarifado", DestinoID: "a1",
			Quantidade: dec("20"), EstornoDe: "m1",
		},
	)

	// a pré-verificação não enxerga o estorno; a checagem com a linha da
	// movimentação bloqueada enxerga e impede a segunda devolução
	_, err := uc.EstornoDistribuicao(context.Background(), "u2", "m1")
	require.ErrorIs(t, err, domain.ErrAlreadyReversed)

	assert.True(t, estoque.disponivel("p-caneta", "almoxarifado", "a1").Equal(dec("50")))
	assert.True(t, estoque.disponivel("p-caneta", "sub_almoxarifado", "b1").Equal(dec("20")))
	assert.Len(t, movs.movs, 2)
}

func TestSaidaSetorAtomica(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("p-caneta", "almoxarifado", "a1", dec("10"))
	fx.estoque.seed("p-arroz", "almoxarifado", "a1", dec("2"))

	// a segunda linha estoura o saldo: nenhuma das duas pode ser aplicada
	_, err := fx.uc.SaidaSetor(context.Background(), "u1", dto.SaidaSetorRequest{
		SetorID: "s1",
		Linhas: []dto.CarrinhoLinha{
			{ProdutoID: "p-caneta", OrigemTipo: "almoxarifado", OrigemID: "a1", Quantidade: dec("5")},
			{ProdutoID: "p-arroz", OrigemTipo: "almoxarifado", OrigemID: "a1", Quantidade: dec("4")},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, fx.estoque.disponivel("p-caneta", "almoxarifado", "a1").Equal(dec("10")))
	assert.True(t, fx.estoque.disponivel("p-caneta", "setor", "s1").IsZero())
	assert.Empty(t, fx.movs.movs)
}

func TestSaidaSetorAplicaTodasAsLinhas(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("p-caneta", "almoxarifado", "a1", dec("10"))
	fx.estoque.seed("p-arroz", "almoxarifado", "a1", dec("10"))

	movs, err := fx.uc.SaidaSetor(context.Background(), "u1", dto.SaidaSetorRequest{
		SetorID: "s1",
		Linhas: []dto.CarrinhoLinha{
			{ProdutoID: "p-caneta", OrigemTipo: "almoxarifado", OrigemID: "a1", Quantidade: dec("5")},
			{ProdutoID: "p-arroz", OrigemTipo: "almoxarifado", OrigemID: "a1", Quantidade: dec("4")},
		},
	})
	require.NoError(t, err)
	require.Len(t, movs, 2)

	// todas as linhas compartilham a mesma transação
	assert.Equal(t, movs[0].TransacaoID, movs[1].TransacaoID)
	assert.True(t, fx.estoque.disponivel("p-caneta", "setor", "s1").Equal(dec("5")))
	assert.True(t, fx.estoque.disponivel("p-arroz", "setor", "s1").Equal(dec("4")))
}

func TestSaidaSetorCarrinhoVazio(t *testing.T) {
	fx := newFixture()
	_, err := fx.uc.SaidaSetor(context.Background(), "u1", dto.SaidaSetorRequest{SetorID: "s1"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
