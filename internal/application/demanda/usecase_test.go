package demanda

import (
	"context"
	"testing"

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
	uc       *UseCase
	estoque  *fakeEstoqueRepo
	demandas *fakeDemandaRepo
	movs     *fakeMovRepo
}

func newFixture() *fixture {
	demandas := newFakeDemandaRepo()
	setores := &fakeSetorRepo{setores: map[string]*entity.Setor{
		"s1": {ID: "s1", AlmoxarifadoID: "a1", Nome: "Cozinha"},
	}}
	produtos := &fakeProdutoRepo{produtos: map[string]*entity.Produto{
		"pX": {ID: "pX", Codigo: "PAP-0001", Nome: "Caneta", Unidade: entity.UnidadeUN},
		"pY": {ID: "pY", Codigo: "PAP-0002", Nome: "Caderno", Unidade: entity.UnidadeUN},
	}}
	estoque := newFakeEstoqueRepo()
	locais := &fakeLocalRepo{locais: map[string]*entity.Local{
		localKey("almoxarifado", "loc1"):     {Tipo: "almoxarifado", ID: "loc1", Nome: "Geral"},
		localKey("sub_almoxarifado", "loc2"): {Tipo: "sub_almoxarifado", ID: "loc2", Nome: "Anexo"},
		localKey("setor", "s1"):              {Tipo: "setor", ID: "s1", Nome: "Cozinha"},
	}}
	movs := &fakeMovRepo{}
	tx := &fakeTxRunner{movRepo: movs, estoqueRepo: estoque, demandaRepo: demandas}
	return &fixture{
		uc:       NewUseCase(demandas, setores, produtos, estoque, locais, tx),
		estoque:  estoque,
		demandas: demandas,
		movs:     movs,
	}
}

func (fx *fixture) criaDemanda(t *testing.T, itens ...dto.CreateDemandaItem) *dto.DemandaResponse {
	t.Helper()
	d, err := fx.uc.Create("u1", dto.CreateDemandaRequest{SetorID: "s1", Itens: itens})
	require.NoError(t, err)
	return d
}

func TestCreateDemandaPendente(t *testing.T) {
	fx := newFixture()

	d := fx.criaDemanda(t,
		dto.CreateDemandaItem{ProdutoID: "pX", Quantidade: dec("10")},
		dto.CreateDemandaItem{ProdutoID: "pY", Quantidade: dec("5")},
	)
	assert.Equal(t, entity.DemandaStatusPendente, d.Status)
	require.Len(t, d.Itens, 2)
	assert.True(t, d.Itens[0].Atendido.IsZero())
	assert.True(t, d.Itens[0].Restante.Equal(dec("10")))
}

func TestCreateDemandaSetorInexistente(t *testing.T) {
	fx := newFixture()
	_, err := fx.uc.Create("u1", dto.CreateDemandaRequest{
		SetorID: "nao-existe",
		Itens:   []dto.CreateDemandaItem{{ProdutoID: "pX", Quantidade: dec("1")}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateDemandaSemItens(t *testing.T) {
	fx := newFixture()
	_, err := fx.uc.Create("u1", dto.CreateDemandaRequest{SetorID: "s1"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAtenderParcialEDepoisTotal(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("pX", "almoxarifado", "loc1", dec("100"))

	d := fx.criaDemanda(t, dto.CreateDemandaItem{ProdutoID: "pX", Quantidade: dec("10")})

	// primeiro atendimento parcial
	out, err := fx.uc.Atender(context.Background(), "u1", d.ID, dto.AtenderDemandaRequest{
		OrigemTipo: "almoxarifado",
		OrigemID:   "loc1",
		Itens:      []dto.AtenderItemRequest{{ProdutoID: "pX", Quantidade: dec("4")}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DemandaStatusParcial, out.Status)
	assert.True(t, out.Itens[0].Restante.Equal(dec("6")))

	// estoque foi movido da origem para o setor
	assert.True(t, fx.estoque.disponivel("pX", "almoxarifado", "loc1").Equal(dec("96")))
	assert.True(t, fx.estoque.disponivel("pX", "setor", "s1").Equal(dec("4")))
	require.Len(t, fx.movs.movs, 1)
	assert.Equal(t, entity.MovTipoDistribuicao, fx.movs.movs[0].Tipo)

	// segundo atendimento completa a demanda
	out, err = fx.uc.Atender(context.Background(), "u1", d.ID, dto.AtenderDemandaRequest{
		OrigemTipo: "almoxarifado",
		OrigemID:   "loc1",
		Itens:      []dto.AtenderItemRequest{{ProdutoID: "pX", Quantidade: dec("6")}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DemandaStatusAtendido, out.Status)
	assert.True(t, out.Itens[0].Restante.IsZero())
	require.Len(t, out.Atendimentos, 2)
}

func TestAtenderQuantidadeAlemDoRestante(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("pX", "almoxarifado", "loc1", dec("100"))

	d := fx.criaDemanda(t, dto.CreateDemandaItem{ProdutoID: "pX", Quantidade: dec("10")})

	_, err := fx.uc.Atender(context.Background(), "u1", d.ID, dto.AtenderDemandaRequest{
		OrigemTipo: "almoxarifado",
		OrigemID:   "loc1",
		Itens:      []dto.AtenderItemRequest{{ProdutoID: "pX", Quantidade: dec("11")}},
	})
	require.ErrorIs(t, err, domain.ErrQuantityExceeded)
	assert.True(t, fx.estoque.disponivel("pX", "almoxarifado", "loc1").Equal(dec("100")))
}

func TestAtenderRejeitaProdutoRepetidoNoPedido(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("pX", "almoxarifado", "loc1", dec("100"))

	d := fx.criaDemanda(t, dto.CreateDemandaItem{ProdutoID: "pX", Quantidade: dec("8")})

	// duas linhas de 5 para o mesmo produto passariam na checagem linha a
	// linha e levariam o atendido a 10 contra um pedido de 8
	_, err := fx.uc.Atender(context.Background(), "u1", d.ID, dto.AtenderDemandaRequest{
		OrigemTipo: "almoxarifado",
		OrigemID:   "loc1",
		Itens: []dto.AtenderItemRequest{
			{ProdutoID: "pX", Quantidade: dec("5")},
			{ProdutoID: "pX", Quantidade: dec("5")},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	atual, err := fx.uc.GetByID(d.ID)
	require.NoError(t, err)
	assert.True(t, atual.Itens[0].Atendido.IsZero())
	assert.True(t, fx.estoque.disponivel("pX", "almoxarifado", "loc1").Equal(dec("100")))
	assert.Empty(t, fx.movs.movs)
}

// demandaRepoLeituraVelha devolve, na leitura feita fora da transação, uma
// cópia com contadores zerados, imitando outro atendimento comitado entre a
// pré-validação e o início da transação.
type demandaRepoLeituraVelha struct{ *fakeDemandaRepo }

func (f *demandaRepoLeituraVelha) GetByID(id string) (*entity.Demanda, error) {
	d, err := f.fakeDemandaRepo.GetByID(id)
	if d != nil {
		d.Status = entity.DemandaStatusPendente
		for i := range d.Itens {
			d.Itens[i].Atendido = decimal.Zero
		}
	}
	return d, err
}

func TestAtenderRevalidaRestanteDentroDaTransacao(t *testing.T) {
	demandas := newFakeDemandaRepo()
	setores := &fakeSetorRepo{setores: map[string]*entity.Setor{
		"s1": {ID: "s1", AlmoxarifadoID: "a1", Nome: "Cozinha"},
	}}
	produtos := &fakeProdutoRepo{produtos: map[string]*entity.Produto{
		"pX": {ID: "pX", Codigo: "PAP-0001", Nome: "Caneta", Unidade: entity.UnidadeUN},
	}}
	estoque := newFakeEstoqueRepo()
	locais := &fakeLocalRepo{locais: map[string]*entity.Local{
		localKey("almoxarifado", "loc1"): {Tipo: "almoxarifado", ID: "loc1", Nome: "Geral"},
		localKey("setor", "s1"):          {Tipo: "setor", ID: "s1", Nome: "Cozinha"},
	}}
	movs := &fakeMovRepo{}
	tx := &fakeTxRunner{movRepo: movs, estoqueRepo: estoque, demandaRepo: demandas}
	uc := NewUseCase(&demandaRepoLeituraVelha{demandas}, setores, produtos, estoque, locais, tx)

	estoque.seed("pX", "almoxarifado", "loc1", dec("100"))
	d, err := uc.Create("u1", dto.CreateDemandaRequest{
		SetorID: "s1",
		Itens:   []dto.CreateDemandaItem{{ProdutoID: "pX", Quantidade: dec("8")}},
	})
	require.NoError(t, err)

	// atendimento concorrente já comitado: restante real é 3
	require.NoError(t, demandas.UpdateItemAtendido(d.Itens[0].ID, dec("5")))

	// a leitura velha vê restante 8 e deixa passar 5; a releitura dentro da
	// transação vê restante 3 e rejeita
	_, err = uc.Atender(context.Background(), "u1", d.ID, dto.AtenderDemandaRequest{
		OrigemTipo: "almoxarifado",
		OrigemID:   "loc1",
		Itens:      []dto.AtenderItemRequest{{ProdutoID: "pX", Quantidade: dec("5")}},
	})
	require.ErrorIs(t, err, domain.ErrQuantityExceeded)
	assert.True(t, estoque.disponivel("pX", "almoxarifado", "loc1").Equal(dec("100")))
	assert.True(t, demandas.demandas[d.ID].Itens[0].Atendido.Equal(dec("5")))
	assert.Empty(t, movs.movs)
}

func TestAtenderDemandaJaConcluida(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("pX", "almoxarifado", "loc1", dec("100"))

	d := fx.criaDemanda(t, dto.CreateDemandaItem{ProdutoID: "pX", Quantidade: dec("3")})
	_, err := fx.uc.Atender(context.Background(), "u1", d.ID, dto.AtenderDemandaRequest{
		OrigemTipo: "almoxarifado",
		OrigemID:   "loc1",
		Itens:      []dto.AtenderItemRequest{{ProdutoID: "pX", Quantidade: dec("3")}},
	})
	require.NoError(t, err)

	_, err = fx.uc.Atender(context.Background(), "u1", d.ID, dto.AtenderDemandaRequest{
		OrigemTipo: "almoxarifado",
		OrigemID:   "loc1",
		Itens:      []dto.AtenderItemRequest{{ProdutoID: "pX", Quantidade: dec("1")}},
	})
	require.ErrorIs(t, err, domain.ErrDemandFulfilled)
}

func TestAtenderSaldoInsuficienteNaOrigemReverteTudo(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("pX", "almoxarifado", "loc1", dec("10"))
	fx.estoque.seed("pY", "almoxarifado", "loc1", dec("1"))

	d := fx.criaDemanda(t,
		dto.CreateDemandaItem{ProdutoID: "pX", Quantidade: dec("5")},
		dto.CreateDemandaItem{ProdutoID: "pY", Quantidade: dec("3")},
	)

	// o segundo item estoura o saldo da origem: nada pode ficar aplicado
	_, err := fx.uc.Atender(context.Background(), "u1", d.ID, dto.AtenderDemandaRequest{
		OrigemTipo: "almoxarifado",
		OrigemID:   "loc1",
		Itens: []dto.AtenderItemRequest{
			{ProdutoID: "pX", Quantidade: dec("5")},
			{ProdutoID: "pY", Quantidade: dec("3")},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, fx.estoque.disponivel("pX", "almoxarifado", "loc1").Equal(dec("10")))
	assert.True(t, fx.estoque.disponivel("pX", "setor", "s1").IsZero())
	assert.Empty(t, fx.movs.movs)

	atual, err := fx.uc.GetByID(d.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DemandaStatusPendente, atual.Status)
	assert.True(t, atual.Itens[0].Atendido.IsZero())
}

func TestAtenderOrigemSetorRejeitada(t *testing.T) {
	fx := newFixture()
	d := fx.criaDemanda(t, dto.CreateDemandaItem{ProdutoID: "pX", Quantidade: dec("5")})

	_, err := fx.uc.Atender(context.Background(), "u1", d.ID, dto.AtenderDemandaRequest{
		OrigemTipo: "setor",
		OrigemID:   "s1",
		Itens:      []dto.AtenderItemRequest{{ProdutoID: "pX", Quantidade: dec("1")}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAtenderProdutoForaDaDemanda(t *testing.T) {
	fx := newFixture()
	fx.estoque.seed("pY", "almoxarifado", "loc1", dec("10"))
	d := fx.criaDemanda(t, dto.CreateDemandaItem{ProdutoID: "pX", Quantidade: dec("5")})

	_, err := fx.uc.Atender(context.Background(), "u1", d.ID, dto.AtenderDemandaRequest{
		OrigemTipo: "almoxarifado",
		OrigemID:   "loc1",
		Itens:      []dto.AtenderItemRequest{{ProdutoID: "pY", Quantidade: dec("1")}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrigensRankingExemplo(t *testing.T) {
	fx := newFixture()

	// X pede 10 e nada foi atendido; Y já está satisfeito e não contribui
	d := fx.criaDemanda(t,
		dto.CreateDemandaItem{ProdutoID: "pX", Quantidade: dec("10")},
		dto.CreateDemandaItem{ProdutoID: "pY", Quantidade: dec("5")},
	)
	stored, err := fx.demandas.GetByID(d.ID)
	require.NoError(t, err)
	require.NoError(t, fx.demandas.UpdateItemAtendido(stored.Itens[1].ID, dec("5")))

	fx.estoque.seed("pX", "almoxarifado", "loc1", dec("4"))
	fx.estoque.seed("pX", "sub_almoxarifado", "loc2", dec("20"))
	fx.estoque.seed("pY", "almoxarifado", "loc1", dec("50"))

	out, err := fx.uc.Origens(d.ID)
	require.NoError(t, err)
	require.Len(t, out.Ranking, 2)

	assert.Equal(t, "loc2", out.Ranking[0].OrigemID)
	assert.True(t, out.Ranking[0].TotalCobertura.Equal(dec("10"))) // clampado ao restante
	assert.Equal(t, 1, out.Ranking[0].ItensIntegrais)

	assert.Equal(t, "loc1", out.Ranking[1].OrigemID)
	assert.True(t, out.Ranking[1].TotalCobertura.Equal(dec("4")))
	assert.Equal(t, 0, out.Ranking[1].ItensIntegrais)
	assert.Equal(t, 1, out.Ranking[1].ItensComSaldo)

	// Y está satisfeito: suas origens não entram no mapa
	_, temY := out.Origens["pY"]
	assert.False(t, temY)
}

func TestOrigensDemandaInexistente(t *testing.T) {
	fx := newFixture()
	_, err := fx.uc.Origens("nao-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
