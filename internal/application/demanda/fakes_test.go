package demanda

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

type fakeDemandaRepo struct {
	demandas     map[string]*entity.Demanda
	atendimentos []*entity.Atendimento
}

func newFakeDemandaRepo() *fakeDemandaRepo {
	return &fakeDemandaRepo{demandas: make(map[string]*entity.Demanda)}
}

func (f *fakeDemandaRepo) Create(d *entity.Demanda) error {
	f.demandas[d.ID] = d
	return nil
}

func (f *fakeDemandaRepo) GetByID(id string) (*entity.Demanda, error) {
	d, ok := f.demandas[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	cp.Itens = append([]entity.DemandaItem(nil), d.Itens...)
	return &cp, nil
}

func (f *fakeDemandaRepo) GetByIDForUpdate(id string) (*entity.Demanda, error) {
	return f.GetByID(id)
}

func (f *fakeDemandaRepo) List(repository.DemandaFilter) ([]*entity.Demanda, error) {
	var out []*entity.Demanda
	for _, d := range f.demandas {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDemandaRepo) UpdateStatus(id, status string) error {
	if d, ok := f.demandas[id]; ok {
		d.Status = status
	}
	return nil
}

func (f *fakeDemandaRepo) UpdateItemAtendido(itemID string, atendido decimal.Decimal) error {
	for _, d := range f.demandas {
		for i := range d.Itens {
			if d.Itens[i].ID == itemID {
				d.Itens[i].Atendido = atendido
				return nil
			}
		}
	}
	return nil
}

func (f *fakeDemandaRepo) CreateAtendimento(a *entity.Atendimento) error {
	f.atendimentos = append(f.atendimentos, a)
	return nil
}

func (f *fakeDemandaRepo) ListAtendimentos(demandaID string) ([]*entity.Atendimento, error) {
	var out []*entity.Atendimento
	for _, a := range f.atendimentos {
		if a.DemandaID == demandaID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeSetorRepo struct{ setores map[string]*entity.Setor }

func (f *fakeSetorRepo) Create(*entity.Setor) error { return nil }
func (f *fakeSetorRepo) GetByID(id string) (*entity.Setor, error) {
	return f.setores[id], nil
}
func (f *fakeSetorRepo) Update(*entity.Setor) error             { return nil }
func (f *fakeSetorRepo) List(int, int) ([]*entity.Setor, error) { return nil, nil }
func (f *fakeSetorRepo) Delete(string) error                    { return nil }

type fakeProdutoRepo struct{ produtos map[string]*entity.Produto }

func (f *fakeProdutoRepo) Create(*entity.Produto) error      { return nil }
func (f *fakeProdutoRepo) Update(*entity.Produto) error      { return nil }
func (f *fakeProdutoRepo) Delete(string) error               { return nil }
func (f *fakeProdutoRepo) NextCodigoSeq(string) (int, error) { return 1, nil }
func (f *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return f.produtos[id], nil
}
func (f *fakeProdutoRepo) GetByCodigo(string) (*entity.Produto, error)   { return nil, nil }
func (f *fakeProdutoRepo) List(int, int) ([]*entity.Produto, error)      { return nil, nil }
func (f *fakeProdutoRepo) Search(string, int) ([]*entity.Produto, error) { return nil, nil }

type fakeLocalRepo struct{ locais map[string]*entity.Local }

func localKey(tipo, id string) string { return tipo + "|" + id }

func (f *fakeLocalRepo) Get(tipo, id string) (*entity.Local, error) {
	return f.locais[localKey(tipo, id)], nil
}

type fakeEstoqueRepo struct{ saldos map[string]*entity.Estoque }

func newFakeEstoqueRepo() *fakeEstoqueRepo {
	return &fakeEstoqueRepo{saldos: make(map[string]*entity.Estoque)}
}

func estoqueKey(produtoID, tipo, id string) string { return produtoID + "|" + tipo + "|" + id }

func (f *fakeEstoqueRepo) seed(produtoID, tipo, id string, qtd decimal.Decimal) {
	f.saldos[estoqueKey(produtoID, tipo, id)] = &entity.Estoque{
		ProdutoID: produtoID, LocalTipo: tipo, LocalID: id,
		Quantidade: qtd, Disponivel: qtd,
	}
}

func (f *fakeEstoqueRepo) disponivel(produtoID, tipo, id string) decimal.Decimal {
	if s, ok := f.saldos[estoqueKey(produtoID, tipo, id)]; ok {
		return s.Disponivel
	}
	return decimal.Zero
}

func (f *fakeEstoqueRepo) Get(produtoID, localTipo, localID string) (*entity.Estoque, error) {
	return f.GetForUpdate(produtoID, localTipo, localID)
}

func (f *fakeEstoqueRepo) GetForUpdate(produtoID, localTipo, localID string) (*entity.Estoque, error) {
	if s, ok := f.saldos[estoqueKey(produtoID, localTipo, localID)]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.Estoque{
		ProdutoID: produtoID, LocalTipo: localTipo, LocalID: localID,
		Quantidade: decimal.Zero, Disponivel: decimal.Zero,
	}, nil
}

func (f *fakeEstoqueRepo) Upsert(e *entity.Estoque) error {
	cp := *e
	f.saldos[estoqueKey(e.ProdutoID, e.LocalTipo, e.LocalID)] = &cp
	return nil
}

func (f *fakeEstoqueRepo) ListByLocal(string, string) ([]*entity.Estoque, error) { return nil, nil }

func (f *fakeEstoqueRepo) ListByProduto(produtoID string) ([]*entity.Estoque, error) {
	var out []*entity.Estoque
	for _, s := range f.saldos {
		if s.ProdutoID == produtoID && s.Disponivel.GreaterThan(decimal.Zero) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeEstoqueRepo) ListByCentral(string) ([]*entity.Estoque, error) { return nil, nil }
func (f *fakeEstoqueRepo) ListAll() ([]*entity.Estoque, error)             { return nil, nil }

func (f *fakeEstoqueRepo) snapshot() map[string]*entity.Estoque {
	snap := make(map[string]*entity.Estoque, len(f.saldos))
	for k, v := range f.saldos {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

type fakeMovRepo struct{ movs []*entity.Movimentacao }

func (f *fakeMovRepo) Create(m *entity.Movimentacao) error {
	f.movs = append(f.movs, m)
	return nil
}

func (f *fakeMovRepo) GetByID(string) (*entity.Movimentacao, error)          { return nil, nil }
func (f *fakeMovRepo) GetByIDForUpdate(string) (*entity.Movimentacao, error) { return nil, nil }
func (f *fakeMovRepo) GetEstornoDe(string) (*entity.Movimentacao, error)     { return nil, nil }
func (f *fakeMovRepo) List(repository.MovimentacaoFilter) ([]*entity.Movimentacao, error) {
	return f.movs, nil
}

// fakeTxRunner restaura os saldos e o livro-razão quando a função falha,
// imitando o rollback da transação real. Os contadores da demanda são
// restaurados a partir de um snapshot dos itens.
type fakeTxRunner struct {
	movRepo     *fakeMovRepo
	estoqueRepo *fakeEstoqueRepo
	demandaRepo *fakeDemandaRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.MovimentacaoRepository,
	repository.EstoqueRepository,
	repository.LoteRepository,
) error) error {
	return fn(f.movRepo, f.estoqueRepo, nil)
}

func (f *fakeTxRunner) RunDemanda(_ context.Context, fn func(
	repository.MovimentacaoRepository,
	repository.EstoqueRepository,
	repository.DemandaRepository,
) error) error {
	snapSaldos := f.estoqueRepo.snapshot()
	snapMovs := append([]*entity.Movimentacao(nil), f.movRepo.movs...)
	snapItens := make(map[string][]entity.DemandaItem, len(f.demandaRepo.demandas))
	for id, d := range f.demandaRepo.demandas {
		snapItens[id] = append([]entity.DemandaItem(nil), d.Itens...)
	}
	if err := fn(f.movRepo, f.estoqueRepo, f.demandaRepo); err != nil {
		f.estoqueRepo.saldos = snapSaldos
		f.movRepo.movs = snapMovs
		for id, itens := range snapItens {
			f.demandaRepo.demandas[id].Itens = itens
		}
		return err
	}
	return nil
}
