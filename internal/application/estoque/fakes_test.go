package estoque

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// Fakes em memória para exercitar o motor de movimentações. O txRunner de
// teste tira um snapshot dos saldos antes de rodar a função e o restaura em
// caso de erro, imitando o rollback da transação real.

type fakeProdutoRepo struct{ produtos map[string]*entity.Produto }

func (f *fakeProdutoRepo) Create(*entity.Produto) error      { return nil }
func (f *fakeProdutoRepo) Update(*entity.Produto) error      { return nil }
func (f *fakeProdutoRepo) Delete(string) error               { return nil }
func (f *fakeProdutoRepo) NextCodigoSeq(string) (int, error) { return 1, nil }
func (f *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return f.produtos[id], nil
}
func (f *fakeProdutoRepo) GetByCodigo(string) (*entity.Produto, error) { return nil, nil }
func (f *fakeProdutoRepo) List(int, int) ([]*entity.Produto, error)    { return nil, nil }
func (f *fakeProdutoRepo) Search(string, int) ([]*entity.Produto, error) {
	return nil, nil
}

type fakeLocalRepo struct{ locais map[string]*entity.Local }

func localKey(tipo, id string) string { return tipo + "|" + id }

func (f *fakeLocalRepo) Get(tipo, id string) (*entity.Local, error) {
	return f.locais[localKey(tipo, id)], nil
}

type fakeMovRepo struct{ movs []*entity.Movimentacao }

func (f *fakeMovRepo) Create(m *entity.Movimentacao) error {
	f.movs = append(f.movs, m)
	return nil
}

func (f *fakeMovRepo) GetByID(id string) (*entity.Movimentacao, error) {
	for _, m := range f.movs {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovRepo) GetByIDForUpdate(id string) (*entity.Movimentacao, error) {
	return f.GetByID(id)
}

func (f *fakeMovRepo) GetEstornoDe(movimentacaoID string) (*entity.Movimentacao, error) {
	for _, m := range f.movs {
		if m.EstornoDe == movimentacaoID {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovRepo) List(repository.MovimentacaoFilter) ([]*entity.Movimentacao, error) {
	return f.movs, nil
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

func (f *fakeEstoqueRepo) ListByLocal(localTipo, localID string) ([]*entity.Estoque, error) {
	var out []*entity.Estoque
	for _, s := range f.saldos {
		if s.LocalTipo == localTipo && s.LocalID == localID {
			out = append(out, s)
		}
	}
	return out, nil
}

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

type fakeLoteRepo struct{ lotes []*entity.Lote }

func (f *fakeLoteRepo) Create(l *entity.Lote) error {
	f.lotes = append(f.lotes, l)
	return nil
}

func (f *fakeLoteRepo) GetByID(id string) (*entity.Lote, error) {
	for _, l := range f.lotes {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLoteRepo) GetByNumero(produtoID, localTipo, localID, numero string) (*entity.Lote, error) {
	for _, l := range f.lotes {
		if l.ProdutoID == produtoID && l.LocalTipo == localTipo && l.LocalID == localID && l.Numero == numero {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLoteRepo) Update(*entity.Lote) error { return nil }
func (f *fakeLoteRepo) ListByProduto(string) ([]*entity.Lote, error) {
	return f.lotes, nil
}

type fakeTxRunner struct {
	movRepo     *fakeMovRepo
	estoqueRepo *fakeEstoqueRepo
	loteRepo    *fakeLoteRepo
	demandaRepo repository.DemandaRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.MovimentacaoRepository,
	repository.EstoqueRepository,
	repository.LoteRepository,
) error) error {
	snapSaldos := f.estoqueRepo.snapshot()
	snapMovs := append([]*entity.Movimentacao(nil), f.movRepo.movs...)
	if err := fn(f.movRepo, f.estoqueRepo, f.loteRepo); err != nil {
		f.estoqueRepo.saldos = snapSaldos
		f.movRepo.movs = snapMovs
		return err
	}
	return nil
}

func (f *fakeTxRunner) RunDemanda(_ context.Context, fn func(
	repository.MovimentacaoRepository,
	repository.EstoqueRepository,
	repository.DemandaRepository,
) error) error {
	snapSaldos := f.estoqueRepo.snapshot()
	snapMovs := append([]*entity.Movimentacao(nil), f.movRepo.movs...)
	if err := fn(f.movRepo, f.estoqueRepo, f.demandaRepo); err != nil {
		f.estoqueRepo.saldos = snapSaldos
		f.movRepo.movs = snapMovs
		return err
	}
	return nil
}
