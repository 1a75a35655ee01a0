package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/entity"
)

type fakeCategoriaRepo struct{ categorias map[string]*entity.Categoria }

func (f *fakeCategoriaRepo) Create(*entity.Categoria) error { return nil }
func (f *fakeCategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	return f.categorias[id], nil
}
func (f *fakeCategoriaRepo) Update(*entity.Categoria) error             { return nil }
func (f *fakeCategoriaRepo) List(int, int) ([]*entity.Categoria, error) { return nil, nil }
func (f *fakeCategoriaRepo) Delete(string) error                        { return nil }

type fakeProdutoRepo struct {
	porCodigo map[string]*entity.Produto
	criados   []*entity.Produto
	proxSeq   int
	buscas    []string
}

func (f *fakeProdutoRepo) Create(p *entity.Produto) error {
	f.criados = append(f.criados, p)
	return nil
}
func (f *fakeProdutoRepo) GetByID(string) (*entity.Produto, error) { return nil, nil }
func (f *fakeProdutoRepo) GetByCodigo(codigo string) (*entity.Produto, error) {
	return f.porCodigo[codigo], nil
}
func (f *fakeProdutoRepo) Update(*entity.Produto) error             { return nil }
func (f *fakeProdutoRepo) List(int, int) ([]*entity.Produto, error) { return nil, nil }
func (f *fakeProdutoRepo) Search(termo string, _ int) ([]*entity.Produto, error) {
	f.buscas = append(f.buscas, termo)
	return nil, nil
}
func (f *fakeProdutoRepo) NextCodigoSeq(string) (int, error) { return f.proxSeq, nil }
func (f *fakeProdutoRepo) Delete(string) error               { return nil }

func TestNormalizaTermo(t *testing.T) {
	casos := map[string]string{
		"  Açúcar Cristal ": "acucar cristal",
		"CANETA":            "caneta",
		"pão de forma":      "pao de forma",
		"Álcool 70%":        "alcool 70%",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, NormalizaTermo(entrada), "entrada %q", entrada)
	}
}

func TestCreateProdutoGeraCodigoPorCategoria(t *testing.T) {
	repo := &fakeProdutoRepo{proxSeq: 12}
	categorias := &fakeCategoriaRepo{categorias: map[string]*entity.Categoria{
		"c1": {ID: "c1", Nome: "Papelaria", Prefixo: "pap"},
	}}
	uc := NewProdutoUseCase(repo, categorias)

	out, err := uc.Create(dto.CreateProdutoRequest{
		Nome: "Caneta", Unidade: "un", CategoriaID: "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, "PAP-0012", out.Codigo)
	assert.Equal(t, "UN", out.Unidade)
}

func TestCreateProdutoCodigoDuplicado(t *testing.T) {
	repo := &fakeProdutoRepo{porCodigo: map[string]*entity.Produto{
		"PAP-0001": {ID: "p1", Codigo: "PAP-0001"},
	}}
	categorias := &fakeCategoriaRepo{categorias: map[string]*entity.Categoria{
		"c1": {ID: "c1", Nome: "Papelaria"},
	}}
	uc := NewProdutoUseCase(repo, categorias)

	_, err := uc.Create(dto.CreateProdutoRequest{
		Nome: "Caneta", Unidade: "UN", CategoriaID: "c1", Codigo: "PAP-0001",
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestGerarCodigoSemCategoriaUsaPrefixoPadrao(t *testing.T) {
	repo := &fakeProdutoRepo{proxSeq: 1}
	uc := NewProdutoUseCase(repo, &fakeCategoriaRepo{})

	out, err := uc.GerarCodigo("")
	require.NoError(t, err)
	assert.Equal(t, "PRD-0001", out.Codigo)
}

func TestSearchNormalizaAntesDeConsultar(t *testing.T) {
	repo := &fakeProdutoRepo{}
	uc := NewProdutoUseCase(repo, &fakeCategoriaRepo{})

	_, err := uc.Search("  Açúcar ", 0)
	require.NoError(t, err)
	require.Len(t, repo.buscas, 1)
	assert.Equal(t, "acucar", repo.buscas[0])
}
