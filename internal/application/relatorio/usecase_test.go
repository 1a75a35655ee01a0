package relatorio

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

type fakeRelatorioRepo struct {
	rows  []repository.ConsumoSetorRow
	stats repository.DashboardStats
	err   error
}

func (f *fakeRelatorioRepo) ConsumoSetores(inicio, fim time.Time) ([]repository.ConsumoSetorRow, error) {
	return f.rows, f.err
}

func (f *fakeRelatorioRepo) Dashboard(ref time.Time) (*repository.DashboardStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.stats, nil
}

type fakePDF struct {
	periodo string
	rows    []repository.ConsumoSetorRow
}

func (f *fakePDF) RelatorioConsumo(periodo string, rows []repository.ConsumoSetorRow) ([]byte, error) {
	f.periodo = periodo
	f.rows = rows
	return []byte("%PDF-fake"), nil
}

func TestConsumoSetoresMapeiaLinhas(t *testing.T) {
	repo := &fakeRelatorioRepo{rows: []repository.ConsumoSetorRow{
		{SetorID: "s1", SetorNome: "Enfermagem", ProdutoID: "p1", ProdutoNome: "Luva", Unidade: "UN", Total: decimal.NewFromInt(40)},
		{SetorID: "s2", SetorNome: "Cozinha", ProdutoID: "p2", ProdutoNome: "Arroz", Unidade: "KG", Total: decimal.RequireFromString("12.5")},
	}}
	uc := NewUseCase(repo, &fakePDF{})

	inicio := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	out, err := uc.ConsumoSetores(inicio, fim)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Enfermagem", out[0].SetorNome)
	assert.True(t, out[1].Total.Equal(decimal.RequireFromString("12.5")))
}

func TestConsumoSetoresPeriodoInvertido(t *testing.T) {
	uc := NewUseCase(&fakeRelatorioRepo{}, &fakePDF{})

	inicio := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.ConsumoSetores(inicio, fim)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ConsumoSetoresPDF(inicio, fim)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConsumoSetoresPDFFormataPeriodo(t *testing.T) {
	repo := &fakeRelatorioRepo{rows: []repository.ConsumoSetorRow{
		{SetorID: "s1", SetorNome: "Enfermagem", ProdutoID: "p1", ProdutoNome: "Luva", Unidade: "UN", Total: decimal.NewFromInt(3)},
	}}
	pdf := &fakePDF{}
	uc := NewUseCase(repo, pdf)

	inicio := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	out, err := uc.ConsumoSetoresPDF(inicio, fim)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.Equal(t, "01/08/2026 a 31/08/2026", pdf.periodo)
	assert.Len(t, pdf.rows, 1)
}

func TestConsumoSetoresPropagaErroDoRepositorio(t *testing.T) {
	repo := &fakeRelatorioRepo{err: errors.New("conexão recusada")}
	uc := NewUseCase(repo, &fakePDF{})

	inicio := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	_, err := uc.ConsumoSetores(inicio, fim)
	assert.Error(t, err)
}

func TestDashboardMapeiaContadores(t *testing.T) {
	repo := &fakeRelatorioRepo{stats: repository.DashboardStats{
		TotalProdutos:     120,
		DemandasPendentes: 4,
		MovimentacoesHoje: 17,
		LotesCriticos:     2,
		LotesVencidos:     1,
	}}
	uc := NewUseCase(repo, &fakePDF{})

	out, err := uc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 120, out.TotalProdutos)
	assert.Equal(t, 4, out.DemandasPendentes)
	assert.Equal(t, 17, out.MovimentacoesHoje)
	assert.Equal(t, 2, out.LotesCriticos)
	assert.Equal(t, 1, out.LotesVencidos)
}
