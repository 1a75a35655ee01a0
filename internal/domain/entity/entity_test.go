package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pluckapp/almox-api/internal/domain"
)

func TestLoteStatus(t *testing.T) {
	ref := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	casos := []struct {
		nome     string
		validade time.Time
		esperado string
	}{
		{"vencido ontem", ref.AddDate(0, 0, -1), LoteStatusVencido},
		{"vence exatamente agora", ref, LoteStatusVencido},
		{"vence em 10 dias", ref.AddDate(0, 0, 10), LoteStatusCritico},
		{"vence em 29 dias", ref.AddDate(0, 0, 29), LoteStatusCritico},
		{"vence em 60 dias", ref.AddDate(0, 0, 60), LoteStatusNormal},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			l := &Lote{Validade: c.validade}
			assert.Equal(t, c.esperado, l.Status(ref))
		})
	}
}

func TestProdutoValidaQuantidade(t *testing.T) {
	inteiro := &Produto{Unidade: UnidadeUN}
	fracionado := &Produto{Unidade: UnidadeKG}

	assert.NoError(t, inteiro.ValidaQuantidade(decimal.NewFromInt(3)))
	assert.ErrorIs(t, inteiro.ValidaQuantidade(decimal.RequireFromString("2.5")), domain.ErrInvalidInput)
	assert.ErrorIs(t, inteiro.ValidaQuantidade(decimal.Zero), domain.ErrInvalidInput)
	assert.ErrorIs(t, inteiro.ValidaQuantidade(decimal.NewFromInt(-1)), domain.ErrInvalidInput)

	assert.NoError(t, fracionado.ValidaQuantidade(decimal.RequireFromString("2.5")))
	assert.NoError(t, fracionado.ValidaQuantidade(decimal.RequireFromString("2.25")))
	assert.ErrorIs(t, fracionado.ValidaQuantidade(decimal.RequireFromString("2.125")), domain.ErrInvalidInput)
}

func TestDemandaDeriveStatus(t *testing.T) {
	d := &Demanda{Itens: []DemandaItem{
		{Quantidade: decimal.NewFromInt(10), Atendido: decimal.Zero},
		{Quantidade: decimal.NewFromInt(5), Atendido: decimal.Zero},
	}}
	assert.Equal(t, DemandaStatusPendente, d.DeriveStatus())

	d.Itens[0].Atendido = decimal.NewFromInt(4)
	assert.Equal(t, DemandaStatusParcial, d.DeriveStatus())

	d.Itens[0].Atendido = decimal.NewFromInt(10)
	d.Itens[1].Atendido = decimal.NewFromInt(5)
	assert.Equal(t, DemandaStatusAtendido, d.DeriveStatus())
}

func TestDemandaItemRestante(t *testing.T) {
	i := &DemandaItem{Quantidade: decimal.NewFromInt(5), Atendido: decimal.NewFromInt(8)}
	assert.True(t, i.Restante().Equal(decimal.Zero), "restante nunca é negativo")
}
