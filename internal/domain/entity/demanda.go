package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de demanda, transicionados exclusivamente pelo servidor.
const (
	DemandaStatusPendente = "pendente"
	DemandaStatusParcial  = "parcial"
	DemandaStatusAtendido = "atendido"
)

// DemandaItem é um item solicitado em uma demanda, com o contador de
// quantidade já atendida.
type DemandaItem struct {
	ID         string
	DemandaID  string
	ProdutoID  string
	Quantidade decimal.Decimal
	Atendido   decimal.Decimal
}

// Restante é o saldo ainda não atendido do item (nunca negativo).
func (i *DemandaItem) Restante() decimal.Decimal {
	r := i.Quantidade.Sub(i.Atendido)
	if r.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return r
}

// Demanda é a requisição de materiais de um Setor, atendida
// incrementalmente a partir do estoque a montante.
type Demanda struct {
	ID         string
	SetorID    string
	Status     string
	Observacao string
	Itens      []DemandaItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CreatedBy  string
}

// DeriveStatus recalcula o status a partir dos contadores dos itens.
func (d *Demanda) DeriveStatus() string {
	todos := true
	algum := false
	for i := range d.Itens {
		it := &d.Itens[i]
		if it.Atendido.GreaterThan(decimal.Zero) {
			algum = true
		}
		if it.Atendido.LessThan(it.Quantidade) {
			todos = false
		}
	}
	if len(d.Itens) > 0 && todos {
		return DemandaStatusAtendido
	}
	if algum {
		return DemandaStatusParcial
	}
	return DemandaStatusPendente
}

// Atendimento é um evento de atendimento aplicado a uma Demanda, com uma
// única origem e os itens/quantidades entregues.
type Atendimento struct {
	ID         string
	DemandaID  string
	OrigemTipo string
	OrigemID   string
	Itens      []AtendimentoItem
	CreatedAt  time.Time
	CreatedBy  string
}

// AtendimentoItem é a quantidade entregue de um produto em um atendimento.
type AtendimentoItem struct {
	ProdutoID  string
	Quantidade decimal.Decimal
}
