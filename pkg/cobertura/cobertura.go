// Package cobertura implementa o ranking de origens para atendimento de
// demandas: dado o saldo restante de cada item e a disponibilidade por
// produto em cada local candidato, ordena os locais por quanto cada um,
// sozinho, cobriria do pedido inteiro. O atendimento aplica uma única
// origem a todos os itens selecionados, por isso o ranking é de fonte
// única (heurístico, não resolve divisão ótima entre múltiplas origens).
package cobertura

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Item é um item de demanda com o contador de atendido.
type Item struct {
	ProdutoID  string
	Quantidade decimal.Decimal
	Atendido   decimal.Decimal
}

// Restante é o saldo ainda não atendido do item (nunca negativo).
func (i Item) Restante() decimal.Decimal {
	r := i.Quantidade.Sub(i.Atendido)
	if r.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return r
}

// Origem é um local candidato com a disponibilidade de um produto.
type Origem struct {
	Tipo       string
	ID         string
	Nome       string
	Disponivel decimal.Decimal
}

// OrigemRanqueada é o resultado agregado por local candidato.
type OrigemRanqueada struct {
	Tipo           string
	ID             string
	Nome           string
	TotalCobertura decimal.Decimal // Σ min(restante, disponível) sobre os itens
	ItensComSaldo  int             // itens para os quais o local tem algum saldo
	ItensIntegrais int             // itens que o local cobriria sozinho
}

// RankOrigens agrega a cobertura de cada local candidato sobre os itens com
// restante > 0 e devolve a lista ordenada decrescente por TotalCobertura.
// A ordenação é estável: empates preservam a ordem de primeira aparição
// (itens na ordem dada, origens na ordem dada). Itens já satisfeitos e
// origens sem disponibilidade não contribuem.
func RankOrigens(itens []Item, origensPorProduto map[string][]Origem) []OrigemRanqueada {
	type chave struct{ tipo, id string }
	indice := make(map[chave]int)
	var ranking []OrigemRanqueada

	for _, item := range itens {
		restante := item.Restante()
		if !restante.GreaterThan(decimal.Zero) {
			continue
		}
		for _, o := range origensPorProduto[item.ProdutoID] {
			if !o.Disponivel.GreaterThan(decimal.Zero) {
				continue
			}
			k := chave{o.Tipo, o.ID}
			idx, ok := indice[k]
			if !ok {
				idx = len(ranking)
				indice[k] = idx
				ranking = append(ranking, OrigemRanqueada{Tipo: o.Tipo, ID: o.ID, Nome: o.Nome})
			}
			entry := &ranking[idx]
			entry.TotalCobertura = entry.TotalCobertura.Add(decimal.Min(restante, o.Disponivel))
			entry.ItensComSaldo++
			if o.Disponivel.GreaterThanOrEqual(restante) {
				entry.ItensIntegrais++
			}
		}
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].TotalCobertura.GreaterThan(ranking[b].TotalCobertura)
	})
	return ranking
}

// MaxEnviavel é o teto por item para a origem escolhida:
// max(0, min(restante, disponível)), truncado a inteiro quando o produto
// não admite fração. O servidor revalida na submissão.
func MaxEnviavel(restante, disponivel decimal.Decimal, permiteFracao bool) decimal.Decimal {
	m := decimal.Min(restante, disponivel)
	if m.LessThan(decimal.Zero) {
		m = decimal.Zero
	}
	if !permiteFracao {
		m = m.Floor()
	}
	return m
}
