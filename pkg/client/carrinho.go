package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pluckapp/almox-api/pkg/cobertura"
)

// ErrQuantidadeExcedeTeto: a quantidade da linha passa do teto enviável
// (min(restante, disponível)) conhecido no momento da adição. O servidor
// revalida de qualquer forma.
var ErrQuantidadeExcedeTeto = errors.New("quantidade excede o teto enviável da origem")

// LinhaCarrinho uma linha montada localmente.
type LinhaCarrinho struct {
	Produto    Produto
	OrigemTipo string
	OrigemID   string
	Quantidade decimal.Decimal
}

// Carrinho acumula linhas (origem, produto, quantidade) para uma saída em
// lote a um setor. Não é seguro para uso concorrente.
type Carrinho struct {
	SetorID string
	Linhas  []LinhaCarrinho
}

// NewCarrinho cria um carrinho vazio destinado ao setor.
func NewCarrinho(setorID string) *Carrinho {
	return &Carrinho{SetorID: setorID}
}

// Adicionar valida a linha contra o teto enviável e a acrescenta ao
// carrinho. restante é o saldo pendente do item (use decimal alto quando a
// saída não nasce de uma demanda) e disponivel o saldo da origem no
// momento da montagem.
func (cart *Carrinho) Adicionar(p Produto, origemTipo, origemID string, quantidade, restante, disponivel decimal.Decimal) error {
	if !quantidade.GreaterThan(decimal.Zero) {
		return fmt.Errorf("linha de %s: quantidade deve ser positiva", p.Codigo)
	}
	teto := cobertura.MaxEnviavel(restante, disponivel, p.PermiteFracao())
	if quantidade.GreaterThan(teto) {
		return fmt.Errorf("linha de %s (teto %s): %w", p.Codigo, teto.String(), ErrQuantidadeExcedeTeto)
	}
	cart.Linhas = append(cart.Linhas, LinhaCarrinho{
		Produto:    p,
		OrigemTipo: origemTipo,
		OrigemID:   origemID,
		Quantidade: quantidade,
	})
	return nil
}

type saidaSetorRequest struct {
	SetorID string            `json:"setor_id"`
	Linhas  []saidaSetorLinha `json:"linhas"`
}

type saidaSetorLinha struct {
	ProdutoID  string          `json:"produto_id"`
	OrigemTipo string          `json:"origem_tipo"`
	OrigemID   string          `json:"origem_id"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// EnviarCarrinho envia todas as linhas numa única chamada; o servidor
// aplica tudo numa transação só (ou nada, em caso de saldo insuficiente).
func (c *Client) EnviarCarrinho(ctx context.Context, cart *Carrinho) ([]Movimentacao, error) {
	if cart.SetorID == "" || len(cart.Linhas) == 0 {
		return nil, errors.New("carrinho vazio ou sem setor de destino")
	}
	req := saidaSetorRequest{SetorID: cart.SetorID}
	for _, l := range cart.Linhas {
		req.Linhas = append(req.Linhas, saidaSetorLinha{
			ProdutoID:  l.Produto.ID,
			OrigemTipo: l.OrigemTipo,
			OrigemID:   l.OrigemID,
			Quantidade: l.Quantidade,
		})
	}
	var out listResponse[Movimentacao]
	if err := c.post(ctx, "/movimentacoes/saida_setor", req, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// EnviarCarrinhoSequencial é o fluxo legado: uma distribuição por linha,
// abortando na primeira falha. As linhas já enviadas NÃO são revertidas —
// um envio parcial deixa o estoque meio-transferido. Prefira
// EnviarCarrinho; isto existe para clientes que ainda conversam com
// versões antigas do servidor, sem o endpoint em lote.
func (c *Client) EnviarCarrinhoSequencial(ctx context.Context, cart *Carrinho) ([]Movimentacao, error) {
	if cart.SetorID == "" || len(cart.Linhas) == 0 {
		return nil, errors.New("carrinho vazio ou sem setor de destino")
	}
	enviadas := make([]Movimentacao, 0, len(cart.Linhas))
	for i, l := range cart.Linhas {
		body := map[string]any{
			"produto_id":   l.Produto.ID,
			"quantidade":   l.Quantidade,
			"origem_tipo":  l.OrigemTipo,
			"origem_id":    l.OrigemID,
			"destino_tipo": "setor",
			"destino_id":   cart.SetorID,
		}
		var mov Movimentacao
		if err := c.post(ctx, "/movimentacoes/distribuicao", body, &mov); err != nil {
			return enviadas, fmt.Errorf("linha %d (%s): %w", i+1, l.Produto.Codigo, err)
		}
		enviadas = append(enviadas, mov)
	}
	return enviadas, nil
}

// RankOrigensLocal ranqueia localmente as origens candidatas para os itens
// pendentes, com o mesmo agregador usado pelo servidor — útil para
// pré-ordenar a lista na interface antes (ou offline) da chamada a
// /demandas/:id/origens.
func RankOrigensLocal(itens []cobertura.Item, origens map[string][]OrigemEstoque) []cobertura.OrigemRanqueada {
	porProduto := make(map[string][]cobertura.Origem, len(origens))
	for produtoID, lista := range origens {
		conv := make([]cobertura.Origem, 0, len(lista))
		for _, o := range lista {
			conv = append(conv, cobertura.Origem{
				Tipo:       o.OrigemTipo,
				ID:         o.OrigemID,
				Nome:       o.OrigemNome,
				Disponivel: o.Disponivel,
			})
		}
		porProduto[produtoID] = conv
	}
	return cobertura.RankOrigens(itens, porProduto)
}
