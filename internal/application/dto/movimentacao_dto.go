package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntradaRequest body para POST /api/movimentacoes/entrada.
// Lote (número + validade + preço) é obrigatório quando o produto tem
// controle de lote.
type EntradaRequest struct {
	ProdutoID     string           `json:"produto_id"`
	Quantidade    decimal.Decimal  `json:"quantidade"`
	DestinoTipo   string           `json:"destino_tipo"`
	DestinoID     string           `json:"destino_id"`
	LoteNumero    string           `json:"lote_numero,omitempty"`
	LoteValidade  *time.Time       `json:"lote_validade,omitempty"`
	PrecoUnitario *decimal.Decimal `json:"preco_unitario,omitempty"`
}

// DistribuicaoRequest body para POST /api/movimentacoes/distribuicao.
type DistribuicaoRequest struct {
	ProdutoID   string          `json:"produto_id"`
	Quantidade  decimal.Decimal `json:"quantidade"`
	OrigemTipo  string          `json:"origem_tipo"`
	OrigemID    string          `json:"origem_id"`
	DestinoTipo string          `json:"destino_tipo"`
	DestinoID   string          `json:"destino_id"`
}

// EstornoRequest body para POST /api/movimentacoes/estorno_distribuicao.
type EstornoRequest struct {
	MovimentacaoID string `json:"movimentacao_id"`
}

// SaidaJustificadaRequest body para POST /api/movimentacoes/saida_justificada.
type SaidaJustificadaRequest struct {
	ProdutoID     string          `json:"produto_id"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	OrigemTipo    string          `json:"origem_tipo"`
	OrigemID      string          `json:"origem_id"`
	Justificativa string          `json:"justificativa"`
}

// ConsumoRequest body para POST /api/movimentacoes/consumo.
type ConsumoRequest struct {
	ProdutoID  string          `json:"produto_id"`
	Quantidade decimal.Decimal `json:"quantidade"`
	SetorID    string          `json:"setor_id"`
}

// CarrinhoLinha uma linha do carrinho de saída para setor.
type CarrinhoLinha struct {
	ProdutoID  string          `json:"produto_id"`
	OrigemTipo string          `json:"origem_tipo"`
	OrigemID   string          `json:"origem_id"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// SaidaSetorRequest body para POST /api/movimentacoes/saida_setor: todas as
// linhas aplicadas em uma única transação.
type SaidaSetorRequest struct {
	SetorID string          `json:"setor_id"`
	Linhas  []CarrinhoLinha `json:"linhas"`
}

// MovimentacaoResponse uma linha do livro-razão.
type MovimentacaoResponse struct {
	ID            string          `json:"id"`
	TransacaoID   string          `json:"transacao_id,omitempty"`
	Tipo          string          `json:"tipo"`
	ProdutoID     string          `json:"produto_id"`
	OrigemTipo    string          `json:"origem_tipo,omitempty"`
	OrigemID      string          `json:"origem_id,omitempty"`
	DestinoTipo   string          `json:"destino_tipo,omitempty"`
	DestinoID     string          `json:"destino_id,omitempty"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	Justificativa string          `json:"justificativa,omitempty"`
	EstornoDe     string          `json:"estorno_de,omitempty"`
	Data          time.Time       `json:"data"`
	CreatedBy     string          `json:"created_by,omitempty"`
}

// MovimentacaoListResponse listado do livro-razão.
type MovimentacaoListResponse struct {
	Items []MovimentacaoResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
