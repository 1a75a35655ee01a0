package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDemandaItem item solicitado na criação de demanda.
type CreateDemandaItem struct {
	ProdutoID  string          `json:"produto_id"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// CreateDemandaRequest body para POST /api/demandas.
type CreateDemandaRequest struct {
	SetorID    string              `json:"setor_id"`
	Observacao string              `json:"observacao,omitempty"`
	Itens      []CreateDemandaItem `json:"itens"`
}

// DemandaItemResponse item de demanda com restante derivado.
type DemandaItemResponse struct {
	ID         string          `json:"id"`
	ProdutoID  string          `json:"produto_id"`
	Quantidade decimal.Decimal `json:"quantidade"`
	Atendido   decimal.Decimal `json:"atendido"`
	Restante   decimal.Decimal `json:"restante"`
}

// AtendimentoResponse evento de atendimento no histórico da demanda.
type AtendimentoResponse struct {
	ID         string                    `json:"id"`
	OrigemTipo string                    `json:"origem_tipo"`
	OrigemID   string                    `json:"origem_id"`
	Itens      []AtendimentoItemResponse `json:"itens"`
	CreatedAt  time.Time                 `json:"created_at"`
	CreatedBy  string                    `json:"created_by,omitempty"`
}

// AtendimentoItemResponse quantidade entregue por produto.
type AtendimentoItemResponse struct {
	ProdutoID  string          `json:"produto_id"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// DemandaResponse resposta de Demanda.
type DemandaResponse struct {
	ID           string                `json:"id"`
	SetorID      string                `json:"setor_id"`
	Status       string                `json:"status"`
	Observacao   string                `json:"observacao,omitempty"`
	Itens        []DemandaItemResponse `json:"itens"`
	Atendimentos []AtendimentoResponse `json:"atendimentos,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// DemandaListResponse listado paginado.
type DemandaListResponse struct {
	Items []DemandaResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// AtenderItemRequest quantidade a entregar de um produto.
type AtenderItemRequest struct {
	ProdutoID  string          `json:"produto_id"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// AtenderDemandaRequest body para PUT /api/demandas/:id/atender: uma única
// origem aplicada a todos os itens selecionados.
type AtenderDemandaRequest struct {
	OrigemTipo string               `json:"origem_tipo"`
	OrigemID   string               `json:"origem_id"`
	Itens      []AtenderItemRequest `json:"itens"`
}

// OrigemRanqueadaResponse uma entrada do ranking de cobertura.
type OrigemRanqueadaResponse struct {
	OrigemTipo     string          `json:"origem_tipo"`
	OrigemID       string          `json:"origem_id"`
	OrigemNome     string          `json:"origem_nome"`
	TotalCobertura decimal.Decimal `json:"total_cobertura"`
	ItensComSaldo  int             `json:"itens_com_saldo"`
	ItensIntegrais int             `json:"itens_integrais"`
}

// OrigensDemandaResponse resposta de GET /api/demandas/:id/origens.
type OrigensDemandaResponse struct {
	Ranking []OrigemRanqueadaResponse          `json:"ranking"`
	Origens map[string][]OrigemEstoqueResponse `json:"origens_por_produto"`
}
