package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstoqueItemResponse saldo de um produto em um local.
type EstoqueItemResponse struct {
	ProdutoID   string          `json:"produto_id"`
	ProdutoNome string          `json:"produto_nome,omitempty"`
	LocalTipo   string          `json:"local_tipo"`
	LocalID     string          `json:"local_id"`
	Quantidade  decimal.Decimal `json:"quantidade"`
	Disponivel  decimal.Decimal `json:"quantidade_disponivel"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// EstoqueListResponse saldos de um local ou subárvore.
type EstoqueListResponse struct {
	Items []EstoqueItemResponse `json:"items"`
}

// OrigemEstoqueResponse local candidato com disponibilidade para um produto.
type OrigemEstoqueResponse struct {
	OrigemTipo string          `json:"origem_tipo"`
	OrigemID   string          `json:"origem_id"`
	OrigemNome string          `json:"origem_nome"`
	Disponivel decimal.Decimal `json:"quantidade_disponivel"`
}

// OrigensPorProdutoResponse mapa produto → origens candidatas, insumo do
// ranking de cobertura.
type OrigensPorProdutoResponse struct {
	Origens map[string][]OrigemEstoqueResponse `json:"origens"`
}
