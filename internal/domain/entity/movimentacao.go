package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação do livro-razão de estoque.
const (
	MovTipoEntrada             = "entrada"
	MovTipoDistribuicao        = "distribuicao"
	MovTipoTransferencia       = "transferencia"
	MovTipoConsumo             = "consumo"
	MovTipoSaidaJustificada    = "saida_justificada"
	MovTipoEstornoDistribuicao = "estorno_distribuicao"
)

// Movimentacao é um registro imutável do livro-razão de transferências de
// estoque. Origem/destino são opcionais conforme o tipo: entrada não tem
// origem interna, saída justificada e consumo não têm destino interno.
type Movimentacao struct {
	ID            string
	TransacaoID   string // agrupa linhas de uma mesma ação lógica (carrinho, atendimento)
	Tipo          string
	ProdutoID     string
	OrigemTipo    string
	OrigemID      string
	DestinoTipo   string
	DestinoID     string
	Quantidade    decimal.Decimal
	Justificativa string // obrigatória em saida_justificada
	EstornoDe     string // id da movimentação estornada (estorno_distribuicao)
	Data          time.Time
	CreatedAt     time.Time
	CreatedBy     string // UsuarioID
}
