package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estoque representa o saldo de um produto em um local da hierarquia.
// Disponivel desconta reservas de demandas em aberto; as verificações de
// saída usam sempre Disponivel.
type Estoque struct {
	ProdutoID  string
	LocalTipo  string
	LocalID    string
	Quantidade decimal.Decimal
	Disponivel decimal.Decimal
	UpdatedAt  time.Time
}
