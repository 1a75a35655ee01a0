package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de lote derivados da validade.
const (
	LoteStatusNormal  = "normal"
	LoteStatusCritico = "critico" // vence em até 30 dias
	LoteStatusVencido = "vencido"
)

// Dias de antecedência para considerar um lote crítico.
const loteDiasCritico = 30

// Lote é um lote rastreado de um produto em um local, com validade,
// preço unitário e quantidade próprios.
type Lote struct {
	ID            string
	ProdutoID     string
	LocalTipo     string
	LocalID       string
	Numero        string
	Validade      time.Time
	PrecoUnitario decimal.Decimal
	Quantidade    decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Status deriva o estado do lote a partir da validade na data de referência.
func (l *Lote) Status(ref time.Time) string {
	if !l.Validade.After(ref) {
		return LoteStatusVencido
	}
	if l.Validade.Before(ref.AddDate(0, 0, loteDiasCritico)) {
		return LoteStatusCritico
	}
	return LoteStatusNormal
}
