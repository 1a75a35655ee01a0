package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pluckapp/almox-api/internal/domain"
)

// Unidades de medida que admitem quantidade fracionada (até 2 casas decimais).
// Todas as demais unidades exigem quantidade inteira.
const (
	UnidadeKG = "KG"
	UnidadeL  = "L"
	UnidadeMT = "MT"
	UnidadeUN = "UN"
	UnidadeCX = "CX"
	UnidadePC = "PC"
)

// Categoria agrupa produtos e define o prefixo usado na geração de código.
type Categoria struct {
	ID        string
	Nome      string
	Prefixo   string // ex.: "MAT" → códigos MAT-0001, MAT-0002...
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Produto representa um item do catálogo, identificado por código único.
type Produto struct {
	ID           string
	Codigo       string
	Nome         string
	Descricao    string
	CategoriaID  string
	Unidade      string // KG, L, MT, UN, CX, PC...
	ControleLote bool   // exige lote (número + validade) nas entradas
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PermiteFracao informa se a unidade do produto admite quantidade fracionada.
func (p *Produto) PermiteFracao() bool {
	switch p.Unidade {
	case UnidadeKG, UnidadeL, UnidadeMT:
		return true
	}
	return false
}

// ValidaQuantidade verifica a quantidade para movimentação deste produto:
// positiva, inteira para unidades não fracionáveis e com no máximo 2 casas
// decimais para KG/L/MT.
func (p *Produto) ValidaQuantidade(q decimal.Decimal) error {
	if !q.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if p.PermiteFracao() {
		if q.Exponent() < -2 && !q.Equal(q.Round(2)) {
			return domain.ErrInvalidInput
		}
		return nil
	}
	if !q.Equal(q.Truncate(0)) {
		return domain.ErrInvalidInput
	}
	return nil
}
