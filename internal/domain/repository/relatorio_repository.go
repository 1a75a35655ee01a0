package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsumoSetorRow é uma linha do relatório de consumo por setor/produto.
type ConsumoSetorRow struct {
	SetorID     string
	SetorNome   string
	ProdutoID   string
	ProdutoNome string
	Unidade     string
	Total       decimal.Decimal
}

// DashboardStats contadores exibidos no painel inicial.
type DashboardStats struct {
	TotalProdutos     int
	DemandasPendentes int
	MovimentacoesHoje int
	LotesCriticos     int
	LotesVencidos     int
}

// RelatorioRepository consultas agregadas de leitura (relatórios e painel).
type RelatorioRepository interface {
	ConsumoSetores(inicio, fim time.Time) ([]ConsumoSetorRow, error)
	Dashboard(ref time.Time) (*DashboardStats, error)
}
