package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pluckapp/almox-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas agregadas de leitura (relatórios e painel).
type RelatorioRepo struct {
	pool *pgxpool.Pool
}

// NewRelatorioRepository constrói o adaptador de relatórios.
func NewRelatorioRepository(pool *pgxpool.Pool) *RelatorioRepo {
	return &RelatorioRepo{pool: pool}
}

// ConsumoSetores agrega o consumo por setor e produto no período, a partir
// do livro-razão (tipo consumo, origem setor).
func (r *RelatorioRepo) ConsumoSetores(inicio, fim time.Time) ([]repository.ConsumoSetorRow, error) {
	query := `
		SELECT m.origem_id, s.nome, m.produto_id, p.nome, p.unidade, SUM(m.quantidade)
		FROM movimentacoes m
		JOIN setores s ON s.id = m.origem_id
		JOIN produtos p ON p.id = m.produto_id
		WHERE m.tipo = 'consumo' AND m.origem_tipo = 'setor'
		  AND m.data >= $1 AND m.data <= $2
		GROUP BY m.origem_id, s.nome, m.produto_id, p.nome, p.unidade
		ORDER BY s.nome, p.nome`
	rows, err := r.pool.Query(context.Background(), query, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("consumo setores: %w", err)
	}
	defer rows.Close()

	var out []repository.ConsumoSetorRow
	for rows.Next() {
		var row repository.ConsumoSetorRow
		if err := rows.Scan(
			&row.SetorID, &row.SetorNome, &row.ProdutoID, &row.ProdutoNome, &row.Unidade, &row.Total,
		); err != nil {
			return nil, fmt.Errorf("scan consumo setor: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Dashboard calcula os contadores do painel na data de referência.
func (r *RelatorioRepo) Dashboard(ref time.Time) (*repository.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM produtos),
			(SELECT COUNT(*) FROM demandas WHERE status IN ('pendente', 'parcial')),
			(SELECT COUNT(*) FROM movimentacoes WHERE data >= $1::date AND data < $1::date + 1),
			(SELECT COUNT(*) FROM lotes WHERE quantidade > 0
				AND validade > $1 AND validade < $1 + interval '30 days'),
			(SELECT COUNT(*) FROM lotes WHERE quantidade > 0 AND validade <= $1)`
	var stats repository.DashboardStats
	err := r.pool.QueryRow(context.Background(), query, ref).Scan(
		&stats.TotalProdutos, &stats.DemandasPendentes, &stats.MovimentacoesHoje,
		&stats.LotesCriticos, &stats.LotesVencidos,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return &stats, nil
}
