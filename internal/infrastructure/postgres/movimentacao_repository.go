package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação do porto MovimentacaoRepository sobre
// PostgreSQL (usável com pool ou tx). O livro-razão é imutável: só há
// INSERT e SELECT.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador do livro-razão. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

const movCols = `id, transacao_id, tipo, produto_id, origem_tipo, origem_id,
	destino_tipo, destino_id, quantidade, justificativa, estorno_de, data, created_at, created_by`

// Create persiste um registro do livro-razão.
func (r *MovimentacaoRepo) Create(m *entity.Movimentacao) error {
	query := `
		INSERT INTO movimentacoes (` + movCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.TransacaoID, m.Tipo, m.ProdutoID, m.OrigemTipo, m.OrigemID,
		m.DestinoTipo, m.DestinoID, m.Quantidade, m.Justificativa, m.EstornoDe,
		m.Data, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID.
func (r *MovimentacaoRepo) GetByID(id string) (*entity.Movimentacao, error) {
	query := `SELECT ` + movCols + ` FROM movimentacoes WHERE id = $1`
	var m entity.Movimentacao
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.TransacaoID, &m.Tipo, &m.ProdutoID, &m.OrigemTipo, &m.OrigemID,
		&m.DestinoTipo, &m.DestinoID, &m.Quantidade, &m.Justificativa, &m.EstornoDe,
		&m.Data, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentacao: %w", err)
	}
	return &m, nil
}

// GetByIDForUpdate obtém a movimentação bloqueando a linha até o fim da
// transação. Dois estornos concorrentes da mesma distribuição serializam
// neste lock; o segundo relê o estorno do primeiro após o commit.
func (r *MovimentacaoRepo) GetByIDForUpdate(id string) (*entity.Movimentacao, error) {
	query := `SELECT ` + movCols + ` FROM movimentacoes WHERE id = $1 FOR UPDATE`
	var m entity.Movimentacao
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.TransacaoID, &m.Tipo, &m.ProdutoID, &m.OrigemTipo, &m.OrigemID,
		&m.DestinoTipo, &m.DestinoID, &m.Quantidade, &m.Justificativa, &m.EstornoDe,
		&m.Data, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentacao for update: %w", err)
	}
	return &m, nil
}

// GetEstornoDe devolve o estorno já registrado para a movimentação dada,
// se houver. Um SELECT FOR UPDATE sem linhas não tranca nada, então a
// exclusão mútua vem do lock na movimentação original (GetByIDForUpdate).
func (r *MovimentacaoRepo) GetEstornoDe(movimentacaoID string) (*entity.Movimentacao, error) {
	query := `SELECT ` + movCols + ` FROM movimentacoes WHERE estorno_de = $1`
	var m entity.Movimentacao
	err := r.q.QueryRow(context.Background(), query, movimentacaoID).Scan(
		&m.ID, &m.TransacaoID, &m.Tipo, &m.ProdutoID, &m.OrigemTipo, &m.OrigemID,
		&m.DestinoTipo, &m.DestinoID, &m.Quantidade, &m.Justificativa, &m.EstornoDe,
		&m.Data, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estorno: %w", err)
	}
	return &m, nil
}

// List lista o livro-razão com filtros opcionais, do mais recente ao mais antigo.
func (r *MovimentacaoRepo) List(f repository.MovimentacaoFilter) ([]*entity.Movimentacao, error) {
	var cond []string
	var args []any

	add := func(expr string, value any) {
		args = append(args, value)
		cond = append(cond, strings.ReplaceAll(expr, "?", "$"+strconv.Itoa(len(args))))
	}
	if f.LocalTipo != "" && f.LocalID != "" {
		args = append(args, f.LocalTipo)
		tipoArg := "$" + strconv.Itoa(len(args))
		args = append(args, f.LocalID)
		idArg := "$" + strconv.Itoa(len(args))
		cond = append(cond, fmt.Sprintf(
			"((origem_tipo = %[1]s AND origem_id = %[2]s) OR (destino_tipo = %[1]s AND destino_id = %[2]s))",
			tipoArg, idArg,
		))
	}
	if f.ProdutoID != "" {
		add("produto_id = ?", f.ProdutoID)
	}
	if f.Tipo != "" {
		add("tipo = ?", f.Tipo)
	}
	if f.De != nil {
		add("data >= ?", *f.De)
	}
	if f.Ate != nil {
		add("data <= ?", *f.Ate)
	}

	query := `SELECT ` + movCols + ` FROM movimentacoes`
	if len(cond) > 0 {
		query += " WHERE " + strings.Join(cond, " AND ")
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	query += " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, f.Offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		if err := rows.Scan(
			&m.ID, &m.TransacaoID, &m.Tipo, &m.ProdutoID, &m.OrigemTipo, &m.OrigemID,
			&m.DestinoTipo, &m.DestinoID, &m.Quantidade, &m.Justificativa, &m.EstornoDe,
			&m.Data, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
