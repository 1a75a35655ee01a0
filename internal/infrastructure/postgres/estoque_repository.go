package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

var _ repository.EstoqueRepository = (*EstoqueRepo)(nil)

// EstoqueRepo implementação do porto EstoqueRepository sobre PostgreSQL
// (usável com pool ou tx).
type EstoqueRepo struct {
	q Querier
}

// NewEstoqueRepository constrói o adaptador de saldos. Passar pool ou tx (Querier).
func NewEstoqueRepository(q Querier) *EstoqueRepo {
	return &EstoqueRepo{q: q}
}

const estoqueCols = `produto_id, local_tipo, local_id, quantidade, disponivel, updated_at`

// Get obtém o saldo de um produto em um local. Linha inexistente equivale
// a saldo zero.
func (r *EstoqueRepo) Get(produtoID, localTipo, localID string) (*entity.Estoque, error) {
	query := `
		SELECT ` + estoqueCols + `
		FROM estoques WHERE produto_id = $1 AND local_tipo = $2 AND local_id = $3`
	return r.getOne(query, produtoID, localTipo, localID)
}

// GetForUpdate obtém o saldo bloqueando a linha (SELECT FOR UPDATE).
// Deve rodar dentro de transação.
func (r *EstoqueRepo) GetForUpdate(produtoID, localTipo, localID string) (*entity.Estoque, error) {
	query := `
		SELECT ` + estoqueCols + `
		FROM estoques WHERE produto_id = $1 AND local_tipo = $2 AND local_id = $3
		FOR UPDATE`
	return r.getOne(query, produtoID, localTipo, localID)
}

func (r *EstoqueRepo) getOne(query, produtoID, localTipo, localID string) (*entity.Estoque, error) {
	var e entity.Estoque
	err := r.q.QueryRow(context.Background(), query, produtoID, localTipo, localID).Scan(
		&e.ProdutoID, &e.LocalTipo, &e.LocalID, &e.Quantidade, &e.Disponivel, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Estoque{
				ProdutoID:  produtoID,
				LocalTipo:  localTipo,
				LocalID:    localID,
				Quantidade: decimal.Zero,
				Disponivel: decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("get estoque: %w", err)
	}
	return &e, nil
}

// Upsert insere ou atualiza o saldo (por produto + local).
func (r *EstoqueRepo) Upsert(e *entity.Estoque) error {
	query := `
		INSERT INTO estoques (produto_id, local_tipo, local_id, quantidade, disponivel, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (produto_id, local_tipo, local_id)
		DO UPDATE SET quantidade = EXCLUDED.quantidade, disponivel = EXCLUDED.disponivel, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		e.ProdutoID, e.LocalTipo, e.LocalID, e.Quantidade, e.Disponivel,
	)
	if err != nil {
		return fmt.Errorf("upsert estoque: %w", err)
	}
	return nil
}

// ListByLocal lista os saldos de um local.
func (r *EstoqueRepo) ListByLocal(localTipo, localID string) ([]*entity.Estoque, error) {
	query := `
		SELECT ` + estoqueCols + `
		FROM estoques WHERE local_tipo = $1 AND local_id = $2 ORDER BY produto_id`
	rows, err := r.q.Query(context.Background(), query, localTipo, localID)
	if err != nil {
		return nil, fmt.Errorf("list estoques por local: %w", err)
	}
	defer rows.Close()
	return scanEstoques(rows)
}

// ListByProduto devolve os saldos de um produto em todos os locais com
// disponibilidade positiva.
func (r *EstoqueRepo) ListByProduto(produtoID string) ([]*entity.Estoque, error) {
	query := `
		SELECT ` + estoqueCols + `
		FROM estoques WHERE produto_id = $1 AND disponivel > 0
		ORDER BY local_tipo, local_id`
	rows, err := r.q.Query(context.Background(), query, produtoID)
	if err != nil {
		return nil, fmt.Errorf("list estoques por produto: %w", err)
	}
	defer rows.Close()
	return scanEstoques(rows)
}

// ListByCentral agrega os saldos da subárvore de uma central: a própria
// central, seus almoxarifados, sub-almoxarifados e setores.
func (r *EstoqueRepo) ListByCentral(centralID string) ([]*entity.Estoque, error) {
	query := `
		SELECT ` + estoqueCols + `
		FROM estoques e
		WHERE (e.local_tipo = 'central' AND e.local_id = $1)
		   OR (e.local_tipo = 'almoxarifado' AND e.local_id IN (
		        SELECT id FROM almoxarifados WHERE central_id = $1))
		   OR (e.local_tipo = 'sub_almoxarifado' AND e.local_id IN (
		        SELECT s.id FROM sub_almoxarifados s
		        JOIN almoxarifados a ON a.id = s.almoxarifado_id
		        WHERE a.central_id = $1))
		   OR (e.local_tipo = 'setor' AND e.local_id IN (
		        SELECT st.id FROM setores st
		        JOIN almoxarifados a ON a.id = st.almoxarifado_id
		        WHERE a.central_id = $1))
		ORDER BY e.local_tipo, e.local_id, e.produto_id`
	rows, err := r.q.Query(context.Background(), query, centralID)
	if err != nil {
		return nil, fmt.Errorf("list estoques por central: %w", err)
	}
	defer rows.Close()
	return scanEstoques(rows)
}

// ListAll devolve todos os saldos não-zerados.
func (r *EstoqueRepo) ListAll() ([]*entity.Estoque, error) {
	query := `
		SELECT ` + estoqueCols + `
		FROM estoques WHERE quantidade <> 0 OR disponivel <> 0
		ORDER BY local_tipo, local_id, produto_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list estoques: %w", err)
	}
	defer rows.Close()
	return scanEstoques(rows)
}

func scanEstoques(rows pgx.Rows) ([]*entity.Estoque, error) {
	var out []*entity.Estoque
	for rows.Next() {
		var e entity.Estoque
		if err := rows.Scan(
			&e.ProdutoID, &e.LocalTipo, &e.LocalID, &e.Quantidade, &e.Disponivel, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan estoque: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
