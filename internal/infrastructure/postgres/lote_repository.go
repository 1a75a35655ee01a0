package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementação do porto LoteRepository sobre PostgreSQL
// (usável com pool ou tx).
type LoteRepo struct {
	q Querier
}

// NewLoteRepository constrói o adaptador de lotes. Passar pool ou tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

const loteCols = `id, produto_id, local_tipo, local_id, numero, validade, preco_unitario, quantidade, created_at, updated_at`

// Create persiste um novo lote.
func (r *LoteRepo) Create(l *entity.Lote) error {
	query := `
		INSERT INTO lotes (` + loteCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.ProdutoID, l.LocalTipo, l.LocalID, l.Numero, l.Validade,
		l.PrecoUnitario, l.Quantidade, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// GetByID obtém um lote por ID.
func (r *LoteRepo) GetByID(id string) (*entity.Lote, error) {
	query := `SELECT ` + loteCols + ` FROM lotes WHERE id = $1`
	return r.getOne(query, id)
}

// GetByNumero localiza um lote pelo número dentro de um local.
func (r *LoteRepo) GetByNumero(produtoID, localTipo, localID, numero string) (*entity.Lote, error) {
	query := `
		SELECT ` + loteCols + `
		FROM lotes
		WHERE produto_id = $1 AND local_tipo = $2 AND local_id = $3 AND numero = $4`
	return r.getOne(query, produtoID, localTipo, localID, numero)
}

func (r *LoteRepo) getOne(query string, args ...any) (*entity.Lote, error) {
	var l entity.Lote
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.ID, &l.ProdutoID, &l.LocalTipo, &l.LocalID, &l.Numero, &l.Validade,
		&l.PrecoUnitario, &l.Quantidade, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return &l, nil
}

// Update atualiza um lote existente.
func (r *LoteRepo) Update(l *entity.Lote) error {
	query := `
		UPDATE lotes
		SET validade = $2, preco_unitario = $3, quantidade = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.Validade, l.PrecoUnitario, l.Quantidade, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lote: %w", err)
	}
	return nil
}

// ListByProduto lista os lotes de um produto em todos os locais.
func (r *LoteRepo) ListByProduto(produtoID string) ([]*entity.Lote, error) {
	query := `SELECT ` + loteCols + ` FROM lotes WHERE produto_id = $1 ORDER BY validade`
	rows, err := r.q.Query(context.Background(), query, produtoID)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Lote
	for rows.Next() {
		var l entity.Lote
		if err := rows.Scan(
			&l.ID, &l.ProdutoID, &l.LocalTipo, &l.LocalID, &l.Numero, &l.Validade,
			&l.PrecoUnitario, &l.Quantidade, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
