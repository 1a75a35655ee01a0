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

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoCols = `id, codigo, nome, descricao, categoria_id, unidade, controle_lote, created_at, updated_at`

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (` + produtoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nome, p.Descricao, p.CategoriaID, p.Unidade, p.ControleLote,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return r.getOne(`SELECT `+produtoCols+` FROM produtos WHERE id = $1`, id)
}

// GetByCodigo obtém um produto pelo código único.
func (r *ProdutoRepo) GetByCodigo(codigo string) (*entity.Produto, error) {
	return r.getOne(`SELECT `+produtoCols+` FROM produtos WHERE codigo = $1`, codigo)
}

func (r *ProdutoRepo) getOne(query string, arg any) (*entity.Produto, error) {
	var p entity.Produto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Codigo, &p.Nome, &p.Descricao, &p.CategoriaID, &p.Unidade, &p.ControleLote,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// Update atualiza um produto existente.
func (r *ProdutoRepo) Update(p *entity.Produto) error {
	query := `
		UPDATE produtos
		SET nome = $2, descricao = $3, categoria_id = $4, unidade = $5,
		    controle_lote = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Descricao, p.CategoriaID, p.Unidade, p.ControleLote, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// List lista produtos com paginação.
func (r *ProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoCols + ` FROM produtos ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	return scanProdutos(rows)
}

// Search busca por nome ou código. O termo chega normalizado (minúsculas,
// sem acentos); a comparação remove acentos no lado do banco via unaccent.
func (r *ProdutoRepo) Search(termo string, limit int) ([]*entity.Produto, error) {
	query := `
		SELECT ` + produtoCols + `
		FROM produtos
		WHERE lower(unaccent(nome)) LIKE '%' || $1 || '%'
		   OR lower(codigo) LIKE '%' || $1 || '%'
		ORDER BY nome LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, termo, limit)
	if err != nil {
		return nil, fmt.Errorf("search produtos: %w", err)
	}
	defer rows.Close()
	return scanProdutos(rows)
}

// NextCodigoSeq devolve o próximo número livre para códigos PREFIXO-NNNN.
func (r *ProdutoRepo) NextCodigoSeq(prefixo string) (int, error) {
	query := `
		SELECT COALESCE(MAX(substring(codigo FROM length($1) + 2)::int), 0) + 1
		FROM produtos
		WHERE codigo ~ ('^' || $1 || '-[0-9]+$')`
	var seq int
	if err := r.q.QueryRow(context.Background(), query, prefixo).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next codigo seq: %w", err)
	}
	return seq, nil
}

func scanProdutos(rows pgx.Rows) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(
			&p.ID, &p.Codigo, &p.Nome, &p.Descricao, &p.CategoriaID, &p.Unidade, &p.ControleLote,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Delete elimina um produto por ID.
func (r *ProdutoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}
