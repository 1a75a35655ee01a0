package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementação do porto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	pool *pgxpool.Pool
}

// NewCategoriaRepository constrói o adaptador de persistência para categorias.
func NewCategoriaRepository(pool *pgxpool.Pool) *CategoriaRepo {
	return &CategoriaRepo{pool: pool}
}

// Create persiste uma nova categoria.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (id, nome, prefixo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Nome, c.Prefixo, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtém uma categoria por ID.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	query := `
		SELECT id, nome, prefixo, created_at, updated_at
		FROM categorias WHERE id = $1`
	var c entity.Categoria
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nome, &c.Prefixo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// Update atualiza uma categoria existente.
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	query := `
		UPDATE categorias SET nome = $2, prefixo = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, c.ID, c.Nome, c.Prefixo, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// List lista categorias com paginação.
func (r *CategoriaRepo) List(limit, offset int) ([]*entity.Categoria, error) {
	query := `
		SELECT id, nome, prefixo, created_at, updated_at
		FROM categorias ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var out []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nome, &c.Prefixo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Delete elimina uma categoria por ID.
func (r *CategoriaRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
