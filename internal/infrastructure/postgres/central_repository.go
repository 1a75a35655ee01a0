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

var _ repository.CentralRepository = (*CentralRepo)(nil)

// CentralRepo implementação do porto CentralRepository sobre PostgreSQL.
type CentralRepo struct {
	pool *pgxpool.Pool
}

// NewCentralRepository constrói o adaptador de persistência para centrais.
func NewCentralRepository(pool *pgxpool.Pool) *CentralRepo {
	return &CentralRepo{pool: pool}
}

// Create persiste uma nova central.
func (r *CentralRepo) Create(c *entity.Central) error {
	query := `
		INSERT INTO centrais (id, nome, ativa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Nome, c.Ativa, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert central: %w", err)
	}
	return nil
}

// GetByID obtém uma central por ID.
func (r *CentralRepo) GetByID(id string) (*entity.Central, error) {
	query := `
		SELECT id, nome, ativa, created_at, updated_at
		FROM centrais WHERE id = $1`
	var c entity.Central
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nome, &c.Ativa, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get central: %w", err)
	}
	return &c, nil
}

// Update atualiza uma central existente.
func (r *CentralRepo) Update(c *entity.Central) error {
	query := `
		UPDATE centrais SET nome = $2, ativa = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, c.ID, c.Nome, c.Ativa, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update central: %w", err)
	}
	return nil
}

// List lista centrais com paginação.
func (r *CentralRepo) List(limit, offset int) ([]*entity.Central, error) {
	query := `
		SELECT id, nome, ativa, created_at, updated_at
		FROM centrais ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list centrais: %w", err)
	}
	defer rows.Close()

	var out []*entity.Central
	for rows.Next() {
		var c entity.Central
		if err := rows.Scan(&c.ID, &c.Nome, &c.Ativa, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan central: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Delete elimina uma central por ID.
func (r *CentralRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM centrais WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete central: %w", err)
	}
	return nil
}
